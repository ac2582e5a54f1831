// Package content holds the static, hand-authored conversation content: the
// progressive-disclosure tree (named collections of nodes cross-referenced by
// next_level), the skills catalog, the design-process screens, and the fixed
// prompt strings. Everything is loaded once from embedded YAML at startup and
// never mutated.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/tree.yaml
var treeYAML []byte

//go:embed data/chat.yaml
var chatYAML []byte

// Node is one entry of a content collection. NextLevel, when set, names
// another top-level collection; a name that does not resolve is an authoring
// defect caught by Validate.
type Node struct {
	Key         string `yaml:"key"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	ButtonText  string `yaml:"button_text"`
	NextLevel   string `yaml:"next_level"`
}

// Tree is the full set of named collections. Collections keep authoring
// order: button rows are synthesized from it.
type Tree struct {
	collections map[string][]Node
	order       []string
}

// Order returns collection names in authoring order.
func (t *Tree) Order() []string {
	return t.order
}

// Collection returns the named collection in authoring order.
func (t *Tree) Collection(name string) ([]Node, bool) {
	nodes, ok := t.collections[name]
	return nodes, ok
}

// About returns the about-details collection.
func (t *Tree) About() []Node {
	return t.collections["about_details"]
}

// Experience returns the experience-details collection.
func (t *Tree) Experience() []Node {
	return t.collections["experience_details"]
}

// Node looks up one node by collection and key.
func (t *Tree) Node(collection, key string) (Node, bool) {
	nodes, ok := t.collections[collection]
	if !ok {
		return Node{}, false
	}
	for _, n := range nodes {
		if n.Key == key {
			return n, true
		}
	}
	return Node{}, false
}

// Validate checks that every non-empty next_level names an existing
// collection and that keys are unique within their collection.
func (t *Tree) Validate() error {
	for name, nodes := range t.collections {
		seen := make(map[string]bool, len(nodes))
		for _, n := range nodes {
			if n.Key == "" {
				return fmt.Errorf("collection %q: node with empty key", name)
			}
			if seen[n.Key] {
				return fmt.Errorf("collection %q: duplicate key %q", name, n.Key)
			}
			seen[n.Key] = true
			if n.NextLevel != "" {
				if _, ok := t.collections[n.NextLevel]; !ok {
					return fmt.Errorf("collection %q: node %q references unknown collection %q", name, n.Key, n.NextLevel)
				}
			}
		}
	}
	return nil
}

// SkillSub is a leaf skill with an optional detail blurb.
type SkillSub struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// SkillCategory is one top-level skills chip. Categories without subskills
// (Design, Research) are handled by dedicated flows.
type SkillCategory struct {
	ID        string     `yaml:"id"`
	Label     string     `yaml:"label"`
	Intro     string     `yaml:"intro"`
	Subskills []SkillSub `yaml:"subskills"`
}

// DesignMacro is one of the Design fan-out topics (UX, UI, marketing,
// collaboration).
type DesignMacro struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

// ProcessScreen is one leaf of the design-process walkthrough.
type ProcessScreen struct {
	Token string `yaml:"token"`
	Label string `yaml:"label"`
	Body  string `yaml:"body"`
}

// Chat bundles the non-tree authored strings and catalogs.
type Chat struct {
	Greeting          string `yaml:"greeting"`
	WorkMenu          string `yaml:"work_menu"`
	Medium            string `yaml:"medium"`
	ResumePrompt      string `yaml:"resume_prompt"`
	ContactPrompt     string `yaml:"contact_prompt"`
	ResumeButton      string `yaml:"resume_button_prompt"`
	CaseStudiesPrompt string `yaml:"case_studies_prompt"`
	ConnectionTrouble string `yaml:"connection_trouble"`
	SkillsOverview    string `yaml:"skills_overview"`
	SkillsTap         string `yaml:"skills_tap"`
	AboutIntro        string `yaml:"about_intro"`
	ExperienceIntro   string `yaml:"experience_intro"`
	ProcessIntro      string `yaml:"process_intro"`
	ResearchText      string `yaml:"research_text"`
	DesignIntro       string `yaml:"design_intro"`

	SkillCategories []SkillCategory `yaml:"skill_categories"`
	DesignMacros    []DesignMacro   `yaml:"design_macros"`
	ProcessScreens  []ProcessScreen `yaml:"process_screens"`
}

// Catalog is the loaded, validated content set.
type Catalog struct {
	Tree *Tree
	Chat *Chat
}

// Load parses the embedded content and validates cross-references. An error
// here is an authoring defect and should abort startup.
func Load() (*Catalog, error) {
	tree, err := parseTree(treeYAML)
	if err != nil {
		return nil, fmt.Errorf("content tree: %w", err)
	}
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("content tree: %w", err)
	}

	var chat Chat
	if err := yaml.Unmarshal(chatYAML, &chat); err != nil {
		return nil, fmt.Errorf("chat content: %w", err)
	}
	if err := validateChat(&chat); err != nil {
		return nil, fmt.Errorf("chat content: %w", err)
	}

	return &Catalog{Tree: tree, Chat: &chat}, nil
}

func parseTree(data []byte) (*Tree, error) {
	var raw struct {
		Collections []struct {
			Name  string `yaml:"name"`
			Nodes []Node `yaml:"nodes"`
		} `yaml:"collections"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	t := &Tree{collections: make(map[string][]Node, len(raw.Collections))}
	for _, c := range raw.Collections {
		if c.Name == "" {
			return nil, fmt.Errorf("collection with empty name")
		}
		if _, dup := t.collections[c.Name]; dup {
			return nil, fmt.Errorf("duplicate collection %q", c.Name)
		}
		t.collections[c.Name] = c.Nodes
		t.order = append(t.order, c.Name)
	}
	return t, nil
}

func validateChat(c *Chat) error {
	for _, field := range []struct {
		name, value string
	}{
		{"greeting", c.Greeting},
		{"work_menu", c.WorkMenu},
		{"medium", c.Medium},
		{"resume_prompt", c.ResumePrompt},
		{"contact_prompt", c.ContactPrompt},
		{"case_studies_prompt", c.CaseStudiesPrompt},
		{"connection_trouble", c.ConnectionTrouble},
		{"process_intro", c.ProcessIntro},
	} {
		if field.value == "" {
			return fmt.Errorf("missing required string %q", field.name)
		}
	}
	if len(c.SkillCategories) == 0 {
		return fmt.Errorf("no skill categories")
	}
	if len(c.ProcessScreens) == 0 {
		return fmt.Errorf("no process screens")
	}
	seen := make(map[string]bool)
	for _, cat := range c.SkillCategories {
		if cat.ID == "" || seen[cat.ID] {
			return fmt.Errorf("skill category with empty or duplicate id %q", cat.ID)
		}
		seen[cat.ID] = true
		for _, sub := range cat.Subskills {
			if sub.ID == "" || seen[sub.ID] {
				return fmt.Errorf("subskill with empty or duplicate id %q", sub.ID)
			}
			seen[sub.ID] = true
		}
	}
	for _, ps := range c.ProcessScreens {
		if ps.Token == "" || ps.Body == "" {
			return fmt.Errorf("process screen %q missing token or body", ps.Token)
		}
	}
	return nil
}

// SkillCategory returns the category with the given id.
func (c *Chat) SkillCategory(id string) (SkillCategory, bool) {
	for _, cat := range c.SkillCategories {
		if cat.ID == id {
			return cat, true
		}
	}
	return SkillCategory{}, false
}

// SkillSub returns the subskill with the given id and its parent category.
func (c *Chat) SkillSub(id string) (SkillSub, SkillCategory, bool) {
	for _, cat := range c.SkillCategories {
		for _, sub := range cat.Subskills {
			if sub.ID == id {
				return sub, cat, true
			}
		}
	}
	return SkillSub{}, SkillCategory{}, false
}

// DesignMacro returns the Design fan-out topic with the given id.
func (c *Chat) DesignMacro(id string) (DesignMacro, bool) {
	for _, m := range c.DesignMacros {
		if m.ID == id {
			return m, true
		}
	}
	return DesignMacro{}, false
}

// ProcessScreen returns the walkthrough screen for an action token.
func (c *Chat) ProcessScreen(token string) (ProcessScreen, bool) {
	for _, ps := range c.ProcessScreens {
		if ps.Token == token {
			return ps, true
		}
	}
	return ProcessScreen{}, false
}
