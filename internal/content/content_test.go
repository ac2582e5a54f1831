package content

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedContent(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	overview, ok := cat.Tree.Collection("overview")
	if !ok {
		t.Fatal("overview collection missing")
	}
	if len(overview) != 6 {
		t.Errorf("expected 6 overview nodes, got %d", len(overview))
	}
	if overview[0].Key != "work" {
		t.Errorf("overview must keep authoring order, first key is %q", overview[0].Key)
	}

	if cat.Chat.Greeting == "" {
		t.Error("greeting missing")
	}
	if !strings.Contains(cat.Chat.Medium, "medium.com") {
		t.Error("medium text must link to the profile")
	}
}

func TestTreeNodeLookup(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	n, ok := cat.Tree.Node("project_categories", "featured_project_1")
	if !ok {
		t.Fatal("featured_project_1 missing")
	}
	if n.NextLevel != "project_1_details" {
		t.Errorf("expected next level project_1_details, got %q", n.NextLevel)
	}

	if _, ok := cat.Tree.Node("project_categories", "nope"); ok {
		t.Error("lookup of unknown key must fail")
	}
	if _, ok := cat.Tree.Node("nope", "featured_project_1"); ok {
		t.Error("lookup in unknown collection must fail")
	}
}

func TestValidateRejectsDanglingReference(t *testing.T) {
	tree := &Tree{collections: map[string][]Node{
		"root": {{Key: "a", NextLevel: "missing"}},
	}}
	if err := tree.Validate(); err == nil {
		t.Fatal("expected error for dangling next_level")
	}
}

func TestValidateRejectsDuplicateKeys(t *testing.T) {
	tree := &Tree{collections: map[string][]Node{
		"root": {{Key: "a"}, {Key: "a"}},
	}}
	if err := tree.Validate(); err == nil {
		t.Fatal("expected error for duplicate key")
	}
}

func TestChatCatalogLookups(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	chat := cat.Chat

	if len(chat.SkillCategories) != 4 {
		t.Fatalf("expected 4 skill categories, got %d", len(chat.SkillCategories))
	}

	tools, ok := chat.SkillCategory("skills_tools")
	if !ok {
		t.Fatal("skills_tools missing")
	}
	if len(tools.Subskills) != 13 {
		t.Errorf("expected 13 tool subskills, got %d", len(tools.Subskills))
	}

	sub, parent, ok := chat.SkillSub("skills_tools_figma")
	if !ok {
		t.Fatal("skills_tools_figma missing")
	}
	if parent.ID != "skills_tools" {
		t.Errorf("wrong parent category %q", parent.ID)
	}
	if sub.Description == "" {
		t.Error("figma subskill has no description")
	}

	if _, ok := chat.DesignMacro("skills_design_ux"); !ok {
		t.Error("skills_design_ux macro missing")
	}

	if len(chat.ProcessScreens) != 7 {
		t.Fatalf("expected 7 process screens, got %d", len(chat.ProcessScreens))
	}
	ps, ok := chat.ProcessScreen("PROCESS_POST_LAUNCH")
	if !ok {
		t.Fatal("PROCESS_POST_LAUNCH missing")
	}
	if ps.Label != "Post Launch Evaluation" {
		t.Errorf("unexpected label %q", ps.Label)
	}
}
