// Package navigator drives one conversation: a transcript, fast-path
// commands, chip dispatch over the content tree, and a classifier fallback
// for free text nothing else claims.
package navigator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/savia-portfolio-chat/internal/content"
	"github.com/savia-portfolio-chat/internal/render"
)

var (
	// ErrBusy is returned while a previous turn is still being handled.
	ErrBusy = errors.New("session is busy")
	// ErrEmptyMessage is returned for blank input.
	ErrEmptyMessage = errors.New("empty message")
)

// Well-known action tokens. Everything else resolves against the skills
// catalog, the content tree, or falls through to the classifier.
const (
	ActionContactMe      = "CONTACT_ME"
	ActionDownloadResume = "DOWNLOAD_RESUME"
	ActionDesignProcess  = "MY_DESIGN_PROCESS"
	ActionMedium         = "MEDIUM"
	ActionWork           = "work"
	ActionSkills         = "skills"
	ActionAbout          = "about"
	ActionExperience     = "experience"
)

// Replies to free text arrive no sooner than this, so fast answers still
// read as considered.
const (
	minThinking = 1500 * time.Millisecond
	thinkingPad = 50 * time.Millisecond
)

func thinkingDelay(elapsed time.Duration) time.Duration {
	d := minThinking - elapsed
	if d < 0 {
		d = 0
	}
	return d + thinkingPad
}

// Session is one visitor's conversation. A session handles one turn at a
// time; concurrent turns get ErrBusy instead of queueing.
type Session struct {
	ID         string
	catalog    *content.Catalog
	classifier Classifier
	logger     *zap.Logger

	sleep func(time.Duration)
	now   func() time.Time

	mu               sync.Mutex
	busy             bool
	contactRequested bool
	transcript       []Message
}

// NewSession seeds a session with the greeting turn.
func NewSession(id string, catalog *content.Catalog, classifier Classifier, logger *zap.Logger) *Session {
	s := &Session{
		ID:         id,
		catalog:    catalog,
		classifier: classifier,
		logger:     logger.Named("session").With(zap.String("session_id", id)),
		sleep:      time.Sleep,
		now:        time.Now,
	}
	s.transcript = append(s.transcript, assistantMessage(s.greetingReply()))
	return s
}

func (s *Session) greetingReply() Reply {
	return Reply{
		Message: s.catalog.Chat.Greeting,
		Buttons: []Button{
			makeButton("my-work", "My Work", ActionWork, "outline"),
			makeButton("experience", "Experience", ActionExperience, "outline"),
			makeButton("skills", "Skills", ActionSkills, "outline"),
			makeButton("about-me", "About Me", ActionAbout, "outline"),
			makeButton("contact", "Contact", ActionContactMe, "outline"),
			makeButton("resume", "Resume", ActionDownloadResume, "outline"),
		},
	}
}

// Busy reports whether a turn is currently being handled.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// ContactRequested reports whether the visitor pressed the contact chip.
func (s *Session) ContactRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contactRequested
}

// Transcript returns a copy of the conversation so far.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Session) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *Session) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *Session) append(m Message) {
	s.mu.Lock()
	s.transcript = append(s.transcript, m)
	s.mu.Unlock()
}

// deliver normalizes the reply text, records the turn, and returns it.
func (s *Session) deliver(r Reply) Reply {
	r.Message = render.Clean(r.Message)
	s.append(assistantMessage(r))
	return r
}

// HandleText processes one free-text turn. Fast-path keywords answer
// immediately; everything else goes to the classifier behind the thinking
// floor.
func (s *Session) HandleText(ctx context.Context, text string) (Reply, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Reply{}, ErrEmptyMessage
	}
	if err := s.acquire(); err != nil {
		return Reply{}, err
	}
	defer s.release()

	s.append(userMessage(trimmed, false))

	if reply, ok := s.fastPath(strings.ToLower(trimmed)); ok {
		return s.deliver(reply), nil
	}
	return s.classifyTurn(ctx, trimmed, true), nil
}

// fastPath answers quick commands without the classifier. Order matters:
// "show me your resume and contact info" resolves to resume.
func (s *Session) fastPath(lower string) (Reply, bool) {
	chat := s.catalog.Chat
	switch {
	case strings.Contains(lower, "resume"):
		return Reply{Message: chat.ResumePrompt, Resume: true}, true
	case strings.Contains(lower, "contact"):
		return Reply{Message: chat.ContactPrompt, Contact: true}, true
	case strings.Contains(lower, "case study"), strings.Contains(lower, "case studies"):
		return Reply{Message: chat.CaseStudiesPrompt, Portfolio: true}, true
	case strings.Contains(lower, "medium"):
		return Reply{Message: chat.Medium}, true
	case strings.Contains(lower, "work"):
		return s.workReply(), true
	case strings.Contains(lower, "skills"):
		return Reply{Message: chat.SkillsOverview, Buttons: s.categoryButtons()}, true
	}
	return Reply{}, false
}

// classifyTurn delegates to the classifier. paced turns honor the thinking
// floor; button forwards do not.
func (s *Session) classifyTurn(ctx context.Context, message string, paced bool) Reply {
	start := s.now()
	reply, err := s.classifier.Classify(ctx, message)
	if paced {
		s.sleep(thinkingDelay(s.now().Sub(start)))
	}

	if err != nil {
		s.logger.Warn("classifier unavailable", zap.Error(err))
		reply = Reply{Message: s.catalog.Chat.ConnectionTrouble}
	}
	return s.deliver(reply)
}

// HandleButton processes one chip press. Unrecognized actions are wrapped
// in a button-action marker and forwarded to the classifier.
func (s *Session) HandleButton(ctx context.Context, btn Button) (Reply, error) {
	if err := s.acquire(); err != nil {
		return Reply{}, err
	}
	defer s.release()

	s.append(userMessage(btn.Text, true))

	if reply, ok := s.dispatch(btn.Action); ok {
		return s.deliver(reply), nil
	}
	return s.classifyTurn(ctx, "[BUTTON_ACTION: "+btn.Action+"]", false), nil
}

func (s *Session) dispatch(action string) (Reply, bool) {
	chat := s.catalog.Chat

	switch action {
	case ActionDesignProcess:
		return s.processMenuReply(), true
	case ActionSkills:
		return Reply{Message: chat.SkillsTap, Buttons: s.categoryButtons()}, true
	case ActionWork:
		return s.workReply(), true
	case ActionMedium:
		return Reply{Message: chat.Medium}, true
	case ActionAbout:
		return collectionMenu(s.catalog.Tree.About(), chat.AboutIntro), true
	case ActionExperience:
		return collectionMenu(s.catalog.Tree.Experience(), chat.ExperienceIntro), true
	case ActionContactMe:
		s.mu.Lock()
		s.contactRequested = true
		s.mu.Unlock()
		return Reply{Message: chat.ContactPrompt, Contact: true}, true
	case ActionDownloadResume:
		return Reply{Message: chat.ResumeButton, Resume: true}, true
	case "skills_design":
		return s.designMenuReply(), true
	case "skills_research":
		back := makeButton("back_to_skills_from_research", "← Back to Skills", ActionSkills, "secondary")
		return Reply{Message: chat.ResearchText, Buttons: []Button{back}}, true
	}

	if screen, ok := chat.ProcessScreen(action); ok {
		back := makeButton("back_my_design_process", "← Back to My Design Process", ActionDesignProcess, "secondary")
		return Reply{Message: screen.Body, Buttons: []Button{back}}, true
	}
	if macro, ok := chat.DesignMacro(action); ok {
		back := makeButton("back_to_design", "← Back to Design", "skills_design", "secondary")
		return Reply{Message: macro.Text, Buttons: []Button{back}}, true
	}
	if cat, ok := chat.SkillCategory(action); ok {
		buttons := []Button{makeButton("back_"+cat.ID, "← Back to Skills", ActionSkills, "secondary")}
		for _, sub := range cat.Subskills {
			buttons = append(buttons, makeButton(sub.ID, sub.Label, sub.ID, "secondary"))
		}
		return Reply{Message: cat.Intro, Buttons: buttons}, true
	}
	if sub, cat, ok := chat.SkillSub(action); ok {
		text := sub.Description
		if text == "" {
			text = sub.Label
		}
		back := makeButton("back_"+cat.ID, "← Back to Skills", ActionSkills, "secondary")
		return Reply{Message: text, Buttons: []Button{back}}, true
	}
	if reply, ok := s.treeReply(action); ok {
		return reply, true
	}

	return Reply{}, false
}

func (s *Session) workReply() Reply {
	return Reply{
		Message:   s.catalog.Chat.WorkMenu,
		Work:      true,
		Portfolio: true,
		Buttons: []Button{
			makeButton("my_design_process", "My Design Process", ActionDesignProcess, "secondary"),
			makeButton("medium_profile", "Medium", ActionMedium, "secondary"),
		},
	}
}

func (s *Session) categoryButtons() []Button {
	cats := s.catalog.Chat.SkillCategories
	buttons := make([]Button, 0, len(cats))
	for _, cat := range cats {
		buttons = append(buttons, makeButton(cat.ID, cat.Label, cat.ID, "secondary"))
	}
	return buttons
}

func (s *Session) processMenuReply() Reply {
	screens := s.catalog.Chat.ProcessScreens
	buttons := make([]Button, 0, len(screens)+1)
	for _, ps := range screens {
		buttons = append(buttons, makeButton(strings.ToLower(ps.Token), ps.Label, ps.Token, "secondary"))
	}
	buttons = append(buttons, makeButton("process_back_to_work", "← Back to My Work", ActionWork, "secondary"))
	return Reply{Message: s.catalog.Chat.ProcessIntro, Buttons: buttons}
}

func (s *Session) designMenuReply() Reply {
	buttons := []Button{makeButton("back_to_skills_from_design", "← Back to Skills", ActionSkills, "secondary")}
	for _, m := range s.catalog.Chat.DesignMacros {
		buttons = append(buttons, makeButton(m.ID, m.Label, m.ID, "secondary"))
	}
	return Reply{Message: s.catalog.Chat.DesignIntro, Buttons: buttons}
}

// collectionMenu lists a collection's chips under an intro line.
func collectionMenu(nodes []content.Node, intro string) Reply {
	buttons := make([]Button, 0, len(nodes))
	for _, n := range nodes {
		buttons = append(buttons, makeButton("chip_"+n.Key, n.ButtonText, n.Key, "secondary"))
	}
	return Reply{Message: intro, Buttons: buttons}
}

// treeReply resolves an action as a content-tree node. The detail shows the
// node text, a back chip to the parent level, chips into the next level when
// the node has one, and the remaining siblings.
func (s *Session) treeReply(action string) (Reply, bool) {
	node, collection, ok := s.findNode(action)
	if !ok {
		return Reply{}, false
	}

	var buttons []Button
	if back, ok := s.backButton(collection); ok {
		buttons = append(buttons, back)
	}
	if node.NextLevel != "" {
		next, _ := s.catalog.Tree.Collection(node.NextLevel)
		for _, n := range next {
			buttons = append(buttons, makeButton("chip_"+n.Key, n.ButtonText, n.Key, "secondary"))
		}
	}
	siblings, _ := s.catalog.Tree.Collection(collection)
	for _, n := range siblings {
		if n.Key != node.Key {
			buttons = append(buttons, makeButton("chip_"+n.Key, n.ButtonText, n.Key, "secondary"))
		}
	}
	return Reply{Message: node.Description, Buttons: buttons}, true
}

func (s *Session) findNode(key string) (content.Node, string, bool) {
	for _, name := range s.catalog.Tree.Order() {
		if n, ok := s.catalog.Tree.Node(name, key); ok {
			return n, name, true
		}
	}
	return content.Node{}, "", false
}

// backButton targets the node whose next_level is this collection, so deep
// levels unwind the way they were entered.
func (s *Session) backButton(collection string) (Button, bool) {
	switch collection {
	case "about_details":
		return makeButton("back_about", "← Back to About", ActionAbout, "secondary"), true
	case "experience_details":
		return makeButton("back_experience", "← Back to Experience", ActionExperience, "secondary"), true
	}
	for _, name := range s.catalog.Tree.Order() {
		nodes, _ := s.catalog.Tree.Collection(name)
		for _, n := range nodes {
			if n.NextLevel == collection {
				return makeButton("back_"+n.Key, "← Back", n.Key, "secondary"), true
			}
		}
	}
	return Button{}, false
}

func makeButton(id, text, action, variant string) Button {
	return Button{ID: id, Text: text, Action: action, Variant: variant, LinkType: "internal"}
}
