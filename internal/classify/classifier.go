// Package classify answers free-text visitor messages from static tables.
// Matching is case-insensitive substring containment in a fixed precedence
// order: the VIP projects category, the remaining VIP categories, technical
// keywords, recruiter keywords, off-topic keywords, then a generic welcome.
// First match wins; there is no scoring and no longest-match preference.
package classify

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

// Answer is one classified response plus the display hints the rendering
// layer consumes.
type Answer struct {
	Message   string `json:"message"`
	Portfolio bool   `json:"portfolio,omitempty"`
	Contact   bool   `json:"contact,omitempty"`
	Resume    bool   `json:"resume,omitempty"`
	Work      bool   `json:"work,omitempty"`

	// Category names the table that produced the answer. Diagnostic only,
	// never serialized to the visitor.
	Category string `json:"-"`
}

// Engine classifies messages against the static tables. It is stateless
// apart from counters; Classify is a pure function of its input.
type Engine struct {
	logger *zap.Logger

	requestCount atomic.Int64
	vipHits      atomic.Int64
	fallbackHits atomic.Int64
}

// NewEngine creates a classifier engine.
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{logger: logger.Named("classify")}
}

// Classify resolves one free-text message to a canned answer. Empty or
// whitespace-only input matches nothing and falls through to the welcome
// answer, which is the malformed-input contract as well.
func (e *Engine) Classify(message string) Answer {
	e.requestCount.Add(1)
	lower := strings.ToLower(message)

	if cat, ok := matchVIP(lower); ok {
		e.vipHits.Add(1)
		e.logger.Debug("vip match", zap.String("category", cat.Key))
		return Answer{Message: cat.Answer, Category: cat.Key}
	}

	if containsAny(lower, techKeywords) {
		e.fallbackHits.Add(1)
		e.logger.Debug("technical keyword match")
		return Answer{Message: technicalFallbackAnswer, Contact: true, Category: "technical"}
	}

	if containsAny(lower, recruiterKeywords) {
		e.fallbackHits.Add(1)
		e.logger.Debug("recruiter keyword match")
		return Answer{Message: recruiterFallbackAnswer, Contact: true, Category: "recruiter"}
	}

	if containsAny(lower, offTopicKeywords) {
		e.fallbackHits.Add(1)
		e.logger.Debug("off-topic keyword match")
		return Answer{Message: offTopicFallbackAnswer, Contact: true, Category: "offtopic"}
	}

	e.logger.Debug("no match, returning welcome menu")
	return Answer{Message: welcomeAnswer, Contact: true, Category: "welcome"}
}

// matchVIP checks the projects category first, then the rest in authoring
// order. The early projects check is intentional product behavior.
func matchVIP(lower string) (VIPCategory, bool) {
	if containsAny(lower, vipProjects.Variants) {
		return vipProjects, true
	}
	for _, cat := range vipCategories {
		if containsAny(lower, cat.Variants) {
			return cat, true
		}
	}
	return VIPCategory{}, false
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// Stats returns how many messages were classified and how many resolved to a
// VIP answer versus a keyword fallback.
func (e *Engine) Stats() (total, vip, fallback int64) {
	return e.requestCount.Load(), e.vipHits.Load(), e.fallbackHits.Load()
}
