// Package render normalizes authored markdown into the plain-text shape the
// chat surface displays: structural markers are stripped, bullet and numbered
// lists are re-drawn uniformly, links are kept verbatim.
package render

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

var (
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.*?)\*`)
	fenceRe      = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	hruleRe      = regexp.MustCompile(`(?m)^[-*_]{3,}$`)
	blockquoteRe = regexp.MustCompile(`(?m)^>\s*`)
	blankRunRe   = regexp.MustCompile(`\n\s*\n\s*\n`)
	bulletRe     = regexp.MustCompile(`^[-*•]\s`)
	orderedRe    = regexp.MustCompile(`^\d+\.\s`)
)

// Clean strips markdown decoration and re-draws lists. Bullet lines become
// "• " lines; ordered lines are renumbered from 1 within each paragraph so
// authored numbering gaps do not leak through. Links survive untouched.
func Clean(message string) string {
	if message == "" {
		return ""
	}

	s := headingRe.ReplaceAllString(message, "")
	s = boldRe.ReplaceAllString(s, "$1")
	s = italicRe.ReplaceAllString(s, "$1")
	s = fenceRe.ReplaceAllString(s, "")
	s = inlineCodeRe.ReplaceAllString(s, "$1")
	s = hruleRe.ReplaceAllString(s, "")
	s = blockquoteRe.ReplaceAllString(s, "")
	for blankRunRe.MatchString(s) {
		s = blankRunRe.ReplaceAllString(s, "\n\n")
	}
	s = strings.TrimSpace(s)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	paragraphs := strings.Split(s, "\n\n")
	for i, p := range paragraphs {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(reflowParagraph(p))
	}
	return buf.String()
}

func reflowParagraph(p string) string {
	trimmed := strings.TrimSpace(p)
	switch {
	case bulletRe.MatchString(trimmed):
		lines := strings.Split(p, "\n")
		out := make([]string, len(lines))
		for i, line := range lines {
			lt := strings.TrimSpace(line)
			if bulletRe.MatchString(lt) {
				out[i] = "• " + bulletRe.ReplaceAllString(lt, "")
			} else {
				out[i] = line
			}
		}
		return strings.Join(out, "\n")
	case orderedRe.MatchString(trimmed):
		lines := strings.Split(p, "\n")
		out := make([]string, len(lines))
		counter := 1
		for i, line := range lines {
			lt := strings.TrimSpace(line)
			if orderedRe.MatchString(lt) {
				out[i] = strconv.Itoa(counter) + ". " + orderedRe.ReplaceAllString(lt, "")
				counter++
			} else {
				out[i] = line
			}
		}
		return strings.Join(out, "\n")
	default:
		return p
	}
}
