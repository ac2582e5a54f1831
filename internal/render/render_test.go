package render

import "testing"

func TestCleanStripsDecoration(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"heading", "## Skills overview\n\nTap a category.", "Skills overview\n\nTap a category."},
		{"bold", "**Skills overview**\n\nTap a category.", "Skills overview\n\nTap a category."},
		{"italic", "this is *really* important", "this is really important"},
		{"inline code", "use the `work` command", "use the work command"},
		{"blockquote", "> quoted advice", "quoted advice"},
		{"empty", "", ""},
		{"whitespace only", "   \n  ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.in); got != tc.want {
				t.Errorf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanDropsCodeFences(t *testing.T) {
	in := "before\n\n```\ncode here\n```\n\nafter"
	got := Clean(in)
	if got != "before\n\nafter" {
		t.Errorf("got %q", got)
	}
}

func TestCleanPreservesLinks(t *testing.T) {
	in := "Read it here: [Visit my Medium profile](https://medium.com/@rayelencoria)"
	if got := Clean(in); got != in {
		t.Errorf("links must survive untouched, got %q", got)
	}
}

func TestCleanRedrawsBullets(t *testing.T) {
	in := "- first\n* second\n• third"
	want := "• first\n• second\n• third"
	if got := Clean(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanRenumbersOrderedLists(t *testing.T) {
	// Authored numbering starts at 4; output restarts at 1 per paragraph.
	in := "4. collect data\n5. analyze findings"
	want := "1. collect data\n2. analyze findings"
	if got := Clean(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanNumberingResetsPerParagraph(t *testing.T) {
	in := "1. one\n2. two\n\n7. seven\n8. eight"
	want := "1. one\n2. two\n\n1. seven\n2. eight"
	if got := Clean(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCleanCollapsesBlankRuns(t *testing.T) {
	in := "a\n\n\n\nb"
	if got := Clean(in); got != "a\n\nb" {
		t.Errorf("got %q", got)
	}
}

func TestCleanStripsHorizontalRules(t *testing.T) {
	in := "above\n\n---\n\nbelow"
	if got := Clean(in); got != "above\n\nbelow" {
		t.Errorf("got %q", got)
	}
}
