package normalize

import (
	"regexp"
	"strings"
)

// defaultNoiseWords are processor boilerplate phrases stripped from
// descriptions before hashing, in this order. Removal is literal
// substring replacement, not word-boundary aware, so a phrase embedded
// inside a longer token is stripped too.
var defaultNoiseWords = []string{
	"card purchase",
	"pos",
	"purchase",
	"debit",
	"credit",
	"us",
}

var (
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Cleaner canonicalizes free-text transaction descriptions into the
// matching key used for identity. The cleaned form is never shown to
// users in place of the raw description.
type Cleaner struct {
	noise []string
}

// NewCleaner builds a Cleaner with the given noise phrase list. A nil
// or empty list selects the built-in defaults.
func NewCleaner(noise []string) *Cleaner {
	if len(noise) == 0 {
		noise = defaultNoiseWords
	}
	return &Cleaner{noise: noise}
}

// Clean maps an arbitrary description to its canonical matching key:
// lowercase, punctuation replaced by spaces, whitespace collapsed,
// noise phrases removed. Pure function of its input.
func (c *Cleaner) Clean(desc string) string {
	if desc == "" {
		return ""
	}

	s := strings.ToLower(desc)
	s = nonAlnumRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))

	for _, n := range c.noise {
		s = strings.ReplaceAll(s, n, "")
	}

	// Removals can leave double or dangling spaces behind.
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
