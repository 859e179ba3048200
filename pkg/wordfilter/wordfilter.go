// Package wordfilter screens user-supplied titles against a configured word
// list before they enter a shared pool. Matching is case-insensitive and on
// word boundaries, so "Porn Tycoon" matches but "popcorn" does not.
package wordfilter

import (
	"regexp"
	"strings"
)

// DefaultWords is the stock block list applied to game names added to pools.
var DefaultWords = []string{
	"porn",
	"hentai",
	"nsfw",
	"sex",
	"xxx",
	"nude",
	"nudity",
	"erotic",
}

// Filter matches words from a fixed list on word boundaries.
type Filter struct {
	re *regexp.Regexp
}

// New compiles a filter from the given words. Words are matched
// case-insensitively on word boundaries; an empty list yields a filter that
// matches nothing.
func New(words []string) *Filter {
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		cleaned = append(cleaned, regexp.QuoteMeta(w))
	}

	if len(cleaned) == 0 {
		return &Filter{}
	}

	return &Filter{
		re: regexp.MustCompile(`(?i)\b(` + strings.Join(cleaned, "|") + `)\b`),
	}
}

// Match reports the first blocked word found in s, if any.
func (f *Filter) Match(s string) (string, bool) {
	if f == nil || f.re == nil {
		return "", false
	}
	m := f.re.FindString(s)
	if m == "" {
		return "", false
	}
	return m, true
}
