package sanitize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// ProfanityFilter matches banned words. ASCII words match on word boundaries and
// case-insensitively; other scripts match as plain substrings since they often lack spaces.
type ProfanityFilter struct {
	patterns []*regexp.Regexp
}

// DefaultBannedWords is a starter list; deployments extend it through configuration.
var DefaultBannedWords = []string{
	"fuck", "fucking", "motherfucker", "shit", "bullshit", "bastard", "bitch",
	"dick", "cock", "pussy", "cunt", "asshole", "dumbass", "jackass", "retard",
	"slut", "whore", "nigger", "faggot", "wanker", "twat", "prick", "bollocks",
	"porn", "dildo", "blowjob", "handjob", "cumshot", "milf",
}

// NewProfanityFilter trims and dedupes words; longer words are tried first.
func NewProfanityFilter(words []string) *ProfanityFilter {
	uniq := make([]string, 0, len(words))
	seen := map[string]struct{}{}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}
	sort.SliceStable(uniq, func(i, j int) bool {
		return len([]rune(uniq[i])) > len([]rune(uniq[j]))
	})
	pats := make([]*regexp.Regexp, 0, len(uniq))
	for _, w := range uniq {
		pattern := regexp.QuoteMeta(w)
		if isASCIIWord(w) {
			pattern = `(?i)\b` + pattern + `\b`
		}
		pats = append(pats, regexp.MustCompile(pattern))
	}
	return &ProfanityFilter{patterns: pats}
}

func (pf *ProfanityFilter) Contains(s string) bool {
	if pf == nil || s == "" {
		return false
	}
	for _, re := range pf.patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func isASCIIWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-') {
			return false
		}
	}
	return true
}
