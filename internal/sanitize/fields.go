// Package sanitize normalizes user supplied post fields. Every function is pure and never fails:
// unsafe or oversized input is degraded to a safe subset.
package sanitize

import (
	"strings"
	"unicode/utf8"

	"bizfeed/model"
)

const (
	MaxTitle        = 70
	MaxBusinessName = 60
	MaxCategory     = 40
	MaxCity         = 60
	MaxRegion       = 60
	MaxDescription  = 20000

	MaxKeywords   = 10
	MaxKeywordLen = 24
	MaxTags       = 12
	MaxTagLen     = 28

	MaxImages = 3
)

// Clamp trims s and cuts it to at most max runes.
func Clamp(s string, max int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:max]))
}

// Keywords lower-cases, trims and dedupes; entries longer than MaxKeywordLen are dropped.
// A non-nil filter additionally drops keywords containing banned words.
func Keywords(in []string, filter *ProfanityFilter) []string {
	out := list(in, MaxKeywords, MaxKeywordLen, strings.ToLower)
	if filter == nil {
		return out
	}
	kept := out[:0]
	for _, k := range out {
		if filter.Contains(k) {
			continue
		}
		kept = append(kept, k)
	}
	return kept
}

// Tags keeps the case of moderation tags.
func Tags(in []string) []string {
	return list(in, MaxTags, MaxTagLen, nil)
}

func list(in []string, maxItems, maxLen int, fold func(string) string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if fold != nil {
			s = fold(s)
		}
		if s == "" || utf8.RuneCountInString(s) > maxLen {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == maxItems {
			break
		}
	}
	return out
}

// Images keeps the first MaxImages entries that carry a source reference.
func Images(in []model.Image) []model.Image {
	out := make([]model.Image, 0, MaxImages)
	for _, img := range in {
		img.URI = strings.TrimSpace(img.URI)
		if img.URI == "" {
			continue
		}
		img.Caption = strings.TrimSpace(img.Caption)
		out = append(out, img)
		if len(out) == MaxImages {
			break
		}
	}
	return out
}

// Location returns nil unless city or region is non-empty after trimming.
func Location(in *model.Location) *model.Location {
	if in == nil {
		return nil
	}
	loc := model.Location{
		City:   Clamp(in.City, MaxCity),
		Region: Clamp(in.Region, MaxRegion),
	}
	if loc.City == "" && loc.Region == "" {
		return nil
	}
	return &loc
}

// Role upper-cases a free-form role label.
func Role(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
