// Package cursor encodes opaque paging positions over the ranked feed.
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

var ErrInvalid = errors.New("invalid cursor")

// Cursor marks the position after the last item served: how many items were served
// and the id of the last one, used to resync when the feed shifted in between.
type Cursor struct {
	Offset int    `json:"offset"`
	LastID string `json:"id"`
}

func Encode(offset int, lastID string) string {
	b, _ := json.Marshal(Cursor{Offset: offset, LastID: lastID})
	return base64.RawURLEncoding.EncodeToString(b)
}

func Decode(s string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalid
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil || c.Offset < 0 {
		return Cursor{}, ErrInvalid
	}
	return c, nil
}

// Start returns the index to resume from in ids. When the item at Offset-1 is no
// longer LastID the position of LastID wins; a vanished LastID falls back to Offset.
func (c Cursor) Start(ids []string) int {
	if c.Offset > 0 && c.Offset <= len(ids) && ids[c.Offset-1] == c.LastID {
		return c.Offset
	}
	for i, id := range ids {
		if id == c.LastID {
			return i + 1
		}
	}
	return min(c.Offset, len(ids))
}
