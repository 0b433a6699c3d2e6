package model

import "time"

type PlanType string

const (
	PlanWelcome PlanType = "WELCOME"
	PlanEntry   PlanType = "ENTRY"
	PlanBasic   PlanType = "BASIC"
	PlanPro     PlanType = "PRO"
)

type Visibility string

const (
	VisibilityActive  Visibility = "ACTIVE"
	VisibilityPaused  Visibility = "PAUSED"
	VisibilityExpired Visibility = "EXPIRED"
	VisibilityDeleted Visibility = "DELETED"
)

// ParseVisibility accepts only the four known states.
func ParseVisibility(s string) (Visibility, bool) {
	switch v := Visibility(s); v {
	case VisibilityActive, VisibilityPaused, VisibilityExpired, VisibilityDeleted:
		return v, true
	}
	return "", false
}

type Image struct {
	URI     string `json:"uri"`
	Caption string `json:"caption,omitempty"`
}

type Location struct {
	City   string `json:"city"`
	Region string `json:"region"`
}

// Post is the only persisted entity of the feed. Times are epoch milliseconds.
type Post struct {
	PostID            string     `json:"postId"`
	OwnerUserID       string     `json:"ownerUserId"`
	OwnerBusinessName string     `json:"ownerBusinessName"`
	OwnerCategory     string     `json:"ownerCategory"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Keywords          []string   `json:"keywords"`
	Images            []Image    `json:"images"`
	Location          *Location  `json:"location,omitempty"`
	CreatedAt         int64      `json:"createdAt"`
	UpdatedAt         int64      `json:"updatedAt"`
	ExpiresAt         *int64     `json:"expiresAt"`
	IsPermanent       bool       `json:"isPermanent"`
	PlanType          PlanType   `json:"planType"`
	VisibilityStatus  Visibility `json:"visibilityStatus"`
	RankingScore      float64    `json:"rankingScore"`
	PinnedRank        *int       `json:"pinnedRank"`
	ModerationTags    []string   `json:"moderationTags"`

	LastModeratedByUserID string `json:"lastModeratedByUserId,omitempty"`
	LastModeratedAt       *int64 `json:"lastModeratedAt,omitempty"`
	AuthorRole            string `json:"authorRole"`
}

func (p Post) Pinned() bool { return p.PinnedRank != nil }

// Clone returns a deep copy so callers can mutate slices without touching the stored record.
func (p Post) Clone() Post {
	out := p
	out.Keywords = cloneSlice(p.Keywords)
	out.Images = cloneSlice(p.Images)
	out.ModerationTags = cloneSlice(p.ModerationTags)
	if p.Location != nil {
		loc := *p.Location
		out.Location = &loc
	}
	if p.ExpiresAt != nil {
		v := *p.ExpiresAt
		out.ExpiresAt = &v
	}
	if p.PinnedRank != nil {
		v := *p.PinnedRank
		out.PinnedRank = &v
	}
	if p.LastModeratedAt != nil {
		v := *p.LastModeratedAt
		out.LastModeratedAt = &v
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func Millis(t time.Time) int64 { return t.UnixMilli() }

func FromMillis(ms int64) time.Time { return time.UnixMilli(ms) }
