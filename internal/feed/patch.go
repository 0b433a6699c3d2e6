package feed

import (
	"bytes"
	"encoding/json"

	"bizfeed/model"
)

// Nullable distinguishes an absent field from an explicit null in a patch.
// Set is true whenever the field was supplied; Value is nil for null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func Null[T any]() Nullable[T] { return Nullable[T]{Set: true} }

func Value[T any](v T) Nullable[T] { return Nullable[T]{Set: true, Value: &v} }

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// OwnerPatch holds the fields a post's owner may change. Nil means unchanged and
// an empty, non-nil slice clears the list. A Location with both fields blank removes it.
type OwnerPatch struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Keywords    []string        `json:"keywords,omitempty"`
	Images      []model.Image   `json:"images,omitempty"`
	Location    *model.Location `json:"location,omitempty"`
}

// ModerationPatch holds the fields only a moderation override may change.
// PlanType and VisibilityStatus values that are not recognized are ignored.
type ModerationPatch struct {
	RankingScore          *float64        `json:"rankingScore,omitempty"`
	PlanType              *string         `json:"planType,omitempty"`
	VisibilityStatus      *string         `json:"visibilityStatus,omitempty"`
	ExpiresAt             Nullable[int64] `json:"expiresAt"`
	IsPermanent           *bool           `json:"isPermanent,omitempty"`
	OwnerBusinessName     *string         `json:"ownerBusinessName,omitempty"`
	OwnerCategory         *string         `json:"ownerCategory,omitempty"`
	OwnerUserID           *string         `json:"ownerUserId,omitempty"`
	PinnedRank            Nullable[int]   `json:"pinnedRank"`
	ModerationTags        []string        `json:"moderationTags,omitempty"`
	LastModeratedByUserID *string         `json:"lastModeratedByUserId,omitempty"`
	LastModeratedAt       Nullable[int64] `json:"lastModeratedAt"`
	AuthorRole            *string         `json:"authorRole,omitempty"`
}
