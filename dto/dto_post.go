package dto

import "bizfeed/internal/feed"

type CreatePostRequest struct {
	feed.CreatePayload
	// OwnerUserID publishes on behalf of another account (moderation override only).
	OwnerUserID string `json:"ownerUserId,omitempty"`
}

type UpdatePostRequest struct {
	feed.OwnerPatch
	Moderation *feed.ModerationPatch `json:"moderation,omitempty"`
}

type SweepResponse struct {
	Changed int `json:"changed"`
}
