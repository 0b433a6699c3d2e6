package feed

import (
	"context"
	"strings"

	"bizfeed/internal/plans"
	"bizfeed/internal/sanitize"
	"bizfeed/model"
)

// UpdateRequest patches a post. Moderation is ignored unless AllowOverride is set.
type UpdateRequest struct {
	Actor         model.Actor
	PostID        string
	Owner         OwnerPatch
	Moderation    *ModerationPatch
	AllowOverride bool
}

func (e *Engine) Update(ctx context.Context, req UpdateRequest) (model.Post, error) {
	release, err := e.acquire(ctx)
	if err != nil {
		return model.Post{}, err
	}
	defer release()

	posts, err := e.load(ctx)
	if err != nil {
		return model.Post{}, err
	}
	i := indexOf(posts, req.PostID)
	if i < 0 {
		return model.Post{}, e.reject("update", ErrNotFound)
	}
	if !canModify(posts[i], req.Actor, req.AllowOverride) {
		return model.Post{}, e.reject("update", ErrNotAllowed)
	}

	next := posts[i].Clone()
	e.applyOwnerPatch(&next, req.Owner)
	if req.AllowOverride && req.Moderation != nil {
		e.applyModerationPatch(&next, posts[i], *req.Moderation, req.Actor)
	}
	if next.Title == "" || next.OwnerBusinessName == "" || next.OwnerCategory == "" {
		return model.Post{}, e.reject("update", ErrValidation)
	}
	next.UpdatedAt = e.nowMillis()

	posts[i] = next
	if err := e.save(ctx, posts); err != nil {
		return model.Post{}, err
	}
	e.log.Info().
		Str("post_id", next.PostID).
		Str("actor", req.Actor.ID).
		Bool("override", req.AllowOverride).
		Msg("feed: post updated")
	return next.Clone(), nil
}

// canModify holds for the post's owner or for any moderation override.
func canModify(p model.Post, actor model.Actor, override bool) bool {
	if override {
		return true
	}
	id := strings.TrimSpace(actor.ID)
	return id != "" && id == p.OwnerUserID
}

func (e *Engine) applyOwnerPatch(p *model.Post, patch OwnerPatch) {
	if patch.Title != nil {
		p.Title = sanitize.Clamp(*patch.Title, sanitize.MaxTitle)
	}
	if patch.Description != nil {
		p.Description = sanitize.RichText(*patch.Description)
	}
	if patch.Keywords != nil {
		p.Keywords = sanitize.Keywords(patch.Keywords, e.keywordFilter)
	}
	if patch.Images != nil {
		p.Images = sanitize.Images(patch.Images)
	}
	if patch.Location != nil {
		p.Location = sanitize.Location(patch.Location)
	}
}

// applyModerationPatch merges override-only fields. prev is the stored record and
// guards the DELETED state, which no patch can leave.
func (e *Engine) applyModerationPatch(p *model.Post, prev model.Post, patch ModerationPatch, actor model.Actor) {
	if patch.RankingScore != nil {
		p.RankingScore = *patch.RankingScore
	}
	if patch.PlanType != nil {
		if pt, ok := plans.Parse(*patch.PlanType); ok {
			p.PlanType = pt
		} else {
			e.log.Warn().Str("post_id", p.PostID).Str("plan_type", *patch.PlanType).Msg("feed: ignoring unknown plan type")
		}
	}
	if patch.VisibilityStatus != nil {
		v, ok := model.ParseVisibility(*patch.VisibilityStatus)
		switch {
		case !ok || v == model.VisibilityExpired:
			e.log.Warn().Str("post_id", p.PostID).Str("visibility", *patch.VisibilityStatus).Msg("feed: ignoring visibility value")
		case prev.VisibilityStatus == model.VisibilityDeleted:
			e.log.Warn().Str("post_id", p.PostID).Msg("feed: deleted post keeps its state")
		default:
			p.VisibilityStatus = v
		}
	}
	if patch.ExpiresAt.Set {
		p.ExpiresAt = copyPtr(patch.ExpiresAt.Value)
	}
	if patch.IsPermanent != nil {
		p.IsPermanent = *patch.IsPermanent
	}
	if patch.OwnerBusinessName != nil {
		p.OwnerBusinessName = sanitize.Clamp(*patch.OwnerBusinessName, sanitize.MaxBusinessName)
	}
	if patch.OwnerCategory != nil {
		p.OwnerCategory = sanitize.Clamp(*patch.OwnerCategory, sanitize.MaxCategory)
	}
	if patch.OwnerUserID != nil {
		if id := strings.TrimSpace(*patch.OwnerUserID); id != "" {
			p.OwnerUserID = id
		}
	}
	if patch.PinnedRank.Set {
		p.PinnedRank = validPinnedRank(patch.PinnedRank.Value)
	}
	if patch.ModerationTags != nil {
		p.ModerationTags = sanitize.Tags(patch.ModerationTags)
	}
	if patch.AuthorRole != nil {
		p.AuthorRole = sanitize.Role(*patch.AuthorRole)
	}

	p.LastModeratedByUserID = strings.TrimSpace(actor.ID)
	if patch.LastModeratedByUserID != nil {
		p.LastModeratedByUserID = strings.TrimSpace(*patch.LastModeratedByUserID)
	}
	at := e.nowMillis()
	p.LastModeratedAt = &at
	if patch.LastModeratedAt.Set {
		p.LastModeratedAt = copyPtr(patch.LastModeratedAt.Value)
	}
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
