package feed

import (
	"context"
	"slices"
	"strings"

	"bizfeed/model"
)

type DeleteRequest struct {
	Actor         model.Actor
	PostID        string
	AllowOverride bool
}

// Delete erases the record from the collection. The owner or a moderation override
// may delete.
func (e *Engine) Delete(ctx context.Context, req DeleteRequest) error {
	release, err := e.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	posts, err := e.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(posts, req.PostID)
	if i < 0 {
		return e.reject("delete", ErrNotFound)
	}
	if !canModify(posts[i], req.Actor, req.AllowOverride) {
		return e.reject("delete", ErrNotAllowed)
	}

	posts = slices.Delete(posts, i, i+1)
	if err := e.save(ctx, posts); err != nil {
		return err
	}
	e.log.Info().Str("post_id", req.PostID).Str("actor", req.Actor.ID).Msg("feed: post deleted")
	return nil
}

// SoftDelete marks the post DELETED and keeps the record for audit. Only a moderation
// override may do this; repeating it is a no-op.
func (e *Engine) SoftDelete(ctx context.Context, req DeleteRequest) (model.Post, error) {
	if !req.AllowOverride {
		return model.Post{}, e.reject("soft_delete", ErrNotAllowed)
	}
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
		return model.Post{}, e.reject("soft_delete", ErrNotFound)
	}
	if posts[i].VisibilityStatus == model.VisibilityDeleted {
		return posts[i].Clone(), nil
	}

	now := e.nowMillis()
	posts[i].VisibilityStatus = model.VisibilityDeleted
	posts[i].UpdatedAt = now
	posts[i].LastModeratedByUserID = strings.TrimSpace(req.Actor.ID)
	posts[i].LastModeratedAt = &now
	if err := e.save(ctx, posts); err != nil {
		return model.Post{}, err
	}
	e.log.Info().Str("post_id", req.PostID).Str("actor", req.Actor.ID).Msg("feed: post soft-deleted")
	return posts[i].Clone(), nil
}
