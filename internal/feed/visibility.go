package feed

import (
	"context"

	"bizfeed/model"
)

// VisibilityAt is the lazily evaluated lifecycle state of p at nowMs.
// DELETED is terminal and PAUSED is held even past ExpiresAt.
func VisibilityAt(p model.Post, nowMs int64) model.Visibility {
	switch p.VisibilityStatus {
	case model.VisibilityDeleted:
		return model.VisibilityDeleted
	case model.VisibilityPaused:
		return model.VisibilityPaused
	}
	if p.ExpiresAt != nil && nowMs > *p.ExpiresAt {
		return model.VisibilityExpired
	}
	return model.VisibilityActive
}

// applyVisibility rewrites stored states in place and returns how many changed.
func (e *Engine) applyVisibility(posts []model.Post, nowMs int64) int {
	changed := 0
	for i := range posts {
		next := VisibilityAt(posts[i], nowMs)
		if next == posts[i].VisibilityStatus {
			continue
		}
		e.log.Debug().
			Str("post_id", posts[i].PostID).
			Str("from", string(posts[i].VisibilityStatus)).
			Str("to", string(next)).
			Msg("feed: visibility transition")
		posts[i].VisibilityStatus = next
		changed++
	}
	return changed
}

// refresh loads the collection and persists any visibility transitions due at now.
func (e *Engine) refresh(ctx context.Context) ([]model.Post, int, error) {
	posts, err := e.load(ctx)
	if err != nil {
		return nil, 0, err
	}
	changed := e.applyVisibility(posts, e.nowMillis())
	if changed > 0 {
		if err := e.save(ctx, posts); err != nil {
			return nil, 0, err
		}
	}
	return posts, changed, nil
}

// SweepExpired runs the ACTIVE to EXPIRED maintenance pass on its own and returns
// the number of posts whose stored state changed. List performs the same pass.
func (e *Engine) SweepExpired(ctx context.Context) (int, error) {
	release, err := e.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	_, changed, err := e.refresh(ctx)
	if err != nil {
		return 0, err
	}
	if changed > 0 {
		e.log.Info().Int("changed", changed).Msg("feed: sweep persisted transitions")
	}
	return changed, nil
}
