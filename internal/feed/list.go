package feed

import (
	"context"
	"strings"

	"bizfeed/internal/sanitize"
	"bizfeed/model"
)

type ListOptions struct {
	// IncludeAll returns every state instead of ACTIVE posts only (moderation view).
	IncludeAll bool
}

type SearchOptions struct {
	Query      string
	IncludeAll bool
}

// List returns the ranked feed after persisting any due expiry transitions.
func (e *Engine) List(ctx context.Context, opts ListOptions) ([]model.Post, error) {
	release, err := e.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	posts, _, err := e.refresh(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if !opts.IncludeAll && p.VisibilityStatus != model.VisibilityActive {
			continue
		}
		out = append(out, p.Clone())
	}
	Rank(out)
	return out, nil
}

// Search keeps the List order and filters by case-insensitive substring match.
// The query is matched literally, whitespace included. An empty query matches everything.
func (e *Engine) Search(ctx context.Context, opts SearchOptions) ([]model.Post, error) {
	posts, err := e.List(ctx, ListOptions{IncludeAll: opts.IncludeAll})
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(opts.Query)
	if q == "" {
		return posts, nil
	}
	out := posts[:0]
	for _, p := range posts {
		if strings.Contains(searchBlob(p), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func searchBlob(p model.Post) string {
	parts := []string{p.Title, sanitize.PlainText(p.Description)}
	parts = append(parts, p.Keywords...)
	parts = append(parts, p.OwnerCategory, p.OwnerBusinessName)
	if p.Location != nil {
		parts = append(parts, p.Location.City, p.Location.Region)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Get returns one post. Without includeAll only an ACTIVE post is found.
func (e *Engine) Get(ctx context.Context, postID string, includeAll bool) (model.Post, error) {
	release, err := e.acquire(ctx)
	if err != nil {
		return model.Post{}, err
	}
	defer release()

	posts, _, err := e.refresh(ctx)
	if err != nil {
		return model.Post{}, err
	}
	i := indexOf(posts, postID)
	if i < 0 || (!includeAll && posts[i].VisibilityStatus != model.VisibilityActive) {
		return model.Post{}, e.reject("get", ErrNotFound)
	}
	return posts[i].Clone(), nil
}
