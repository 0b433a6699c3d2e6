package feed

import (
	"context"
	"strings"

	"bizfeed/internal/plans"
	"bizfeed/internal/sanitize"
	"bizfeed/model"
)

// CreatePayload is the caller supplied content of a new post. RankingScore, PinnedRank
// and ModerationTags are honored only under a moderation override.
type CreatePayload struct {
	PlanType          string          `json:"planType"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Keywords          []string        `json:"keywords"`
	Images            []model.Image   `json:"images"`
	Location          *model.Location `json:"location"`
	ExpiresAt         *int64          `json:"expiresAt"`
	IsPermanent       bool            `json:"isPermanent"`
	OwnerBusinessName string          `json:"ownerBusinessName"`
	OwnerCategory     string          `json:"ownerCategory"`

	RankingScore   *float64 `json:"rankingScore"`
	PinnedRank     *int     `json:"pinnedRank"`
	ModerationTags []string `json:"moderationTags"`
}

type CreateRequest struct {
	Actor model.Actor
	// OwnerOverrideID publishes on behalf of another account; needs AllowOverride.
	OwnerOverrideID string
	Payload         CreatePayload
	AllowOverride   bool
}

func (e *Engine) Create(ctx context.Context, req CreateRequest) (model.Post, error) {
	release, err := e.acquire(ctx)
	if err != nil {
		return model.Post{}, err
	}
	defer release()

	owner := strings.TrimSpace(req.Actor.ID)
	if req.AllowOverride && strings.TrimSpace(req.OwnerOverrideID) != "" {
		owner = strings.TrimSpace(req.OwnerOverrideID)
	}
	if owner == "" {
		return model.Post{}, e.reject("create", ErrMissingOwner)
	}

	pt, ok := plans.Parse(req.Payload.PlanType)
	if !ok {
		return model.Post{}, e.reject("create", ErrInvalidPlan)
	}
	plan, _ := plans.Lookup(pt)
	if plan.OverrideOnly && !req.AllowOverride {
		return model.Post{}, e.reject("create", ErrForbidden)
	}

	posts, err := e.load(ctx)
	if err != nil {
		return model.Post{}, err
	}
	now := e.now()
	if e.usage(posts, owner, plan, now) >= plan.Limit {
		return model.Post{}, e.reject("create", quotaError(quotaReason(plan)))
	}

	post := e.buildPost(req, owner, plan, model.Millis(now))
	if post.Title == "" || post.OwnerBusinessName == "" || post.OwnerCategory == "" {
		return model.Post{}, e.reject("create", ErrValidation)
	}

	posts = append([]model.Post{post}, posts...)
	if err := e.save(ctx, posts); err != nil {
		return model.Post{}, err
	}
	e.log.Info().
		Str("post_id", post.PostID).
		Str("owner", owner).
		Str("plan", string(pt)).
		Bool("override", req.AllowOverride).
		Msg("feed: post created")
	return post.Clone(), nil
}

func (e *Engine) buildPost(req CreateRequest, owner string, plan plans.Plan, nowMs int64) model.Post {
	in := req.Payload
	post := model.Post{
		PostID:            e.newID(),
		OwnerUserID:       owner,
		OwnerBusinessName: sanitize.Clamp(in.OwnerBusinessName, sanitize.MaxBusinessName),
		OwnerCategory:     sanitize.Clamp(in.OwnerCategory, sanitize.MaxCategory),
		Title:             sanitize.Clamp(in.Title, sanitize.MaxTitle),
		Description:       sanitize.RichText(in.Description),
		Keywords:          sanitize.Keywords(in.Keywords, e.keywordFilter),
		Images:            sanitize.Images(in.Images),
		Location:          sanitize.Location(in.Location),
		CreatedAt:         nowMs,
		UpdatedAt:         nowMs,
		IsPermanent:       in.IsPermanent || plan.ForcePermanent,
		PlanType:          plan.Type,
		VisibilityStatus:  model.VisibilityActive,
		RankingScore:      initialScore(plan, nowMs, nowMs),
		ModerationTags:    []string{},
		AuthorRole:        sanitize.Role(req.Actor.Role),
	}

	switch {
	case plan.DefaultExpiry > 0:
		exp := nowMs + plan.DefaultExpiry.Milliseconds()
		post.ExpiresAt = &exp
	case in.ExpiresAt != nil:
		exp := *in.ExpiresAt
		post.ExpiresAt = &exp
	}

	if req.AllowOverride {
		if in.RankingScore != nil {
			post.RankingScore = *in.RankingScore
		}
		post.PinnedRank = validPinnedRank(in.PinnedRank)
		post.ModerationTags = sanitize.Tags(in.ModerationTags)
		post.LastModeratedByUserID = strings.TrimSpace(req.Actor.ID)
		at := nowMs
		post.LastModeratedAt = &at
	}
	return post
}

// validPinnedRank keeps only positive ranks.
func validPinnedRank(r *int) *int {
	if r == nil || *r <= 0 {
		return nil
	}
	v := *r
	return &v
}
