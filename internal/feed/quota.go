package feed

import (
	"context"
	"fmt"
	"time"

	"bizfeed/internal/plans"
	"bizfeed/model"
)

// QuotaInfo describes how much of a plan's allowance an owner has left.
type QuotaInfo struct {
	Plan        model.PlanType `json:"plan"`
	Limit       int            `json:"limit"`
	Used        int            `json:"used"`
	Remaining   int            `json:"remaining"`
	Window      plans.Window   `json:"window"`
	WindowStart *int64         `json:"windowStart,omitempty"`
}

// usage counts the posts that consume the plan's allowance for owner at now.
//
//   - global: every WELCOME post not DELETED, whoever owns it
//   - permanent: the owner's posts of the plan that are still live (not DELETED or EXPIRED)
//   - month/week: the owner's posts of the plan created since the window start
func (e *Engine) usage(posts []model.Post, owner string, plan plans.Plan, now time.Time) int {
	nowMs := model.Millis(now)
	start := model.Millis(plans.WindowStart(plan.Window, now, e.loc))
	n := 0
	for _, p := range posts {
		if p.PlanType != plan.Type {
			continue
		}
		switch plan.Window {
		case plans.WindowGlobal:
			if p.VisibilityStatus != model.VisibilityDeleted {
				n++
			}
		case plans.WindowPermanent:
			if p.OwnerUserID != owner {
				continue
			}
			switch VisibilityAt(p, nowMs) {
			case model.VisibilityDeleted, model.VisibilityExpired:
				continue
			}
			n++
		case plans.WindowMonth, plans.WindowWeek:
			if p.OwnerUserID == owner && p.CreatedAt >= start {
				n++
			}
		}
	}
	return n
}

func quotaReason(plan plans.Plan) string {
	switch plan.Window {
	case plans.WindowGlobal:
		return fmt.Sprintf("%s pack limit reached (%d posts).", plan.Type, plan.Limit)
	case plans.WindowPermanent:
		return fmt.Sprintf("%s plan allows only %d permanent post.", plan.Type, plan.Limit)
	case plans.WindowMonth:
		return fmt.Sprintf("%s plan allows only %d posts per month.", plan.Type, plan.Limit)
	default:
		return fmt.Sprintf("%s plan allows only %d posts per week.", plan.Type, plan.Limit)
	}
}

// PlanQuotaInfo reports an owner's allowance for a plan without changing anything.
// The WELCOME allowance is platform wide, so ownerID may be empty for it.
func (e *Engine) PlanQuotaInfo(ctx context.Context, ownerID string, planType string) (QuotaInfo, error) {
	pt, ok := plans.Parse(planType)
	if !ok {
		return QuotaInfo{}, e.reject("quota", ErrInvalidPlan)
	}
	plan, _ := plans.Lookup(pt)
	if ownerID == "" && plan.Window != plans.WindowGlobal {
		return QuotaInfo{}, e.reject("quota", ErrMissingOwner)
	}

	posts, err := e.load(ctx)
	if err != nil {
		return QuotaInfo{}, err
	}
	now := e.now()
	used := e.usage(posts, ownerID, plan, now)
	info := QuotaInfo{
		Plan:      pt,
		Limit:     plan.Limit,
		Used:      used,
		Remaining: max(0, plan.Limit-used),
		Window:    plan.Window,
	}
	if start := plans.WindowStart(plan.Window, now, e.loc); !start.IsZero() {
		ms := model.Millis(start)
		info.WindowStart = &ms
	}
	return info, nil
}
