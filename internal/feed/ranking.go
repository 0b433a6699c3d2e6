package feed

import (
	"cmp"
	"slices"

	"bizfeed/internal/plans"
	"bizfeed/model"
)

// Rank sorts posts in place into feed order. The sort is stable, so equal posts keep
// their stored relative order and repeated calls give the same result.
//
// Pinned posts come first by ascending PinnedRank. Unpinned posts follow by plan
// priority, then RankingScore, then CreatedAt, all descending.
func Rank(posts []model.Post) {
	slices.SortStableFunc(posts, compareRank)
}

func compareRank(a, b model.Post) int {
	switch {
	case a.Pinned() && !b.Pinned():
		return -1
	case !a.Pinned() && b.Pinned():
		return 1
	case a.Pinned():
		return cmp.Compare(*a.PinnedRank, *b.PinnedRank)
	}
	if c := cmp.Compare(plans.Priority(b.PlanType), plans.Priority(a.PlanType)); c != 0 {
		return c
	}
	if c := cmp.Compare(b.RankingScore, a.RankingScore); c != 0 {
		return c
	}
	return cmp.Compare(b.CreatedAt, a.CreatedAt)
}

// initialScore is plan priority x100 plus a recency bonus that fades over 50 hours.
func initialScore(plan plans.Plan, createdAt, nowMs int64) float64 {
	ageHours := float64(nowMs-createdAt) / float64(60*60*1000)
	return float64(plan.Priority*100) + max(0, 50-ageHours)
}
