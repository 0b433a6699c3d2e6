package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizfeed/internal/plans"
	"bizfeed/model"
)

func ids(posts []model.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.PostID
	}
	return out
}

func TestListRankingOrder(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	basicIn := payload(model.PlanBasic)
	basicIn.RankingScore = ptr(10.0)
	basic := h.createOverride(t, "u-basic", basicIn)

	proIn := payload(model.PlanPro)
	proIn.RankingScore = ptr(20.0)
	pro := h.createOverride(t, "u-pro", proIn)

	pin2In := payload(model.PlanEntry)
	pin2In.PinnedRank = ptr(2)
	pin2 := h.createOverride(t, "u-pin2", pin2In)

	pin1In := payload(model.PlanEntry)
	pin1In.PinnedRank = ptr(1)
	pin1 := h.createOverride(t, "u-pin1", pin1In)

	got, err := h.engine.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{pin1.PostID, pin2.PostID, pro.PostID, basic.PostID}, ids(got))

	for i := 0; i < 3; i++ {
		again, err := h.engine.List(ctx, ListOptions{})
		require.NoError(t, err)
		assert.Equal(t, ids(got), ids(again))
	}
}

func TestRankTieBreakers(t *testing.T) {
	rank := func(r int) *int { return &r }
	posts := []model.Post{
		{PostID: "old-basic", PlanType: model.PlanBasic, RankingScore: 250, CreatedAt: 1},
		{PostID: "new-basic", PlanType: model.PlanBasic, RankingScore: 250, CreatedAt: 2},
		{PostID: "hi-basic", PlanType: model.PlanBasic, RankingScore: 260, CreatedAt: 0},
		{PostID: "entry", PlanType: model.PlanEntry, RankingScore: 999, CreatedAt: 9},
		{PostID: "welcome", PlanType: model.PlanWelcome, RankingScore: 0, CreatedAt: 0},
		{PostID: "pin3a", PlanType: model.PlanEntry, PinnedRank: rank(3)},
		{PostID: "unknown", PlanType: "GOLD", RankingScore: 5000},
		{PostID: "pin3b", PlanType: model.PlanWelcome, PinnedRank: rank(3)},
		{PostID: "pin1", PlanType: model.PlanEntry, PinnedRank: rank(1)},
	}
	Rank(posts)
	assert.Equal(t, []string{
		"pin1", "pin3a", "pin3b",
		"welcome", "hi-basic", "new-basic", "old-basic", "entry", "unknown",
	}, ids(posts))

	for i := 1; i < len(posts); i++ {
		if posts[i].Pinned() {
			require.True(t, posts[i-1].Pinned())
			assert.LessOrEqual(t, *posts[i-1].PinnedRank, *posts[i].PinnedRank)
		}
	}
}

func TestVisibilityAt(t *testing.T) {
	exp := int64(1000)
	base := model.Post{ExpiresAt: &exp, VisibilityStatus: model.VisibilityActive}

	assert.Equal(t, model.VisibilityActive, VisibilityAt(base, 1000))
	assert.Equal(t, model.VisibilityExpired, VisibilityAt(base, 1001))

	paused := base
	paused.VisibilityStatus = model.VisibilityPaused
	assert.Equal(t, model.VisibilityPaused, VisibilityAt(paused, 5000))

	deleted := base
	deleted.VisibilityStatus = model.VisibilityDeleted
	assert.Equal(t, model.VisibilityDeleted, VisibilityAt(deleted, 0))

	// An expiry moved into the future reactivates the post.
	expired := base
	expired.VisibilityStatus = model.VisibilityExpired
	assert.Equal(t, model.VisibilityActive, VisibilityAt(expired, 10))

	noExpiry := model.Post{VisibilityStatus: model.VisibilityActive}
	assert.Equal(t, model.VisibilityActive, VisibilityAt(noExpiry, 1<<62))
}

func TestSweepExpired(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.create(t, owner, payload(model.PlanBasic))
	h.create(t, stranger, payload(model.PlanPro))

	n, err := h.engine.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	h.clock.Advance(31 * 24 * time.Hour)
	n, err = h.engine.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = h.engine.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPausedPostDoesNotExpire(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	post := h.create(t, owner, payload(model.PlanBasic))
	_, err := h.engine.Update(ctx, UpdateRequest{
		Actor: moderator, PostID: post.PostID, AllowOverride: true,
		Moderation: &ModerationPatch{VisibilityStatus: ptr("PAUSED")},
	})
	require.NoError(t, err)

	h.clock.Advance(60 * 24 * time.Hour)
	all, err := h.engine.List(ctx, ListOptions{IncludeAll: true})
	require.NoError(t, err)
	assert.Equal(t, model.VisibilityPaused, all[0].VisibilityStatus)
}

func TestSearch(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	bakery := payload(model.PlanPro)
	bakery.Description = "<p>Warm <b>sourdough</b> daily</p><script>secretword()</script>"
	bakery.Location = &model.Location{City: "Chiang Mai", Region: "North"}
	b := h.create(t, owner, bakery)

	garage := payload(model.PlanBasic)
	garage.Title = "Brake repair"
	garage.Description = "Fast service"
	garage.Keywords = []string{"cars"}
	garage.OwnerBusinessName = "Speedy Garage"
	garage.OwnerCategory = "Automotive"
	g := h.create(t, stranger, garage)

	cases := map[string][]string{
		"SOURDOUGH daily": {b.PostID},
		"warm sourdough":  {b.PostID},
		"chiang":          {b.PostID},
		"north":           {b.PostID},
		"CARS":            {g.PostID},
		"automotive":      {g.PostID},
		"speedy":          {g.PostID},
		"secretword":      {},
		"<b>":             {},
		"":                {b.PostID, g.PostID},
		" ":               {b.PostID, g.PostID},
		"   ":             {},
		" north":          {b.PostID},
		"nothing like it": {},
	}
	for q, want := range cases {
		got, err := h.engine.Search(ctx, SearchOptions{Query: q})
		require.NoError(t, err)
		assert.Equal(t, want, ids(got), q)
	}

	_, err := h.engine.SoftDelete(ctx, DeleteRequest{Actor: moderator, PostID: g.PostID, AllowOverride: true})
	require.NoError(t, err)
	got, err := h.engine.Search(ctx, SearchOptions{Query: "speedy"})
	require.NoError(t, err)
	assert.Empty(t, got)
	got, err = h.engine.Search(ctx, SearchOptions{Query: "speedy", IncludeAll: true})
	require.NoError(t, err)
	assert.Equal(t, []string{g.PostID}, ids(got))
}

func TestGet(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	post := h.create(t, owner, payload(model.PlanBasic))

	got, err := h.engine.Get(ctx, post.PostID, false)
	require.NoError(t, err)
	assert.Equal(t, post, got)

	_, err = h.engine.Get(ctx, "missing", true)
	requireRule(t, err, KindNotFound, "")

	h.clock.Advance(31 * 24 * time.Hour)
	_, err = h.engine.Get(ctx, post.PostID, false)
	requireRule(t, err, KindNotFound, "")
	got, err = h.engine.Get(ctx, post.PostID, true)
	require.NoError(t, err)
	assert.Equal(t, model.VisibilityExpired, got.VisibilityStatus)
}

func TestPlanQuotaInfo(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.create(t, owner, payload(model.PlanPro))

	info, err := h.engine.PlanQuotaInfo(ctx, owner.ID, "PRO")
	require.NoError(t, err)
	assert.Equal(t, QuotaInfo{
		Plan:        model.PlanPro,
		Limit:       2,
		Used:        1,
		Remaining:   1,
		Window:      plans.WindowWeek,
		WindowStart: ptr(model.Millis(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))),
	}, info)

	info, err = h.engine.PlanQuotaInfo(ctx, owner.ID, "BASIC")
	require.NoError(t, err)
	assert.Equal(t, 2, info.Remaining)
	require.NotNil(t, info.WindowStart)
	assert.Equal(t, model.Millis(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)), *info.WindowStart)

	info, err = h.engine.PlanQuotaInfo(ctx, "", "WELCOME")
	require.NoError(t, err)
	assert.Equal(t, 3, info.Remaining)
	assert.Nil(t, info.WindowStart)

	_, err = h.engine.PlanQuotaInfo(ctx, "", "ENTRY")
	requireRule(t, err, KindMissingOwner, "")
	_, err = h.engine.PlanQuotaInfo(ctx, owner.ID, "GOLD")
	requireRule(t, err, KindInvalidPlan, "")

	posts, err := h.store.LoadPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
