package feed

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizfeed/model"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateOwnerFields(t *testing.T) {
	h := newHarness(t)
	post := h.create(t, owner, payload(model.PlanPro))
	h.clock.Advance(time.Minute)

	got, err := h.engine.Update(context.Background(), UpdateRequest{
		Actor:  owner,
		PostID: post.PostID,
		Owner: OwnerPatch{
			Title:       ptr("  New title "),
			Description: ptr(`<a href="javascript:x()">go</a>`),
			Keywords:    []string{"A", "a", "b"},
			Images:      []model.Image{{URI: "x.png", Caption: " hi "}},
			Location:    &model.Location{City: "", Region: " North "},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, `<a href="#">go</a>`, got.Description)
	assert.Equal(t, []string{"a", "b"}, got.Keywords)
	assert.Equal(t, []model.Image{{URI: "x.png", Caption: "hi"}}, got.Images)
	assert.Equal(t, &model.Location{Region: "North"}, got.Location)
	assert.Equal(t, model.Millis(t0.Add(time.Minute)), got.UpdatedAt)
	assert.Equal(t, post.CreatedAt, got.CreatedAt)

	// Untouched fields survive and a blank location removes it.
	got, err = h.engine.Update(context.Background(), UpdateRequest{
		Actor:  owner,
		PostID: post.PostID,
		Owner:  OwnerPatch{Location: &model.Location{}, Keywords: []string{}},
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Nil(t, got.Location)
	assert.Empty(t, got.Keywords)
}

func TestUpdatePermissions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	post := h.create(t, owner, payload(model.PlanPro))

	_, err := h.engine.Update(ctx, UpdateRequest{Actor: owner, PostID: "missing"})
	requireRule(t, err, KindNotFound, "Post not found.")

	_, err = h.engine.Update(ctx, UpdateRequest{Actor: stranger, PostID: post.PostID, Owner: OwnerPatch{Title: ptr("mine")}})
	requireRule(t, err, KindNotAllowed, "Not allowed.")

	got, err := h.engine.Update(ctx, UpdateRequest{
		Actor: moderator, PostID: post.PostID, Owner: OwnerPatch{Title: ptr("moderated")}, AllowOverride: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "moderated", got.Title)
}

func TestUpdateRejectsEmptyRequiredField(t *testing.T) {
	h := newHarness(t)
	post := h.create(t, owner, payload(model.PlanPro))

	_, err := h.engine.Update(context.Background(), UpdateRequest{
		Actor: owner, PostID: post.PostID, Owner: OwnerPatch{Title: ptr("   ")},
	})
	requireRule(t, err, KindValidationError, "")

	stored, err := h.store.LoadPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, post.Title, stored[0].Title)
}

func TestUpdateModerationIgnoredWithoutOverride(t *testing.T) {
	h := newHarness(t)
	post := h.create(t, owner, payload(model.PlanPro))

	got, err := h.engine.Update(context.Background(), UpdateRequest{
		Actor:      owner,
		PostID:     post.PostID,
		Moderation: &ModerationPatch{RankingScore: ptr(10000.0), PinnedRank: Value(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, post.RankingScore, got.RankingScore)
	assert.Nil(t, got.PinnedRank)
	assert.Empty(t, got.LastModeratedByUserID)
}

func TestUpdateModerationFields(t *testing.T) {
	h := newHarness(t)
	post := h.create(t, owner, payload(model.PlanBasic))
	h.clock.Advance(time.Hour)

	got, err := h.engine.Update(context.Background(), UpdateRequest{
		Actor:         moderator,
		PostID:        post.PostID,
		AllowOverride: true,
		Moderation: &ModerationPatch{
			RankingScore:      ptr(12.5),
			PlanType:          ptr("PRO"),
			VisibilityStatus:  ptr("PAUSED"),
			ExpiresAt:         Null[int64](),
			IsPermanent:       ptr(true),
			OwnerBusinessName: ptr(" Renamed "),
			OwnerCategory:     ptr("Retail"),
			OwnerUserID:       ptr("owner-7"),
			PinnedRank:        Value(2),
			ModerationTags:    []string{"Featured", "Featured"},
			AuthorRole:        ptr("admin"),
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 12.5, got.RankingScore, 1e-9)
	assert.Equal(t, model.PlanPro, got.PlanType)
	assert.Equal(t, model.VisibilityPaused, got.VisibilityStatus)
	assert.Nil(t, got.ExpiresAt)
	assert.True(t, got.IsPermanent)
	assert.Equal(t, "Renamed", got.OwnerBusinessName)
	assert.Equal(t, "Retail", got.OwnerCategory)
	assert.Equal(t, "owner-7", got.OwnerUserID)
	require.NotNil(t, got.PinnedRank)
	assert.Equal(t, 2, *got.PinnedRank)
	assert.Equal(t, []string{"Featured"}, got.ModerationTags)
	assert.Equal(t, "ADMIN", got.AuthorRole)
	assert.Equal(t, moderator.ID, got.LastModeratedByUserID)
	require.NotNil(t, got.LastModeratedAt)
	assert.Equal(t, model.Millis(t0.Add(time.Hour)), *got.LastModeratedAt)

	got, err = h.engine.Update(context.Background(), UpdateRequest{
		Actor:         moderator,
		PostID:        post.PostID,
		AllowOverride: true,
		Moderation: &ModerationPatch{
			PinnedRank:            Value(-4),
			LastModeratedByUserID: ptr("audit-bot"),
			LastModeratedAt:       Value(int64(42)),
		},
	})
	require.NoError(t, err)
	assert.Nil(t, got.PinnedRank)
	assert.Equal(t, "audit-bot", got.LastModeratedByUserID)
	assert.Equal(t, int64(42), *got.LastModeratedAt)
}

func TestUpdateUnknownPlanTypeIgnored(t *testing.T) {
	h := newHarness(t)
	post := h.create(t, owner, payload(model.PlanBasic))

	got, err := h.engine.Update(context.Background(), UpdateRequest{
		Actor:         moderator,
		PostID:        post.PostID,
		AllowOverride: true,
		Moderation:    &ModerationPatch{PlanType: ptr("GOLD"), VisibilityStatus: ptr("HIDDEN")},
	})
	require.NoError(t, err)
	assert.Equal(t, model.PlanBasic, got.PlanType)
	assert.Equal(t, model.VisibilityActive, got.VisibilityStatus)

	stored, err := h.store.LoadPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.PlanBasic, stored[0].PlanType)
}

func TestUpdateCannotSetExpired(t *testing.T) {
	h := newHarness(t)
	post := h.create(t, owner, payload(model.PlanBasic))
	got, err := h.engine.Update(context.Background(), UpdateRequest{
		Actor: moderator, PostID: post.PostID, AllowOverride: true,
		Moderation: &ModerationPatch{VisibilityStatus: ptr("EXPIRED")},
	})
	require.NoError(t, err)
	assert.Equal(t, model.VisibilityActive, got.VisibilityStatus)
}

func TestDeletedIsTerminal(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	post := h.create(t, owner, payload(model.PlanPro))

	got, err := h.engine.Update(ctx, UpdateRequest{
		Actor: moderator, PostID: post.PostID, AllowOverride: true,
		Moderation: &ModerationPatch{VisibilityStatus: ptr("DELETED")},
	})
	require.NoError(t, err)
	assert.Equal(t, model.VisibilityDeleted, got.VisibilityStatus)

	for _, v := range []string{"ACTIVE", "PAUSED", "EXPIRED"} {
		got, err = h.engine.Update(ctx, UpdateRequest{
			Actor: moderator, PostID: post.PostID, AllowOverride: true,
			Moderation: &ModerationPatch{VisibilityStatus: ptr(v), ExpiresAt: Value(int64(1))},
		})
		require.NoError(t, err)
		assert.Equal(t, model.VisibilityDeleted, got.VisibilityStatus, v)
	}

	h.clock.Advance(365 * 24 * time.Hour)
	all, err := h.engine.List(ctx, ListOptions{IncludeAll: true})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, model.VisibilityDeleted, all[0].VisibilityStatus)
}

func TestDelete(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	keep := h.create(t, stranger, payload(model.PlanPro))
	post := h.create(t, owner, payload(model.PlanPro))

	requireRule(t, h.engine.Delete(ctx, DeleteRequest{Actor: owner, PostID: "nope"}), KindNotFound, "")
	requireRule(t, h.engine.Delete(ctx, DeleteRequest{Actor: stranger, PostID: post.PostID}), KindNotAllowed, "")

	require.NoError(t, h.engine.Delete(ctx, DeleteRequest{Actor: owner, PostID: post.PostID}))
	require.NoError(t, h.engine.Delete(ctx, DeleteRequest{Actor: moderator, PostID: keep.PostID, AllowOverride: true}))

	all, err := h.engine.List(ctx, ListOptions{IncludeAll: true})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSoftDelete(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	post := h.create(t, owner, payload(model.PlanPro))

	_, err := h.engine.SoftDelete(ctx, DeleteRequest{Actor: owner, PostID: post.PostID})
	requireRule(t, err, KindNotAllowed, "")

	_, err = h.engine.SoftDelete(ctx, DeleteRequest{Actor: moderator, PostID: "nope", AllowOverride: true})
	requireRule(t, err, KindNotFound, "")

	h.clock.Advance(time.Minute)
	got, err := h.engine.SoftDelete(ctx, DeleteRequest{Actor: moderator, PostID: post.PostID, AllowOverride: true})
	require.NoError(t, err)
	assert.Equal(t, model.VisibilityDeleted, got.VisibilityStatus)
	assert.Equal(t, moderator.ID, got.LastModeratedByUserID)

	h.clock.Advance(time.Minute)
	again, err := h.engine.SoftDelete(ctx, DeleteRequest{Actor: moderator, PostID: post.PostID, AllowOverride: true})
	require.NoError(t, err)
	assert.Equal(t, got, again)

	public, err := h.engine.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, public)
	all, err := h.engine.List(ctx, ListOptions{IncludeAll: true})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestModerationPatchJSON(t *testing.T) {
	var patch ModerationPatch
	require.NoError(t, json.Unmarshal([]byte(`{"pinnedRank":null,"expiresAt":1700000000000,"planType":"PRO"}`), &patch))

	assert.True(t, patch.PinnedRank.Set)
	assert.Nil(t, patch.PinnedRank.Value)
	assert.True(t, patch.ExpiresAt.Set)
	assert.Equal(t, int64(1700000000000), *patch.ExpiresAt.Value)
	assert.False(t, patch.LastModeratedAt.Set)
	assert.Equal(t, "PRO", *patch.PlanType)
	assert.Nil(t, patch.VisibilityStatus)

	out, err := json.Marshal(Value(5))
	require.NoError(t, err)
	assert.JSONEq(t, `5`, string(out))
}
