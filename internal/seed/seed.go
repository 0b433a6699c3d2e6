// Package seed fills an empty feed with demonstration posts so a fresh environment
// never shows an empty directory.
package seed

import (
	"context"
	"fmt"
	"time"

	"bizfeed/internal/repository"
	"bizfeed/model"
)

const day = 24 * time.Hour

// DemoOwnerID owns every demonstration post.
const DemoOwnerID = "demo-directory"

// EnsureDemoPosts stores the demo set when the collection is empty and returns how many
// posts it inserted. It is a no-op once any post exists.
func EnsureDemoPosts(ctx context.Context, store repository.PostStore, now func() time.Time) (int, error) {
	posts, err := store.LoadPosts(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	if len(posts) > 0 {
		return 0, nil
	}
	demo := DemoPosts(now())
	if err := store.SavePosts(ctx, demo); err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return len(demo), nil
}

// DemoPosts builds the demonstration set relative to now.
func DemoPosts(now time.Time) []model.Post {
	at := func(ago time.Duration) int64 { return model.Millis(now.Add(-ago)) }
	basicExpiry := model.Millis(now.Add(-2 * day).Add(30 * day))
	pinned := 1

	return []model.Post{
		{
			PostID:            "demo-welcome-1",
			OwnerUserID:       DemoOwnerID,
			OwnerBusinessName: "Business Directory",
			OwnerCategory:     "Community",
			Title:             "Welcome to the business directory",
			Description:       "<p>Browse local businesses, or publish your own post from the <b>Plans</b> page.</p>",
			Keywords:          []string{"welcome", "directory"},
			Images:            []model.Image{},
			CreatedAt:         at(3 * day),
			UpdatedAt:         at(3 * day),
			IsPermanent:       true,
			PlanType:          model.PlanWelcome,
			VisibilityStatus:  model.VisibilityActive,
			RankingScore:      450,
			PinnedRank:        &pinned,
			ModerationTags:    []string{"Official"},
			AuthorRole:        "DEVELOPER",
		},
		{
			PostID:            "demo-pro-1",
			OwnerUserID:       DemoOwnerID,
			OwnerBusinessName: "Northern Roasters",
			OwnerCategory:     "Cafe",
			Title:             "Single origin beans roasted every Monday",
			Description:       "<p>Pick up fresh beans or order for delivery across the city.</p>",
			Keywords:          []string{"coffee", "roastery", "delivery"},
			Images:            []model.Image{{URI: "https://picsum.photos/seed/roasters/800/600", Caption: "Roasting day"}},
			Location:          &model.Location{City: "Chiang Mai", Region: "North"},
			CreatedAt:         at(1 * day),
			UpdatedAt:         at(1 * day),
			PlanType:          model.PlanPro,
			VisibilityStatus:  model.VisibilityActive,
			RankingScore:      350,
			ModerationTags:    []string{},
			AuthorRole:        "MEMBER",
		},
		{
			PostID:            "demo-basic-1",
			OwnerUserID:       DemoOwnerID,
			OwnerBusinessName: "Riverside Bikes",
			OwnerCategory:     "Repair",
			Title:             "Bicycle tune-ups while you wait",
			Description:       "<p>Brakes, gears and wheels checked in under an hour.</p>",
			Keywords:          []string{"bicycle", "repair"},
			Images:            []model.Image{},
			Location:          &model.Location{City: "Bangkok", Region: "Central"},
			CreatedAt:         at(2 * day),
			UpdatedAt:         at(2 * day),
			ExpiresAt:         &basicExpiry,
			PlanType:          model.PlanBasic,
			VisibilityStatus:  model.VisibilityActive,
			RankingScore:      250,
			ModerationTags:    []string{},
			AuthorRole:        "MEMBER",
		},
		{
			PostID:            "demo-entry-1",
			OwnerUserID:       DemoOwnerID,
			OwnerBusinessName: "Lotus Tailor",
			OwnerCategory:     "Clothing",
			Title:             "Made-to-measure shirts and alterations",
			Description:       "<p>Bring your own fabric or choose from our collection.</p>",
			Keywords:          []string{"tailor", "shirts"},
			Images:            []model.Image{},
			Location:          &model.Location{Region: "South"},
			CreatedAt:         at(5 * day),
			UpdatedAt:         at(5 * day),
			IsPermanent:       true,
			PlanType:          model.PlanEntry,
			VisibilityStatus:  model.VisibilityActive,
			RankingScore:      150,
			ModerationTags:    []string{},
			AuthorRole:        "MEMBER",
		},
	}
}
