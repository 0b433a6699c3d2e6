package handlers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"bizfeed/dto"
	"bizfeed/internal/cursor"
	"bizfeed/internal/feed"
	mid "bizfeed/internal/middleware"
	"bizfeed/model"
)

const (
	requestTimeout  = 5 * time.Second
	defaultPageSize = 20
	maxPageSize     = 100
)

// ModeratorCheck reports whether a role may request moderation overrides.
type ModeratorCheck func(role string) bool

// GET /feed

// ListFeedHandler godoc
// @Summary      List the ranked feed
// @Description  Pinned posts first, then by plan priority, score and recency. all=true shows every state and needs a moderator.
// @Tags         feed
// @Produce      json
// @Param        all     query  bool    false  "Include non-active posts (moderators)"
// @Param        limit   query  int     false  "Page size (default 20, max 100)"
// @Param        cursor  query  string  false  "Cursor from the previous page"
// @Success      200  {object}  dto.ListPage[model.Post]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /feed [get]
func ListFeedHandler(engine *feed.Engine, isModerator ModeratorCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := includeAll(c, isModerator)
		if err != nil {
			return err
		}
		limit, err := pageSize(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()

		posts, err := engine.List(ctx, feed.ListOptions{IncludeAll: all})
		if err != nil {
			return fail(c, err)
		}
		page, err := paginate(posts, c.Query("cursor"), limit)
		if err != nil {
			return err
		}
		return c.JSON(page)
	}
}

// GET /feed/search

// SearchFeedHandler godoc
// @Summary      Search the feed
// @Description  Case-insensitive substring match over title, description text, keywords, category, business name and location. Keeps feed order.
// @Tags         feed
// @Produce      json
// @Param        q    query  string  true   "Query"
// @Param        all  query  bool    false  "Include non-active posts (moderators)"
// @Success      200  {array}   model.Post
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /feed/search [get]
func SearchFeedHandler(engine *feed.Engine, isModerator ModeratorCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := includeAll(c, isModerator)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()

		posts, err := engine.Search(ctx, feed.SearchOptions{Query: c.Query("q"), IncludeAll: all})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(posts)
	}
}

// GET /feed/quota

// PlanQuotaHandler godoc
// @Summary      Remaining quota for a plan
// @Description  owner defaults to the caller; only moderators may ask about someone else.
// @Tags         feed
// @Produce      json
// @Param        plan   query  string  true   "WELCOME, ENTRY, BASIC or PRO"
// @Param        owner  query  string  false  "Owner id (moderators)"
// @Success      200  {object}  feed.QuotaInfo
// @Failure      400  {object}  dto.Result
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /feed/quota [get]
func PlanQuotaHandler(engine *feed.Engine, isModerator ModeratorCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := mid.ActorFromLocals(c).ID
		if q := c.Query("owner"); q != "" && q != owner {
			if !mid.IsModerator(c, isModerator) {
				return fiber.NewError(fiber.StatusForbidden, "owner requires a moderator")
			}
			owner = q
		}

		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()

		info, err := engine.PlanQuotaInfo(ctx, owner, c.Query("plan"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(info)
	}
}

// GET /feed/:post_id

// GetPostHandler godoc
// @Summary      Get one post
// @Tags         feed
// @Produce      json
// @Param        post_id  path   string  true   "Post ID"
// @Param        all      query  bool    false  "Also find non-active posts (moderators)"
// @Success      200  {object}  model.Post
// @Failure      404  {object}  dto.Result
// @Router       /feed/{post_id} [get]
func GetPostHandler(engine *feed.Engine, isModerator ModeratorCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := includeAll(c, isModerator)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()

		post, err := engine.Get(ctx, c.Params("post_id"), all)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(post)
	}
}

// POST /feed

// CreatePostHandler godoc
// @Summary      Publish a post
// @Description  Quota and plan rules apply. With override=true a moderator may publish WELCOME posts, post for another owner and set score, pin and tags.
// @Tags         feed
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        override  query  bool                    false  "Moderation override"
// @Param        body      body   dto.CreatePostRequest  true   "Post"
// @Success      201  {object}  dto.PostResult
// @Failure      400  {object}  dto.Result
// @Failure      403  {object}  dto.Result
// @Failure      409  {object}  dto.Result
// @Router       /feed [post]
func CreatePostHandler(engine *feed.Engine, isModerator ModeratorCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreatePostRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()

		post, err := engine.Create(ctx, feed.CreateRequest{
			Actor:           mid.ActorFromLocals(c),
			OwnerOverrideID: body.OwnerUserID,
			Payload:         body.CreatePayload,
			AllowOverride:   mid.OverrideRequested(c, isModerator),
		})
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dto.PostResult{OK: true, Post: post})
	}
}

// PATCH /feed/:post_id

// UpdatePostHandler godoc
// @Summary      Update a post
// @Description  The owner may change content fields. The moderation block applies only with override=true.
// @Tags         feed
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id   path   string                 true   "Post ID"
// @Param        override  query  bool                   false  "Moderation override"
// @Param        body      body   dto.UpdatePostRequest  true   "Patch"
// @Success      200  {object}  dto.PostResult
// @Failure      400  {object}  dto.Result
// @Failure      403  {object}  dto.Result
// @Failure      404  {object}  dto.Result
// @Router       /feed/{post_id} [patch]
func UpdatePostHandler(engine *feed.Engine, isModerator ModeratorCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UpdatePostRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()

		post, err := engine.Update(ctx, feed.UpdateRequest{
			Actor:         mid.ActorFromLocals(c),
			PostID:        c.Params("post_id"),
			Owner:         body.OwnerPatch,
			Moderation:    body.Moderation,
			AllowOverride: mid.OverrideRequested(c, isModerator),
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.PostResult{OK: true, Post: post})
	}
}

// DELETE /feed/:post_id

// DeletePostHandler godoc
// @Summary      Delete a post
// @Description  Removes the record. Owner, or a moderator with override=true.
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        post_id   path   string  true   "Post ID"
// @Param        override  query  bool    false  "Moderation override"
// @Success      200  {object}  dto.Result
// @Failure      403  {object}  dto.Result
// @Failure      404  {object}  dto.Result
// @Router       /feed/{post_id} [delete]
func DeletePostHandler(engine *feed.Engine, isModerator ModeratorCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()

		err := engine.Delete(ctx, feed.DeleteRequest{
			Actor:         mid.ActorFromLocals(c),
			PostID:        c.Params("post_id"),
			AllowOverride: mid.OverrideRequested(c, isModerator),
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.Result{OK: true})
	}
}

// POST /feed/:post_id/soft-delete

// SoftDeletePostHandler godoc
// @Summary      Soft delete a post
// @Description  Marks the post DELETED and keeps the record. Moderators with override=true only.
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        post_id   path   string  true  "Post ID"
// @Param        override  query  bool    true  "Moderation override"
// @Success      200  {object}  dto.PostResult
// @Failure      403  {object}  dto.Result
// @Failure      404  {object}  dto.Result
// @Router       /feed/{post_id}/soft-delete [post]
func SoftDeletePostHandler(engine *feed.Engine, isModerator ModeratorCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()

		post, err := engine.SoftDelete(ctx, feed.DeleteRequest{
			Actor:         mid.ActorFromLocals(c),
			PostID:        c.Params("post_id"),
			AllowOverride: mid.OverrideRequested(c, isModerator),
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.PostResult{OK: true, Post: post})
	}
}

// POST /feed/maintenance/expire

// SweepExpiredHandler godoc
// @Summary      Persist due expiries
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SweepResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /feed/maintenance/expire [post]
func SweepExpiredHandler(engine *feed.Engine, isModerator ModeratorCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !mid.IsModerator(c, isModerator) {
			return fiber.NewError(fiber.StatusForbidden, "moderators only")
		}

		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()

		n, err := engine.SweepExpired(ctx)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.SweepResponse{Changed: n})
	}
}

func includeAll(c *fiber.Ctx, isModerator ModeratorCheck) (bool, error) {
	all, _ := strconv.ParseBool(c.Query("all"))
	if all && !mid.IsModerator(c, isModerator) {
		return false, fiber.NewError(fiber.StatusForbidden, "all requires a moderator")
	}
	return all, nil
}

func pageSize(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultPageSize, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid limit")
	}
	return min(n, maxPageSize), nil
}

func paginate(posts []model.Post, rawCursor string, limit int) (dto.ListPage[model.Post], error) {
	start := 0
	if rawCursor != "" {
		cur, err := cursor.Decode(rawCursor)
		if err != nil {
			return dto.ListPage[model.Post]{}, fiber.NewError(fiber.StatusBadRequest, "invalid cursor")
		}
		ids := make([]string, len(posts))
		for i, p := range posts {
			ids[i] = p.PostID
		}
		start = cur.Start(ids)
	}

	end := min(start+limit, len(posts))
	page := dto.ListPage[model.Post]{Items: posts[start:end], HasMore: end < len(posts)}
	if page.HasMore {
		next := cursor.Encode(end, posts[end-1].PostID)
		page.NextCursor = &next
	}
	return page, nil
}

// fail turns an engine error into a response: rule rejections become {ok:false}
// with a status per kind, anything else is a 500.
func fail(c *fiber.Ctx, err error) error {
	re, ok := feed.AsRule(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Error: "timed out"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(statusFor(re.Kind)).JSON(dto.Result{OK: false, Reason: re.Reason})
}

func statusFor(k feed.Kind) int {
	switch k {
	case feed.KindNotFound:
		return fiber.StatusNotFound
	case feed.KindForbidden, feed.KindNotAllowed:
		return fiber.StatusForbidden
	case feed.KindQuotaExceeded:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
