package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"bizfeed/model"
)

// ActorFromLocals returns the caller set by JWT; anonymous callers have an empty ID.
func ActorFromLocals(c *fiber.Ctx) model.Actor {
	uid, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	return model.Actor{ID: uid, Role: role}
}

// OverrideRequested holds when the caller asked for a moderation override with
// ?override=true and their role is allowed one.
func OverrideRequested(c *fiber.Ctx, isModerator func(role string) bool) bool {
	want, _ := strconv.ParseBool(c.Query("override"))
	return want && IsModerator(c, isModerator)
}

func IsModerator(c *fiber.Ctx, isModerator func(role string) bool) bool {
	actor := ActorFromLocals(c)
	return actor.ID != "" && isModerator != nil && isModerator(actor.Role)
}
