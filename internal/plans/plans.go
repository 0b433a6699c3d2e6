// Package plans is the static catalog of publication plans: priority, quota and expiry policy.
package plans

import (
	"time"

	"bizfeed/model"
)

// Window is the span over which a plan's post limit is counted.
type Window string

const (
	WindowGlobal    Window = "global"
	WindowPermanent Window = "permanent"
	WindowMonth     Window = "month"
	WindowWeek      Window = "week"
)

const (
	// MaxImages applies to every plan.
	MaxImages = 3

	BasicExpiry = 30 * 24 * time.Hour
)

type Plan struct {
	Type     model.PlanType
	Label    string
	Priority int
	Limit    int
	Window   Window
	// OverrideOnly plans can only be created under a moderation override.
	OverrideOnly bool
	// ForcePermanent sets isPermanent regardless of input.
	ForcePermanent bool
	// DefaultExpiry, when non-zero, replaces any caller supplied expiry.
	DefaultExpiry time.Duration
}

var catalog = map[model.PlanType]Plan{
	model.PlanWelcome: {
		Type:           model.PlanWelcome,
		Label:          "Welcome pack",
		Priority:       4,
		Limit:          3,
		Window:         WindowGlobal,
		OverrideOnly:   true,
		ForcePermanent: true,
	},
	model.PlanPro: {
		Type:     model.PlanPro,
		Label:    "Pro",
		Priority: 3,
		Limit:    2,
		Window:   WindowWeek,
	},
	model.PlanBasic: {
		Type:          model.PlanBasic,
		Label:         "Basic",
		Priority:      2,
		Limit:         2,
		Window:        WindowMonth,
		DefaultExpiry: BasicExpiry,
	},
	model.PlanEntry: {
		Type:     model.PlanEntry,
		Label:    "Entry",
		Priority: 1,
		Limit:    1,
		Window:   WindowPermanent,
	},
}

// order is descending priority.
var order = []model.PlanType{model.PlanWelcome, model.PlanPro, model.PlanBasic, model.PlanEntry}

func Lookup(t model.PlanType) (Plan, bool) {
	p, ok := catalog[t]
	return p, ok
}

// Parse returns the plan type for an exact, known name.
func Parse(s string) (model.PlanType, bool) {
	t := model.PlanType(s)
	_, ok := catalog[t]
	return t, ok
}

// Priority is zero for unknown plans so they sort last.
func Priority(t model.PlanType) int {
	return catalog[t].Priority
}

func All() []Plan {
	out := make([]Plan, 0, len(order))
	for _, t := range order {
		out = append(out, catalog[t])
	}
	return out
}

// WindowStart returns the first instant counted by a calendar window in loc.
// Global and permanent windows have no start and return the zero time.
func WindowStart(w Window, now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	switch w {
	case WindowMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	case WindowWeek:
		// Monday starts the week.
		back := (int(now.Weekday()) + 6) % 7
		return time.Date(now.Year(), now.Month(), now.Day()-back, 0, 0, 0, 0, loc)
	}
	return time.Time{}
}
