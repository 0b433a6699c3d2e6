package plans

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizfeed/model"
)

func TestPriorityOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i-1].Priority, all[i].Priority)
	}
	assert.Equal(t, 4, Priority(model.PlanWelcome))
	assert.Equal(t, 3, Priority(model.PlanPro))
	assert.Equal(t, 2, Priority(model.PlanBasic))
	assert.Equal(t, 1, Priority(model.PlanEntry))
	assert.Equal(t, 0, Priority("GOLD"))
}

func TestParse(t *testing.T) {
	p, ok := Parse("BASIC")
	assert.True(t, ok)
	assert.Equal(t, model.PlanBasic, p)

	_, ok = Parse("basic")
	assert.False(t, ok)
	_, ok = Parse("")
	assert.False(t, ok)
}

func TestQuotaPolicy(t *testing.T) {
	welcome, _ := Lookup(model.PlanWelcome)
	assert.True(t, welcome.OverrideOnly)
	assert.True(t, welcome.ForcePermanent)
	assert.Equal(t, 3, welcome.Limit)
	assert.Equal(t, WindowGlobal, welcome.Window)

	basic, _ := Lookup(model.PlanBasic)
	assert.Equal(t, 30*24*time.Hour, basic.DefaultExpiry)
	assert.Equal(t, WindowMonth, basic.Window)

	pro, _ := Lookup(model.PlanPro)
	assert.Equal(t, WindowWeek, pro.Window)
	assert.Equal(t, 2, pro.Limit)

	entry, _ := Lookup(model.PlanEntry)
	assert.Equal(t, 1, entry.Limit)
	assert.Equal(t, WindowPermanent, entry.Window)
}

func TestWindowStart(t *testing.T) {
	loc := time.UTC
	// Thursday
	now := time.Date(2026, 10, 15, 17, 42, 5, 0, loc)

	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, loc), WindowStart(WindowMonth, now, loc))
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, loc), WindowStart(WindowWeek, now, loc))

	// Sunday belongs to the week that began the previous Monday.
	sunday := time.Date(2026, 10, 18, 23, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, loc), WindowStart(WindowWeek, sunday, loc))

	// Monday across a month boundary.
	monday := time.Date(2026, 6, 1, 8, 0, 0, 0, loc)
	assert.Equal(t, monday.Truncate(24*time.Hour), WindowStart(WindowWeek, monday, loc))
	wed := time.Date(2026, 7, 1, 8, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 6, 29, 0, 0, 0, 0, loc), WindowStart(WindowWeek, wed, loc))

	assert.True(t, WindowStart(WindowGlobal, now, loc).IsZero())
	assert.True(t, WindowStart(WindowPermanent, now, loc).IsZero())
}
