package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "FILE")
	t.Setenv("MODERATOR_ROLES", " developer , ops ,,")
	t.Setenv("SEED_DEMO", "not-a-bool")
	t.Setenv("PROFANITY_WORDS", "")

	cfg, _ := LoadConfig()
	assert.Equal(t, "file", cfg.StoreDriver)
	assert.Equal(t, []string{"developer", "ops"}, cfg.ModeratorRoles)
	assert.True(t, cfg.SeedDemo)
	assert.Empty(t, cfg.ProfanityWords)
	assert.True(t, cfg.IsModerator("DEVELOPER"))
	assert.False(t, cfg.IsModerator("MEMBER"))
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.Local, Config{}.Location())
	assert.Equal(t, time.Local, Config{Timezone: "Nowhere/City"}.Location())
	assert.Equal(t, "Asia/Bangkok", Config{Timezone: "Asia/Bangkok"}.Location().String())
}
