package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, splitList(" https://a.com, ,https://b.com "))
}

func TestGetBool(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_BOOL", "false")
	assert.False(t, getBool("PORTFOLIO_TEST_BOOL", true))

	t.Setenv("PORTFOLIO_TEST_BOOL", "nope")
	assert.True(t, getBool("PORTFOLIO_TEST_BOOL", true))

	assert.True(t, getBool("PORTFOLIO_TEST_BOOL_UNSET", true))
}

func TestGetInt64(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_SIZE", "1024")
	assert.Equal(t, int64(1024), getInt64("PORTFOLIO_TEST_SIZE", 1))

	t.Setenv("PORTFOLIO_TEST_SIZE", "-5")
	assert.Equal(t, int64(7), getInt64("PORTFOLIO_TEST_SIZE", 7))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_URL", "file:test.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ADMIN_TOKEN", "secret")
	t.Setenv("MEDIA_PUBLIC_URL", "https://cdn.example.com/")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("CORS_ORIGINS", "https://example.com")
	t.Setenv("SANITIZE_INPUT", "true")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	LoadEnv()

	assert.Equal(t, "9090", PORT)
	assert.Equal(t, "sqlite", DB_DRIVER)
	assert.Equal(t, "secret", ADMIN_TOKEN)
	assert.Equal(t, "https://cdn.example.com/", MEDIA_PUBLIC_URL)
	assert.Equal(t, "memory", STORAGE_DRIVER)
	assert.Equal(t, []string{"https://example.com"}, CORS_ORIGINS)
	assert.True(t, SANITIZE_INPUT)
	assert.Equal(t, int64(defaultMaxUploadBytes), MAX_UPLOAD_BYTES)
}
