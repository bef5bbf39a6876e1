package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	t.Setenv("GAMESHELF_JWT_SECRET", "test-secret")
	t.Setenv("GAMESHELF_DATABASE_URL", "postgres://localhost/gameshelf")

	require.NoError(t, InitConfig())

	assert.Equal(t, 8080, AppConfig.Port)
	assert.Equal(t, "info", AppConfig.LogLevel)
	assert.Equal(t, 30, AppConfig.TokenExpireMinutes)
	assert.Contains(t, AppConfig.AllowedOrigins, "http://localhost:3000")
}

func TestInitConfigMissingSecret(t *testing.T) {
	t.Setenv("GAMESHELF_JWT_SECRET", "")
	t.Setenv("GAMESHELF_DATABASE_URL", "postgres://localhost/gameshelf")

	assert.Error(t, InitConfig())
}

func TestInitConfigAllowedOriginsFromEnv(t *testing.T) {
	t.Setenv("GAMESHELF_JWT_SECRET", "test-secret")
	t.Setenv("GAMESHELF_DATABASE_URL", "postgres://localhost/gameshelf")
	t.Setenv("GAMESHELF_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")

	require.NoError(t, InitConfig())

	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, AppConfig.AllowedOrigins)
	assert.Equal(t, AppConfig.AllowedOrigins, AllowedOrigins())
}

func TestAllowedOriginsFallback(t *testing.T) {
	AppConfig = Config{}

	assert.Equal(t, defaultOrigins, AllowedOrigins())
}
