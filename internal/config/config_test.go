package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GO_ENV", "dev")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "pw")
	t.Setenv("POSTGRES_DB", "carparts")
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_SSLMODE", "")
}

func TestLoad_BuildsDSNFromParts(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "host=localhost port=5432 user=app password=pw dbname=carparts sslmode=disable", cfg.DSN())
	assert.Equal(t, "uploads", cfg.UploadDir)
}

// DATABASE_URLがあれば個別のPOSTGRES_*は見ない
func TestLoad_DatabaseURLTakesPrecedence(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "postgres://app:pw@db:5432/carparts")
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_PORT", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "postgres://app:pw@db:5432/carparts", cfg.DSN())
}

func TestLoad_MissingPostgresUserFails(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("POSTGRES_USER", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_USER")
}

func TestLoad_MissingJWTSecretFails(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
