package database_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/pkg/database"
	testdb "github.com/CollideNV/hadron/test/database"
)

func TestClientConnectivityAndHealth(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	// Milliseconds, not nanoseconds.
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000))
}

func TestLiveRunDedupIndex(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// The partial unique index allows only one live run per
	// (source, external_id) pair but any number of terminal ones.
	_, err := client.DB().ExecContext(ctx, `
		INSERT INTO cr_runs (cr_id, source, external_id, title, status, config_snapshot, raw_request, cost_usd, input_tokens, output_tokens, created_at, updated_at)
		VALUES ('cr-a', 'jira', 'PROJ-1', 'first', 'pending', '{}', '{}', 0, 0, 0, now(), now())`)
	require.NoError(t, err)

	_, err = client.DB().ExecContext(ctx, `
		INSERT INTO cr_runs (cr_id, source, external_id, title, status, config_snapshot, raw_request, cost_usd, input_tokens, output_tokens, created_at, updated_at)
		VALUES ('cr-b', 'jira', 'PROJ-1', 'second', 'pending', '{}', '{}', 0, 0, 0, now(), now())`)
	require.Error(t, err, "duplicate live run must violate the partial unique index")

	_, err = client.DB().ExecContext(ctx, `
		INSERT INTO cr_runs (cr_id, source, external_id, title, status, config_snapshot, raw_request, cost_usd, input_tokens, output_tokens, created_at, updated_at)
		VALUES ('cr-c', 'jira', 'PROJ-1', 'retrigger', 'completed', '{}', '{}', 0, 0, 0, now(), now())`)
	require.NoError(t, err, "terminal runs are outside the index predicate")
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clear := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}
	clear()
	t.Cleanup(clear)

	cfg, err := database.LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "hadron", cfg.User)
	assert.Equal(t, "hadron", cfg.Database)
	assert.Equal(t, "disable", cfg.SSLMode)

	os.Setenv("DB_HOST", "db.example.com")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_PASSWORD", "secret")
	cfg, err = database.LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "db.example.com", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Contains(t, cfg.DSN(), "host=db.example.com")
	assert.Contains(t, cfg.DSN(), "password=secret")

	os.Setenv("DB_PORT", "not-a-port")
	_, err = database.LoadConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DB_PORT")
}
