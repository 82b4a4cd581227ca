package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"SHEPHERD_ISSUER", "SHEPHERD_NUM_KEYS", "ACCESS_TOKEN_TTL", "SHEPHERD_DATABASE_FILE",
		"HOUSEKEEPING_SCHEDULE", "ENV", "PORT", "SHUTDOWN_GRACE_PERIOD", "ROLE_CATALOG_FILE",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "shepherd", cfg.Issuer)
	require.Zero(t, cfg.NumKeys)
	require.Equal(t, time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, "shepherd.db", cfg.DatabaseFile)
	require.Equal(t, "@every 5m", cfg.HousekeepingSchedule)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Empty(t, cfg.RoleCatalogFile)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SHEPHERD_ISSUER", "https://shepherd.church.org")
	t.Setenv("SHEPHERD_NUM_KEYS", "2")
	t.Setenv("ACCESS_TOKEN_TTL", "15") // bare minutes
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "3s")
	t.Setenv("PORT", "not-a-port")
	t.Setenv("HOUSEKEEPING_SCHEDULE", "*/10 * * * *")

	cfg := LoadConfig()
	require.Equal(t, "https://shepherd.church.org", cfg.Issuer)
	require.Equal(t, 2, cfg.NumKeys)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, 3*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 8080, cfg.Port, "malformed values fall back to the default")
	require.Equal(t, "*/10 * * * *", cfg.HousekeepingSchedule)
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	require.Equal(t, "shepherd version "+BuildVersion+"\n", runCommand(t, "version"))
}

func TestMigrateAndSeedCommands(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	db := filepath.Join(t.TempDir(), "shepherd.db")

	out := runCommand(t, "migrate", "--database", db)
	require.Contains(t, out, "database "+db+" at migration 1")

	require.Equal(t, "roles created: 7, updated: 0\n", runCommand(t, "roles", "seed", "--database", db))
	require.Equal(t, "roles created: 0, updated: 7\n", runCommand(t, "roles", "seed", "--database", db))
}

func TestSeedCommandWithCatalogFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()

	catalog := filepath.Join(dir, "roles.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(`
roles:
  - name: Senior Pastor
    description: Oversees the church
    level: 1
    departmentScope: all
    permissions:
      - name: everything
        resource: "*"
        action: manage
  - name: Worship Leader
    description: Leads the worship team
    level: 5
    departmentScope: specific
    allowedDepartments: [Worship]
    permissions:
      - name: worship events
        resource: events
        action: manage
`), 0o600))

	out := runCommand(t, "roles", "seed", "--database", filepath.Join(dir, "shepherd.db"), "--catalog", catalog)
	require.Equal(t, "roles created: 2, updated: 0\n", out)
}

func TestSeedCommandRejectsMissingCatalog(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()

	cmd := NewRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"roles", "seed", "--database", filepath.Join(dir, "shepherd.db"), "--catalog", filepath.Join(dir, "missing.yaml")})
	require.ErrorContains(t, cmd.Execute(), "failed to load role catalog")
}
