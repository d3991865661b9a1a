package configs

import (
	"testing"
)

func TestParseConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "accounts.db")
	t.Setenv("DATABASE_TYPE", "sqlite")
	t.Setenv("DISCORD_BOT_TOKEN", "bot-token")
	t.Setenv("ADMIN_USER_ID", "1119588177448013965")
	t.Setenv("ADMIN_USER_IDS", "100,200")
	t.Setenv("PORT", "9000")

	cfg, err := Parse(WithEnvFilePath(""))

	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseDSN != "accounts.db" {
		t.Errorf(`expected "DatabaseDSN" to equal "accounts.db", got "%s"`, cfg.DatabaseDSN)
	}

	if cfg.Port != 9000 {
		t.Errorf(`expected "Port" to equal 9000, got %d`, cfg.Port)
	}

	if len(cfg.AdminIDs) != 3 ||
		cfg.AdminIDs[0] != "100" ||
		cfg.AdminIDs[1] != "200" ||
		cfg.AdminIDs[2] != "1119588177448013965" {
		t.Errorf(
			"expected %#v, got %#v",
			[]string{"100", "200", "1119588177448013965"},
			cfg.AdminIDs,
		)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://localhost:5432/bot")

	cfg, err := Parse(WithEnvFilePath(""))

	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseType != "psql" {
		t.Errorf(`expected "DatabaseType" to equal "psql", got "%s"`, cfg.DatabaseType)
	}

	if cfg.Port != 8000 {
		t.Errorf(`expected "Port" to equal 8000, got %d`, cfg.Port)
	}

	if !contains(cfg.AdminIDs, cfg.InspectorID) && cfg.InspectorID != "" {
		t.Error("expected admin set to contain the inspector id")
	}
}

func TestParseConfigMissingDSN(t *testing.T) {
	if _, err := Parse(WithEnvFilePath("")); err == nil {
		t.Error("expected an error")
	}
}
