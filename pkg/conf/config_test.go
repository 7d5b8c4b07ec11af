package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type testConfig struct {
	Server struct {
		ListenAddress string
		Timeout       time.Duration
	}
	DataBase struct {
		Driver string
		Port   uint16
	}
	Name string `mapstructure:"title"`
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("TEST_SERVER_LISTENADDRESS", ":9999")
	t.Setenv("TEST_SERVER_TIMEOUT", "3s")
	t.Setenv("TEST_TITLE", "school")

	config := testConfig{}
	err := ParseConfig(&config, EnvPrefix("TEST"), Defaults(map[string]interface{}{
		"Server.ListenAddress": ":8000",
		"DataBase.Driver":      "sqlite",
		"DataBase.Port":        5432,
	}))
	if err != nil {
		t.Fatal("Failed to parse config:", err)
	}

	expected := testConfig{Name: "school"}
	expected.Server.ListenAddress = ":9999"
	expected.Server.Timeout = 3 * time.Second
	expected.DataBase.Driver = "sqlite"
	expected.DataBase.Port = 5432

	if diff := cmp.Diff(expected, config); diff != "" {
		t.Fatalf("Config mismatch (-want +got):\n%s", diff)
	}
}

const testConfigYaml = `
server:
  listenaddress: ":7000"
  timeout: 1m
database:
  driver: postgres
  port: 6432
`

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigYaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FILE_DATABASE_DRIVER", "sqlite")

	config := testConfig{}
	if err := ParseConfig(&config, EnvPrefix("FILE"), File(path)); err != nil {
		t.Fatal("Failed to parse config:", err)
	}

	if config.Server.ListenAddress != ":7000" || config.Server.Timeout != time.Minute {
		t.Fatalf("Server section not read from file: %+v", config.Server)
	}
	if config.DataBase.Port != 6432 {
		t.Fatalf("Expected port 6432 from file, got %d", config.DataBase.Port)
	}
	if config.DataBase.Driver != "sqlite" {
		t.Fatalf("Expected env to override the file, got driver %q", config.DataBase.Driver)
	}
}

func TestMissingConfigFile(t *testing.T) {
	config := testConfig{}
	err := ParseConfig(&config, File(filepath.Join(t.TempDir(), "missing.yaml")))
	if err == nil {
		t.Fatal("Expected an error for a missing config file")
	}
}
