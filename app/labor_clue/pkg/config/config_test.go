package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/labor_clue/app/labor_clue/pkg/region"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, region.DefaultTables(), cfg.Region)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
output_dir: ./out
region:
  aliases:
    - from: 西陵
      to: 西陵区
  districts: [西陵区, 点军区]
  owners:
    - district: 西陵区
      name: 张三
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./out", cfg.OutputDir)
	assert.Equal(t, []string{"西陵区", "点军区"}, cfg.Region.Districts)
	assert.Equal(t, []region.Alias{{From: "西陵", To: "西陵区"}}, cfg.Region.Aliases)
	assert.Equal(t, "张三", cfg.Region.Owner("西陵区"))
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LABOR_CLUE_LOG_LEVEL", "warn")
	t.Setenv("LABOR_CLUE_OUTPUT_DIR", "/tmp/reports")

	cfg, err := LoadConfig(writeFile(t, "log:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
}

func TestLoadConfig_InvalidRegion(t *testing.T) {
	path := writeFile(t, `
region:
  aliases:
    - from: 武汉
      to: 武汉市
  districts: [西陵区]
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "log: [unterminated"))
	assert.Error(t, err)
}
