package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdm0006/monsoon/pkg/transform/derive"
	"github.com/wdm0006/monsoon/pkg/transform/scale"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "run.yaml", `
input:
  path: in.csv
output:
  path: out.parquet
  format: parquet
roles:
  - match: ANNO
    role: year
steps:
  - name: impute_mean
  - name: standardize
    columns: [ANNO]
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "in.csv", cfg.Input.Path)
	assert.Equal(t, "parquet", cfg.Output.Format)
	require.Len(t, cfg.Steps, 2)
	assert.Equal(t, "impute_mean", cfg.Steps[0].Name)
	assert.Equal(t, []string{"ANNO"}, cfg.Steps[1].Columns)

	rs, err := cfg.ruleSet()
	require.NoError(t, err)
	assert.Equal(t, derive.RoleYear, rs.RoleOf("anno_inizio"))
	assert.Equal(t, derive.RoleNone, rs.RoleOf("RAIN"), "declared roles replace the defaults")
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "run.toml", `
[input]
path = "in.csv"

[[steps]]
name = "impute_median"
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "in.csv", cfg.Input.Path)
	require.Len(t, cfg.Steps, 1)
	assert.Equal(t, "impute_median", cfg.Steps[0].Name)
}

func TestLoadConfigJSONDefaults(t *testing.T) {
	path := writeConfig(t, "run.json", `{"input":{"path":"in.csv"}}`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "preprocessed_rainfall.csv", cfg.Output.Path)
	assert.Equal(t, defaultConfig().Steps, cfg.Steps, "empty steps fall back to the canonical run")
}

func TestLoadConfigUnknownExtension(t *testing.T) {
	path := writeConfig(t, "run.ini", "x")
	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestRuleSetRejectsUnknownRole(t *testing.T) {
	cfg := defaultConfig()
	cfg.Roles = []RoleConfig{{Match: "X", Role: "bogus"}}
	_, err := cfg.ruleSet()
	require.Error(t, err)
}

func TestBuildPipeline(t *testing.T) {
	scaler := &scale.Standardize{}
	p, err := buildPipeline(defaultConfig().Steps, derive.DefaultRules(), scaler)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"impute_median", "impute_mode", "build_date",
		"sort_by_date", "coerce_numeric", "standardize",
	}, p.Steps())
}

func TestBuildPipelineUnknownStep(t *testing.T) {
	_, err := buildPipeline([]StepConfig{{Name: "bogus"}}, derive.DefaultRules(), &scale.Standardize{})
	require.Error(t, err)
}
