package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"

	"github.com/wdm0006/monsoon/pkg/transform/derive"
)

// Config declares one cleaning run. Zero values fall back to the canonical
// rainfall-preprocessing defaults.
type Config struct {
	Input struct {
		Path      string `json:"path" yaml:"path" toml:"path"`
		HasHeader *bool  `json:"has_header" yaml:"has_header" toml:"has_header"`
		Delimiter string `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
	} `json:"input" yaml:"input" toml:"input"`
	Output struct {
		Path   string `json:"path" yaml:"path" toml:"path"`
		Format string `json:"format" yaml:"format" toml:"format"` // csv|parquet
	} `json:"output" yaml:"output" toml:"output"`
	Roles []RoleConfig `json:"roles" yaml:"roles" toml:"roles"`
	Steps []StepConfig `json:"steps" yaml:"steps" toml:"steps"`
}

// RoleConfig maps a column-name substring to a semantic role.
type RoleConfig struct {
	Match string `json:"match" yaml:"match" toml:"match"`
	Role  string `json:"role" yaml:"role" toml:"role"` // year|month|measurement
}

// StepConfig names one pipeline step with its optional parameters.
type StepConfig struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Column  string   `json:"column" yaml:"column" toml:"column"`
	Columns []string `json:"columns" yaml:"columns" toml:"columns"`
	Value   any      `json:"value" yaml:"value" toml:"value"`
}

// defaultConfig is the fixed preprocessing run used when no config file is
// given: impute, derive a date, sort, coerce measurements, standardize.
func defaultConfig() Config {
	var cfg Config
	cfg.Input.Path = "rainfall.csv"
	cfg.Output.Path = "preprocessed_rainfall.csv"
	cfg.Steps = []StepConfig{
		{Name: "impute_median"},
		{Name: "impute_mode"},
		{Name: "build_date"},
		{Name: "sort_by_date"},
		{Name: "coerce_numeric"},
		{Name: "standardize"},
	}
	return cfg
}

// loadConfig reads a config file, choosing the decoder by extension.
func loadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := defaultConfig()
	cfg.Steps = nil
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	default:
		err = fmt.Errorf("unsupported config format: %s", path)
	}
	if err != nil {
		return Config{}, err
	}
	if cfg.Input.Path == "" {
		cfg.Input.Path = "rainfall.csv"
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "preprocessed_rainfall.csv"
	}
	if len(cfg.Steps) == 0 {
		cfg.Steps = defaultConfig().Steps
	}
	return cfg, nil
}

// ruleSet builds the column-role rules, defaulting to the rainfall
// conventions when the config declares none.
func (c Config) ruleSet() (derive.RuleSet, error) {
	if len(c.Roles) == 0 {
		return derive.DefaultRules(), nil
	}
	rs := make(derive.RuleSet, 0, len(c.Roles))
	for _, rc := range c.Roles {
		var role derive.Role
		switch strings.ToLower(rc.Role) {
		case "year":
			role = derive.RoleYear
		case "month":
			role = derive.RoleMonth
		case "measurement":
			role = derive.RoleMeasurement
		default:
			return nil, fmt.Errorf("unknown role %q for pattern %q", rc.Role, rc.Match)
		}
		rs = append(rs, derive.Rule{Substring: rc.Match, Role: role})
	}
	return rs, nil
}
