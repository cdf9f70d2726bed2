// Command rainclean runs a declarative cleaning pipeline over a tabular
// rainfall dataset: impute missing values, derive a date from YEAR/MONTH,
// coerce measurement columns to numbers, standardize, and persist.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/wdm0006/monsoon/pkg/frame"
	"github.com/wdm0006/monsoon/pkg/io/csvio"
	"github.com/wdm0006/monsoon/pkg/io/parquetio"
	"github.com/wdm0006/monsoon/pkg/profile"
	"github.com/wdm0006/monsoon/pkg/transform/derive"
	"github.com/wdm0006/monsoon/pkg/transform/impute"
	"github.com/wdm0006/monsoon/pkg/transform/scale"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := defaultConfig()
	if len(os.Args) > 1 {
		var err error
		cfg, err = loadConfig(os.Args[1])
		if err != nil {
			logger.Error("config", "path", os.Args[1], "err", err)
			os.Exit(2)
		}
	}

	rules, err := cfg.ruleSet()
	if err != nil {
		logger.Error("config roles", "err", err)
		os.Exit(2)
	}

	if err := run(cfg, rules, logger); err != nil {
		logger.Error("clean failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg Config, rules derive.RuleSet, logger *slog.Logger) error {
	opt := csvio.ReaderOptions{HasHeader: true}
	if cfg.Input.HasHeader != nil {
		opt.HasHeader = *cfg.Input.HasHeader
	}
	if cfg.Input.Delimiter != "" {
		opt.Delimiter = rune(cfg.Input.Delimiter[0])
	}

	f, err := csvio.Load(cfg.Input.Path, opt)
	switch {
	case errors.Is(err, csvio.ErrNotFound):
		logger.Warn("input file absent, nothing to clean", "path", cfg.Input.Path)
		return nil
	case errors.Is(err, csvio.ErrParse):
		logger.Error("input unreadable, nothing to clean", "path", cfg.Input.Path)
		return err
	case err != nil:
		return err
	}
	logger.Info("loaded", "path", cfg.Input.Path, "rows", f.Rows(), "cols", f.Cols())

	before := profile.Collect(f)
	logger.Info("missing values before cleaning", "total", profile.TotalNulls(before))
	for _, p := range before {
		if p.Nulls > 0 {
			logger.Info("column", "name", p.Name, "nulls", p.Nulls, "rows", p.Rows)
		}
	}

	scaler := &scale.Standardize{
		Exclude: append(
			rules.ColumnsWithRole(f, derive.RoleYear),
			rules.ColumnsWithRole(f, derive.RoleMonth)...,
		),
	}
	p, err := buildPipeline(cfg.Steps, rules, scaler)
	if err != nil {
		return err
	}
	logger.Info("pipeline", "steps", p.Steps())

	out, err := p.Run(context.Background(), f)
	if err != nil {
		return err
	}
	if out == nil {
		logger.Info("empty result, nothing written")
		return nil
	}

	after := profile.Collect(out)
	logger.Info("missing values after cleaning", "total", profile.TotalNulls(after))

	if len(scaler.Fitted) > 0 {
		names := make([]string, 0, len(scaler.Fitted))
		for name := range scaler.Fitted {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fp := scaler.Fitted[name]
			logger.Info("scaled", "column", name, "mean", fp.Mean, "stddev", fp.StdDev)
		}
	}

	switch cfg.Output.Format {
	case "", "csv":
		err = csvio.WriteAll(cfg.Output.Path, out, csvio.WriterOptions{})
	case "parquet":
		err = parquetio.WriteAll(cfg.Output.Path, out)
	default:
		return fmt.Errorf("unsupported output format %q", cfg.Output.Format)
	}
	if err != nil {
		return err
	}
	logger.Info("wrote", "path", cfg.Output.Path, "rows", out.Rows())
	return nil
}

func buildPipeline(steps []StepConfig, rules derive.RuleSet, scaler *scale.Standardize) (*frame.Pipeline, error) {
	p := frame.NewPipeline()
	for _, s := range steps {
		switch s.Name {
		case "impute_median":
			p.Add(&impute.Median{Columns: s.Columns})
		case "impute_mean":
			p.Add(&impute.Mean{Columns: s.Columns})
		case "impute_mode":
			p.Add(&impute.Mode{Columns: s.Columns})
		case "impute_constant":
			p.Add(&impute.Constant{Column: s.Column, Value: s.Value})
		case "build_date":
			p.Add(&derive.BuildDate{Rules: rules, Column: s.Column})
		case "sort_by_date":
			p.Add(&derive.SortByDate{Column: s.Column})
		case "coerce_numeric":
			p.Add(&derive.CoerceNumeric{Rules: rules})
		case "standardize":
			// columns here lists exclusions, overriding the role-based ones
			if len(s.Columns) > 0 {
				scaler.Exclude = s.Columns
			}
			p.Add(scaler)
		default:
			return nil, fmt.Errorf("unknown step %q", s.Name)
		}
	}
	return p, nil
}
