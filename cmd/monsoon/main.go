// Command monsoon preprocesses a wide historical rainfall CSV: melts it to
// one row per subdivision/year/month, imputes gaps, derives seasonal totals
// and year-over-year changes, prints descriptive statistics, and writes the
// processed tables, charts and a summary workbook to the working directory.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"

	"github.com/wdm0006/monsoon/pkg/charts"
	"github.com/wdm0006/monsoon/pkg/io/csvio"
	"github.com/wdm0006/monsoon/pkg/rainfall"
	"github.com/wdm0006/monsoon/pkg/report"
)

const (
	monthlyOut   = "processed_monthly_rainfall.csv"
	seasonalOut  = "processed_seasonal_rainfall.csv"
	distChart    = "monthly_rainfall_distribution.png"
	trendChart   = "yearly_rainfall_trend.png"
	heatmapChart = "monthly_rainfall_heatmap.png"
	workbookOut  = "rainfall_summary.xlsx"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	input := "rainfall_yearly.csv"
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	if err := run(input, logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(input string, logger *slog.Logger) error {
	f, err := csvio.Load(input, csvio.ReaderOptions{HasHeader: true})
	switch {
	case errors.Is(err, csvio.ErrNotFound):
		logger.Error("input file absent", "path", input)
		return err
	case errors.Is(err, csvio.ErrParse):
		logger.Error("input unreadable", "path", input)
		return err
	case err != nil:
		return err
	}
	logger.Info("loaded", "path", input, "rows", f.Rows())

	recs, missing, err := rainfall.Melt(f)
	if err != nil {
		return err
	}
	logger.Info("reshaped to long form", "records", len(recs), "missing_rainfall", missing)

	if missing > 0 {
		filled := rainfall.ImputeGroupMean(recs)
		logger.Info("imputed from subdivision/month means", "filled", filled)
	}

	rainfall.AddYoY(recs)
	seasonal := rainfall.SeasonalTotals(recs)

	monthlyStats := rainfall.MonthlyStats(recs)
	seasonalStats := rainfall.SeasonalStats(seasonal)
	yearlyStats := rainfall.YearlyStats(recs)

	fmt.Println("\nMonthly Rainfall Statistics:")
	printStats(monthlyStats, "Month")
	fmt.Println("\nSeasonal Rainfall Statistics:")
	printStats(seasonalStats, "Season")
	fmt.Println("\nYearly Rainfall Statistics:")
	printStats(yearlyStats, "Year")
	printTrendGraph(recs)

	for _, render := range []struct {
		path string
		fn   func([]rainfall.LongRecord, string, charts.Style) error
	}{
		{distChart, charts.MonthlyDistribution},
		{trendChart, charts.YearlyTrend},
		{heatmapChart, charts.MonthlyHeatmap},
	} {
		if err := render.fn(recs, render.path, charts.DefaultStyle()); err != nil {
			return fmt.Errorf("chart %s: %w", render.path, err)
		}
		logger.Info("wrote chart", "path", render.path)
	}

	if err := csvio.WriteAll(monthlyOut, rainfall.MonthlyFrame(recs), csvio.WriterOptions{}); err != nil {
		return err
	}
	logger.Info("wrote", "path", monthlyOut, "rows", len(recs))

	if err := csvio.WriteAll(seasonalOut, rainfall.SeasonalFrame(seasonal), csvio.WriterOptions{}); err != nil {
		return err
	}
	logger.Info("wrote", "path", seasonalOut, "rows", len(seasonal))

	if err := report.WriteWorkbook(workbookOut, monthlyStats, seasonalStats, yearlyStats); err != nil {
		return err
	}
	logger.Info("wrote", "path", workbookOut)

	logger.Info("preprocessing complete")
	return nil
}

func printStats(rows []rainfall.StatsRow, keyName string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{keyName, "Count", "Mean", "Median", "Min", "Max", "Std Dev"})
	for _, row := range rows {
		if !row.Valid {
			table.Append([]string{row.Key, "0", "-", "-", "-", "-", "-"})
			continue
		}
		table.Append([]string{
			row.Key,
			strconv.Itoa(row.Count),
			fmtStat(row.Mean),
			fmtStat(row.Median),
			fmtStat(row.Min),
			fmtStat(row.Max),
			fmtStat(row.StdDev),
		})
	}
	table.Render()
}

func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// printTrendGraph draws the yearly totals as a console sparkline under the
// statistics tables.
func printTrendGraph(recs []rainfall.LongRecord) {
	totals := make(map[int]float64)
	for _, r := range recs {
		if r.Rainfall != nil {
			totals[r.Year] += *r.Rainfall
		}
	}
	if len(totals) < 2 {
		return
	}
	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)
	series := make([]float64, len(years))
	for i, y := range years {
		series[i] = totals[y]
	}
	caption := fmt.Sprintf("Total yearly rainfall (mm), %d-%d", years[0], years[len(years)-1])
	fmt.Println()
	fmt.Println(asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Caption(caption)))
}
