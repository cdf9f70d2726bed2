package rainfall

import "github.com/wdm0006/monsoon/pkg/frame"

// MonthlyFrame lays long records out as a frame for CSV export, preserving
// nulls in the nullable columns.
func MonthlyFrame(recs []LongRecord) *frame.Frame {
	f := frame.New(frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "subdivision", Type: frame.KindString},
		{Name: "year", Type: frame.KindInt},
		{Name: "month", Type: frame.KindString},
		{Name: "rainfall", Type: frame.KindFloat, Nullable: true},
		{Name: "month_num", Type: frame.KindInt},
		{Name: "date", Type: frame.KindTime},
		{Name: "season", Type: frame.KindString},
		{Name: "prev_year_rainfall", Type: frame.KindFloat, Nullable: true},
		{Name: "yoy_change", Type: frame.KindFloat, Nullable: true},
		{Name: "yoy_change_pct", Type: frame.KindFloat, Nullable: true},
	}})
	for _, r := range recs {
		f.AppendNullRow()
		row := f.Rows() - 1
		_ = f.SetCell(row, "subdivision", r.Subdivision)
		_ = f.SetCell(row, "year", r.Year)
		_ = f.SetCell(row, "month", r.Month)
		_ = f.SetCell(row, "month_num", r.MonthNum)
		_ = f.SetCell(row, "date", r.Date)
		_ = f.SetCell(row, "season", r.Season)
		setFloat(f, row, "rainfall", r.Rainfall)
		setFloat(f, row, "prev_year_rainfall", r.PrevYear)
		setFloat(f, row, "yoy_change", r.YoYChange)
		setFloat(f, row, "yoy_change_pct", r.YoYChangePct)
	}
	return f
}

// SeasonalFrame lays seasonal records out as a frame for CSV export.
func SeasonalFrame(recs []SeasonalRecord) *frame.Frame {
	f := frame.New(frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "subdivision", Type: frame.KindString},
		{Name: "year", Type: frame.KindInt},
		{Name: "season", Type: frame.KindString},
		{Name: "rainfall", Type: frame.KindFloat},
	}})
	for _, r := range recs {
		f.AppendNullRow()
		row := f.Rows() - 1
		_ = f.SetCell(row, "subdivision", r.Subdivision)
		_ = f.SetCell(row, "year", r.Year)
		_ = f.SetCell(row, "season", r.Season)
		_ = f.SetCell(row, "rainfall", r.Rainfall)
	}
	return f
}

func setFloat(f *frame.Frame, row int, name string, v *float64) {
	if v != nil {
		_ = f.SetCell(row, name, *v)
	}
}
