package rainfall_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdm0006/monsoon/pkg/frame"
	"github.com/wdm0006/monsoon/pkg/rainfall"
)

// wideFrame builds a wide table row per (subdivision, year) with the given
// month values; a nil value leaves the cell missing.
func wideFrame(t *testing.T, rows []wideRow) *frame.Frame {
	t.Helper()
	cols := []frame.ColumnSchema{
		{Name: "SUBDIVISION", Type: frame.KindString},
		{Name: "YEAR", Type: frame.KindInt},
	}
	for _, m := range rainfall.Months {
		cols = append(cols, frame.ColumnSchema{Name: strings.ToUpper(m), Type: frame.KindFloat, Nullable: true})
	}
	f := frame.New(frame.Schema{Columns: cols})
	for _, row := range rows {
		f.AppendNullRow()
		r := f.Rows() - 1
		require.NoError(t, f.SetCell(r, "SUBDIVISION", row.sub))
		require.NoError(t, f.SetCell(r, "YEAR", row.year))
		for i, v := range row.months {
			if v != nil {
				require.NoError(t, f.SetCell(r, strings.ToUpper(rainfall.Months[i]), *v))
			}
		}
	}
	return f
}

type wideRow struct {
	sub    string
	year   int
	months [12]*float64
}

func fp(v float64) *float64 { return &v }

func monthsOf(vals ...float64) [12]*float64 {
	var out [12]*float64
	for i := range out {
		out[i] = fp(vals[i])
	}
	return out
}

func TestMeltSingleRow(t *testing.T) {
	months := monthsOf(10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 15)
	f := wideFrame(t, []wideRow{{sub: "X", year: 1901, months: months}})

	recs, missing, err := rainfall.Melt(f)
	require.NoError(t, err)
	assert.Zero(t, missing)
	require.Len(t, recs, 12)

	jan := recs[0]
	assert.Equal(t, "X", jan.Subdivision)
	assert.Equal(t, 1901, jan.Year)
	assert.Equal(t, "jan", jan.Month)
	assert.Equal(t, 1, jan.MonthNum)
	assert.Equal(t, time.Date(1901, 1, 1, 0, 0, 0, 0, time.UTC), jan.Date)
	require.NotNil(t, jan.Rainfall)
	assert.Equal(t, 10.0, *jan.Rainfall)
	assert.Equal(t, "Winter", jan.Season)

	dec := recs[11]
	assert.Equal(t, "dec", dec.Month)
	assert.Equal(t, 12, dec.MonthNum)
	assert.Equal(t, 15.0, *dec.Rainfall)
}

func TestMeltCountsMissingAndSorts(t *testing.T) {
	m1 := monthsOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	m2 := m1
	m2[3] = nil // apr missing
	f := wideFrame(t, []wideRow{
		{sub: "B", year: 1902, months: m2},
		{sub: "A", year: 1901, months: m1},
	})

	recs, missing, err := rainfall.Melt(f)
	require.NoError(t, err)
	assert.Equal(t, 1, missing)
	require.Len(t, recs, 24)
	// canonical order: subdivision, year, month_num
	assert.Equal(t, "A", recs[0].Subdivision)
	assert.Equal(t, "B", recs[12].Subdivision)
	assert.Nil(t, recs[15].Rainfall, "apr of B/1902 should be missing")
}

func TestMeltRoundTrip(t *testing.T) {
	months := monthsOf(3.5, 0, 12, 7.25, 9, 1, 2, 4, 8, 16, 32, 64)
	f := wideFrame(t, []wideRow{{sub: "X", year: 1905, months: months}})

	recs, _, err := rainfall.Melt(f)
	require.NoError(t, err)
	for _, r := range recs {
		want, ok := f.FloatAt(strings.ToUpper(r.Month), 0)
		require.True(t, ok)
		require.NotNil(t, r.Rainfall)
		assert.Equal(t, want, *r.Rainfall, "cell %s", r.Month)
	}
}

func TestMeltMissingColumnsFatal(t *testing.T) {
	f := frame.New(frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "SUBDIVISION", Type: frame.KindString},
		{Name: "JAN", Type: frame.KindFloat},
	}})
	_, _, err := rainfall.Melt(f)
	require.ErrorIs(t, err, rainfall.ErrMissingColumns)

	_, _, err = rainfall.Melt(nil)
	require.ErrorIs(t, err, rainfall.ErrMissingColumns)
}

func TestMeltHeaderCaseInsensitive(t *testing.T) {
	cols := []frame.ColumnSchema{
		{Name: "Subdivision", Type: frame.KindString},
		{Name: "Year", Type: frame.KindInt},
	}
	for _, m := range rainfall.Months {
		cols = append(cols, frame.ColumnSchema{Name: m, Type: frame.KindFloat, Nullable: true})
	}
	f := frame.New(frame.Schema{Columns: cols})
	f.AppendNullRow()
	require.NoError(t, f.SetCell(0, "Subdivision", "X"))
	require.NoError(t, f.SetCell(0, "Year", 1903))
	require.NoError(t, f.SetCell(0, "jul", 42.0))

	recs, missing, err := rainfall.Melt(f)
	require.NoError(t, err)
	assert.Equal(t, 11, missing)
	require.Len(t, recs, 12)
	require.NotNil(t, recs[6].Rainfall)
	assert.Equal(t, 42.0, *recs[6].Rainfall)
}
