package csvio

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// WriterOptions control output formatting.
type WriterOptions struct {
	Delimiter  rune   // default ','
	TimeFormat string // default "2006-01-02"
}

// WriteAll writes a Frame to a CSV file with a header row. Null cells are
// written as empty fields.
func WriteAll(path string, f *frame.Frame, opt WriterOptions) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	w := csv.NewWriter(out)
	if opt.Delimiter != 0 {
		w.Comma = opt.Delimiter
	}
	timeFmt := opt.TimeFormat
	if timeFmt == "" {
		timeFmt = "2006-01-02"
	}

	hdr := make([]string, len(f.Schema().Columns))
	for i, cs := range f.Schema().Columns {
		hdr[i] = cs.Name
	}
	if err := w.Write(hdr); err != nil {
		return err
	}

	for r := 0; r < f.Rows(); r++ {
		row := make([]string, len(hdr))
		for c, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case frame.KindFloat:
				if v, ok := col.(*frame.FloatColumn).Get(r); ok {
					row[c] = strconv.FormatFloat(v, 'g', -1, 64)
				}
			case frame.KindInt:
				if v, ok := col.(*frame.IntColumn).Get(r); ok {
					row[c] = strconv.FormatInt(v, 10)
				}
			case frame.KindString:
				if v, ok := col.(*frame.StringColumn).Get(r); ok {
					row[c] = v
				}
			case frame.KindTime:
				if v, ok := col.(*frame.TimeColumn).Get(r); ok {
					row[c] = v.Format(timeFmt)
				}
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
