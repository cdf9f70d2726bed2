package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// Load outcomes. Callers discriminate with errors.Is rather than inspecting
// message text.
var (
	// ErrNotFound reports that the input file does not exist.
	ErrNotFound = errors.New("csv: file not found")
	// ErrParse reports that the file exists but could not be read as CSV.
	ErrParse = errors.New("csv: parse failure")
)

// ReaderOptions control header handling and schema inference.
type ReaderOptions struct {
	HasHeader  bool
	Delimiter  rune // default ','
	SampleRows int  // rows sampled for kind inference; default 100
}

// Load reads an entire CSV file into a Frame, inferring column kinds from a
// sample of rows. Empty cells become nulls. The returned error wraps
// ErrNotFound or ErrParse so callers can distinguish the two failure modes.
func Load(path string, opt ReaderOptions) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer func() { _ = f.Close() }()
	fr, err := ReadAll(f, opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return fr, nil
}

// ReadAll reads CSV records from r into a Frame.
func ReadAll(r io.Reader, opt ReaderOptions) (*frame.Frame, error) {
	cr := csv.NewReader(r)
	if opt.Delimiter != 0 {
		cr.Comma = opt.Delimiter
	}
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("empty input")
	}

	names := make([]string, len(records[0]))
	rows := records
	if opt.HasHeader {
		for i, h := range records[0] {
			names[i] = strings.TrimPrefix(strings.TrimSpace(h), "\uFEFF")
		}
		rows = records[1:]
	} else {
		for i := range names {
			names[i] = "col_" + strconv.Itoa(i)
		}
	}

	sample := rows
	max := opt.SampleRows
	if max <= 0 {
		max = 100
	}
	if len(sample) > max {
		sample = sample[:max]
	}
	kinds := inferKinds(len(names), sample)

	schema := frame.Schema{Columns: make([]frame.ColumnSchema, len(names))}
	for i := range names {
		schema.Columns[i] = frame.ColumnSchema{Name: names[i], Type: kinds[i], Nullable: true}
	}

	fr := frame.New(schema)
	for _, rec := range rows {
		fr.AppendNullRow()
		row := fr.Rows() - 1
		for i, cs := range schema.Columns {
			if i >= len(rec) {
				continue
			}
			val := strings.TrimSpace(rec[i])
			if isNullToken(val) {
				continue
			}
			switch cs.Type {
			case frame.KindFloat:
				if x, err := strconv.ParseFloat(val, 64); err == nil {
					_ = fr.SetCell(row, cs.Name, x)
				}
			case frame.KindInt:
				if x, err := strconv.ParseInt(val, 10, 64); err == nil {
					_ = fr.SetCell(row, cs.Name, x)
				}
			default:
				_ = fr.SetCell(row, cs.Name, val)
			}
		}
	}
	return fr, nil
}

var numRe = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)

// isNullToken reports whether a raw cell should be treated as missing.
func isNullToken(v string) bool {
	return v == "" || strings.EqualFold(v, "na") || strings.EqualFold(v, "nan")
}

func inferKinds(ncol int, rows [][]string) []frame.Kind {
	kinds := make([]frame.Kind, ncol)
	for c := 0; c < ncol; c++ {
		num, integer, str := 0, 0, 0
		for _, row := range rows {
			if c >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[c])
			if isNullToken(v) {
				continue
			}
			if numRe.MatchString(v) {
				num++
				if !strings.ContainsAny(v, ".eE") {
					integer++
				}
			} else {
				str++
			}
		}
		switch {
		case num > 0 && str == 0 && integer == num:
			kinds[c] = frame.KindInt
		case num > 0 && str == 0:
			kinds[c] = frame.KindFloat
		default:
			kinds[c] = frame.KindString
		}
	}
	return kinds
}
