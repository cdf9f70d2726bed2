package csvio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wdm0006/monsoon/pkg/frame"
)

func TestReadAllInfersKindsAndNulls(t *testing.T) {
	in := "SUBDIVISION,YEAR,JAN,FEB\nX,1901,10.5,20\nY,1902,,3.5\n"
	f, err := ReadAll(strings.NewReader(in), ReaderOptions{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows() != 2 {
		t.Fatalf("rows = %d", f.Rows())
	}
	cols := f.Schema().Columns
	if cols[0].Type != frame.KindString || cols[1].Type != frame.KindInt || cols[2].Type != frame.KindFloat {
		t.Fatalf("inferred kinds wrong: %+v", cols)
	}
	if v, ok := f.FloatAt("JAN", 0); !ok || v != 10.5 {
		t.Fatalf("JAN[0] = %v %v", v, ok)
	}
	if _, ok := f.FloatAt("JAN", 1); ok {
		t.Fatal("empty cell not read as null")
	}
}

func TestReadAllNATokens(t *testing.T) {
	in := "A,B\n1.5,x\nNA,y\nNaN,z\n"
	f, err := ReadAll(strings.NewReader(in), ReaderOptions{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if f.Schema().Columns[0].Type != frame.KindFloat {
		t.Fatalf("NA tokens should not force a string column: %+v", f.Schema().Columns[0])
	}
	col, _ := f.ColumnByName("A")
	if !col.IsNull(1) || !col.IsNull(2) {
		t.Fatal("NA/NaN not treated as missing")
	}
}

func TestReadAllWithoutHeader(t *testing.T) {
	f, err := ReadAll(strings.NewReader("1,2\n3,4\n"), ReaderOptions{HasHeader: false})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.ColumnByName("col_0"); !ok {
		t.Fatal("expected generated column names")
	}
}

func TestLoadDistinguishesFailures(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), ReaderOptions{HasHeader: true})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(bad, []byte("a,\"b\nbroken"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad, ReaderOptions{HasHeader: true})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestWriteAllRoundTrip(t *testing.T) {
	f := frame.New(frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "sub", Type: frame.KindString},
		{Name: "mm", Type: frame.KindFloat, Nullable: true},
	}})
	f.AppendNullRow()
	_ = f.SetCell(0, "sub", "X")
	_ = f.SetCell(0, "mm", 1.25)
	f.AppendNullRow()
	_ = f.SetCell(1, "sub", "Y")
	// mm stays null

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteAll(path, f, WriterOptions{}); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path, ReaderOptions{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if back.Rows() != 2 {
		t.Fatalf("rows = %d", back.Rows())
	}
	if v, ok := back.FloatAt("mm", 0); !ok || v != 1.25 {
		t.Fatalf("mm[0] = %v %v", v, ok)
	}
	if _, ok := back.FloatAt("mm", 1); ok {
		t.Fatal("null did not survive the round trip")
	}
}

func TestReadAllStripsByteOrderMark(t *testing.T) {
	in := "\uFEFFA,B\n1,2\n"
	f, err := ReadAll(strings.NewReader(in), ReaderOptions{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.ColumnByName("A"); !ok {
		t.Fatalf("first header kept its byte order mark: %+v", f.Schema().Columns)
	}
}
