package parquetio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wdm0006/monsoon/pkg/frame"
)

func TestSchemaJSON(t *testing.T) {
	s := frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "rain", Type: frame.KindFloat, Nullable: true},
		{Name: "year", Type: frame.KindInt},
		{Name: "season", Type: frame.KindString},
	}}
	got := schemaJSON(s)
	for _, want := range []string{
		"name=rain, repetitiontype=OPTIONAL, type=DOUBLE",
		"name=year, repetitiontype=OPTIONAL, type=INT64",
		"name=season, repetitiontype=OPTIONAL, type=BYTE_ARRAY, convertedtype=UTF8",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("schema missing %q:\n%s", want, got)
		}
	}
}

func TestWriteAll(t *testing.T) {
	f := frame.New(frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "rain", Type: frame.KindFloat, Nullable: true},
		{Name: "season", Type: frame.KindString},
	}})
	for i, row := range []struct {
		rain   any
		season string
	}{
		{10.5, "Winter"},
		{nil, "Summer"},
	} {
		f.AppendNullRow()
		if row.rain != nil {
			if err := f.SetCell(i, "rain", row.rain); err != nil {
				t.Fatal(err)
			}
		}
		if err := f.SetCell(i, "season", row.season); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "out.parquet")
	if err := WriteAll(path, f); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("parquet file is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// magic bytes at both ends of a parquet file
	if string(data[:4]) != "PAR1" || string(data[len(data)-4:]) != "PAR1" {
		t.Fatal("missing parquet magic")
	}
}
