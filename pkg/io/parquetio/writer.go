// Package parquetio writes frames as Parquet files for downstream tools
// that prefer columnar input over CSV.
package parquetio

import (
	"encoding/json"
	"fmt"

	local "github.com/xitongsys/parquet-go-source/local"
	pw "github.com/xitongsys/parquet-go/writer"

	"github.com/wdm0006/monsoon/pkg/frame"
)

func schemaJSON(s frame.Schema) string {
	type field struct {
		Tag string `json:"Tag"`
	}
	type schema struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	sc := schema{Tag: "name=schema, repetitiontype=REQUIRED"}
	for _, cs := range s.Columns {
		tag := "name=" + cs.Name + ", repetitiontype=OPTIONAL, type="
		switch cs.Type {
		case frame.KindFloat:
			tag += "DOUBLE"
		case frame.KindInt:
			tag += "INT64"
		default:
			tag += "BYTE_ARRAY, convertedtype=UTF8"
		}
		sc.Fields = append(sc.Fields, field{Tag: tag})
	}
	b, _ := json.Marshal(sc)
	return string(b)
}

// WriteAll writes a Frame to a Parquet file. Null cells become missing
// fields in their row groups.
func WriteAll(path string, f *frame.Frame) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer func() { _ = fw.Close() }()

	w, err := pw.NewJSONWriter(schemaJSON(f.Schema()), fw, 1)
	if err != nil {
		return err
	}

	for r := 0; r < f.Rows(); r++ {
		m := map[string]any{}
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case frame.KindFloat:
				if v, ok := col.(*frame.FloatColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case frame.KindInt:
				if v, ok := col.(*frame.IntColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case frame.KindString:
				if v, ok := col.(*frame.StringColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case frame.KindTime:
				if v, ok := col.(*frame.TimeColumn).Get(r); ok {
					m[cs.Name] = v.Format("2006-01-02")
				}
			}
		}
		b, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
		if err := w.Write(string(b)); err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
	}
	return w.WriteStop()
}
