// Package golearn converts cleaned frames into golearn DenseInstances so a
// preprocessed rainfall table can feed a modeling stage directly.
package golearn

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"

	"github.com/wdm0006/monsoon/pkg/frame"
)

// ToDenseInstances converts a Frame into golearn DenseInstances. Numeric
// columns become float attributes, everything else categorical. classAttr
// names the column to mark as the class attribute; empty means none.
func ToDenseInstances(f *frame.Frame, classAttr string) (*base.DenseInstances, error) {
	if f == nil {
		return nil, fmt.Errorf("nil frame")
	}
	attrs := make([]base.Attribute, len(f.Schema().Columns))
	classIdx := -1
	for i, cs := range f.Schema().Columns {
		switch cs.Type {
		case frame.KindFloat, frame.KindInt:
			attrs[i] = base.NewFloatAttribute(cs.Name)
		default:
			ca := new(base.CategoricalAttribute)
			ca.SetName(cs.Name)
			attrs[i] = ca
		}
		if cs.Name == classAttr {
			classIdx = i
		}
	}
	if classAttr != "" && classIdx < 0 {
		return nil, fmt.Errorf("class attribute %q not in frame", classAttr)
	}

	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(f.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < f.Rows(); r++ {
		for c, cs := range f.Schema().Columns {
			switch cs.Type {
			case frame.KindFloat, frame.KindInt:
				if v, ok := f.FloatAt(cs.Name, r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(v))
				}
			case frame.KindString:
				col, _ := f.ColumnByName(cs.Name)
				if v, ok := col.(*frame.StringColumn).Get(r); ok {
					inst.Set(specs[c], r, attrs[c].GetSysValFromString(v))
				}
			case frame.KindTime:
				col, _ := f.ColumnByName(cs.Name)
				if v, ok := col.(*frame.TimeColumn).Get(r); ok {
					inst.Set(specs[c], r, attrs[c].GetSysValFromString(v.Format("2006-01-02")))
				}
			}
		}
	}

	if classIdx >= 0 {
		if err := inst.AddClassAttribute(attrs[classIdx]); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
