package frame_test

import (
	"context"
	"errors"
	"testing"

	f "github.com/wdm0006/monsoon/pkg/frame"
)

type addOne struct{}

func (addOne) Name() string { return "add_one" }
func (addOne) Apply(ctx context.Context, fr *f.Frame) (*f.Frame, error) {
	col, _ := fr.ColumnByName("mm")
	c := col.(*f.FloatColumn)
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Get(i); ok {
			c.Set(i, v+1)
		}
	}
	return fr, nil
}

type failing struct{}

func (failing) Name() string { return "failing" }
func (failing) Apply(ctx context.Context, fr *f.Frame) (*f.Frame, error) {
	return nil, errors.New("boom")
}

func TestPipelineRun(t *testing.T) {
	fr := newTestFrame(t)
	p := f.NewPipeline().Add(addOne{}).Add(addOne{})
	out, err := p.Run(context.Background(), fr)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.FloatAt("mm", 0); v != 14.5 {
		t.Fatalf("expected both steps applied, got %v", v)
	}
	if got := p.Steps(); len(got) != 2 || got[0] != "add_one" {
		t.Fatalf("Steps() = %v", got)
	}
}

func TestPipelineNilFrameShortCircuits(t *testing.T) {
	p := f.NewPipeline().Add(failing{})
	out, err := p.Run(context.Background(), nil)
	if err != nil || out != nil {
		t.Fatalf("nil frame should no-op, got %v %v", out, err)
	}
}

func TestPipelineStopsOnError(t *testing.T) {
	fr := newTestFrame(t)
	p := f.NewPipeline().Add(failing{}).Add(addOne{})
	if _, err := p.Run(context.Background(), fr); err == nil {
		t.Fatal("expected error from failing step")
	}
	if v, _ := fr.FloatAt("mm", 0); v != 12.5 {
		t.Fatalf("later step ran after failure, mm = %v", v)
	}
}
