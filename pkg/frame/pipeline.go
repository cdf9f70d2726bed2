package frame

import "context"

// Transform is a mutation applied to a Frame. A nil input frame means the
// upstream load produced nothing; transforms must pass it through untouched.
type Transform interface {
	Name() string
	Apply(ctx context.Context, f *Frame) (*Frame, error)
}

// Pipeline composes a sequence of Transforms.
type Pipeline struct {
	steps []Transform
}

func NewPipeline() *Pipeline { return &Pipeline{} }

func (p *Pipeline) Add(t Transform) *Pipeline {
	p.steps = append(p.steps, t)
	return p
}

// Steps returns the names of the composed transforms in order.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, t := range p.steps {
		names[i] = t.Name()
	}
	return names
}

// Run applies each transform in order. A nil frame short-circuits to a nil
// result without error.
func (p *Pipeline) Run(ctx context.Context, f *Frame) (*Frame, error) {
	if f == nil {
		return nil, nil
	}
	var err error
	cur := f
	for _, t := range p.steps {
		cur, err = t.Apply(ctx, cur)
		if err != nil {
			return nil, err
		}
		if cur == nil {
			return nil, nil
		}
	}
	return cur, nil
}
