package mock

import (
	"context"

	"github.com/skillpack/skillpack"
)

var _ skillpack.Describer = (*Describer)(nil)

// Describer is a mock implementation of skillpack.Describer.
type Describer struct {
	DescribeFn func(ctx context.Context, skill *skillpack.Skill) (string, error)
}

func (d *Describer) Describe(ctx context.Context, skill *skillpack.Skill) (string, error) {
	return d.DescribeFn(ctx, skill)
}
