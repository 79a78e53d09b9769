// Package assembler composes a primary record with its owned collections.
//
// A Plan lists the named dependent loads for one kind of primary record.
// Services fetch the primary rows themselves and hand each one to the plan,
// which fills the owned collections in place. Dependents run one after the
// other unless the plan is parallel, in which case the dependents of a
// single primary run concurrently and all of them finish before Run returns.
package assembler

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Dependent loads one owned collection into the primary record. Each
// dependent must write only its own field of P.
type Dependent[P any] struct {
	Name string
	Load func(ctx context.Context, primary *P) error
}

type Plan[P any] struct {
	dependents []Dependent[P]
	parallel   bool
}

func NewPlan[P any](parallel bool, dependents ...Dependent[P]) *Plan[P] {
	return &Plan[P]{
		dependents: dependents,
		parallel:   parallel,
	}
}

// Run loads every dependent of a single primary record.
func (p *Plan[P]) Run(ctx context.Context, primary *P) error {
	if !p.parallel || len(p.dependents) < 2 {
		for _, d := range p.dependents {
			if err := d.Load(ctx, primary); err != nil {
				return fmt.Errorf("failed to load %s: %w", d.Name, err)
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, d := range p.dependents {
		g.Go(func() error {
			if err := d.Load(gctx, primary); err != nil {
				return fmt.Errorf("failed to load %s: %w", d.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// RunAll runs the plan for each primary in order and stops at the first failure.
func (p *Plan[P]) RunAll(ctx context.Context, primaries []P) error {
	for i := range primaries {
		if err := p.Run(ctx, &primaries[i]); err != nil {
			return err
		}
	}
	return nil
}
