package calcs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/calcconfigs"
)

type Module struct {
	dscope.Module
	Configs calcconfigs.Module
}

// NewEngine creates an Engine with the configured limits.
type NewEngine func() *Engine

func (Module) NewEngine(
	maxLength calcconfigs.MaxBufferLength,
	precision calcconfigs.Precision,
) NewEngine {
	return func() *Engine {
		return New(
			WithMaxLength(int(maxLength)),
			WithPrecision(int(precision)),
		)
	}
}
