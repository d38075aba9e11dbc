// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/jl-wynen/lunarlander-bot/pkg/engine"
	"github.com/jl-wynen/lunarlander-bot/pkg/logging"
)

// Renderer draws one frame of the simulation. The harness calls it once
// per tick when rendering is enabled.
type Renderer interface {
	RenderFrame(game *engine.Game)
}

// NullRenderer is a Renderer that only logs at debug level. It is the
// default when rendering is disabled.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// RenderFrame implements Renderer.
func (d *NullRenderer) RenderFrame(game *engine.Game) {
	if game == nil {
		return
	}
	d.logger.Debug(context.Background(), "RenderFrame called",
		"tick", game.CurrentTick,
	)
}
