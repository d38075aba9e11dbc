// pkg/render/terminal_test.go
package render

import (
	"testing"

	"github.com/jl-wynen/lunarlander-bot/pkg/config"
	"github.com/jl-wynen/lunarlander-bot/pkg/engine"
	"github.com/jl-wynen/lunarlander-bot/pkg/event"
)

func TestTerminalRenderer_DrawsTerrainAndLander(t *testing.T) {
	game := engine.NewGame(config.DefaultConfig(), event.NewEventBus())
	lander := game.AddLander("lander-1", 960)

	r := NewTerminalRenderer(80, 24)
	r.clear()
	r.drawTerrain(game)
	r.drawLander(game, lander)

	var ground, craft int
	for y := range r.buffer {
		for x := range r.buffer[y] {
			switch r.buffer[y][x] {
			case '#', '=':
				ground++
			case 'A', '^':
				craft++
			}
		}
	}
	if ground == 0 {
		t.Error("no terrain drawn")
	}
	if craft != 1 {
		t.Errorf("lander glyphs = %d, expected 1", craft)
	}
}

func TestTerminalRenderer_OffscreenLanderIsSkipped(t *testing.T) {
	game := engine.NewGame(config.DefaultConfig(), event.NewEventBus())
	lander := game.AddLander("lander-1", 960)
	lander.Position.Y = game.Config.World.Height * 10

	r := NewTerminalRenderer(80, 24)
	r.clear()
	r.drawLander(game, lander) // must not panic or write out of bounds

	for y := range r.buffer {
		for x := range r.buffer[y] {
			if r.buffer[y][x] == 'A' {
				t.Fatal("offscreen lander was drawn")
			}
		}
	}
}

func TestNullRenderer_HandlesNilGame(t *testing.T) {
	NewNullRenderer().RenderFrame(nil) // must not panic
}
