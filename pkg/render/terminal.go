package render

import (
	"fmt"
	"strings"

	"github.com/jl-wynen/lunarlander-bot/pkg/engine"
	"github.com/jl-wynen/lunarlander-bot/pkg/entity"
)

// TerminalRenderer provides a simple ASCII side view of the terrain and
// the landers for terminals.
type TerminalRenderer struct {
	width  int
	height int
	buffer [][]rune
}

// NewTerminalRenderer creates a new terminal renderer with the
// specified character dimensions.
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
	}
}

// RenderFrame implements Renderer: it draws the terrain profile, the
// landers, and a HUD line, then prints the frame.
func (r *TerminalRenderer) RenderFrame(game *engine.Game) {
	r.clear()
	r.drawTerrain(game)
	for _, lander := range game.Landers {
		r.drawLander(game, lander)
	}
	r.present(game)
}

// worldToScreen converts world coordinates to buffer coordinates. The
// world y axis points up, the buffer's row index down.
func (r *TerminalRenderer) worldToScreen(game *engine.Game, x, y float64) (int, int) {
	screenX := int(x / float64(game.Config.World.Width) * float64(r.width))
	screenY := r.height - 1 - int(y/game.Config.World.Height*float64(r.height))
	return screenX, screenY
}

func (r *TerminalRenderer) clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// drawTerrain fills each column up to the sampled terrain height.
func (r *TerminalRenderer) drawTerrain(game *engine.Game) {
	for sx := 0; sx < r.width; sx++ {
		wx := float64(sx) / float64(r.width) * float64(game.Config.World.Width)
		_, top := r.worldToScreen(game, wx, game.Terrain.HeightAt(int(wx)))
		for sy := top; sy < r.height; sy++ {
			if sy < 0 {
				continue
			}
			glyph := '#'
			if sy == top {
				glyph = '='
			}
			r.buffer[sy][sx] = glyph
		}
	}
}

func (r *TerminalRenderer) drawLander(game *engine.Game, lander *entity.Lander) {
	x, y := r.worldToScreen(game, lander.Position.X, lander.Position.Y)
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	glyph := 'A'
	if lander.Thrusting {
		glyph = '^'
	}
	if lander.Status == entity.StatusCrashed {
		glyph = '*'
	}
	r.buffer[y][x] = glyph
}

func (r *TerminalRenderer) present(game *engine.Game) {
	// Clear terminal
	fmt.Print("\033[H\033[2J")

	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
	for y := range r.buffer {
		fmt.Println("|" + string(r.buffer[y]) + "|")
	}
	fmt.Println("+" + strings.Repeat("-", r.width) + "+")

	for id, lander := range game.Landers {
		fmt.Printf("%s  t=%6.1fs  x=%7.1f y=%7.1f  vx=%6.2f vy=%6.2f spd=%6.2f  hdg=%6.1f  fuel=%6.1f  %s\n",
			id, game.ElapsedTime,
			lander.Position.X, lander.Position.Y,
			lander.Velocity.X, lander.Velocity.Y, lander.Velocity.Length(),
			lander.Heading, lander.Fuel, lander.Status)
	}
}
