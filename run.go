package input

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// PreventQuit keeps the window open when the user closes it; the request
	// is still reported by Context.IsQuitRequested.
	PreventQuit bool
	// Debug enables per-frame stats on stderr.
	Debug bool
	// ShowOverlay draws FPS, TPS and the input snapshot over the game.
	ShowOverlay bool
}

// Game is an ebiten.Game that feeds a Context from Ebitengine every tick
// before calling the user's update and draw functions.
type Game struct {
	ctx     *Context
	source  *EbitenSource
	display *EbitenDisplay
	overlay *Overlay
	update  func() error
	draw    func(*ebiten.Image)
}

// NewGame wires ctx to Ebitengine and returns a Game ready for
// ebiten.RunGame. update and draw may be nil.
func NewGame(ctx *Context, update func() error, draw func(*ebiten.Image)) *Game {
	g := &Game{
		ctx:     ctx,
		source:  NewEbitenSource(),
		display: &EbitenDisplay{},
		update:  update,
		draw:    draw,
	}
	ctx.SetDisplay(g.display)
	ctx.SetWindow(&EbitenWindow{})
	return g
}

// Update implements ebiten.Game. It returns ebiten.Termination once a quit
// request is not prevented.
func (g *Game) Update() error {
	g.ctx.Update(g.source)
	if g.ctx.ShouldQuit() {
		return ebiten.Termination
	}
	if g.update != nil {
		return g.update()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.draw != nil {
		g.draw(screen)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.display.SetLayout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the game loop until the window closes or
// update returns an error. A regular quit returns nil.
func Run(ctx *Context, update func() error, draw func(*ebiten.Image), cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)
	ctx.SetPreventQuit(cfg.PreventQuit)
	ctx.SetDebugMode(cfg.Debug)

	g := NewGame(ctx, update, draw)
	if cfg.ShowOverlay {
		g.overlay = NewOverlay(ctx)
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
