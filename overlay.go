package input

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayRefresh is the number of ticks between overlay redraws (~0.5s at 60 TPS).
const overlayRefresh = 30

// Overlay draws FPS, TPS and the current input snapshot in the top-left
// corner of the screen. It redraws its text every ~0.5 seconds.
type Overlay struct {
	ctx   *Context
	img   *ebiten.Image
	ticks int
}

// NewOverlay creates an overlay reporting the state of ctx.
func NewOverlay(ctx *Context) *Overlay {
	return &Overlay{ctx: ctx, ticks: overlayRefresh}
}

// Draw renders the overlay on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.img == nil {
		// 220x96 fits seven lines of debug text.
		o.img = ebiten.NewImage(220, 96)
	}
	o.ticks++
	if o.ticks >= overlayRefresh {
		o.ticks = 0
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), overlayText(o.ctx)))
	}
	screen.DrawImage(o.img, nil)
}

// overlayText formats the input snapshot shown by Overlay.
func overlayText(c *Context) string {
	var b strings.Builder
	x, y := c.MousePosition()
	fmt.Fprintf(&b, "Mouse: %.0f,%.0f", x, y)
	for btn := MouseButtonLeft; btn <= MouseButtonForward; btn++ {
		if c.IsMouseButtonDown(btn) {
			fmt.Fprintf(&b, " %s", btn)
		}
	}
	b.WriteString("\nKeys:")
	for _, k := range c.KeysDown() {
		fmt.Fprintf(&b, " %s", k)
	}
	// Read the map directly; Touches would advance the synthetic contact.
	fmt.Fprintf(&b, "\nTouches: %d\n", len(c.touches))
	fmt.Fprintf(&b, "Subscribers: %d", c.Subscribers())
	return b.String()
}
