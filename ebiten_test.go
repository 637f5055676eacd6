package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenKeysCoverEveryKey(t *testing.T) {
	seen := make(map[Key]ebiten.Key, len(ebitenKeys))
	for eb, k := range ebitenKeys {
		if prev, dup := seen[k]; dup {
			t.Errorf("%v mapped from both %v and %v", k, prev, eb)
		}
		seen[k] = eb
	}
	for k := KeyA; k < keyCount; k++ {
		if _, ok := seen[k]; !ok {
			t.Errorf("%v has no Ebitengine key", k)
		}
	}
	if _, ok := seen[KeyUnknown]; ok {
		t.Error("KeyUnknown should not be mapped")
	}
}

func TestEbitenWindowCursorMode(t *testing.T) {
	tests := []struct {
		name    string
		grabbed bool
		hidden  bool
		want    ebiten.CursorModeType
	}{
		{"visible", false, false, ebiten.CursorModeVisible},
		{"hidden", false, true, ebiten.CursorModeHidden},
		{"grabbed", true, false, ebiten.CursorModeCaptured},
		{"grabbed and hidden", true, true, ebiten.CursorModeCaptured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &EbitenWindow{grabbed: tt.grabbed, hidden: tt.hidden}
			if got := w.cursorMode(); got != tt.want {
				t.Errorf("cursorMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEbitenDisplayLayout(t *testing.T) {
	d := &EbitenDisplay{}
	d.SetLayout(320, 240)
	if w, h := d.ScreenSize(); w != 320 || h != 240 {
		t.Errorf("ScreenSize = (%v,%v), want (320,240)", w, h)
	}
}

func TestEbitenButtons(t *testing.T) {
	seen := make(map[MouseButton]bool)
	for _, b := range ebitenButtons {
		seen[b.btn] = true
	}
	for btn := MouseButtonLeft; btn <= MouseButtonForward; btn++ {
		if !seen[btn] {
			t.Errorf("%v has no Ebitengine button", btn)
		}
	}
}
