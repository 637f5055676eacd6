package input

import (
	"fmt"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	DX     float64 `yaml:"dx,omitempty"`
	DY     float64 `yaml:"dy,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Ease   string  `yaml:"ease,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	Text   string  `yaml:"text,omitempty"`
	ID     uint64  `yaml:"id,omitempty"`
	Phase  string  `yaml:"phase,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences injected input across frames for automated testing.
// Attach it to a Context via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

var easeFuncs = map[string]ease.TweenFunc{
	"":          ease.Linear,
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inCubic":   ease.InCubic,
	"outCubic":  ease.OutCubic,
	"outBounce": ease.OutBounce,
}

var rawTouchPhases = map[string]RawTouchPhase{
	"started":   RawTouchStarted,
	"moved":     RawTouchMoved,
	"ended":     RawTouchEnded,
	"cancelled": RawTouchCancelled,
}

// LoadTestScript parses a YAML (or JSON) test script and returns a TestRunner
// ready to be attached via SetTestRunner. Every step is validated up front.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := validateStep(st); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func validateStep(st testStep) error {
	switch st.Action {
	case "click", "press", "move", "release", "text", "wheel", "wait", "quit":
		return nil
	case "drag":
		if _, ok := easeFuncs[st.Ease]; !ok {
			return fmt.Errorf("unknown ease %q", st.Ease)
		}
		return nil
	case "key":
		if _, ok := ParseKey(st.Key); !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		return nil
	case "touch":
		if _, ok := rawTouchPhases[st.Phase]; !ok {
			return fmt.Errorf("unknown touch phase %q", st.Phase)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// SetTestRunner attaches a TestRunner to the context. The runner's step
// method is called from Update before injected input is dispatched.
func (c *Context) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Context.Update.
func (r *TestRunner) step(c *Context) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		c.InjectClick(st.X, st.Y)
	case "press":
		c.InjectPress(st.X, st.Y)
	case "move":
		c.InjectMove(st.X, st.Y)
	case "release":
		c.InjectRelease(st.X, st.Y)
	case "drag":
		c.InjectDragEased(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames, easeFuncs[st.Ease])
	case "key":
		key, _ := ParseKey(st.Key)
		c.InjectKeyPress(key, 0)
	case "text":
		c.InjectText(st.Text)
	case "wheel":
		c.InjectWheel(st.DX, st.DY)
	case "touch":
		c.InjectTouch(st.ID, rawTouchPhases[st.Phase], st.X, st.Y)
	case "quit":
		c.InjectQuit()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
