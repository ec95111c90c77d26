package jelly

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is one entry of a test script. Only the fields its action
// reads are meaningful.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptActions maps action names to what they do to the game. "wait" is
// handled by the runner itself.
var scriptActions = map[string]func(g *Game, st scriptStep){
	"screenshot": func(g *Game, st scriptStep) { g.Screenshot(st.Label) },
	"click":      func(g *Game, st scriptStep) { g.InjectClick(st.X, st.Y) },
	"press":      func(g *Game, st scriptStep) { g.InjectPress(st.X, st.Y) },
	"move":       func(g *Game, st scriptStep) { g.InjectMove(st.X, st.Y) },
	"release":    func(g *Game, st scriptStep) { g.InjectRelease(st.X, st.Y) },
	"drag": func(g *Game, st scriptStep) {
		g.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	},
	"resize": func(g *Game, st scriptStep) { g.resize(int(st.Width), int(st.Height)) },
	"wait":   func(*Game, scriptStep) {},
}

// TestRunner replays a JSON script of pointer input, resizes and
// screenshots, one step per frame. Steps that inject input hold the script
// until the injected events have been consumed.
//
//	{"steps": [
//	  {"action": "drag", "fromX": 100, "fromY": 100, "toX": 400, "toY": 200, "frames": 20},
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "settled"}
//	]}
type TestRunner struct {
	steps []scriptStep
	next  int
	hold  int
	done  bool
}

// LoadTestScript parses a JSON test script. Unknown actions are rejected up
// front rather than skipped at run time.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if _, ok := scriptActions[st.Action]; !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner to the game. It is stepped at the top of
// every Update.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether every step has run and its input has drained.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(g *Game) {
	switch {
	case r.done, len(g.injectQueue) > 0:
		return
	case r.hold > 0:
		r.hold--
		return
	case r.next == len(r.steps):
		r.done = true
		return
	}

	st := r.steps[r.next]
	r.next++
	scriptActions[st.Action](g, st)
	if st.Action == "wait" && st.Frames > 1 {
		r.hold = st.Frames - 1
	}

	r.done = r.next == len(r.steps) && r.hold == 0 && len(g.injectQueue) == 0
}
