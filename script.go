package stage

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownStep is returned by LoadScript for a step with an unknown action.
var ErrUnknownStep = errors.New("unknown script step")

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `yaml:"action" json:"action"`
	X      float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty" json:"y,omitempty"`
	ToX    float64 `yaml:"toX,omitempty" json:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty" json:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty" json:"frames,omitempty"`
	Scene  string  `yaml:"scene,omitempty" json:"scene,omitempty"`
	Label  string  `yaml:"label,omitempty" json:"label,omitempty"`
}

// script is the top-level document structure.
type script struct {
	Steps []scriptStep `yaml:"steps" json:"steps"`
}

var scriptActions = map[string]bool{
	"move":       true,
	"path":       true,
	"click":      true,
	"leave":      true,
	"wait":       true,
	"pause":      true,
	"resume":     true,
	"destroy":    true,
	"screenshot": true,
}

// ScriptRunner sequences injected pointer input and scene lifecycle calls
// across frames, for automated checks and attract-mode demos. Call Step once
// per frame before Registry.Update.
//
// A script is a YAML or JSON document:
//
//	steps:
//	  - {action: move, x: 100, y: 80}
//	  - {action: click, x: 100, y: 80}
//	  - {action: wait, frames: 30}
//	  - {action: pause, scene: lobby}
type ScriptRunner struct {
	// OnScreenshot handles "screenshot" steps. Game sets it to queue a
	// capture of the next drawn frame.
	OnScreenshot func(label string)

	steps     []scriptStep
	pointer   *InjectedPointer
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a script and returns a runner that feeds pointer.
func LoadScript(data []byte, pointer *InjectedPointer) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: %w %q", i, ErrUnknownStep, st.Action)
		}
		if (st.Action == "pause" || st.Action == "resume" || st.Action == "destroy") && st.Scene == "" {
			return nil, fmt.Errorf("parse script: step %d: %s needs a scene", i, st.Action)
		}
	}
	if pointer == nil {
		pointer = NewInjectedPointer()
	}
	return &ScriptRunner{steps: s.Steps, pointer: pointer}, nil
}

// Pointer returns the injected pointer the runner feeds.
func (sr *ScriptRunner) Pointer() *InjectedPointer {
	return sr.pointer
}

// Done reports whether all steps have been executed and their input drained.
func (sr *ScriptRunner) Done() bool {
	return sr.done
}

// Step advances the runner by one frame.
func (sr *ScriptRunner) Step(r *Registry) {
	if sr.done {
		return
	}
	// Wait for pending input to drain before advancing.
	if sr.pointer.Pending() > 0 {
		return
	}
	if sr.waitCount > 0 {
		sr.waitCount--
		return
	}
	if sr.cursor >= len(sr.steps) {
		sr.done = true
		return
	}

	st := sr.steps[sr.cursor]
	sr.cursor++

	switch st.Action {
	case "move":
		sr.pointer.InjectMove(st.X, st.Y)
	case "path":
		sr.pointer.InjectPath(st.X, st.Y, st.ToX, st.ToY, st.Frames)
	case "click":
		sr.pointer.InjectClick(st.X, st.Y)
	case "leave":
		sr.pointer.InjectLeave()
	case "wait":
		if st.Frames > 0 {
			sr.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "pause":
		r.PauseScene(st.Scene)
	case "resume":
		r.ResumeScene(st.Scene)
	case "destroy":
		r.DestroyEntitiesByScene(st.Scene)
	case "screenshot":
		if sr.OnScreenshot != nil {
			sr.OnScreenshot(st.Label)
		}
	}
}
