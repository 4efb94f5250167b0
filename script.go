package navmenu

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Path   string  `yaml:"path,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// scriptFile is the top-level YAML structure of an input script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Script sequences injected input and menu commands across frames, for
// unattended demos and end-to-end tests. Attach it with Scene.SetScript.
//
// Actions:
//
//	click     x, y    press and release at a screen point (two frames)
//	wait      frames  do nothing for that many frames
//	toggle            call Menu.Toggle
//	navigate  path    call Menu.SetPath
type Script struct {
	// Menu receives toggle and navigate actions. Those actions are
	// skipped when it is nil.
	Menu *Menu

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML input script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("navmenu: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("navmenu: parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "wait", "toggle", "navigate":
		default:
			return nil, fmt.Errorf("navmenu: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script to the scene. Its step method runs at the
// start of every Advance, before input is processed.
func (s *Scene) SetScript(script *Script) {
	s.script = script
}

// Done reports whether every step has been executed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame.
func (r *Script) step(s *Scene) {
	if r.done {
		return
	}
	// Let pending injections drain first.
	if len(s.injectQueue) > 0 {
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
	s.debugf("script step %d: %s", r.cursor, st.Action)

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "toggle":
		if r.Menu != nil {
			r.Menu.Toggle()
		}
	case "navigate":
		if r.Menu != nil {
			r.Menu.SetPath(st.Path)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
