package navmenu

import (
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TimelineState is the playback state of a Timeline.
type TimelineState uint8

const (
	TimelineIdleStart       TimelineState = iota // parked at position 0
	TimelinePlayingForward                       // advancing toward the end (possibly still in its delay)
	TimelineIdleEnd                              // parked at the end
	TimelinePlayingBackward                      // rewinding toward position 0
)

func (s TimelineState) String() string {
	switch s {
	case TimelineIdleStart:
		return "idle-at-start"
	case TimelinePlayingForward:
		return "playing-forward"
	case TimelineIdleEnd:
		return "idle-at-end"
	case TimelinePlayingBackward:
		return "playing-backward"
	default:
		return "unknown"
	}
}

// Step animates one property from From to To. Steps that share a Track write
// the same property; within a track only the latest started step writes.
type Step struct {
	Track    string
	From, To float32
	Duration float32 // 0 = set instantly when the playhead reaches the step
	Ease     ease.TweenFunc
	Apply    func(v float32)

	// Immediate makes the track write From before the step starts, the way
	// a "from" animation hides its targets up front.
	Immediate bool
}

type segment struct {
	offset float32
	step   Step
	tween  *gween.Tween
}

func (s *segment) valueAt(local float32) float32 {
	if s.step.Duration <= 0 {
		if local >= 0 {
			return s.step.To
		}
		return s.step.From
	}
	v, _ := s.tween.Set(local)
	return v
}

type track struct {
	name      string
	segs      []*segment // sorted by offset
	immediate bool
	touched   bool
}

// render writes the track's value at pos. Before the first step starts the
// track stays silent unless it is immediate or has written since its last
// reset, in which case it writes the first step's From so rewinding past the
// start restores the pre-animation value.
func (tr *track) render(pos float32) {
	var active *segment
	for _, s := range tr.segs {
		if pos >= s.offset {
			active = s
		}
	}
	if active == nil {
		if !tr.immediate && !tr.touched {
			return
		}
		first := tr.segs[0]
		first.step.Apply(first.step.From)
		tr.touched = false
		return
	}
	active.step.Apply(active.valueAt(pos - active.offset))
	tr.touched = true
}

// Timeline is an ordered, replayable set of steps with a playhead that moves
// forward or backward. Timelines are built once and then only played; the
// playhead position is their only runtime state.
//
// A timeline never advances by itself. Register it with a Ticker (a Scene
// owns one) or call Update directly.
type Timeline struct {
	Name string

	tracks   []*track
	byName   map[string]*track
	delay    float32
	duration float32

	pos   float32
	wait  float32
	state TimelineState
}

// NewTimeline creates an empty timeline parked at its start.
func NewTimeline(name string) *Timeline {
	return &Timeline{Name: name, byName: make(map[string]*track)}
}

// SetDelay sets the lead-in applied by Restart(true). Reversing never waits.
func (tl *Timeline) SetDelay(d float32) *Timeline {
	tl.delay = d
	return tl
}

// Delay returns the lead-in applied by Restart(true).
func (tl *Timeline) Delay() float32 { return tl.delay }

// At places steps at the given offset (seconds from the timeline start).
func (tl *Timeline) At(offset float32, steps ...Step) *Timeline {
	for _, st := range steps {
		tl.add(offset, st)
	}
	return tl
}

// Stagger places count groups of steps, the i-th group starting at
// offset + i*each. build returns the steps for group i.
func (tl *Timeline) Stagger(offset, each float32, count int, build func(i int) []Step) *Timeline {
	for i := 0; i < count; i++ {
		tl.At(offset+float32(i)*each, build(i)...)
	}
	return tl
}

func (tl *Timeline) add(offset float32, st Step) {
	if st.Apply == nil {
		panic("navmenu: timeline step needs an Apply func")
	}
	if st.Ease == nil {
		st.Ease = ease.Linear
	}
	seg := &segment{offset: offset, step: st}
	if st.Duration > 0 {
		seg.tween = gween.New(st.From, st.To, st.Duration, st.Ease)
	}

	name := st.Track
	tr, ok := tl.byName[name]
	if !ok || name == "" {
		tr = &track{name: name}
		tl.tracks = append(tl.tracks, tr)
		if name != "" {
			tl.byName[name] = tr
		}
	}
	tr.segs = append(tr.segs, seg)
	sort.SliceStable(tr.segs, func(i, j int) bool { return tr.segs[i].offset < tr.segs[j].offset })
	if st.Immediate {
		tr.immediate = true
	}

	if end := offset + st.Duration; end > tl.duration {
		tl.duration = end
	}
}

// End returns the time at which the last step finishes. Use it to append
// steps after everything added so far, optionally with a gap.
func (tl *Timeline) End() float32 { return tl.duration }

// Duration returns the playable length, excluding the delay.
func (tl *Timeline) Duration() float32 { return tl.duration }

// Position returns the playhead position in seconds.
func (tl *Timeline) Position() float32 { return tl.pos }

// State returns the current playback state.
func (tl *Timeline) State() TimelineState { return tl.state }

// Active reports whether the timeline is playing in either direction.
func (tl *Timeline) Active() bool {
	return tl.state == TimelinePlayingForward || tl.state == TimelinePlayingBackward
}

// Waiting reports whether a restart is still consuming its delay.
func (tl *Timeline) Waiting() bool { return tl.wait > 0 }

// --- Playback ---

// Restart moves the playhead to 0 and plays forward, discarding any in-flight
// playback. With includeDelay the timeline first waits out its delay; during
// the wait only immediate tracks are written, at their start values, and the
// rest keep whatever they show. Otherwise position 0 renders at once.
func (tl *Timeline) Restart(includeDelay bool) {
	tl.pos = 0
	tl.wait = 0
	if includeDelay {
		tl.wait = tl.delay
	}
	tl.state = TimelinePlayingForward
	if tl.wait > 0 {
		for _, tr := range tl.tracks {
			if tr.immediate {
				tr.render(0)
			}
		}
		return
	}
	tl.render()
	if tl.duration <= 0 {
		tl.state = TimelineIdleEnd
	}
}

// Play resumes forward playback from the current position.
func (tl *Timeline) Play() {
	tl.wait = 0
	if tl.pos >= tl.duration {
		tl.pos = tl.duration
		tl.state = TimelineIdleEnd
		tl.render()
		return
	}
	tl.state = TimelinePlayingForward
}

// Reverse plays backward from the current position toward 0.
func (tl *Timeline) Reverse() {
	tl.wait = 0
	if tl.pos <= 0 {
		tl.pos = 0
		tl.state = TimelineIdleStart
		return
	}
	tl.state = TimelinePlayingBackward
}

// Cancel halts playback and parks the playhead at 0 without rendering, so
// the properties keep whatever values they had. Another timeline can then
// take over those properties.
func (tl *Timeline) Cancel() {
	tl.wait = 0
	tl.pos = 0
	tl.state = TimelineIdleStart
	for _, tr := range tl.tracks {
		tr.touched = false
	}
}

// Render writes every track's value at the current position.
func (tl *Timeline) Render() { tl.render() }

// Update advances the playhead by dt seconds and renders. Idle timelines are
// left untouched.
func (tl *Timeline) Update(dt float32) {
	switch tl.state {
	case TimelinePlayingForward:
		if tl.wait > 0 {
			tl.wait -= dt
			if tl.wait > 0 {
				return
			}
			dt = -tl.wait
			tl.wait = 0
		}
		tl.pos += dt
		if tl.pos >= tl.duration {
			tl.pos = tl.duration
			tl.state = TimelineIdleEnd
		}
		tl.render()
	case TimelinePlayingBackward:
		tl.pos -= dt
		if tl.pos <= 0 {
			tl.pos = 0
			tl.state = TimelineIdleStart
		}
		tl.render()
	}
}

func (tl *Timeline) render() {
	for _, tr := range tl.tracks {
		tr.render(tl.pos)
	}
}

// --- Ticker ---

// Ticker is the shared frame-update loop for timelines. Timelines are
// advanced in registration order, so when two timelines write the same
// property in one frame the later-registered one wins.
type Ticker struct {
	timelines []*Timeline
}

// Add registers tl. Adding a registered timeline is a no-op.
func (t *Ticker) Add(tl *Timeline) {
	for _, x := range t.timelines {
		if x == tl {
			return
		}
	}
	t.timelines = append(t.timelines, tl)
}

// Remove unregisters tl. Removing an unknown timeline is a no-op.
func (t *Ticker) Remove(tl *Timeline) {
	for i, x := range t.timelines {
		if x == tl {
			copy(t.timelines[i:], t.timelines[i+1:])
			t.timelines[len(t.timelines)-1] = nil
			t.timelines = t.timelines[:len(t.timelines)-1]
			return
		}
	}
}

// Len returns the number of registered timelines.
func (t *Ticker) Len() int { return len(t.timelines) }

// Tick advances every registered timeline by dt seconds.
func (t *Ticker) Tick(dt float32) {
	for _, tl := range t.timelines {
		tl.Update(dt)
	}
}
