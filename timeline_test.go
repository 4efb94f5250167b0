package navmenu

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const tweenEpsilon = 1e-3

func assertValue(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math.Abs(float64(got-want)) > tweenEpsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// probe is a property written by timeline steps.
type probe struct {
	v      float32
	writes int
}

func (p *probe) step(track string, from, to, dur float32) Step {
	return Step{
		Track: track, From: from, To: to, Duration: dur, Ease: ease.Linear,
		Apply: func(v float32) {
			p.v = v
			p.writes++
		},
	}
}

func TestTimelineRestartPlaysToEnd(t *testing.T) {
	p := &probe{v: -1}
	tl := NewTimeline("t").At(0, p.step("x", 0, 10, 1))

	tl.Restart(false)
	assertValue(t, "start", p.v, 0)
	if tl.State() != TimelinePlayingForward {
		t.Fatalf("state = %s, want playing-forward", tl.State())
	}

	tl.Update(0.5)
	assertValue(t, "half", p.v, 5)
	tl.Update(0.5)
	assertValue(t, "end", p.v, 10)
	if tl.State() != TimelineIdleEnd {
		t.Errorf("state = %s, want idle-at-end", tl.State())
	}
}

func TestTimelineOvershootClamps(t *testing.T) {
	p := &probe{}
	tl := NewTimeline("t").At(0, p.step("x", 0, 10, 1))
	tl.Restart(false)
	tl.Update(5)
	assertValue(t, "clamped", p.v, 10)
	assertValue(t, "position", tl.Position(), 1)
}

func TestTimelineDelayAppliesOnlyWithRestartDelay(t *testing.T) {
	p := &probe{v: -1}
	tl := NewTimeline("t").At(0, p.step("x", 0, 10, 1)).SetDelay(0.2)

	tl.Restart(true)
	if !tl.Waiting() {
		t.Fatal("expected timeline to wait out its delay")
	}
	if p.writes != 0 {
		t.Fatalf("writes during delay = %d, want 0", p.writes)
	}
	tl.Update(0.1)
	if p.writes != 0 {
		t.Fatalf("writes during delay = %d, want 0", p.writes)
	}
	tl.Update(0.2)
	if tl.Waiting() {
		t.Error("delay should be consumed")
	}
	assertValue(t, "after delay", p.v, 1)

	q := &probe{v: -1}
	tl2 := NewTimeline("t2").At(0, q.step("x", 0, 10, 1)).SetDelay(0.2)
	tl2.Restart(false)
	if tl2.Waiting() {
		t.Error("Restart(false) should skip the delay")
	}
	assertValue(t, "no delay", q.v, 0)
}

func TestTimelineReverseFromMiddle(t *testing.T) {
	p := &probe{}
	tl := NewTimeline("t").At(0, p.step("x", 0, 10, 1))
	tl.Restart(false)
	tl.Update(0.5)

	tl.Reverse()
	if tl.State() != TimelinePlayingBackward {
		t.Fatalf("state = %s, want playing-backward", tl.State())
	}
	tl.Update(0.25)
	assertValue(t, "rewinding", p.v, 2.5)
	tl.Update(1)
	assertValue(t, "rewound", p.v, 0)
	if tl.State() != TimelineIdleStart {
		t.Errorf("state = %s, want idle-at-start", tl.State())
	}
}

func TestTimelineReverseAtStartIsIdle(t *testing.T) {
	p := &probe{}
	tl := NewTimeline("t").At(0, p.step("x", 0, 10, 1))
	tl.Reverse()
	if tl.State() != TimelineIdleStart {
		t.Errorf("state = %s, want idle-at-start", tl.State())
	}
	tl.Update(1)
	if p.writes != 0 {
		t.Errorf("writes = %d, want 0", p.writes)
	}
}

func TestTimelinePlayResumesFromPosition(t *testing.T) {
	p := &probe{}
	tl := NewTimeline("t").At(0, p.step("x", 0, 10, 1))
	tl.Restart(false)
	tl.Update(0.5)
	tl.Reverse()
	tl.Update(0.25)

	tl.Play()
	tl.Update(0.25)
	assertValue(t, "resumed", p.v, 5)
}

func TestTimelinePlayAtEndStaysAtEnd(t *testing.T) {
	p := &probe{}
	tl := NewTimeline("t").At(0, p.step("x", 0, 10, 1))
	tl.Restart(false)
	tl.Update(1)
	tl.Play()
	if tl.State() != TimelineIdleEnd {
		t.Errorf("state = %s, want idle-at-end", tl.State())
	}
	assertValue(t, "end", p.v, 10)
}

func TestTimelineLatestStartedSegmentWrites(t *testing.T) {
	p := &probe{}
	tl := NewTimeline("t").
		At(0, p.step("x", 0, 1, 1)).
		At(1, p.step("x", 10, 20, 1))

	tl.Restart(false)
	tl.Update(0.5)
	assertValue(t, "first segment", p.v, 0.5)
	tl.Update(1)
	assertValue(t, "second segment", p.v, 15)
	if tl.Duration() != 2 {
		t.Errorf("Duration = %v, want 2", tl.Duration())
	}
}

func TestTimelineImmediateWritesFromBeforeStart(t *testing.T) {
	p := &probe{v: -1}
	st := p.step("x", 5, 10, 1)
	st.Immediate = true
	tl := NewTimeline("t").At(1, st)

	tl.Render()
	assertValue(t, "immediate", p.v, 5)
}

func TestTimelineRewindRestoresFrom(t *testing.T) {
	p := &probe{v: -1}
	tl := NewTimeline("t").At(0.5, p.step("x", 3, 10, 0.5))

	tl.Restart(false)
	if p.writes != 0 {
		t.Fatalf("non-immediate track wrote before its start")
	}
	tl.Update(1)
	assertValue(t, "end", p.v, 10)

	tl.Reverse()
	tl.Update(1)
	assertValue(t, "restored", p.v, 3)
}

func TestTimelineCancelKeepsValues(t *testing.T) {
	p := &probe{}
	tl := NewTimeline("t").At(0, p.step("x", 0, 10, 1))
	tl.Restart(false)
	tl.Update(0.5)

	tl.Cancel()
	assertValue(t, "kept", p.v, 5)
	if tl.State() != TimelineIdleStart || tl.Position() != 0 {
		t.Errorf("state = %s @ %v, want idle-at-start @ 0", tl.State(), tl.Position())
	}
	writes := p.writes
	tl.Update(1)
	if p.writes != writes {
		t.Error("cancelled timeline should not write")
	}
}

func TestTimelineZeroDurationStep(t *testing.T) {
	p := &probe{v: -1}
	tl := NewTimeline("t").At(0, p.step("x", 0, 1, 0))
	tl.Restart(false)
	assertValue(t, "set", p.v, 1)
	if tl.State() != TimelineIdleEnd {
		t.Errorf("state = %s, want idle-at-end", tl.State())
	}
}

func TestTimelineZeroDurationWithDelay(t *testing.T) {
	p := &probe{v: -1}
	tl := NewTimeline("t").At(0, p.step("x", 0, 1, 0)).SetDelay(0.5)
	tl.Restart(true)
	tl.Update(0.25)
	if p.writes != 0 {
		t.Fatal("wrote during delay")
	}
	tl.Update(0.5)
	assertValue(t, "set", p.v, 1)
	if tl.State() != TimelineIdleEnd {
		t.Errorf("state = %s, want idle-at-end", tl.State())
	}
}

func TestTimelineStaggerOffsets(t *testing.T) {
	probes := make([]*probe, 3)
	tl := NewTimeline("t").Stagger(0.5, 0.1, 3, func(i int) []Step {
		probes[i] = &probe{}
		return []Step{probes[i].step("", 0, 1, 1)}
	})
	assertValue(t, "End", tl.End(), 1.7)

	tl.Restart(false)
	tl.Update(0.55)
	if probes[0].writes == 0 {
		t.Error("first group should have started")
	}
	if probes[1].writes != 0 || probes[2].writes != 0 {
		t.Error("later groups should not have started")
	}
}

func TestTimelineAddPanicsWithoutApply(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for step without Apply")
		}
	}()
	NewTimeline("t").At(0, Step{Track: "x", To: 1, Duration: 1})
}

func TestTimelineNilEaseDefaultsToLinear(t *testing.T) {
	var v float32
	tl := NewTimeline("t").At(0, Step{To: 10, Duration: 1, Apply: func(x float32) { v = x }})
	tl.Restart(false)
	tl.Update(0.5)
	assertValue(t, "linear", v, 5)
}

func TestTimelineStateString(t *testing.T) {
	cases := map[TimelineState]string{
		TimelineIdleStart:       "idle-at-start",
		TimelinePlayingForward:  "playing-forward",
		TimelineIdleEnd:         "idle-at-end",
		TimelinePlayingBackward: "playing-backward",
		TimelineState(42):       "unknown",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("String(%d) = %q, want %q", s, s.String(), want)
		}
	}
}

// --- Ticker ---

func TestTickerAdvancesInRegistrationOrder(t *testing.T) {
	p := &probe{}
	a := NewTimeline("a").At(0, p.step("", 0, 1, 1))
	b := NewTimeline("b").At(0, p.step("", 0, 100, 1))
	a.Restart(false)
	b.Restart(false)

	var tk Ticker
	tk.Add(a)
	tk.Add(b)
	tk.Add(a)
	if tk.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tk.Len())
	}
	tk.Tick(0.5)
	// b registered last, so its write wins.
	assertValue(t, "last writer", p.v, 50)

	tk.Remove(b)
	tk.Remove(b)
	if tk.Len() != 1 {
		t.Fatalf("Len after remove = %d, want 1", tk.Len())
	}
	tk.Tick(0.25)
	assertValue(t, "a only", p.v, 0.75)
}

func TestTimelineDelayedRestartWritesImmediateStart(t *testing.T) {
	shown := &probe{v: 7}
	plain := &probe{v: 7}
	st := shown.step("shown", 0, 10, 1)
	st.Immediate = true
	tl := NewTimeline("t").
		At(0, st).
		At(0, plain.step("plain", 0, 10, 1)).
		SetDelay(0.5)

	tl.Restart(true)
	if !tl.Waiting() {
		t.Fatal("expected timeline to wait out its delay")
	}
	assertValue(t, "immediate track", shown.v, 0)
	if plain.writes != 0 {
		t.Errorf("plain track wrote %d times during the delay, want 0", plain.writes)
	}
	tl.Update(0.25)
	assertValue(t, "plain track during delay", plain.v, 7)
}
