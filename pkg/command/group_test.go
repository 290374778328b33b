package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func step(s *Scheduler, n int) {
	for i := 0; i < n; i++ {
		s.Run()
	}
}

func TestSequenceRunsInOrder(t *testing.T) {
	s := NewScheduler(nil)

	var order []string
	firstDone := false
	first := NewFunc("first").
		OnExecute(func() { order = append(order, "first") }).
		Until(func() bool { return firstDone })
	second := RunOnce("second", func() { order = append(order, "second") })

	seq := Sequence(first, second)
	s.Schedule(seq)

	step(s, 2)
	assert.Equal(t, []string{"first", "first"}, order)

	firstDone = true
	step(s, 2)
	assert.Equal(t, []string{"first", "first", "first", "second"}, order)
	assert.False(t, s.IsScheduled(seq))
}

func TestSequenceInterruptEndsCurrentMember(t *testing.T) {
	s := NewScheduler(nil)

	interrupted := false
	first := NewFunc("first").OnEnd(func(i bool) { interrupted = i })
	seq := Sequence(first, RunOnce("second", func() {}))

	s.Schedule(seq)
	step(s, 1)
	s.Cancel(seq)

	assert.True(t, interrupted)
}

func TestParallelFinishesWhenAllFinish(t *testing.T) {
	s := NewScheduler(nil)

	aDone, bDone := false, false
	a := WaitUntil("a", func() bool { return aDone })
	b := WaitUntil("b", func() bool { return bDone })
	par := Parallel(a, b)

	s.Schedule(par)
	step(s, 1)
	assert.True(t, s.IsScheduled(par))

	aDone = true
	step(s, 1)
	assert.True(t, s.IsScheduled(par))

	bDone = true
	step(s, 1)
	assert.False(t, s.IsScheduled(par))
}

func TestRaceFinishesWhenFirstFinishes(t *testing.T) {
	s := NewScheduler(nil)

	slowEnded := false
	fastDone := false
	slow := NewFunc("slow").OnEnd(func(bool) { slowEnded = true })
	fast := WaitUntil("fast", func() bool { return fastDone })

	race := Race(slow, fast)
	s.Schedule(race)
	step(s, 1)
	assert.True(t, s.IsScheduled(race))

	fastDone = true
	step(s, 1)
	assert.False(t, s.IsScheduled(race))
	assert.True(t, slowEnded)
}

func TestDeadlineCutsOffOthers(t *testing.T) {
	s := NewScheduler(nil)

	deadlineDone := false
	holdEnded := false
	deadline := WaitUntil("deadline", func() bool { return deadlineDone })
	hold := NewFunc("hold").OnEnd(func(bool) { holdEnded = true })

	dl := Deadline(deadline, hold)
	s.Schedule(dl)
	step(s, 2)
	assert.True(t, s.IsScheduled(dl))

	deadlineDone = true
	step(s, 1)
	assert.False(t, s.IsScheduled(dl))
	assert.True(t, holdEnded)
}

func TestGroupRequirementsAreUnion(t *testing.T) {
	elevator := &fakeSubsystem{name: "elevator"}
	arm := &fakeSubsystem{name: "arm"}

	seq := Sequence(
		Idle(elevator),
		Idle(arm),
		Idle(elevator),
	)

	assert.Equal(t, []Subsystem{elevator, arm}, seq.Requirements())
}

func TestGroupRunsWhenDisabledOnlyIfAllMembersDo(t *testing.T) {
	ok := NewFunc("ok").WhenDisabled()
	no := NewFunc("no")

	assert.True(t, Sequence(ok).(*sequenceCommand).RunsWhenDisabled())
	assert.False(t, Sequence(ok, no).(*sequenceCommand).RunsWhenDisabled())
}

func TestWaitFinishesAfterDuration(t *testing.T) {
	w := Wait(5 * time.Millisecond)
	w.Initialize()
	assert.False(t, w.IsFinished())
	time.Sleep(10 * time.Millisecond)
	assert.True(t, w.IsFinished())
}

func TestWaitFollowsSchedulerClock(t *testing.T) {
	s := NewScheduler(nil)
	clock := time.Unix(1000, 0)
	s.SetClock(func() time.Time { return clock })

	w := Wait(time.Second)
	s.Schedule(w)
	s.Run()
	assert.True(t, s.IsScheduled(w))

	clock = clock.Add(2 * time.Second)
	s.Run()
	assert.False(t, s.IsScheduled(w))
}

func TestWithTimeoutFollowsSchedulerClock(t *testing.T) {
	s := NewScheduler(nil)
	clock := time.Unix(1000, 0)
	s.SetClock(func() time.Time { return clock })

	// The timeout Wait sits behind Named and Race; the clock must reach
	// it through both.
	spin := WithTimeout(Run("Spin", func() {}), 500*time.Millisecond)
	s.Schedule(spin)
	s.Run()
	assert.True(t, s.IsScheduled(spin))

	clock = clock.Add(time.Second)
	s.Run()
	assert.False(t, s.IsScheduled(spin))
}

func TestNamedPreservesBehavior(t *testing.T) {
	base := NewFunc("base").WhenDisabled()
	n := Named("friendly", base)

	assert.Equal(t, "friendly", n.Name())
	assert.True(t, runsWhenDisabled(n))
}
