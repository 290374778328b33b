package commands

import (
	"time"

	"github.com/reef-robotics/reefbot/internal/hal"
	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
)

// indicateDuration is how long acquisition feedback stays lit.
const indicateDuration = 750 * time.Millisecond

// FlameCycle is the default LED command: an orange flicker that runs
// up the strip. It runs while disabled so the strip stays alive in the
// pit and in the queue.
func FlameCycle(l *subsystems.StatusLEDs) command.Command {
	var tick int
	return command.NewFunc("FlameCycle", l).
		OnInitialize(func() { l.SetPattern("flame") }).
		OnExecute(func() {
			tick++
			for i := 0; i < l.Len(); i++ {
				// Triangle-wave flicker, phase shifted per pixel.
				f := (tick*3 + i*7) % 32
				if f > 16 {
					f = 32 - f
				}
				l.Set(i, hal.Color{
					R: uint8(180 + f*4),
					G: uint8(30 + f*5),
				})
			}
			l.Show()
		}).
		WhenDisabled()
}

// IndicateCoralAcquired flashes the strip solid white, the feedback
// for a coral settling in the roller. It finishes on its own and the
// flame cycle resumes.
func IndicateCoralAcquired(l *subsystems.StatusLEDs) command.Command {
	return indicate(l, "IndicateCoralAcquired", "coral", hal.Color{R: 255, G: 255, B: 255})
}

// IndicateAlgaeAcquired flashes the strip solid teal, the feedback for
// a ball held in the grabber.
func IndicateAlgaeAcquired(l *subsystems.StatusLEDs) command.Command {
	return indicate(l, "IndicateAlgaeAcquired", "algae", hal.Color{G: 200, B: 180})
}

// indicate holds the strip at a solid color for the indicate duration.
func indicate(l *subsystems.StatusLEDs, name, pattern string, c hal.Color) command.Command {
	show := command.NewFunc(name, l).
		OnInitialize(func() { l.SetPattern(pattern) }).
		OnExecute(func() {
			l.Fill(c)
			l.Show()
		}).
		WhenDisabled()
	return command.Named(name, command.Race(show, command.Wait(indicateDuration).WhenDisabled()))
}
