package main

import (
	"context"
	"time"

	"github.com/reef-robotics/reefbot/internal/subsystems"
)

// runPhysics steps the simulated mechanisms at the robot loop cadence
// so motor outputs move encoders and the gyro.
func runPhysics(ctx context.Context, sim *subsystems.SimDevices, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	dt := period.Seconds()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sim.Step(dt)
		}
	}
}
