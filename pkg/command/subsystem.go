package command

// Subsystem is a hardware-facing robot module the scheduler arbitrates
// access to. At most one command requiring a subsystem runs at a time.
type Subsystem interface {
	// Name returns the subsystem name for logging and dashboards.
	Name() string

	// Periodic is called once per scheduler tick, before commands run.
	Periodic()
}

// Disableable is implemented by subsystems that must actively stop
// hardware outputs when the robot is disabled.
type Disableable interface {
	// Disable stops all hardware outputs.
	Disable()
}

// SubsystemNames returns the names of the given subsystems, preserving order.
func SubsystemNames(subsystems []Subsystem) []string {
	if len(subsystems) == 0 {
		return nil
	}
	names := make([]string, len(subsystems))
	for i, s := range subsystems {
		names[i] = s.Name()
	}
	return names
}
