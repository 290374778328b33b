// Package config loads the robot configuration file. The file is
// optional; every field has a usable default so a bare robot boots
// without one.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so it parses from YAML strings like
// "20ms".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// String returns the duration in time.Duration notation.
func (d Duration) String() string { return time.Duration(d).String() }

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML writes the duration in time.Duration notation.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Config is the top-level robot configuration.
type Config struct {
	// TeamNumber is the FRC team number, used for naming only.
	TeamNumber int `yaml:"team_number"`

	// LoopPeriod is the robot loop tick interval.
	LoopPeriod Duration `yaml:"loop_period"`

	// Controllers configures driver and manipulator gamepads.
	Controllers ControllersConfig `yaml:"controllers"`

	// Dashboard configures the telemetry server.
	Dashboard DashboardConfig `yaml:"dashboard"`

	// Log configures event logging.
	Log LogConfig `yaml:"log"`

	// PreferencesPath is where tunable values are persisted.
	PreferencesPath string `yaml:"preferences_path"`
}

// ControllersConfig assigns gamepad ports and the stick deadband.
type ControllersConfig struct {
	// DriverPort is the driver gamepad port.
	DriverPort int `yaml:"driver_port"`

	// ManipulatorPort is the manipulator gamepad port.
	ManipulatorPort int `yaml:"manipulator_port"`

	// Deadband is the stick deadband applied to drive axes.
	Deadband float64 `yaml:"deadband"`
}

// DashboardConfig configures the dashboard server.
type DashboardConfig struct {
	// Addr is the TCP listen address.
	Addr string `yaml:"addr"`

	// Secret is the client handshake secret.
	Secret string `yaml:"secret"`

	// Announce enables mDNS advertisement.
	Announce bool `yaml:"announce"`

	// Instance is the mDNS instance name.
	Instance string `yaml:"instance"`
}

// LogConfig configures event logging.
type LogConfig struct {
	// Path is the event log file. Empty disables file logging.
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TeamNumber: 0,
		LoopPeriod: Duration(20 * time.Millisecond),
		Controllers: ControllersConfig{
			DriverPort:      0,
			ManipulatorPort: 1,
			Deadband:        0.08,
		},
		Dashboard: DashboardConfig{
			Addr:     ":5811",
			Announce: true,
			Instance: "reefbot",
		},
		Log: LogConfig{
			Path: "",
		},
		PreferencesPath: "reefbot-prefs.json",
	}
}

// Load reads the configuration file at path. A missing file returns
// the defaults. Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.LoopPeriod <= 0 {
		return fmt.Errorf("loop_period must be positive, got %s", c.LoopPeriod)
	}
	if c.Controllers.DriverPort < 0 || c.Controllers.ManipulatorPort < 0 {
		return fmt.Errorf("controller ports must be non-negative")
	}
	if c.Controllers.DriverPort == c.Controllers.ManipulatorPort {
		return fmt.Errorf("driver and manipulator controllers share port %d", c.Controllers.DriverPort)
	}
	if c.Controllers.Deadband < 0 || c.Controllers.Deadband >= 1 {
		return fmt.Errorf("deadband must be in [0, 1), got %v", c.Controllers.Deadband)
	}
	if c.Dashboard.Addr == "" {
		return fmt.Errorf("dashboard addr must not be empty")
	}
	return nil
}
