// Package preferences stores named tunable values that survive robot
// restarts. Preferences are registered with a default, persisted to a
// JSON file on every change, and can be exposed as writable dashboard
// entries so they are adjustable from the driver station without a
// redeploy.
package preferences
