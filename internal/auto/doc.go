// Package auto holds the autonomous routines and the selector that
// picks one from the dashboard. The selected routine is built fresh at
// the start of each autonomous phase, with an optional start delay
// from preferences for coordinating with alliance partners.
package auto
