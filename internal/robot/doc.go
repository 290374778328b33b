// Package robot is the composition root. Container builds the
// subsystems' default commands and every controller binding; Robot
// runs the periodic loop and sequences the disabled, autonomous, and
// teleop phases.
package robot
