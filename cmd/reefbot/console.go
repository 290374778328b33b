package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/reef-robotics/reefbot/internal/auto"
	"github.com/reef-robotics/reefbot/internal/robot"
	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/hid"
)

// console is the interactive stand-in for the driver station: it
// switches robot modes, feeds controller input, and toggles simulated
// sensors.
type console struct {
	bot         *robot.Robot
	sim         *subsystems.SimDevices
	driver      *hid.XboxController
	manipulator *hid.XboxController
	selector    *auto.Selector
	rl          *readline.Instance
}

// buttonNames maps console button names to gamepad buttons.
var buttonNames = map[string]hid.Button{
	"a":     hid.ButtonA,
	"b":     hid.ButtonB,
	"x":     hid.ButtonX,
	"y":     hid.ButtonY,
	"lb":    hid.ButtonLeftBumper,
	"rb":    hid.ButtonRightBumper,
	"back":  hid.ButtonBack,
	"start": hid.ButtonStart,
}

// axisNames maps console axis names to gamepad axes.
var axisNames = map[string]hid.Axis{
	"lx": hid.AxisLeftX,
	"ly": hid.AxisLeftY,
	"rx": hid.AxisRightX,
	"ry": hid.AxisRightY,
}

// povNames maps console POV names to hat angles.
var povNames = map[string]int{
	"up":     0,
	"right":  90,
	"down":   180,
	"left":   270,
	"center": hid.POVCenter,
}

func newConsole(
	bot *robot.Robot,
	sim *subsystems.SimDevices,
	driver, manipulator *hid.XboxController,
	selector *auto.Selector,
) (*console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "reefbot> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline: %w", err)
	}
	return &console{
		bot:         bot,
		sim:         sim,
		driver:      driver,
		manipulator: manipulator,
		selector:    selector,
		rl:          rl,
	}, nil
}

// Run reads console commands until quit or context cancellation.
func (c *console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "mode", "m":
			c.cmdMode(args)

		case "press", "p":
			c.cmdButton(args, true)

		case "release", "r":
			c.cmdButton(args, false)

		case "pov":
			c.cmdPOV(args)

		case "axis":
			c.cmdAxis(args)

		case "coral":
			c.cmdSensor(args, c.sim.CoralSensor)

		case "algae":
			c.cmdSensor(args, c.sim.AlgaeSensor)

		case "climbed":
			c.cmdSensor(args, c.sim.ClimberLimit)

		case "offset":
			c.cmdOffset(args)

		case "status", "s":
			c.cmdStatus()

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
Reefbot Console:
  Robot:
    mode <disabled|auto|teleop>  - Switch robot phase
    status                       - Show robot state

  Controllers (pad = driver | manip):
    press <pad> <button>         - Hold a button (a b x y lb rb back start)
    release <pad> <button>       - Release a button
    pov <pad> <dir>              - Set the hat (up right down left center)
    axis <pad> <axis> <value>    - Set a stick axis -1..1 (lx ly rx ry)

  Simulated sensors:
    coral <on|off>               - Coral beam break
    algae <on|off>               - Algae proximity sensor
    climbed <on|off>             - Climber limit switch
    offset <meters>              - Lateral offset from the reef face

  General:
    help                         - Show this help
    quit                         - Exit`)
}

func (c *console) cmdMode(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: mode <disabled|auto|teleop>")
		return
	}
	switch strings.ToLower(args[0]) {
	case "disabled", "d":
		c.bot.SetMode(robot.ModeDisabled)
	case "auto", "autonomous":
		c.bot.SetMode(robot.ModeAutonomous)
	case "teleop", "t":
		c.bot.SetMode(robot.ModeTeleop)
	default:
		fmt.Fprintf(c.rl.Stdout(), "Unknown mode: %s\n", args[0])
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Mode -> %s\n", strings.ToUpper(args[0]))
}

// pad resolves a controller name.
func (c *console) pad(name string) *hid.Gamepad {
	switch strings.ToLower(name) {
	case "driver", "d":
		return c.driver.Gamepad()
	case "manip", "manipulator", "m":
		return c.manipulator.Gamepad()
	default:
		return nil
	}
}

func (c *console) cmdButton(args []string, pressed bool) {
	if len(args) != 2 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: press|release <driver|manip> <button>")
		return
	}
	pad := c.pad(args[0])
	if pad == nil {
		fmt.Fprintf(c.rl.Stdout(), "Unknown controller: %s\n", args[0])
		return
	}
	b, ok := buttonNames[strings.ToLower(args[1])]
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "Unknown button: %s\n", args[1])
		return
	}
	pad.SetButton(b, pressed)
}

func (c *console) cmdPOV(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: pov <driver|manip> <up|right|down|left|center>")
		return
	}
	pad := c.pad(args[0])
	if pad == nil {
		fmt.Fprintf(c.rl.Stdout(), "Unknown controller: %s\n", args[0])
		return
	}
	angle, ok := povNames[strings.ToLower(args[1])]
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "Unknown POV direction: %s\n", args[1])
		return
	}
	pad.SetPOV(angle)
}

func (c *console) cmdAxis(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: axis <driver|manip> <lx|ly|rx|ry> <value>")
		return
	}
	pad := c.pad(args[0])
	if pad == nil {
		fmt.Fprintf(c.rl.Stdout(), "Unknown controller: %s\n", args[0])
		return
	}
	axis, ok := axisNames[strings.ToLower(args[1])]
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "Unknown axis: %s\n", args[1])
		return
	}
	v, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid value: %s\n", args[2])
		return
	}
	pad.SetAxis(axis, v)
}

// sensorSetter is the common shape of the simulated boolean sensors.
type sensorSetter interface {
	SetState(bool)
	Get() bool
}

func (c *console) cmdSensor(args []string, sensor sensorSetter) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: <sensor> <on|off>")
		return
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		sensor.SetState(true)
	case "off", "false", "0":
		sensor.SetState(false)
	default:
		fmt.Fprintf(c.rl.Stdout(), "Unknown state: %s\n", args[0])
	}
}

func (c *console) cmdOffset(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: offset <meters>")
		return
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid value: %s\n", args[0])
		return
	}
	c.sim.BranchOffset.SetPosition(v)
}

func (c *console) cmdStatus() {
	out := c.rl.Stdout()
	fmt.Fprintf(out, "Mode:      %s\n", c.bot.Mode())
	fmt.Fprintf(out, "Routine:   %s (delay %s)\n", c.selector.Selected(), c.selector.Delay())
	fmt.Fprintf(out, "Heading:   %.1f deg\n", c.sim.Gyro.Heading())
	fmt.Fprintf(out, "Elevator:  %.2f m\n", c.sim.ElevatorEncoder.Position())
	fmt.Fprintf(out, "Arm:       %.1f deg\n", c.sim.ArmEncoder.Position())
	fmt.Fprintf(out, "Offset:    %.3f m\n", c.sim.BranchOffset.Position())
	fmt.Fprintf(out, "Coral:     %v\n", c.sim.CoralSensor.Get())
	fmt.Fprintf(out, "Algae:     %v\n", c.sim.AlgaeSensor.Get())
	fmt.Fprintf(out, "Climbed:   %v\n", c.sim.ClimberLimit.Get())
}
