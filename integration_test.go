package reefbot_test

import (
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/reef-robotics/reefbot/internal/auto"
	"github.com/reef-robotics/reefbot/internal/robot"
	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
	"github.com/reef-robotics/reefbot/pkg/hid"
	"github.com/reef-robotics/reefbot/pkg/preferences"
	"github.com/reef-robotics/reefbot/pkg/robotlog"
)

// matchRig is the full robot wired the way cmd/reefbot wires it, minus
// the wall-clock ticker so tests step the loop deterministically.
type matchRig struct {
	sim         *subsystems.SimDevices
	subs        *subsystems.Subsystems
	sched       *command.Scheduler
	driver      *hid.XboxController
	manipulator *hid.XboxController
	selector    *auto.Selector
	prefs       *preferences.Store
	board       *dashboard.Board
	bot         *robot.Robot
}

func newMatchRig(t *testing.T, logger robotlog.Logger) *matchRig {
	t.Helper()

	sim := subsystems.NewSimDevices()
	subs := subsystems.New(sim.Devices())
	sched := command.NewScheduler(logger)
	driver := hid.NewXboxController(sched, 0)
	manipulator := hid.NewXboxController(sched, 1)

	prefs := preferences.NewStore(filepath.Join(t.TempDir(), "prefs.json"), nil)
	if err := prefs.Load(); err != nil {
		t.Fatalf("load preferences: %v", err)
	}

	selector := auto.NewSelector(prefs)
	for _, routine := range auto.Routines() {
		selector.Register(routine)
	}

	container, err := robot.NewContainer(sched, subs, driver, manipulator, selector)
	if err != nil {
		t.Fatalf("build container: %v", err)
	}

	board := dashboard.NewBoard()
	container.InitDashboard(board, prefs)

	return &matchRig{
		sim:         sim,
		subs:        subs,
		sched:       sched,
		driver:      driver,
		manipulator: manipulator,
		selector:    selector,
		prefs:       prefs,
		board:       board,
		bot:         robot.NewRobot(sched, container, 20*time.Millisecond, logger),
	}
}

func (r *matchRig) tick(n int) {
	for i := 0; i < n; i++ {
		r.bot.Tick()
		r.sim.Step(0.02)
	}
}

// TestE2E_MatchFlow runs a full match: disabled, the selected
// autonomous routine, a teleop scoring cycle, and back to disabled.
func TestE2E_MatchFlow(t *testing.T) {
	r := newMatchRig(t, nil)

	// Pit: robot sits disabled, dashboard selects the Taxi auto.
	r.tick(5)
	if got := r.bot.Mode(); got != robot.ModeDisabled {
		t.Fatalf("expected DISABLED at boot, got %s", got)
	}
	if err := r.board.Write("Operator/Autonomous/Routine", "Taxi"); err != nil {
		t.Fatalf("select routine: %v", err)
	}

	// Autonomous: the routine drives the robot out of the zone.
	r.bot.SetMode(robot.ModeAutonomous)
	r.tick(5)
	if r.sim.DriveFrontLeft.Get() <= 0 {
		t.Fatal("taxi routine should drive forward in autonomous")
	}

	// Teleop: routine is cancelled, manipulator scores a coral on L4.
	r.bot.SetMode(robot.ModeTeleop)
	r.tick(1)
	if out := r.sim.DriveFrontLeft.Get(); out != 0 {
		t.Fatalf("routine should stop on teleop, drive output %v", out)
	}

	r.manipulator.Gamepad().SetPOV(270) // intake until the beam breaks
	r.tick(3)
	r.sim.CoralSensor.SetState(true)
	r.tick(1)
	r.manipulator.Gamepad().SetPOV(hid.POVCenter)
	if out := r.sim.CoralMotor.Get(); out != 0 {
		t.Fatalf("intake should stop once coral is held, roller output %v", out)
	}

	r.manipulator.Gamepad().SetButton(hid.ButtonY, true)
	r.tick(400)
	r.manipulator.Gamepad().SetButton(hid.ButtonY, false)
	if h := r.subs.Elevator.Height(); h < subsystems.L4.Height()-subsystems.ElevatorTolerance {
		t.Fatalf("elevator should reach L4, at %v m", h)
	}

	r.manipulator.Gamepad().SetPOV(90) // score
	r.tick(3)
	r.sim.CoralSensor.SetState(false)
	r.tick(1)
	r.manipulator.Gamepad().SetPOV(hid.POVCenter)
	r.tick(400) // stow on release
	if h := r.subs.Elevator.Height(); h > subsystems.ElevatorStowHeight+subsystems.ElevatorTolerance {
		t.Fatalf("elevator should stow after scoring, at %v m", h)
	}

	// Match end.
	r.bot.SetMode(robot.ModeDisabled)
	r.tick(1)
	if out := r.sim.ElevatorMotor.Get(); out != 0 {
		t.Fatalf("disable should stop the elevator, output %v", out)
	}

	// Telemetry reached the board along the way.
	height, err := r.board.Entry("Elevator/Elevator Height")
	if err != nil {
		t.Fatalf("height entry missing: %v", err)
	}
	if height.Float() > subsystems.ElevatorStowHeight+subsystems.ElevatorTolerance {
		t.Fatalf("height telemetry should read stowed, got %v", height.Float())
	}
}

// TestE2E_DashboardServesLiveTelemetry runs the robot loop with the
// dashboard server attached and checks a client sees subsystem
// telemetry change.
func TestE2E_DashboardServesLiveTelemetry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	r := newMatchRig(t, nil)

	server := dashboard.NewServer(dashboard.ServerConfig{
		Addr:          "127.0.0.1:0",
		FlushInterval: 10 * time.Millisecond,
		Announce:      false,
	}, r.board, nil)
	if err := server.Start(t.Context()); err != nil {
		t.Fatalf("start server: %v", err)
	}
	defer server.Stop()

	conn, err := net.Dial("tcp", server.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	fr := dashboard.NewFrameReader(conn)
	fw := dashboard.NewFrameWriter(conn)

	hello, err := dashboard.EncodeMessage(dashboard.Message{
		Type:  dashboard.TypeHello,
		Token: dashboard.DeriveToken(""),
	})
	if err != nil {
		t.Fatalf("encode hello: %v", err)
	}
	if err := fw.WriteFrame(hello); err != nil {
		t.Fatalf("send hello: %v", err)
	}

	readMessage := func() dashboard.Message {
		t.Helper()
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		data, err := fr.ReadFrame()
		if err != nil {
			t.Fatalf("read frame: %v", err)
		}
		m, err := dashboard.DecodeMessage(data)
		if err != nil {
			t.Fatalf("decode message: %v", err)
		}
		return m
	}

	if m := readMessage(); m.Type != dashboard.TypeWelcome {
		t.Fatalf("expected welcome, got %s", m.Type)
	}
	if m := readMessage(); m.Type != dashboard.TypeSnapshot {
		t.Fatalf("expected snapshot, got %s", m.Type)
	}

	// Shift the vision offset and wait for the delta to arrive.
	r.bot.SetMode(robot.ModeTeleop)
	r.sim.BranchOffset.SetPosition(0.25)
	r.tick(2)

	deadline := time.Now().Add(5 * time.Second)
	for {
		if time.Now().After(deadline) {
			t.Fatal("no telemetry update received")
		}
		m := readMessage()
		if m.Type != dashboard.TypeUpdate {
			continue
		}
		for _, e := range m.Entries {
			if e.Path == "Drivetrain/Branch Offset" && e.Value == 0.25 {
				return
			}
		}
	}
}
