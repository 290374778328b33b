// Command reefbot runs the competition robot on simulated hardware.
//
// It wires the full robot: subsystems, controller bindings, the
// autonomous selector, preferences, event logging, and the dashboard
// server, then drops into an interactive console that stands in for
// the driver station.
//
// Usage:
//
//	reefbot [flags]
//
// Flags:
//
//	-config string   Configuration file path (default "reefbot.yaml")
//	-verbose         Mirror robot events to stderr
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reef-robotics/reefbot/internal/auto"
	"github.com/reef-robotics/reefbot/internal/config"
	"github.com/reef-robotics/reefbot/internal/robot"
	"github.com/reef-robotics/reefbot/internal/subsystems"
	"github.com/reef-robotics/reefbot/pkg/command"
	"github.com/reef-robotics/reefbot/pkg/dashboard"
	"github.com/reef-robotics/reefbot/pkg/hid"
	"github.com/reef-robotics/reefbot/pkg/preferences"
	"github.com/reef-robotics/reefbot/pkg/robotlog"
)

func main() {
	configPath := flag.String("config", "reefbot.yaml", "Configuration file path")
	verbose := flag.Bool("verbose", false, "Mirror robot events to stderr")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "reefbot:", err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := buildLogger(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	prefs := preferences.NewStore(cfg.PreferencesPath, logger)
	if err := prefs.Load(); err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}

	sim := subsystems.NewSimDevices()
	subs := subsystems.New(sim.Devices())

	sched := command.NewScheduler(logger)
	driver := hid.NewXboxController(sched, cfg.Controllers.DriverPort)
	manipulator := hid.NewXboxController(sched, cfg.Controllers.ManipulatorPort)
	driver.SetDeadband(cfg.Controllers.Deadband)
	manipulator.SetDeadband(cfg.Controllers.Deadband)

	selector := auto.NewSelector(prefs)
	for _, routine := range auto.Routines() {
		selector.Register(routine)
	}

	container, err := robot.NewContainer(sched, subs, driver, manipulator, selector)
	if err != nil {
		return fmt.Errorf("build container: %w", err)
	}

	board := dashboard.NewBoard()
	container.InitDashboard(board, prefs)

	instance := cfg.Dashboard.Instance
	if cfg.TeamNumber > 0 {
		instance = fmt.Sprintf("%s-%d", instance, cfg.TeamNumber)
	}
	server := dashboard.NewServer(dashboard.ServerConfig{
		Addr:     cfg.Dashboard.Addr,
		Secret:   cfg.Dashboard.Secret,
		Announce: cfg.Dashboard.Announce,
		Instance: instance,
	}, board, logger)

	bot := robot.NewRobot(sched, container, cfg.LoopPeriod.Std(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("start dashboard: %w", err)
	}
	defer server.Stop()
	fmt.Printf("dashboard listening on %s\n", server.Addr())

	go runPhysics(ctx, sim, cfg.LoopPeriod.Std())
	go func() {
		_ = bot.Run(ctx)
	}()

	console, err := newConsole(bot, sim, driver, manipulator, selector)
	if err != nil {
		return fmt.Errorf("start console: %w", err)
	}
	console.Run(ctx, cancel)
	return nil
}

// buildLogger assembles the event logger from the config: a CBOR file
// logger when a path is set, mirrored to stderr with -verbose.
func buildLogger(cfg config.LogConfig, verbose bool) (robotlog.Logger, func(), error) {
	var loggers []robotlog.Logger
	closeLog := func() {}

	if cfg.Path != "" {
		fl, err := robotlog.NewFileLogger(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open event log: %w", err)
		}
		loggers = append(loggers, fl)
		closeLog = func() { _ = fl.Close() }
	}
	if verbose {
		loggers = append(loggers, robotlog.NewSlogAdapter(
			slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}

	switch len(loggers) {
	case 0:
		return robotlog.NoopLogger{}, closeLog, nil
	case 1:
		return loggers[0], closeLog, nil
	default:
		return robotlog.NewMultiLogger(loggers...), closeLog, nil
	}
}
