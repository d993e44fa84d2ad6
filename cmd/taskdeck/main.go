package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"github.com/taskdeck/taskdeck/cmd/taskdeck/commands"
	"github.com/taskdeck/taskdeck/internal/log"
	loglogrus "github.com/taskdeck/taskdeck/internal/log/logrus"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	app := kingpin.New("taskdeck", "Task management and user activity logging tool.")
	app.DefaultEnvars()
	rootCmd := commands.NewRootCommand(app)

	// Task subcommands share a parent command.
	taskCmd := app.Command("task", "Manage tasks.")
	taskAddCmd := commands.NewTaskAddCommand(rootCmd, taskCmd)
	taskListCmd := commands.NewTaskListCommand(rootCmd, taskCmd)
	taskRmCmd := commands.NewTaskRmCommand(rootCmd, taskCmd)
	taskProgressCmd := commands.NewTaskProgressCommand(rootCmd, taskCmd)

	// Log subcommands share a parent command.
	logCmd := app.Command("log", "Manage the user activity log.")
	logLoginCmd := commands.NewLogLoginCommand(rootCmd, logCmd)
	logLogoutCmd := commands.NewLogLogoutCommand(rootCmd, logCmd)
	logActionCmd := commands.NewLogActionCommand(rootCmd, logCmd)
	logListCmd := commands.NewLogListCommand(rootCmd, logCmd)
	logRmCmd := commands.NewLogRmCommand(rootCmd, logCmd)
	logClearCmd := commands.NewLogClearCommand(rootCmd, logCmd)
	logSessionCmd := commands.NewLogSessionCommand(rootCmd, logCmd)

	cmds := map[string]commands.Command{
		taskAddCmd.Name():      taskAddCmd,
		taskListCmd.Name():     taskListCmd,
		taskRmCmd.Name():       taskRmCmd,
		taskProgressCmd.Name(): taskProgressCmd,
		logLoginCmd.Name():     logLoginCmd,
		logLogoutCmd.Name():    logLogoutCmd,
		logActionCmd.Name():    logActionCmd,
		logListCmd.Name():      logListCmd,
		logRmCmd.Name():        logRmCmd,
		logClearCmd.Name():     logClearCmd,
		logSessionCmd.Name():   logSessionCmd,
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard input/output.
	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// The config file can also select the logger, flags win over it.
	appCfg, err := rootCmd.AppConfig(ctx)
	if err != nil {
		return fmt.Errorf("could not resolve configuration: %w", err)
	}
	rootCmd.ApplyLoggerConfig(appCfg)

	// Auto-suppress logging for commands that produce structured output (table/JSON)
	// to prevent log noise from mixing with printer output in the terminal.
	// Users can still enable logging with --debug.
	printerCommands := map[string]bool{
		"task list":   true,
		"log list":    true,
		"log session": true,
	}
	if printerCommands[cmdName] && !rootCmd.Debug {
		rootCmd.NoLog = true
	}

	// Set logger.
	rootCmd.Logger = getLogger(ctx, *rootCmd)

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmds[cmdName].Run(ctx)
				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// getLogger returns the application logger.
func getLogger(ctx context.Context, config commands.RootCommand) log.Logger {
	if config.NoLog {
		return log.Noop
	}

	// If logger not disabled use logrus logger.
	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // By default logger goes to stderr (so it can split stdout prints).
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if config.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": Version,
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
