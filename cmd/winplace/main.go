package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/winplace/internal/config"
	"github.com/1broseidon/winplace/internal/logging"
	"github.com/1broseidon/winplace/internal/paths"
	"github.com/1broseidon/winplace/internal/placer"
	"github.com/1broseidon/winplace/internal/platform"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Set at build time: go build -ldflags "-X main.version=1.2.3"
var version = "dev"

// openSession connects to the window system; tests replace it.
var openSession = platform.Open

type options struct {
	ConfigPath string
	LogFile    string
	LogLevel   string
	Display    string
	NoWait     bool
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code. Fatal errors
// go to the console; everything else goes to the log file.
func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) int {
	console := logging.NewWithWriter(stderr, logrus.InfoLevel)

	noWait := false
	cmd := newRootCommand(stdout, stderr, func(opts options) error {
		noWait = opts.NoWait
		return execute(opts)
	})

	if err := cmd.Run(ctx, args); err != nil {
		console.Log(logrus.FatalLevel, err.Error())
		if !noWait {
			waitForKey(stdin, stderr)
		}
		return 1
	}
	return 0
}

func newRootCommand(stdout, stderr io.Writer, action func(options) error) *cli.Command {
	return &cli.Command{
		Name:      "winplace",
		Usage:     "Move and resize running application windows by process name",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the window settings file (.json, .yaml or .toml)",
				Sources: cli.EnvVars("WINPLACE_CONFIG"),
				Value:   defaultPath(paths.ConfigFile, "windows.json"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "path of the log file problems are appended to",
				Sources: cli.EnvVars("WINPLACE_LOG_FILE"),
				Value:   defaultPath(paths.LogFile, "winplace.log"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "logging level: info, warning, error",
				Sources: cli.EnvVars("WINPLACE_LOG_LEVEL"),
				Value:   "warning",
			},
			&cli.StringFlag{
				Name:    "display",
				Usage:   "X11 display to connect to",
				Sources: cli.EnvVars("DISPLAY"),
			},
			&cli.BoolFlag{
				Name:    "no-wait",
				Usage:   "exit without waiting for a key press after a fatal error",
				Sources: cli.EnvVars("WINPLACE_NO_WAIT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := options{
				ConfigPath: cmd.String("config"),
				LogFile:    cmd.String("log-file"),
				LogLevel:   cmd.String("log-level"),
				Display:    cmd.String("display"),
				NoWait:     cmd.Bool("no-wait"),
			}
			if cmd.NArg() > 0 {
				return fmt.Errorf("unexpected arguments: %v", cmd.Args().Slice())
			}
			return action(opts)
		},
	}
}

func execute(opts options) error {
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}

	res, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load window settings: %w", err)
	}

	log := logging.New(logging.Config{FilePath: opts.LogFile, Level: level})
	for _, problem := range res.Problems {
		log.Error(problem.Error())
	}

	session, err := openSession(opts.Display)
	if err != nil {
		return err
	}
	defer session.Close()

	placer.New(session, log).Place(res.Table)
	return nil
}

func defaultPath(fn func() (string, error), fallback string) string {
	path, err := fn()
	if err != nil {
		return fallback
	}
	return path
}
