package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/beambar/beambar/pkg/client"
	"github.com/beambar/beambar/pkg/config"
	"github.com/beambar/beambar/pkg/daemon"
)

var (
	logLevel       = "info"
	configPath     = config.DefaultPath
	unixSocketPath = daemon.DefaultSocketPath
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, client.ErrDaemonNotRunning) {
		fmt.Fprintln(os.Stderr, "\nError: beambar daemon is not running")
		fmt.Fprintln(os.Stderr, "Start it with 'beambar daemon' or via your init system")
	} else if errors.Is(err, client.ErrPermissionDenied) {
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "  - Check who owns "+unixSocketPath)
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "beambar",
		Short:        "beambar is a status-line daemon that renders live host state",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", logLevel, "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&configPath, "config", configPath, "Path to the config file")
	pf.StringVar(&unixSocketPath, "socket", unixSocketPath, "Path to the daemon unix socket")

	cmd.AddCommand(
		NewDaemonCommand(),
		NewStatusCommand(),
		NewOutputCommand(),
		NewRefreshCommand(),
		NewVersionCommand(),
	)

	return cmd
}
