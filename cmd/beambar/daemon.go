package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/beambar/beambar/pkg/daemon"
	"github.com/beambar/beambar/pkg/version"
)

// NewDaemonCommand .
func NewDaemonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the beambar daemon in the foreground",
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("beambar daemon starting")
			return daemon.Run(configPath, unixSocketPath)
		},
	}
}
