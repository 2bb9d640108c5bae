package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beambar/beambar/pkg/client"
	"github.com/beambar/beambar/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and daemon versions",
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Printf("client: %s (%s)\n", version.Version, version.GitCommit)

			daemonVersion, err := client.NewClient(unixSocketPath).GetVersion()
			if err != nil {
				fmt.Println("daemon: not reachable")
				return nil
			}
			fmt.Printf("daemon: %s\n", daemonVersion)
			return nil
		},
	}
}
