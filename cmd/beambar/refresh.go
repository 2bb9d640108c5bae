package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beambar/beambar/pkg/client"
)

func NewRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh [module]",
		Short: "Force a module to re-sample immediately",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			module := "battery"
			if len(args) == 1 {
				module = args[0]
			}
			msg, err := client.NewClient(unixSocketPath).Refresh(module)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}
