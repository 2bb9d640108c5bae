package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beambar/beambar/pkg/client"
)

func NewOutputCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "output",
		Short: "Print the last rendered bar line",
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := client.NewClient(unixSocketPath).GetOutput()
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}
