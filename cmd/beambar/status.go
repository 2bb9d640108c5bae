package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/beambar/beambar/pkg/client"
	"github.com/beambar/beambar/pkg/types"
)

type statusData struct {
	snapshot    types.Snapshot
	batteryInfo *types.BatteryInfo
	output      string
}

// fetchStatusData gathers everything the status command prints.
func fetchStatusData(c *client.Client) (*statusData, error) {
	snap, err := c.GetSnapshot("battery")
	if err != nil {
		return nil, fmt.Errorf("failed to get battery snapshot: %w", err)
	}

	info, err := c.GetBatteryInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get battery info: %w", err)
	}

	output, err := c.GetOutput()
	if err != nil {
		return nil, fmt.Errorf("failed to get bar output: %w", err)
	}

	return &statusData{
		snapshot:    snap,
		batteryInfo: info,
		output:      output,
	}, nil
}

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get the current status of beambar",
		Long:  `Get the battery snapshot, detailed battery info, and the rendered bar line.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := fetchStatusData(client.NewClient(unixSocketPath))
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)

			bold.Println("Battery:")
			stateColor := color.New(color.FgYellow)
			switch data.snapshot.State {
			case types.Charging:
				stateColor = color.New(color.FgGreen)
			case types.Full:
				stateColor = color.New(color.FgCyan)
			case types.Discharging:
				stateColor = color.New(color.FgRed)
			}
			fmt.Print("  State: ")
			stateColor.Println(data.snapshot.State)
			fmt.Printf("  Charge: %d%%\n", data.snapshot.Percentage)

			info := data.batteryInfo
			bold.Println("\nBattery details:")
			fmt.Printf("  Capacity: %.0f/%.0f mWh (design %.0f mWh)\n", info.Current, info.Full, info.Design)
			fmt.Printf("  Charge rate: %.0f mW\n", info.ChargeRate)
			fmt.Printf("  Voltage: %.2f V (design %.2f V)\n", info.Voltage, info.DesignVoltage)

			bold.Println("\nBar output:")
			fmt.Printf("  %s\n", data.output)

			return nil
		},
	}
}
