package types

// ChargeState represents the charging state of the observed battery.
type ChargeState int

const (
	// Unknown indicates the adapter status could not be interpreted.
	Unknown ChargeState = iota
	// Charging indicates the battery is charging.
	Charging
	// Discharging indicates the battery is discharging.
	Discharging
	// Full indicates the battery is full.
	Full
)

func (s ChargeState) String() string {
	switch s {
	case Charging:
		return "charging"
	case Discharging:
		return "discharging"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Snapshot is one published observation of the battery. A new Snapshot
// fully replaces the previous one; there are no partial updates.
type Snapshot struct {
	State      ChargeState `json:"state"`
	Percentage int         `json:"percentage"`
}

// BatteryInfo is the detailed battery data served over the local API.
// Units:
// - Current, Full, Design: mWh
// - ChargeRate: mW (may be negative when discharging)
// - Voltage, DesignVoltage: Volts
type BatteryInfo struct {
	State         string  `json:"state"`
	Current       float64 `json:"current"`
	Full          float64 `json:"full"`
	Design        float64 `json:"design"`
	ChargeRate    float64 `json:"chargeRate"`
	Voltage       float64 `json:"voltage"`
	DesignVoltage float64 `json:"designVoltage"`
}
