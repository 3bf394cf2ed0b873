package powerinfo

// BatteryState represents the charging state of the battery.
type BatteryState int

const (
	// Discharging indicates the battery is discharging.
	Discharging BatteryState = iota
	// Charging indicates the battery is charging.
	Charging
	// Full indicates the battery is full.
	Full
	// Idle indicates the battery is neither charging nor discharging.
	Idle
)

func (s BatteryState) String() string {
	switch s {
	case Discharging:
		return "discharging"
	case Charging:
		return "charging"
	case Full:
		return "full"
	default:
		return "idle"
	}
}

// Battery is what the operating system currently reports about the battery.
// Units:
// - Design, FullCharge, Current: mWh
// - ChargeRate: mW (negative when discharging)
// - DesignVoltage: Volts
type Battery struct {
	State         BatteryState `json:"State"`
	Design        int          `json:"Design"`
	FullCharge    int          `json:"FullCharge"`
	Current       int          `json:"Current"`
	ChargeRate    int          `json:"ChargeRate"`
	DesignVoltage float64      `json:"DesignVoltage"`
}
