package powerinfo

import (
	"errors"

	"github.com/distatus/battery"
	pkgerrors "github.com/pkg/errors"

	"github.com/charlie0129/battreport/pkg/report"
)

var (
	// ErrNoBattery is returned when the system reports no battery.
	ErrNoBattery = errors.New("no batteries found")
)

// Replaced in tests.
var getAllBatteries = battery.GetAll

// Snapshot reads the first battery reported by the operating system once.
func Snapshot() (*Battery, error) {
	batteries, err := getAllBatteries()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get battery info")
	}
	if len(batteries) == 0 || batteries[0] == nil {
		return nil, ErrNoBattery
	}

	// Only the first battery is reported.
	bat := batteries[0]
	b := &Battery{
		Design:        int(bat.Design),
		FullCharge:    int(bat.Full),
		Current:       int(bat.Current),
		ChargeRate:    int(bat.ChargeRate),
		DesignVoltage: bat.DesignVoltage,
	}
	switch bat.State {
	case battery.Charging:
		b.State = Charging
	case battery.Discharging:
		b.State = Discharging
		b.ChargeRate = -b.ChargeRate
	case battery.Full:
		b.State = Full
	default:
		b.State = Idle
	}

	return b, nil
}

// Health returns the full charge capacity as a percentage of the design
// capacity, the same way it is derived from a battery report.
func (b *Battery) Health() float64 {
	return report.HealthOf(b.FullCharge, b.Design)
}
