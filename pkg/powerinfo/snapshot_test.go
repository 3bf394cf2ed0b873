package powerinfo

import (
	"errors"
	"testing"

	"github.com/distatus/battery"
)

func withBatteries(t *testing.T, bats []*battery.Battery, err error) {
	t.Helper()
	orig := getAllBatteries
	t.Cleanup(func() { getAllBatteries = orig })
	getAllBatteries = func() ([]*battery.Battery, error) {
		return bats, err
	}
}

func TestSnapshot(t *testing.T) {
	withBatteries(t, []*battery.Battery{{
		State:         battery.Discharging,
		Current:       15000,
		Full:          21466,
		Design:        56999,
		ChargeRate:    8000,
		DesignVoltage: 11.4,
	}}, nil)

	b, err := Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if b.State != Discharging {
		t.Errorf("State = %v, want discharging", b.State)
	}
	if b.ChargeRate != -8000 {
		t.Errorf("ChargeRate = %d, want -8000", b.ChargeRate)
	}
	if b.Design != 56999 || b.FullCharge != 21466 {
		t.Errorf("Design/FullCharge = %d/%d", b.Design, b.FullCharge)
	}
	if got := b.Health(); got < 37.6 || got > 37.7 {
		t.Errorf("Health() = %v, want ~37.66", got)
	}
}

func TestSnapshotErrors(t *testing.T) {
	tests := []struct {
		name    string
		bats    []*battery.Battery
		err     error
		wantErr error
	}{
		{name: "no batteries", wantErr: ErrNoBattery},
		{name: "os error", err: errors.New("boom")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBatteries(t, tt.bats, tt.err)
			_, err := Snapshot()
			if err == nil {
				t.Fatal("Snapshot() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Snapshot() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
