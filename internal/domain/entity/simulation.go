package entity

import "time"

// SimulationSetting is the singleton feed-wide switch toggled from the
// admin console. Nothing else in the system reads it to gate behavior;
// that write-only nature is inherited and intentional.
type SimulationSetting struct {
	Active    bool
	UpdatedAt time.Time
}
