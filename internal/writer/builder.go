// internal/writer/builder.go
package writer

import (
	"errors"
	"time"

	cfg "github.com/tamzrod/spinner-config/internal/config"
	wmodbus "github.com/tamzrod/spinner-config/internal/writer/modbus"
)

// BuildPlan converts the status config into a StatusPlan.
// Assumes config has already passed validation.
func BuildPlan(st *cfg.StatusConfig) (StatusPlan, error) {
	if st == nil {
		return StatusPlan{}, errors.New("writer: status config required")
	}

	return StatusPlan{
		Endpoint:   st.Endpoint,
		UnitID:     st.UnitID,
		BaseSlot:   st.BaseSlot,
		DeviceName: st.DeviceName,
	}, nil
}

// BuildStatusWriter connects to the status endpoint and returns a writer.
// A nil config means status publishing is disabled: (nil, no-op, nil).
func BuildStatusWriter(st *cfg.StatusConfig) (*StatusWriter, func() error, error) {
	if st == nil {
		return nil, func() error { return nil }, nil
	}

	plan, err := BuildPlan(st)
	if err != nil {
		return nil, nil, err
	}

	c, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: st.Endpoint,
		Timeout:  time.Duration(st.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	sw, err := NewStatusWriter(plan, c)
	if err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	return sw, c.Close, nil
}
