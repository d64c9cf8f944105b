// internal/settings/running.go
package settings

import "sync/atomic"

// RunningState is runtime-only and never persisted.
//
// ObservedRPM is written from an asynchronous source (tachometer interrupt)
// and is only accessed atomically. Everything else belongs to the control loop.
type RunningState struct {
	DesiredMotorSpeed uint8  // 0-255 PWM duty
	EndTimeMs         uint32 // monotonic ms at which the run ends

	observedRPM atomic.Int32
	PreviousRPM int32
}

// Start resets the state for a run of preset p beginning at nowMs.
func (r *RunningState) Start(nowMs uint32, p Preset) {
	r.Reset()
	r.EndTimeMs = nowMs + MinutesToMilliseconds(uint32(p.RunTimeMinutes))
}

// Reset clears the state at the end of a run.
func (r *RunningState) Reset() {
	r.DesiredMotorSpeed = 0
	r.EndTimeMs = 0
	r.observedRPM.Store(0)
	r.PreviousRPM = 0
}

// Remaining returns ms left until EndTimeMs. Wrap-safe.
func (r *RunningState) Remaining(nowMs uint32) uint32 {
	left := int32(r.EndTimeMs - nowMs)
	if left <= 0 {
		return 0
	}
	return uint32(left)
}

// StoreObservedRPM is called from the RPM source.
func (r *RunningState) StoreObservedRPM(rpm int32) { r.observedRPM.Store(rpm) }

func (r *RunningState) ObservedRPM() int32 { return r.observedRPM.Load() }

// RPMChanged reports whether the observed RPM moved since the last call.
func (r *RunningState) RPMChanged() bool {
	cur := r.observedRPM.Load()
	if cur == r.PreviousRPM {
		return false
	}
	r.PreviousRPM = cur
	return true
}

// MinutesToMilliseconds converts whole minutes.
func MinutesToMilliseconds(minutes uint32) uint32 { return minutes * 60000 }

// MillisecondsToMinutes converts with rounding to the nearest minute.
func MillisecondsToMinutes(ms uint32) uint32 { return uint32((uint64(ms) + 30000) / 60000) }
