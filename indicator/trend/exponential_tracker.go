package trend

import (
	"fmt"

	"github.com/evdnx/movavg/indicator/core"
)

// DefaultEMAPeriod gives k = 1, i.e. the tracker follows its input exactly.
const DefaultEMAPeriod = 1

// ExponentialTracker keeps the last three values of an exponential moving
// average with k = 2/(period+1) and derives a slope (first difference) and a
// curve (second difference) from them.
//
// The zero value has period 0 (k = 2); use a constructor. Copying the struct
// copies the tracker.
type ExponentialTracker struct {
	period int
	// values[0] is the current EMA, values[1] the previous one and
	// values[2] the one before that.
	values [3]float64
}

// NewExponentialTracker creates a tracker with DefaultEMAPeriod and all
// history at 0.
func NewExponentialTracker() *ExponentialTracker {
	return &ExponentialTracker{period: DefaultEMAPeriod}
}

// NewExponentialTrackerWithParams creates a tracker whose three history slots
// all start at seed. A negative period (in particular -1, which would divide
// by zero) is rejected with core.ErrInvalidArgument.
func NewExponentialTrackerWithParams(period int, seed float64) (*ExponentialTracker, error) {
	if period < 0 {
		return nil, fmt.Errorf("%w: period must not be negative, got %d", core.ErrInvalidArgument, period)
	}
	e := &ExponentialTracker{period: period}
	e.SetValue(seed)
	return e, nil
}

// Update shifts the history and folds v into the average.
func (e *ExponentialTracker) Update(v float64) float64 {
	e.values[2] = e.values[1]
	e.values[1] = e.values[0]

	k := core.SmoothingFactor(e.period)
	e.values[0] = v*k + e.values[1]*(1-k)
	return e.values[0]
}

// Value returns the current EMA.
func (e *ExponentialTracker) Value() float64 { return e.values[0] }

// SetValue re-seeds the whole history with v, e.g. after a discontinuity.
func (e *ExponentialTracker) SetValue(v float64) {
	e.values = [3]float64{v, v, v}
}

// Reset is SetValue(0).
func (e *ExponentialTracker) Reset() { e.SetValue(0) }

// Slope returns current − previous.
func (e *ExponentialTracker) Slope() float64 {
	return core.CalculateSlope(e.values[0], e.values[1])
}

// Curve returns (current − previous) − (previous − previousPrevious).
func (e *ExponentialTracker) Curve() float64 {
	return core.CalculateCurve(e.values[0], e.values[1], e.values[2])
}

func (e *ExponentialTracker) Period() int { return e.period }

func (e *ExponentialTracker) SmoothingFactor() float64 {
	return core.SmoothingFactor(e.period)
}
