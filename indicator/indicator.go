package indicator

import (
	"github.com/evdnx/movavg/indicator/core"
	"github.com/evdnx/movavg/indicator/trend"
	"github.com/evdnx/movavg/indicator/window"
)

// ---- Shared data helpers ----
type PlotData = core.PlotData

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	return core.GenerateTimestamps(startTime, count, interval)
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	return core.FormatPlotDataJSON(data)
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	return core.FormatPlotDataCSV(data)
}

func KeepLast[T any](s []T, n int) []T { return core.KeepLast(s, n) }

func IsFiniteSample(v float64) bool { return core.IsFiniteSample(v) }

// ---- Errors & numeric types ----
type Number = core.Number

const DefaultMaxCapacity = core.DefaultMaxCapacity

var (
	ErrInvalidArgument   = core.ErrInvalidArgument
	ErrAllocationFailure = core.ErrAllocationFailure
	ErrInvalidSample     = core.ErrInvalidSample
)

// ---- Sliding (simple) moving average ----
type WindowOption = window.Option

func WithStrictCapacity(enabled bool) window.Option {
	return window.WithStrictCapacity(enabled)
}

func WithMaxCapacity(n int) window.Option {
	return window.WithMaxCapacity(n)
}

func NewSlidingAverage[T Number](capacity int, opts ...window.Option) (*window.SlidingAverage[T], error) {
	return window.NewSlidingAverage[T](capacity, opts...)
}

func NewSlidingAverageWithParams[T Number](capacity int, initial T, opts ...window.Option) (*window.SlidingAverage[T], error) {
	return window.NewSlidingAverageWithParams(capacity, initial, opts...)
}

// ---- Exponential tracker ----
type ExponentialTracker = trend.ExponentialTracker

const DefaultEMAPeriod = trend.DefaultEMAPeriod

func NewExponentialTracker() *trend.ExponentialTracker {
	return trend.NewExponentialTracker()
}

func NewExponentialTrackerWithParams(period int, seed float64) (*trend.ExponentialTracker, error) {
	return trend.NewExponentialTrackerWithParams(period, seed)
}
