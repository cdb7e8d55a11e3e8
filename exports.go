package movavg

import (
	"github.com/evdnx/movavg/config"
	"github.com/evdnx/movavg/indicator"
	"github.com/evdnx/movavg/indicator/window"
	"github.com/evdnx/movavg/suite"
)

// ---- Shared data helpers ----
type PlotData = indicator.PlotData

func FormatPlotDataJSON(data []indicator.PlotData) (string, error) {
	return indicator.FormatPlotDataJSON(data)
}

func FormatPlotDataCSV(data []indicator.PlotData) (string, error) {
	return indicator.FormatPlotDataCSV(data)
}

// ---- Errors & config ----
type Number = indicator.Number
type Config = config.Config

var (
	ErrInvalidArgument   = indicator.ErrInvalidArgument
	ErrAllocationFailure = indicator.ErrAllocationFailure
	ErrInvalidSample     = indicator.ErrInvalidSample
)

func DefaultConfig() config.Config { return config.DefaultConfig() }

// ---- Sliding (simple) moving average ----
type WindowOption = window.Option

func WithStrictCapacity(enabled bool) window.Option { return indicator.WithStrictCapacity(enabled) }

func WithMaxCapacity(n int) window.Option { return indicator.WithMaxCapacity(n) }

func NewSlidingAverage[T Number](capacity int, opts ...window.Option) (*window.SlidingAverage[T], error) {
	return indicator.NewSlidingAverage[T](capacity, opts...)
}

func NewSlidingAverageWithParams[T Number](capacity int, initial T, opts ...window.Option) (*window.SlidingAverage[T], error) {
	return indicator.NewSlidingAverageWithParams(capacity, initial, opts...)
}

// ---- Exponential tracker ----
type ExponentialTracker = indicator.ExponentialTracker

func NewExponentialTracker() *indicator.ExponentialTracker {
	return indicator.NewExponentialTracker()
}

func NewExponentialTrackerWithParams(period int, seed float64) (*indicator.ExponentialTracker, error) {
	return indicator.NewExponentialTrackerWithParams(period, seed)
}

// ---- Sensor suite ----
type SensorSuite = suite.SensorSuite
type Reading = suite.Reading

func NewSensorSuite() (*suite.SensorSuite, error) {
	return suite.NewSensorSuite()
}

func NewSensorSuiteWithConfig(cfg config.Config) (*suite.SensorSuite, error) {
	return suite.NewSensorSuiteWithConfig(cfg)
}
