package suite

import (
	"fmt"

	"github.com/evdnx/movavg/config"
	"github.com/evdnx/movavg/indicator"
	"github.com/evdnx/movavg/indicator/window"
)

// Reading is everything derived from one sample.
type Reading struct {
	Sample  float64
	Average float64 // sliding average
	Value   float64 // exponential average
	Slope   float64
	Curve   float64
}

// ---------------------------------------------------------------------
// SensorSuite – one sliding average and one exponential tracker fed from
// the same sample stream, one Add per tick.
// ---------------------------------------------------------------------
type SensorSuite struct {
	cfg     config.Config
	sma     *window.SlidingAverage[float64]
	ema     *indicator.ExponentialTracker
	history []Reading
}

// NewSensorSuite creates a suite with the library defaults.
func NewSensorSuite() (*SensorSuite, error) {
	return NewSensorSuiteWithConfig(config.DefaultConfig())
}

// NewSensorSuiteWithConfig builds a suite using a custom configuration.
func NewSensorSuiteWithConfig(cfg config.Config) (*SensorSuite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	sma, err := indicator.NewSlidingAverage[float64](cfg.WindowCapacity, indicator.WindowOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sliding average: %w", err)
	}
	ema, err := indicator.NewExponentialTrackerWithParams(cfg.EMAPeriod, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create exponential tracker: %w", err)
	}

	return &SensorSuite{
		cfg:     cfg,
		sma:     sma,
		ema:     ema,
		history: make([]Reading, 0, cfg.HistoryLength),
	}, nil
}

// ---------------------------------------------------------------------
// Add – forwards the sample to both averages.
// ---------------------------------------------------------------------
func (s *SensorSuite) Add(sample float64) (Reading, error) {
	if !indicator.IsFiniteSample(sample) {
		return Reading{}, fmt.Errorf("%w: %v", indicator.ErrInvalidSample, sample)
	}

	r := Reading{
		Sample:  sample,
		Average: s.sma.Update(sample),
		Value:   s.ema.Update(sample),
	}
	r.Slope = s.ema.Slope()
	r.Curve = s.ema.Curve()

	s.history = append(s.history, r)
	s.trimSlices()
	return r, nil
}

// Last returns the most recent reading, if any.
func (s *SensorSuite) Last() (Reading, bool) {
	if len(s.history) == 0 {
		return Reading{}, false
	}
	return s.history[len(s.history)-1], true
}

// Reseed puts both averages at rest on v, e.g. after the sensor was
// reconnected. History is kept.
func (s *SensorSuite) Reseed(v float64) error {
	if !indicator.IsFiniteSample(v) {
		return fmt.Errorf("%w: %v", indicator.ErrInvalidSample, v)
	}
	s.sma.SetValue(v)
	s.ema.SetValue(v)
	return nil
}

// Reset clears both averages and the history.
func (s *SensorSuite) Reset() {
	s.sma.Reset()
	s.ema.Reset()
	s.history = s.history[:0]
}

// History returns a copy of the retained readings, oldest first.
func (s *SensorSuite) History() []Reading {
	out := make([]Reading, len(s.history))
	copy(out, s.history)
	return out
}

func (s *SensorSuite) GetSlidingAverage() *window.SlidingAverage[float64] { return s.sma }

func (s *SensorSuite) GetExponentialTracker() *indicator.ExponentialTracker { return s.ema }

// GetPlotData returns one series per derived quantity.
func (s *SensorSuite) GetPlotData(startTime, interval int64) []indicator.PlotData {
	n := len(s.history)
	if n == 0 {
		return nil
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	timestamps := indicator.GenerateTimestamps(startTime, n, interval)

	series := func(name, kind string, pick func(Reading) float64) indicator.PlotData {
		y := make([]float64, n)
		for i, r := range s.history {
			y[i] = pick(r)
		}
		return indicator.PlotData{Name: name, X: x, Y: y, Type: kind, Timestamp: timestamps}
	}

	return []indicator.PlotData{
		series("Sample", "scatter", func(r Reading) float64 { return r.Sample }),
		series("SMA", "line", func(r Reading) float64 { return r.Average }),
		series("EMA", "line", func(r Reading) float64 { return r.Value }),
		series("Slope", "bar", func(r Reading) float64 { return r.Slope }),
		series("Curve", "bar", func(r Reading) float64 { return r.Curve }),
	}
}

// PlotJSON renders GetPlotData as JSON.
func (s *SensorSuite) PlotJSON(startTime, interval int64) (string, error) {
	return indicator.FormatPlotDataJSON(s.GetPlotData(startTime, interval))
}

// PlotCSV renders GetPlotData as CSV.
func (s *SensorSuite) PlotCSV(startTime, interval int64) (string, error) {
	return indicator.FormatPlotDataCSV(s.GetPlotData(startTime, interval))
}

func (s *SensorSuite) trimSlices() {
	s.history = indicator.KeepLast(s.history, s.cfg.HistoryLength)
}
