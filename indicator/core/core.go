package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// -----------------------------------------------------------------------------
// Sentinel errors – exported so callers can compare with errors.Is()
// -----------------------------------------------------------------------------
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrAllocationFailure = errors.New("allocation failure")
	ErrInvalidSample     = errors.New("sample must be a finite number")
)

// DefaultMaxCapacity is the largest window a SlidingAverage accepts unless
// overridden. It matches the 16-bit sample counters of small targets.
const DefaultMaxCapacity = math.MaxUint16

// -----------------------------------------------------------------------------
// Numeric kinds
// -----------------------------------------------------------------------------

// Number is the set of element types the moving averages accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind tells how a Number type must be accumulated and divided.
type Kind uint8

const (
	SignedKind Kind = iota
	UnsignedKind
	FloatKind
)

func (k Kind) String() string {
	switch k {
	case SignedKind:
		return "signed"
	case UnsignedKind:
		return "unsigned"
	case FloatKind:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// KindOf classifies T. Integer division truncates one half to zero and
// unsigned subtraction wraps below zero, which is all we need to tell the
// three families apart.
func KindOf[T Number]() Kind {
	var zero T
	one := T(1)
	if one/2 != zero {
		return FloatKind
	}
	if zero-one < zero {
		return SignedKind
	}
	return UnsignedKind
}

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

// keepLast returns the last n elements of a slice (or the whole slice if it is
// shorter).
func keepLast[T any](s []T, n int) []T {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// KeepLast is the exported wrapper for keepLast to share slice logic across packages.
func KeepLast[T any](s []T, n int) []T {
	return keepLast(s, n)
}

// CopySlice returns an independent copy of src (nil stays nil).
func CopySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

/* -------------------------------------------------------------------------
   Numeric helpers
--------------------------------------------------------------------------*/

// CalculateSlope returns the first difference between two consecutive values.
func CalculateSlope(y2, y1 float64) float64 {
	return y2 - y1
}

// CalculateCurve returns the second difference across three consecutive
// values, newest first.
func CalculateCurve(y2, y1, y0 float64) float64 {
	return CalculateSlope(y2, y1) - CalculateSlope(y1, y0)
}

// SmoothingFactor returns the EMA constant k = 2/(n+1).
func SmoothingFactor(period int) float64 {
	return 2.0 / float64(period+1)
}

// IsFiniteSample reports whether v can be fed to a float accumulator.
func IsFiniteSample(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

/* -------------------------------------------------------------------------
   Plotting utilities
--------------------------------------------------------------------------*/

type PlotData struct {
	Name      string    `json:"name"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Type      string    `json:"type,omitempty"`
	Signal    string    `json:"signal,omitempty"`
	Timestamp []int64   `json:"timestamp,omitempty"`
}

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	if count <= 0 {
		return nil
	}
	ts := make([]int64, count)
	for i := 0; i < count; i++ {
		ts[i] = startTime + int64(i)*interval
	}
	return ts
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "[]", nil
	}
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plot data: %w", err)
	}
	return string(b), nil
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("Name,X,Y,Type,Signal,Timestamp\n")
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
		for i := 0; i < len(d.X); i++ {
			ts := ""
			if i < len(d.Timestamp) {
				ts = fmt.Sprintf("%d", d.Timestamp[i])
			}
			fmt.Fprintf(&sb, "%s,%f,%f,%s,%s,%s\n",
				d.Name, d.X[i], d.Y[i], d.Type, d.Signal, ts)
		}
	}
	return sb.String(), nil
}
