package core

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
--------------------------------------------------------------

	Numeric kinds
	--------------------------------------------------------------
*/
func TestKindOf(t *testing.T) {
	assert.Equal(t, SignedKind, KindOf[int]())
	assert.Equal(t, SignedKind, KindOf[int8]())
	assert.Equal(t, SignedKind, KindOf[int64]())
	assert.Equal(t, UnsignedKind, KindOf[uint]())
	assert.Equal(t, UnsignedKind, KindOf[uint8]())
	assert.Equal(t, UnsignedKind, KindOf[uint64]())
	assert.Equal(t, UnsignedKind, KindOf[uintptr]())
	assert.Equal(t, FloatKind, KindOf[float32]())
	assert.Equal(t, FloatKind, KindOf[float64]())

	assert.Equal(t, "float", FloatKind.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

/*
--------------------------------------------------------------

	Slice helpers
	--------------------------------------------------------------
*/
func TestKeepLast(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	got := KeepLast(src, 3)
	exp := []int{3, 4, 5}
	if !reflect.DeepEqual(got, exp) {
		t.Fatalf("KeepLast: expected %v, got %v", exp, got)
	}

	// Asking for more elements than exist should return the original slice unchanged.
	got = KeepLast(src, 10)
	if !reflect.DeepEqual(got, src) {
		t.Fatalf("KeepLast over‑length: expected %v, got %v", src, got)
	}
}

func TestCopySlice(t *testing.T) {
	assert.Nil(t, CopySlice[int](nil))

	src := []uint16{7, 8, 9}
	dst := CopySlice(src)
	dst[0] = 100
	assert.Equal(t, uint16(7), src[0], "copy must not alias the source")
}

/*
--------------------------------------------------------------

	Numeric helpers
	--------------------------------------------------------------
*/
func TestCalculateSlopeAndCurve(t *testing.T) {
	if got := CalculateSlope(10, 4); got != 6 {
		t.Fatalf("CalculateSlope expected 6, got %v", got)
	}
	// (10-5) - (5-0) = 0
	if got := CalculateCurve(10, 5, 0); got != 0 {
		t.Fatalf("CalculateCurve expected 0, got %v", got)
	}
	// (9-5) - (5-4) = 3
	if got := CalculateCurve(9, 5, 4); got != 3 {
		t.Fatalf("CalculateCurve expected 3, got %v", got)
	}
}

func TestSmoothingFactor(t *testing.T) {
	tests := []struct {
		period int
		want   float64
	}{
		{0, 2},
		{1, 1},
		{3, 0.5},
		{9, 0.2},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, SmoothingFactor(tt.period), 1e-12, "period %d", tt.period)
	}
}

func TestIsFiniteSample(t *testing.T) {
	assert.True(t, IsFiniteSample(0))
	assert.True(t, IsFiniteSample(-12.5))
	assert.False(t, IsFiniteSample(math.NaN()))
	assert.False(t, IsFiniteSample(math.Inf(1)))
	assert.False(t, IsFiniteSample(math.Inf(-1)))
}

/*
--------------------------------------------------------------

	Plot formatting
	--------------------------------------------------------------
*/
func TestGenerateTimestamps(t *testing.T) {
	assert.Nil(t, GenerateTimestamps(0, 0, 1))
	assert.Equal(t, []int64{100, 110, 120}, GenerateTimestamps(100, 3, 10))
}

func TestFormatPlotDataJSON(t *testing.T) {
	out, err := FormatPlotDataJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	data := []PlotData{{Name: "SMA", X: []float64{0, 1}, Y: []float64{10, 15}, Type: "line"}}
	out, err = FormatPlotDataJSON(data)
	require.NoError(t, err)

	var decoded []PlotData
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, data, decoded)

	_, err = FormatPlotDataJSON([]PlotData{{Name: "bad", X: []float64{0}, Y: nil}})
	assert.Error(t, err)
}

func TestFormatPlotDataCSV(t *testing.T) {
	out, err := FormatPlotDataCSV(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	data := []PlotData{{
		Name:      "EMA",
		X:         []float64{0, 1},
		Y:         []float64{5, 10},
		Type:      "line",
		Timestamp: []int64{1000},
	}}
	out, err = FormatPlotDataCSV(data)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,X,Y,Type,Signal,Timestamp", lines[0])
	assert.Equal(t, "EMA,0.000000,5.000000,line,,1000", lines[1])
	// the second row has no timestamp left
	assert.Equal(t, "EMA,1.000000,10.000000,line,,", lines[2])
}
