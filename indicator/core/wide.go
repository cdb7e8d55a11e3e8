package core

import (
	"math"
	"math/bits"
)

// Wide is a signed 128-bit two's-complement integer. It is the running sum of
// integer windows: capacity × max|T| stays far below 2^127 for every integer
// element type and any window up to 2^63 samples, so the sum never wraps.
type Wide struct {
	hi, lo uint64
}

// WideFromInt sign-extends v.
func WideFromInt(v int64) Wide {
	var hi uint64
	if v < 0 {
		hi = math.MaxUint64
	}
	return Wide{hi: hi, lo: uint64(v)}
}

// WideFromUint zero-extends v.
func WideFromUint(v uint64) Wide {
	return Wide{lo: v}
}

func (w Wide) Add(v Wide) Wide {
	lo, carry := bits.Add64(w.lo, v.lo, 0)
	hi, _ := bits.Add64(w.hi, v.hi, carry)
	return Wide{hi: hi, lo: lo}
}

func (w Wide) Sub(v Wide) Wide {
	lo, borrow := bits.Sub64(w.lo, v.lo, 0)
	hi, _ := bits.Sub64(w.hi, v.hi, borrow)
	return Wide{hi: hi, lo: lo}
}

func (w Wide) Neg() Wide {
	return Wide{}.Sub(w)
}

// Sign returns -1, 0 or +1.
func (w Wide) Sign() int {
	switch {
	case int64(w.hi) < 0:
		return -1
	case w.hi == 0 && w.lo == 0:
		return 0
	default:
		return 1
	}
}

// MulUint64 returns w × n.
func (w Wide) MulUint64(n uint64) Wide {
	neg := w.Sign() < 0
	if neg {
		w = w.Neg()
	}
	hi, lo := bits.Mul64(w.lo, n)
	p := Wide{hi: hi + w.hi*n, lo: lo}
	if neg {
		p = p.Neg()
	}
	return p
}

// Quo returns w / d truncated toward zero. d must not be zero.
func (w Wide) Quo(d uint64) Wide {
	neg := w.Sign() < 0
	if neg {
		w = w.Neg()
	}
	hi, r := w.hi/d, w.hi%d
	lo, _ := bits.Div64(r, w.lo, d)
	q := Wide{hi: hi, lo: lo}
	if neg {
		q = q.Neg()
	}
	return q
}

// Int64 returns the low 64 bits as a signed value.
func (w Wide) Int64() int64 { return int64(w.lo) }

// Uint64 returns the low 64 bits.
func (w Wide) Uint64() uint64 { return w.lo }
