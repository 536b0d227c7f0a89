// Package codec converts between raw controller units and percentages.
//
// Out-of-range inputs are never errors: they are clamped into range and a
// diagnostic is logged. Percent clamping logs at warning level (the user
// asked for something impossible); raw clamping logs at notice level, which
// maps onto logrus Info.
package codec

import (
	"errors"
	"math"

	log "github.com/sirupsen/logrus"
)

// ErrZeroMax is returned when converting against a maximum of zero.
var ErrZeroMax = errors.New("controller reports a maximum value of 0")

// Codec performs raw/percent conversions, logging adjustments to its logger.
type Codec struct {
	log log.FieldLogger
}

// New creates a Codec that logs diagnostics to l.
func New(l log.FieldLogger) *Codec {
	return &Codec{log: l}
}

// ClampPercent returns p limited to [0, 100].
func (c *Codec) ClampPercent(p float64) float64 {
	switch {
	case math.IsNaN(p):
		c.log.Warnf("specified value %g%% is not valid, adjusting it to 0%%", p)
		return 0
	case p < 0:
		c.log.Warnf("specified value %g%% is not valid, adjusting it to 0%%", p)
		return 0
	case p > 100:
		c.log.Warnf("specified value %g%% is not valid, adjusting it to 100%%", p)
		return 100
	}
	return p
}

// Clamp returns v limited to [lo, hi]. The lower bound wins if lo > hi.
func (c *Codec) Clamp(v, lo, hi uint64) uint64 {
	if v < lo {
		c.log.Infof("too small value, adjusting to minimum %d (raw)", lo)
		return lo
	}
	if v > hi {
		c.log.Infof("too large value, adjusting to maximum %d (raw)", hi)
		return hi
	}
	return v
}

// ClampMin returns v raised to at least lo.
func (c *Codec) ClampMin(v, lo uint64) uint64 {
	return c.Clamp(v, lo, math.MaxUint64)
}

// RawToPercent converts raw against max into a percentage in [0, 100].
func (c *Codec) RawToPercent(raw, max uint64) (float64, error) {
	if max == 0 {
		return 0, ErrZeroMax
	}
	return c.ClampPercent(float64(raw) / float64(max) * 100.0), nil
}

// PercentToRaw converts a percentage into raw units of a controller with the
// given max. The result is always within [0, max].
func (c *Codec) PercentToRaw(percent float64, max uint64) uint64 {
	target := math.Round(float64(max) * (c.ClampPercent(percent) / 100.0))
	if target >= float64(max) {
		// float64 cannot represent every uint64; keep the exact bound.
		return max
	}
	return c.Clamp(uint64(target), 0, max)
}
