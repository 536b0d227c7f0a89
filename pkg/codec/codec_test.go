package codec

import (
	"math"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec() (*Codec, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return New(logger), hook
}

func TestClampPercent(t *testing.T) {
	tests := []struct {
		in        float64
		want      float64
		wantDiags int
	}{
		{in: 0, want: 0},
		{in: 42.5, want: 42.5},
		{in: 100, want: 100},
		{in: -0.01, want: 0, wantDiags: 1},
		{in: -1e9, want: 0, wantDiags: 1},
		{in: 100.5, want: 100, wantDiags: 1},
		{in: math.Inf(1), want: 100, wantDiags: 1},
		{in: math.Inf(-1), want: 0, wantDiags: 1},
		{in: math.NaN(), want: 0, wantDiags: 1},
	}

	for _, tt := range tests {
		c, hook := newTestCodec()
		got := c.ClampPercent(tt.in)
		assert.Equal(t, tt.want, got, "ClampPercent(%v)", tt.in)
		assert.Len(t, hook.AllEntries(), tt.wantDiags, "diagnostics for %v", tt.in)
		if tt.wantDiags > 0 {
			assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
		}
	}
}

func TestClampPercentRange(t *testing.T) {
	c, _ := newTestCodec()
	for p := -250.0; p <= 250.0; p += 0.75 {
		got := c.ClampPercent(p)
		require.GreaterOrEqual(t, got, 0.0)
		require.LessOrEqual(t, got, 100.0)
		if p >= 0 && p <= 100 {
			require.Equal(t, p, got)
		}
	}
}

func TestClamp(t *testing.T) {
	t.Run("in range", func(t *testing.T) {
		c, hook := newTestCodec()
		assert.Equal(t, uint64(50), c.Clamp(50, 10, 100))
		assert.Empty(t, hook.AllEntries())
	})

	t.Run("below min", func(t *testing.T) {
		c, hook := newTestCodec()
		assert.Equal(t, uint64(10), c.Clamp(3, 10, 100))
		require.Len(t, hook.AllEntries(), 1)
		assert.Equal(t, log.InfoLevel, hook.LastEntry().Level)
		assert.Contains(t, hook.LastEntry().Message, "minimum 10")
	})

	t.Run("above max", func(t *testing.T) {
		c, hook := newTestCodec()
		assert.Equal(t, uint64(100), c.Clamp(300, 10, 100))
		require.Len(t, hook.AllEntries(), 1)
		assert.Contains(t, hook.LastEntry().Message, "maximum 100")
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		c, hook := newTestCodec()
		assert.Equal(t, uint64(10), c.Clamp(10, 10, 100))
		assert.Equal(t, uint64(100), c.Clamp(100, 10, 100))
		assert.Empty(t, hook.AllEntries())
	})

	t.Run("property", func(t *testing.T) {
		c, _ := newTestCodec()
		for lo := uint64(0); lo < 20; lo += 3 {
			for hi := lo; hi < 40; hi += 7 {
				for v := uint64(0); v < 50; v++ {
					got := c.Clamp(v, lo, hi)
					require.GreaterOrEqual(t, got, lo)
					require.LessOrEqual(t, got, hi)
					if v >= lo && v <= hi {
						require.Equal(t, v, got)
					}
				}
			}
		}
	})
}

func TestClampMin(t *testing.T) {
	c, hook := newTestCodec()
	assert.Equal(t, uint64(30), c.ClampMin(10, 30))
	assert.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, uint64(math.MaxUint64), c.ClampMin(math.MaxUint64, 30))
}

func TestRawToPercent(t *testing.T) {
	c, _ := newTestCodec()

	got, err := c.RawToPercent(128, 256)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, got, 1e-9)

	got, err = c.RawToPercent(0, 937)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	// Raw above max (a misbehaving driver) clamps to 100.
	got, err = c.RawToPercent(400, 255)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	_, err = c.RawToPercent(10, 0)
	assert.ErrorIs(t, err, ErrZeroMax)
}

func TestPercentToRaw(t *testing.T) {
	c, _ := newTestCodec()

	assert.Equal(t, uint64(0), c.PercentToRaw(0, 255))
	assert.Equal(t, uint64(255), c.PercentToRaw(100, 255))
	assert.Equal(t, uint64(128), c.PercentToRaw(50, 255))
	assert.Equal(t, uint64(255), c.PercentToRaw(150, 255))
	assert.Equal(t, uint64(0), c.PercentToRaw(-3, 255))
	assert.Equal(t, uint64(0), c.PercentToRaw(42, 0))
	assert.Equal(t, uint64(math.MaxUint64), c.PercentToRaw(100, math.MaxUint64))
}

func TestRoundTrip(t *testing.T) {
	c, _ := newTestCodec()
	for _, max := range []uint64{1, 7, 100, 255, 937, 4882, 120000} {
		step := max/200 + 1
		for raw := uint64(0); raw <= max; raw += step {
			p, err := c.RawToPercent(raw, max)
			require.NoError(t, err)
			back := c.PercentToRaw(p, max)
			diff := int64(back) - int64(raw)
			require.LessOrEqual(t, diff, int64(1), "raw=%d max=%d back=%d", raw, max, back)
			require.GreaterOrEqual(t, diff, int64(-1), "raw=%d max=%d back=%d", raw, max, back)
		}
	}
}
