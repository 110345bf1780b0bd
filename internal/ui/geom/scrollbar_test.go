package geom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollbarMetricsMeasuresOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	metrics := NewScrollbarMetrics(ScrollbarProbeFunc(func() (int, int, error) {
		calls++
		return 12, 10, nil
	}))

	assert.Equal(t, 2, metrics.Width())
	assert.Equal(t, 2, metrics.Width())
	assert.Equal(t, 1, calls)
}

func TestScrollbarMetricsFallsBackToZero(t *testing.T) {
	t.Parallel()

	failing := NewScrollbarMetrics(ScrollbarProbeFunc(func() (int, int, error) {
		return 0, 0, errors.New("probe detached")
	}))
	assert.Equal(t, 0, failing.Width())

	inverted := NewScrollbarMetrics(ScrollbarProbeFunc(func() (int, int, error) {
		return 3, 9, nil
	}))
	assert.Equal(t, 0, inverted.Width())

	assert.Equal(t, 0, NewScrollbarMetrics(nil).Width())

	var missing *ScrollbarMetrics
	assert.Equal(t, 0, missing.Width())
}

func TestScrollboxGutterIsOneColumn(t *testing.T) {
	t.Parallel()

	outer, inner, err := measureScrollbox()
	assert.NoError(t, err)
	assert.Equal(t, probeContentWidth, inner)
	assert.Equal(t, 1, outer-inner)
}

func TestRefBounds(t *testing.T) {
	t.Parallel()

	var ref Ref
	_, ok := ref.Bounds()
	assert.False(t, ok)

	ref.Set(NewRect(1, 2, 3, 4))
	rect, ok := ref.Bounds()
	assert.True(t, ok)
	assert.Equal(t, 6, rect.Bottom())
	assert.Equal(t, 5, rect.Right())
	assert.True(t, rect.Contains(2, 1))
	assert.False(t, rect.Contains(5, 1))

	ref.Unmount()
	_, ok = ref.Bounds()
	assert.False(t, ok)
}
