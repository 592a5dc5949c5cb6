package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaminalder/cookies-and-milk/internal/app"
)

func TestCollectorCountsServiceEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	s := app.NewService(app.WithObserver(c))

	for col := 1; col <= 4; col++ {
		_, err := s.Place("milk", col)
		require.NoError(t, err)
	}
	_, _ = s.Place("cookie", 1)
	_, _ = s.Place("tea", 1)
	s.Reset()
	for i := 0; i < 4; i++ {
		_, _ = s.Place("cookie", 1)
	}
	s.Random()

	assert.Equal(t, 4.0, testutil.ToFloat64(c.placements.WithLabelValues("milk")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.placements.WithLabelValues("cookie")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.rejections.WithLabelValues("game_over")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.rejections.WithLabelValues("invalid_input")))
	// the first random board after a reset is a milk win
	assert.Equal(t, 2.0, testutil.ToFloat64(c.finished.WithLabelValues("milk")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.finished.WithLabelValues("cookie")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.resets))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.randoms))
}
