package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jaminalder/cookies-and-milk/internal/app"
	"github.com/jaminalder/cookies-and-milk/internal/domain"
)

// Collector counts game events. It implements app.Observer.
type Collector struct {
	placements *prometheus.CounterVec
	rejections *prometheus.CounterVec
	finished   *prometheus.CounterVec
	resets     prometheus.Counter
	randoms    prometheus.Counter
}

var _ app.Observer = (*Collector)(nil)

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		placements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "c4_placements_total",
				Help: "Pieces dropped onto the board",
			},
			[]string{"team"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "c4_rejections_total",
				Help: "Placements refused, by reason",
			},
			[]string{"reason"},
		),
		finished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "c4_games_finished_total",
				Help: "Games that reached a result",
			},
			[]string{"outcome"},
		),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "c4_resets_total",
			Help: "Board resets",
		}),
		randoms: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "c4_random_boards_total",
			Help: "Random boards generated",
		}),
	}
	reg.MustRegister(c.placements, c.rejections, c.finished, c.resets, c.randoms)
	return c
}

func (c *Collector) Placed(marker domain.Cell) {
	c.placements.WithLabelValues(marker.String()).Inc()
}

func (c *Collector) Rejected(reason error) {
	c.rejections.WithLabelValues(reasonLabel(reason)).Inc()
}

func (c *Collector) Finished(outcome domain.Outcome) {
	c.finished.WithLabelValues(outcome.String()).Inc()
}

func (c *Collector) Reset() { c.resets.Inc() }

func (c *Collector) Randomized() { c.randoms.Inc() }

func reasonLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrGameOver):
		return "game_over"
	case errors.Is(err, domain.ErrColumnFull):
		return "column_full"
	case errors.Is(err, app.ErrInvalidInput):
		return "invalid_input"
	default:
		return "other"
	}
}
