package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jaminalder/cookies-and-milk/internal/domain"
	"github.com/jaminalder/cookies-and-milk/internal/randutil"
)

// Errors exposed by the service layer.
var (
	// ErrInvalidInput wraps a rejected team name or column; the engine is never touched.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidColumn is returned for columns outside 1..4.
	ErrInvalidColumn = errors.New("column must be between 1 and 4")
	// ErrUnavailable wraps domain.ErrGameOver and domain.ErrColumnFull.
	ErrUnavailable = errors.New("unavailable")
)

// Observer is notified of game events after the lock has been released.
type Observer interface {
	Placed(marker domain.Cell)
	Rejected(reason error)
	Finished(outcome domain.Outcome)
	Reset()
	Randomized()
}

type nopObserver struct{}

func (nopObserver) Placed(domain.Cell)      {}
func (nopObserver) Rejected(error)          {}
func (nopObserver) Finished(domain.Outcome) {}
func (nopObserver) Reset()                  {}
func (nopObserver) Randomized()             {}

// Service owns the single game of the process. Every method holds the lock
// for its whole duration and hands back a copy.
type Service struct {
	mu   sync.Mutex
	game *domain.Game

	obs Observer
	log zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithObserver installs an event observer such as the metrics collector.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.obs = o
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithSeed replaces the fixed game seed. Reset rewinds to this seed.
func WithSeed(seed uint64) Option {
	return func(s *Service) { s.game = domain.NewWithSeed(seed) }
}

// NewService creates the shared game seeded with randutil.GameSeed.
func NewService(opts ...Option) *Service {
	s := &Service{
		game: domain.NewWithSeed(randutil.GameSeed),
		obs:  nopObserver{},
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the current state.
func (s *Service) Board() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Reset empties the board and rewinds the generator.
func (s *Service) Reset() domain.Snapshot {
	snap := s.reset()
	s.log.Debug().Msg("game reset")
	s.obs.Reset()
	return snap
}

func (s *Service) reset() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset()
	return s.game.Snapshot()
}

// Place validates a team name and a 1-based column, then drops a piece.
// On ErrUnavailable the returned snapshot is the unchanged board.
func (s *Service) Place(team string, column int) (domain.Snapshot, error) {
	marker, col, err := parsePlacement(team, column)
	if err != nil {
		s.obs.Rejected(err)
		return domain.Snapshot{}, err
	}

	snap, row, err := s.drop(col, marker)
	if err != nil {
		s.log.Debug().Err(err).Str("team", team).Int("column", column).Msg("placement rejected")
		s.obs.Rejected(err)
		return snap, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	s.log.Debug().Str("team", team).Int("column", column).Int("row", row).Msg("piece placed")
	s.obs.Placed(marker)
	if snap.Over {
		s.finished(snap)
	}
	return snap, nil
}

func (s *Service) drop(col int, marker domain.Cell) (domain.Snapshot, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, err := s.game.Drop(col, marker)
	return s.game.Snapshot(), row, err
}

// Random fills the board from the seeded generator; the result is always final.
func (s *Service) Random() domain.Snapshot {
	snap := s.randomize()
	s.obs.Randomized()
	s.finished(snap)
	return snap
}

func (s *Service) randomize() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Randomize()
	return s.game.Snapshot()
}

func (s *Service) finished(snap domain.Snapshot) {
	outcome := snap.Outcome()
	s.log.Info().Stringer("outcome", outcome).Msg("game finished")
	s.obs.Finished(outcome)
}

func parsePlacement(team string, column int) (domain.Cell, int, error) {
	marker, err := domain.ParseMarker(team)
	if err != nil {
		return domain.Empty, 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if column < 1 || column > domain.Size {
		return domain.Empty, 0, fmt.Errorf("%w: %w", ErrInvalidInput, ErrInvalidColumn)
	}
	return marker, column - 1, nil
}
