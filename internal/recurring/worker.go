package recurring

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Worker materializes due rules periodically.
type Worker struct {
	Interval time.Duration
	now      func() time.Time
}

// NewWorker returns a worker running at the given interval.
func NewWorker(interval time.Duration) *Worker {
	return &Worker{Interval: interval, now: time.Now}
}

// Run processes due rules once immediately and then on every tick until
// the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	log.Info().Dur("interval", w.Interval).Msg("starting recurring worker")

	w.tick(ctx)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("stopping recurring worker")
			return nil
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	result, err := Materialize(ctx, w.now())
	if err != nil {
		log.Error().Err(err).Msg("processing recurring rules failed")
		return
	}

	log.Info().Int("rules", result.Rules).Int("created", result.Created).Int("deactivated", result.Deactivated).Msg("processed recurring rules")
}
