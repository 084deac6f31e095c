// workers/season_scheduler.go
package workers

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"

	"league-ranking-system/models"
	"league-ranking-system/services"
	"league-ranking-system/storage"
)

// SeasonScheduler drives the season lifecycle the engine deliberately does
// not: upcoming seasons past their start date become active, active seasons
// past their end date become completed.
type SeasonScheduler struct {
	seasons storage.SeasonRepository
	engine  *services.LeagueEngine
	log     *logrus.Entry
}

func NewSeasonScheduler(seasons storage.SeasonRepository, engine *services.LeagueEngine, log *logrus.Logger) *SeasonScheduler {
	return &SeasonScheduler{
		seasons: seasons,
		engine:  engine,
		log:     log.WithField("component", "season_scheduler"),
	}
}

// Start runs the lifecycle sweep every minute until the context is cancelled.
func (w *SeasonScheduler) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() { w.sweep(ctx) }),
	)
	if err != nil {
		return err
	}

	sched.Start()
	go func() {
		<-ctx.Done()
		_ = sched.Shutdown()
	}()
	return nil
}

func (w *SeasonScheduler) sweep(ctx context.Context) {
	now := time.Now().UTC()

	upcoming, err := w.seasons.List(ctx, models.SeasonUpcoming)
	if err != nil {
		w.log.WithError(err).Error("failed to list upcoming seasons")
		return
	}
	for _, season := range upcoming {
		if season.StartDate.After(now) {
			continue
		}
		if err := w.engine.SetSeasonStatus(ctx, season.ID, models.SeasonActive); err != nil {
			w.log.WithField("season_id", season.ID).WithError(err).Error("activation failed")
			continue
		}
		w.log.WithField("season_id", season.ID).Info("season activated")
	}

	active, err := w.seasons.List(ctx, models.SeasonActive)
	if err != nil {
		w.log.WithError(err).Error("failed to list active seasons")
		return
	}
	for _, season := range active {
		if season.EndDate.After(now) {
			continue
		}
		if err := w.engine.SetSeasonStatus(ctx, season.ID, models.SeasonCompleted); err != nil {
			w.log.WithField("season_id", season.ID).WithError(err).Error("completion failed")
			continue
		}
		w.log.WithField("season_id", season.ID).Info("season completed")
	}
}
