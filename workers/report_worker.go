// workers/report_worker.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"

	"league-ranking-system/models"
	"league-ranking-system/services"
	"league-ranking-system/utils"
)

// StandingsReport is the archived snapshot of one season's state.
type StandingsReport struct {
	SeasonID    string            `json:"season_id"`
	TierID      string            `json:"tier_id"`
	Region      string            `json:"region"`
	Status      string            `json:"status"`
	GeneratedAt time.Time         `json:"generated_at"`
	Standings   []models.Standing `json:"standings"`
	Promotions  []string          `json:"promotions,omitempty"`
	Relegations []string          `json:"relegations,omitempty"`
}

// ReportWorker periodically archives standings snapshots for active seasons
// to R2, where the analytics and notification systems pick them up.
type ReportWorker struct {
	engine   *services.LeagueEngine
	interval time.Duration
	log      *logrus.Entry
}

func NewReportWorker(engine *services.LeagueEngine, log *logrus.Logger) *ReportWorker {
	return &ReportWorker{
		engine:   engine,
		interval: 15 * time.Minute,
		log:      log.WithField("component", "report_worker"),
	}
}

func (w *ReportWorker) Start(ctx context.Context) error {
	if !utils.R2Enabled() {
		w.log.Info("R2 not configured, standings report archiving disabled")
		return nil
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() { w.archive(ctx) }),
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

func (w *ReportWorker) archive(ctx context.Context) {
	for _, season := range w.engine.GetAvailableLeagues(ctx, "") {
		if season.Status != models.SeasonActive {
			continue
		}

		report := StandingsReport{
			SeasonID:    season.ID,
			TierID:      season.TierID,
			Region:      season.Region,
			Status:      season.Status,
			GeneratedAt: time.Now().UTC(),
			Standings:   w.engine.GetLeagueStandings(ctx, season.ID),
			Promotions:  season.Promotions,
			Relegations: season.Relegations,
		}
		payload, err := json.Marshal(report)
		if err != nil {
			w.log.WithField("season_id", season.ID).WithError(err).Error("report marshal failed")
			continue
		}

		key := fmt.Sprintf("reports/%s/%s.json", season.ID, report.GeneratedAt.Format("20060102T150405"))
		url, err := utils.UploadBytesToR2(ctx, key, payload, "application/json")
		if err != nil {
			w.log.WithField("season_id", season.ID).WithError(err).Error("report upload failed")
			continue
		}
		w.log.WithFields(logrus.Fields{
			"season_id": season.ID,
			"url":       url,
		}).Info("standings report archived")
	}
}
