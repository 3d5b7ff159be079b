package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"cafe_menu_service/internal/app"
)

// ServingWatcher drives the serving-slot transition detection: a cron
// tick (every minute by default) evaluates the schedule against the
// wall clock and lets the serving service decide whether a
// notification is due.
type ServingWatcher struct {
	cronEngine      *cron.Cron
	serving         *app.ServingService
	logger          *logrus.Entry
	cronSpecServing string
}

func NewServingWatcher(serving *app.ServingService, logger *logrus.Entry, cronSpecServing string) *ServingWatcher {
	return &ServingWatcher{
		cronEngine:      cron.New(cron.WithLocation(time.Local)), // Single operating timezone: the server's local time
		serving:         serving,
		logger:          logger,
		cronSpecServing: cronSpecServing,
	}
}

func (w *ServingWatcher) Start() error {
	_, err := w.cronEngine.AddFunc(w.cronSpecServing, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		w.serving.Tick(ctx, time.Now())
	})
	if err != nil {
		return err
	}

	w.cronEngine.Start()
	w.logger.WithField("spec", w.cronSpecServing).Info("Serving watcher started")
	return nil
}

func (w *ServingWatcher) Stop() {
	w.logger.Info("Stopping serving watcher...")
	ctx := w.cronEngine.Stop() // Waits for running jobs to finish.
	<-ctx.Done()
	w.logger.Info("Serving watcher stopped")
}
