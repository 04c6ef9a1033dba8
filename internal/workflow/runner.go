package workflow

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Run executes task once and logs its begin/end. The task error is returned unmodified.
func Run(ctx context.Context, task Task, logger logrus.FieldLogger) error {
	start := time.Now()
	log := logger.WithField("task", task.Name())
	log.Info("Task run started")

	progress := NewStepCounter(logger, task.Name(), task.ProgressSteps())
	if err := task.Run(ctx, progress); err != nil {
		log.WithFields(logrus.Fields{
			"duration": time.Since(start),
			"error":    err,
		}).Error("Task run failed")
		return err
	}

	log.WithFields(logrus.Fields{
		"duration": time.Since(start),
		"steps":    progress.Steps(),
	}).Info("Task run finished")
	return nil
}
