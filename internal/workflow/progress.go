package workflow

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Progress receives step notifications from a running task.
type Progress interface {
	EmitStepProgress()
}

// StepCounter counts emitted steps and logs them against the expected total.
type StepCounter struct {
	logger logrus.FieldLogger
	task   string
	total  int
	steps  atomic.Int64
}

func NewStepCounter(logger logrus.FieldLogger, task string, total int) *StepCounter {
	return &StepCounter{logger: logger, task: task, total: total}
}

func (c *StepCounter) EmitStepProgress() {
	n := c.steps.Add(1)
	c.logger.WithFields(logrus.Fields{
		"task":  c.task,
		"step":  n,
		"total": c.total,
	}).Debug("Task progress")
}

func (c *StepCounter) Steps() int {
	return int(c.steps.Load())
}
