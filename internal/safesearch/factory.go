package safesearch

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"infer-google-vision-safe-search/internal/workflow"
)

const (
	TaskName = "infer_google_vision_safe_search"
	Version  = "1.0.0"
)

// Factory builds safe search tasks.
type Factory struct {
	logger logrus.FieldLogger
	opts   []Option
}

// NewFactory returns a factory whose tasks are built with opts.
func NewFactory(logger logrus.FieldLogger, opts ...Option) *Factory {
	return &Factory{logger: logger, opts: opts}
}

func (f *Factory) Info() workflow.TaskInfo {
	return workflow.TaskInfo{
		Name:               TaskName,
		ShortDescription:   "Safe Search detects explicit content such as adult content or violent content within an image.",
		IconPath:           "images/cloud.png",
		Path:               "Plugins/Go/Other",
		Version:            Version,
		Authors:            "Google",
		Year:               2023,
		License:            "Apache License 2.0",
		DocumentationLink:  "https://cloud.google.com/vision/docs/detecting-safe-search",
		Repository:         "https://github.com/Ikomia-hub/infer_google_vision_safe_search",
		OriginalRepository: "https://github.com/googleapis/google-cloud-go",
		Keywords:           []string{"Safe Search", "Google", "Cloud", "Vision AI"},
		AlgoType:           workflow.AlgoTypeInfer,
		AlgoTasks:          "OTHER",
	}
}

// Create returns a task with a private copy of params, or defaults when nil.
func (f *Factory) Create(params workflow.Parameters) (workflow.Task, error) {
	param := NewParam()
	switch p := params.(type) {
	case nil:
	case *Param:
		if p != nil {
			param = p.Clone()
		}
	default:
		if err := param.SetValues(p.GetValues()); err != nil {
			return nil, fmt.Errorf("create %s: %w", TaskName, err)
		}
	}

	opts := make([]Option, 0, len(f.opts)+1)
	if f.logger != nil {
		opts = append(opts, WithLogger(f.logger))
	}
	opts = append(opts, f.opts...)
	return NewTask(TaskName, param, opts...), nil
}
