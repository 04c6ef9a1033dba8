// Host contract for workflow tasks, their factories and parameter objects
package workflow

import (
	"context"
	"errors"
)

var ErrUnknownTask = errors.New("workflow: unknown task")

// Parameters is a task parameter object exchanged with the host as a string map.
type Parameters interface {
	GetValues() map[string]string
	SetValues(values map[string]string) error
}

// Task is one runnable workflow step.
type Task interface {
	Name() string
	Parameters() Parameters
	ProgressSteps() int
	Run(ctx context.Context, progress Progress) error
	Close() error
}

// ImageTask is a task fed by one image input and publishing one data dict.
type ImageTask interface {
	Task
	ImageInput() *ImageIO
	DictOutput() *DataDictIO
}

// AlgoType classifies a task for the host's algorithm tree.
type AlgoType string

const AlgoTypeInfer AlgoType = "INFER"

// TaskInfo is the metadata a factory advertises to the host.
type TaskInfo struct {
	Name               string   `yaml:"name"`
	ShortDescription   string   `yaml:"short_description"`
	IconPath           string   `yaml:"icon_path"`
	Path               string   `yaml:"path"`
	Version            string   `yaml:"version"`
	Authors            string   `yaml:"authors"`
	Year               int      `yaml:"year"`
	License            string   `yaml:"license"`
	DocumentationLink  string   `yaml:"documentation_link"`
	Repository         string   `yaml:"repository"`
	OriginalRepository string   `yaml:"original_repository"`
	Keywords           []string `yaml:"keywords"`
	AlgoType           AlgoType `yaml:"algo_type"`
	AlgoTasks          string   `yaml:"algo_tasks"`
}

// TaskFactory builds tasks. A nil params argument means defaults.
type TaskFactory interface {
	Info() TaskInfo
	Create(params Parameters) (Task, error)
}

// Plugin bundles the process factory with its optional widget factory.
type Plugin interface {
	ProcessFactory() TaskFactory
	WidgetFactory() WidgetFactory
}
