// Plugin entry for the Google Vision safe search task
package plugin

import (
	"github.com/sirupsen/logrus"

	"infer-google-vision-safe-search/internal/gui"
	"infer-google-vision-safe-search/internal/safesearch"
	"infer-google-vision-safe-search/internal/workflow"
)

// SafeSearchPlugin exposes the safe search process and widget factories.
type SafeSearchPlugin struct {
	process *safesearch.Factory
	widget  *gui.CredentialsWidgetFactory
}

func New(logger logrus.FieldLogger, opts ...safesearch.Option) *SafeSearchPlugin {
	return &SafeSearchPlugin{
		process: safesearch.NewFactory(logger, opts...),
		widget:  gui.NewCredentialsWidgetFactory(logger),
	}
}

func (p *SafeSearchPlugin) ProcessFactory() workflow.TaskFactory {
	return p.process
}

func (p *SafeSearchPlugin) WidgetFactory() workflow.WidgetFactory {
	return p.widget
}
