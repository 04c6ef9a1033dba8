// Parameter widget for the safe search task
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"infer-google-vision-safe-search/internal/safesearch"
	"infer-google-vision-safe-search/internal/workflow"
)

// CredentialsWidget edits the service account credentials path.
type CredentialsWidget struct {
	param  *safesearch.Param
	window fyne.Window
	logger logrus.FieldLogger

	pathEntry    *widget.Entry
	browseButton *widget.Button
	applyButton  *widget.Button
	content      *fyne.Container

	onApply func(workflow.Parameters)
}

func NewCredentialsWidget(param *safesearch.Param, window fyne.Window, logger logrus.FieldLogger) *CredentialsWidget {
	if param == nil {
		param = safesearch.NewParam()
	}
	cw := &CredentialsWidget{
		param:  param,
		window: window,
		logger: logger,
	}
	cw.initializeUI()
	return cw
}

func (cw *CredentialsWidget) initializeUI() {
	cw.pathEntry = widget.NewEntry()
	cw.pathEntry.SetPlaceHolder("Use default credentials")
	cw.pathEntry.SetText(cw.param.Credentials())

	cw.browseButton = widget.NewButton("Browse...", cw.browse)
	if cw.window == nil {
		cw.browseButton.Disable()
	}

	cw.applyButton = widget.NewButton("Apply", cw.Apply)
	cw.applyButton.Importance = widget.HighImportance

	cw.content = container.NewVBox(
		widget.NewLabel("Google app credentials (.json)"),
		container.NewBorder(nil, nil, nil, cw.browseButton, cw.pathEntry),
		cw.applyButton,
	)
}

func (cw *CredentialsWidget) browse() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			cw.logger.WithError(err).Warn("Credentials file dialog failed")
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		cw.pathEntry.SetText(reader.URI().Path())
		cw.logger.WithField("path", reader.URI().Path()).Debug("Credentials file selected")
	}, cw.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fileDialog.Show()
}

func (cw *CredentialsWidget) Content() fyne.CanvasObject {
	return cw.content
}

func (cw *CredentialsWidget) SetOnApply(fn func(workflow.Parameters)) {
	cw.onApply = fn
}

func (cw *CredentialsWidget) Apply() {
	cw.param.SetCredentials(cw.pathEntry.Text)
	cw.logger.WithField(safesearch.ParamCredentials, cw.pathEntry.Text).Info("Parameters applied")

	if cw.onApply != nil {
		cw.onApply(cw.param)
	}
}

// CredentialsWidgetFactory builds widgets for the safe search task.
type CredentialsWidgetFactory struct {
	logger logrus.FieldLogger
}

func NewCredentialsWidgetFactory(logger logrus.FieldLogger) *CredentialsWidgetFactory {
	return &CredentialsWidgetFactory{logger: logger}
}

func (f *CredentialsWidgetFactory) Name() string {
	return safesearch.TaskName
}

// Create edits params in place when it is a *safesearch.Param, otherwise a
// copy seeded from its values.
func (f *CredentialsWidgetFactory) Create(params workflow.Parameters, window fyne.Window) workflow.Widget {
	param, ok := params.(*safesearch.Param)
	if !ok || param == nil {
		param = safesearch.NewParam()
		if !ok && params != nil {
			if err := param.SetValues(params.GetValues()); err != nil {
				f.logger.WithError(err).Warn("Ignoring widget parameters")
			}
		}
	}
	return NewCredentialsWidget(param, window, f.logger)
}
