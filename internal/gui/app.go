// Desktop host window: one task, its parameter widget, an image picker and the result view
package gui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"infer-google-vision-safe-search/internal/io"
	"infer-google-vision-safe-search/internal/workflow"
)

// Application hosts a single image task in a window.
type Application struct {
	app    fyne.App
	window fyne.Window
	logger logrus.FieldLogger

	task   workflow.ImageTask
	loader *io.ImageLoader
	params workflow.Widget

	imageLabel  *widget.Label
	statusLabel *widget.Label
	openButton  *widget.Button
	runButton   *widget.Button
	resultGrid  *fyne.Container
	resultCells map[string]*widget.Label
}

// NewApplication creates the plugin's task from params (nil for defaults) and builds the window.
func NewApplication(app fyne.App, plugin workflow.Plugin, params workflow.Parameters, logger logrus.FieldLogger) (*Application, error) {
	factory := plugin.ProcessFactory()
	task, err := factory.Create(params)
	if err != nil {
		return nil, err
	}
	imageTask, ok := task.(workflow.ImageTask)
	if !ok {
		task.Close()
		return nil, fmt.Errorf("task %s does not take an image input", task.Name())
	}

	info := factory.Info()
	window := app.NewWindow(fmt.Sprintf("%s v%s", info.Name, info.Version))
	window.Resize(fyne.NewSize(640, 420))
	window.CenterOnScreen()

	a := &Application{
		app:         app,
		window:      window,
		logger:      logger,
		task:        imageTask,
		loader:      io.NewImageLoader(logger),
		resultCells: make(map[string]*widget.Label),
	}

	if wf := plugin.WidgetFactory(); wf != nil {
		a.params = wf.Create(imageTask.Parameters(), window)
		a.params.SetOnApply(a.onParametersApplied)
	}

	a.setupLayout(info)
	window.SetOnClosed(func() {
		if err := a.task.Close(); err != nil {
			a.logger.WithError(err).Warn("Failed to close task")
		}
	})
	return a, nil
}

func (a *Application) setupLayout(info workflow.TaskInfo) {
	a.imageLabel = widget.NewLabel("No image loaded")
	a.statusLabel = widget.NewLabel("Ready")

	a.openButton = widget.NewButton("Open Image", a.openImage)
	a.runButton = widget.NewButton("Run", a.runTask)
	a.runButton.Importance = widget.HighImportance
	a.runButton.Disable()

	a.resultGrid = container.New(layout.NewFormLayout())

	var paramsContent fyne.CanvasObject = widget.NewLabel("No parameters")
	if a.params != nil {
		paramsContent = a.params.Content()
	}

	a.window.SetContent(container.NewVBox(
		widget.NewLabel(info.ShortDescription),
		widget.NewCard("Parameters", "", paramsContent),
		widget.NewCard("Input", "", container.NewHBox(a.openButton, a.imageLabel)),
		a.runButton,
		widget.NewCard("Result", "", a.resultGrid),
		widget.NewSeparator(),
		a.statusLabel,
	))
}

func (a *Application) onParametersApplied(params workflow.Parameters) {
	if params == a.task.Parameters() {
		return
	}
	if err := a.task.Parameters().SetValues(params.GetValues()); err != nil {
		dialog.ShowError(err, a.window)
	}
}

func (a *Application) openImage() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()
		name := reader.URI().Name()

		go func() {
			mat, err := a.loader.LoadImage(path)
			if err != nil {
				fyne.Do(func() { dialog.ShowError(err, a.window) })
				return
			}
			a.task.ImageInput().SetImage(mat)
			mat.Close()

			fyne.Do(func() {
				a.imageLabel.SetText(name)
				a.runButton.Enable()
				a.statusLabel.SetText("Image loaded")
			})
		}()
	}, a.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(io.SupportedExtensions()))
	fileDialog.Show()
}

// setRunning locks the input controls while the task owns its image.
func (a *Application) setRunning(running bool) {
	if running {
		a.openButton.Disable()
		a.runButton.Disable()
		return
	}
	a.openButton.Enable()
	a.runButton.Enable()
}

func (a *Application) runTask() {
	a.setRunning(true)
	a.statusLabel.SetText("Running...")

	go func() {
		err := workflow.Run(context.Background(), a.task, a.logger)
		data := a.task.DictOutput().Data()

		fyne.Do(func() {
			a.setRunning(false)
			if err != nil {
				a.statusLabel.SetText("Failed")
				dialog.ShowError(err, a.window)
				return
			}
			a.showResult(data)
			a.statusLabel.SetText("Done")
		})
	}()
}

func (a *Application) showResult(data *workflow.DataDict) {
	if data == nil {
		return
	}
	for _, key := range data.Keys() {
		value, _ := data.Get(key)
		cell, exists := a.resultCells[key]
		if !exists {
			cell = widget.NewLabel("")
			a.resultCells[key] = cell
			a.resultGrid.Add(widget.NewLabelWithStyle(key, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}))
			a.resultGrid.Add(cell)
		}
		cell.SetText(value)
	}
}

func (a *Application) ShowAndRun() {
	a.window.ShowAndRun()
}
