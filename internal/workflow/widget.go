package workflow

import "fyne.io/fyne/v2"

// Widget is the parameter editor a plugin exposes to the host.
type Widget interface {
	Content() fyne.CanvasObject
	// Apply pushes edited values into the parameters and emits them.
	Apply()
	SetOnApply(func(Parameters))
}

// WidgetFactory builds widgets. Name must match the process factory name.
type WidgetFactory interface {
	Name() string
	Create(params Parameters, window fyne.Window) Widget
}
