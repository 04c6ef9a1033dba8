package gui

import (
	"context"
	"io"
	"testing"
	"time"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"fyne.io/fyne/v2/test"
	gax "github.com/googleapis/gax-go/v2"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"infer-google-vision-safe-search/internal/safesearch"
	"infer-google-vision-safe-search/internal/workflow"
)

type gatedAnnotator struct {
	started chan struct{}
	release chan struct{}
}

func (g *gatedAnnotator) AnnotateImage(ctx context.Context, _ *visionpb.AnnotateImageRequest, _ ...gax.CallOption) (*visionpb.AnnotateImageResponse, error) {
	close(g.started)
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &visionpb.AnnotateImageResponse{
		SafeSearchAnnotation: &visionpb.SafeSearchAnnotation{Adult: visionpb.Likelihood_UNLIKELY},
	}, nil
}

func (g *gatedAnnotator) Close() error { return nil }

type hostPlugin struct {
	process *safesearch.Factory
	widget  *CredentialsWidgetFactory
}

func (p hostPlugin) ProcessFactory() workflow.TaskFactory { return p.process }

func (p hostPlugin) WidgetFactory() workflow.WidgetFactory { return p.widget }

func newHostPlugin(logger logrus.FieldLogger, annotator safesearch.Annotator) hostPlugin {
	return hostPlugin{
		process: safesearch.NewFactory(logger,
			safesearch.WithClientFactory(func(context.Context) (safesearch.Annotator, error) {
				return annotator, nil
			}),
			safesearch.WithStdout(io.Discard),
			safesearch.WithSetenv(func(string, string) error { return nil }),
		),
		widget: NewCredentialsWidgetFactory(logger),
	}
}

func TestApplicationLocksInputWhileRunning(t *testing.T) {
	app := test.NewTempApp(t)
	logger, _ := logtest.NewNullLogger()

	annotator := &gatedAnnotator{started: make(chan struct{}), release: make(chan struct{})}
	a, err := NewApplication(app, newHostPlugin(logger, annotator), nil, logger)
	require.NoError(t, err)
	t.Cleanup(func() { a.task.Close() })

	img := gocv.NewMatWithSize(8, 8, gocv.MatTypeCV8UC3)
	a.task.ImageInput().SetImage(img)
	img.Close()

	a.runTask()
	<-annotator.started
	assert.True(t, a.openButton.Disabled())
	assert.True(t, a.runButton.Disabled())

	close(annotator.release)
	assert.Eventually(t, func() bool {
		return !a.openButton.Disabled() && !a.runButton.Disabled()
	}, 2*time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		return a.statusLabel.Text == "Done"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestApplicationShowsResult(t *testing.T) {
	app := test.NewTempApp(t)
	logger, _ := logtest.NewNullLogger()

	a, err := NewApplication(app, newHostPlugin(logger, nil), nil, logger)
	require.NoError(t, err)
	t.Cleanup(func() { a.task.Close() })

	dict := workflow.NewDataDict()
	dict.Set("adult:", "LIKELY")
	dict.Set("racy:", "UNLIKELY")
	a.showResult(dict)

	require.Len(t, a.resultCells, 2)
	assert.Equal(t, "LIKELY", a.resultCells["adult:"].Text)
	assert.Len(t, a.resultGrid.Objects, 4)
}
