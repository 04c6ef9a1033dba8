package plugin

import (
	"context"
	"testing"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	gax "github.com/googleapis/gax-go/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"infer-google-vision-safe-search/internal/safesearch"
	"infer-google-vision-safe-search/internal/workflow"
)

type annotatorStub struct{}

func (annotatorStub) AnnotateImage(context.Context, *visionpb.AnnotateImageRequest, ...gax.CallOption) (*visionpb.AnnotateImageResponse, error) {
	return &visionpb.AnnotateImageResponse{
		SafeSearchAnnotation: &visionpb.SafeSearchAnnotation{Racy: visionpb.Likelihood_POSSIBLE},
	}, nil
}

func (annotatorStub) Close() error { return nil }

func TestPluginFactoriesShareName(t *testing.T) {
	logger, _ := test.NewNullLogger()
	p := New(logger)

	assert.Equal(t, p.ProcessFactory().Info().Name, p.WidgetFactory().Name())
}

func TestPluginRunsThroughRegistry(t *testing.T) {
	logger, _ := test.NewNullLogger()
	registry := workflow.NewRegistry()
	registry.Register(New(logger,
		safesearch.WithStdout(&nopWriter{}),
		safesearch.WithClientFactory(func(context.Context) (safesearch.Annotator, error) {
			return annotatorStub{}, nil
		}),
	))

	task, err := registry.CreateTask(safesearch.TaskName, nil)
	require.NoError(t, err)
	defer task.Close()

	imageTask, ok := task.(workflow.ImageTask)
	require.True(t, ok)

	img := gocv.NewMatWithSize(8, 8, gocv.MatTypeCV8UC3)
	defer img.Close()
	imageTask.ImageInput().SetImage(img)

	require.NoError(t, workflow.Run(context.Background(), task, logger))

	racy, ok := imageTask.DictOutput().Data().Get(safesearch.KeyRacy)
	require.True(t, ok)
	assert.Equal(t, "POSSIBLE", racy)
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) { return len(p), nil }
