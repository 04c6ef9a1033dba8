package safesearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
	"google.golang.org/grpc/status"

	"infer-google-vision-safe-search/internal/workflow"
)

// Task classifies its input image with Cloud Vision safe search and
// publishes the five likelihood labels to its data dict output.
type Task struct {
	name   string
	param  *Param
	input  *workflow.ImageIO
	output *workflow.DataDictIO

	logger    logrus.FieldLogger
	stdout    io.Writer
	newClient ClientFactory
	setenv    func(key, value string) error

	mu                 sync.Mutex
	client             Annotator
	credentialsApplied bool
}

type Option func(*Task)

func WithClientFactory(factory ClientFactory) Option {
	return func(t *Task) { t.newClient = factory }
}

// WithStdout redirects the diagnostic table.
func WithStdout(w io.Writer) Option {
	return func(t *Task) { t.stdout = w }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(t *Task) { t.logger = logger }
}

// WithSetenv replaces os.Setenv for the credentials variable.
func WithSetenv(setenv func(key, value string) error) Option {
	return func(t *Task) { t.setenv = setenv }
}

func NewTask(name string, param *Param, opts ...Option) *Task {
	if param == nil {
		param = NewParam()
	}
	t := &Task{
		name:      name,
		param:     param,
		input:     workflow.NewImageIO(),
		output:    workflow.NewDataDictIO(),
		logger:    logrus.StandardLogger(),
		stdout:    os.Stdout,
		newClient: NewVisionClient,
		setenv:    os.Setenv,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Task) Name() string { return t.name }

func (t *Task) Parameters() workflow.Parameters { return t.param }

func (t *Task) Param() *Param { return t.param }

func (t *Task) ProgressSteps() int { return 1 }

func (t *Task) ImageInput() *workflow.ImageIO { return t.input }

func (t *Task) DictOutput() *workflow.DataDictIO { return t.output }

// Run classifies the input image, prints the table and publishes the dict.
// Nothing is published when any step fails.
func (t *Task) Run(ctx context.Context, progress workflow.Progress) error {
	var result Result
	err := t.input.WithImage(func(img gocv.Mat) error {
		var err error
		result, err = t.Classify(ctx, img)
		return err
	})
	if errors.Is(err, workflow.ErrNoImage) {
		return fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	if err != nil {
		return err
	}

	result.WriteTable(t.stdout)
	t.output.SetData(result.Dict())
	if progress != nil {
		progress.EmitStepProgress()
	}
	return nil
}

// Classify runs safe search on an RGB image.
func (t *Task) Classify(ctx context.Context, img gocv.Mat) (Result, error) {
	client, err := t.ensureClient(ctx)
	if err != nil {
		return Result{}, err
	}

	if err := validateImage(img); err != nil {
		return Result{}, err
	}

	jpeg, err := encodeJPEG(img)
	if err != nil {
		return Result{}, err
	}

	t.logger.WithFields(logrus.Fields{
		"task":   t.name,
		"width":  img.Cols(),
		"height": img.Rows(),
		"bytes":  len(jpeg),
	}).Debug("Sending safe search request")

	res, err := client.AnnotateImage(ctx, safeSearchRequest(jpeg))
	if err != nil {
		t.logger.WithFields(logrus.Fields{
			"task": t.name,
			"code": status.Code(err).String(),
		}).Debug("Safe search request failed")
		return Result{}, err
	}

	if msg := res.GetError().GetMessage(); msg != "" {
		return Result{}, &AnnotationError{Code: res.GetError().GetCode(), Message: msg}
	}

	return resultFromAnnotation(res.GetSafeSearchAnnotation())
}

// ensureClient creates the client on first use. The credentials variable is
// set at most once, and only for a non-empty path.
func (t *Task) ensureClient(ctx context.Context) (Annotator, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.client != nil {
		return t.client, nil
	}

	if path := t.param.Credentials(); path != "" && !t.credentialsApplied {
		if err := t.setenv(CredentialsEnv, path); err != nil {
			return nil, err
		}
		t.credentialsApplied = true
		t.logger.WithField("path", path).Info("Using service account credentials")
	}

	client, err := t.newClient(ctx)
	if err != nil {
		return nil, err
	}
	t.client = client
	t.logger.WithField("task", t.name).Debug("Vision client created")
	return client, nil
}

func (t *Task) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var err error
	if t.client != nil {
		err = t.client.Close()
		t.client = nil
	}
	if cerr := t.input.Close(); err == nil {
		err = cerr
	}
	return err
}
