package safesearch

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infer-google-vision-safe-search/internal/workflow"
)

type mapParams map[string]string

func (m mapParams) GetValues() map[string]string { return m }

func (m mapParams) SetValues(values map[string]string) error {
	for k, v := range values {
		m[k] = v
	}
	return nil
}

func TestParamValues(t *testing.T) {
	p := NewParam()
	assert.Equal(t, map[string]string{"google_application_credentials": ""}, p.GetValues())

	require.NoError(t, p.SetValues(map[string]string{
		"google_application_credentials": "/tmp/key.json",
		"unrelated":                      "ignored",
	}))
	assert.Equal(t, "/tmp/key.json", p.Credentials())
	assert.Len(t, p.GetValues(), 1)
}

func TestParamSetValuesMissingKey(t *testing.T) {
	p := NewParamWithCredentials("/keep.json")

	err := p.SetValues(map[string]string{})
	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.Equal(t, "/keep.json", p.Credentials())
}

func TestParamConcurrentAccess(t *testing.T) {
	p := NewParamWithCredentials("/a.json")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			p.SetCredentials("/b.json")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			path := p.Credentials()
			assert.Contains(t, []string{"/a.json", "/b.json"}, path)
		}
	}()
	wg.Wait()

	assert.Equal(t, "/b.json", p.Clone().Credentials())
}

func TestFactoryInfo(t *testing.T) {
	info := NewFactory(nil).Info()

	assert.Equal(t, "infer_google_vision_safe_search", info.Name)
	assert.Equal(t, workflow.AlgoTypeInfer, info.AlgoType)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Contains(t, info.Keywords, "Safe Search")
}

func TestFactoryCreateDefaults(t *testing.T) {
	logger, _ := test.NewNullLogger()

	task, err := NewFactory(logger).Create(nil)
	require.NoError(t, err)
	defer task.Close()

	assert.Equal(t, TaskName, task.Name())
	assert.Equal(t, "", task.(*Task).Param().Credentials())
}

func TestFactoryCreateCopiesParam(t *testing.T) {
	param := NewParamWithCredentials("/a.json")

	task, err := NewFactory(nil).Create(param)
	require.NoError(t, err)
	defer task.Close()

	param.SetCredentials("/b.json")
	assert.Equal(t, "/a.json", task.(*Task).Param().Credentials())
}

func TestFactoryCreateFromForeignParams(t *testing.T) {
	task, err := NewFactory(nil).Create(mapParams{ParamCredentials: "/c.json"})
	require.NoError(t, err)
	defer task.Close()
	assert.Equal(t, "/c.json", task.(*Task).Param().Credentials())

	_, err = NewFactory(nil).Create(mapParams{})
	assert.ErrorIs(t, err, ErrMissingParameter)
}
