package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadParamsDefaults(t *testing.T) {
	params, err := loadParams("", "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"google_application_credentials": ""}, params)
}

func TestLoadParamsPrecedence(t *testing.T) {
	path := writeFile(t, "params.yaml", "google_application_credentials: /from/file.json\n")

	params, err := loadParams(path, "")
	require.NoError(t, err)
	assert.Equal(t, "/from/file.json", params["google_application_credentials"])

	params, err = loadParams(path, "/from/flag.json")
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.json", params["google_application_credentials"])
}

func TestLoadParamsErrors(t *testing.T) {
	_, err := loadParams(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.Error(t, err)

	_, err = loadParams(writeFile(t, "bad.yaml", "- not\n- a map\n"), "")
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	t.Setenv("SAFESEARCH_DOTENV_TEST", "")
	os.Unsetenv("SAFESEARCH_DOTENV_TEST")

	loadDotEnv(writeFile(t, ".env", "SAFESEARCH_DOTENV_TEST=loaded\n"), logger)
	assert.Equal(t, "loaded", os.Getenv("SAFESEARCH_DOTENV_TEST"))

	hook.Reset()
	loadDotEnv(filepath.Join(t.TempDir(), ".env"), logger)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func TestInitLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, initLogger(true).GetLevel())

	logger := initLogger(false)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
