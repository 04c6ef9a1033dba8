package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"infer-google-vision-safe-search/internal/safesearch"
)

// loadDotEnv loads path into the environment without overriding existing variables.
func loadDotEnv(path string, logger logrus.FieldLogger) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.WithField("path", path).Debug("No .env file, using system environment variables")
			return
		}
		logger.WithError(err).WithField("path", path).Warn("Failed to load .env file")
	}
}

// loadParams builds the task parameter map. Precedence: the -credentials
// flag, then the YAML file, then an empty credentials path.
func loadParams(path, credentials string) (map[string]string, error) {
	params := map[string]string{
		safesearch.ParamCredentials: "",
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read params: %w", err)
		}
		var fromFile map[string]string
		if err := yaml.Unmarshal(raw, &fromFile); err != nil {
			return nil, fmt.Errorf("parse params %s: %w", path, err)
		}
		for k, v := range fromFile {
			params[k] = v
		}
	}

	if credentials != "" {
		params[safesearch.ParamCredentials] = credentials
	}
	return params, nil
}
