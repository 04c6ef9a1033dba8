package main

import (
	"io"

	"gopkg.in/yaml.v3"

	"infer-google-vision-safe-search/internal/workflow"
)

// catalog is the -list output: the algorithm tree and every task's metadata.
type catalog struct {
	Paths map[string][]string `yaml:"paths"`
	Tasks []workflow.TaskInfo `yaml:"tasks"`
}

func writeCatalog(w io.Writer, registry *workflow.Registry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(catalog{
		Paths: registry.ByPath(),
		Tasks: registry.Infos(),
	}); err != nil {
		return err
	}
	return enc.Close()
}
