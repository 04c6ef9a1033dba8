package workflow

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps task names to their plugins.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// Register adds plugin under its process factory name, replacing any previous entry.
func (r *Registry) Register(plugin Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[plugin.ProcessFactory().Info().Name] = plugin
}

func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plugin, exists := r.plugins[name]
	return plugin, exists
}

func (r *Registry) CreateTask(name string, params Parameters) (Task, error) {
	plugin, exists := r.Get(name)
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}
	return plugin.ProcessFactory().Create(params)
}

// Names returns registered task names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Infos returns the metadata of every registered task, sorted by name.
func (r *Registry) Infos() []TaskInfo {
	names := r.Names()
	infos := make([]TaskInfo, 0, len(names))
	for _, name := range names {
		plugin, _ := r.Get(name)
		infos = append(infos, plugin.ProcessFactory().Info())
	}
	return infos
}

// ByPath groups task names by their algorithm tree path.
func (r *Registry) ByPath() map[string][]string {
	result := make(map[string][]string)
	for _, info := range r.Infos() {
		result[info.Path] = append(result[info.Path], info.Name)
	}
	return result
}
