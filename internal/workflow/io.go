package workflow

import (
	"errors"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gocv.io/x/gocv"
)

var ErrNoImage = errors.New("workflow: no input image")

// ImageIO is an image input or output slot. It owns the stored Mat.
type ImageIO struct {
	mu    sync.RWMutex
	image gocv.Mat
	set   bool
}

func NewImageIO() *ImageIO {
	return &ImageIO{image: gocv.NewMat()}
}

// SetImage stores a clone of mat, releasing any previous image. It waits for
// readers inside WithImage to finish.
func (io *ImageIO) SetImage(mat gocv.Mat) {
	io.mu.Lock()
	defer io.mu.Unlock()

	io.image.Close()
	io.image = mat.Clone()
	io.set = true
}

// WithImage calls fn with the stored Mat while holding the slot's read lock.
// fn must not keep the Mat after it returns.
func (io *ImageIO) WithImage(fn func(gocv.Mat) error) error {
	io.mu.RLock()
	defer io.mu.RUnlock()

	if !io.set || io.image.Empty() {
		return ErrNoImage
	}
	return fn(io.image)
}

func (io *ImageIO) IsSet() bool {
	io.mu.RLock()
	defer io.mu.RUnlock()
	return io.set && !io.image.Empty()
}

func (io *ImageIO) Close() error {
	io.mu.Lock()
	defer io.mu.Unlock()

	io.set = false
	return io.image.Close()
}

// DataDict is an insertion-ordered string map.
type DataDict struct {
	values *orderedmap.OrderedMap[string, string]
}

func NewDataDict() *DataDict {
	return &DataDict{values: orderedmap.New[string, string]()}
}

// Set adds or replaces key. Replacing keeps the original position.
func (d *DataDict) Set(key, value string) {
	d.values.Set(key, value)
}

func (d *DataDict) Get(key string) (string, bool) {
	return d.values.Get(key)
}

func (d *DataDict) Keys() []string {
	keys := make([]string, 0, d.values.Len())
	for pair := d.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Map returns an unordered copy.
func (d *DataDict) Map() map[string]string {
	m := make(map[string]string, d.values.Len())
	for pair := d.values.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key] = pair.Value
	}
	return m
}

// MarshalJSON writes the entries in insertion order.
func (d *DataDict) MarshalJSON() ([]byte, error) {
	return d.values.MarshalJSON()
}

// DataDictIO is a structured output slot.
type DataDictIO struct {
	mu   sync.RWMutex
	data *DataDict
}

func NewDataDictIO() *DataDictIO {
	return &DataDictIO{}
}

func (io *DataDictIO) SetData(data *DataDict) {
	io.mu.Lock()
	defer io.mu.Unlock()
	io.data = data
}

// Data returns the published dict or nil if nothing was published yet.
func (io *DataDictIO) Data() *DataDict {
	io.mu.RLock()
	defer io.mu.RUnlock()
	return io.data
}

func (io *DataDictIO) IsSet() bool {
	io.mu.RLock()
	defer io.mu.RUnlock()
	return io.data != nil
}
