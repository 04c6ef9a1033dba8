package safesearch

import (
	"errors"
	"fmt"
	"sync"
)

const ParamCredentials = "google_application_credentials"

var ErrMissingParameter = errors.New("missing parameter")

// Param holds the task configuration. An empty credentials path means
// ambient credential discovery. Safe for use by the widget and a running task
// at the same time.
type Param struct {
	mu          sync.RWMutex
	credentials string
}

func NewParam() *Param {
	return &Param{}
}

func NewParamWithCredentials(path string) *Param {
	return &Param{credentials: path}
}

func (p *Param) Credentials() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.credentials
}

func (p *Param) SetCredentials(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.credentials = path
}

func (p *Param) GetValues() map[string]string {
	return map[string]string{
		ParamCredentials: p.Credentials(),
	}
}

// SetValues reads the credentials key. Unknown keys are ignored.
func (p *Param) SetValues(values map[string]string) error {
	credentials, ok := values[ParamCredentials]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingParameter, ParamCredentials)
	}
	p.SetCredentials(credentials)
	return nil
}

func (p *Param) Clone() *Param {
	return NewParamWithCredentials(p.Credentials())
}
