package logger

import (
	"io"
	"sync"
)

// Registry maps logger names to instances. It is built once at application
// start-up and injected into components; looking up an unknown name creates
// a logger on the registry's default writer.
type Registry struct {
	mu      sync.Mutex
	writer  io.Writer
	loggers map[string]Logger
}

func NewRegistry(defaultWriter io.Writer) *Registry {
	return &Registry{
		writer:  defaultWriter,
		loggers: make(map[string]Logger),
	}
}

// Get returns the logger registered under name, creating one with the
// registry's default writer on first use.
func (r *Registry) Get(name string) Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l
	}
	l := NewLogger(r.writer, "["+name+"]")
	r.loggers[name] = l
	return l
}

// Set registers an explicit logger under name, replacing any previous one.
func (r *Registry) Set(name string, l Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers[name] = l
}

// Names reports the registered logger names.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	return names
}
