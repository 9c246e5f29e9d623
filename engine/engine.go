// Package engine provides the MILP engines available to solve exact cover models.
//
// Engines are registered under a name and built from Options by their Factory.
// Two engines are always available, both built on gophersat: "pb" relies on its
// pseudo-boolean optimizer, and "maxsat" on its weighted MAXSAT solver.
package engine

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crillab/exactcover/ilp"
)

// Options are the settings passed to an engine when it is built.
// Engines ignore the settings they do not understand.
type Options struct {
	Timeout   time.Duration      // Maximum duration of Optimize. 0 means no limit.
	Precision int                // Significant digits of costs, relative to the largest one, kept by engines working with integer costs.
	Verbose   bool               // Whether the engine should trace its progress.
	Logger    logrus.FieldLogger // Where the engine logs. If nil, the standard logrus logger is used.
}

// DefaultPrecision is the default value of Options.Precision.
const DefaultPrecision = 6

// DefaultOptions returns the options used when none are specified.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}

// A Factory builds a new, empty engine.
type Factory func(opts Options) ilp.Engine

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes an engine available under the given name.
// It panics if the name is already used or if factory is nil.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if factory == nil {
		panic("engine: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("engine: Register called twice for engine " + name)
	}
	registry[name] = factory
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Errorf("unknown engine %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return factory, nil
}

// Names returns the names of all registered engines, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
