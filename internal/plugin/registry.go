// internal/plugin/registry.go
//
// Plugin registry (cycle-free).
//
// Each concrete plugin lives under plugins/<name> and calls
// plugin.Register() in an init() function.  cmd/web links plugins with a
// blank import, then InitAll hands every enabled plugin the Host so it can
// attach callbacks to the extension points in internal/hooks.

package plugin

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Plugin contract.
//
// Init runs once at boot.  It should only register hooks; anything that
// touches the store belongs in the hook callbacks themselves so the
// plugin stays stateless between requests.
type Plugin interface {
	Name() string
	Init(Host) error
}

var (
	mu       sync.RWMutex
	registry = map[string]Plugin{}
)

// Register is invoked from plugin init() functions.  A duplicate name
// replaces the earlier entry.
func Register(p Plugin) {
	mu.Lock()
	registry[p.Name()] = p
	mu.Unlock()
}

// All returns every registered plugin ordered by name.
func All() []Plugin {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Plugin, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// InitAll initialises every registered plugin not named in disabled and
// returns the names that were enabled.
func InitAll(h Host, disabled []string) ([]string, error) {
	skip := make(map[string]struct{}, len(disabled))
	for _, n := range disabled {
		skip[n] = struct{}{}
	}

	var enabled []string
	for _, p := range All() {
		if _, off := skip[p.Name()]; off {
			zap.L().Info("plugin disabled", zap.String("plugin", p.Name()))
			continue
		}
		if err := p.Init(h); err != nil {
			return enabled, fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
		enabled = append(enabled, p.Name())
		zap.L().Info("plugin enabled", zap.String("plugin", p.Name()))
	}
	return enabled, nil
}
