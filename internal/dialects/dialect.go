// Package dialects describes the identifier rules of the SQL engines that
// sqlalias targets: how identifiers are quoted and how long they may be.
package dialects

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Dialect defines database-specific identifier behaviors.
type Dialect interface {
	// Name returns the canonical dialect name.
	Name() string
	// QuoteIdentifier quotes an identifier for use in SQL text.
	QuoteIdentifier(string) string
	// MaxIdentifierLength returns the longest identifier the engine accepts,
	// or 0 when the engine imposes no limit.
	MaxIdentifierLength() int
}

var (
	mu       sync.RWMutex
	dialects = make(map[string]Dialect)
)

// RegisterDialect registers a database dialect by driver name.
// Names are matched case-insensitively.
func RegisterDialect(name string, d Dialect) {
	mu.Lock()
	defer mu.Unlock()
	dialects[strings.ToLower(name)] = d
}

// LookupDialect retrieves a registered dialect by driver name.
func LookupDialect(name string) (Dialect, error) {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := dialects[strings.ToLower(name)]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("unsupported dialect: %q", name)
}

// GetDialect retrieves a registered dialect by driver name, panics if not found.
func GetDialect(name string) Dialect {
	d, err := LookupDialect(name)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Names returns every registered driver name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// quoteWith wraps s in left and right, doubling any embedded right delimiter.
func quoteWith(s, left, right string) string {
	return left + strings.ReplaceAll(s, right, right+right) + right
}
