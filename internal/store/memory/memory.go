// Package memory provides mutex-guarded in-memory implementations of the
// store interfaces. They back the service and handler tests so no live
// Postgres is needed, and they count calls so tests can assert that a
// rejected request never reached the store.
package memory

import (
	"fmt"
	"sync"
)

// counter tracks how many store methods were invoked.
type counter struct {
	mu    sync.Mutex
	calls int
}

func (c *counter) inc() {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
}

// Calls reports the number of store method invocations so far.
func (c *counter) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
