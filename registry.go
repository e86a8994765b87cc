package verdict

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

var (
	registry   = make(map[reflect.Type]*structPlan)
	registryMu sync.RWMutex
)

// planFor returns the cached field plan for struct type rt or builds one.
// scan supplies sentinel metadata for rt; when nil the metadata is looked up
// or built by reflection.
func planFor(rt reflect.Type, scan func() sentinel.Metadata) *structPlan {
	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[rt]; ok {
		registryMu.RUnlock()
		return cached
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[rt]; ok {
		return cached
	}

	var meta sentinel.Metadata
	if scan != nil {
		meta = scan()
	} else if found := scanNestedType(rt); found != nil {
		meta = *found
	}
	plan := buildStructPlan(rt, meta)
	registry[rt] = plan
	return plan
}

// Reset clears the field plan cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]*structPlan)
}
