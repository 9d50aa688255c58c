package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported field an editor can show.
type FieldInfo struct {
	Name     string
	Index    int
	Embedded bool
}

// ReflectionCache memoises the exported fields of struct types.
type ReflectionCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{fields: make(map[reflect.Type][]FieldInfo)}
}

// Fields returns the exported fields of t, or nil for non-struct types.
func (rc *ReflectionCache) Fields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fields[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{Name: field.Name, Index: i, Embedded: field.Anonymous})
		}
	}

	rc.mu.Lock()
	rc.fields[t] = fields
	rc.mu.Unlock()
	return fields
}

var globalReflectionCache = NewReflectionCache()
