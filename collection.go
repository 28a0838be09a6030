package rpcbase

import (
	"reflect"
	"sort"

	js "github.com/reoring/rpcbase/jsonschema"
)

// Array is an ordered sequence of cells built by a shared element factory.
// An empty array that was marked initialized is "present but empty", which is
// distinct from absent.
type Array[T Value] struct {
	cellState
	items            []T
	newItem          func() T
	minSize, maxSize int
}

// NewArray returns an absent array whose length must fall in
// [minSize, maxSize] for it to be valid.
func NewArray[T Value](newItem func() T, minSize, maxSize int) *Array[T] {
	return &Array[T]{newItem: newItem, minSize: minSize, maxSize: maxSize}
}

// Push appends a fresh element and returns it for writing.
func (a *Array[T]) Push() T {
	it := a.newItem()
	a.Append(it)
	return it
}

// Append adds existing elements.
func (a *Array[T]) Append(items ...T) {
	a.items = append(a.items, items...)
	a.MarkInitialized()
}

func (a *Array[T]) At(i int) T { return a.items[i] }

func (a *Array[T]) Len() int { return len(a.items) }

// Items returns a copy of the element slice.
func (a *Array[T]) Items() []T { return append([]T(nil), a.items...) }

func (a *Array[T]) MarkInitialized() {
	if a.state == stateUninitialized {
		a.valid()
	}
}

func (a *Array[T]) IsValid() bool {
	if !a.cellState.IsValid() || len(a.items) < a.minSize || len(a.items) > a.maxSize {
		return false
	}
	for _, it := range a.items {
		if !it.IsValid() {
			return false
		}
	}
	return true
}

func (a *Array[T]) Reset() {
	a.items = nil
	a.clear()
}

func (a *Array[T]) ReadJSON(node any) {
	a.items = nil
	arr, ok := node.([]any)
	if !ok {
		a.invalid(CodeInvalidType)
		return
	}
	a.valid()
	a.items = make([]T, 0, len(arr))
	for _, e := range arr {
		it := a.newItem()
		it.ReadJSON(e)
		a.items = append(a.items, it)
	}
}

func (a *Array[T]) WriteJSON() any {
	out := make([]any, 0, len(a.items))
	for _, it := range a.items {
		out = append(out, it.WriteJSON())
	}
	return out
}

func (a *Array[T]) Report(p PathRef, iss *Issues) {
	if a.state == stateInvalid {
		a.report(p, iss, nil)
		return
	}
	reportSize(p, iss, len(a.items), a.minSize, a.maxSize)
	for i, it := range a.items {
		reportElement(p.Index(i), iss, it)
	}
}

func (a *Array[T]) JSONSchema() *js.Schema { return a.jsonSchema(map[reflect.Type]bool{}) }

func (a *Array[T]) jsonSchema(seen map[reflect.Type]bool) *js.Schema {
	minSize, maxSize := a.minSize, a.maxSize
	return &js.Schema{Type: "array", Items: lazySchema(a.newItem, seen), MinItems: &minSize, MaxItems: &maxSize}
}

func (a *Array[T]) walkPresence(base string, pm PresenceMap) {
	if !a.IsInitialized() {
		return
	}
	pm[base] |= PresenceSeen
	for i, it := range a.items {
		walkPresence(it, indexPointer(base, i), pm)
	}
}

// Map is a string-keyed mapping of cells built by a shared element factory.
// Keys are written in ascending order.
type Map[T Value] struct {
	cellState
	items            map[string]T
	newItem          func() T
	minSize, maxSize int
}

// NewMap returns an absent map whose size must fall in [minSize, maxSize] for
// it to be valid.
func NewMap[T Value](newItem func() T, minSize, maxSize int) *Map[T] {
	return &Map[T]{newItem: newItem, minSize: minSize, maxSize: maxSize}
}

// Entry returns the element stored under key, creating it when missing.
// Creating an entry makes the map present.
func (m *Map[T]) Entry(key string) T {
	if it, ok := m.items[key]; ok {
		return it
	}
	it := m.newItem()
	m.Put(key, it)
	return it
}

func (m *Map[T]) Put(key string, v T) {
	if m.items == nil {
		m.items = make(map[string]T)
	}
	m.items[key] = v
	m.MarkInitialized()
}

func (m *Map[T]) Get(key string) (T, bool) {
	it, ok := m.items[key]
	return it, ok
}

func (m *Map[T]) Delete(key string) { delete(m.items, key) }

func (m *Map[T]) Len() int { return len(m.items) }

// Keys returns the keys in ascending order.
func (m *Map[T]) Keys() []string {
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Map[T]) MarkInitialized() {
	if m.state == stateUninitialized {
		m.valid()
	}
}

func (m *Map[T]) IsValid() bool {
	if !m.cellState.IsValid() || len(m.items) < m.minSize || len(m.items) > m.maxSize {
		return false
	}
	for _, it := range m.items {
		if !it.IsValid() {
			return false
		}
	}
	return true
}

func (m *Map[T]) Reset() {
	m.items = nil
	m.clear()
}

func (m *Map[T]) ReadJSON(node any) {
	m.items = nil
	obj, ok := node.(map[string]any)
	if !ok {
		m.invalid(CodeInvalidType)
		return
	}
	m.valid()
	m.items = make(map[string]T, len(obj))
	for k, e := range obj {
		it := m.newItem()
		it.ReadJSON(e)
		m.items[k] = it
	}
}

func (m *Map[T]) WriteJSON() any {
	out := make(map[string]any, len(m.items))
	for k, it := range m.items {
		out[k] = it.WriteJSON()
	}
	return out
}

func (m *Map[T]) Report(p PathRef, iss *Issues) {
	if m.state == stateInvalid {
		m.report(p, iss, nil)
		return
	}
	reportSize(p, iss, len(m.items), m.minSize, m.maxSize)
	for _, k := range m.Keys() {
		reportElement(p.Field(k), iss, m.items[k])
	}
}

func (m *Map[T]) JSONSchema() *js.Schema { return m.jsonSchema(map[reflect.Type]bool{}) }

func (m *Map[T]) jsonSchema(seen map[reflect.Type]bool) *js.Schema {
	return &js.Schema{Type: "object", AdditionalProperties: lazySchema(m.newItem, seen)}
}

func (m *Map[T]) walkPresence(base string, pm PresenceMap) {
	if !m.IsInitialized() {
		return
	}
	pm[base] |= PresenceSeen
	for k, it := range m.items {
		walkPresence(it, childPointer(base, k), pm)
	}
}

func reportSize(p PathRef, iss *Issues, n, minSize, maxSize int) {
	switch {
	case n < minSize:
		*iss = AppendIssues(*iss, p.Issue(CodeTooShort, map[string]any{"min": minSize}))
	case n > maxSize:
		*iss = AppendIssues(*iss, p.Issue(CodeTooLong, map[string]any{"max": maxSize}))
	}
}

// reportElement treats a never-written element as a missing value.
func reportElement(p PathRef, iss *Issues, v Value) {
	if !v.IsInitialized() {
		*iss = AppendIssues(*iss, p.Issue(CodeRequired, nil))
		return
	}
	v.Report(p, iss)
}
