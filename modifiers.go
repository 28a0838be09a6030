package rpcbase

import (
	"reflect"

	js "github.com/reoring/rpcbase/jsonschema"
)

// FieldCell is a presence-wrapped cell registered as a record field. Only
// Mandatory and Optional implement it.
type FieldCell interface {
	Value
	isMandatory() bool
	// applyDefault populates the schema default for a key missing from JSON
	// input and reports whether one was declared.
	applyDefault() bool
}

// Mandatory wraps a cell that must be initialized for its owner to be valid.
// It may carry a schema default, expressed as a JSON tree node, that is
// applied when the key is missing from JSON input.
type Mandatory[T Value] struct {
	value     T
	def       any
	hasDef    bool
	defaulted bool
}

// MandatoryOf wraps v. The result is meant to be stored in a record field and
// registered through Define.
func MandatoryOf[T Value](v T) Mandatory[T] { return Mandatory[T]{value: v} }

// WithDefault declares the schema default, e.g. Number("1000").
func (m Mandatory[T]) WithDefault(node any) Mandatory[T] {
	m.def, m.hasDef = node, true
	return m
}

func (m *Mandatory[T]) Get() T { return m.value }

// HasDefault reports whether a schema default was declared.
func (m *Mandatory[T]) HasDefault() bool { return m.hasDef }

// DefaultApplied reports whether the last JSON read filled the cell from the
// schema default.
func (m *Mandatory[T]) DefaultApplied() bool { return m.defaulted }

func (m *Mandatory[T]) IsInitialized() bool { return m.value.IsInitialized() }

func (m *Mandatory[T]) IsValid() bool { return m.value.IsValid() }

func (m *Mandatory[T]) Reset() {
	m.value.Reset()
	m.defaulted = false
}

func (m *Mandatory[T]) ReadJSON(node any) {
	m.defaulted = false
	m.value.ReadJSON(node)
}

func (m *Mandatory[T]) WriteJSON() any { return m.value.WriteJSON() }

func (m *Mandatory[T]) Report(p PathRef, iss *Issues) {
	if !m.value.IsInitialized() {
		*iss = AppendIssues(*iss, p.Issue(CodeRequired, nil))
		return
	}
	m.value.Report(p, iss)
}

func (m *Mandatory[T]) JSONSchema() *js.Schema { return m.jsonSchema(map[reflect.Type]bool{}) }

func (m *Mandatory[T]) jsonSchema(seen map[reflect.Type]bool) *js.Schema {
	s := schemaOf(m.value, seen)
	if m.hasDef {
		s.Default = m.def
	}
	return s
}

func (m *Mandatory[T]) isMandatory() bool { return true }

func (m *Mandatory[T]) applyDefault() bool {
	if !m.hasDef {
		return false
	}
	m.value.Reset()
	m.value.ReadJSON(m.def)
	m.defaulted = true
	return true
}

func (m *Mandatory[T]) walkPresence(base string, pm PresenceMap) {
	if m.defaulted {
		pm[base] |= PresenceDefaultApplied
		return
	}
	walkPresence(m.value, base, pm)
}

// Optional wraps a cell whose absence is itself valid. The inner cell is
// allocated on first Get, so recursive record types stay finite.
type Optional[T Value] struct {
	value     T
	alloc     func() T
	allocated bool
}

// OptionalOf declares an optional field whose cell is built by alloc.
func OptionalOf[T Value](alloc func() T) Optional[T] { return Optional[T]{alloc: alloc} }

// Get returns the inner cell, allocating it when needed. Writing through the
// returned cell makes the field present.
func (o *Optional[T]) Get() T {
	if !o.allocated {
		o.value = o.alloc()
		o.allocated = true
	}
	return o.value
}

// Peek returns the inner cell and whether it is initialized, without
// allocating.
func (o *Optional[T]) Peek() (T, bool) { return o.value, o.IsInitialized() }

func (o *Optional[T]) IsInitialized() bool { return o.allocated && o.value.IsInitialized() }

func (o *Optional[T]) IsValid() bool { return !o.IsInitialized() || o.value.IsValid() }

func (o *Optional[T]) Reset() {
	if o.allocated {
		o.value.Reset()
	}
}

func (o *Optional[T]) ReadJSON(node any) { o.Get().ReadJSON(node) }

func (o *Optional[T]) WriteJSON() any {
	if !o.allocated {
		return nil
	}
	return o.value.WriteJSON()
}

func (o *Optional[T]) Report(p PathRef, iss *Issues) {
	if o.IsInitialized() {
		o.value.Report(p, iss)
	}
}

func (o *Optional[T]) JSONSchema() *js.Schema { return o.jsonSchema(map[reflect.Type]bool{}) }

func (o *Optional[T]) jsonSchema(seen map[reflect.Type]bool) *js.Schema {
	return lazySchema(o.alloc, seen)
}

func (o *Optional[T]) isMandatory() bool { return false }

func (o *Optional[T]) applyDefault() bool { return false }

func (o *Optional[T]) walkPresence(base string, pm PresenceMap) {
	if o.IsInitialized() {
		walkPresence(o.value, base, pm)
	}
}

// Nullable adds an explicit wire-level null to a cell. Once nulled the cell is
// initialized and valid regardless of the inner constraints; writing the inner
// cell afterwards clears the null. Nullable is not an Initializer: mark a
// record or collection present through Get().MarkInitialized().
type Nullable[T Value] struct {
	value T
	null  bool
}

// NullableOf wraps v.
func NullableOf[T Value](v T) *Nullable[T] { return &Nullable[T]{value: v} }

// SetToNull discards the inner content and marks the cell as explicit null.
func (n *Nullable[T]) SetToNull() {
	n.value.Reset()
	n.null = true
}

func (n *Nullable[T]) IsNull() bool { return n.null && !n.value.IsInitialized() }

func (n *Nullable[T]) Get() T { return n.value }

func (n *Nullable[T]) IsInitialized() bool { return n.IsNull() || n.value.IsInitialized() }

func (n *Nullable[T]) IsValid() bool { return n.IsNull() || n.value.IsValid() }

func (n *Nullable[T]) Reset() {
	n.value.Reset()
	n.null = false
}

func (n *Nullable[T]) ReadJSON(node any) {
	if node == nil {
		n.SetToNull()
		return
	}
	n.null = false
	n.value.ReadJSON(node)
}

func (n *Nullable[T]) WriteJSON() any {
	if n.IsNull() {
		return nil
	}
	return n.value.WriteJSON()
}

func (n *Nullable[T]) Report(p PathRef, iss *Issues) {
	if n.IsNull() {
		return
	}
	n.value.Report(p, iss)
}

func (n *Nullable[T]) JSONSchema() *js.Schema { return n.jsonSchema(map[reflect.Type]bool{}) }

func (n *Nullable[T]) jsonSchema(seen map[reflect.Type]bool) *js.Schema {
	s := schemaOf(n.value, seen)
	s.Nullable = true
	return s
}

func (n *Nullable[T]) walkPresence(base string, pm PresenceMap) {
	if n.IsNull() {
		pm[base] |= PresenceSeen | PresenceWasNull
		return
	}
	walkPresence(n.value, base, pm)
}
