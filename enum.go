package rpcbase

import (
	"sort"

	js "github.com/reoring/rpcbase/jsonschema"
)

// EnumDef declares the members of an enumeration and their wire names.
// It is built once per schema enum and shared by every cell of that type.
type EnumDef[E comparable] struct {
	name     string
	toName   map[E]string
	fromName map[string]E
	names    []string
}

// NewEnumDef builds the member table for the enumeration called name.
func NewEnumDef[E comparable](name string, members map[E]string) *EnumDef[E] {
	d := &EnumDef[E]{
		name:     name,
		toName:   make(map[E]string, len(members)),
		fromName: make(map[string]E, len(members)),
		names:    make([]string, 0, len(members)),
	}
	for e, s := range members {
		d.toName[e] = s
		d.fromName[s] = e
		d.names = append(d.names, s)
	}
	sort.Strings(d.names)
	return d
}

// TypeName is the schema name of the enumeration.
func (d *EnumDef[E]) TypeName() string { return d.name }

// String returns the wire name of e and whether e is a declared member.
func (d *EnumDef[E]) String(e E) (string, bool) {
	s, ok := d.toName[e]
	return s, ok
}

// Parse resolves a wire name to its member.
func (d *EnumDef[E]) Parse(s string) (E, bool) {
	e, ok := d.fromName[s]
	return e, ok
}

// Names returns the wire names in ascending order.
func (d *EnumDef[E]) Names() []string { return append([]string(nil), d.names...) }

// Enum is a cell holding one member of an enumeration. Values outside the
// declared member set leave the cell initialized but invalid.
type Enum[E comparable] struct {
	cellState
	def   *EnumDef[E]
	value E
}

func NewEnum[E comparable](def *EnumDef[E]) *Enum[E] { return &Enum[E]{def: def} }

func (e *Enum[E]) Set(v E) {
	e.value = v
	if _, ok := e.def.toName[v]; ok {
		e.valid()
	} else {
		e.invalid(CodeInvalidEnum)
	}
}

func (e *Enum[E]) Get() E { return e.value }

func (e *Enum[E]) Def() *EnumDef[E] { return e.def }

func (e *Enum[E]) Reset() {
	var zero E
	e.value = zero
	e.clear()
}

func (e *Enum[E]) ReadJSON(node any) {
	var zero E
	s, ok := node.(string)
	if !ok {
		e.value = zero
		e.invalid(CodeInvalidType)
		return
	}
	v, ok := e.def.Parse(s)
	if !ok {
		e.value = zero
		e.invalid(CodeInvalidEnum)
		return
	}
	e.Set(v)
}

// WriteJSON emits the member name, or "" for a value outside the member set.
func (e *Enum[E]) WriteJSON() any {
	s, _ := e.def.String(e.value)
	return s
}

func (e *Enum[E]) Report(p PathRef, iss *Issues) {
	e.report(p, iss, map[string]any{"enum": e.def.name})
}

func (e *Enum[E]) JSONSchema() *js.Schema {
	vals := make([]any, 0, len(e.def.names))
	for _, n := range e.def.names {
		vals = append(vals, n)
	}
	return &js.Schema{Type: "string", Title: e.def.name, Enum: vals}
}
