package rpcbase

import (
	"reflect"
	"sort"

	js "github.com/reoring/rpcbase/jsonschema"
)

// Field names one presence-wrapped cell of a record.
type Field struct {
	Name string
	Cell FieldCell
}

// F is shorthand for Field{Name: name, Cell: cell}.
func F(name string, cell FieldCell) Field { return Field{Name: name, Cell: cell} }

// Struct is embedded by every record type. It aggregates the registered
// fields and derives initialization, validity, and emptiness from them on
// each query. A record must not be copied after Define, since the registered
// cells point into it.
type Struct struct {
	fields    []Field
	marked    bool
	malformed bool
}

// Define registers the record fields. Fields are kept in ascending name
// order, which is also the wire order.
func (s *Struct) Define(fields ...Field) {
	s.fields = append([]Field(nil), fields...)
	sort.Slice(s.fields, func(i, j int) bool { return s.fields[i].Name < s.fields[j].Name })
}

// Fields returns the registered fields in name order.
func (s *Struct) Fields() []Field { return append([]Field(nil), s.fields...) }

// MarkInitialized makes the record present even when no field is set.
func (s *Struct) MarkInitialized() { s.marked = true }

func (s *Struct) IsInitialized() bool {
	if s.marked {
		return true
	}
	for _, f := range s.fields {
		if f.Cell.IsInitialized() {
			return true
		}
	}
	return false
}

// IsValid requires the record to be initialized, every mandatory field to be
// valid, and every present optional field to be valid.
func (s *Struct) IsValid() bool {
	if s.isMalformed() || !s.IsInitialized() {
		return false
	}
	for _, f := range s.fields {
		if !f.Cell.IsValid() {
			return false
		}
	}
	return true
}

// IsEmpty reports whether every field is optional and unset. A record with
// any mandatory field is never empty; a record without fields always is.
func (s *Struct) IsEmpty() bool {
	for _, f := range s.fields {
		if f.Cell.isMandatory() || f.Cell.IsInitialized() {
			return false
		}
	}
	return true
}

func (s *Struct) Reset() {
	s.marked, s.malformed = false, false
	for _, f := range s.fields {
		f.Cell.Reset()
	}
}

// isMalformed reports whether the last JSON read received a non-object node
// and no field has been written since.
func (s *Struct) isMalformed() bool {
	if !s.malformed {
		return false
	}
	for _, f := range s.fields {
		if f.Cell.IsInitialized() {
			return false
		}
	}
	return true
}

// ReadJSON binds every declared field from an object node. Missing mandatory
// fields take their schema default when one is declared; unknown keys are
// ignored. The record is initialized afterwards even when the node is not an
// object or some field is invalid. A non-object node leaves every field unset.
func (s *Struct) ReadJSON(node any) {
	obj, ok := node.(map[string]any)
	s.marked, s.malformed = true, !ok
	if !ok {
		for _, f := range s.fields {
			f.Cell.Reset()
		}
		return
	}
	for _, f := range s.fields {
		raw, present := obj[f.Name]
		if !present {
			f.Cell.Reset()
			f.Cell.applyDefault()
			continue
		}
		f.Cell.ReadJSON(raw)
	}
}

// WriteJSON emits exactly the initialized fields.
func (s *Struct) WriteJSON() any {
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		if f.Cell.IsInitialized() {
			out[f.Name] = f.Cell.WriteJSON()
		}
	}
	return out
}

func (s *Struct) Report(p PathRef, iss *Issues) {
	if s.isMalformed() {
		*iss = AppendIssues(*iss, p.Issue(CodeInvalidType, nil))
		return
	}
	if !s.IsInitialized() {
		*iss = AppendIssues(*iss, p.Issue(CodeRequired, nil))
		return
	}
	for _, f := range s.fields {
		f.Cell.Report(p.Field(f.Name), iss)
	}
}

func (s *Struct) JSONSchema() *js.Schema { return s.jsonSchema(map[reflect.Type]bool{}) }

func (s *Struct) jsonSchema(seen map[reflect.Type]bool) *js.Schema {
	out := &js.Schema{Type: "object", Properties: make(map[string]*js.Schema, len(s.fields)), AdditionalProperties: true}
	for _, f := range s.fields {
		out.Properties[f.Name] = schemaOf(f.Cell, seen)
		if f.Cell.isMandatory() {
			out.Required = append(out.Required, f.Name)
		}
	}
	return out
}

func (s *Struct) walkPresence(base string, pm PresenceMap) {
	if !s.IsInitialized() {
		return
	}
	pm[base] |= PresenceSeen
	for _, f := range s.fields {
		walkPresence(f.Cell, childPointer(base, f.Name), pm)
	}
}
