package rpcbase

import (
	"reflect"

	js "github.com/reoring/rpcbase/jsonschema"
)

// schemaWalker is implemented by cells whose schema is built from child
// cells. seen holds the lazily built cell types currently being exported.
type schemaWalker interface {
	jsonSchema(seen map[reflect.Type]bool) *js.Schema
}

func schemaOf(v Value, seen map[reflect.Type]bool) *js.Schema {
	if w, ok := v.(schemaWalker); ok {
		return w.jsonSchema(seen)
	}
	return v.JSONSchema()
}

// lazySchema exports the schema of a cell built on demand by alloc. A cell
// type already being expanded further up the tree yields an unconstrained
// schema titled with the type, so recursive records stay finite.
func lazySchema[T Value](alloc func() T, seen map[reflect.Type]bool) *js.Schema {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if seen[t] {
		return &js.Schema{Title: t.String()}
	}
	seen[t] = true
	defer delete(seen, t)
	return schemaOf(alloc(), seen)
}
