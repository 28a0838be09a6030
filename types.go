package rpcbase

import js "github.com/reoring/rpcbase/jsonschema"

// Value is implemented by every bindable cell: scalars, enums, records,
// collections, and the presence wrappers stacked over them.
type Value interface {
	// IsInitialized reports whether a value or an explicit null was assigned,
	// either directly or by reading JSON.
	IsInitialized() bool
	// IsValid reports whether the cell is initialized and satisfies every
	// declared constraint, recursively.
	IsValid() bool
	// Reset returns the cell to its default-constructed state.
	Reset()
	// ReadJSON binds the cell from a decoded JSON tree node. Semantic failures
	// are recorded in the cell and surface through IsValid.
	ReadJSON(node any)
	// WriteJSON projects the cell into a JSON tree node.
	WriteJSON() any
	// Report appends the issues found under p.
	Report(p PathRef, iss *Issues)
	// JSONSchema projects the declared constraints into a JSON Schema.
	JSONSchema() *js.Schema
}

// Initializer is implemented by values that can be marked present without
// carrying content (records and collections).
type Initializer interface {
	MarkInitialized()
}

// valueState is the three-valued state shared by leaf cells.
type valueState uint8

const (
	stateUninitialized valueState = iota
	stateInvalid
	stateValid
)

// cellState carries the state plus the issue code explaining an invalid state.
type cellState struct {
	state valueState
	code  string
}

func (c *cellState) IsInitialized() bool { return c.state != stateUninitialized }

func (c *cellState) IsValid() bool { return c.state == stateValid }

func (c *cellState) valid() { c.state, c.code = stateValid, "" }

func (c *cellState) invalid(code string) { c.state, c.code = stateInvalid, code }

func (c *cellState) clear() { c.state, c.code = stateUninitialized, "" }

// report emits the issue for an invalid leaf.
func (c *cellState) report(p PathRef, iss *Issues, params map[string]any) {
	if c.state == stateInvalid {
		*iss = AppendIssues(*iss, p.Issue(c.code, params))
	}
}
