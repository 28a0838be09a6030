package rpcbase

import (
	"fmt"
	"sort"
)

// FunctionID is the numeric identifier of an RPC function in an interface.
type FunctionID int32

// MessageKind distinguishes requests, which expect a correlated reply, from
// notifications, which do not.
type MessageKind uint8

const (
	KindRequest MessageKind = iota
	KindNotification
)

func (k MessageKind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNotification:
		return "notification"
	default:
		return fmt.Sprintf("MessageKind(%d)", uint8(k))
	}
}

// Message is a record bound to a function of an RPC interface. Its identity is
// fixed by its concrete type.
type Message interface {
	Value
	Initializer
	FunctionID() FunctionID
	Kind() MessageKind
}

type registration[M Message] struct {
	name string
	ctor func() M
}

// Registry maps function ids to the constructors of one message family
// (for example every request of an interface). M is the family's interface
// type, which usually adds a HandleWith method over its handler capability.
type Registry[M Message] struct {
	kind   MessageKind
	byID   map[FunctionID]registration[M]
	byName map[string]FunctionID
}

func NewRegistry[M Message](kind MessageKind) *Registry[M] {
	return &Registry[M]{
		kind:   kind,
		byID:   make(map[FunctionID]registration[M]),
		byName: make(map[string]FunctionID),
	}
}

// Register binds id and name to ctor. Registering an id or name twice is a
// programming error and panics.
func (r *Registry[M]) Register(id FunctionID, name string, ctor func() M) {
	if _, dup := r.byID[id]; dup {
		panic(fmt.Sprintf("rpcbase: function id %d registered twice", id))
	}
	if _, dup := r.byName[name]; dup {
		panic(fmt.Sprintf("rpcbase: function %q registered twice", name))
	}
	r.byID[id] = registration[M]{name: name, ctor: ctor}
	r.byName[name] = id
}

func (r *Registry[M]) Kind() MessageKind { return r.kind }

// New returns a default-constructed message for id.
func (r *Registry[M]) New(id FunctionID) (M, error) {
	reg, ok := r.byID[id]
	if !ok {
		var zero M
		return zero, &UnknownTypeError{ID: id}
	}
	return reg.ctor(), nil
}

// NewFromJSON constructs the message registered for id and binds it from the
// JSON tree node. Semantic problems are left for IsValid; only an unknown id
// is an error.
func (r *Registry[M]) NewFromJSON(node any, id FunctionID) (M, error) {
	m, err := r.New(id)
	if err != nil {
		return m, err
	}
	m.ReadJSON(node)
	return m, nil
}

// Decode parses JSON text and constructs the message registered for id.
func (r *Registry[M]) Decode(data []byte, id FunctionID) (M, error) {
	if _, ok := r.byID[id]; !ok {
		var zero M
		return zero, &UnknownTypeError{ID: id}
	}
	node, err := ParseJSON(data)
	if err != nil {
		var zero M
		return zero, err
	}
	return r.NewFromJSON(node, id)
}

// Lookup resolves a function name.
func (r *Registry[M]) Lookup(name string) (FunctionID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Name returns the function name registered for id.
func (r *Registry[M]) Name(id FunctionID) (string, bool) {
	reg, ok := r.byID[id]
	return reg.name, ok
}

// IDs returns the registered ids in ascending order.
func (r *Registry[M]) IDs() []FunctionID {
	ids := make([]FunctionID, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
