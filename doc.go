package rpcbase

// Package rpcbase provides:
//
// - Bindable cells for RPC message parameters (Integer/Float/Boolean/String/Enum, Array, Map, Struct)
// - Presence wrappers that stack orthogonally: Mandatory, Optional, Nullable
// - Lazily derived IsInitialized/IsValid/IsEmpty predicates ("initialized but invalid" is a distinct state)
// - A canonical JSON codec (sorted keys, trailing newline) over the same cells
// - A function-id keyed Registry for polymorphic message construction
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Schema data (enums, structs, messages, handler interfaces) lives in per-interface
//   packages under interfaces/, written the way a schema compiler would emit it.
// - Semantic invalidity is advisory: it never aborts construction or encoding.
//
// Typical usage:
//
//	m := request.NewAddSubMenu()
//	if err := rpcbase.Unmarshal(data, m); err != nil {
//	    return err // malformed JSON text
//	}
//	if !m.IsValid() {
//	    iss := rpcbase.Validate(m) // paths and codes of every violation
//	}
//	wire, err := rpcbase.Marshal(m)
//
// Record types embed Struct and register their presence-wrapped fields:
//
//	type Choice struct {
//	    rpcbase.Struct
//	    ChoiceID rpcbase.Mandatory[*rpcbase.Integer[int32]]
//	    MenuName rpcbase.Mandatory[*rpcbase.String]
//	}
//
//	func NewChoice() *Choice {
//	    s := &Choice{
//	        ChoiceID: rpcbase.MandatoryOf(rpcbase.NewInteger[int32](0, 65535)),
//	        MenuName: rpcbase.MandatoryOf(rpcbase.NewString(0, 500)),
//	    }
//	    s.Define(
//	        rpcbase.F("choiceID", &s.ChoiceID),
//	        rpcbase.F("menuName", &s.MenuName),
//	    )
//	    return s
//	}
//
// Instances are exclusively owned by their caller; an instance must not be
// mutated concurrently with any read of the same instance.
