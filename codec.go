package rpcbase

import (
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reoring/rpcbase/i18n"
	"github.com/reoring/rpcbase/internal/jsontree"
)

// Number is the JSON tree representation of a number literal.
type Number = json.Number

// Marshal encodes v canonically: compact JSON, object keys in ascending
// order, uninitialized optional fields omitted, terminated by "\n". Invalid
// values are encoded as far as they are initialized.
func Marshal(v Value) ([]byte, error) { return jsontree.Encode(v.WriteJSON()) }

// Unmarshal parses data and binds it into v. Only malformed JSON text is
// reported as an error (as Issues with CodeParseError); semantic problems
// surface through v.IsValid.
func Unmarshal(data []byte, v Value) error {
	node, err := ParseJSON(data)
	if err != nil {
		return err
	}
	v.ReadJSON(node)
	return nil
}

// ParseJSON decodes JSON text into a tree of map[string]any, []any, Number,
// string, bool, and nil.
func ParseJSON(data []byte) (any, error) {
	node, err := jsontree.Decode(data)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error()}}
	}
	return node, nil
}

// EncodeTree writes a JSON tree in canonical form.
func EncodeTree(node any) ([]byte, error) { return jsontree.Encode(node) }

// numberText extracts the literal text of a number node. Trees built by hand
// may carry Go numeric types instead of Number.
func numberText(node any) (string, bool) {
	switch n := node.(type) {
	case Number:
		return string(n), true
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64), true
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	default:
		return "", false
	}
}

// CheckDuplicateKeys reports every object key repeated within the same object
// of data as a CodeDuplicate issue. ParseJSON keeps the last occurrence, so
// hosts that must reject ambiguous input call this first. Malformed text is
// reported as a single CodeParseError issue.
func CheckDuplicateKeys(data []byte) Issues {
	dups, err := jsontree.DuplicateKeys(data)
	var iss Issues
	for _, p := range dups {
		iss = AppendIssues(iss, Issue{Path: p, Code: CodeDuplicate, Message: i18n.T(CodeDuplicate, nil)})
	}
	if err != nil {
		iss = AppendIssues(iss, Issue{Path: "/", Code: CodeParseError, Message: err.Error()})
	}
	return iss
}
