package rpcbase

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeTooShort    = "too_short"
	CodeTooLong     = "too_long"
	CodeInvalidEnum = "invalid_enum"
	CodeOverflow    = "overflow"
	CodeParseError  = "parse_error"
	CodeDuplicate   = "duplicate_key"
)

// ErrUnknownMessageType is matched by UnknownTypeError via errors.Is.
var ErrUnknownMessageType = errors.New("rpcbase: unknown message type")

// UnknownTypeError reports a factory lookup for an unregistered function id.
type UnknownTypeError struct {
	ID FunctionID
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("rpcbase: unknown message type for function id %d", e.ID)
}

func (e *UnknownTypeError) Is(target error) bool { return target == ErrUnknownMessageType }

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /messageData/0).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"min":0, "max":255})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. overflow at /messageData/0
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Validate walks v and returns every violation that makes it invalid, in
// field-name order. It returns nil for a valid value.
func Validate(v Value) Issues {
	var iss Issues
	v.Report(Root(), &iss)
	if len(iss) == 0 {
		return nil
	}
	return iss
}
