package rpcbase

import (
	"math"
	"math/big"
	"strconv"
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	js "github.com/reoring/rpcbase/jsonschema"
)

// Integer is an integral cell of width T restricted to [min, max]. Input that
// does not fit T at all is recorded as an overflow, even when the JSON number
// itself parses as a wider type.
type Integer[T constraints.Integer] struct {
	cellState
	value    T
	min, max T
}

// NewInteger returns an uninitialized Integer accepting values in [min, max].
func NewInteger[T constraints.Integer](min, max T) *Integer[T] {
	return &Integer[T]{min: min, max: max}
}

// Set stores v; out-of-range values leave the cell initialized but invalid.
func (i *Integer[T]) Set(v T) {
	i.value = v
	switch {
	case v < i.min:
		i.invalid(CodeTooSmall)
	case v > i.max:
		i.invalid(CodeTooBig)
	default:
		i.valid()
	}
}

func (i *Integer[T]) Get() T { return i.value }

// Bounds returns the declared [min, max].
func (i *Integer[T]) Bounds() (T, T) { return i.min, i.max }

func (i *Integer[T]) Reset() {
	var zero T
	i.value = zero
	i.clear()
}

func (i *Integer[T]) ReadJSON(node any) {
	var zero T
	text, ok := numberText(node)
	if !ok {
		i.value = zero
		i.invalid(CodeInvalidType)
		return
	}
	v, code := parseIntegral[T](text)
	if code != "" {
		i.value = zero
		i.invalid(code)
		return
	}
	i.Set(v)
}

func (i *Integer[T]) WriteJSON() any { return formatIntegral(i.value) }

func (i *Integer[T]) Report(p PathRef, iss *Issues) {
	i.report(p, iss, map[string]any{"min": i.min, "max": i.max})
}

func (i *Integer[T]) JSONSchema() *js.Schema {
	return &js.Schema{Type: "integer", Minimum: i.min, Maximum: i.max}
}

// parseIntegral converts JSON number text into T. It returns a non-empty
// issue code when the text is not integral or does not fit T.
func parseIntegral[T constraints.Integer](text string) (T, string) {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return narrowInt[T](n)
	}
	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return narrowUint[T](u)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !isRangeErr(err) {
		return 0, CodeInvalidType
	}
	// far outside any 64-bit width; skip the exact conversion
	if math.IsInf(f, 0) || math.Abs(f) > 1<<65 {
		return 0, CodeOverflow
	}
	// integral literal written with a fraction or exponent, e.g. 2.0 or 1e3.
	// The decimal text is converted exactly so 1.0000000000000001 or
	// 9007199254740993.0 are not rounded into range.
	r, ok := new(big.Rat).SetString(text)
	if !ok || !r.IsInt() {
		return 0, CodeInvalidType
	}
	switch n := r.Num(); {
	case n.IsInt64():
		return narrowInt[T](n.Int64())
	case n.IsUint64():
		return narrowUint[T](n.Uint64())
	default:
		return 0, CodeOverflow
	}
}

func narrowInt[T constraints.Integer](n int64) (T, string) {
	t := T(n)
	if int64(t) != n || (t < 0) != (n < 0) {
		return 0, CodeOverflow
	}
	return t, ""
}

func narrowUint[T constraints.Integer](u uint64) (T, string) {
	t := T(u)
	if t < 0 || uint64(t) != u {
		return 0, CodeOverflow
	}
	return t, ""
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

func formatIntegral[T constraints.Integer](v T) Number {
	if v < 0 {
		return Number(strconv.FormatInt(int64(v), 10))
	}
	return Number(strconv.FormatUint(uint64(v), 10))
}

// Float is a floating point cell restricted to [min, max]. It always encodes
// with a decimal point or exponent so the wire keeps its floating type.
type Float struct {
	cellState
	value    float64
	min, max float64
}

// NewFloat returns an uninitialized Float accepting values in [min, max].
// Use math.Inf for an open bound.
func NewFloat(min, max float64) *Float { return &Float{min: min, max: max} }

func (f *Float) Set(v float64) {
	f.value = v
	switch {
	case math.IsNaN(v):
		f.invalid(CodeInvalidType)
	case v < f.min:
		f.invalid(CodeTooSmall)
	case v > f.max:
		f.invalid(CodeTooBig)
	default:
		f.valid()
	}
}

func (f *Float) Get() float64 { return f.value }

func (f *Float) Bounds() (float64, float64) { return f.min, f.max }

func (f *Float) Reset() {
	f.value = 0
	f.clear()
}

func (f *Float) ReadJSON(node any) {
	text, ok := numberText(node)
	if !ok {
		f.value = 0
		f.invalid(CodeInvalidType)
		return
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		f.value = 0
		if isRangeErr(err) {
			f.invalid(CodeOverflow)
		} else {
			f.invalid(CodeInvalidType)
		}
		return
	}
	f.Set(v)
}

func (f *Float) WriteJSON() any { return formatFloat(f.value) }

func (f *Float) Report(p PathRef, iss *Issues) {
	f.report(p, iss, map[string]any{"min": f.min, "max": f.max})
}

func (f *Float) JSONSchema() *js.Schema {
	s := &js.Schema{Type: "number"}
	if !math.IsInf(f.min, 0) {
		s.Minimum = f.min
	}
	if !math.IsInf(f.max, 0) {
		s.Maximum = f.max
	}
	return s
}

func formatFloat(v float64) Number {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		// not representable in JSON; the cell is already invalid
		return Number("0.0")
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'e' {
			return Number(s)
		}
	}
	return Number(s + ".0")
}

// Boolean is a true/false cell.
type Boolean struct {
	cellState
	value bool
}

func NewBoolean() *Boolean { return &Boolean{} }

func (b *Boolean) Set(v bool) {
	b.value = v
	b.valid()
}

func (b *Boolean) Get() bool { return b.value }

func (b *Boolean) Reset() {
	b.value = false
	b.clear()
}

func (b *Boolean) ReadJSON(node any) {
	v, ok := node.(bool)
	if !ok {
		b.value = false
		b.invalid(CodeInvalidType)
		return
	}
	b.Set(v)
}

func (b *Boolean) WriteJSON() any { return b.value }

func (b *Boolean) Report(p PathRef, iss *Issues) { b.report(p, iss, nil) }

func (b *Boolean) JSONSchema() *js.Schema { return &js.Schema{Type: "boolean"} }

// String is a text cell whose length, counted in runes, is restricted to
// [minLen, maxLen].
type String struct {
	cellState
	value          string
	minLen, maxLen int
}

func NewString(minLen, maxLen int) *String { return &String{minLen: minLen, maxLen: maxLen} }

func (s *String) Set(v string) {
	s.value = v
	n := utf8.RuneCountInString(v)
	switch {
	case n < s.minLen:
		s.invalid(CodeTooShort)
	case n > s.maxLen:
		s.invalid(CodeTooLong)
	default:
		s.valid()
	}
}

func (s *String) Get() string { return s.value }

func (s *String) Bounds() (int, int) { return s.minLen, s.maxLen }

func (s *String) Reset() {
	s.value = ""
	s.clear()
}

func (s *String) ReadJSON(node any) {
	v, ok := node.(string)
	if !ok {
		s.value = ""
		s.invalid(CodeInvalidType)
		return
	}
	s.Set(v)
}

func (s *String) WriteJSON() any { return s.value }

func (s *String) Report(p PathRef, iss *Issues) {
	s.report(p, iss, map[string]any{"min": s.minLen, "max": s.maxLen})
}

func (s *String) JSONSchema() *js.Schema {
	minLen, maxLen := s.minLen, s.maxLen
	return &js.Schema{Type: "string", MinLength: &minLen, MaxLength: &maxLen}
}
