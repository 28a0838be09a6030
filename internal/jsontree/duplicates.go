package jsontree

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// dupFrame tracks one open container while scanning tokens.
type dupFrame struct {
	object    bool
	keys      map[string]struct{}
	expectKey bool
	seg       string // pointer segment of the child being read
	next      int    // next array index
}

// DuplicateKeys scans JSON text and returns the JSON Pointer of every object
// key that repeats an earlier key of the same object. Decode keeps the last
// occurrence silently, so callers that must reject such input check here
// first.
func DuplicateKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		dups  []string
		stack []dupFrame
	)
	begin := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if !top.object {
			top.seg = strconv.Itoa(top.next)
			top.next++
		}
	}
	end := func() {
		if len(stack) > 0 && stack[len(stack)-1].object {
			stack[len(stack)-1].expectKey = true
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return dups, io.ErrUnexpectedEOF
			}
			return dups, nil
		}
		if err != nil {
			return dups, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				begin()
				stack = append(stack, dupFrame{object: v == '{', keys: map[string]struct{}{}, expectKey: v == '{'})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				end()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectKey {
				top := &stack[n-1]
				top.seg = escape(v)
				if _, seen := top.keys[v]; seen {
					dups = append(dups, pointer(stack))
				}
				top.keys[v] = struct{}{}
				top.expectKey = false
				continue
			}
			begin()
			end()
		default:
			begin()
			end()
		}
	}
}

func pointer(stack []dupFrame) string {
	var b strings.Builder
	for _, f := range stack {
		b.WriteByte('/')
		b.WriteString(f.seg)
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
