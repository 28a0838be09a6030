package rpcbase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/rpcbase/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code string, params map[string]any) Issue
}

// Root returns the PathRef of the document root ("/").
func Root() PathRef { return &pathRef{parts: nil} }

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p *pathRef) Issue(code string, params map[string]any) Issue {
	var data map[string]string
	if len(params) > 0 {
		data = make(map[string]string, len(params))
		for k, v := range params {
			data[k] = fmt.Sprint(v)
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, data), Params: params}
}
