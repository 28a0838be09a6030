package rpcbase

import (
	"sort"
	"strconv"
	"strings"
)

// Presence is the bit flag collected for each initialized path.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Cell holds a value or an explicit null.
	PresenceWasNull                             // Cell is an explicit null.
	PresenceDefaultApplied                      // Schema default filled a key missing from input.
)

// PresenceMap maps JSON Pointers to Presence flags.
type PresenceMap map[string]Presence

// Paths returns the recorded pointers in ascending order.
func (pm PresenceMap) Paths() []string {
	out := make([]string, 0, len(pm))
	for k := range pm {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// presenceWalker is implemented by cells with children or presence bits of
// their own.
type presenceWalker interface {
	walkPresence(base string, pm PresenceMap)
}

// CollectPresence walks v and records, for every initialized path, whether it
// was seen, nulled, or filled from a schema default. The root is recorded as
// "/" when v is initialized.
func CollectPresence(v Value) PresenceMap {
	pm := make(PresenceMap)
	if !v.IsInitialized() {
		return pm
	}
	walkPresence(v, "", pm)
	if _, ok := pm[""]; ok {
		pm["/"] = pm[""]
		delete(pm, "")
	}
	return pm
}

func walkPresence(v Value, base string, pm PresenceMap) {
	if w, ok := v.(presenceWalker); ok {
		w.walkPresence(base, pm)
		return
	}
	if v.IsInitialized() {
		pm[base] |= PresenceSeen
	}
}

func childPointer(base, key string) string {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	return base + "/" + strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
}

func indexPointer(base string, i int) string { return base + "/" + strconv.Itoa(i) }
