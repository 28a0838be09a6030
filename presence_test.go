package rpcbase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/rpcbase"
)

func TestCollectPresence(t *testing.T) {
	s := newShape()
	assert.Empty(t, rpcbase.CollectPresence(s))

	require.NoError(t, rpcbase.Unmarshal([]byte(`{"origin":{"x":1,"y":2},"path":[{"x":5}]}`), s))
	pm := rpcbase.CollectPresence(s)
	assert.Equal(t, []string{"/", "/origin", "/origin/x", "/origin/y", "/path", "/path/0", "/path/0/x"}, pm.Paths())
	for _, p := range pm.Paths() {
		assert.Equal(t, rpcbase.PresenceSeen, pm[p], p)
	}
}

func TestCollectPresence_NullAndDefault(t *testing.T) {
	s := newSettings()
	require.NoError(t, rpcbase.Unmarshal([]byte(`{"limit":null}`), s))
	pm := rpcbase.CollectPresence(s)
	assert.Equal(t, rpcbase.PresenceSeen|rpcbase.PresenceWasNull, pm["/limit"])
	assert.Equal(t, rpcbase.PresenceDefaultApplied, pm["/level"])
	assert.Equal(t, rpcbase.PresenceSeen, pm["/"])
}
