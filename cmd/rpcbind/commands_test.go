package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/rpcbase"
	"github.com/reoring/rpcbase/dispatch"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RPCBIND_LOG_LEVEL", "error")
	inputYAML, strictKeys = false, false
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "7\trequest\tAddSubMenu\n"+
		"37\trequest\tDiagnosticMessage\n"+
		"32769\tnotification\tOnAppInterfaceUnregistered\n"+
		"32779\tnotification\tOnAudioPassThru\n", out)
}

func TestEncode_AppliesDefault(t *testing.T) {
	out, err := run(t, `{"menuName":"Hello","menuID":2}`, "encode", "AddSubMenu")
	require.NoError(t, err)
	assert.Equal(t, `{"menuID":2,"menuName":"Hello","position":1000}`+"\n", out)
}

func TestEncode_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reason: MASTER_RESET\n"), 0o644))
	out, err := run(t, "", "encode", "32769", path)
	require.NoError(t, err)
	assert.Equal(t, `{"reason":"MASTER_RESET"}`+"\n", out)
}

func TestCheck_RejectsInvalid(t *testing.T) {
	out, err := run(t, `{"messageData":[300,20],"messageLength":2,"targetID":5}`, "check", "DiagnosticMessage")
	require.Error(t, err)
	assert.ErrorIs(t, err, dispatch.ErrInvalidMessage)
	assert.Contains(t, out, `"Code":"overflow"`)
	assert.Contains(t, out, `"Path":"/messageData/0"`)
}

func TestCheck_Valid(t *testing.T) {
	out, err := run(t, `{"messageData":[1],"messageLength":1,"targetID":5}`, "check", "37")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheck_UnknownFunction(t *testing.T) {
	_, err := run(t, `{}`, "check", "Nope")
	assert.ErrorIs(t, err, rpcbase.ErrUnknownMessageType)
	_, err = run(t, `{}`, "check", "99")
	assert.ErrorIs(t, err, rpcbase.ErrUnknownMessageType)
}

func TestPresence(t *testing.T) {
	out, err := run(t, `{"menuID":2,"menuName":"Hello"}`, "presence", "AddSubMenu")
	require.NoError(t, err)
	assert.Equal(t, "/\tseen\n/menuID\tseen\n/menuName\tseen\n/position\tdefault\n", out)
}

func TestSchema(t *testing.T) {
	out, err := run(t, "", "schema", "AddSubMenu")
	require.NoError(t, err)
	assert.Contains(t, out, `"title":"AddSubMenu"`)
	assert.Contains(t, out, `"required":["menuID","menuName","position"]`)
	assert.Contains(t, out, `"default":1000`)
}

func TestCheck_StrictKeys(t *testing.T) {
	in := `{"menuID":2,"menuID":3,"menuName":"Hello"}`
	_, err := run(t, in, "check", "AddSubMenu")
	require.NoError(t, err)

	out, err := run(t, in, "check", "--strict-keys", "AddSubMenu")
	require.Error(t, err)
	assert.Contains(t, out, `"Code":"duplicate_key"`)
	assert.Contains(t, out, `"Path":"/menuID"`)
}
