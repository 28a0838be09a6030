package jsontree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_KeepsNumberText(t *testing.T) {
	v, err := Decode([]byte(`{"a":123456789123,"b":2.50,"c":[null,true,"x"]}`))
	require.NoError(t, err)

	obj, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("123456789123"), obj["a"])
	assert.Equal(t, json.Number("2.50"), obj["b"])
	assert.Equal(t, []any{nil, true, "x"}, obj["c"])
}

func TestDecode_RejectsTrailingData(t *testing.T) {
	_, err := Decode([]byte(`{} {}`))
	assert.ErrorIs(t, err, ErrTrailingData)

	_, err = Decode([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestEncode_SortedCompactWithNewline(t *testing.T) {
	out, err := Encode(map[string]any{
		"zeta":  json.Number("1"),
		"alpha": map[string]any{"y": nil, "x": "<&>"},
		"mid":   []any{},
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"alpha\":{\"x\":\"<&>\",\"y\":null},\"mid\":[],\"zeta\":1}\n", string(out))
}

func TestDecodeYAML_Normalizes(t *testing.T) {
	v, err := DecodeYAML([]byte("menuID: 2\nmenuName: Hello\nratio: 0.5\nflags: [true, null]\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"menuID":   json.Number("2"),
		"menuName": "Hello",
		"ratio":    json.Number("0.5"),
		"flags":    []any{true, nil},
	}, v)
}

func TestDuplicateKeys(t *testing.T) {
	dups, err := DuplicateKeys([]byte(`{"a":1,"b":{"x":[1,{"k":1,"k":2}],"x":null},"a/b":0,"a":[]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"/b/x/1/k", "/b/x", "/a"}, dups)

	dups, err = DuplicateKeys([]byte(`[{"a":1},{"a":1}]`))
	require.NoError(t, err)
	assert.Empty(t, dups)

	_, err = DuplicateKeys([]byte(`{"a":`))
	assert.Error(t, err)
}
