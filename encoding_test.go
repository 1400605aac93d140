package xlist_test

import (
	"encoding/json"
	"testing"

	"deedles.dev/xlist"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func TestJSON(t *testing.T) {
	l := xlist.FromSlice([]int{1, 2, 3})
	data, err := json.Marshal(l)
	require.NoError(t, err)
	require.JSONEq(t, `[1, 2, 3]`, string(data))

	data, err = json.Marshal(xlist.New[int]())
	require.NoError(t, err)
	require.Equal(t, `[]`, string(data))

	out := xlist.FromSlice([]int{9, 9})
	require.NoError(t, json.Unmarshal([]byte(`[4, 5]`), out))
	require.Equal(t, []int{4, 5}, out.Slice())

	require.NoError(t, out.UnmarshalJSON([]byte(`null`)))
	require.True(t, out.Empty())
}

func TestJSONField(t *testing.T) {
	type doc struct {
		Items *xlist.LinkedList[string] `json:"items"`
	}

	data, err := json.Marshal(doc{Items: xlist.FromSlice([]string{"a", "b"})})
	require.NoError(t, err)
	require.JSONEq(t, `{"items": ["a", "b"]}`, string(data))

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, []string{"a", "b"}, out.Items.Slice())
}

func TestJSONError(t *testing.T) {
	l := xlist.FromSlice([]int{1, 2})
	err := json.Unmarshal([]byte(`[1, "two"]`), l)
	require.Error(t, err)
	require.Equal(t, []int{1, 2}, l.Slice())
}

func TestYAML(t *testing.T) {
	l := xlist.FromSlice([]int{1, 2, 3})
	data, err := yaml.Marshal(l)
	require.NoError(t, err)
	require.Equal(t, "- 1\n- 2\n- 3\n", string(data))

	out := xlist.FromSlice([]int{9})
	require.NoError(t, yaml.Unmarshal(data, out))
	require.True(t, xlist.Equal(l, out))

	require.NoError(t, yaml.Unmarshal([]byte(`[]`), out))
	require.True(t, out.Empty())
}

func TestYAMLError(t *testing.T) {
	l := xlist.FromSlice([]int{1, 2})
	err := yaml.Unmarshal([]byte("a: 1\n"), l)
	require.Error(t, err)
	require.Equal(t, []int{1, 2}, l.Slice())
}

func TestMsgpack(t *testing.T) {
	l := xlist.FromSlice([]string{"x", "y", "z"})
	data, err := msgpack.Marshal(l)
	require.NoError(t, err)

	var vs []string
	require.NoError(t, msgpack.Unmarshal(data, &vs))
	require.Equal(t, []string{"x", "y", "z"}, vs)

	out := xlist.FromSlice([]string{"old"})
	require.NoError(t, msgpack.Unmarshal(data, out))
	require.True(t, xlist.Equal(l, out))

	data, err = msgpack.Marshal(xlist.New[string]())
	require.NoError(t, err)
	require.NoError(t, msgpack.Unmarshal(data, out))
	require.True(t, out.Empty())
}

func TestMsgpackError(t *testing.T) {
	l := xlist.FromSlice([]int{1, 2})

	data, err := msgpack.Marshal(map[string]int{"a": 1})
	require.NoError(t, err)
	require.Error(t, msgpack.Unmarshal(data, l))
	require.Equal(t, []int{1, 2}, l.Slice())

	data, err = msgpack.Marshal([]any{3, "four"})
	require.NoError(t, err)
	require.Error(t, msgpack.Unmarshal(data, l))
	require.Equal(t, []int{1, 2}, l.Slice())
}
