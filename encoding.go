package xlist

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Lists encode as a flat sequence of their elements from head to
// tail. Decoding into a list replaces its contents. If decoding fails
// part of the way through, the list is left as it was.

var (
	_ json.Marshaler        = (*LinkedList[int])(nil)
	_ json.Unmarshaler      = (*LinkedList[int])(nil)
	_ yaml.Marshaler        = (*LinkedList[int])(nil)
	_ yaml.Unmarshaler      = (*LinkedList[int])(nil)
	_ msgpack.CustomEncoder = (*LinkedList[int])(nil)
	_ msgpack.CustomDecoder = (*LinkedList[int])(nil)
	_ fmt.Stringer          = (*LinkedList[int])(nil)
)

func (l *LinkedList[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Slice())
}

// UnmarshalJSON decodes a JSON array into l. A JSON null yields an
// empty list.
func (l *LinkedList[T]) UnmarshalJSON(data []byte) error {
	var vs []T
	err := json.Unmarshal(data, &vs)
	if err != nil {
		return fmt.Errorf("xlist: decode JSON: %w", err)
	}

	l.take(FromSlice(vs))
	return nil
}

func (l *LinkedList[T]) MarshalYAML() (any, error) {
	return l.Slice(), nil
}

// UnmarshalYAML decodes a YAML sequence into l.
func (l *LinkedList[T]) UnmarshalYAML(value *yaml.Node) error {
	var vs []T
	err := value.Decode(&vs)
	if err != nil {
		return fmt.Errorf("xlist: decode YAML: %w", err)
	}

	l.take(FromSlice(vs))
	return nil
}

func (l *LinkedList[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	err := enc.EncodeArrayLen(l.Len())
	if err != nil {
		return err
	}

	for n := l.front(); n != nil; n = n.next {
		err := enc.Encode(n.val)
		if err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack decodes a MessagePack array into l. A nil array yields
// an empty list.
func (l *LinkedList[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	size, err := dec.DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("xlist: decode msgpack: %w", err)
	}

	var tmp LinkedList[T]
	for i := 0; i < size; i++ {
		var v T
		err := dec.Decode(&v)
		if err != nil {
			return fmt.Errorf("xlist: decode msgpack element %v: %w", i, err)
		}
		tmp.AppendBack(v)
	}

	l.take(&tmp)
	return nil
}
