package lib

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Serialize encodes value into MessagePack bytes.
func Serialize[T any](value T) ([]byte, error) {
	return msgpack.Marshal(value)
}

// Deserialize decodes MessagePack bytes into a value of type T.
func Deserialize[T any](data []byte) (T, error) {
	var value T
	err := msgpack.Unmarshal(data, &value)
	return value, err
}

// SerializeStream writes value to writer in MessagePack format.
func SerializeStream[T any](writer io.Writer, value T) error {
	return msgpack.NewEncoder(writer).Encode(value)
}

// DeserializeStream reads a MessagePack value of type T from reader.
func DeserializeStream[T any](reader io.Reader) (T, error) {
	var value T
	err := msgpack.NewDecoder(reader).Decode(&value)
	return value, err
}
