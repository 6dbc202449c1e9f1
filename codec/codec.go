// Package codec marshals the structured values produced by generated
// serializers, and unmarshals data into structured values accepted by
// generated deserializers.
//
//	data, err := codec.Encode(codec.JSON, user)
//	user, err := codec.Decode(codec.JSON, data, model.DeserializeUser)
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/specgen"
)

// Codec converts structured values to and from bytes.
type Codec interface {
	// Name returns the codec name, e.g. "json".
	Name() string
	// Marshal encodes a structured value.
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes data into a structured value.
	Unmarshal(data []byte) (any, error)
}

// Codecs.
var (
	// JSON encodes structured values as JSON. Numbers decode as json.Number.
	JSON Codec = jsonCodec{}
	// MsgPack encodes structured values as MessagePack. Integers decode as
	// int64 or uint64, floats as float64.
	MsgPack Codec = msgpackCodec{}
)

var codecs = map[string]Codec{
	JSON.Name():    JSON,
	MsgPack.Name(): MsgPack,
}

// ErrUnknownCodec is returned by Lookup for unregistered names.
var ErrUnknownCodec = errors.New("codec: unknown codec")

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// Names returns the sorted names of the registered codecs.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode serializes v and marshals the result.
func Encode[T specgen.Serializer](c Codec, v T) ([]byte, error) {
	return c.Marshal(specgen.EncodeValue(v))
}

// Decode unmarshals data and deserializes the result with dec.
func Decode[T any](c Codec, data []byte, dec specgen.Decoder[T]) (T, error) {
	v, err := c.Unmarshal(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return dec(v)
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("codec: json: %w", err)
	}
	return v, nil
}

type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("codec: msgpack: %w", err)
	}
	return buf.Bytes(), nil
}

func (msgpackCodec) Unmarshal(data []byte) (any, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.UseLooseInterfaceDecoding(true)
	v, err := dec.DecodeInterface()
	if err != nil {
		return nil, fmt.Errorf("codec: msgpack: %w", err)
	}
	return v, nil
}
