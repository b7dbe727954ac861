// Package apiconnect wires the naijatax.v1 services onto Connect handlers and
// clients. Messages are plain Go structs encoded as JSON.
package apiconnect

import (
	"connectrpc.com/connect"
	json "github.com/goccy/go-json"
)

// jsonCodec replaces Connect's protojson codec, which only accepts proto messages.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}

// WithJSON registers the JSON codec on a handler or client. The constructors in
// this package apply it automatically.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{WithJSON()}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{WithJSON()}, opts...)
}
