// Package proto binds JSON bodies to generated messages and checks their validation rules.
package proto

import (
	"buf.build/go/protovalidate"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var (
	unmarshalOptions = protojson.UnmarshalOptions{DiscardUnknown: true}
	marshalOptions   = protojson.MarshalOptions{}
)

func Unmarshal(b []byte, m proto.Message) error {
	return unmarshalOptions.Unmarshal(b, m)
}

func Marshal(m proto.Message) ([]byte, error) {
	return marshalOptions.Marshal(m)
}

func Validate(m proto.Message) error {
	return protovalidate.Validate(m)
}
