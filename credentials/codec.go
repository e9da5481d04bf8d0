// Package credentials serializes the two opaque JSON documents attached to a
// service instance: the gateway-issued credentials and the gateway metadata.
// Both travel through the store as JSON text, never as structured values.
package credentials

import (
	"encoding/json"
	"fmt"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
)

type Codec struct {
	Marshaler   marshal.Marshaler
	Unmarshaler marshal.Unmarshaler
}

func NewCodec() *Codec {
	return &Codec{
		Marshaler:   marshal.MarshalFunc(json.Marshal),
		Unmarshaler: marshal.UnmarshalFunc(json.Unmarshal),
	}
}

func (c *Codec) Encode(value interface{}) (string, error) {
	bytes, err := c.Marshaler.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal document: %s", err)
	}
	return string(bytes), nil
}

// Decode parses stored JSON text back into a structured value. Absent text
// decodes to nil rather than an error: a row written before provisioning, or
// by a gateway-less service, simply has no document.
func (c *Codec) Decode(text string) (interface{}, error) {
	if text == "" {
		return nil, nil
	}
	var value interface{}
	err := c.Unmarshaler.Unmarshal([]byte(text), &value)
	if err != nil {
		return nil, fmt.Errorf("unmarshal document: %s", err)
	}
	return value, nil
}
