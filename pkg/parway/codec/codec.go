package codec

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// DecodeError reports malformed or rejected input.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode: %s: %v", e.Reason, e.Err)
	}
	return "decode: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var strict = sonic.Config{
	DisallowUnknownFields: true,
	SortMapKeys:           true,
}.Froze()

var lenient = sonic.Config{
	SortMapKeys: true,
}.Froze()

// Marshal encodes v as JSON with deterministic map key order.
func Marshal(v any) ([]byte, error) {
	data, err := strict.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// Unmarshal decodes data into v, rejecting payloads with unknown fields.
func Unmarshal(data []byte, v any) error {
	if err := strict.Unmarshal(data, v); err != nil {
		return &DecodeError{Reason: "rejected payload", Err: err}
	}
	return nil
}

// Decoder selects a decoding mode.
type Decoder struct {
	api sonic.API
}

// Lenient returns a Decoder that ignores unknown fields instead of
// rejecting them.
func Lenient() Decoder {
	return Decoder{api: lenient}
}

// Unmarshal decodes data into v under the decoder's mode.
func (d Decoder) Unmarshal(data []byte, v any) error {
	if err := d.api.Unmarshal(data, v); err != nil {
		return &DecodeError{Reason: "malformed payload", Err: err}
	}
	return nil
}
