// Package wire converts Go values to and from the protobuf well-known types
// carried by the jobkeeper gRPC service. Values travel through their JSON
// form, so the JSON tags in internal/models define the field names.
package wire

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct encodes v (a struct or map that marshals to a JSON object).
func ToStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("to struct: %w", err)
	}
	return s, nil
}

// FromStruct decodes s into dst.
func FromStruct(s *structpb.Struct, dst any) error {
	if s == nil {
		s = &structpb.Struct{}
	}
	b, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("from struct: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}

// ToList encodes a slice.
func ToList(v any) (*structpb.ListValue, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	if string(b) == "null" {
		b = []byte("[]")
	}
	l := &structpb.ListValue{}
	if err := protojson.Unmarshal(b, l); err != nil {
		return nil, fmt.Errorf("to list: %w", err)
	}
	return l, nil
}

// FromList decodes l into dst, which must point to a slice.
func FromList(l *structpb.ListValue, dst any) error {
	if l == nil {
		l = &structpb.ListValue{}
	}
	b, err := protojson.Marshal(l)
	if err != nil {
		return fmt.Errorf("from list: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}

// Fields decodes a record into a plain map, dropping store-owned fields.
// Used to turn a draft row into insert fields.
func Fields(v any, drop ...string) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	for _, k := range drop {
		delete(m, k)
	}
	return m, nil
}

// String returns the string field name of s, or "".
func String(s *structpb.Struct, name string) string {
	if s == nil {
		return ""
	}
	return s.GetFields()[name].GetStringValue()
}

// Object returns the nested object field name of s as a plain map.
func Object(s *structpb.Struct, name string) map[string]any {
	if s == nil {
		return nil
	}
	return s.GetFields()[name].GetStructValue().AsMap()
}
