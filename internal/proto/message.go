package proto

import "google.golang.org/protobuf/types/known/structpb"

// NewMessage builds a Struct with string fields.
func NewMessage(fields map[string]string) *structpb.Struct {
	s := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(fields))}
	for k, v := range fields {
		s.Fields[k] = structpb.NewStringValue(v)
	}
	return s
}

// GetString returns the string field key of s, or "" when s is nil, the
// field is absent or it is not a string.
func GetString(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}
