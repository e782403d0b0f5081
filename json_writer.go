package networth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// orderedObject writes a JSON object whose keys keep their insertion order.
// Its zero value is an empty object.
type orderedObject struct {
	buf bytes.Buffer
	err error
}

// Set appends key with the JSON encoding of value.
func (o *orderedObject) Set(key string, value any) *orderedObject {
	if o.err != nil {
		return o
	}
	v, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return o
	}
	k, _ := json.Marshal(key)
	if o.buf.Len() > 0 {
		o.buf.WriteByte(',')
	}
	o.buf.Write(k)
	o.buf.WriteByte(':')
	o.buf.Write(v)
	return o
}

// SetPtr appends key unless ptr is a nil pointer. A pointer to a zero value
// is written.
func (o *orderedObject) SetPtr(key string, ptr any) *orderedObject {
	if v := reflect.ValueOf(ptr); !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return o
	}
	return o.Set(key, ptr)
}

// MarshalJSON returns the object, or the first encoding error.
func (o *orderedObject) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	res := make([]byte, 0, o.buf.Len()+2)
	res = append(res, '{')
	res = append(res, o.buf.Bytes()...)
	return append(res, '}'), nil
}
