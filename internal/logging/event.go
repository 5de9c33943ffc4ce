// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// maxParamDepth bounds how deep nested parameter values (maps inside
// maps) are serialized structurally; anything deeper is flattened to its
// string form.
const maxParamDepth = 3

// Params is an ordered name→value mapping. Order is the first-occurrence
// order of the placeholders in the originating template; JSON
// serialization preserves it.
type Params []Param

// Event is the immutable record built once per log call, independent of
// whether any sink actually wrote.
type Event struct {
	Timestamp time.Time `json:"DateTime"`
	PID       int       `json:"PID"`
	Level     Level     `json:"Level"`
	Template  string    `json:"Template"`
	Message   string    `json:"Message"`
	Params    Params    `json:"Parameters"`
}

// JSON returns the serialized form of the event.
func (e *Event) JSON() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}
	return string(data), nil
}

// ParseEvent parses a serialized event back into a record.
func ParseEvent(data string) (*Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		return nil, fmt.Errorf("failed to parse event: %w", err)
	}
	return &e, nil
}

// Get returns the bound value for a parameter name.
func (p Params) Get(name string) (any, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return nil, false
}

// MarshalJSON emits the parameters as a JSON object in binding order.
func (p Params) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, param := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(param.Name)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := json.Marshal(boundValue(param.Value, maxParamDepth))
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON reads a JSON object back into ordered parameters, using
// the token stream so object order survives the round trip.
func (p *Params) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("parameters must be a JSON object, got %v", tok)
	}

	var params Params
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("parameter key must be a string, got %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		params = append(params, Param{Name: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = params
	return nil
}

// boundValue limits the structural depth of a serialized value. Maps
// recurse until the depth budget runs out; everything at the boundary is
// rendered via its native representation.
func boundValue(v any, depth int) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	if depth <= 0 {
		return fmt.Sprintf("%v", v)
	}
	out := make(map[string]any, len(m))
	for k, inner := range m {
		out[k] = boundValue(inner, depth-1)
	}
	return out
}
