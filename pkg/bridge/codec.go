package bridge

import (
	"github.com/goccy/go-json"

	"github.com/go-drift/bridge/pkg/errors"
	"github.com/go-drift/bridge/pkg/reactive"
	"github.com/go-drift/bridge/pkg/views"
)

// MessageCodec encodes values that cross the boundary serialized rather
// than as handles: view descriptions, metadata dumps, environment
// capability listings.
type MessageCodec interface {
	// Encode converts a Go value to bytes for transmission to the host.
	Encode(value any) ([]byte, error)

	// Decode converts bytes received from the host to a Go value.
	Decode(data []byte) (any, error)
}

// JsonCodec implements MessageCodec using JSON encoding. JSON prioritizes
// interoperability: every host language can read it without native
// dependencies.
type JsonCodec struct{}

// Encode serializes the value to JSON bytes.
func (c JsonCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes JSON bytes to a Go value.
func (c JsonCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DefaultCodec is the codec used for serialized boundary crossings.
var DefaultCodec MessageCodec = JsonCodec{}

// DescribeView serializes the view behind a live view handle, including
// the current values of any bound state. Intended for host-side debugging
// and inspector tooling; the handle is unaffected.
func DescribeView(h Handle) ([]byte, error) {
	v, ok := lookup("bridge.DescribeView", h, kindView)
	if !ok {
		return nil, &errors.MisuseError{Handle: uintptr(h), Want: "view", Got: "destroyed"}
	}
	return DefaultCodec.Encode(describeView(v.(*anyView).view))
}

// DescribeMetadata serializes a live metadata handle. Valid only inside the
// callback the handle was delivered to.
func DescribeMetadata(mh Handle) ([]byte, error) {
	v, ok := lookup("bridge.DescribeMetadata", mh, kindMetadata)
	if !ok {
		return nil, &errors.MisuseError{Handle: uintptr(mh), Want: "metadata", Got: "destroyed"}
	}
	meta := v.(*reactive.Metadata)
	out := map[string]any{}
	if meta.Animation != nil {
		out["animation"] = meta.Animation
	}
	return DefaultCodec.Encode(out)
}

// DescribeContext serializes the effective capabilities of the environment
// behind a context handle.
func DescribeContext(h Handle) ([]byte, error) {
	e := ContextEnv(h)
	if e == nil {
		return nil, &errors.MisuseError{Handle: uintptr(h), Want: "context", Got: "destroyed"}
	}
	return DefaultCodec.Encode(e.Capabilities())
}

// describeView renders a view config as plain data.
func describeView(v views.View) map[string]any {
	out := map[string]any{"kind": v.Kind().String()}
	switch cv := v.(type) {
	case views.Button:
		out["label"] = cv.Label
		out["disabled"] = cv.Disabled
		out["has_action"] = cv.Action != nil
	case views.Toggle:
		out["label"] = cv.Label
		out["disabled"] = cv.Disabled
		if cv.IsOn != nil {
			out["is_on"] = cv.IsOn.Value()
		}
	case views.Text:
		out["content"] = cv.Content
	case views.VStack:
		children := make([]map[string]any, 0, len(cv.Children))
		for _, child := range cv.Children {
			children = append(children, describeView(child))
		}
		out["spacing"] = cv.Spacing
		out["children"] = children
	case views.Dynamic:
		if cv.Build != nil {
			out["subtree"] = describeView(cv.Build())
		}
	}
	return out
}
