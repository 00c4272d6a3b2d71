package bridge

import (
	"strings"
	"testing"

	"github.com/go-drift/bridge/pkg/animation"
	"github.com/go-drift/bridge/pkg/env"
	"github.com/go-drift/bridge/pkg/reactive"
)

func TestJsonCodecRoundTrip(t *testing.T) {
	codec := JsonCodec{}

	data, err := codec.Encode(map[string]any{"count": 3, "label": "ok"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	m, ok := back.(map[string]any)
	if !ok {
		t.Fatalf("decoded %T, want map", back)
	}
	if m["label"] != "ok" {
		t.Errorf("label = %v", m["label"])
	}
}

func TestJsonCodecDecodeEmpty(t *testing.T) {
	v, err := JsonCodec{}.Decode(nil)
	if err != nil || v != nil {
		t.Errorf("Decode(nil) = %v, %v", v, err)
	}
}

func TestDescribeMetadata(t *testing.T) {
	count := reactive.NewBinding(int64(0))
	bh := LowerBindingInt64(count)
	defer DropBinding(bh)

	var described string
	sub := ConnectBindingInt64(bh, func(_ int64, mh Handle) {
		data, err := DescribeMetadata(mh)
		if err != nil {
			t.Errorf("DescribeMetadata: %v", err)
			return
		}
		described = string(data)
	})
	defer DropSubscription(sub)

	BindingInt64SetAnimated(bh, 1, NewAnimation(animation.Spring(0.8)))

	if !strings.Contains(described, `"animation"`) {
		t.Errorf("description %q missing animation", described)
	}
	if !strings.Contains(described, `"spring"`) {
		t.Errorf("description %q missing curve", described)
	}
}

func TestDescribeContext(t *testing.T) {
	type locale struct {
		Tag string `json:"tag"`
	}

	root := NewContext(env.New().With(locale{Tag: "en-GB"}))
	defer DropContext(root)

	data, err := DescribeContext(root)
	if err != nil {
		t.Fatalf("DescribeContext: %v", err)
	}
	if !strings.Contains(string(data), "en-GB") {
		t.Errorf("description %q missing capability value", string(data))
	}
}

func TestDescribeContextDestroyed(t *testing.T) {
	quietMisuse(t)

	h := NewContext(nil)
	DropContext(h)
	if _, err := DescribeContext(h); err == nil {
		t.Error("expected an error for a destroyed context")
	}
}
