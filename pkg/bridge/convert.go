package bridge

// Conversion between native values and their ABI representations.
//
// Primitives lower to fixed-width scalars and never fail. Strings lower to
// owned string handles with copy-out accessors. Structured view configs
// lower field by field into fixed-layout repr structs of handles and plain
// fields; the nested handles are minted once, when the owning view is
// wrapped, so repeated queries observe the same tokens.

// LowerBool converts a bool to its ABI scalar (0 or 1).
func LowerBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// LiftBool converts an ABI scalar back to a bool. Any non-zero value is
// true.
func LiftBool(v int32) bool {
	return v != 0
}

// LowerString transfers s into a fresh string handle owned by the caller.
func LowerString(s string) Handle {
	return newHandle(kindString, s)
}

// LiftString transfers the string back out of h, consuming the handle.
func LiftString(h Handle) string {
	v, ok := release("bridge.LiftString", h, kindString)
	if !ok {
		return ""
	}
	return v.(string)
}

// StringLen returns the byte length of the string behind h without
// consuming it.
func StringLen(h Handle) int {
	v, ok := lookup("bridge.StringLen", h, kindString)
	if !ok {
		return 0
	}
	return len(v.(string))
}

// CopyString copies the string behind h into buf and returns the number of
// bytes copied. The handle stays live; pair with DropString.
func CopyString(h Handle, buf []byte) int {
	v, ok := lookup("bridge.CopyString", h, kindString)
	if !ok {
		return 0
	}
	return copy(buf, v.(string))
}

// DropString destroys a string handle.
func DropString(h Handle) {
	release("bridge.DropString", h, kindString)
}

// ButtonRepr is the fixed-layout representation of a Button config.
// Label and Action are owned by the view handle the repr was read from;
// they live until that view is dropped or lifted.
type ButtonRepr struct {
	// Label is a string handle carrying the button label.
	Label Handle
	// Action is an action handle, or 0 for an inert button.
	Action Handle
	// Disabled is 1 when interaction is disabled.
	Disabled int32
}

// ToggleRepr is the fixed-layout representation of a Toggle config.
type ToggleRepr struct {
	// Label is a string handle carrying the toggle label.
	Label Handle
	// IsOn is a bool binding handle, or 0 when unbound.
	IsOn Handle
	// Disabled is 1 when interaction is disabled.
	Disabled int32
}

// TextRepr is the fixed-layout representation of a Text config.
type TextRepr struct {
	// Content is a string handle carrying the text run.
	Content Handle
}

// VStackRepr is the fixed-layout representation of a VStack config.
type VStackRepr struct {
	// Children is a view list handle.
	Children Handle
	// Spacing is the gap between adjacent children, in points.
	Spacing float64
}
