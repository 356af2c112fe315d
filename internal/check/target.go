package check

// Target is one inventory entity (a host, a VM, a switch, a port
// group) under evaluation. It carries a display name and the
// configuration attributes the control cares about, already resolved
// to concrete values. Targets are built per control invocation and
// discarded with the report.
type Target struct {
	name  string
	attrs map[string]any
}

// NewTarget builds a target from a display name and resolved
// attributes. A nil attrs map is valid for controls that only need the
// object's existence.
func NewTarget(name string, attrs map[string]any) Target {
	return Target{name: name, attrs: attrs}
}

// Name returns the target's display name.
func (t Target) Name() string {
	return t.name
}

// Attr returns the named attribute and whether it is present. Absent
// attributes are how classify functions detect unset configuration.
func (t Target) Attr(key string) (any, bool) {
	v, ok := t.attrs[key]
	return v, ok
}

// StringAttr returns the named attribute as a string. ok is false when
// the attribute is absent or not a string.
func (t Target) StringAttr(key string) (string, bool) {
	v, ok := t.attrs[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// IntAttr returns the named attribute as an int64, converting the
// numeric types the inventory layer produces.
func (t Target) IntAttr(key string) (int64, bool) {
	v, ok := t.attrs[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// BoolAttr returns the named attribute as a bool.
func (t Target) BoolAttr(key string) (bool, bool) {
	v, ok := t.attrs[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// StringsAttr returns the named attribute as a string slice.
func (t Target) StringsAttr(key string) ([]string, bool) {
	v, ok := t.attrs[key]
	if !ok {
		return nil, false
	}
	s, ok := v.([]string)
	return s, ok
}
