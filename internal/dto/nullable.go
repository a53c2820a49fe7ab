package dto

import "encoding/json"

// NullableString distinguishes an absent key from an explicit JSON null in
// partial updates: Present reports whether the key appeared at all, and Ptr
// is nil for a null. An update clears the stored value on null and keeps it
// when the key is absent.
type NullableString struct {
	set bool
	s   *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.set = true
	return json.Unmarshal(data, &n.s)
}

// Present reports whether the key appeared in the request body.
func (n NullableString) Present() bool { return n.set }

// Ptr returns the decoded value; nil means an explicit null.
func (n NullableString) Ptr() *string { return n.s }

// NullableBool is NullableString for booleans.
type NullableBool struct {
	set bool
	b   *bool
}

func (n *NullableBool) UnmarshalJSON(data []byte) error {
	n.set = true
	return json.Unmarshal(data, &n.b)
}

func (n NullableBool) Present() bool { return n.set }

func (n NullableBool) Ptr() *bool { return n.b }
