package domain

// TriState is an optional boolean. Unset defers to a default chosen elsewhere.
type TriState uint8

const (
	// Unset leaves the decision to the default.
	Unset TriState = iota
	// True explicitly enables the option.
	True
	// False explicitly disables the option.
	False
)

// Tri converts a plain boolean to an explicit TriState.
func Tri(b bool) TriState {
	if b {
		return True
	}
	return False
}

// TriFromPtr converts an optional boolean, mapping nil to Unset.
func TriFromPtr(b *bool) TriState {
	if b == nil {
		return Unset
	}
	return Tri(*b)
}

// IsSet reports whether the value is explicitly true or false.
func (t TriState) IsSet() bool {
	return t == True || t == False
}

// Resolve returns the explicit value if set, otherwise def.
func (t TriState) Resolve(def bool) bool {
	switch t {
	case True:
		return true
	case False:
		return false
	default:
		return def
	}
}

func (t TriState) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}
