package taxonomy

import "fmt"

// ViolationKind identifies which construction rule a rejected code broke.
type ViolationKind uint8

const (
	// ViolationCodeOutOfRange marks an id outside 001-999 or a missing namespace.
	ViolationCodeOutOfRange ViolationKind = iota
	// ViolationCategoryNotPermitted marks a category the namespace policy forbids.
	ViolationCategoryNotPermitted
	// ViolationImpactNotPermitted marks an impact the namespace may not carry.
	ViolationImpactNotPermitted
)

// Violation describes why code construction was rejected. Error() carries
// full diagnostic detail and stays on the internal side; Public() is the
// only form permitted to cross the trust boundary.
type Violation struct {
	Kind      ViolationKind
	Value     uint16
	Namespace string
	Category  string
	Impact    uint16
}

// Error renders the detailed internal diagnostic.
func (v *Violation) Error() string {
	switch v.Kind {
	case ViolationCodeOutOfRange:
		return fmt.Sprintf("code id %d outside permitted range 1-999", v.Value)
	case ViolationCategoryNotPermitted:
		return fmt.Sprintf("category %q not permitted in namespace %s", v.Category, v.Namespace)
	case ViolationImpactNotPermitted:
		return fmt.Sprintf("impact score %d not permitted in namespace %s", v.Impact, v.Namespace)
	}
	return "unknown taxonomy violation"
}

// Public returns a fixed opaque message that leaks neither the offending
// value nor the policy that rejected it.
func (v *Violation) Public() string {
	switch v.Kind {
	case ViolationCodeOutOfRange:
		return "Invalid error code format"
	case ViolationCategoryNotPermitted:
		return "Invalid error configuration"
	case ViolationImpactNotPermitted:
		return "Invalid error severity"
	}
	return "Invalid error configuration"
}
