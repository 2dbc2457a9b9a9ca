package taxonomy

import "fmt"

// Code is the primary error identity: namespace + numeric id + category +
// impact + permanence/retry semantics. Codes render as E-<NS>-<id>, with
// the id replaced by its session-obfuscated value on the external path.
//
// INVARIANT: immutable after construction; used by pointer only.
type Code struct {
	ns        *Namespace
	id        uint16
	category  Category
	impact    ImpactScore
	retryable bool
}

// MustNew builds a Code defined in source, validating eagerly at package
// init. Any violation is a programmer error and aborts fatally — a build
// defect, not a runtime condition.
func MustNew(ns *Namespace, id uint16, c Category, impact ImpactScore, retryable bool) *Code {
	code, v := New(ns, id, c, impact, retryable)
	if v != nil {
		panic("taxonomy: invalid code definition: " + v.Error())
	}
	return code
}

// New builds a Code from an untrusted origin (configuration, plugins).
// Violations are returned as a structured value instead of aborting; the
// raw Violation must be sanitized via Public() before it may leave the
// trust boundary.
func New(ns *Namespace, id uint16, c Category, impact ImpactScore, retryable bool) (*Code, *Violation) {
	if ns == nil {
		return nil, &Violation{Kind: ViolationCodeOutOfRange, Value: id}
	}
	if id == 0 || id >= 1000 {
		return nil, &Violation{Kind: ViolationCodeOutOfRange, Value: id}
	}
	if !PermitsCategory(ns, c) {
		return nil, &Violation{
			Kind:      ViolationCategoryNotPermitted,
			Namespace: ns.Label(),
			Category:  c.DisplayName(),
		}
	}
	if !PermitsImpact(ns, impact) {
		return nil, &Violation{
			Kind:      ViolationImpactNotPermitted,
			Namespace: ns.Label(),
			Impact:    impact.Value(),
		}
	}
	return &Code{ns: ns, id: id, category: c, impact: impact, retryable: retryable}, nil
}

// Namespace returns the code's namespace singleton.
func (c *Code) Namespace() *Namespace { return c.ns }

// ID returns the internal numeric id (001-999). Internal only: external
// surfaces must render the obfuscated value instead.
func (c *Code) ID() uint16 { return c.id }

// Category returns the operation category.
func (c *Code) Category() Category { return c.category }

// Impact returns the validated impact score.
func (c *Code) Impact() ImpactScore { return c.impact }

// Level returns the derived impact classification.
func (c *Code) Level() Impact { return c.impact.Level() }

// Retryable reports whether failures under this code are transient.
func (c *Code) Retryable() bool { return c.retryable }

// Permanent reports the inverse permanence flag used in external templates.
func (c *Code) Permanent() bool { return !c.retryable }

// String renders the internal identity form E-<NS>-<id>. Never use this
// on an external surface; the external form carries the obfuscated id.
func (c *Code) String() string {
	return fmt.Sprintf("E-%s-%03d", c.ns.Label(), c.id)
}
