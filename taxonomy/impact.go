package taxonomy

import "fmt"

// MaxImpactScore is the top of the impact scale.
const MaxImpactScore = 1000

// breachThreshold is the lowest score classified as Breach.
const breachThreshold = 951

// ImpactScore is a validated severity score in [0, 1000].
type ImpactScore uint16

// NewImpactScore validates a raw score. Scores above MaxImpactScore are
// rejected; this is the only construction path for untrusted input.
func NewImpactScore(v uint16) (ImpactScore, error) {
	if v > MaxImpactScore {
		return 0, fmt.Errorf("impact score %d exceeds maximum (%d)", v, MaxImpactScore)
	}
	return ImpactScore(v), nil
}

// MustImpactScore validates a score known at definition time, panicking on
// violation. Used only for codes defined in source, where an out-of-range
// score is a build defect.
func MustImpactScore(v uint16) ImpactScore {
	s, err := NewImpactScore(v)
	if err != nil {
		panic("taxonomy: " + err.Error())
	}
	return s
}

// Value returns the raw numeric score.
func (s ImpactScore) Value() uint16 { return uint16(s) }

// IsBreachLevel reports whether the score falls in the Breach band.
func (s ImpactScore) IsBreachLevel() bool { return s >= breachThreshold }

// Impact is the ordered 9-level classification derived from an ImpactScore.
type Impact uint8

// Impact levels, ordered from least to most severe.
const (
	// ImpactNoise (0-50): purely internal noise, no operational impact.
	ImpactNoise Impact = iota
	// ImpactFlaw (51-150): minor visual discrepancy in the deception layer.
	ImpactFlaw
	// ImpactJitter (151-300): performance issues perceivable as network lag.
	ImpactJitter
	// ImpactGlitch (301-450): an emulated feature fails to respond correctly.
	ImpactGlitch
	// ImpactSuspicion (451-600): logic inconsistency that can expose the trap.
	ImpactSuspicion
	// ImpactLeak (601-750): error reveals internal system information.
	ImpactLeak
	// ImpactCollapse (751-850): total failure of the emulated service.
	ImpactCollapse
	// ImpactEscalation (851-950): error grants unintended access.
	ImpactEscalation
	// ImpactBreach (951-1000): sandbox breakout or host compromise risk.
	ImpactBreach
)

// Level maps the score to its Impact band.
func (s ImpactScore) Level() Impact {
	switch {
	case s <= 50:
		return ImpactNoise
	case s <= 150:
		return ImpactFlaw
	case s <= 300:
		return ImpactJitter
	case s <= 450:
		return ImpactGlitch
	case s <= 600:
		return ImpactSuspicion
	case s <= 750:
		return ImpactLeak
	case s <= 850:
		return ImpactCollapse
	case s <= 950:
		return ImpactEscalation
	default:
		return ImpactBreach
	}
}

// String returns the level name.
func (i Impact) String() string {
	switch i {
	case ImpactNoise:
		return "Noise"
	case ImpactFlaw:
		return "Flaw"
	case ImpactJitter:
		return "Jitter"
	case ImpactGlitch:
		return "Glitch"
	case ImpactSuspicion:
		return "Suspicion"
	case ImpactLeak:
		return "Leak"
	case ImpactCollapse:
		return "Collapse"
	case ImpactEscalation:
		return "Escalation"
	case ImpactBreach:
		return "Breach"
	default:
		return "Unknown"
	}
}
