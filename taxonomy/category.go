package taxonomy

// Category is the closed classification of an operation's nature.
// Categories are broad by design: they give SOC operators triage signal
// without letting attackers map internal topology from error output.
type Category uint8

// The closed category set.
const (
	CatConfiguration Category = iota
	CatDeployment
	CatMonitoring
	CatAnalysis
	CatResponse
	CatAudit
	CatSystem
	CatIO
	CatDeception
	CatDetection
	CatContainment
)

// maskedLabel is what deception-sensitive categories report externally.
const maskedLabel = "Routine Operation"

// DisplayName returns the authentic category name for internal use.
func (c Category) DisplayName() string {
	switch c {
	case CatConfiguration:
		return "Configuration"
	case CatDeployment:
		return "Deployment"
	case CatMonitoring:
		return "Monitoring"
	case CatAnalysis:
		return "Analysis"
	case CatResponse:
		return "Response"
	case CatAudit:
		return "Audit"
	case CatSystem:
		return "System"
	case CatIO:
		return "I/O"
	case CatDeception:
		return "Deception"
	case CatDetection:
		return "Detection"
	case CatContainment:
		return "Containment"
	default:
		return "Unknown"
	}
}

// MaskedName returns the external category name. Deception-sensitive
// categories are masked to a generic label so error output never reveals
// that a defensive operation ran. The mapping is total: every category
// has a defined external name.
func (c Category) MaskedName() string {
	switch c {
	case CatDeception, CatDetection, CatContainment:
		return maskedLabel
	default:
		return c.DisplayName()
	}
}

// LookupCategory resolves an authentic display name to its category,
// for code definitions loaded from configuration.
func LookupCategory(name string) (Category, bool) {
	for c := CatConfiguration; c <= CatContainment; c++ {
		if c.DisplayName() == name {
			return c, true
		}
	}
	return 0, false
}
