package model

// Statement represents a single atomic, self-contained claim extracted
// from the actual output under evaluation
type Statement struct {
	Text string `json:"text"` // The statement text itself
}

// VerdictLabel is the relevance classification for one statement.
// The wire values mirror what the judge is asked to emit.
type VerdictLabel string

const (
	VerdictYes VerdictLabel = "yes" // Statement directly addresses the input
	VerdictIdk VerdictLabel = "idk" // Ambiguous: could support addressing the input
	VerdictNo  VerdictLabel = "no"  // Statement has no bearing on the input
)

// Valid reports whether the label is one of the three known values
func (l VerdictLabel) Valid() bool {
	switch l {
	case VerdictYes, VerdictIdk, VerdictNo:
		return true
	default:
		return false
	}
}

func (l VerdictLabel) String() string {
	switch l {
	case VerdictYes:
		return "relevant"
	case VerdictIdk:
		return "ambiguous"
	case VerdictNo:
		return "irrelevant"
	default:
		return "unknown"
	}
}

// Verdict is the relevance judgment for exactly one statement.
// Reason is non-empty only when Label is VerdictNo.
type Verdict struct {
	Label  VerdictLabel `json:"verdict"`
	Reason string       `json:"reason,omitempty"`
}

// Irrelevant reports whether the verdict counts against the score
func (v Verdict) Irrelevant() bool {
	return v.Label == VerdictNo
}
