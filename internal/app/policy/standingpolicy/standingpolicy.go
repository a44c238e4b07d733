// Package standingpolicy holds the fixed academic-standing rules applied to
// every student.
//
// Classification rules (evaluated in this priority):
//   - Dean's List: cgpa >= 3.75 and credits >= 12 (boundaries inclusive)
//   - Probation:   cgpa < 2.00
//   - Good Standing: everyone else (cgpa >= 2.00, not on the Dean's List)
//
// The probation rule is intentionally asymmetric between the two consumers:
// the dashboard *metric* counts every student under 2.00 regardless of
// credits, while the performance *segment* additionally requires credits > 0.
// A student with cgpa < 2.00 and zero credits is therefore counted by
// OnProbation but placed in no segment by Segment. This mirrors the original
// grading policy verbatim and must not be unified.
package standingpolicy

// Thresholds for the standing rules.
const (
	DeansListMinCGPA    = 3.75
	DeansListMinCredits = 12
	ProbationCGPALimit  = 2.00
)

// Standing is the segmentation bucket a student lands in.
type Standing int

const (
	// StandingNone marks the zero-credit probation edge case: the student
	// belongs to no segment.
	StandingNone Standing = iota
	StandingDeansList
	StandingProbation
	StandingGood
)

// OnDeansList reports whether the student qualifies for the Dean's List.
func OnDeansList(cgpa float64, credits int) bool {
	return cgpa >= DeansListMinCGPA && credits >= DeansListMinCredits
}

// OnProbation is the metric-side probation rule: CGPA alone, no credits
// condition.
func OnProbation(cgpa float64) bool {
	return cgpa < ProbationCGPALimit
}

// Segment places a student in its performance bucket. Unlike OnProbation,
// the probation segment requires credits > 0; a low-CGPA student with zero
// credits gets StandingNone.
func Segment(cgpa float64, credits int) Standing {
	switch {
	case OnDeansList(cgpa, credits):
		return StandingDeansList
	case cgpa < ProbationCGPALimit:
		if credits > 0 {
			return StandingProbation
		}
		return StandingNone
	default:
		return StandingGood
	}
}
