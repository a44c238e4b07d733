// internal/app/analytics/engine.go

// Package analytics derives dashboard figures from the record store. The
// engine holds no state of its own; every call re-reads the store, so the
// results always reflect the latest writes.
package analytics

import (
	"math"

	"github.com/dalemusser/gradehub/internal/app/policy/standingpolicy"
	"github.com/dalemusser/gradehub/internal/domain/models"
)

// FilterAll is the filter key that selects every student (an empty key does
// the same).
const FilterAll = "all"

// StudentSource is the read surface the engine needs from the record store.
type StudentSource interface {
	AllStudents() []models.StudentWithSubjects
	StudentsByIntake(intake string) []models.StudentWithSubjects
}

// Metrics are the aggregate dashboard figures for a candidate set.
type Metrics struct {
	TotalStudents  int     `json:"total_students"`
	DeansListCount int     `json:"deans_list_count"`
	ProbationCount int     `json:"probation_count"`
	AverageCGPA    float64 `json:"average_cgpa"`
}

// Performance segments a candidate set into the three standing buckets.
// The buckets are disjoint by construction; a student with cgpa < 2.00 and
// zero credits appears in none of them (see standingpolicy).
type Performance struct {
	DeansList    []models.StudentWithSubjects `json:"deans_list"`
	Probation    []models.StudentWithSubjects `json:"probation"`
	GoodStanding []models.StudentWithSubjects `json:"good_standing"`
}

// Engine computes dashboard analytics over a StudentSource.
type Engine struct {
	src StudentSource
}

// New constructs an Engine reading from src.
func New(src StudentSource) *Engine {
	return &Engine{src: src}
}

// candidates resolves the student set for a filter key: "" and FilterAll
// select everyone, anything else is an exact intake match.
func (e *Engine) candidates(filterKey string) []models.StudentWithSubjects {
	if filterKey == "" || filterKey == FilterAll {
		return e.src.AllStudents()
	}
	return e.src.StudentsByIntake(filterKey)
}

// Metrics computes the dashboard counters for the filtered candidate set.
// AverageCGPA is the arithmetic mean rounded to two decimals, defined as 0
// for an empty set.
func (e *Engine) Metrics(filterKey string) Metrics {
	students := e.candidates(filterKey)

	m := Metrics{TotalStudents: len(students)}
	var sum float64
	for _, st := range students {
		cgpa := st.CGPAValue()
		sum += cgpa
		if standingpolicy.OnDeansList(cgpa, st.Credits) {
			m.DeansListCount++
		}
		if standingpolicy.OnProbation(cgpa) {
			m.ProbationCount++
		}
	}
	if len(students) > 0 {
		m.AverageCGPA = math.Round(sum/float64(len(students))*100) / 100
	}
	return m
}

// Performance segments the filtered candidate set by standing. Lists are
// never nil so they encode as [] rather than null.
func (e *Engine) Performance(filterKey string) Performance {
	p := Performance{
		DeansList:    []models.StudentWithSubjects{},
		Probation:    []models.StudentWithSubjects{},
		GoodStanding: []models.StudentWithSubjects{},
	}
	for _, st := range e.candidates(filterKey) {
		switch standingpolicy.Segment(st.CGPAValue(), st.Credits) {
		case standingpolicy.StandingDeansList:
			p.DeansList = append(p.DeansList, st)
		case standingpolicy.StandingProbation:
			p.Probation = append(p.Probation, st)
		case standingpolicy.StandingGood:
			p.GoodStanding = append(p.GoodStanding, st)
		}
	}
	return p
}
