package offers

import "strings"

// Grade is an ordinal rating on a fixed six-point alphabet, A+ best.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
)

const defaultGradeScore = 7

var gradeScores = map[Grade]float64{
	GradeAPlus: 10,
	GradeA:     9,
	GradeBPlus: 8,
	GradeB:     8,
	GradeCPlus: 7,
	GradeC:     6,
}

// Score maps the grade to its 1-10 numeric value. Unknown or empty grades map
// to the neutral default rather than failing.
func (g Grade) Score() float64 {
	if score, ok := gradeScores[g.normalize()]; ok {
		return score
	}
	return defaultGradeScore
}

// known reports whether the grade is part of the fixed alphabet.
func (g Grade) known() bool {
	_, ok := gradeScores[g.normalize()]
	return ok
}

func (g Grade) normalize() Grade {
	return Grade(strings.ToUpper(strings.TrimSpace(string(g))))
}
