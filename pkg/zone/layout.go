package zone

// Column headers of the source tables.
const (
	ZoneColumn  = "Zone"
	GradeColumn = "Grade"
	SizeColumn  = "Size"
)

// i-Ready reading levels, best first.
const (
	MidAboveGrade          = "Mid-Above Grade"
	EarlyOnGrade           = "Early On Grade"
	OneGradeBelow          = "1 Grade Below"
	TwoGradesBelow         = "2 Grades Below"
	ThreeOrMoreGradesBelow = "3 or More Grades Below"
	DidNotTake             = "Did not take"
)

// EDI readiness levels.
const (
	Ready    = "Ready"
	Middle   = "Middle"
	NotReady = "Not Ready"
)

// Layout describes the category columns of a source table and how they
// split into ready and not ready outcomes.
type Layout struct {
	Levels         []string
	ReadyLevels    []string
	NotReadyLevels []string
	// Excluded is left out of the participant count, if set.
	Excluded string
	// Percent marks levels given as whole percentages of Size rather than
	// student counts.
	Percent bool
}

var KindergartenLayout = Layout{
	Levels:         []string{Ready, Middle, NotReady},
	ReadyLevels:    []string{Ready},
	NotReadyLevels: []string{Middle, NotReady},
	Percent:        true,
}

var ElementaryLayout = Layout{
	Levels:         []string{MidAboveGrade, EarlyOnGrade, OneGradeBelow, TwoGradesBelow, ThreeOrMoreGradesBelow, DidNotTake},
	ReadyLevels:    []string{MidAboveGrade, EarlyOnGrade},
	NotReadyLevels: []string{OneGradeBelow, TwoGradesBelow, ThreeOrMoreGradesBelow},
	Excluded:       DidNotTake,
}

func (l *Layout) index(level string) int {
	for i, lv := range l.Levels {
		if lv == level {
			return i
		}
	}
	return -1
}
