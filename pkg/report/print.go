package report

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrintComparison reports a single comparison.
func PrintComparison(w io.Writer, c Comparison, threshold float64) {
	p := message.NewPrinter(language.English)

	if c.Grade != 0 {
		p.Fprintf(w, "Zone 1: %d, Zone 2: %d, Grade: %d\n", c.ZoneA, c.ZoneB, c.Grade)
	} else {
		p.Fprintf(w, "Zone 1: %d, Zone 2: %d\n", c.ZoneA, c.ZoneB)
	}
	p.Fprintf(w, "Observed Difference: %.4f\n", c.Result.Observed)
	p.Fprintf(w, "pValue: %.4f (%d / %d trials, seed %d)\n", c.PValue, c.Result.Hits, c.Result.Trials, c.Result.Seed)

	if c.Significant(threshold) {
		p.Fprintln(w, "Significant difference")
	} else {
		p.Fprintln(w, "No significant difference")
	}
}

// PrintSweep lists the pairs that are not significantly different and the
// pairs that could not be compared.
func PrintSweep(w io.Writer, s *Sweep) {
	p := message.NewPrinter(language.English)

	if s.Grade != 0 {
		p.Fprintf(w, "\n%s, Grade %d: zone pairs with p-value above %.2f\n\n", s.Subject, s.Grade, s.Threshold)
	} else {
		p.Fprintf(w, "\n%s: zone pairs with p-value above %.2f\n\n", s.Subject, s.Threshold)
	}

	same := s.NotSignificant()
	for _, c := range same {
		p.Fprintf(w, "(%d, %d): %.4f\n", c.ZoneA, c.ZoneB, c.PValue)
	}
	p.Fprintf(w, "\nNo difference: %d of %d\n", len(same), len(s.Comparisons))

	for _, f := range s.Failures {
		p.Fprintf(w, "Failed (%d, %d): %v\n", f.ZoneA, f.ZoneB, f.Err)
	}
}

// PrintRankings prints the zones from most to least ready.
func PrintRankings(w io.Writer, s *Summary) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "\n\n%s\n\n", s.Title)

	for _, r := range s.Ranking() {
		p.Fprintf(w, "%02d. Zone %-2d  --  %6.2f%%  %6d students\n",
			r.Position, r.Zone, r.Readiness*100, r.Size)
	}

	p.Fprintf(w, "\nMean Readiness: %.4f\n", s.Mean)
	p.Fprintf(w, "Variance (Readiness): %.6f\n", s.Variance)
}
