package gradebook

import "sort"

// Band is the qualitative grade category used for display coloring.
// Every view must classify through ClassifyPercentage; the thresholds
// live in exactly one place.
type Band string

const (
	BandExcellent Band = "excellent" // >= 90
	BandGood      Band = "good"      // >= 80
	BandFair      Band = "fair"      // >= 70
	BandPoor      Band = "poor"      // < 70
)

// ClassifyPercentage maps a percentage to its Band. Lower boundaries
// are inclusive: exactly 90 is excellent. Total function; out-of-range
// inputs still classify.
func ClassifyPercentage(p float64) Band {
	switch {
	case p >= 90:
		return BandExcellent
	case p >= 80:
		return BandGood
	case p >= 70:
		return BandFair
	default:
		return BandPoor
	}
}

// FindGrade returns the first grade in the snapshot matching both ids.
// Duplicates per (student, assignment) pair are not supposed to exist,
// but the store does not prevent them; the earliest-indexed one wins.
func FindGrade(studentID, assignmentID string, grades []Grade) (Grade, bool) {
	for _, g := range grades {
		if g.StudentID == studentID && g.AssignmentID == assignmentID {
			return g, true
		}
	}
	return Grade{}, false
}

// StudentAverage computes the student's average over the given
// assignments as a percentage. Each assignment counts equally
// regardless of its point value. Assignments with no recorded grade
// are skipped; ok is false when none resolve, since a student with no
// grades is not a student averaging 0%.
func StudentAverage(studentID string, assignments []Assignment, grades []Grade) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, a := range assignments {
		g, found := FindGrade(studentID, a.ID, grades)
		if !found {
			continue
		}
		sum += g.Score / a.Points * 100
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// ClassAssignments filters the snapshot down to one class's
// assignments, preserving snapshot order.
func ClassAssignments(classID string, assignments []Assignment) []Assignment {
	out := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.ClassID == classID {
			out = append(out, a)
		}
	}
	return out
}

// RecentGrades returns up to max grades ordered by submitted date,
// newest first. The input snapshot is not mutated.
func RecentGrades(grades []Grade, max int) []Grade {
	sorted := make([]Grade, len(grades))
	copy(sorted, grades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SubmittedDate.After(sorted[j].SubmittedDate)
	})
	if max >= 0 && len(sorted) > max {
		sorted = sorted[:max]
	}
	return sorted
}
