// Package school keeps a grade-school roster: which students are enrolled
// in which grade.
//
// Grades are listed in ascending order and each grade's students
// alphabetically. Every accessor returns a fresh copy, so callers can keep
// or modify results without touching the roster. A School is safe for
// concurrent use.
//
//	s := school.New()
//	_ = s.Add(2, "Blair")
//	_ = s.Add(2, "Aimee")
//	s.Grades()  // [2]
//	s.Grade(2)  // [Aimee Blair]
package school
