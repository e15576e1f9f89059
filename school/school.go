package school

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrEmptyName indicates an attempt to enroll a student with no name.
var ErrEmptyName = errors.New("school: student name is empty")

// School maps grade numbers to enrolled students.
type School struct {
	mu     sync.RWMutex
	grades map[uint32][]string
}

// New returns an empty roster.
func New() *School {
	return &School{grades: make(map[uint32][]string)}
}

// Add enrolls student in grade. Enrolling the same name twice keeps both entries.
func (s *School) Add(grade uint32, student string) error {
	if student == "" {
		return fmt.Errorf("%w (grade %d)", ErrEmptyName, grade)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grades[grade] = append(s.grades[grade], student)

	return nil
}

// Grades returns every grade with at least one student, ascending.
func (s *School) Grades() []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]uint32, 0, len(s.grades))
	for g := range s.grades {
		out = append(out, g)
	}
	slices.Sort(out)

	return out
}

// Grade returns the students of grade sorted by name; an unknown grade
// yields an empty, non-nil slice.
func (s *School) Grade(grade uint32) []string {
	s.mu.RLock()
	out := slices.Clone(s.grades[grade])
	s.mu.RUnlock()
	if out == nil {
		out = []string{}
	}
	slices.Sort(out)

	return out
}
