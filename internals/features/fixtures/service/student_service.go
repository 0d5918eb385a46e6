package service

import (
	"fmt"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
)

// GenerateStudents walks the taxonomy and returns students in creation order.
// Registration numbers are the prefix plus the 1-based creation index, zero-padded to 4.
func (g *Generator) GenerateStudents() ([]model.Student, error) {
	var students []model.Student
	for _, p := range g.opts.Taxonomy.Placements() {
		n := g.intBetween(g.opts.rangeFor(p.Kind))
		for i := 0; i < n; i++ {
			id, err := g.newStudentID()
			if err != nil {
				return nil, err
			}
			now := g.nowMillis()
			students = append(students, model.Student{
				ID:                 id,
				Name:               g.pick(g.opts.FirstNames) + " " + g.pick(g.opts.LastNames),
				RegistrationNumber: fmt.Sprintf("%s%04d", g.opts.RegistrationPrefix, len(students)+1),
				Grade:              p.Grade,
				Class:              p.Class,
				Stream:             p.Stream,
				Section:            p.Section,
				CreatedAt:          now,
				UpdatedAt:          now,
			})
		}
	}
	return students, nil
}
