// Package taxonomy describes the school's Section → Grade → (Stream) → Class tree.
package taxonomy

import (
	"fmt"
	"strings"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/constants"
)

// Kind tags how a section organises its classes.
type Kind string

const (
	KindFlat     Kind = "flat"
	KindStreamed Kind = "streamed"
)

// Layout is the class organisation of a section. The only implementations
// are FlatClasses and StreamedClasses.
type Layout interface {
	Kind() Kind
	expand(section, grade string) []Placement
	empty() bool
}

// FlatClasses pairs every grade with every listed class.
type FlatClasses []string

func (FlatClasses) Kind() Kind { return KindFlat }

func (f FlatClasses) expand(section, grade string) []Placement {
	out := make([]Placement, 0, len(f))
	for _, class := range f {
		out = append(out, Placement{Section: section, Grade: grade, Class: class, Kind: KindFlat})
	}
	return out
}

func (f FlatClasses) empty() bool { return len(f) == 0 }

type Stream struct {
	Name    string
	Classes []string
}

// StreamedClasses pairs every grade with every class of every stream.
type StreamedClasses []Stream

func (StreamedClasses) Kind() Kind { return KindStreamed }

func (s StreamedClasses) expand(section, grade string) []Placement {
	var out []Placement
	for _, stream := range s {
		for _, class := range stream.Classes {
			out = append(out, Placement{Section: section, Grade: grade, Class: class, Stream: stream.Name, Kind: KindStreamed})
		}
	}
	return out
}

func (s StreamedClasses) empty() bool {
	for _, stream := range s {
		if len(stream.Classes) > 0 {
			return false
		}
	}
	return true
}

// Placement is one (section, grade, stream?, class) slot students are created into.
type Placement struct {
	Section string
	Grade   string
	Class   string
	Stream  string // empty outside streamed sections
	Kind    Kind
}

type Section struct {
	Name   string
	Grades []string
	Layout Layout
}

// Placements expands the section grade by grade, in declaration order.
func (s Section) Placements() []Placement {
	var out []Placement
	for _, grade := range s.Grades {
		out = append(out, s.Layout.expand(s.Name, grade)...)
	}
	return out
}

type Taxonomy struct {
	Sections []Section
}

func (t Taxonomy) Placements() []Placement {
	var out []Placement
	for _, s := range t.Sections {
		out = append(out, s.Placements()...)
	}
	return out
}

// Validate rejects taxonomies that would produce no students.
func (t Taxonomy) Validate() error {
	if len(t.Sections) == 0 {
		return constants.ErrEmptyTaxonomy
	}
	for _, s := range t.Sections {
		if s.Layout == nil || s.Layout.empty() {
			return fmt.Errorf("section %q has no classes", s.Name)
		}
		if len(s.Grades) == 0 {
			return fmt.Errorf("section %q has no grades", s.Name)
		}
	}
	return nil
}

// StreamNames lists every stream name across streamed sections.
func (t Taxonomy) StreamNames() []string {
	var names []string
	for _, s := range t.Sections {
		if streamed, ok := s.Layout.(StreamedClasses); ok {
			for _, st := range streamed {
				names = append(names, st.Name)
			}
		}
	}
	return names
}

// Section looks up a section by name, ignoring case.
func (t Taxonomy) Section(name string) (Section, bool) {
	for _, s := range t.Sections {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Section{}, false
}

// Default is the stock four-section school.
func Default() Taxonomy {
	return Taxonomy{Sections: []Section{
		{
			Name:   "Primary",
			Grades: []string{"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5"},
			Layout: FlatClasses{"A", "B", "C"},
		},
		{
			Name:   "Middle",
			Grades: []string{"Grade 6", "Grade 7", "Grade 8"},
			Layout: FlatClasses{"A", "B", "C", "D"},
		},
		{
			Name:   "Upper",
			Grades: []string{"Grade 9", "Grade 10", "Grade 11"},
			Layout: FlatClasses{"A", "B", "C", "D"},
		},
		{
			Name:   "Advanced",
			Grades: []string{"Grade 12", "Grade 13"},
			Layout: StreamedClasses{
				{Name: "Arts", Classes: []string{"Arts-A", "Arts-B"}},
				{Name: "Science", Classes: []string{"Science-A", "Science-B"}},
				{Name: "Commerce", Classes: []string{"Commerce-A", "Commerce-B"}},
				{Name: "Technology", Classes: []string{"Tech-A", "Tech-B"}},
			},
		},
	}}
}
