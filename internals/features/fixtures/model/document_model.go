// file: internals/features/fixtures/model/document_model.go
package model

import (
	"sort"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/helpers/dbtime"
)

// Document is the whole fixture as written to sample_data.json.
type Document struct {
	Users      map[string]User                        `json:"users"`
	Students   map[string]Student                     `json:"students"`
	Attendance map[string]map[string]*ClassAttendance `json:"attendance"` // date → class → record
	Stats      Stats                                  `json:"stats"`
}

type User struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}

type Student struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	Grade              string `json:"grade"`
	Class              string `json:"class"`
	Stream             string `json:"stream,omitempty"`
	Section            string `json:"section"`
	CreatedAt          int64  `json:"createdAt"`
	UpdatedAt          int64  `json:"updatedAt"`
}

// ClassAttendance is one class-day record; Records is keyed by student id.
type ClassAttendance struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Class         string          `json:"class"`
	Grade         string          `json:"grade"`
	Section       string          `json:"section"`
	Records       map[string]Mark `json:"records"`
	LastModified  int64           `json:"lastModified"`
	Submitted     bool            `json:"submitted"`
	SubmittedBy   string          `json:"submittedBy"`
	TotalPresent  int             `json:"totalPresent"`
	TotalAbsent   int             `json:"totalAbsent"`
	SchoolDayType string          `json:"schoolDayType"`
	Period        string          `json:"period"`
	AcademicYear  string          `json:"academicYear"`
}

type Mark struct {
	Present        bool       `json:"present"`
	Timestamp      int64      `json:"timestamp"`
	MarkedBy       string     `json:"markedBy"`
	MarkedTime     dbtime.Tod `json:"markedTime"`
	Note           string     `json:"note"`
	LastModifiedBy string     `json:"lastModifiedBy"`
	LastModifiedAt int64      `json:"lastModifiedAt"`
}

type Stats struct {
	Cached  map[string]CachedStats `json:"cached"`
	Daily   map[string]any         `json:"daily"`
	Monthly map[string]any         `json:"monthly"`
}

type CachedStats struct {
	Data      StatsData `json:"data"`
	Timestamp int64     `json:"timestamp"`
}

type StatsData struct {
	TotalPresent      int                     `json:"totalPresent"`
	TotalAbsent       int                     `json:"totalAbsent"`
	TotalDays         int                     `json:"totalDays"`
	TotalExcused      int                     `json:"totalExcused"`
	TotalLate         int                     `json:"totalLate"`
	AverageAttendance int                     `json:"averageAttendance"`
	ByDate            map[string]DayBreakdown `json:"byDate"`
	GeneratedAt       int64                   `json:"generatedAt"`
	GeneratedBy       string                  `json:"generatedBy"`
}

type DayBreakdown struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Excused int `json:"excused"`
}

// NewDocument returns a document with every container allocated,
// so empty sections serialise as {} rather than null.
func NewDocument(users map[string]User) *Document {
	if users == nil {
		users = map[string]User{}
	}
	return &Document{
		Users:      users,
		Students:   map[string]Student{},
		Attendance: map[string]map[string]*ClassAttendance{},
		Stats: Stats{
			Cached:  map[string]CachedStats{},
			Daily:   map[string]any{},
			Monthly: map[string]any{},
		},
	}
}

// Total is the number of marks recorded on the class-day.
func (a *ClassAttendance) Total() int {
	return a.TotalPresent + a.TotalAbsent
}

// StudentsInOrder returns students by registration number, i.e. creation order.
func (d *Document) StudentsInOrder() []Student {
	out := make([]Student, 0, len(d.Students))
	for _, s := range d.Students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].RegistrationNumber, out[j].RegistrationNumber
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	return out
}

// Dates returns attendance dates ascending.
func (d *Document) Dates() []string {
	dates := make([]string, 0, len(d.Attendance))
	for date := range d.Attendance {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// CacheKeys returns stats cache keys ascending.
func (d *Document) CacheKeys() []string {
	keys := make([]string, 0, len(d.Stats.Cached))
	for k := range d.Stats.Cached {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
