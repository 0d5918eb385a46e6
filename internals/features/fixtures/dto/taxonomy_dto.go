package dto

import "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/taxonomy"

type SectionResponse struct {
	Name    string              `json:"name"`
	Kind    taxonomy.Kind       `json:"kind"`
	Grades  []string            `json:"grades"`
	Classes []string            `json:"classes,omitempty"`
	Streams map[string][]string `json:"streams,omitempty"`
}

func FromTaxonomy(t taxonomy.Taxonomy) []SectionResponse {
	out := make([]SectionResponse, 0, len(t.Sections))
	for _, s := range t.Sections {
		resp := SectionResponse{Name: s.Name, Kind: s.Layout.Kind(), Grades: s.Grades}
		switch l := s.Layout.(type) {
		case taxonomy.FlatClasses:
			resp.Classes = []string(l)
		case taxonomy.StreamedClasses:
			resp.Streams = make(map[string][]string, len(l))
			for _, st := range l {
				resp.Streams[st.Name] = st.Classes
			}
		}
		out = append(out, resp)
	}
	return out
}
