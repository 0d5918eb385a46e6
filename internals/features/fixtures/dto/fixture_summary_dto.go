package dto

// FixtureSummary is a compact description of a generated document.
type FixtureSummary struct {
	Sections          int            `json:"sections"`
	Students          int            `json:"students"`
	StudentsBySection map[string]int `json:"students_by_section"`
	Dates             []string       `json:"dates"`
	ClassRecords      int            `json:"class_records"`
	Marks             int            `json:"marks"`
	TotalPresent      int            `json:"total_present"`
	TotalAbsent       int            `json:"total_absent"`
	CacheKeys         []string       `json:"cache_keys"`
}
