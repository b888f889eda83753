package models

// University is a degree-granting institution students can apply to.
type University struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Type        UniversityType `json:"type" db:"type"`
	Location    string         `json:"location" db:"location"`
	Description string         `json:"description" db:"description"`
	MinSSCGPA   float64        `json:"min_ssc_gpa" db:"min_ssc_gpa"`
	MinHSCGPA   float64        `json:"min_hsc_gpa" db:"min_hsc_gpa"`
	Website     *string        `json:"website,omitempty" db:"website"`
}

// UniversityFilter narrows a university listing.
type UniversityFilter struct {
	// Search matches name or location, case-insensitive substring
	Search string
	Type   UniversityType
}
