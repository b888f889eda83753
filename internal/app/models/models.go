package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// IsValid reports whether r is a known role.
func (r RoleType) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// Status is the decision state shared by applications and documents.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether s is a terminal decision an admin may set.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether a record in state s may move to next.
// Only pending records can be decided, and only to approved or rejected.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.IsDecision()
}

// UniversityType is the public/private category of a university.
type UniversityType string

const (
	UniversityPublic  UniversityType = "Public"
	UniversityPrivate UniversityType = "Private"
)

// IsValid reports whether t is a known category.
func (t UniversityType) IsValid() bool {
	return t == UniversityPublic || t == UniversityPrivate
}
