package models

// DashboardStats aggregates counts shown on the admin dashboard.
type DashboardStats struct {
	Students                int64 `json:"students"`
	Universities            int64 `json:"universities"`
	Scholarships            int64 `json:"scholarships"`
	UniversityApplications  int64 `json:"university_applications"`
	ScholarshipApplications int64 `json:"scholarship_applications"`
	PendingDecisions        int64 `json:"pending_decisions"`
	LiveConnections         int   `json:"live_connections"`
}
