package dto

// MarkReadRequest marks every notification of a user as read. UserID defaults
// to the caller.
type MarkReadRequest struct {
	UserID int64 `json:"user_id" binding:"omitempty,min=1"`
}

// MarkReadResponse reports how many notifications changed
type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

// UnreadCountResponse carries a user's unread notification count
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
