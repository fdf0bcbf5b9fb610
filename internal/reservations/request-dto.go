package reservations

// UpdateStatusRequest is the body for an admin status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}
