package booking

// SelectDateRequest sets the active booking date for a session
type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// ToggleUnitRequest flips one unit in or out of the selection
type ToggleUnitRequest struct {
	UnitID string `json:"unitId" binding:"required"`
}

// ConfirmBookingRequest carries the checkout contact form
type ConfirmBookingRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,max=50"`
	Notes     string `json:"notes" binding:"omitempty,max=1000"`
}
