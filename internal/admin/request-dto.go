package admin

// LoginRequest is the admin console login form
type LoginRequest struct {
	Password string `json:"password" validate:"required,min=1"`
}
