package admin

import "time"

// LoginRecord is one entry in the admin login history
type LoginRecord struct {
	Timestamp time.Time `json:"timestamp"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent,omitempty"`
	Success   bool      `json:"success"`
}

// Session is the result of a successful login
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Dashboard aggregates the admin console landing page data
type Dashboard struct {
	EventName    string      `json:"eventName"`
	SystemActive bool        `json:"systemActive"`
	LayoutMode   string      `json:"layoutMode"`
	Reservations interface{} `json:"reservations"`
	LastLogin    *time.Time  `json:"lastLogin,omitempty"`
}
