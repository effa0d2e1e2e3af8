package models

import "time"

// LoginRequest is the credential pair submitted to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by the login and logout endpoints.
type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    *Identity `json:"user,omitempty"`
}

// MeResponse is returned by the "who am I" endpoint.
type MeResponse struct {
	Authenticated bool      `json:"authenticated"`
	User          *Identity `json:"user,omitempty"`
	Message       string    `json:"message,omitempty"`
}

// ContactRequest is a visitor message submitted through the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse reports the outcome of a contact form submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DatabaseStatus describes whether the content database is reachable and
// how far its configuration got (DSN present, DSN valid, client created).
type DatabaseStatus struct {
	Connected   bool      `json:"connected"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	HasDSN      bool      `json:"hasUrl"`
	IsValid     bool      `json:"isValid"`
	CanConnect  bool      `json:"canConnect"`
	Error       string    `json:"error,omitempty"`
}

// EmailStatus reports whether outbound mail is configured.
type EmailStatus struct {
	HasResendAPIKey bool `json:"hasResendApiKey"`
}
