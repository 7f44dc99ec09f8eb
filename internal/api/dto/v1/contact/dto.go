package contact

// Field length ceilings, applied after trimming.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 320
	MaxCompanyLength = 120
	MaxMessageLength = 2000
)

// ContactRequest represents a contact form submission. Presence and bounds
// are checked by the handler pipeline rather than binding tags so malformed
// JSON, missing fields and per-field violations each get their own error.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ContactResponse represents the response after a successful submission
type ContactResponse struct {
	OK bool `json:"ok"`
}

// ContactErrorResponse is the flat error body of the contact endpoint
type ContactErrorResponse struct {
	Error string `json:"error"`
}
