package dto

// ContactRequest is the inbound payload for POST /api/contact.
// Phone and budget are optional; everything else is required.
type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
}
