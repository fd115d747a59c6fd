package model

// ContactForm is the body of POST /api/contact
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// BusinessSubmission is the body of POST /api/submit-business
type BusinessSubmission struct {
	BusinessName    string `json:"businessName"`
	OwnerName       string `json:"ownerName"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Website         string `json:"website"`
	City            string `json:"city"`
	State           string `json:"state"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	Services        string `json:"services,omitempty"` // free text, comma or newline separated
	SocialInstagram string `json:"socialInstagram,omitempty"`
	SocialFacebook  string `json:"socialFacebook,omitempty"`
	AdditionalInfo  string `json:"additionalInfo,omitempty"`
}

// FormResponse is the JSON envelope returned by the form endpoints
type FormResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
