package domain

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	RepliedAt Timestamp `json:"repliedAt"`
	CreatedAt Timestamp `json:"createdAt"`
}

// ContactRequest is the public contact form, sent as POST /contact.
type ContactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Message  string `json:"message"`
}

func (r ContactRequest) Validate() error {
	f := FieldErrors{}
	f.required("fullName", r.FullName, "Name is required")
	if f.required("email", r.Email, "Email is required") {
		f.match("email", r.Email, emailPattern, "Invalid email")
	}
	if r.Phone != "" {
		f.match("phone", r.Phone, phonePattern, "Invalid phone")
	}
	if f.required("message", r.Message, "Message is required") {
		f.maxLen("message", r.Message, 5000, "Message is too long")
	}
	return f.Err()
}

// NewsletterRequest subscribes or unsubscribes an address.
type NewsletterRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func (r NewsletterRequest) Validate() error {
	f := FieldErrors{}
	if f.required("email", r.Email, "Email is required") {
		f.match("email", r.Email, emailPattern, "Invalid email")
	}
	return f.Err()
}
