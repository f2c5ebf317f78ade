package domain

import "strings"

// Service is an agency offering shown on the public site.
type Service struct {
	ID                int64    `json:"id,omitempty"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Icon              string   `json:"icon,omitempty"`
	ShortDescription  string   `json:"shortDescription,omitempty"`
	Description       string   `json:"description,omitempty"`
	Features          []string `json:"features,omitempty"`
	PriceStartingFrom float64  `json:"priceStartingFrom,omitempty"`
	DisplayOrder      int      `json:"displayOrder"`
	Active            bool     `json:"isActive"`
}

// Validate checks the admin service form.
func (s Service) Validate() error {
	f := FieldErrors{}
	f.required("name", s.Name, "Name is required")
	if f.required("slug", s.Slug, "Slug is required") {
		f.match("slug", s.Slug, slugPattern, "Use lower-case letters, digits and dashes")
	}
	if s.PriceStartingFrom < 0 {
		f["priceStartingFrom"] = "Price cannot be negative"
	}
	return f.Err()
}

// Testimonial is a client quote shown on the public site.
type Testimonial struct {
	ID             int64     `json:"id,omitempty"`
	AuthorName     string    `json:"authorName"`
	AuthorRole     string    `json:"authorRole,omitempty"`
	CompanyName    string    `json:"companyName,omitempty"`
	Content        string    `json:"content"`
	Rating         int       `json:"rating"`
	AvatarInitials string    `json:"avatarInitials,omitempty"`
	Featured       bool      `json:"isFeatured"`
	Active         bool      `json:"isActive"`
	DisplayOrder   int       `json:"displayOrder"`
	CreatedAt      Timestamp `json:"createdAt"`
}

// Initials is the avatar text: AvatarInitials when set, otherwise derived
// from AuthorName.
func (t Testimonial) Initials() string {
	if v := strings.TrimSpace(t.AvatarInitials); v != "" {
		return strings.ToUpper(v)
	}
	return initials(t.AuthorName)
}

// Validate checks the admin testimonial form.
func (t Testimonial) Validate() error {
	f := FieldErrors{}
	f.required("authorName", t.AuthorName, "Author is required")
	f.required("content", t.Content, "Content is required")
	if t.Rating < 1 || t.Rating > 5 {
		f["rating"] = "Rating must be between 1 and 5"
	}
	return f.Err()
}
