package domain

// BookingStatus is the lifecycle state of a consultation booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
	BookingNoShow     BookingStatus = "NO_SHOW"
)

// BookingStatuses lists every status in lifecycle order.
var BookingStatuses = []BookingStatus{
	BookingPending, BookingConfirmed, BookingInProgress,
	BookingCompleted, BookingCancelled, BookingNoShow,
}

// Valid reports whether s is a known status.
func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is expected.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled || s == BookingNoShow
}

// Booking is a consultation lead captured from the public site.
type Booking struct {
	ID            int64         `json:"id"`
	FullName      string        `json:"fullName"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	BusinessName  string        `json:"businessName,omitempty"`
	City          string        `json:"city,omitempty"`
	ServiceType   string        `json:"serviceType"`
	MonthlyBudget string        `json:"monthlyBudget,omitempty"`
	Message       string        `json:"message,omitempty"`
	Status        BookingStatus `json:"status"`
	ScheduledDate Timestamp     `json:"scheduledDate"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     Timestamp     `json:"createdAt"`
	UpdatedAt     Timestamp     `json:"updatedAt"`
}

// Option is a value/label pair offered by a form select.
type Option struct {
	Value string
	Label string
}

// ServiceTypes are the services a visitor can request a consultation for.
var ServiceTypes = []Option{
	{"paid-advertising", "Paid Advertising"},
	{"social-media-marketing", "Social Media Marketing"},
	{"seo", "SEO Services"},
	{"content-marketing", "Content Marketing"},
	{"analytics-reporting", "Analytics & Reporting"},
	{"website-development", "Website Development"},
	{"full-service", "Full-Service Marketing"},
}

// BudgetBands are the monthly budget ranges offered on the booking form.
var BudgetBands = []Option{
	{"under-50k", "Under ₹50,000/month"},
	{"50k-1L", "₹50,000 - ₹1,00,000/month"},
	{"1L-2L", "₹1,00,000 - ₹2,00,000/month"},
	{"2L-5L", "₹2,00,000 - ₹5,00,000/month"},
	{"above-5L", "Above ₹5,00,000/month"},
}

func hasOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

// BookingRequest is the public booking form, sent as POST /bookings.
type BookingRequest struct {
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	BusinessName  string `json:"businessName,omitempty"`
	ServiceType   string `json:"serviceType"`
	MonthlyBudget string `json:"monthlyBudget,omitempty"`
	City          string `json:"city,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Validate applies the booking form constraints. It returns FieldErrors
// keyed by the JSON field names.
func (r BookingRequest) Validate() error {
	f := FieldErrors{}
	if f.required("fullName", r.FullName, "Name is required") {
		f.maxLen("fullName", r.FullName, 100, "Name is too long")
	}
	if f.required("phone", r.Phone, "Phone is required") {
		f.match("phone", r.Phone, phonePattern, "Invalid phone")
	}
	if f.required("email", r.Email, "Email is required") {
		f.match("email", r.Email, emailPattern, "Invalid email")
	}
	if f.required("serviceType", r.ServiceType, "Please select a service") && !hasOption(ServiceTypes, r.ServiceType) {
		f["serviceType"] = "Please select a service"
	}
	if r.MonthlyBudget != "" && !hasOption(BudgetBands, r.MonthlyBudget) {
		f["monthlyBudget"] = "Unknown budget range"
	}
	f.maxLen("businessName", r.BusinessName, 200, "Business name is too long")
	f.maxLen("message", r.Message, 2000, "Message is too long")
	return f.Err()
}

// BookingStats are the counters behind GET /bookings/stats.
type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Today     int64 `json:"today"`
}
