package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking() BookingRequest {
	return BookingRequest{
		FullName:    "Rajesh Kumar",
		Phone:       "+919876543210",
		Email:       "rajesh@techsolutions.in",
		ServiceType: "seo",
	}
}

func TestBookingRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookingRequest)
		field  string
		msg    string
	}{
		{"valid", func(*BookingRequest) {}, "", ""},
		{"short phone", func(r *BookingRequest) { r.Phone = "123" }, "phone", "Invalid phone"},
		{"letters in phone", func(r *BookingRequest) { r.Phone = "98765abc210" }, "phone", "Invalid phone"},
		{"missing phone", func(r *BookingRequest) { r.Phone = " " }, "phone", "Phone is required"},
		{"bad email", func(r *BookingRequest) { r.Email = "rajesh@nowhere" }, "email", "Invalid email"},
		{"missing name", func(r *BookingRequest) { r.FullName = "" }, "fullName", "Name is required"},
		{"no service", func(r *BookingRequest) { r.ServiceType = "" }, "serviceType", "Please select a service"},
		{"unknown service", func(r *BookingRequest) { r.ServiceType = "astrology" }, "serviceType", "Please select a service"},
		{"unknown budget", func(r *BookingRequest) { r.MonthlyBudget = "infinite" }, "monthlyBudget", "Unknown budget range"},
		{"long message", func(r *BookingRequest) { r.Message = strings.Repeat("x", 2001) }, "message", "Message is too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBooking()
			tt.mutate(&req)
			err := req.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			var fe FieldErrors
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.msg, fe[tt.field])
		})
	}
}

func TestAPIErrorMatchesByKind(t *testing.T) {
	err := fmt.Errorf("list bookings: %w", BackendError(KindUnknown, 500, "database down"))

	assert.ErrorIs(t, err, ErrUnknown)
	assert.NotErrorIs(t, err, ErrTransport)
	assert.Equal(t, "database down", UserMessage(err, "fallback"))

	transport := NewAPIError(KindTransport, 0, "request timed out", errors.New("deadline"))
	assert.Equal(t, "fallback", UserMessage(transport, "fallback"))

	auth := NewAPIError(KindAuthentication, 0, "authentication failed", BackendError(KindSessionExpired, 401, "Invalid credentials"))
	assert.ErrorIs(t, auth, ErrAuthentication)
	assert.Equal(t, "Invalid credentials", UserMessage(auth, "fallback"))
}

func TestTimestampLayouts(t *testing.T) {
	var v struct {
		A Timestamp `json:"a"`
		B Timestamp `json:"b"`
		C Timestamp `json:"c"`
		D Timestamp `json:"d"`
	}
	raw := `{"a":"2025-03-01T10:15:30","b":"2025-03-01T10:15:30.123456","c":"2025-03-01T10:15:30Z","d":null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &v))

	assert.Equal(t, 10, v.A.Hour())
	assert.Equal(t, 123456000, v.B.Nanosecond())
	assert.Equal(t, 2025, v.C.Year())
	assert.True(t, v.D.IsZero())
}

func TestBreakdownDecodesRows(t *testing.T) {
	var s DashboardStats
	raw := `{"bookings":{"total":12,"pending":4},"platformBreakdown":[["GOOGLE_ADS",3],["FACEBOOK",1]],"serviceBreakdown":[]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, int64(12), s.Bookings.Total)
	assert.Equal(t, Breakdown{{"GOOGLE_ADS", 3}, {"FACEBOOK", 1}}, s.PlatformBreakdown)
	assert.Empty(t, s.ServiceBreakdown)

	var bad Breakdown
	assert.Error(t, json.Unmarshal([]byte(`[["GOOGLE_ADS"]]`), &bad))
}

func TestCampaignCTR(t *testing.T) {
	assert.Equal(t, 0.0, Campaign{}.CTR())
	assert.InDelta(t, 2.5, Campaign{Impressions: 400, Clicks: 10}.CTR(), 1e-9)
}

func TestMetricsUpdate(t *testing.T) {
	imp, clicks := int64(100), int64(150)
	m := MetricsUpdate{Impressions: &imp, Clicks: &clicks}
	require.ErrorIs(t, m.Validate(), ErrValidation)

	clicks = 20
	spend := 1250.5
	m.Spend = &spend
	require.NoError(t, m.Validate())
	assert.Equal(t, map[string]string{"impressions": "100", "clicks": "20", "spend": "1250.5"}, m.Query())

	assert.ErrorIs(t, MetricsUpdate{}.Validate(), ErrValidation)
}

func TestUserInitials(t *testing.T) {
	var nilUser *User
	assert.Equal(t, "AD", nilUser.Initials())
	assert.Equal(t, "PR", (&User{Name: "priya sharma"}).Initials())
	assert.Equal(t, "AD", (&User{Email: "admin@digigrow.agency"}).Initials())
	assert.Equal(t, "RK", (&User{Email: "rk@x.in"}).Initials())
}

func TestTestimonialInitials(t *testing.T) {
	assert.Equal(t, "AM", Testimonial{AuthorName: "Kiran", AvatarInitials: " am "}.Initials())
	assert.Equal(t, "KI", Testimonial{AuthorName: "kiran"}.Initials())
	assert.Equal(t, "", Testimonial{}.Initials())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Google Ads", Label("GOOGLE_ADS"))
	assert.Equal(t, "In Progress", Label("IN_PROGRESS"))
	assert.Equal(t, "Social Media Marketing", Label("social-media-marketing"))
	assert.Equal(t, "YouTube", Label("YOUTUBE"))
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingPending.Terminal())
	assert.True(t, BookingNoShow.Terminal())
	assert.False(t, BookingStatus("LOST").Valid())
}
