package domain

import (
	"strconv"
	"strings"
)

// Platform is the ad network a campaign runs on.
type Platform string

const (
	PlatformGoogleAds Platform = "GOOGLE_ADS"
	PlatformFacebook  Platform = "FACEBOOK"
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformYouTube   Platform = "YOUTUBE"
	PlatformLinkedIn  Platform = "LINKEDIN"
	PlatformTwitter   Platform = "TWITTER"
)

// Platforms lists every supported platform.
var Platforms = []Platform{
	PlatformGoogleAds, PlatformFacebook, PlatformInstagram,
	PlatformYouTube, PlatformLinkedIn, PlatformTwitter,
}

func (p Platform) Valid() bool {
	for _, v := range Platforms {
		if p == v {
			return true
		}
	}
	return false
}

// CampaignStatus is the lifecycle state of an ad campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "DRAFT"
	CampaignActive    CampaignStatus = "ACTIVE"
	CampaignPaused    CampaignStatus = "PAUSED"
	CampaignCompleted CampaignStatus = "COMPLETED"
	CampaignCancelled CampaignStatus = "CANCELLED"
)

var CampaignStatuses = []CampaignStatus{
	CampaignDraft, CampaignActive, CampaignPaused, CampaignCompleted, CampaignCancelled,
}

func (s CampaignStatus) Valid() bool {
	for _, v := range CampaignStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Campaign represents an advertising campaign run for a client.
// Budgets and spend are in rupees.
type Campaign struct {
	ID                int64          `json:"id"`
	ClientName        string         `json:"clientName"`
	ClientEmail       string         `json:"clientEmail"`
	ClientPhone       string         `json:"clientPhone,omitempty"`
	BusinessName      string         `json:"businessName"`
	Platform          Platform       `json:"platform"`
	CampaignType      string         `json:"campaignType"`
	TargetLocation    string         `json:"targetLocation,omitempty"`
	BudgetDaily       float64        `json:"budgetDaily,omitempty"`
	BudgetMonthly     float64        `json:"budgetMonthly,omitempty"`
	StartDate         Timestamp      `json:"startDate"`
	EndDate           Timestamp      `json:"endDate"`
	TargetAudience    string         `json:"targetAudience,omitempty"`
	CampaignObjective string         `json:"campaignObjective,omitempty"`
	Status            CampaignStatus `json:"status"`
	Impressions       int64          `json:"impressions"`
	Clicks            int64          `json:"clicks"`
	Conversions       int64          `json:"conversions"`
	Spend             float64        `json:"spend"`
	CreatedAt         Timestamp      `json:"createdAt"`
	UpdatedAt         Timestamp      `json:"updatedAt"`
}

// CTR is the click-through rate in percent, zero without impressions.
func (c Campaign) CTR() float64 {
	if c.Impressions <= 0 {
		return 0
	}
	return float64(c.Clicks) / float64(c.Impressions) * 100
}

// CampaignFilter narrows GET /campaigns. Zero values mean "all".
type CampaignFilter struct {
	Platform Platform
	Status   CampaignStatus
}

// CampaignRequest is the admin "new campaign" form.
type CampaignRequest struct {
	ClientName        string   `json:"clientName"`
	ClientEmail       string   `json:"clientEmail"`
	BusinessName      string   `json:"businessName"`
	Platform          Platform `json:"platform"`
	CampaignType      string   `json:"campaignType"`
	TargetLocation    string   `json:"targetLocation,omitempty"`
	BudgetMonthly     float64  `json:"budgetMonthly,omitempty"`
	CampaignObjective string   `json:"campaignObjective,omitempty"`
}

// Validate applies the create-campaign form constraints.
func (r CampaignRequest) Validate() error {
	f := FieldErrors{}
	f.required("clientName", r.ClientName, "Client name is required")
	if f.required("clientEmail", r.ClientEmail, "Client email is required") {
		f.match("clientEmail", r.ClientEmail, emailPattern, "Invalid email")
	}
	f.required("businessName", r.BusinessName, "Business name is required")
	if !r.Platform.Valid() {
		f["platform"] = "Unknown platform"
	}
	f.required("campaignType", r.CampaignType, "Campaign type is required")
	if r.BudgetMonthly < 0 {
		f["budgetMonthly"] = "Budget cannot be negative"
	}
	return f.Err()
}

// MetricsUpdate carries the campaign counters to overwrite. Nil fields are
// left unchanged by the backend.
type MetricsUpdate struct {
	Impressions *int64
	Clicks      *int64
	Conversions *int64
	Spend       *float64
}

// Empty reports whether no counter is set.
func (m MetricsUpdate) Empty() bool {
	return m.Impressions == nil && m.Clicks == nil && m.Conversions == nil && m.Spend == nil
}

// Validate rejects negative counters and clicks above impressions.
func (m MetricsUpdate) Validate() error {
	f := FieldErrors{}
	if m.Empty() {
		f["metrics"] = "Enter at least one metric"
	}
	if m.Impressions != nil && *m.Impressions < 0 {
		f["impressions"] = "Must not be negative"
	}
	if m.Clicks != nil && *m.Clicks < 0 {
		f["clicks"] = "Must not be negative"
	}
	if m.Conversions != nil && *m.Conversions < 0 {
		f["conversions"] = "Must not be negative"
	}
	if m.Spend != nil && *m.Spend < 0 {
		f["spend"] = "Must not be negative"
	}
	if m.Impressions != nil && m.Clicks != nil && *m.Clicks > *m.Impressions {
		f["clicks"] = "Clicks cannot exceed impressions"
	}
	return f.Err()
}

// Query renders the set counters as PATCH query parameters.
func (m MetricsUpdate) Query() map[string]string {
	q := map[string]string{}
	if m.Impressions != nil {
		q["impressions"] = strconv.FormatInt(*m.Impressions, 10)
	}
	if m.Clicks != nil {
		q["clicks"] = strconv.FormatInt(*m.Clicks, 10)
	}
	if m.Conversions != nil {
		q["conversions"] = strconv.FormatInt(*m.Conversions, 10)
	}
	if m.Spend != nil {
		q["spend"] = strconv.FormatFloat(*m.Spend, 'f', -1, 64)
	}
	return q
}

// CampaignStats are the counters behind GET /campaigns/stats.
type CampaignStats struct {
	Total             int64     `json:"total"`
	Active            int64     `json:"active"`
	Draft             int64     `json:"draft"`
	Paused            int64     `json:"paused"`
	PlatformBreakdown Breakdown `json:"platformBreakdown"`
}

// Label turns an enum constant such as GOOGLE_ADS into "Google Ads".
func Label(v string) string {
	words := strings.FieldsFunc(strings.ToLower(v), func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		switch w {
		case "seo":
			words[i] = "SEO"
		case "youtube":
			words[i] = "YouTube"
		case "linkedin":
			words[i] = "LinkedIn"
		default:
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
