package providers

// EmailProvider defines the interface for sending emails
type EmailProvider interface {
	SendEmail(to, subject, body string, isHTML bool) error
}

// GeocodeConfidence tiers returned by geocoding
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// GeocodeResult is a best-effort coordinate for a meeting point
type GeocodeResult struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Confidence string  `json:"confidence"`
}

// GeocodeProvider resolves a free-text meeting point to coordinates.
// Implementations always return a usable result, degrading through
// area-level and city-centre fallbacks instead of failing.
type GeocodeProvider interface {
	Geocode(meetingPoint, area, city string) *GeocodeResult
}
