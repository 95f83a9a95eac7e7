package providers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"findmyrun.app/config"
)

// cityCoordinates holds city-centre fallbacks used when geocoding fails
// or returns nothing useful.
var cityCoordinates = map[string]GeocodeResult{
	"Manchester": {Lat: 53.4808, Lng: -2.2426},
	"London":     {Lat: 51.5074, Lng: -0.1278},
	"Birmingham": {Lat: 52.4862, Lng: -1.8904},
	"Leeds":      {Lat: 53.8008, Lng: -1.5491},
	"Bristol":    {Lat: 51.4545, Lng: -2.5879},
	"Edinburgh":  {Lat: 55.9533, Lng: -3.1883},
	"Glasgow":    {Lat: 55.8642, Lng: -4.2518},
	"Liverpool":  {Lat: 53.4084, Lng: -2.9916},
	"Sheffield":  {Lat: 53.3811, Lng: -1.4701},
	"Newcastle":  {Lat: 54.9783, Lng: -1.6178},
	"Nottingham": {Lat: 52.9548, Lng: -1.1581},
	"Brighton":   {Lat: 50.8225, Lng: -0.1372},
	"Oxford":     {Lat: 51.7520, Lng: -1.2577},
	"Cambridge":  {Lat: 52.2053, Lng: 0.1218},
	"Cardiff":    {Lat: 51.4816, Lng: -3.1791},
}

// MapboxGeocoder implements GeocodeProvider against the Mapbox forward
// geocoding API, degrading to area-level and city-centre coordinates.
type MapboxGeocoder struct {
	accessToken string
	baseURL     string
	client      *http.Client
}

// NewMapboxGeocoder creates a new Mapbox geocoding provider
func NewMapboxGeocoder(config *config.GeocodeConfig) *MapboxGeocoder {
	return &MapboxGeocoder{
		accessToken: config.MapboxToken,
		baseURL:     config.BaseURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type mapboxResponse struct {
	Features []struct {
		Center    []float64 `json:"center"`
		Relevance float64   `json:"relevance"`
	} `json:"features"`
}

// Geocode resolves a meeting point to coordinates. Never returns an error:
// on any failure it falls back to the city centre, defaulting to London for
// unknown cities, so approval flows are never blocked by geocoding.
func (g *MapboxGeocoder) Geocode(meetingPoint, area, city string) *GeocodeResult {
	if g.accessToken == "" {
		log.Println("[WARNING] No Mapbox token configured, using city centre fallback")
		return g.cityFallback(city)
	}

	query := fmt.Sprintf("%s, %s, %s, UK", meetingPoint, area, city)
	if result := g.lookup(query); result != nil {
		confidence := ConfidenceLow
		if result.Relevance > 0.8 {
			confidence = ConfidenceHigh
		} else if result.Relevance > 0.5 {
			confidence = ConfidenceMedium
		}
		return &GeocodeResult{Lat: result.Lat, Lng: result.Lng, Confidence: confidence}
	}

	// No result for the full address; retry at area level
	if result := g.lookup(fmt.Sprintf("%s, %s, UK", area, city)); result != nil {
		return &GeocodeResult{Lat: result.Lat, Lng: result.Lng, Confidence: ConfidenceMedium}
	}

	return g.cityFallback(city)
}

type lookupResult struct {
	Lat       float64
	Lng       float64
	Relevance float64
}

func (g *MapboxGeocoder) lookup(query string) *lookupResult {
	requestURL := fmt.Sprintf("%s/%s.json?access_token=%s&country=gb&limit=1",
		g.baseURL, url.PathEscape(query), url.QueryEscape(g.accessToken))

	resp, err := g.client.Get(requestURL)
	if err != nil {
		log.Printf("[ERROR] Geocoding request failed: %v\n", err)
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Geocoding API returned status code %d\n", resp.StatusCode)
		return nil
	}

	var decoded mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("[ERROR] Failed to decode geocoding response: %v\n", err)
		return nil
	}

	if len(decoded.Features) == 0 || len(decoded.Features[0].Center) < 2 {
		return nil
	}

	feature := decoded.Features[0]
	return &lookupResult{
		Lat:       feature.Center[1],
		Lng:       feature.Center[0],
		Relevance: feature.Relevance,
	}
}

func (g *MapboxGeocoder) cityFallback(city string) *GeocodeResult {
	fallback, ok := cityCoordinates[city]
	if !ok {
		fallback = cityCoordinates["London"]
	}
	return &GeocodeResult{Lat: fallback.Lat, Lng: fallback.Lng, Confidence: ConfidenceLow}
}
