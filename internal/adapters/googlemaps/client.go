package googlemaps

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"food-finder-service/internal/ports"
)

// Client implements the Geocoder, NearbySearcher, DetailFetcher and
// DistanceProvider ports against the Google Maps web services.
//
// It coordinates:
//   - Address normalization
//   - Response caching behind the injected cache ports (nil-safe)
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string

	geocodeCache  ports.GeocodeCache
	searchCache   ports.SearchResultCache
	detailCache   ports.DetailCache
	distanceCache ports.DistanceCache
}

// Caches are the optional response caches consulted before any external
// call. A nil field means that call class is never cached.
type Caches struct {
	Geocode  ports.GeocodeCache
	Search   ports.SearchResultCache
	Detail   ports.DetailCache
	Distance ports.DistanceCache
}

func NewClient(apiKey string, caches Caches) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google maps api key is empty")
	}

	client := &Client{
		session:       &http.Client{Timeout: 10 * time.Second},
		apiKey:        apiKey,
		baseURL:       "https://maps.googleapis.com",
		geocodeCache:  caches.Geocode,
		searchCache:   caches.Search,
		detailCache:   caches.Detail,
		distanceCache: caches.Distance,
	}

	return client, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (c *Client) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
