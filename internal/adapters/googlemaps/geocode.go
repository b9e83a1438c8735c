package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"food-finder-service/internal/domain"
	"food-finder-service/internal/platform/obs"
)

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address using the Geocoding API (/maps/api/geocode).
// Cached coordinates are returned without an external call.
func (c *Client) Geocode(ctx context.Context, address string) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "googlemaps.Geocode")(&err)

	norm := c.normalize(address)
	if norm == "" {
		return domain.Coordinate{}, fmt.Errorf("geocode: address must be non-empty")
	}

	if c.geocodeCache != nil {
		coord, ok, err := c.geocodeCache.Get(ctx, norm)
		if err != nil {
			return domain.Coordinate{}, fmt.Errorf("geocode: read cache: %w", err)
		}
		if ok {
			return coord, nil
		}
	}

	query := url.Values{}
	query.Set("address", norm)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, "/maps/api/geocode/json", query)
	})
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode: execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinate{}, fmt.Errorf("geocode: decode response: %w", err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return domain.Coordinate{}, fmt.Errorf("geocode: no results for %q (status=%s)", norm, decoded.Status)
	}

	loc := decoded.Results[0].Geometry.Location
	coord := domain.Coordinate{Lat: loc.Lat, Lng: loc.Lng}

	if c.geocodeCache != nil {
		if err := c.geocodeCache.Put(ctx, norm, coord); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coord, nil
}
