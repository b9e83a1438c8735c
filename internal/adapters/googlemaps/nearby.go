package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"food-finder-service/internal/domain"
	"food-finder-service/internal/platform/obs"
)

type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// SearchNearby finds venues of one category around a center point using
// the Places nearby search API. Results are cached per
// (center, radius, category).
func (c *Client) SearchNearby(
	ctx context.Context,
	center domain.Coordinate,
	radiusMeters int,
	category domain.SearchCategory,
) (_ []domain.PlaceCandidate, err error) {
	defer obs.Time(ctx, "googlemaps.SearchNearby")(&err)

	cacheKey := fmt.Sprintf("%s|%d|%s", center, radiusMeters, category)
	if c.searchCache != nil {
		cached, ok, err := c.searchCache.Get(ctx, cacheKey)
		if err != nil {
			return nil, fmt.Errorf("nearby search: read cache: %w", err)
		}
		if ok {
			return cached, nil
		}
	}

	query := url.Values{}
	query.Set("location", center.String())
	query.Set("radius", strconv.Itoa(radiusMeters))
	query.Set("type", string(category))

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, "/maps/api/place/nearbysearch/json", query)
	})
	if err != nil {
		return nil, fmt.Errorf("nearby search: execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("nearby search: decode response: %w", err)
	}

	// ZERO_RESULTS is a valid empty outcome, not a failure.
	if decoded.Status != "OK" && decoded.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("nearby search: status=%s for category %s", decoded.Status, category)
	}

	candidates := make([]domain.PlaceCandidate, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		candidates = append(candidates, domain.PlaceCandidate{
			ID:   r.PlaceID,
			Name: r.Name,
			Location: domain.Coordinate{
				Lat: r.Geometry.Location.Lat,
				Lng: r.Geometry.Location.Lng,
			},
		})
	}

	if c.searchCache != nil {
		if err := c.searchCache.Put(ctx, cacheKey, candidates); err != nil {
			log.Printf("search cache write failed: %v", err)
		}
	}

	return candidates, nil
}
