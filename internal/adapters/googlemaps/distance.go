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

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// WalkingDistance returns the formatted walking distance between two
// points using the Distance Matrix API. The distance text is cached per
// (origin, destination) pair.
func (c *Client) WalkingDistance(ctx context.Context, origin, destination domain.Coordinate) (_ string, err error) {
	defer obs.Time(ctx, "googlemaps.WalkingDistance")(&err)

	if c.distanceCache != nil {
		text, ok, err := c.distanceCache.Get(ctx, origin.String(), destination.String())
		if err != nil {
			return "", fmt.Errorf("walking distance: read cache: %w", err)
		}
		if ok {
			return text, nil
		}
	}

	query := url.Values{}
	query.Set("origins", origin.String())
	query.Set("destinations", destination.String())
	query.Set("mode", "walking")

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, "/maps/api/distancematrix/json", query)
	})
	if err != nil {
		return "", fmt.Errorf("walking distance: execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("walking distance: decode response: %w", err)
	}

	if decoded.Status != "OK" {
		return "", fmt.Errorf("walking distance: status=%s", decoded.Status)
	}
	if len(decoded.Rows) != 1 || len(decoded.Rows[0].Elements) != 1 {
		return "", fmt.Errorf("walking distance: expected a 1x1 matrix, got %d rows", len(decoded.Rows))
	}

	element := decoded.Rows[0].Elements[0]
	if element.Status != "OK" {
		return "", fmt.Errorf("walking distance: element status=%s", element.Status)
	}

	text := element.Distance.Text
	if c.distanceCache != nil {
		if err := c.distanceCache.Put(ctx, origin.String(), destination.String(), text); err != nil {
			log.Printf("distance cache write failed: %v", err)
		}
	}

	return text, nil
}
