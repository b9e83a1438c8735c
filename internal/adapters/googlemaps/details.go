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

const detailFields = "name,rating,formatted_phone_number,opening_hours,price_level,type,website,formatted_address,reviews,user_ratings_total"

type detailPeriodPoint struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

type detailResponse struct {
	Status string `json:"status"`
	Result struct {
		Name             string   `json:"name"`
		Rating           *float64 `json:"rating"`
		PriceLevel       int      `json:"price_level"`
		Types            []string `json:"types"`
		FormattedAddress string   `json:"formatted_address"`
		FormattedPhone   string   `json:"formatted_phone_number"`
		Website          string   `json:"website"`
		OpeningHours     struct {
			Periods []struct {
				Open  detailPeriodPoint  `json:"open"`
				Close *detailPeriodPoint `json:"close"`
			} `json:"periods"`
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
		Reviews []struct {
			Rating int    `json:"rating"`
			Text   string `json:"text"`
		} `json:"reviews"`
		UserRatingsTotal int `json:"user_ratings_total"`
	} `json:"result"`
}

// FetchDetail retrieves the enriched record for one place ID using the
// Place Details API. Results are cached by ID.
func (c *Client) FetchDetail(ctx context.Context, placeID string) (_ domain.PlaceDetail, err error) {
	defer obs.Time(ctx, "googlemaps.FetchDetail")(&err)

	if placeID == "" {
		return domain.PlaceDetail{}, fmt.Errorf("fetch detail: place id must be non-empty")
	}

	if c.detailCache != nil {
		cached, ok, err := c.detailCache.Get(ctx, placeID)
		if err != nil {
			return domain.PlaceDetail{}, fmt.Errorf("fetch detail: read cache: %w", err)
		}
		if ok {
			return cached, nil
		}
	}

	query := url.Values{}
	query.Set("place_id", placeID)
	query.Set("fields", detailFields)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, "/maps/api/place/details/json", query)
	})
	if err != nil {
		return domain.PlaceDetail{}, fmt.Errorf("fetch detail: execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded detailResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.PlaceDetail{}, fmt.Errorf("fetch detail: decode response: %w", err)
	}

	if decoded.Status != "OK" {
		return domain.PlaceDetail{}, fmt.Errorf("fetch detail: status=%s for %q", decoded.Status, placeID)
	}

	r := decoded.Result

	detail := domain.PlaceDetail{
		Name:             r.Name,
		Rating:           r.Rating,
		PriceLevel:       r.PriceLevel,
		Types:            r.Types,
		FormattedAddress: r.FormattedAddress,
		Phone:            r.FormattedPhone,
		Website:          r.Website,
		WeekdayText:      r.OpeningHours.WeekdayText,
		TotalReviews:     r.UserRatingsTotal,
	}

	for _, p := range r.OpeningHours.Periods {
		period, err := parsePeriod(p.Open, p.Close)
		if err != nil {
			// Malformed periods degrade the schedule to unknown rather
			// than failing the whole detail fetch.
			log.Printf("fetch detail: skip malformed period for %q: %v", placeID, err)
			continue
		}
		detail.Periods = append(detail.Periods, period)
	}

	for _, rv := range r.Reviews {
		detail.Reviews = append(detail.Reviews, domain.Review{Rating: rv.Rating, Text: rv.Text})
	}

	if c.detailCache != nil {
		if err := c.detailCache.Put(ctx, placeID, detail); err != nil {
			log.Printf("detail cache write failed: %v", err)
		}
	}

	return detail, nil
}

// parsePeriod converts one API opening period to the domain model.
// The API numbers days 0=Sunday; the domain uses 0=Monday.
func parsePeriod(openAt detailPeriodPoint, closeAt *detailPeriodPoint) (domain.WeeklyPeriod, error) {
	openMinute, err := parseClockMinutes(openAt.Time)
	if err != nil {
		return domain.WeeklyPeriod{}, fmt.Errorf("open time: %w", err)
	}

	period := domain.WeeklyPeriod{
		Day:        mondayIndexed(openAt.Day),
		OpenMinute: openMinute,
	}

	if closeAt != nil {
		closeMinute, err := parseClockMinutes(closeAt.Time)
		if err != nil {
			return domain.WeeklyPeriod{}, fmt.Errorf("close time: %w", err)
		}
		period.CloseMinute = &closeMinute
	}

	return period, nil
}

// parseClockMinutes converts an "HHMM" clock string to minute of day.
func parseClockMinutes(clock string) (int, error) {
	if len(clock) != 4 {
		return 0, fmt.Errorf("expected HHMM, got %q", clock)
	}

	hours, err := strconv.Atoi(clock[:2])
	if err != nil {
		return 0, fmt.Errorf("parse hours of %q: %w", clock, err)
	}
	minutes, err := strconv.Atoi(clock[2:])
	if err != nil {
		return 0, fmt.Errorf("parse minutes of %q: %w", clock, err)
	}

	return hours*60 + minutes, nil
}

func mondayIndexed(sundayIndexed int) int {
	return (sundayIndexed + 6) % 7
}
