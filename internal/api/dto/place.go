package dto

import "time"

type ReviewResponse struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type PlaceDetailResponse struct {
	PlaceID         string           `json:"place_id"`
	Name            string           `json:"name"`
	Address         string           `json:"address"`
	Phone           string           `json:"phone"`
	Website         string           `json:"website"`
	Types           string           `json:"types"`
	Rating          string           `json:"rating"`
	PriceLevel      string           `json:"price_level"`
	TotalReviews    int              `json:"total_reviews"`
	OpenStatus      string           `json:"open_status"`
	WeekdayText     []string         `json:"weekday_text"`
	PositiveReviews []ReviewResponse `json:"positive_reviews"`
	NegativeReviews []ReviewResponse `json:"negative_reviews"`
}

type SearchRecordResponse struct {
	ID           int       `json:"id"`
	Address      string    `json:"address"`
	RadiusMeters int       `json:"radius_meters"`
	RowCount     int       `json:"row_count"`
	SearchedAt   time.Time `json:"searched_at"`
}

type ListHistoryResponse struct {
	Searches []SearchRecordResponse `json:"searches"`
}
