package dto

type SearchFilters struct {
	MinRating    float64  `json:"min_rating"`
	MaxPrice     string   `json:"max_price"`
	OpenStatuses []string `json:"open_statuses"`
	Cuisines     []string `json:"cuisines"`
}

type SearchRequest struct {
	Address      string         `json:"address"`
	RadiusMeters int            `json:"radius_meters"`
	Filters      *SearchFilters `json:"filters"`
	SortBy       string         `json:"sort_by"`
}

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LocalTimeResponse struct {
	Day    int `json:"day"`
	Minute int `json:"minute"`
}

type RowResponse struct {
	Name        string `json:"name"`
	Rating      string `json:"rating"`
	PriceLevel  string `json:"price_level"`
	Types       string `json:"types"`
	Distance    string `json:"distance"`
	OpenStatus  string `json:"open_status"`
	PlaceID     string `json:"place_id"`
	ReviewCount int    `json:"review_count"`
}

type WarningResponse struct {
	Stage   string `json:"stage"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type SearchResponse struct {
	Center    CoordinateResponse `json:"center"`
	LocalTime LocalTimeResponse  `json:"local_time"`
	Rows      []RowResponse      `json:"rows"`
	Warnings  []WarningResponse  `json:"warnings"`
}
