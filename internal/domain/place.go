package domain

// SearchCategory is a venue category understood by the nearby search API.
type SearchCategory string

const (
	CategoryRestaurant   SearchCategory = "restaurant"
	CategoryCafe         SearchCategory = "cafe"
	CategoryBakery       SearchCategory = "bakery"
	CategoryBar          SearchCategory = "bar"
	CategoryMealTakeaway SearchCategory = "meal_takeaway"
	CategoryMealDelivery SearchCategory = "meal_delivery"
)

// FoodCategories lists every category a dining search fans out over,
// in the order the categories are queried.
func FoodCategories() []SearchCategory {
	return []SearchCategory{
		CategoryRestaurant,
		CategoryCafe,
		CategoryBakery,
		CategoryBar,
		CategoryMealTakeaway,
		CategoryMealDelivery,
	}
}

// PlaceCandidate is a venue discovered by a nearby search.
// The ID is stable and unique per venue; the same venue may be returned
// by more than one category search.
type PlaceCandidate struct {
	ID       string
	Name     string
	Location Coordinate
}

// A single user review of a venue.
type Review struct {
	Rating int
	Text   string
}

// PlaceDetail is the enriched metadata fetched for one candidate by ID.
//
// Rating is nil when the venue has no rating. PriceLevel zero means either
// "free tier" or "not reported"; the two are indistinguishable upstream.
// A nil Periods slice means no schedule data is available.
type PlaceDetail struct {
	Name             string
	Rating           *float64
	PriceLevel       int
	Types            []string
	FormattedAddress string
	Phone            string
	Website          string
	Periods          []WeeklyPeriod
	WeekdayText      []string
	Reviews          []Review
	TotalReviews     int
}
