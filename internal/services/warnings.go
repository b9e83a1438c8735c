package services

import "fmt"

// Warning describes a recovered, per-stage failure surfaced to the
// caller. Warnings never abort a search run; the affected category or
// candidate simply degrades.
type Warning struct {
	Stage   string `json:"stage"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

const (
	StageCategorySearch = "category_search"
	StageDetailFetch    = "detail_fetch"
	StageDistance       = "distance"
)

func warnf(stage, subject string, format string, args ...any) Warning {
	return Warning{
		Stage:   stage,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	}
}
