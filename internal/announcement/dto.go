package announcement

import (
	util "github.com/skillfolio/skillfolio-lambda/internal/utils"
)

type ListAnnouncementsFilter struct {
	Platform      string
	Type          *Type
	StartsAtAfter *util.DateOnly
	EndsAtBefore  *util.DateOnly
}

type PlatformResult struct {
	Platform
	SearchURL string `json:"search_url"`
}

type PlatformSearchResponse struct {
	Query     string           `json:"query"`
	Platforms []PlatformResult `json:"platforms"`
}
