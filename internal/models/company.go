package models

import "time"

// CompanyBaseInfo is a company card returned by GET /companies/search.
type CompanyBaseInfo struct {
	Name         string    `json:"name"         bson:"name"`
	Logo         string    `json:"logo"         bson:"logo"`
	Founder      string    `json:"founder"      bson:"founder"`
	Headquarters string    `json:"headquarters" bson:"headquarters"`
	FoundingDate time.Time `json:"founding_date" bson:"founding_date"`
	MembersCount int       `json:"members_count" bson:"members_count"`
}

// NewsItem is one entry of the news feed.
type NewsItem struct {
	Title       string    `json:"title"       bson:"title"`
	Summary     string    `json:"summary"     bson:"summary"`
	URL         string    `json:"url"         bson:"url"`
	Source      string    `json:"source"      bson:"source"`
	PublishedAt time.Time `json:"published_at" bson:"published_at"`
}
