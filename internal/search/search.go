package search

import (
	"context"
	"time"
)

// ResultType identifies the kind of entity in a search result.
type ResultType string

const (
	ResultProject     ResultType = "project"
	ResultArticle     ResultType = "article"
	ResultService     ResultType = "service"
	ResultOpportunity ResultType = "opportunity"
)

// ValidType reports whether t names a searchable entity type.
func ValidType(t ResultType) bool {
	switch t {
	case ResultProject, ResultArticle, ResultService, ResultOpportunity:
		return true
	}
	return false
}

const (
	// PerTypeLimit caps how many hits each entity type contributes.
	PerTypeLimit = 5
	// MaxResults caps the merged result list.
	MaxResults = 10
)

// Result is a single search hit returned to the caller.
type Result struct {
	Type      ResultType `json:"type"`
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Snippet   string     `json:"snippet"`
	Slug      string     `json:"slug,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Query describes a search request.
type Query struct {
	Text       string
	FilterType ResultType // empty = all types
}

// Response is the envelope returned by the search endpoint. TotalCount is the
// number of hits fetched across all types before the merged list is cut to
// MaxResults, so it can exceed len(Results).
type Response struct {
	Results    []Result `json:"results"`
	TotalCount int      `json:"totalCount"`
	Query      string   `json:"query"`
}

// Searcher can execute a cross-entity search.
type Searcher interface {
	Search(ctx context.Context, q Query) (Response, error)
	Healthy() bool
}

// ProjectRecord is the data indexed for a project.
type ProjectRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Category  string `json:"category"`
	State     string `json:"state"`
	CreatedAt int64  `json:"createdAt"`
}

// ArticleRecord is the data indexed for a news article.
type ArticleRecord struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Category  string `json:"category"`
	CreatedAt int64  `json:"createdAt"`
}

// ServiceRecord is the data indexed for a government service.
type ServiceRecord struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Agency    string `json:"agency"`
	CreatedAt int64  `json:"createdAt"`
}

// OpportunityRecord is the data indexed for an opportunity.
type OpportunityRecord struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	CreatedAt int64  `json:"createdAt"`
}
