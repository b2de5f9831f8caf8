package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"govhub/api/internal/store"
)

// Store is the subset of the persistence layer the aggregator queries.
type Store interface {
	SearchProjects(ctx context.Context, q string, limit int) ([]store.Project, error)
	SearchArticles(ctx context.Context, q string, limit int) ([]store.NewsArticle, error)
	SearchServices(ctx context.Context, q string, limit int) ([]store.GovService, error)
	SearchOpportunities(ctx context.Context, q string, limit int) ([]store.Opportunity, error)
}

// Aggregator fans a query out across all entity types in the database and
// merges the hits into one recency-ordered list. It is the authoritative
// search path; the Meilisearch path is an optional accelerator in front.
type Aggregator struct {
	store   Store
	timeout time.Duration
}

func NewAggregator(st Store) *Aggregator {
	return &Aggregator{store: st, timeout: 5 * time.Second}
}

// Healthy always reports true; the aggregator shares the primary database
// connection and has no separate availability.
func (a *Aggregator) Healthy() bool { return true }

// Search runs the per-type queries in parallel. Any sub-query failure fails
// the whole search rather than returning a silently partial result set. The
// caller's context cancels in-flight sub-queries when the request goes away.
func (a *Aggregator) Search(ctx context.Context, q Query) (Response, error) {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return Response{Results: []Result{}, TotalCount: 0, Query: q.Text}, nil
	}
	if q.FilterType != "" && !ValidType(q.FilterType) {
		return Response{Results: []Result{}, TotalCount: 0, Query: q.Text}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	wants := func(t ResultType) bool {
		return q.FilterType == "" || q.FilterType == t
	}

	var (
		projects      []store.Project
		articles      []store.NewsArticle
		services      []store.GovService
		opportunities []store.Opportunity
	)

	g, gctx := errgroup.WithContext(ctx)
	if wants(ResultProject) {
		g.Go(func() error {
			var err error
			projects, err = a.store.SearchProjects(gctx, text, PerTypeLimit)
			if err != nil {
				return fmt.Errorf("search projects: %w", err)
			}
			return nil
		})
	}
	if wants(ResultArticle) {
		g.Go(func() error {
			var err error
			articles, err = a.store.SearchArticles(gctx, text, PerTypeLimit)
			if err != nil {
				return fmt.Errorf("search articles: %w", err)
			}
			return nil
		})
	}
	if wants(ResultService) {
		g.Go(func() error {
			var err error
			services, err = a.store.SearchServices(gctx, text, PerTypeLimit)
			if err != nil {
				return fmt.Errorf("search services: %w", err)
			}
			return nil
		})
	}
	if wants(ResultOpportunity) {
		g.Go(func() error {
			var err error
			opportunities, err = a.store.SearchOpportunities(gctx, text, PerTypeLimit)
			if err != nil {
				return fmt.Errorf("search opportunities: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Response{}, err
	}

	merged := make([]Result, 0, len(projects)+len(articles)+len(services)+len(opportunities))
	for _, p := range projects {
		merged = append(merged, Result{
			Type:      ResultProject,
			ID:        p.ID,
			Title:     p.Title,
			Snippet:   p.Subtitle,
			CreatedAt: p.CreatedAt,
		})
	}
	for _, a := range articles {
		merged = append(merged, Result{
			Type:      ResultArticle,
			ID:        a.ID,
			Title:     a.Title,
			Snippet:   a.Summary,
			Slug:      a.Slug,
			CreatedAt: a.CreatedAt,
		})
	}
	for _, s := range services {
		merged = append(merged, Result{
			Type:      ResultService,
			ID:        s.ID,
			Title:     s.Title,
			Snippet:   s.Summary,
			Slug:      s.Slug,
			CreatedAt: s.CreatedAt,
		})
	}
	for _, o := range opportunities {
		merged = append(merged, Result{
			Type:      ResultOpportunity,
			ID:        o.ID,
			Title:     o.Title,
			Snippet:   o.Summary,
			Slug:      o.Slug,
			CreatedAt: o.CreatedAt,
		})
	}

	total := len(merged)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > MaxResults {
		merged = merged[:MaxResults]
	}

	return Response{Results: merged, TotalCount: total, Query: q.Text}, nil
}
