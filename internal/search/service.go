package search

import (
	"context"
	"log"
)

// Service is the facade that tries Meilisearch first and falls back to the
// database aggregator.
type Service struct {
	meili      *Meili
	aggregator *Aggregator
}

// NewService creates a search service. meili may be nil if Meilisearch is not
// configured.
func NewService(meili *Meili, aggregator *Aggregator) *Service {
	return &Service{meili: meili, aggregator: aggregator}
}

// Search tries Meilisearch if healthy, otherwise runs the database aggregator.
func (s *Service) Search(ctx context.Context, q Query) (Response, error) {
	if s.meili != nil && s.meili.Healthy() {
		resp, err := s.meili.Search(ctx, q)
		if err == nil {
			return resp, nil
		}
		log.Printf("search: meilisearch error, falling back to database: %v", err)
	}
	return s.aggregator.Search(ctx, q)
}

// IndexProject pushes a project into Meilisearch (fire-and-forget).
func (s *Service) IndexProject(rec ProjectRecord) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexProject(rec); err != nil {
			log.Printf("search: index project %s: %v", rec.ID, err)
		}
	}()
}

// IndexArticle pushes an article into Meilisearch (fire-and-forget).
func (s *Service) IndexArticle(rec ArticleRecord) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexArticle(rec); err != nil {
			log.Printf("search: index article %s: %v", rec.ID, err)
		}
	}()
}

// IndexService pushes a government service into Meilisearch (fire-and-forget).
func (s *Service) IndexService(rec ServiceRecord) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexService(rec); err != nil {
			log.Printf("search: index service %s: %v", rec.ID, err)
		}
	}()
}

// IndexOpportunity pushes an opportunity into Meilisearch (fire-and-forget).
func (s *Service) IndexOpportunity(rec OpportunityRecord) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexOpportunity(rec); err != nil {
			log.Printf("search: index opportunity %s: %v", rec.ID, err)
		}
	}()
}

// DeleteEntry removes a record from its Meilisearch index (fire-and-forget).
func (s *Service) DeleteEntry(rtyp ResultType, id string) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.DeleteEntry(rtyp, id); err != nil {
			log.Printf("search: delete %s %s: %v", rtyp, id, err)
		}
	}()
}
