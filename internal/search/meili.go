package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"
)

const (
	idxProjects      = "govhub_projects"
	idxArticles      = "govhub_articles"
	idxServices      = "govhub_services"
	idxOpportunities = "govhub_opportunities"
)

// Meili implements Searcher via Meilisearch.
type Meili struct {
	client  meili.ServiceManager
	healthy atomic.Bool
	done    chan struct{}
}

// NewMeili creates a Meilisearch client and configures indexes. The instance
// is returned even when the initial health check fails; the background loop
// picks it up once it comes back.
func NewMeili(url, apiKey string) *Meili {
	client := meili.New(url, meili.WithAPIKey(apiKey))

	m := &Meili{
		client: client,
		done:   make(chan struct{}),
	}

	if _, err := client.Health(); err != nil {
		log.Printf("search: meilisearch unavailable at %s: %v", url, err)
		m.healthy.Store(false)
	} else {
		m.healthy.Store(true)
		m.configureIndexes()
	}

	go m.healthLoop()
	return m
}

func (m *Meili) configureIndexes() {
	indexes := []struct {
		uid        string
		filterable []string
		searchable []string
	}{
		{
			uid:        idxProjects,
			filterable: []string{"category", "state"},
			searchable: []string{"title", "subtitle"},
		},
		{
			uid:        idxArticles,
			filterable: []string{"category"},
			searchable: []string{"title", "summary"},
		},
		{
			uid:        idxServices,
			filterable: []string{"agency"},
			searchable: []string{"title", "summary"},
		},
		{
			uid:        idxOpportunities,
			filterable: nil,
			searchable: []string{"title", "summary"},
		},
	}

	for _, idx := range indexes {
		if _, err := m.client.CreateIndex(&meili.IndexConfig{
			Uid:        idx.uid,
			PrimaryKey: "id",
		}); err != nil {
			log.Printf("search: create index %s (may already exist): %v", idx.uid, err)
		}

		index := m.client.Index(idx.uid)
		if len(idx.filterable) > 0 {
			filterableInterface := make([]interface{}, len(idx.filterable))
			for i, v := range idx.filterable {
				filterableInterface[i] = v
			}
			if _, err := index.UpdateFilterableAttributes(&filterableInterface); err != nil {
				log.Printf("search: update filterable attrs for %s: %v", idx.uid, err)
			}
		}
		if _, err := index.UpdateSearchableAttributes(&idx.searchable); err != nil {
			log.Printf("search: update searchable attrs for %s: %v", idx.uid, err)
		}
		sortable := []string{"createdAt"}
		if _, err := index.UpdateSortableAttributes(&sortable); err != nil {
			log.Printf("search: update sortable attrs for %s: %v", idx.uid, err)
		}
	}
}

func (m *Meili) healthLoop() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			_, err := m.client.Health()
			wasHealthy := m.healthy.Load()
			m.healthy.Store(err == nil)
			if err == nil && !wasHealthy {
				log.Println("search: meilisearch recovered, reconfiguring indexes")
				m.configureIndexes()
			}
		}
	}
}

// Close stops the background health monitor.
func (m *Meili) Close() {
	close(m.done)
}

// Healthy reports whether Meilisearch is reachable.
func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

// Search queries the per-type indexes in one multi-search and merges the hits
// by recency, applying the same per-type and merged caps as the database path.
func (m *Meili) Search(ctx context.Context, q Query) (Response, error) {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return Response{Results: []Result{}, TotalCount: 0, Query: q.Text}, nil
	}
	if q.FilterType != "" && !ValidType(q.FilterType) {
		return Response{Results: []Result{}, TotalCount: 0, Query: q.Text}, nil
	}
	if !m.healthy.Load() {
		return Response{}, fmt.Errorf("meilisearch unhealthy")
	}

	targetIndexes := []struct {
		uid  string
		rtyp ResultType
	}{
		{idxProjects, ResultProject},
		{idxArticles, ResultArticle},
		{idxServices, ResultService},
		{idxOpportunities, ResultOpportunity},
	}

	var queries []*meili.SearchRequest
	for _, ti := range targetIndexes {
		if q.FilterType != "" && q.FilterType != ti.rtyp {
			continue
		}
		queries = append(queries, &meili.SearchRequest{
			IndexUID: ti.uid,
			Query:    text,
			Limit:    PerTypeLimit,
		})
	}

	resp, err := m.client.MultiSearchWithContext(ctx, &meili.MultiSearchRequest{Queries: queries})
	if err != nil {
		m.healthy.Store(false)
		return Response{}, fmt.Errorf("meilisearch multi-search: %w", err)
	}

	var merged []Result
	for _, sr := range resp.Results {
		rtyp := indexToResultType(sr.IndexUID)
		for _, hit := range sr.Hits {
			merged = append(merged, hitToResult(hit, rtyp))
		}
	}

	total := len(merged)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > MaxResults {
		merged = merged[:MaxResults]
	}
	if merged == nil {
		merged = []Result{}
	}

	return Response{Results: merged, TotalCount: total, Query: q.Text}, nil
}

func indexToResultType(uid string) ResultType {
	switch uid {
	case idxProjects:
		return ResultProject
	case idxArticles:
		return ResultArticle
	case idxServices:
		return ResultService
	case idxOpportunities:
		return ResultOpportunity
	default:
		return ""
	}
}

func hitToResult(hit meili.Hit, rtyp ResultType) Result {
	r := Result{Type: rtyp}
	r.ID = decodeString(hit, "id")
	r.Title = decodeString(hit, "title")
	r.Slug = decodeString(hit, "slug")
	switch rtyp {
	case ResultProject:
		r.Snippet = decodeString(hit, "subtitle")
	default:
		r.Snippet = decodeString(hit, "summary")
	}
	r.CreatedAt = time.Unix(decodeInt64(hit, "createdAt"), 0).UTC()
	return r
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

func decodeInt64(hit meili.Hit, key string) int64 {
	raw, ok := hit[key]
	if !ok {
		return 0
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	return 0
}

// IndexProject adds or updates a project in the search index.
func (m *Meili) IndexProject(rec ProjectRecord) error {
	_, err := m.client.Index(idxProjects).AddDocuments([]ProjectRecord{rec}, nil)
	return err
}

// IndexArticle adds or updates an article in the search index.
func (m *Meili) IndexArticle(rec ArticleRecord) error {
	_, err := m.client.Index(idxArticles).AddDocuments([]ArticleRecord{rec}, nil)
	return err
}

// IndexService adds or updates a service in the search index.
func (m *Meili) IndexService(rec ServiceRecord) error {
	_, err := m.client.Index(idxServices).AddDocuments([]ServiceRecord{rec}, nil)
	return err
}

// IndexOpportunity adds or updates an opportunity in the search index.
func (m *Meili) IndexOpportunity(rec OpportunityRecord) error {
	_, err := m.client.Index(idxOpportunities).AddDocuments([]OpportunityRecord{rec}, nil)
	return err
}

// DeleteEntry removes a record of the given type from its index.
func (m *Meili) DeleteEntry(rtyp ResultType, id string) error {
	var uid string
	switch rtyp {
	case ResultProject:
		uid = idxProjects
	case ResultArticle:
		uid = idxArticles
	case ResultService:
		uid = idxServices
	case ResultOpportunity:
		uid = idxOpportunities
	default:
		return fmt.Errorf("unknown result type %q", rtyp)
	}
	_, err := m.client.Index(uid).DeleteDocument(id, nil)
	return err
}
