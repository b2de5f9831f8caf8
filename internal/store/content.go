package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likePattern builds the unanchored, case-insensitive match argument for
// search queries. The query text is escaped so user input cannot smuggle
// wildcards into the pattern.
func likePattern(q string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q)
	return "%" + escaped + "%"
}

// ── Projects ──

// CreateProject inserts the project and its tag rows in one transaction so a
// failure partway leaves no orphaned tag associations.
func (s *PostgresStore) CreateProject(ctx context.Context, project Project) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create project: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO projects (id, title, subtitle, description, category, state, status, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, project.ID, project.Title, project.Subtitle, project.Description, project.Category, project.State, project.Status, project.ImageURL)
	if err != nil {
		return wrapDuplicate(err, "insert project")
	}

	for _, tag := range project.Tags {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO project_tags (project_id, tag)
			VALUES ($1, $2)
			ON CONFLICT (project_id, tag) DO NOTHING
		`, project.ID, tag); err != nil {
			return fmt.Errorf("insert project tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create project: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetProject(ctx context.Context, projectID string) (Project, error) {
	var item Project
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, subtitle, description, category, state, status, COALESCE(image_url, ''), created_at, updated_at
		FROM projects
		WHERE id=$1
	`, projectID).Scan(&item.ID, &item.Title, &item.Subtitle, &item.Description, &item.Category, &item.State, &item.Status, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return Project{}, err
	}
	tags, err := s.projectTags(ctx, item.ID)
	if err != nil {
		return Project{}, err
	}
	item.Tags = tags
	return item, nil
}

func (s *PostgresStore) projectTags(ctx context.Context, projectID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT tag FROM project_tags WHERE project_id=$1 ORDER BY tag ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project tags: %w", err)
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scan project tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project tags: %w", err)
	}
	return tags, nil
}

func (s *PostgresStore) ListProjects(ctx context.Context, category, state string) ([]Project, error) {
	builder := psql.Select("id", "title", "subtitle", "description", "category", "state", "status", "COALESCE(image_url, '')", "created_at", "updated_at").
		From("projects").
		OrderBy("created_at DESC")
	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}
	if state != "" {
		builder = builder.Where(sq.Eq{"state": state})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	items := make([]Project, 0)
	for rows.Next() {
		var item Project
		if err := rows.Scan(&item.ID, &item.Title, &item.Subtitle, &item.Description, &item.Category, &item.State, &item.Status, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return items, nil
}

// UpdateProject rewrites the project row and replaces its tag set in the same
// transaction.
func (s *PostgresStore) UpdateProject(ctx context.Context, project Project) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin update project: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		UPDATE projects
		SET title=$2, subtitle=$3, description=$4, category=$5, state=$6, status=$7, image_url=$8, updated_at=NOW()
		WHERE id=$1
	`, project.ID, project.Title, project.Subtitle, project.Description, project.Category, project.State, project.Status, project.ImageURL)
	if err != nil {
		return false, fmt.Errorf("update project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update project rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM project_tags WHERE project_id=$1`, project.ID); err != nil {
		return false, fmt.Errorf("clear project tags: %w", err)
	}
	for _, tag := range project.Tags {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO project_tags (project_id, tag)
			VALUES ($1, $2)
			ON CONFLICT (project_id, tag) DO NOTHING
		`, project.ID, tag); err != nil {
			return false, fmt.Errorf("insert project tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit update project: %w", err)
	}
	return true, nil
}

func (s *PostgresStore) DeleteProject(ctx context.Context, projectID string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id=$1`, projectID)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project rows: %w", err)
	}
	return affected > 0, nil
}

func (s *PostgresStore) SearchProjects(ctx context.Context, q string, limit int) ([]Project, error) {
	pattern := likePattern(q)
	query, args, err := psql.Select("id", "title", "subtitle", "description", "category", "state", "status", "COALESCE(image_url, '')", "created_at", "updated_at").
		From("projects").
		Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"subtitle": pattern}, sq.ILike{"description": pattern}}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search projects: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search projects: %w", err)
	}
	defer rows.Close()

	items := make([]Project, 0)
	for rows.Next() {
		var item Project
		if err := rows.Scan(&item.ID, &item.Title, &item.Subtitle, &item.Description, &item.Category, &item.State, &item.Status, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return items, nil
}

// ── News articles ──

func (s *PostgresStore) InsertArticle(ctx context.Context, article NewsArticle) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO news_articles (id, slug, title, summary, content, category, image_url, published_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, article.ID, article.Slug, article.Title, article.Summary, article.Content, article.Category, article.ImageURL, article.PublishedDate)
	if err != nil {
		return wrapDuplicate(err, "insert article")
	}
	return nil
}

func (s *PostgresStore) GetArticleBySlug(ctx context.Context, slug string) (NewsArticle, error) {
	var item NewsArticle
	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, title, summary, content, category, COALESCE(image_url, ''), published_date, created_at
		FROM news_articles
		WHERE slug=$1
	`, slug).Scan(&item.ID, &item.Slug, &item.Title, &item.Summary, &item.Content, &item.Category, &item.ImageURL, &item.PublishedDate, &item.CreatedAt)
	if err != nil {
		return NewsArticle{}, err
	}
	return item, nil
}

func (s *PostgresStore) ListArticles(ctx context.Context, category string) ([]NewsArticle, error) {
	builder := psql.Select("id", "slug", "title", "summary", "content", "category", "COALESCE(image_url, '')", "published_date", "created_at").
		From("news_articles").
		OrderBy("published_date DESC")
	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list articles: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	items := make([]NewsArticle, 0)
	for rows.Next() {
		var item NewsArticle
		if err := rows.Scan(&item.ID, &item.Slug, &item.Title, &item.Summary, &item.Content, &item.Category, &item.ImageURL, &item.PublishedDate, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return items, nil
}

// UpdateArticle never touches the slug; slugs are immutable after creation.
func (s *PostgresStore) UpdateArticle(ctx context.Context, article NewsArticle) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE news_articles
		SET title=$2, summary=$3, content=$4, category=$5, image_url=$6, published_date=$7
		WHERE id=$1
	`, article.ID, article.Title, article.Summary, article.Content, article.Category, article.ImageURL, article.PublishedDate)
	if err != nil {
		return false, fmt.Errorf("update article: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update article rows: %w", err)
	}
	return affected > 0, nil
}

func (s *PostgresStore) DeleteArticle(ctx context.Context, articleID string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM news_articles WHERE id=$1`, articleID)
	if err != nil {
		return false, fmt.Errorf("delete article: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete article rows: %w", err)
	}
	return affected > 0, nil
}

func (s *PostgresStore) SearchArticles(ctx context.Context, q string, limit int) ([]NewsArticle, error) {
	pattern := likePattern(q)
	query, args, err := psql.Select("id", "slug", "title", "summary", "content", "category", "COALESCE(image_url, '')", "published_date", "created_at").
		From("news_articles").
		Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"summary": pattern}, sq.ILike{"content": pattern}}).
		OrderBy("published_date DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search articles: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	defer rows.Close()

	items := make([]NewsArticle, 0)
	for rows.Next() {
		var item NewsArticle
		if err := rows.Scan(&item.ID, &item.Slug, &item.Title, &item.Summary, &item.Content, &item.Category, &item.ImageURL, &item.PublishedDate, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return items, nil
}

// ── Government services ──

func (s *PostgresStore) InsertService(ctx context.Context, service GovService) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO services (id, slug, title, summary, content, category, agency, external_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, service.ID, service.Slug, service.Title, service.Summary, service.Content, service.Category, service.Agency, service.ExternalURL)
	if err != nil {
		return wrapDuplicate(err, "insert service")
	}
	return nil
}

func (s *PostgresStore) GetServiceBySlug(ctx context.Context, slug string) (GovService, error) {
	var item GovService
	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, title, summary, content, category, agency, COALESCE(external_url, ''), created_at
		FROM services
		WHERE slug=$1
	`, slug).Scan(&item.ID, &item.Slug, &item.Title, &item.Summary, &item.Content, &item.Category, &item.Agency, &item.ExternalURL, &item.CreatedAt)
	if err != nil {
		return GovService{}, err
	}
	return item, nil
}

func (s *PostgresStore) ListServices(ctx context.Context, category string) ([]GovService, error) {
	builder := psql.Select("id", "slug", "title", "summary", "content", "category", "agency", "COALESCE(external_url, '')", "created_at").
		From("services").
		OrderBy("title ASC")
	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list services: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	items := make([]GovService, 0)
	for rows.Next() {
		var item GovService
		if err := rows.Scan(&item.ID, &item.Slug, &item.Title, &item.Summary, &item.Content, &item.Category, &item.Agency, &item.ExternalURL, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) UpdateService(ctx context.Context, service GovService) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE services
		SET title=$2, summary=$3, content=$4, category=$5, agency=$6, external_url=$7
		WHERE id=$1
	`, service.ID, service.Title, service.Summary, service.Content, service.Category, service.Agency, service.ExternalURL)
	if err != nil {
		return false, fmt.Errorf("update service: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update service rows: %w", err)
	}
	return affected > 0, nil
}

func (s *PostgresStore) DeleteService(ctx context.Context, serviceID string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM services WHERE id=$1`, serviceID)
	if err != nil {
		return false, fmt.Errorf("delete service: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete service rows: %w", err)
	}
	return affected > 0, nil
}

func (s *PostgresStore) SearchServices(ctx context.Context, q string, limit int) ([]GovService, error) {
	pattern := likePattern(q)
	query, args, err := psql.Select("id", "slug", "title", "summary", "content", "category", "agency", "COALESCE(external_url, '')", "created_at").
		From("services").
		Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"summary": pattern}}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search services: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search services: %w", err)
	}
	defer rows.Close()

	items := make([]GovService, 0)
	for rows.Next() {
		var item GovService
		if err := rows.Scan(&item.ID, &item.Slug, &item.Title, &item.Summary, &item.Content, &item.Category, &item.Agency, &item.ExternalURL, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return items, nil
}

// ── Opportunities ──

func (s *PostgresStore) InsertOpportunity(ctx context.Context, opp Opportunity) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO opportunities (id, slug, title, summary, content, type, deadline, external_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, opp.ID, opp.Slug, opp.Title, opp.Summary, opp.Content, opp.Type, opp.Deadline, opp.ExternalURL)
	if err != nil {
		return wrapDuplicate(err, "insert opportunity")
	}
	return nil
}

func (s *PostgresStore) GetOpportunityBySlug(ctx context.Context, slug string) (Opportunity, error) {
	var item Opportunity
	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, title, summary, content, type, deadline, COALESCE(external_url, ''), created_at
		FROM opportunities
		WHERE slug=$1
	`, slug).Scan(&item.ID, &item.Slug, &item.Title, &item.Summary, &item.Content, &item.Type, &item.Deadline, &item.ExternalURL, &item.CreatedAt)
	if err != nil {
		return Opportunity{}, err
	}
	return item, nil
}

func (s *PostgresStore) ListOpportunities(ctx context.Context, oppType string) ([]Opportunity, error) {
	builder := psql.Select("id", "slug", "title", "summary", "content", "type", "deadline", "COALESCE(external_url, '')", "created_at").
		From("opportunities").
		OrderBy("created_at DESC")
	if oppType != "" {
		builder = builder.Where(sq.Eq{"type": oppType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list opportunities: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer rows.Close()

	items := make([]Opportunity, 0)
	for rows.Next() {
		var item Opportunity
		if err := rows.Scan(&item.ID, &item.Slug, &item.Title, &item.Summary, &item.Content, &item.Type, &item.Deadline, &item.ExternalURL, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate opportunities: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) UpdateOpportunity(ctx context.Context, opp Opportunity) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE opportunities
		SET title=$2, summary=$3, content=$4, type=$5, deadline=$6, external_url=$7
		WHERE id=$1
	`, opp.ID, opp.Title, opp.Summary, opp.Content, opp.Type, opp.Deadline, opp.ExternalURL)
	if err != nil {
		return false, fmt.Errorf("update opportunity: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update opportunity rows: %w", err)
	}
	return affected > 0, nil
}

func (s *PostgresStore) DeleteOpportunity(ctx context.Context, oppID string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM opportunities WHERE id=$1`, oppID)
	if err != nil {
		return false, fmt.Errorf("delete opportunity: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete opportunity rows: %w", err)
	}
	return affected > 0, nil
}

func (s *PostgresStore) SearchOpportunities(ctx context.Context, q string, limit int) ([]Opportunity, error) {
	pattern := likePattern(q)
	query, args, err := psql.Select("id", "slug", "title", "summary", "content", "type", "deadline", "COALESCE(external_url, '')", "created_at").
		From("opportunities").
		Where(sq.Or{sq.ILike{"title": pattern}, sq.ILike{"summary": pattern}}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search opportunities: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search opportunities: %w", err)
	}
	defer rows.Close()

	items := make([]Opportunity, 0)
	for rows.Next() {
		var item Opportunity
		if err := rows.Scan(&item.ID, &item.Slug, &item.Title, &item.Summary, &item.Content, &item.Type, &item.Deadline, &item.ExternalURL, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate opportunities: %w", err)
	}
	return items, nil
}

// ── Videos ──

func (s *PostgresStore) InsertVideo(ctx context.Context, video Video) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO videos (id, title, url, category)
		VALUES ($1, $2, $3, $4)
	`, video.ID, video.Title, video.URL, video.Category)
	if err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListVideos(ctx context.Context) ([]Video, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, url, category, created_at
		FROM videos
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	items := make([]Video, 0)
	for rows.Next() {
		var item Video
		if err := rows.Scan(&item.ID, &item.Title, &item.URL, &item.Category, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate videos: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) DeleteVideo(ctx context.Context, videoID string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM videos WHERE id=$1`, videoID)
	if err != nil {
		return false, fmt.Errorf("delete video: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete video rows: %w", err)
	}
	return affected > 0, nil
}

// ── Site settings ──

func (s *PostgresStore) GetSiteSettings(ctx context.Context) (SiteSettings, error) {
	var item SiteSettings
	err := s.db.QueryRowContext(ctx, `
		SELECT site_name, tagline, contact_email, updated_at
		FROM site_settings
		WHERE id=1
	`).Scan(&item.SiteName, &item.Tagline, &item.ContactEmail, &item.UpdatedAt)
	if err != nil {
		return SiteSettings{}, fmt.Errorf("get site settings: %w", err)
	}
	return item, nil
}

func (s *PostgresStore) UpdateSiteSettings(ctx context.Context, settings SiteSettings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO site_settings (id, site_name, tagline, contact_email)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET site_name=EXCLUDED.site_name, tagline=EXCLUDED.tagline, contact_email=EXCLUDED.contact_email, updated_at=NOW()
	`, settings.SiteName, settings.Tagline, settings.ContactEmail)
	if err != nil {
		return fmt.Errorf("update site settings: %w", err)
	}
	return nil
}
