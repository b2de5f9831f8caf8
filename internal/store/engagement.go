package store

import (
	"context"
	"fmt"
)

// ToggleBookmark flips the bookmark state for (userID, projectID) and reports
// the state after the call, "added" or "removed". The delete runs first; when
// it hits a row the bookmark existed and the toggle is a removal. Otherwise
// the insert adds it, with ON CONFLICT absorbing a concurrent add so the
// outcome is still "added".
func (s *PostgresStore) ToggleBookmark(ctx context.Context, userID, projectID string) (string, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM bookmarks WHERE user_id=$1 AND project_id=$2
	`, userID, projectID)
	if err != nil {
		return "", fmt.Errorf("delete bookmark: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("delete bookmark rows: %w", err)
	}
	if affected > 0 {
		return "removed", nil
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (user_id, project_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, project_id) DO NOTHING
	`, userID, projectID); err != nil {
		return "", fmt.Errorf("insert bookmark: %w", err)
	}
	return "added", nil
}

// ToggleLike behaves like ToggleBookmark, keyed on (userID, articleID).
func (s *PostgresStore) ToggleLike(ctx context.Context, userID, articleID string) (string, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM article_likes WHERE user_id=$1 AND article_id=$2
	`, userID, articleID)
	if err != nil {
		return "", fmt.Errorf("delete like: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("delete like rows: %w", err)
	}
	if affected > 0 {
		return "removed", nil
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO article_likes (user_id, article_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, article_id) DO NOTHING
	`, userID, articleID); err != nil {
		return "", fmt.Errorf("insert like: %w", err)
	}
	return "added", nil
}

func (s *PostgresStore) ArticleLikeCount(ctx context.Context, articleID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM article_likes WHERE article_id=$1`, articleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) HasLiked(ctx context.Context, userID, articleID string) (bool, error) {
	var liked bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM article_likes WHERE user_id=$1 AND article_id=$2)
	`, userID, articleID).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return liked, nil
}

// ListBookmarks returns the user's bookmarked projects, most recently
// bookmarked first.
func (s *PostgresStore) ListBookmarks(ctx context.Context, userID string) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.subtitle, p.description, p.category, p.state, p.status, COALESCE(p.image_url, ''), p.created_at, p.updated_at
		FROM bookmarks b
		JOIN projects p ON p.id = b.project_id
		WHERE b.user_id=$1
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	items := make([]Project, 0)
	for rows.Next() {
		var item Project
		if err := rows.Scan(&item.ID, &item.Title, &item.Subtitle, &item.Description, &item.Category, &item.State, &item.Status, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks: %w", err)
	}
	return items, nil
}

// ── Article comments ──

func (s *PostgresStore) InsertComment(ctx context.Context, comment Comment) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO article_comments (id, article_id, user_id, body)
		VALUES ($1, $2, $3, $4)
	`, comment.ID, comment.ArticleID, comment.UserID, comment.Body)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListComments returns the article's comments newest first, each carrying the
// author's public fields only.
func (s *PostgresStore) ListComments(ctx context.Context, articleID string) ([]Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.article_id, c.user_id, c.body, c.created_at, u.id, u.name, COALESCE(u.image, '')
		FROM article_comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.article_id=$1
		ORDER BY c.created_at DESC
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	items := make([]Comment, 0)
	for rows.Next() {
		var item Comment
		if err := rows.Scan(&item.ID, &item.ArticleID, &item.UserID, &item.Body, &item.CreatedAt, &item.Author.ID, &item.Author.Name, &item.Author.Image); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return items, nil
}
