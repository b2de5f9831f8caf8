package store

import (
	"context"
	"fmt"
)

func (s *PostgresStore) InsertFeedback(ctx context.Context, feedback Feedback) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (id, project_id, user_id, user_name, comment, rating, sentiment_summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, feedback.ID, feedback.ProjectID, feedback.UserID, feedback.UserName, feedback.Comment, feedback.Rating, feedback.SentimentSummary)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListFeedback(ctx context.Context, projectID string) ([]Feedback, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, user_id, user_name, comment, rating, sentiment_summary, created_at
		FROM feedback
		WHERE project_id=$1
		ORDER BY created_at DESC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	items := make([]Feedback, 0)
	for rows.Next() {
		var item Feedback
		if err := rows.Scan(&item.ID, &item.ProjectID, &item.UserID, &item.UserName, &item.Comment, &item.Rating, &item.SentimentSummary, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return items, nil
}

// AverageRating averages only rows where a rating was given. Unrated feedback
// does not drag the average down. Returns ok=false when no rated rows exist.
func (s *PostgresStore) AverageRating(ctx context.Context, projectID string) (float64, bool, error) {
	var avg *float64
	err := s.db.QueryRowContext(ctx, `
		SELECT AVG(rating) FROM feedback WHERE project_id=$1 AND rating IS NOT NULL
	`, projectID).Scan(&avg)
	if err != nil {
		return 0, false, fmt.Errorf("average rating: %w", err)
	}
	if avg == nil {
		return 0, false, nil
	}
	return *avg, true, nil
}
