package store

import (
	"errors"
	"time"
)

// ErrDuplicate wraps unique-constraint violations so callers can translate
// them into an actionable message instead of a generic server error.
var ErrDuplicate = errors.New("duplicate key")

type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string
	Role            string
	Image           string
	IsEmailVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PublicUser is the subset of user fields safe to attach to comments and
// feedback. Email and password hash never leave the store through it.
type PublicUser struct {
	ID    string
	Name  string
	Image string
}

type Project struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	Category    string
	State       string
	Status      string
	ImageURL    string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewsArticle struct {
	ID            string
	Slug          string
	Title         string
	Summary       string
	Content       string
	Category      string
	ImageURL      string
	PublishedDate time.Time
	CreatedAt     time.Time
}

type GovService struct {
	ID          string
	Slug        string
	Title       string
	Summary     string
	Content     string
	Category    string
	Agency      string
	ExternalURL string
	CreatedAt   time.Time
}

type Opportunity struct {
	ID          string
	Slug        string
	Title       string
	Summary     string
	Content     string
	Type        string
	Deadline    *time.Time
	ExternalURL string
	CreatedAt   time.Time
}

type Video struct {
	ID        string
	Title     string
	URL       string
	Category  string
	CreatedAt time.Time
}

type SiteSettings struct {
	SiteName     string
	Tagline      string
	ContactEmail string
	UpdatedAt    time.Time
}

type Feedback struct {
	ID               string
	ProjectID        string
	UserID           *string
	UserName         string
	Comment          string
	Rating           *int
	SentimentSummary *string
	CreatedAt        time.Time
}

type Comment struct {
	ID        string
	ArticleID string
	UserID    string
	Body      string
	CreatedAt time.Time
	Author    PublicUser
}
