package app

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"govhub/api/internal/auth"
	"govhub/api/internal/authpw"
	"govhub/api/internal/config"
	"govhub/api/internal/email"
	"govhub/api/internal/media"
	"govhub/api/internal/rbac"
	"govhub/api/internal/search"
	"govhub/api/internal/sentiment"
	"govhub/api/internal/store"
	"govhub/api/internal/util"
)

type Session struct {
	Token        string
	RefreshToken string
	UserID       string
	UserName     string
	Role         string
	JTI          string
	ExpiresAt    time.Time
}

type ProjectInput struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	State       string   `json:"state"`
	Status      string   `json:"status"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

type ArticleInput struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	Content       string `json:"content"`
	Category      string `json:"category"`
	ImageURL      string `json:"imageUrl"`
	PublishedDate string `json:"publishedDate"`
}

type ServiceInput struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Agency      string `json:"agency"`
	ExternalURL string `json:"externalUrl"`
}

type OpportunityInput struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	Deadline    string `json:"deadline"`
	ExternalURL string `json:"externalUrl"`
}

type VideoInput struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

type FeedbackInput struct {
	UserName string `json:"userName"`
	Comment  string `json:"comment"`
	Rating   *int   `json:"rating"`
}

type SettingsInput struct {
	SiteName     string `json:"siteName"`
	Tagline      string `json:"tagline"`
	ContactEmail string `json:"contactEmail"`
}

type dataStore interface {
	Ping(context.Context) error

	CreateUser(context.Context, store.User) error
	GetUserByID(context.Context, string) (store.User, error)
	GetUserByEmail(context.Context, string) (store.User, error)
	ListUsers(context.Context) ([]store.User, error)
	DeleteUser(context.Context, string) (bool, error)
	RevokeAccessToken(context.Context, string, time.Time) error
	IsAccessTokenRevoked(context.Context, string) (bool, error)

	CreateProject(context.Context, store.Project) error
	GetProject(context.Context, string) (store.Project, error)
	ListProjects(context.Context, string, string) ([]store.Project, error)
	UpdateProject(context.Context, store.Project) (bool, error)
	DeleteProject(context.Context, string) (bool, error)

	InsertArticle(context.Context, store.NewsArticle) error
	GetArticleBySlug(context.Context, string) (store.NewsArticle, error)
	ListArticles(context.Context, string) ([]store.NewsArticle, error)
	UpdateArticle(context.Context, store.NewsArticle) (bool, error)
	DeleteArticle(context.Context, string) (bool, error)

	InsertService(context.Context, store.GovService) error
	GetServiceBySlug(context.Context, string) (store.GovService, error)
	ListServices(context.Context, string) ([]store.GovService, error)
	UpdateService(context.Context, store.GovService) (bool, error)
	DeleteService(context.Context, string) (bool, error)

	InsertOpportunity(context.Context, store.Opportunity) error
	GetOpportunityBySlug(context.Context, string) (store.Opportunity, error)
	ListOpportunities(context.Context, string) ([]store.Opportunity, error)
	UpdateOpportunity(context.Context, store.Opportunity) (bool, error)
	DeleteOpportunity(context.Context, string) (bool, error)

	InsertVideo(context.Context, store.Video) error
	ListVideos(context.Context) ([]store.Video, error)
	DeleteVideo(context.Context, string) (bool, error)

	GetSiteSettings(context.Context) (store.SiteSettings, error)
	UpdateSiteSettings(context.Context, store.SiteSettings) error

	ToggleBookmark(context.Context, string, string) (string, error)
	ToggleLike(context.Context, string, string) (string, error)
	ArticleLikeCount(context.Context, string) (int, error)
	HasLiked(context.Context, string, string) (bool, error)
	ListBookmarks(context.Context, string) ([]store.Project, error)
	InsertComment(context.Context, store.Comment) error
	ListComments(context.Context, string) ([]store.Comment, error)

	InsertFeedback(context.Context, store.Feedback) error
	ListFeedback(context.Context, string) ([]store.Feedback, error)
	AverageRating(context.Context, string) (float64, bool, error)
}

// sessionStore abstracts refresh token storage so Redis and Postgres backends
// are interchangeable.
type sessionStore interface {
	SaveRefreshSession(ctx context.Context, tokenHash string, user store.User, expiresAt time.Time) error
	LookupRefreshSession(ctx context.Context, tokenHash string) (store.User, error)
	RevokeRefreshSession(ctx context.Context, tokenHash string) error
}

type Service struct {
	cfg        config.Config
	store      dataStore
	sessions   sessionStore
	search     *search.Service
	classifier sentiment.Classifier
	authpw     *authpw.Service
	email      *email.Service
	media      *media.Service
}

// New wires the application service. sessions, searchSvc, classifier, emailSvc,
// and mediaSvc may each be nil when the backing system is not configured;
// sessions falls back to the primary store.
func New(cfg config.Config, dataStore *store.PostgresStore, sessions sessionStore, searchSvc *search.Service, classifier sentiment.Classifier, emailSvc *email.Service, mediaSvc *media.Service) *Service {
	if sessions == nil {
		sessions = dataStore
	}
	if searchSvc == nil {
		searchSvc = search.NewService(nil, search.NewAggregator(dataStore))
	}
	return &Service{
		cfg:        cfg,
		store:      dataStore,
		sessions:   sessions,
		search:     searchSvc,
		classifier: classifier,
		authpw:     authpw.NewService(dataStore),
		email:      emailSvc,
		media:      mediaSvc,
	}
}

// Bootstrap seeds the site settings row and, when configured, the initial
// admin account. Safe to run on every start.
func (s *Service) Bootstrap(ctx context.Context) error {
	if _, err := s.store.GetSiteSettings(ctx); err != nil {
		if err := s.store.UpdateSiteSettings(ctx, store.SiteSettings{
			SiteName:     "NigeriaGovHub",
			Tagline:      "Your gateway to government services and projects",
			ContactEmail: "info@nigeriagovhub.ng",
		}); err != nil {
			return err
		}
	}

	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return nil
	}
	if _, err := s.store.GetUserByEmail(ctx, s.cfg.AdminEmail); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := store.User{
		ID:              util.NewID("usr"),
		Name:            "Administrator",
		Email:           s.cfg.AdminEmail,
		PasswordHash:    string(hash),
		Role:            string(rbac.RoleAdmin),
		IsEmailVerified: true,
	}
	if err := s.store.CreateUser(ctx, admin); err != nil && !errors.Is(err, store.ErrDuplicate) {
		return err
	}
	return nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) Can(role string, action rbac.Action) bool {
	return rbac.Can(rbac.Normalize(role), action)
}

func (s *Service) AuthPasswordService() *authpw.Service {
	return s.authpw
}

func (s *Service) SMTPConfigured() bool {
	return s.email != nil && s.email.IsConfigured()
}

func (s *Service) MediaConfigured() bool {
	return s.media != nil
}

// SendVerificationEmail mails the signup verification link. No-op when SMTP
// is not configured; callers surface the token in dev mode instead.
func (s *Service) SendVerificationEmail(to, userName, token string) {
	if !s.SMTPConfigured() {
		return
	}
	url := s.cfg.PublicBaseURL + "/verify-email?token=" + token
	if err := s.email.SendVerificationEmail(to, userName, url); err != nil {
		log.Printf("email: send verification to %s: %v", to, err)
	}
}

// SendPasswordResetEmail mails the reset link. No-op when SMTP is not
// configured.
func (s *Service) SendPasswordResetEmail(to, userName, token string) {
	if !s.SMTPConfigured() {
		return
	}
	url := s.cfg.PublicBaseURL + "/reset-password?token=" + token
	if err := s.email.SendPasswordResetEmail(to, userName, url); err != nil {
		log.Printf("email: send password reset to %s: %v", to, err)
	}
}

// ── Sessions ──

func (s *Service) CreateSession(ctx context.Context, userID string) (Session, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return Session{}, err
	}
	return s.issueSession(ctx, user)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	tokenHash := auth.HashToken(refreshToken)
	user, err := s.sessions.LookupRefreshSession(ctx, tokenHash)
	if err != nil {
		return Session{}, err
	}
	if err := s.sessions.RevokeRefreshSession(ctx, tokenHash); err != nil {
		return Session{}, err
	}
	return s.issueSession(ctx, user)
}

func (s *Service) issueSession(ctx context.Context, user store.User) (Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.AccessTTL)
	jti := util.NewID("jti")

	token, err := auth.IssueToken([]byte(s.cfg.JWTSecret), auth.Claims{
		Sub:  user.ID,
		Name: user.Name,
		Role: user.Role,
		JTI:  jti,
		Exp:  expiresAt.Unix(),
	})
	if err != nil {
		return Session{}, err
	}

	refresh := util.NewID("rft") + util.NewID("")
	refreshExpires := now.Add(s.cfg.RefreshTTL)
	if err := s.sessions.SaveRefreshSession(ctx, auth.HashToken(refresh), user, refreshExpires); err != nil {
		return Session{}, err
	}

	return Session{
		Token:        token,
		RefreshToken: refresh,
		UserID:       user.ID,
		UserName:     user.Name,
		Role:         user.Role,
		JTI:          jti,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *Service) SessionFromToken(ctx context.Context, token string) (Session, error) {
	claims, err := auth.ParseToken([]byte(s.cfg.JWTSecret), token)
	if err != nil {
		return Session{}, err
	}
	revoked, err := s.store.IsAccessTokenRevoked(ctx, claims.JTI)
	if err != nil {
		return Session{}, err
	}
	if revoked {
		return Session{}, auth.ErrInvalidToken
	}

	user, err := s.store.GetUserByID(ctx, claims.Sub)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Token:     token,
		UserID:    user.ID,
		UserName:  user.Name,
		Role:      user.Role,
		JTI:       claims.JTI,
		ExpiresAt: time.Unix(claims.Exp, 0),
	}, nil
}

func (s *Service) Logout(ctx context.Context, session Session, refreshToken string) error {
	if session.JTI != "" {
		_ = s.store.RevokeAccessToken(ctx, session.JTI, session.ExpiresAt)
	}
	if refreshToken != "" {
		_ = s.sessions.RevokeRefreshSession(ctx, auth.HashToken(refreshToken))
	}
	return nil
}

// ── Search ──

func (s *Service) Search(ctx context.Context, q search.Query) (search.Response, error) {
	resp, err := s.search.Search(ctx, q)
	if err != nil {
		return search.Response{}, domainError(http.StatusBadGateway, "SEARCH_FAILED", "Search is temporarily unavailable", nil)
	}
	return resp, nil
}

// ── Projects ──

func (s *Service) ListProjects(ctx context.Context, category, state string) ([]map[string]any, error) {
	projects, err := s.store.ListProjects(ctx, category, state)
	if err != nil {
		return nil, err
	}
	payload := make([]map[string]any, 0, len(projects))
	for _, p := range projects {
		payload = append(payload, projectPayload(p))
	}
	return payload, nil
}

func (s *Service) GetProject(ctx context.Context, projectID string) (map[string]any, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	payload := projectPayload(project)

	avg, rated, err := s.store.AverageRating(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if rated {
		payload["averageRating"] = avg
	} else {
		payload["averageRating"] = nil
	}
	return payload, nil
}

func (s *Service) CreateProject(ctx context.Context, input ProjectInput) (map[string]any, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", nil)
	}
	project := store.Project{
		ID:          util.NewID("prj"),
		Title:       strings.TrimSpace(input.Title),
		Subtitle:    strings.TrimSpace(input.Subtitle),
		Description: input.Description,
		Category:    input.Category,
		State:       input.State,
		Status:      input.Status,
		ImageURL:    input.ImageURL,
		Tags:        input.Tags,
		CreatedAt:   time.Now(),
	}
	if err := s.store.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	s.search.IndexProject(search.ProjectRecord{
		ID:        project.ID,
		Title:     project.Title,
		Subtitle:  project.Subtitle,
		Category:  project.Category,
		State:     project.State,
		CreatedAt: project.CreatedAt.Unix(),
	})
	return projectPayload(project), nil
}

func (s *Service) UpdateProject(ctx context.Context, projectID string, input ProjectInput) (map[string]any, error) {
	existing, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	existing.Title = strings.TrimSpace(input.Title)
	existing.Subtitle = strings.TrimSpace(input.Subtitle)
	existing.Description = input.Description
	existing.Category = input.Category
	existing.State = input.State
	existing.Status = input.Status
	existing.ImageURL = input.ImageURL
	existing.Tags = input.Tags

	updated, err := s.store.UpdateProject(ctx, existing)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, sql.ErrNoRows
	}
	s.search.IndexProject(search.ProjectRecord{
		ID:        existing.ID,
		Title:     existing.Title,
		Subtitle:  existing.Subtitle,
		Category:  existing.Category,
		State:     existing.State,
		CreatedAt: existing.CreatedAt.Unix(),
	})
	return projectPayload(existing), nil
}

func (s *Service) DeleteProject(ctx context.Context, projectID string) error {
	deleted, err := s.store.DeleteProject(ctx, projectID)
	if err != nil {
		return err
	}
	if !deleted {
		return sql.ErrNoRows
	}
	s.search.DeleteEntry(search.ResultProject, projectID)
	return nil
}

// ── Feedback ──

func (s *Service) ListProjectFeedback(ctx context.Context, projectID string) (map[string]any, error) {
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	items, err := s.store.ListFeedback(ctx, projectID)
	if err != nil {
		return nil, err
	}
	avg, rated, err := s.store.AverageRating(ctx, projectID)
	if err != nil {
		return nil, err
	}

	payload := make([]map[string]any, 0, len(items))
	for _, f := range items {
		entry := map[string]any{
			"id":        f.ID,
			"userName":  f.UserName,
			"comment":   f.Comment,
			"createdAt": f.CreatedAt,
		}
		if f.Rating != nil {
			entry["rating"] = *f.Rating
		} else {
			entry["rating"] = nil
		}
		if f.SentimentSummary != nil {
			entry["sentimentSummary"] = *f.SentimentSummary
		}
		payload = append(payload, entry)
	}

	result := map[string]any{"feedback": payload}
	if rated {
		result["averageRating"] = avg
	} else {
		result["averageRating"] = nil
	}
	return result, nil
}

// SubmitFeedback validates and stores citizen feedback. The sentiment
// classifier is consulted before anything is written; when it cannot produce
// a summary the submission is rejected rather than stored unclassified.
func (s *Service) SubmitFeedback(ctx context.Context, projectID string, session *Session, input FeedbackInput) (map[string]any, error) {
	comment := strings.TrimSpace(input.Comment)
	userName := strings.TrimSpace(input.UserName)
	if session != nil && userName == "" {
		userName = session.UserName
	}

	// Lengths count characters, not bytes, so multibyte input is not
	// over-counted.
	var problems []string
	if utf8.RuneCountInString(comment) < 10 {
		problems = append(problems, "comment must be at least 10 characters")
	}
	if utf8.RuneCountInString(userName) < 2 {
		problems = append(problems, "userName must be at least 2 characters")
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		problems = append(problems, "rating must be between 1 and 5")
	}
	if len(problems) > 0 {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid feedback", problems)
	}

	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	if s.classifier == nil {
		return nil, domainError(http.StatusServiceUnavailable, "SENTIMENT_UNAVAILABLE", "Feedback analysis is not available right now", nil)
	}
	summary, err := s.classifier.Classify(ctx, comment)
	if err != nil {
		log.Printf("sentiment: classify failed: %v", err)
		return nil, domainError(http.StatusBadGateway, "SENTIMENT_FAILED", "Feedback could not be analyzed, please try again", nil)
	}

	feedback := store.Feedback{
		ID:               util.NewID("fbk"),
		ProjectID:        projectID,
		UserName:         userName,
		Comment:          comment,
		Rating:           input.Rating,
		SentimentSummary: &summary,
		CreatedAt:        time.Now(),
	}
	if session != nil {
		feedback.UserID = &session.UserID
	}
	if err := s.store.InsertFeedback(ctx, feedback); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"id":               feedback.ID,
		"projectId":        feedback.ProjectID,
		"userName":         feedback.UserName,
		"comment":          feedback.Comment,
		"sentimentSummary": summary,
		"createdAt":        feedback.CreatedAt,
	}
	if feedback.Rating != nil {
		payload["rating"] = *feedback.Rating
	} else {
		payload["rating"] = nil
	}
	return payload, nil
}

// ── Articles ──

func (s *Service) ListArticles(ctx context.Context, category string) ([]map[string]any, error) {
	articles, err := s.store.ListArticles(ctx, category)
	if err != nil {
		return nil, err
	}
	payload := make([]map[string]any, 0, len(articles))
	for _, a := range articles {
		payload = append(payload, articleSummaryPayload(a))
	}
	return payload, nil
}

// GetArticle assembles the article detail view: like count, whether the
// viewer has liked it, and comments newest first. viewerID is empty for
// anonymous readers, for whom viewerHasLiked is always false.
func (s *Service) GetArticle(ctx context.Context, slug, viewerID string) (map[string]any, error) {
	article, err := s.store.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	likeCount, err := s.store.ArticleLikeCount(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	viewerHasLiked := false
	if viewerID != "" {
		viewerHasLiked, err = s.store.HasLiked(ctx, viewerID, article.ID)
		if err != nil {
			return nil, err
		}
	}

	comments, err := s.store.ListComments(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	commentPayload := make([]map[string]any, 0, len(comments))
	for _, c := range comments {
		commentPayload = append(commentPayload, map[string]any{
			"id":        c.ID,
			"body":      c.Body,
			"createdAt": c.CreatedAt,
			"author": map[string]any{
				"id":    c.Author.ID,
				"name":  c.Author.Name,
				"image": c.Author.Image,
			},
		})
	}

	payload := articleSummaryPayload(article)
	payload["content"] = article.Content
	payload["likeCount"] = likeCount
	payload["viewerHasLiked"] = viewerHasLiked
	payload["comments"] = commentPayload
	return payload, nil
}

func (s *Service) CreateArticle(ctx context.Context, input ArticleInput) (map[string]any, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", nil)
	}
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = util.Slugify(title)
	}
	publishedDate, err := parseDate(input.PublishedDate)
	if err != nil {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "publishedDate must be YYYY-MM-DD", nil)
	}

	article := store.NewsArticle{
		ID:            util.NewID("art"),
		Slug:          slug,
		Title:         title,
		Summary:       input.Summary,
		Content:       input.Content,
		Category:      input.Category,
		ImageURL:      input.ImageURL,
		PublishedDate: publishedDate,
		CreatedAt:     time.Now(),
	}
	if err := s.store.InsertArticle(ctx, article); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, domainError(http.StatusConflict, "SLUG_EXISTS", "An article with this slug already exists", nil)
		}
		return nil, err
	}
	s.search.IndexArticle(search.ArticleRecord{
		ID:        article.ID,
		Slug:      article.Slug,
		Title:     article.Title,
		Summary:   article.Summary,
		Category:  article.Category,
		CreatedAt: article.CreatedAt.Unix(),
	})
	payload := articleSummaryPayload(article)
	payload["content"] = article.Content
	return payload, nil
}

func (s *Service) UpdateArticle(ctx context.Context, slug string, input ArticleInput) (map[string]any, error) {
	existing, err := s.store.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	publishedDate := existing.PublishedDate
	if input.PublishedDate != "" {
		publishedDate, err = parseDate(input.PublishedDate)
		if err != nil {
			return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "publishedDate must be YYYY-MM-DD", nil)
		}
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Summary = input.Summary
	existing.Content = input.Content
	existing.Category = input.Category
	existing.ImageURL = input.ImageURL
	existing.PublishedDate = publishedDate

	updated, err := s.store.UpdateArticle(ctx, existing)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, sql.ErrNoRows
	}
	s.search.IndexArticle(search.ArticleRecord{
		ID:        existing.ID,
		Slug:      existing.Slug,
		Title:     existing.Title,
		Summary:   existing.Summary,
		Category:  existing.Category,
		CreatedAt: existing.CreatedAt.Unix(),
	})
	payload := articleSummaryPayload(existing)
	payload["content"] = existing.Content
	return payload, nil
}

func (s *Service) DeleteArticle(ctx context.Context, slug string) error {
	existing, err := s.store.GetArticleBySlug(ctx, slug)
	if err != nil {
		return err
	}
	deleted, err := s.store.DeleteArticle(ctx, existing.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return sql.ErrNoRows
	}
	s.search.DeleteEntry(search.ResultArticle, existing.ID)
	return nil
}

// ── Engagement ──

func (s *Service) ToggleBookmark(ctx context.Context, session Session, projectID string) (map[string]any, error) {
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	action, err := s.store.ToggleBookmark(ctx, session.UserID, projectID)
	if err != nil {
		return nil, err
	}
	return map[string]any{"action": action, "projectId": projectID}, nil
}

func (s *Service) ToggleLike(ctx context.Context, session Session, slug string) (map[string]any, error) {
	article, err := s.store.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	action, err := s.store.ToggleLike(ctx, session.UserID, article.ID)
	if err != nil {
		return nil, err
	}
	likeCount, err := s.store.ArticleLikeCount(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	return map[string]any{"action": action, "slug": slug, "likeCount": likeCount}, nil
}

func (s *Service) ListBookmarks(ctx context.Context, session Session) ([]map[string]any, error) {
	projects, err := s.store.ListBookmarks(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	payload := make([]map[string]any, 0, len(projects))
	for _, p := range projects {
		payload = append(payload, projectPayload(p))
	}
	return payload, nil
}

func (s *Service) AddComment(ctx context.Context, session Session, slug, body string) (map[string]any, error) {
	trimmed := strings.TrimSpace(body)
	if utf8.RuneCountInString(trimmed) < 2 {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "comment must be at least 2 characters", nil)
	}

	article, err := s.store.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	comment := store.Comment{
		ID:        util.NewID("cmt"),
		ArticleID: article.ID,
		UserID:    session.UserID,
		Body:      trimmed,
		CreatedAt: time.Now(),
	}
	if err := s.store.InsertComment(ctx, comment); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":        comment.ID,
		"body":      comment.Body,
		"createdAt": comment.CreatedAt,
		"author": map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"image": user.Image,
		},
	}, nil
}

// ── Government services ──

func (s *Service) ListServices(ctx context.Context, category string) ([]map[string]any, error) {
	services, err := s.store.ListServices(ctx, category)
	if err != nil {
		return nil, err
	}
	payload := make([]map[string]any, 0, len(services))
	for _, svc := range services {
		payload = append(payload, servicePayload(svc))
	}
	return payload, nil
}

func (s *Service) GetService(ctx context.Context, slug string) (map[string]any, error) {
	svc, err := s.store.GetServiceBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	payload := servicePayload(svc)
	payload["content"] = svc.Content
	return payload, nil
}

func (s *Service) CreateService(ctx context.Context, input ServiceInput) (map[string]any, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", nil)
	}
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = util.Slugify(title)
	}

	svc := store.GovService{
		ID:          util.NewID("svc"),
		Slug:        slug,
		Title:       title,
		Summary:     input.Summary,
		Content:     input.Content,
		Category:    input.Category,
		Agency:      input.Agency,
		ExternalURL: input.ExternalURL,
		CreatedAt:   time.Now(),
	}
	if err := s.store.InsertService(ctx, svc); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, domainError(http.StatusConflict, "SLUG_EXISTS", "A service with this slug already exists", nil)
		}
		return nil, err
	}
	s.search.IndexService(search.ServiceRecord{
		ID:        svc.ID,
		Slug:      svc.Slug,
		Title:     svc.Title,
		Summary:   svc.Summary,
		Agency:    svc.Agency,
		CreatedAt: svc.CreatedAt.Unix(),
	})
	payload := servicePayload(svc)
	payload["content"] = svc.Content
	return payload, nil
}

func (s *Service) UpdateService(ctx context.Context, slug string, input ServiceInput) (map[string]any, error) {
	existing, err := s.store.GetServiceBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	existing.Title = strings.TrimSpace(input.Title)
	existing.Summary = input.Summary
	existing.Content = input.Content
	existing.Category = input.Category
	existing.Agency = input.Agency
	existing.ExternalURL = input.ExternalURL

	updated, err := s.store.UpdateService(ctx, existing)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, sql.ErrNoRows
	}
	s.search.IndexService(search.ServiceRecord{
		ID:        existing.ID,
		Slug:      existing.Slug,
		Title:     existing.Title,
		Summary:   existing.Summary,
		Agency:    existing.Agency,
		CreatedAt: existing.CreatedAt.Unix(),
	})
	payload := servicePayload(existing)
	payload["content"] = existing.Content
	return payload, nil
}

func (s *Service) DeleteService(ctx context.Context, slug string) error {
	existing, err := s.store.GetServiceBySlug(ctx, slug)
	if err != nil {
		return err
	}
	deleted, err := s.store.DeleteService(ctx, existing.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return sql.ErrNoRows
	}
	s.search.DeleteEntry(search.ResultService, existing.ID)
	return nil
}

// ── Opportunities ──

func (s *Service) ListOpportunities(ctx context.Context, oppType string) ([]map[string]any, error) {
	opportunities, err := s.store.ListOpportunities(ctx, oppType)
	if err != nil {
		return nil, err
	}
	payload := make([]map[string]any, 0, len(opportunities))
	for _, o := range opportunities {
		payload = append(payload, opportunityPayload(o))
	}
	return payload, nil
}

func (s *Service) GetOpportunity(ctx context.Context, slug string) (map[string]any, error) {
	opp, err := s.store.GetOpportunityBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	payload := opportunityPayload(opp)
	payload["content"] = opp.Content
	return payload, nil
}

func (s *Service) CreateOpportunity(ctx context.Context, input OpportunityInput) (map[string]any, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", nil)
	}
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = util.Slugify(title)
	}

	var deadline *time.Time
	if input.Deadline != "" {
		parsed, err := parseDate(input.Deadline)
		if err != nil {
			return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "deadline must be YYYY-MM-DD", nil)
		}
		deadline = &parsed
	}

	opp := store.Opportunity{
		ID:          util.NewID("opp"),
		Slug:        slug,
		Title:       title,
		Summary:     input.Summary,
		Content:     input.Content,
		Type:        input.Type,
		Deadline:    deadline,
		ExternalURL: input.ExternalURL,
		CreatedAt:   time.Now(),
	}
	if err := s.store.InsertOpportunity(ctx, opp); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, domainError(http.StatusConflict, "SLUG_EXISTS", "An opportunity with this slug already exists", nil)
		}
		return nil, err
	}
	s.search.IndexOpportunity(search.OpportunityRecord{
		ID:        opp.ID,
		Slug:      opp.Slug,
		Title:     opp.Title,
		Summary:   opp.Summary,
		CreatedAt: opp.CreatedAt.Unix(),
	})
	payload := opportunityPayload(opp)
	payload["content"] = opp.Content
	return payload, nil
}

func (s *Service) UpdateOpportunity(ctx context.Context, slug string, input OpportunityInput) (map[string]any, error) {
	existing, err := s.store.GetOpportunityBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if input.Deadline != "" {
		parsed, err := parseDate(input.Deadline)
		if err != nil {
			return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "deadline must be YYYY-MM-DD", nil)
		}
		existing.Deadline = &parsed
	}
	existing.Title = strings.TrimSpace(input.Title)
	existing.Summary = input.Summary
	existing.Content = input.Content
	existing.Type = input.Type
	existing.ExternalURL = input.ExternalURL

	updated, err := s.store.UpdateOpportunity(ctx, existing)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, sql.ErrNoRows
	}
	s.search.IndexOpportunity(search.OpportunityRecord{
		ID:        existing.ID,
		Slug:      existing.Slug,
		Title:     existing.Title,
		Summary:   existing.Summary,
		CreatedAt: existing.CreatedAt.Unix(),
	})
	payload := opportunityPayload(existing)
	payload["content"] = existing.Content
	return payload, nil
}

func (s *Service) DeleteOpportunity(ctx context.Context, slug string) error {
	existing, err := s.store.GetOpportunityBySlug(ctx, slug)
	if err != nil {
		return err
	}
	deleted, err := s.store.DeleteOpportunity(ctx, existing.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return sql.ErrNoRows
	}
	s.search.DeleteEntry(search.ResultOpportunity, existing.ID)
	return nil
}

// ── Videos ──

func (s *Service) ListVideos(ctx context.Context) ([]map[string]any, error) {
	videos, err := s.store.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	payload := make([]map[string]any, 0, len(videos))
	for _, v := range videos {
		payload = append(payload, map[string]any{
			"id":        v.ID,
			"title":     v.Title,
			"url":       v.URL,
			"category":  v.Category,
			"createdAt": v.CreatedAt,
		})
	}
	return payload, nil
}

func (s *Service) CreateVideo(ctx context.Context, input VideoInput) (map[string]any, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.URL) == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title and url are required", nil)
	}
	video := store.Video{
		ID:        util.NewID("vid"),
		Title:     strings.TrimSpace(input.Title),
		URL:       strings.TrimSpace(input.URL),
		Category:  input.Category,
		CreatedAt: time.Now(),
	}
	if err := s.store.InsertVideo(ctx, video); err != nil {
		return nil, err
	}
	return map[string]any{
		"id":        video.ID,
		"title":     video.Title,
		"url":       video.URL,
		"category":  video.Category,
		"createdAt": video.CreatedAt,
	}, nil
}

func (s *Service) DeleteVideo(ctx context.Context, videoID string) error {
	deleted, err := s.store.DeleteVideo(ctx, videoID)
	if err != nil {
		return err
	}
	if !deleted {
		return sql.ErrNoRows
	}
	return nil
}

// ── Site settings ──

func (s *Service) GetSettings(ctx context.Context) (map[string]any, error) {
	settings, err := s.store.GetSiteSettings(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"siteName":     settings.SiteName,
		"tagline":      settings.Tagline,
		"contactEmail": settings.ContactEmail,
		"updatedAt":    settings.UpdatedAt,
	}, nil
}

func (s *Service) UpdateSettings(ctx context.Context, input SettingsInput) (map[string]any, error) {
	if strings.TrimSpace(input.SiteName) == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "siteName is required", nil)
	}
	settings := store.SiteSettings{
		SiteName:     strings.TrimSpace(input.SiteName),
		Tagline:      input.Tagline,
		ContactEmail: input.ContactEmail,
	}
	if err := s.store.UpdateSiteSettings(ctx, settings); err != nil {
		return nil, err
	}
	return s.GetSettings(ctx)
}

// ── Admin users ──

func (s *Service) ListUsers(ctx context.Context) ([]map[string]any, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	payload := make([]map[string]any, 0, len(users))
	for _, u := range users {
		payload = append(payload, map[string]any{
			"id":              u.ID,
			"name":            u.Name,
			"email":           u.Email,
			"role":            u.Role,
			"isEmailVerified": u.IsEmailVerified,
			"createdAt":       u.CreatedAt,
		})
	}
	return payload, nil
}

func (s *Service) DeleteUser(ctx context.Context, session Session, userID string) error {
	if session.UserID == userID {
		return domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "You cannot delete your own account", nil)
	}
	deleted, err := s.store.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return sql.ErrNoRows
	}
	return nil
}

// UploadMedia stores an uploaded image and returns its public URL.
func (s *Service) UploadMedia(ctx context.Context, reader io.Reader, size int64, contentType string) (map[string]any, error) {
	if s.media == nil {
		return nil, domainError(http.StatusServiceUnavailable, "MEDIA_UNAVAILABLE", "Media storage is not configured", nil)
	}
	url, err := s.media.Upload(ctx, reader, size, contentType)
	if err != nil {
		return nil, domainError(http.StatusUnprocessableEntity, "UPLOAD_FAILED", err.Error(), nil)
	}
	return map[string]any{"url": url}, nil
}

// ── Payload helpers ──

func projectPayload(p store.Project) map[string]any {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"subtitle":    p.Subtitle,
		"description": p.Description,
		"category":    p.Category,
		"state":       p.State,
		"status":      p.Status,
		"imageUrl":    p.ImageURL,
		"tags":        tags,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
}

func articleSummaryPayload(a store.NewsArticle) map[string]any {
	return map[string]any{
		"id":            a.ID,
		"slug":          a.Slug,
		"title":         a.Title,
		"summary":       a.Summary,
		"category":      a.Category,
		"imageUrl":      a.ImageURL,
		"publishedDate": a.PublishedDate.Format("2006-01-02"),
		"createdAt":     a.CreatedAt,
	}
}

func servicePayload(svc store.GovService) map[string]any {
	return map[string]any{
		"id":          svc.ID,
		"slug":        svc.Slug,
		"title":       svc.Title,
		"summary":     svc.Summary,
		"category":    svc.Category,
		"agency":      svc.Agency,
		"externalUrl": svc.ExternalURL,
		"createdAt":   svc.CreatedAt,
	}
}

func opportunityPayload(o store.Opportunity) map[string]any {
	payload := map[string]any{
		"id":          o.ID,
		"slug":        o.Slug,
		"title":       o.Title,
		"summary":     o.Summary,
		"type":        o.Type,
		"externalUrl": o.ExternalURL,
		"createdAt":   o.CreatedAt,
	}
	if o.Deadline != nil {
		payload["deadline"] = o.Deadline.Format("2006-01-02")
	} else {
		payload["deadline"] = nil
	}
	return payload
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(value))
}
