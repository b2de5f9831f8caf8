package app

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"govhub/api/internal/authpw"
	"govhub/api/internal/config"
	"govhub/api/internal/search"
	"govhub/api/internal/store"
)

type fakeStore struct {
	getUserByIDFn       func(context.Context, string) (store.User, error)
	getUserByEmailFn    func(context.Context, string) (store.User, error)
	createUserFn        func(context.Context, store.User) error
	listUsersFn         func(context.Context) ([]store.User, error)
	deleteUserFn        func(context.Context, string) (bool, error)
	createAuthTokenFn   func(context.Context, string, string, string, time.Time) error
	redeemAuthTokenFn   func(context.Context, string, string) (string, error)
	getProjectFn        func(context.Context, string) (store.Project, error)
	listProjectsFn      func(context.Context, string, string) ([]store.Project, error)
	createProjectFn     func(context.Context, store.Project) error
	updateProjectFn     func(context.Context, store.Project) (bool, error)
	getArticleBySlugFn  func(context.Context, string) (store.NewsArticle, error)
	insertArticleFn     func(context.Context, store.NewsArticle) error
	listArticlesFn      func(context.Context, string) ([]store.NewsArticle, error)
	toggleBookmarkFn    func(context.Context, string, string) (string, error)
	toggleLikeFn        func(context.Context, string, string) (string, error)
	articleLikeCountFn  func(context.Context, string) (int, error)
	hasLikedFn          func(context.Context, string, string) (bool, error)
	listBookmarksFn     func(context.Context, string) ([]store.Project, error)
	insertCommentFn     func(context.Context, store.Comment) error
	listCommentsFn      func(context.Context, string) ([]store.Comment, error)
	insertFeedbackFn    func(context.Context, store.Feedback) error
	listFeedbackFn      func(context.Context, string) ([]store.Feedback, error)
	averageRatingFn     func(context.Context, string) (float64, bool, error)
	getSiteSettingsFn   func(context.Context) (store.SiteSettings, error)
	searchProjectsFn    func(context.Context, string, int) ([]store.Project, error)
	searchArticlesFn    func(context.Context, string, int) ([]store.NewsArticle, error)
	searchServicesFn    func(context.Context, string, int) ([]store.GovService, error)
	searchOppsFn        func(context.Context, string, int) ([]store.Opportunity, error)
	isTokenRevokedFn    func(context.Context, string) (bool, error)
	lookupRefreshFn     func(context.Context, string) (store.User, error)
	saveRefreshFn       func(context.Context, string, store.User, time.Time) error
	revokeRefreshFn     func(context.Context, string) error
	markEmailVerifiedFn func(context.Context, string) error

	updateUserPasswordFn func(context.Context, string, string) error
}

func (f *fakeStore) Ping(context.Context) error { return nil }

func (f *fakeStore) CreateUser(ctx context.Context, user store.User) error {
	if f.createUserFn != nil {
		return f.createUserFn(ctx, user)
	}
	return nil
}
func (f *fakeStore) GetUserByID(ctx context.Context, id string) (store.User, error) {
	if f.getUserByIDFn != nil {
		return f.getUserByIDFn(ctx, id)
	}
	return store.User{}, sql.ErrNoRows
}
func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (store.User, error) {
	if f.getUserByEmailFn != nil {
		return f.getUserByEmailFn(ctx, email)
	}
	return store.User{}, sql.ErrNoRows
}
func (f *fakeStore) ListUsers(ctx context.Context) ([]store.User, error) {
	if f.listUsersFn != nil {
		return f.listUsersFn(ctx)
	}
	return nil, nil
}
func (f *fakeStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	if f.deleteUserFn != nil {
		return f.deleteUserFn(ctx, id)
	}
	return false, nil
}
func (f *fakeStore) MarkEmailVerified(ctx context.Context, id string) error {
	if f.markEmailVerifiedFn != nil {
		return f.markEmailVerifiedFn(ctx, id)
	}
	return nil
}
func (f *fakeStore) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	if f.updateUserPasswordFn != nil {
		return f.updateUserPasswordFn(ctx, userID, passwordHash)
	}
	return nil
}
func (f *fakeStore) CreateAuthToken(ctx context.Context, identifier, purpose, token string, expiresAt time.Time) error {
	if f.createAuthTokenFn != nil {
		return f.createAuthTokenFn(ctx, identifier, purpose, token, expiresAt)
	}
	return nil
}
func (f *fakeStore) RedeemAuthToken(ctx context.Context, purpose, token string) (string, error) {
	if f.redeemAuthTokenFn != nil {
		return f.redeemAuthTokenFn(ctx, purpose, token)
	}
	return "", sql.ErrNoRows
}
func (f *fakeStore) RevokeAccessToken(context.Context, string, time.Time) error { return nil }
func (f *fakeStore) IsAccessTokenRevoked(ctx context.Context, jti string) (bool, error) {
	if f.isTokenRevokedFn != nil {
		return f.isTokenRevokedFn(ctx, jti)
	}
	return false, nil
}
func (f *fakeStore) SaveRefreshSession(ctx context.Context, hash string, user store.User, expiresAt time.Time) error {
	if f.saveRefreshFn != nil {
		return f.saveRefreshFn(ctx, hash, user, expiresAt)
	}
	return nil
}
func (f *fakeStore) LookupRefreshSession(ctx context.Context, hash string) (store.User, error) {
	if f.lookupRefreshFn != nil {
		return f.lookupRefreshFn(ctx, hash)
	}
	return store.User{}, errors.New("not found")
}
func (f *fakeStore) RevokeRefreshSession(ctx context.Context, hash string) error {
	if f.revokeRefreshFn != nil {
		return f.revokeRefreshFn(ctx, hash)
	}
	return nil
}

func (f *fakeStore) CreateProject(ctx context.Context, project store.Project) error {
	if f.createProjectFn != nil {
		return f.createProjectFn(ctx, project)
	}
	return nil
}
func (f *fakeStore) GetProject(ctx context.Context, id string) (store.Project, error) {
	if f.getProjectFn != nil {
		return f.getProjectFn(ctx, id)
	}
	return store.Project{}, sql.ErrNoRows
}
func (f *fakeStore) ListProjects(ctx context.Context, category, state string) ([]store.Project, error) {
	if f.listProjectsFn != nil {
		return f.listProjectsFn(ctx, category, state)
	}
	return nil, nil
}
func (f *fakeStore) UpdateProject(ctx context.Context, project store.Project) (bool, error) {
	if f.updateProjectFn != nil {
		return f.updateProjectFn(ctx, project)
	}
	return true, nil
}
func (f *fakeStore) DeleteProject(context.Context, string) (bool, error)        { return false, nil }

func (f *fakeStore) InsertArticle(ctx context.Context, article store.NewsArticle) error {
	if f.insertArticleFn != nil {
		return f.insertArticleFn(ctx, article)
	}
	return nil
}
func (f *fakeStore) GetArticleBySlug(ctx context.Context, slug string) (store.NewsArticle, error) {
	if f.getArticleBySlugFn != nil {
		return f.getArticleBySlugFn(ctx, slug)
	}
	return store.NewsArticle{}, sql.ErrNoRows
}
func (f *fakeStore) ListArticles(ctx context.Context, category string) ([]store.NewsArticle, error) {
	if f.listArticlesFn != nil {
		return f.listArticlesFn(ctx, category)
	}
	return nil, nil
}
func (f *fakeStore) UpdateArticle(context.Context, store.NewsArticle) (bool, error) {
	return true, nil
}
func (f *fakeStore) DeleteArticle(context.Context, string) (bool, error) { return false, nil }

func (f *fakeStore) InsertService(context.Context, store.GovService) error { return nil }
func (f *fakeStore) GetServiceBySlug(context.Context, string) (store.GovService, error) {
	return store.GovService{}, sql.ErrNoRows
}
func (f *fakeStore) ListServices(context.Context, string) ([]store.GovService, error) {
	return nil, nil
}
func (f *fakeStore) UpdateService(context.Context, store.GovService) (bool, error) {
	return true, nil
}
func (f *fakeStore) DeleteService(context.Context, string) (bool, error) { return false, nil }

func (f *fakeStore) InsertOpportunity(context.Context, store.Opportunity) error { return nil }
func (f *fakeStore) GetOpportunityBySlug(context.Context, string) (store.Opportunity, error) {
	return store.Opportunity{}, sql.ErrNoRows
}
func (f *fakeStore) ListOpportunities(context.Context, string) ([]store.Opportunity, error) {
	return nil, nil
}
func (f *fakeStore) UpdateOpportunity(context.Context, store.Opportunity) (bool, error) {
	return true, nil
}
func (f *fakeStore) DeleteOpportunity(context.Context, string) (bool, error) { return false, nil }

func (f *fakeStore) InsertVideo(context.Context, store.Video) error    { return nil }
func (f *fakeStore) ListVideos(context.Context) ([]store.Video, error) { return nil, nil }
func (f *fakeStore) DeleteVideo(context.Context, string) (bool, error) { return false, nil }

func (f *fakeStore) GetSiteSettings(ctx context.Context) (store.SiteSettings, error) {
	if f.getSiteSettingsFn != nil {
		return f.getSiteSettingsFn(ctx)
	}
	return store.SiteSettings{SiteName: "NigeriaGovHub"}, nil
}
func (f *fakeStore) UpdateSiteSettings(context.Context, store.SiteSettings) error { return nil }

func (f *fakeStore) ToggleBookmark(ctx context.Context, userID, projectID string) (string, error) {
	if f.toggleBookmarkFn != nil {
		return f.toggleBookmarkFn(ctx, userID, projectID)
	}
	return "added", nil
}
func (f *fakeStore) ToggleLike(ctx context.Context, userID, articleID string) (string, error) {
	if f.toggleLikeFn != nil {
		return f.toggleLikeFn(ctx, userID, articleID)
	}
	return "added", nil
}
func (f *fakeStore) ArticleLikeCount(ctx context.Context, articleID string) (int, error) {
	if f.articleLikeCountFn != nil {
		return f.articleLikeCountFn(ctx, articleID)
	}
	return 0, nil
}
func (f *fakeStore) HasLiked(ctx context.Context, userID, articleID string) (bool, error) {
	if f.hasLikedFn != nil {
		return f.hasLikedFn(ctx, userID, articleID)
	}
	return false, nil
}
func (f *fakeStore) ListBookmarks(ctx context.Context, userID string) ([]store.Project, error) {
	if f.listBookmarksFn != nil {
		return f.listBookmarksFn(ctx, userID)
	}
	return nil, nil
}
func (f *fakeStore) InsertComment(ctx context.Context, comment store.Comment) error {
	if f.insertCommentFn != nil {
		return f.insertCommentFn(ctx, comment)
	}
	return nil
}
func (f *fakeStore) ListComments(ctx context.Context, articleID string) ([]store.Comment, error) {
	if f.listCommentsFn != nil {
		return f.listCommentsFn(ctx, articleID)
	}
	return nil, nil
}

func (f *fakeStore) InsertFeedback(ctx context.Context, feedback store.Feedback) error {
	if f.insertFeedbackFn != nil {
		return f.insertFeedbackFn(ctx, feedback)
	}
	return nil
}
func (f *fakeStore) ListFeedback(ctx context.Context, projectID string) ([]store.Feedback, error) {
	if f.listFeedbackFn != nil {
		return f.listFeedbackFn(ctx, projectID)
	}
	return nil, nil
}
func (f *fakeStore) AverageRating(ctx context.Context, projectID string) (float64, bool, error) {
	if f.averageRatingFn != nil {
		return f.averageRatingFn(ctx, projectID)
	}
	return 0, false, nil
}

func (f *fakeStore) SearchProjects(ctx context.Context, q string, limit int) ([]store.Project, error) {
	if f.searchProjectsFn != nil {
		return f.searchProjectsFn(ctx, q, limit)
	}
	return nil, nil
}
func (f *fakeStore) SearchArticles(ctx context.Context, q string, limit int) ([]store.NewsArticle, error) {
	if f.searchArticlesFn != nil {
		return f.searchArticlesFn(ctx, q, limit)
	}
	return nil, nil
}
func (f *fakeStore) SearchServices(ctx context.Context, q string, limit int) ([]store.GovService, error) {
	if f.searchServicesFn != nil {
		return f.searchServicesFn(ctx, q, limit)
	}
	return nil, nil
}
func (f *fakeStore) SearchOpportunities(ctx context.Context, q string, limit int) ([]store.Opportunity, error) {
	if f.searchOppsFn != nil {
		return f.searchOppsFn(ctx, q, limit)
	}
	return nil, nil
}

// fakeClassifier lets tests script the sentiment backend.
type fakeClassifier struct {
	classifyFn func(context.Context, string) (string, error)
}

func (f *fakeClassifier) Classify(ctx context.Context, comment string) (string, error) {
	if f.classifyFn != nil {
		return f.classifyFn(ctx, comment)
	}
	return "neutral", nil
}

func newTestService(fs *fakeStore) *Service {
	cfg := config.Config{
		JWTSecret:  "test-secret",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
	return &Service{
		cfg:        cfg,
		store:      fs,
		sessions:   fs,
		search:     search.NewService(nil, search.NewAggregator(fs)),
		classifier: &fakeClassifier{},
		authpw:     authpw.NewService(fs),
	}
}

func existingProject(id string) func(context.Context, string) (store.Project, error) {
	return func(_ context.Context, got string) (store.Project, error) {
		if got != id {
			return store.Project{}, sql.ErrNoRows
		}
		return store.Project{ID: id, Title: "Lagos-Ibadan Expressway"}, nil
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	svc := newTestService(&fakeStore{getProjectFn: existingProject("prj_1")})

	cases := []struct {
		name  string
		input FeedbackInput
	}{
		{"short comment", FeedbackInput{UserName: "Amina", Comment: "too short"}},
		{"short user name", FeedbackInput{UserName: "A", Comment: "this comment is long enough"}},
		{"rating too low", FeedbackInput{UserName: "Amina", Comment: "this comment is long enough", Rating: intPtr(0)}},
		{"rating too high", FeedbackInput{UserName: "Amina", Comment: "this comment is long enough", Rating: intPtr(6)}},
		{"short multibyte comment", FeedbackInput{UserName: "Amina", Comment: "好好好好"}},
		{"short multibyte user name", FeedbackInput{UserName: "好", Comment: "this comment is long enough"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitFeedback(context.Background(), "prj_1", nil, tc.input)
			var domainErr *DomainError
			if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestSubmitFeedbackBoundaryLengths(t *testing.T) {
	fs := &fakeStore{getProjectFn: existingProject("prj_1")}
	svc := newTestService(fs)

	cases := []struct {
		name  string
		input FeedbackInput
	}{
		{"exactly 10 characters", FeedbackInput{UserName: "Jo", Comment: "ten chars!"}},
		{"exactly 10 multibyte characters", FeedbackInput{UserName: "好好", Comment: "好好好好好好好好好好"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SubmitFeedback(context.Background(), "prj_1", nil, tc.input); err != nil {
				t.Fatalf("boundary-length feedback should be accepted, got %v", err)
			}
		})
	}
}

func TestSubmitFeedbackClassifierFailureBlocksInsert(t *testing.T) {
	inserted := false
	fs := &fakeStore{
		getProjectFn: existingProject("prj_1"),
		insertFeedbackFn: func(context.Context, store.Feedback) error {
			inserted = true
			return nil
		},
	}
	svc := newTestService(fs)
	svc.classifier = &fakeClassifier{
		classifyFn: func(context.Context, string) (string, error) {
			return "", errors.New("model down")
		},
	}

	_, err := svc.SubmitFeedback(context.Background(), "prj_1", nil, FeedbackInput{
		UserName: "Amina",
		Comment:  "The clinic has greatly improved wait times",
	})
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "SENTIMENT_FAILED" {
		t.Fatalf("expected SENTIMENT_FAILED, got %v", err)
	}
	if inserted {
		t.Error("feedback must not be stored when classification fails")
	}
}

func TestSubmitFeedbackStoresSummaryAndViewer(t *testing.T) {
	var saved store.Feedback
	fs := &fakeStore{
		getProjectFn: existingProject("prj_1"),
		insertFeedbackFn: func(_ context.Context, f store.Feedback) error {
			saved = f
			return nil
		},
	}
	svc := newTestService(fs)
	svc.classifier = &fakeClassifier{
		classifyFn: func(context.Context, string) (string, error) { return "positive", nil },
	}

	session := &Session{UserID: "usr_1", UserName: "Amina Bello"}
	payload, err := svc.SubmitFeedback(context.Background(), "prj_1", session, FeedbackInput{
		Comment: "The clinic has greatly improved wait times",
	})
	if err != nil {
		t.Fatalf("submit feedback: %v", err)
	}

	if saved.UserID == nil || *saved.UserID != "usr_1" {
		t.Error("a signed-in submission should carry the user ID")
	}
	if saved.UserName != "Amina Bello" {
		t.Errorf("userName should default to the session name, got %q", saved.UserName)
	}
	if saved.SentimentSummary == nil || *saved.SentimentSummary != "positive" {
		t.Error("classifier summary should be stored with the feedback")
	}
	if saved.Rating != nil {
		t.Error("omitted rating should stay null")
	}
	if payload["rating"] != nil {
		t.Errorf("payload rating should be null, got %v", payload["rating"])
	}
}

func TestSubmitFeedbackUnknownProject(t *testing.T) {
	svc := newTestService(&fakeStore{})
	_, err := svc.SubmitFeedback(context.Background(), "prj_missing", nil, FeedbackInput{
		UserName: "Amina",
		Comment:  "this comment is long enough to pass",
	})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected not-found for unknown project, got %v", err)
	}
}

func TestGetArticleDetail(t *testing.T) {
	fs := &fakeStore{
		getArticleBySlugFn: func(_ context.Context, slug string) (store.NewsArticle, error) {
			if slug != "budget-2026" {
				return store.NewsArticle{}, sql.ErrNoRows
			}
			return store.NewsArticle{ID: "art_1", Slug: slug, Title: "2026 Budget Highlights"}, nil
		},
		articleLikeCountFn: func(context.Context, string) (int, error) { return 7, nil },
		hasLikedFn: func(_ context.Context, userID, _ string) (bool, error) {
			return userID == "usr_liker", nil
		},
		listCommentsFn: func(context.Context, string) ([]store.Comment, error) {
			return []store.Comment{
				{ID: "cmt_2", Body: "Great breakdown", Author: store.PublicUser{ID: "usr_2", Name: "Chidi"}},
				{ID: "cmt_1", Body: "First!", Author: store.PublicUser{ID: "usr_1", Name: "Amina"}},
			}, nil
		},
	}
	svc := newTestService(fs)

	payload, err := svc.GetArticle(context.Background(), "budget-2026", "usr_liker")
	if err != nil {
		t.Fatalf("get article: %v", err)
	}
	if payload["likeCount"] != 7 {
		t.Errorf("expected likeCount 7, got %v", payload["likeCount"])
	}
	if payload["viewerHasLiked"] != true {
		t.Error("expected viewerHasLiked true for the liking viewer")
	}

	comments, ok := payload["comments"].([]map[string]any)
	if !ok || len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %v", payload["comments"])
	}
	if comments[0]["id"] != "cmt_2" {
		t.Error("comments should preserve newest-first store ordering")
	}
	author, ok := comments[0]["author"].(map[string]any)
	if !ok {
		t.Fatal("comment should embed its author")
	}
	for key := range author {
		if key != "id" && key != "name" && key != "image" {
			t.Errorf("author payload leaked field %q", key)
		}
	}

	anon, err := svc.GetArticle(context.Background(), "budget-2026", "")
	if err != nil {
		t.Fatalf("get article anonymously: %v", err)
	}
	if anon["viewerHasLiked"] != false {
		t.Error("anonymous viewers never have viewerHasLiked true")
	}
}

func TestToggleBookmarkUnknownProject(t *testing.T) {
	svc := newTestService(&fakeStore{})
	_, err := svc.ToggleBookmark(context.Background(), Session{UserID: "usr_1"}, "prj_missing")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestToggleLikeReturnsAction(t *testing.T) {
	fs := &fakeStore{
		getArticleBySlugFn: func(context.Context, string) (store.NewsArticle, error) {
			return store.NewsArticle{ID: "art_1", Slug: "budget-2026"}, nil
		},
		toggleLikeFn: func(context.Context, string, string) (string, error) {
			return "removed", nil
		},
		articleLikeCountFn: func(context.Context, string) (int, error) { return 3, nil },
	}
	svc := newTestService(fs)

	payload, err := svc.ToggleLike(context.Background(), Session{UserID: "usr_1"}, "budget-2026")
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if payload["action"] != "removed" {
		t.Errorf("expected action removed, got %v", payload["action"])
	}
	if payload["likeCount"] != 3 {
		t.Errorf("expected likeCount 3, got %v", payload["likeCount"])
	}
}

func TestAddCommentValidatesBody(t *testing.T) {
	svc := newTestService(&fakeStore{
		getArticleBySlugFn: func(context.Context, string) (store.NewsArticle, error) {
			return store.NewsArticle{ID: "art_1"}, nil
		},
	})

	_, err := svc.AddComment(context.Background(), Session{UserID: "usr_1"}, "budget-2026", " x ")
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR for a one-character comment, got %v", err)
	}
}

func TestCreateArticleGeneratesSlug(t *testing.T) {
	var saved store.NewsArticle
	fs := &fakeStore{
		insertArticleFn: func(_ context.Context, a store.NewsArticle) error {
			saved = a
			return nil
		},
	}
	svc := newTestService(fs)

	_, err := svc.CreateArticle(context.Background(), ArticleInput{
		Title:         "New Rail Line Opens in Kano!",
		PublishedDate: "2026-08-01",
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}
	if saved.Slug != "new-rail-line-opens-in-kano" {
		t.Errorf("expected generated slug, got %q", saved.Slug)
	}
}

func TestCreateArticleDuplicateSlugConflicts(t *testing.T) {
	fs := &fakeStore{
		insertArticleFn: func(context.Context, store.NewsArticle) error {
			return store.ErrDuplicate
		},
	}
	svc := newTestService(fs)

	_, err := svc.CreateArticle(context.Background(), ArticleInput{
		Title:         "Duplicate",
		Slug:          "existing-slug",
		PublishedDate: "2026-08-01",
	})
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "SLUG_EXISTS" {
		t.Fatalf("expected SLUG_EXISTS, got %v", err)
	}
}

func TestUpdateProjectReplacesTags(t *testing.T) {
	var saved store.Project
	fs := &fakeStore{
		getProjectFn: func(context.Context, string) (store.Project, error) {
			return store.Project{ID: "prj_1", Title: "Old title", Tags: []string{"roads"}}, nil
		},
		updateProjectFn: func(_ context.Context, p store.Project) (bool, error) {
			saved = p
			return true, nil
		},
	}
	svc := newTestService(fs)

	_, err := svc.UpdateProject(context.Background(), "prj_1", ProjectInput{
		Title: "New title",
		Tags:  []string{"health", "water"},
	})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}
	if len(saved.Tags) != 2 || saved.Tags[0] != "health" || saved.Tags[1] != "water" {
		t.Errorf("update should replace the tag set, got %v", saved.Tags)
	}
}

func TestDeleteUserCannotDeleteSelf(t *testing.T) {
	svc := newTestService(&fakeStore{})
	err := svc.DeleteUser(context.Background(), Session{UserID: "usr_1"}, "usr_1")
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Status != 422 {
		t.Fatalf("expected validation error on self-delete, got %v", err)
	}
}

func intPtr(v int) *int { return &v }
