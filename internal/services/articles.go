package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"conduit/internal/logger"
	"conduit/internal/models"
	"conduit/internal/repositories"
)

// Pagination defaults for list and feed endpoints.
const (
	defaultArticleLimit = 20
	maxArticleLimit     = 100
)

// ArticleReader defines read operations for articles.
type ArticleReader interface {
	GetBySlug(ctx context.Context, slug string) (*models.ArticleDB, error)
	List(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleDB, error)
	Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]models.ArticleDB, error)
}

// ArticleWriter defines write operations for articles.
type ArticleWriter interface {
	Save(ctx context.Context, authorID uuid.UUID, slug string, draft models.ArticleDraft) (uuid.UUID, error)
	Update(ctx context.Context, slug string, update models.ArticleUpdate) (bool, error)
	Delete(ctx context.Context, slug string) (bool, error)
}

// FavoriteRepo defines the favorite join-row operations. Save and Delete
// are idempotent; the bool reports whether a row actually changed.
type FavoriteRepo interface {
	Save(ctx context.Context, userID uuid.UUID, slug string) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, slug string) (bool, error)
	IsFavorite(ctx context.Context, userID uuid.UUID, slug string) (bool, error)
	AreFavorite(ctx context.Context, userID uuid.UUID, slugs []string) (map[string]bool, error)
}

// TagReader reads the global distinct tag list from the store.
type TagReader interface {
	List(ctx context.Context) ([]string, error)
}

// TagCache caches the tag list.
type TagCache interface {
	Get(ctx context.Context) ([]string, error)
	Set(ctx context.Context, tags []string) error
}

// ArticleService handles publishing, reading, updating, deleting,
// favoriting and listing articles, plus the tag list.
type ArticleService struct {
	users       UserReader
	reader      ArticleReader
	writer      ArticleWriter
	favorites   FavoriteRepo
	follows     FollowRepo
	tags        TagReader
	tagCache    TagCache
	kafkaWriter KafkaWriter
}

// NewArticleService creates a new ArticleService instance.
func NewArticleService(
	users UserReader,
	reader ArticleReader,
	writer ArticleWriter,
	favorites FavoriteRepo,
	follows FollowRepo,
	tags TagReader,
	tagCache TagCache,
	kafkaWriter KafkaWriter,
) *ArticleService {
	return &ArticleService{
		users:       users,
		reader:      reader,
		writer:      writer,
		favorites:   favorites,
		follows:     follows,
		tags:        tags,
		tagCache:    tagCache,
		kafkaWriter: kafkaWriter,
	}
}

// Publish creates an article from a draft. The slug is derived from the
// title; a collision with an existing slug is a rejected publish.
func (svc *ArticleService) Publish(ctx context.Context, authorID uuid.UUID, draft models.ArticleDraft) (*models.ArticleView, error) {
	author, err := svc.users.GetByID(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to get author", "author_id", authorID, "err", err)
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	slug := draft.Slug()
	if _, err := svc.writer.Save(ctx, authorID, slug, draft); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, &DuplicateSlugError{Slug: slug}
		}
		logger.Log.Errorw("failed to save article", "slug", slug, "err", err)
		return nil, err
	}

	article, err := svc.reader.GetBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to reload article", "slug", slug, "err", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	svc.publishArticlePublished(ctx, article)

	return svc.getArticleView(ctx, &authorID, article)
}

// Get returns the article view for the given viewer (nil for anonymous).
func (svc *ArticleService) Get(ctx context.Context, viewerID *uuid.UUID, slug string) (*models.ArticleView, error) {
	article, err := svc.reader.GetBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to get article", "slug", slug, "err", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return svc.getArticleView(ctx, viewerID, article)
}

// Update patches the article's title, description and body. Only the
// author may; the slug never changes.
func (svc *ArticleService) Update(ctx context.Context, userID uuid.UUID, slug string, update models.ArticleUpdate) (*models.ArticleView, error) {
	user, article, err := svc.loadUserAndArticle(ctx, userID, slug)
	if err != nil {
		return nil, err
	}
	if !user.CanModifyArticle(article) {
		return nil, &ForbiddenError{UserID: userID, Slug: slug}
	}

	if _, err := svc.writer.Update(ctx, slug, update); err != nil {
		logger.Log.Errorw("failed to update article", "slug", slug, "err", err)
		return nil, err
	}

	updated, err := svc.reader.GetBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to reload article", "slug", slug, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrArticleNotFound
	}
	return svc.getArticleView(ctx, &userID, updated)
}

// Delete removes the article. Only the author may.
func (svc *ArticleService) Delete(ctx context.Context, userID uuid.UUID, slug string) error {
	user, article, err := svc.loadUserAndArticle(ctx, userID, slug)
	if err != nil {
		return err
	}
	if !user.CanModifyArticle(article) {
		return &ForbiddenError{UserID: userID, Slug: slug}
	}

	deleted, err := svc.writer.Delete(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to delete article", "slug", slug, "err", err)
		return err
	}
	if !deleted {
		return ErrArticleNotFound
	}
	return nil
}

// List returns article views matching the filter, newest first.
func (svc *ArticleService) List(ctx context.Context, viewerID *uuid.UUID, filter models.ArticleFilter) ([]models.ArticleView, error) {
	filter.Limit = clampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	articles, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list articles", "err", err)
		return nil, err
	}
	return svc.getArticlesViews(ctx, viewerID, articles)
}

// Feed returns articles authored by users the viewer follows, newest
// first. The sign-up self-follow means the viewer's own articles are
// part of their feed.
func (svc *ArticleService) Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]models.ArticleView, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	articles, err := svc.reader.Feed(ctx, viewerID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to load feed", "viewer_id", viewerID, "err", err)
		return nil, err
	}
	return svc.getArticlesViews(ctx, &viewerID, articles)
}

// Favorite marks the article as a favorite of the user. Favoriting twice
// reports AlreadyAFavorite instead of failing.
func (svc *ArticleService) Favorite(ctx context.Context, userID uuid.UUID, slug string) (*models.ArticleView, models.FavoriteOutcome, error) {
	if _, err := svc.requireArticle(ctx, slug); err != nil {
		return nil, 0, err
	}

	inserted, err := svc.favorites.Save(ctx, userID, slug)
	if err != nil {
		logger.Log.Errorw("failed to save favorite", "slug", slug, "err", err)
		return nil, 0, err
	}

	outcome := models.AlreadyAFavorite
	if inserted {
		outcome = models.NewFavorite
	}

	// Reload for a fresh favorites count.
	view, err := svc.Get(ctx, &userID, slug)
	if err != nil {
		return nil, 0, err
	}
	return view, outcome, nil
}

// Unfavorite removes the article from the user's favorites. Unfavoriting
// something never favorited reports WasNotAFavorite instead of failing.
func (svc *ArticleService) Unfavorite(ctx context.Context, userID uuid.UUID, slug string) (*models.ArticleView, models.UnfavoriteOutcome, error) {
	if _, err := svc.requireArticle(ctx, slug); err != nil {
		return nil, 0, err
	}

	deleted, err := svc.favorites.Delete(ctx, userID, slug)
	if err != nil {
		logger.Log.Errorw("failed to delete favorite", "slug", slug, "err", err)
		return nil, 0, err
	}

	outcome := models.WasNotAFavorite
	if deleted {
		outcome = models.WasAFavorite
	}

	view, err := svc.Get(ctx, &userID, slug)
	if err != nil {
		return nil, 0, err
	}
	return view, outcome, nil
}

// Tags returns the global distinct tag list, served from the cache when
// fresh enough.
func (svc *ArticleService) Tags(ctx context.Context) ([]string, error) {
	if tags, err := svc.tagCache.Get(ctx); err == nil {
		return tags, nil
	}

	tags, err := svc.tags.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list tags", "err", err)
		return nil, err
	}

	if err := svc.tagCache.Set(ctx, tags); err != nil {
		logger.Log.Warnw("failed to cache tags", "err", err)
	}
	return tags, nil
}

// getArticleView composes a single article view: one favorite lookup and
// one follow lookup against the viewer.
func (svc *ArticleService) getArticleView(ctx context.Context, viewerID *uuid.UUID, article *models.ArticleDB) (*models.ArticleView, error) {
	favorited := false
	following := false

	if viewerID != nil {
		var err error
		favorited, err = svc.favorites.IsFavorite(ctx, *viewerID, article.Slug)
		if err != nil {
			logger.Log.Errorw("failed to get favorite state", "slug", article.Slug, "err", err)
			return nil, err
		}
		following, err = svc.follows.IsFollowing(ctx, *viewerID, article.AuthorID)
		if err != nil {
			logger.Log.Errorw("failed to get follow state", "slug", article.Slug, "err", err)
			return nil, err
		}
	}

	view := models.NewArticleView(article, favorited, following)
	return &view, nil
}

// getArticlesViews composes views for a whole result page with one
// batched favorite lookup and one batched follow lookup instead of a
// query per article.
func (svc *ArticleService) getArticlesViews(ctx context.Context, viewerID *uuid.UUID, articles []models.ArticleDB) ([]models.ArticleView, error) {
	views := make([]models.ArticleView, 0, len(articles))

	if viewerID == nil {
		for i := range articles {
			views = append(views, models.NewArticleView(&articles[i], false, false))
		}
		return views, nil
	}

	slugs := make([]string, 0, len(articles))
	authorIDs := make([]uuid.UUID, 0, len(articles))
	for i := range articles {
		slugs = append(slugs, articles[i].Slug)
		authorIDs = append(authorIDs, articles[i].AuthorID)
	}

	favorited, err := svc.favorites.AreFavorite(ctx, *viewerID, slugs)
	if err != nil {
		logger.Log.Errorw("failed to batch favorite lookup", "err", err)
		return nil, err
	}
	following, err := svc.follows.AreFollowing(ctx, *viewerID, authorIDs)
	if err != nil {
		logger.Log.Errorw("failed to batch follow lookup", "err", err)
		return nil, err
	}

	for i := range articles {
		views = append(views, models.NewArticleView(&articles[i], favorited[articles[i].Slug], following[articles[i].AuthorID]))
	}
	return views, nil
}

func (svc *ArticleService) loadUserAndArticle(ctx context.Context, userID uuid.UUID, slug string) (*models.UserDB, *models.ArticleDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	article, err := svc.requireArticle(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	return user, article, nil
}

func (svc *ArticleService) requireArticle(ctx context.Context, slug string) (*models.ArticleDB, error) {
	article, err := svc.reader.GetBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to get article", "slug", slug, "err", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultArticleLimit
	}
	if limit > maxArticleLimit {
		return maxArticleLimit
	}
	return limit
}

// publishArticlePublished publishes a publish event to Kafka.
func (svc *ArticleService) publishArticlePublished(ctx context.Context, article *models.ArticleDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "slug", article.Slug)
		return
	}

	event := models.ArticlePublishedEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Slug:      article.Slug,
		AuthorID:  article.AuthorID.String(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal article event", "slug", article.Slug, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Slug),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish article event", "slug", article.Slug, "error", err)
	} else {
		logger.Log.Infow("article event published", "slug", article.Slug)
	}
}
