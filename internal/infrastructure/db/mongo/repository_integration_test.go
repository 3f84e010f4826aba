package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quillpress/content-api/internal/core/domain"
)

// testDatabase connects to CONTENT_TEST_MONGO_URI and returns a throwaway
// database dropped at the end of the test.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("CONTENT_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("CONTENT_TEST_MONGO_URI not set")
	}

	ctx := context.Background()
	client, db, err := Connect(ctx, Config{
		URI:      uri,
		Database: fmt.Sprintf("content_api_test_%d", time.Now().UnixNano()),
		AppName:  "content-api-test",
	})
	require.NoError(t, err)
	require.NoError(t, EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestUserRepository_Lifecycle(t *testing.T) {
	db := testDatabase(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		FirstName: "Alice", LastName: "Liddell", Email: "alice@example.com",
		PasswordHash: "hash", Role: domain.RoleClient, CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	_, err = repo.Create(ctx, &domain.User{Email: "alice@example.com", Role: domain.RoleClient})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindByEmail(ctx, "ALICE@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := repo.UpdateName(ctx, created.ID, "Alicia", "")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "Liddell", updated.LastName)

	require.NoError(t, repo.SoftDelete(ctx, created.ID))
	assert.ErrorIs(t, repo.SoftDelete(ctx, created.ID), domain.ErrNotFound)

	_, err = repo.UpdateName(ctx, created.ID, "Ghost", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)
}

func TestArticleRepository_MutationsSkipDeleted(t *testing.T) {
	db := testDatabase(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	a, err := repo.Create(ctx, &domain.Article{AuthorID: 3, Title: "Seven", Body: "Body of seven", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	published, err := repo.Publish(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
	assert.NotNil(t, published.PublishedAt)

	live, err := repo.IsLive(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, live)

	require.NoError(t, repo.SoftDelete(ctx, a.ID))

	live, err = repo.IsLive(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, live)
	live, err = repo.IsLive(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, live)

	_, err = repo.Update(ctx, a.ID, "late", "too late to edit")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Publish(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArticleRepository_ListsSkipDeletedAndDrafts(t *testing.T) {
	db := testDatabase(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	create := func(authorID int64, title string, published bool, offset time.Duration) *domain.Article {
		t.Helper()
		a, err := repo.Create(ctx, &domain.Article{
			AuthorID: authorID, Title: title, Body: "Body of " + title,
			IsPublished: published, CreatedAt: base.Add(offset),
		})
		require.NoError(t, err)
		return a
	}
	older := create(3, "older", true, 0)
	newer := create(3, "newer", true, time.Hour)
	draft := create(3, "draft", false, 2*time.Hour)
	gone := create(3, "gone", true, 3*time.Hour)
	other := create(4, "other", true, 4*time.Hour)
	require.NoError(t, repo.SoftDelete(ctx, gone.ID))

	feed, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{other.ID, newer.ID, older.ID}, articleIDs(feed))

	public, err := repo.ListByAuthor(ctx, 3, false)
	require.NoError(t, err)
	assert.Equal(t, []int64{newer.ID, older.ID}, articleIDs(public))

	own, err := repo.ListByAuthor(ctx, 3, true)
	require.NoError(t, err)
	assert.Equal(t, []int64{draft.ID, newer.ID, older.ID}, articleIDs(own))

	none, err := repo.ListByAuthor(ctx, 99, true)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestCommentRepository_ListByArticle(t *testing.T) {
	db := testDatabase(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	first, err := repo.Create(ctx, &domain.Comment{ArticleID: 7, CommenterID: 4, Text: "first", CreatedAt: base})
	require.NoError(t, err)
	removed, err := repo.Create(ctx, &domain.Comment{ArticleID: 7, CommenterID: 4, Text: "removed", CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)
	last, err := repo.Create(ctx, &domain.Comment{ArticleID: 7, CommenterID: 3, Text: "last", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Comment{ArticleID: 8, CommenterID: 3, Text: "elsewhere", CreatedAt: base})
	require.NoError(t, err)
	require.NoError(t, repo.SoftDelete(ctx, removed.ID))

	comments, err := repo.ListByArticle(ctx, 7)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, last.ID, comments[1].ID)
}

func articleIDs(articles []domain.Article) []int64 {
	ids := make([]int64, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestResourceStore_FindByID(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	articles := NewArticleRepository(db)
	comments := NewCommentRepository(db)
	store := NewResourceStore(db)

	u, err := users.Create(ctx, &domain.User{Email: "bob@example.com", Role: domain.RoleClient})
	require.NoError(t, err)
	a, err := articles.Create(ctx, &domain.Article{AuthorID: u.ID, Title: "Draft", Body: "Unpublished draft"})
	require.NoError(t, err)
	c, err := comments.Create(ctx, &domain.Comment{ArticleID: a.ID, CommenterID: u.ID, Text: "nice"})
	require.NoError(t, err)
	require.NoError(t, comments.SoftDelete(ctx, c.ID))

	res, err := store.FindByID(ctx, domain.KindUser, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Resource{Kind: domain.KindUser, ID: u.ID, OwnerID: u.ID, Published: true}, *res)

	res, err = store.FindByID(ctx, domain.KindArticle, a.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.OwnerID)
	assert.False(t, res.Published)

	res, err = store.FindByID(ctx, domain.KindComment, c.ID)
	require.NoError(t, err)
	assert.True(t, res.IsDeleted())

	_, err = store.FindByID(ctx, domain.KindArticle, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
