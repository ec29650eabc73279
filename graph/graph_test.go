package graph

import (
	"context"
	"encoding/json"
	"testing"

	"inkwell/auth"
	"inkwell/database"
	"inkwell/models"
	"inkwell/repository"

	"github.com/brianvoe/gofakeit/v6"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv wires a resolver and schema against an in-memory SQLite database.
type testEnv struct {
	db     *gorm.DB
	schema *graphql.Schema
	tokens *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	tokens := auth.NewTokenService("test-secret-key")
	resolver := NewResolver(
		repository.NewUserRepository(db),
		repository.NewProfileRepository(db),
		repository.NewPostRepository(db),
		tokens,
	)

	schema, err := NewSchema(resolver)
	require.NoError(t, err)

	return &testEnv{db: db, schema: schema, tokens: tokens}
}

// createUser inserts a user with a real bcrypt digest so signin works.
func (e *testEnv) createUser(t *testing.T, password string) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Email:    gofakeit.Email(),
		Name:     gofakeit.Name(),
		Password: hashed,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createPost(t *testing.T, authorID uint, title, content string) *models.Post {
	t.Helper()

	post := &models.Post{Title: title, Content: content, AuthorID: authorID}
	require.NoError(t, e.db.Create(post).Error)
	return post
}

// authedCtx returns a context carrying the given user's identity.
func (e *testEnv) authedCtx(userID uint) context.Context {
	return auth.WithUserInfo(context.Background(), &auth.UserInfo{UserID: userID})
}

// exec runs a GraphQL operation and decodes its data, failing the test on
// any top-level error.
func (e *testEnv) exec(t *testing.T, ctx context.Context, query string, variables map[string]any) map[string]any {
	t.Helper()

	resp := e.schema.Exec(ctx, query, "", variables)
	require.Empty(t, resp.Errors)

	var data map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

// payload pulls a mutation payload out of decoded response data.
func payload(t *testing.T, data map[string]any, field string) map[string]any {
	t.Helper()

	p, ok := data[field].(map[string]any)
	require.True(t, ok, "missing %s payload", field)
	return p
}

// errorMessages flattens a payload's userErrors into message strings.
func errorMessages(t *testing.T, p map[string]any) []string {
	t.Helper()

	raw, ok := p["userErrors"].([]any)
	require.True(t, ok, "missing userErrors")

	messages := make([]string, 0, len(raw))
	for _, e := range raw {
		entry, ok := e.(map[string]any)
		require.True(t, ok)
		messages = append(messages, entry["message"].(string))
	}
	return messages
}

func (e *testEnv) postCount(t *testing.T) int64 {
	t.Helper()

	var count int64
	require.NoError(t, e.db.Model(&models.Post{}).Count(&count).Error)
	return count
}
