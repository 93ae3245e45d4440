package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"quill/internal/cache"
	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "Sup3r-Secret-Pass!"

// withTestCache backs the cache package with an in-process Redis for the
// duration of the test, so handlers run with caching enabled.
func withTestCache(t *testing.T) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
}

// setupTestServer creates a server backed by an in-memory SQLite database
// and a Fiber app with all routes registered.
func setupTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{
		JWTSecret: "test-secret-key",
		Env:       "test",
	}

	s := NewServerWithDeps(cfg, db, nil)

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, db
}

// createTestUser inserts a user with the shared test password hashed.
func createTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTestPost inserts a post for the given author.
func createTestPost(t *testing.T, db *gorm.DB, userID uint, status models.PostStatus) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:   "A test post",
		Content: "Some content",
		Status:  status,
		UserID:  userID,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// createTestComment inserts a comment for the given author and post.
func createTestComment(t *testing.T, db *gorm.DB, userID, postID uint, parentID *uint, active bool) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		Content:  "A test comment",
		UserID:   userID,
		PostID:   postID,
		ParentID: parentID,
		IsActive: active,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func postCommentsPath(postID uint) string {
	return fmt.Sprintf("/api/posts/%d/comments", postID)
}

func commentPath(commentID uint) string {
	return fmt.Sprintf("/api/comments/%d", commentID)
}

// authToken signs a JWT for the given user.
func authToken(t *testing.T, s *Server, userID uint) string {
	t.Helper()

	token, err := s.generateToken(userID)
	require.NoError(t, err)
	return token
}

// doJSON performs a JSON request against the app and decodes the response
// body into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp.StatusCode, decoded
}
