package testutils

import (
	"context"
	"testing"
	"time"

	"gotodo/db"
	"gotodo/internal/auth"
	"gotodo/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

// CreateTestUser inserts a user whose password is TestPassword.
func CreateTestUser(t *testing.T, repo db.UserRepository, username string) *models.User {
	hash, err := auth.HashPassword(TestPassword)
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)
	return created
}

// CreateTestTodo inserts a todo owned by userID.
func CreateTestTodo(t *testing.T, repo db.TodoRepository, userID, title string) *models.Todo {
	created, err := repo.Create(context.Background(), &models.Todo{
		UserID: userID,
		Title:  title,
	})
	require.NoError(t, err)
	return created
}
