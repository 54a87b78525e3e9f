package db

import (
	"context"
	"database/sql"
	"errors"

	"gotodo/models"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Repository defines a common interface for all repositories
type Repository interface {
	Close() error
}

// UserRepository defines the interface for user operations
type UserRepository interface {
	Repository
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// TodoRepository defines the interface for todo operations. Every operation
// that touches an existing row takes the owning user's id and matches it in
// the query itself, so ownership is re-checked on each call.
type TodoRepository interface {
	Repository
	FindByID(ctx context.Context, id int64, userID string) (*models.Todo, error)
	FindAllByUserID(ctx context.Context, userID string) ([]*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	Update(ctx context.Context, id int64, userID string, title *string, done *bool) (*models.Todo, error)
	Delete(ctx context.Context, id int64, userID string) error
}

// RepositoryFactory creates repositories backed by the shared SQLite handle
type RepositoryFactory struct {
	SQLiteDB *sql.DB
	DBName   string
}

// NewRepositoryFactory creates a new repository factory
func NewRepositoryFactory(sqliteDB *sql.DB, dbName string) *RepositoryFactory {
	return &RepositoryFactory{
		SQLiteDB: sqliteDB,
		DBName:   dbName,
	}
}

// NewUserRepository creates a new user repository
func (f *RepositoryFactory) NewUserRepository() UserRepository {
	return NewSQLiteUserRepository(f.SQLiteDB)
}

// NewTodoRepository creates a new todo repository
func (f *RepositoryFactory) NewTodoRepository() TodoRepository {
	return NewSQLiteTodoRepository(f.SQLiteDB)
}

// GenerateID generates a unique ID for a record
func GenerateID() string {
	return uuid.New().String()
}
