package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gotodo/models"

	"github.com/mattn/go-sqlite3"
)

// SQLiteUserRepository implements the UserRepository interface for SQLite
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Close closes the database connection
func (r *SQLiteUserRepository) Close() error {
	return r.db.Close()
}

// FindByID finds a user by ID
func (r *SQLiteUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, username, password_hash, created_at FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// FindByUsername finds a user by username. The lookup is case-sensitive.
func (r *SQLiteUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *SQLiteUserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user row. A UNIQUE violation on username is reported
// as ErrDuplicate so racing registrations cannot commit the same name twice.
func (r *SQLiteUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = GenerateID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	query := `INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	return user, nil
}

// SQLiteTodoRepository implements the TodoRepository interface for SQLite
type SQLiteTodoRepository struct {
	db *sql.DB
}

// NewSQLiteTodoRepository creates a new SQLiteTodoRepository
func NewSQLiteTodoRepository(db *sql.DB) *SQLiteTodoRepository {
	return &SQLiteTodoRepository{db: db}
}

// Close closes the database connection
func (r *SQLiteTodoRepository) Close() error {
	return r.db.Close()
}

// FindByID finds a todo by ID, scoped to its owner. A row owned by another
// user behaves exactly like a missing row.
func (r *SQLiteTodoRepository) FindByID(ctx context.Context, id int64, userID string) (*models.Todo, error) {
	query := `SELECT id, user_id, title, done, created_at, updated_at FROM todos WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, userID)

	var todo models.Todo
	err := row.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Done, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error scanning todo: %w", err)
	}

	return &todo, nil
}

// FindAllByUserID finds all todos owned by a user in creation order
func (r *SQLiteTodoRepository) FindAllByUserID(ctx context.Context, userID string) ([]*models.Todo, error) {
	query := `SELECT id, user_id, title, done, created_at, updated_at FROM todos WHERE user_id = ? ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying todos: %w", err)
	}
	defer rows.Close()

	var todos []*models.Todo
	for rows.Next() {
		var todo models.Todo
		err := rows.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Done, &todo.CreatedAt, &todo.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning todo: %w", err)
		}
		todos = append(todos, &todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}

// Create inserts a new todo row for its owner
func (r *SQLiteTodoRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	now := time.Now()
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = now
	}
	todo.UpdatedAt = now

	query := `INSERT INTO todos (user_id, title, done, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, todo.UserID, todo.Title, todo.Done, todo.CreatedAt, todo.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error inserting todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error reading todo id: %w", err)
	}
	todo.ID = id

	return todo, nil
}

// Update applies a partial update to a todo owned by userID. Nil fields keep
// their prior value. The UPDATE matches owner and id in one statement, so the
// whole mutation is a single atomic write; zero affected rows means the todo
// does not exist or belongs to someone else.
func (r *SQLiteTodoRepository) Update(ctx context.Context, id int64, userID string, title *string, done *bool) (*models.Todo, error) {
	query := `UPDATE todos SET title = COALESCE(?, title), done = COALESCE(?, done), updated_at = ? WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, title, done, time.Now(), id, userID)
	if err != nil {
		return nil, fmt.Errorf("error updating todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.FindByID(ctx, id, userID)
}

// Delete removes a todo owned by userID
func (r *SQLiteTodoRepository) Delete(ctx context.Context, id int64, userID string) error {
	query := `DELETE FROM todos WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
