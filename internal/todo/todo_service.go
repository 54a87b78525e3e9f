package todo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gotodo/db"
	"gotodo/models"
)

var (
	// ErrNotFound is returned when a todo does not exist or is owned by a
	// different user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("todo not found")
	// ErrInvalidTitle is returned when a title is empty or whitespace-only.
	ErrInvalidTitle = errors.New("title must not be empty")
)

// Service handles todo operations. Every method takes the authenticated
// owner's id; ownership is matched in the store on each call, never cached.
type Service struct {
	repo      db.TodoRepository
	dbManager *db.DBManager
}

// NewService creates a new todo service
func NewService(repo db.TodoRepository, dbManager *db.DBManager) *Service {
	return &Service{repo: repo, dbManager: dbManager}
}

// Create persists a new todo for ownerID with done unset
func (s *Service) Create(ctx context.Context, ownerID, title string) (*models.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidTitle
	}

	created, err := s.dbManager.CreateTodo(s.repo, ctx, &models.Todo{
		UserID: ownerID,
		Title:  title,
		Done:   false,
	})
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	return created, nil
}

// List returns all todos owned by ownerID in creation order
func (s *Service) List(ctx context.Context, ownerID string) ([]*models.Todo, error) {
	todos, err := s.repo.FindAllByUserID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// MarkDone sets done on a todo owned by ownerID. Marking an already-done todo
// is a no-op.
func (s *Service) MarkDone(ctx context.Context, ownerID string, id int64) error {
	done := true
	_, err := s.Update(ctx, ownerID, id, nil, &done)
	return err
}

// Update applies a partial update; nil fields keep their prior value.
func (s *Service) Update(ctx context.Context, ownerID string, id int64, title *string, done *bool) (*models.Todo, error) {
	if title != nil && strings.TrimSpace(*title) == "" {
		return nil, ErrInvalidTitle
	}

	updated, err := s.dbManager.UpdateTodo(s.repo, ctx, id, ownerID, title, done)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}

	return updated, nil
}

// Delete removes a todo owned by ownerID
func (s *Service) Delete(ctx context.Context, ownerID string, id int64) error {
	err := s.dbManager.DeleteTodo(s.repo, ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}
