package db

import (
	"context"
	"log"

	"gotodo/models"
)

// Operation represents a database operation that needs to be executed
type Operation struct {
	Execute func() error
	Result  chan error
}

// OperationWithResult represents a database operation that returns a result
type OperationWithResult struct {
	Execute func() (interface{}, error)
	Result  chan OperationResult
}

// OperationResult contains the result of an operation
type OperationResult struct {
	Data  interface{}
	Error error
}

// DBManager serializes writes to the database. SQLite allows a single writer
// at a time; funnelling mutations through one worker avoids SQLITE_BUSY under
// concurrent requests.
type DBManager struct {
	opQueue       chan Operation
	resultOpQueue chan OperationWithResult
	stopping      chan struct{}
}

// NewDBManager creates a new database manager
func NewDBManager() *DBManager {
	m := &DBManager{
		opQueue:       make(chan Operation, 100),
		resultOpQueue: make(chan OperationWithResult, 100),
		stopping:      make(chan struct{}),
	}

	// Start the worker goroutine
	go m.worker()
	log.Println("Database access manager started")

	return m
}

// worker processes operations one at a time
func (m *DBManager) worker() {
	for {
		select {
		case op := <-m.opQueue:
			err := op.Execute()
			op.Result <- err
		case op := <-m.resultOpQueue:
			data, err := op.Execute()
			op.Result <- OperationResult{Data: data, Error: err}
		case <-m.stopping:
			return
		}
	}
}

// ExecuteOperation executes a database operation on the worker
func (m *DBManager) ExecuteOperation(execute func() error) error {
	resultChan := make(chan error, 1)
	m.opQueue <- Operation{
		Execute: execute,
		Result:  resultChan,
	}
	return <-resultChan
}

// ExecuteOperationWithResult executes a database operation that returns a result
func (m *DBManager) ExecuteOperationWithResult(execute func() (interface{}, error)) (interface{}, error) {
	resultChan := make(chan OperationResult, 1)
	m.resultOpQueue <- OperationWithResult{
		Execute: execute,
		Result:  resultChan,
	}
	result := <-resultChan
	return result.Data, result.Error
}

// Stop stops the database manager
func (m *DBManager) Stop() {
	close(m.stopping)
}

// Methods for specific repository operations

// CreateUser serializes access to user creation
func (m *DBManager) CreateUser(repo UserRepository, ctx context.Context, user *models.User) (*models.User, error) {
	result, err := m.ExecuteOperationWithResult(func() (interface{}, error) {
		return repo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.User), nil
}

// CreateTodo serializes access to todo creation
func (m *DBManager) CreateTodo(repo TodoRepository, ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	result, err := m.ExecuteOperationWithResult(func() (interface{}, error) {
		return repo.Create(ctx, todo)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Todo), nil
}

// UpdateTodo serializes access to todo updates
func (m *DBManager) UpdateTodo(repo TodoRepository, ctx context.Context, id int64, userID string, title *string, done *bool) (*models.Todo, error) {
	result, err := m.ExecuteOperationWithResult(func() (interface{}, error) {
		return repo.Update(ctx, id, userID, title, done)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Todo), nil
}

// DeleteTodo serializes access to todo deletion
func (m *DBManager) DeleteTodo(repo TodoRepository, ctx context.Context, id int64, userID string) error {
	return m.ExecuteOperation(func() error {
		return repo.Delete(ctx, id, userID)
	})
}
