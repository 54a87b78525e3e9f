package integration

import (
	"testing"

	"gotodo/db"
	"gotodo/internal/todo"
	"gotodo/internal/user"
	"gotodo/tests/testutils"
)

type testEnv struct {
	factory     *db.RepositoryFactory
	dbManager   *db.DBManager
	userRepo    db.UserRepository
	todoRepo    db.TodoRepository
	userService *user.Service
	todoService *todo.Service
}

func setupEnv(t *testing.T) (*testEnv, func()) {
	factory, cleanup := testutils.SetupTestRepositoryFactory(t)

	env := &testEnv{
		factory:   factory,
		dbManager: db.NewDBManager(),
		userRepo:  factory.NewUserRepository(),
		todoRepo:  factory.NewTodoRepository(),
	}
	env.userService = user.NewService(env.userRepo, env.dbManager)
	env.todoService = todo.NewService(env.todoRepo, env.dbManager)

	return env, func() {
		env.dbManager.Stop()
		cleanup()
	}
}
