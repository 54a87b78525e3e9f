package integration

import (
	"context"
	"testing"

	"gotodo/internal/todo"
	"gotodo/tests/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoService_Integration(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	ctx := context.Background()
	alice := testutils.CreateTestUser(t, env.userRepo, "alice")
	bob := testutils.CreateTestUser(t, env.userRepo, "bobby")

	t.Run("CreateAndList", func(t *testing.T) {
		first, err := env.todoService.Create(ctx, alice.ID, "buy milk")
		require.NoError(t, err)
		assert.False(t, first.Done)
		assert.Equal(t, alice.ID, first.UserID)

		second, err := env.todoService.Create(ctx, alice.ID, "walk the dog")
		require.NoError(t, err)

		todos, err := env.todoService.List(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, todos, 2)

		// Insertion order
		assert.Equal(t, first.ID, todos[0].ID)
		assert.Equal(t, second.ID, todos[1].ID)
	})

	t.Run("EmptyTitleRejected", func(t *testing.T) {
		_, err := env.todoService.Create(ctx, alice.ID, "   ")
		assert.ErrorIs(t, err, todo.ErrInvalidTitle)
	})

	t.Run("OwnershipIsolation", func(t *testing.T) {
		item := testutils.CreateTestTodo(t, env.todoRepo, alice.ID, "private task")

		// Bob cannot see, mutate, or delete Alice's task
		bobTodos, err := env.todoService.List(ctx, bob.ID)
		require.NoError(t, err)
		for _, bt := range bobTodos {
			assert.NotEqual(t, item.ID, bt.ID)
		}

		err = env.todoService.MarkDone(ctx, bob.ID, item.ID)
		assert.ErrorIs(t, err, todo.ErrNotFound)

		title := "hijacked"
		_, err = env.todoService.Update(ctx, bob.ID, item.ID, &title, nil)
		assert.ErrorIs(t, err, todo.ErrNotFound)

		err = env.todoService.Delete(ctx, bob.ID, item.ID)
		assert.ErrorIs(t, err, todo.ErrNotFound)

		// Untouched for Alice
		got, err := env.todoRepo.FindByID(ctx, item.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "private task", got.Title)
		assert.False(t, got.Done)
	})

	t.Run("MarkDoneIdempotent", func(t *testing.T) {
		item := testutils.CreateTestTodo(t, env.todoRepo, alice.ID, "repeat me")

		require.NoError(t, env.todoService.MarkDone(ctx, alice.ID, item.ID))
		require.NoError(t, env.todoService.MarkDone(ctx, alice.ID, item.ID))

		got, err := env.todoRepo.FindByID(ctx, item.ID, alice.ID)
		require.NoError(t, err)
		assert.True(t, got.Done)
	})

	t.Run("PartialUpdate", func(t *testing.T) {
		item := testutils.CreateTestTodo(t, env.todoRepo, alice.ID, "original title")

		done := true
		updated, err := env.todoService.Update(ctx, alice.ID, item.ID, nil, &done)
		require.NoError(t, err)
		assert.Equal(t, "original title", updated.Title)
		assert.True(t, updated.Done)

		title := "new title"
		updated, err = env.todoService.Update(ctx, alice.ID, item.ID, &title, nil)
		require.NoError(t, err)
		assert.Equal(t, "new title", updated.Title)
		assert.True(t, updated.Done)

		empty := "  "
		_, err = env.todoService.Update(ctx, alice.ID, item.ID, &empty, nil)
		assert.ErrorIs(t, err, todo.ErrInvalidTitle)
	})

	t.Run("DeleteTwice", func(t *testing.T) {
		item := testutils.CreateTestTodo(t, env.todoRepo, alice.ID, "delete me")

		require.NoError(t, env.todoService.Delete(ctx, alice.ID, item.ID))
		assert.ErrorIs(t, env.todoService.Delete(ctx, alice.ID, item.ID), todo.ErrNotFound)
	})
}
