package repository

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"todoweb/internal/model"
)

// MemoryTodoRepository is a map-backed TodoRepository for local runs and
// tests. It reports misses as sql.ErrNoRows so the service layer treats
// both stores identically.
type MemoryTodoRepository struct {
	mu    sync.RWMutex
	todos map[string]model.Todo
}

func NewMemoryTodo() *MemoryTodoRepository {
	return &MemoryTodoRepository{todos: make(map[string]model.Todo)}
}

func (r *MemoryTodoRepository) Create(_ context.Context, todo model.Todo) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	todo.ID = uuid.NewString()
	todo.CreatedAt = now
	todo.UpdatedAt = now
	r.todos[todo.ID] = todo
	return todo, nil
}

func (r *MemoryTodoRepository) GetByID(_ context.Context, ownerID, todoID string) (model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.todos[todoID]
	if !ok || todo.OwnerID != ownerID {
		return model.Todo{}, sql.ErrNoRows
	}
	return todo, nil
}

func (r *MemoryTodoRepository) Update(_ context.Context, todo model.Todo) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.todos[todo.ID]
	if !ok || existing.OwnerID != todo.OwnerID {
		return model.Todo{}, sql.ErrNoRows
	}

	existing.Title = todo.Title
	existing.Text = todo.Text
	existing.EndTime = todo.EndTime
	existing.UpdatedAt = time.Now().UTC()
	r.todos[todo.ID] = existing
	return existing, nil
}

func (r *MemoryTodoRepository) Delete(_ context.Context, ownerID, todoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.todos[todoID]
	if !ok || todo.OwnerID != ownerID {
		return sql.ErrNoRows
	}
	delete(r.todos, todoID)
	return nil
}

// ListByOwner orders by end time ascending with undated items last,
// matching the Postgres NULLS LAST ordering.
func (r *MemoryTodoRepository) ListByOwner(_ context.Context, ownerID string) ([]model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := []model.Todo{}
	for _, todo := range r.todos {
		if todo.OwnerID == ownerID {
			todos = append(todos, todo)
		}
	}

	sort.SliceStable(todos, func(i, j int) bool {
		a, b := todos[i], todos[j]
		switch {
		case a.EndTime == nil && b.EndTime == nil:
			return a.CreatedAt.Before(b.CreatedAt)
		case a.EndTime == nil:
			return false
		case b.EndTime == nil:
			return true
		case a.EndTime.Equal(*b.EndTime):
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.EndTime.Before(*b.EndTime)
		}
	})

	return todos, nil
}

// MemoryUserRepository is the map-backed counterpart for users.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User // keyed by userName
}

func NewMemoryUser() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]model.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, userName string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := model.User{
		ID:        uuid.NewString(),
		UserName:  userName,
		CreatedAt: time.Now().UTC(),
	}
	r.users[userName] = user
	return user, nil
}

func (r *MemoryUserRepository) GetByUserName(_ context.Context, userName string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userName]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return user, nil
}

var (
	_ TodoRepository = (*MemoryTodoRepository)(nil)
	_ UserRepository = (*MemoryUserRepository)(nil)
)
