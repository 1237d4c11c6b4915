package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todoweb/internal/model"
	"todoweb/internal/repository"
	"todoweb/internal/validation"
)

type TodoService struct {
	repo repository.TodoRepository
}

func NewTodoService(repo repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, ownerID string, input validation.CreateInput) (model.Todo, error) {
	todo := model.Todo{
		OwnerID: ownerID,
		Title:   input.Title,
		Text:    input.Text,
		EndTime: input.EndTime,
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return created, nil
}

func (s *TodoService) GetByID(ctx context.Context, ownerID, todoID string) (model.Todo, error) {
	todo, err := s.repo.GetByID(ctx, ownerID, todoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Todo{}, ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}
	return todo, nil
}

// Update applies title/text/endTime to an owned item. The owner id never
// changes; an item owned by someone else reads as NotFound.
func (s *TodoService) Update(ctx context.Context, ownerID string, input validation.UpdateInput) (model.Todo, error) {
	existing, err := s.repo.GetByID(ctx, ownerID, input.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Todo{}, ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to get todo for update: %w", err)
	}

	existing.Title = input.Title
	existing.Text = input.Text
	existing.EndTime = input.EndTime

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Todo{}, ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, ownerID, todoID string) error {
	err := s.repo.Delete(ctx, ownerID, todoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// List returns the owner's collection ordered by endTime ascending;
// items without a deadline come last.
func (s *TodoService) List(ctx context.Context, ownerID string) ([]model.Todo, error) {
	todos, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}
