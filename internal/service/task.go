package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/repository"
)

var (
	ErrTaskNotFound  = repository.ErrTaskNotFound
	ErrInvalidPeriod = errors.New("end of period must not precede its start")
)

type TaskRepository interface {
	GetAll(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, t domain.Task) (domain.Task, error)
	Update(ctx context.Context, id uint, title, description, taskTime *string, taskDate *time.Time, status, recurrence *string) (domain.Task, error)
	Delete(ctx context.Context, id uint) error
}

// TaskOccurrence is one concrete calendar entry produced by expanding a
// task's recurrence rule.
type TaskOccurrence struct {
	Task domain.Task `json:"task"`
	Date time.Time   `json:"date"`
}

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

func (s *TaskService) GetAll(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAll -> %w", err)
	}

	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	if t.Status == "" {
		t.Status = domain.TaskPending
	}
	if t.Recurrence == "" {
		t.Recurrence = domain.RecurrenceNone
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return domain.Task{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TaskService) Update(ctx context.Context, id uint, title, description, taskTime *string, taskDate *time.Time, status, recurrence *string) (domain.Task, error) {
	updated, err := s.repo.Update(ctx, id, title, description, taskTime, taskDate, status, recurrence)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return domain.Task{}, err
		}
		return domain.Task{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Calendar expands every task's recurrence over [from, to] and returns the
// occurrences ordered by date, then by task id for same-day entries.
func (s *TaskService) Calendar(ctx context.Context, from, to time.Time) ([]TaskOccurrence, error) {
	if to.Before(from) {
		return nil, ErrInvalidPeriod
	}

	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAll -> %w", err)
	}

	var occurrences []TaskOccurrence
	for _, t := range tasks {
		for _, d := range t.Occurrences(from, to) {
			occurrences = append(occurrences, TaskOccurrence{Task: t, Date: d})
		}
	}

	sort.Slice(occurrences, func(i, j int) bool {
		if !occurrences[i].Date.Equal(occurrences[j].Date) {
			return occurrences[i].Date.Before(occurrences[j].Date)
		}
		return occurrences[i].Task.ID < occurrences[j].Task.ID
	})

	return occurrences, nil
}
