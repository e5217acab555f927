package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmstead/farmstead-api/internal/domain"
)

type fakeTaskRepo struct {
	TaskRepository

	getAllFn func(ctx context.Context) ([]domain.Task, error)
}

func (f *fakeTaskRepo) GetAll(ctx context.Context) ([]domain.Task, error) {
	return f.getAllFn(ctx)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTaskService_Calendar(t *testing.T) {
	t.Run("expands and orders occurrences across tasks", func(t *testing.T) {
		repo := &fakeTaskRepo{
			getAllFn: func(ctx context.Context) ([]domain.Task, error) {
				return []domain.Task{
					{ID: 1, Title: "Feed sheep", TaskDate: day(2025, time.March, 2), Recurrence: domain.RecurrenceWeekly},
					{ID: 2, Title: "Market run", TaskDate: day(2025, time.March, 5), Recurrence: domain.RecurrenceNone},
				}, nil
			},
		}
		svc := NewTaskService(repo)

		occurrences, err := svc.Calendar(context.Background(), day(2025, time.March, 1), day(2025, time.March, 10))

		require.NoError(t, err)
		require.Len(t, occurrences, 3)
		assert.Equal(t, day(2025, time.March, 2), occurrences[0].Date)
		assert.Equal(t, uint(1), occurrences[0].Task.ID)
		assert.Equal(t, day(2025, time.March, 5), occurrences[1].Date)
		assert.Equal(t, uint(2), occurrences[1].Task.ID)
		assert.Equal(t, day(2025, time.March, 9), occurrences[2].Date)
		assert.Equal(t, uint(1), occurrences[2].Task.ID)
	})

	t.Run("same-day occurrences are ordered by task id", func(t *testing.T) {
		repo := &fakeTaskRepo{
			getAllFn: func(ctx context.Context) ([]domain.Task, error) {
				return []domain.Task{
					{ID: 2, TaskDate: day(2025, time.March, 3)},
					{ID: 1, TaskDate: day(2025, time.March, 3)},
				}, nil
			},
		}
		svc := NewTaskService(repo)

		occurrences, err := svc.Calendar(context.Background(), day(2025, time.March, 1), day(2025, time.March, 10))

		require.NoError(t, err)
		require.Len(t, occurrences, 2)
		assert.Equal(t, uint(1), occurrences[0].Task.ID)
		assert.Equal(t, uint(2), occurrences[1].Task.ID)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		svc := NewTaskService(&fakeTaskRepo{})

		_, err := svc.Calendar(context.Background(), day(2025, time.March, 10), day(2025, time.March, 1))

		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestTaskService_Create_Defaults(t *testing.T) {
	repo := &fakeTaskRepoCreate{}
	svc := NewTaskService(repo)

	_, err := svc.Create(context.Background(), domain.Task{Title: "Fix fence", TaskDate: day(2025, time.May, 1)})

	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, repo.created.Status)
	assert.Equal(t, domain.RecurrenceNone, repo.created.Recurrence)
}

type fakeTaskRepoCreate struct {
	TaskRepository

	created domain.Task
}

func (f *fakeTaskRepoCreate) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	f.created = t
	return t, nil
}
