package repository

import (
	"context"
	"time"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/repository/dao"
)

var ErrTaskNotFound = dao.ErrTaskNotFound

type TaskDAO interface {
	GetAll(ctx context.Context) ([]dao.Task, error)
	Create(ctx context.Context, t dao.Task) (dao.Task, error)
	Update(ctx context.Context, id uint, title, description, taskTime *string, taskDate *time.Time, status, recurrence *string) (dao.Task, error)
	Delete(ctx context.Context, id uint) error
}

type TaskRepository struct {
	dao TaskDAO
}

func NewTaskRepository(dao TaskDAO) *TaskRepository {
	return &TaskRepository{
		dao: dao,
	}
}

func (r *TaskRepository) daoToDomain(t dao.Task) domain.Task {
	return domain.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		TaskDate:    t.TaskDate,
		Time:        t.Time,
		Status:      domain.TaskStatus(t.Status),
		Recurrence:  domain.Recurrence(t.Recurrence),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TaskRepository) GetAll(ctx context.Context) ([]domain.Task, error) {
	daoTasks, err := r.dao.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, len(daoTasks))
	for i, t := range daoTasks {
		tasks[i] = r.daoToDomain(t)
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	created, err := r.dao.Create(ctx, dao.Task{
		Title:       t.Title,
		Description: t.Description,
		TaskDate:    t.TaskDate,
		Time:        t.Time,
		Status:      string(t.Status),
		Recurrence:  string(t.Recurrence),
	})
	if err != nil {
		return domain.Task{}, err
	}
	return r.daoToDomain(created), nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint, title, description, taskTime *string, taskDate *time.Time, status, recurrence *string) (domain.Task, error) {
	updated, err := r.dao.Update(ctx, id, title, description, taskTime, taskDate, status, recurrence)
	if err != nil {
		return domain.Task{}, err
	}
	return r.daoToDomain(updated), nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}
