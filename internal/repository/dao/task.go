package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTaskNotFound = errors.New("task not found")

type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	TaskDate    time.Time `gorm:"not null;index"`
	Time        string    `gorm:"size:5"` // HH:MM
	Status      string    `gorm:"not null;default:Pending"`
	Recurrence  string    `gorm:"not null;default:None"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TaskDAO struct {
	db *gorm.DB
}

func NewTaskDAO(db *gorm.DB) *TaskDAO {
	return &TaskDAO{
		db: db,
	}
}

func (d *TaskDAO) GetAll(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := d.db.WithContext(ctx).Order("task_date").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (d *TaskDAO) Create(ctx context.Context, t Task) (Task, error) {
	if err := d.db.WithContext(ctx).Create(&t).Error; err != nil {
		return Task{}, err
	}
	return t, nil
}

// Update overwrites only the provided fields.
func (d *TaskDAO) Update(ctx context.Context, id uint, title, description, taskTime *string, taskDate *time.Time, status, recurrence *string) (Task, error) {
	var t Task
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&t, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return result.Error
		}

		if title != nil {
			t.Title = *title
		}
		if description != nil {
			t.Description = *description
		}
		if taskDate != nil {
			t.TaskDate = *taskDate
		}
		if taskTime != nil {
			t.Time = *taskTime
		}
		if status != nil {
			t.Status = *status
		}
		if recurrence != nil {
			t.Recurrence = *recurrence
		}

		return tx.Save(&t).Error
	})
	if err != nil {
		return Task{}, err
	}

	return t, nil
}

func (d *TaskDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
