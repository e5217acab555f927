package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmstead/farmstead-api/internal/domain"
)

type fakeWorkerRepo struct {
	WorkerRepository

	getByIDFn       func(ctx context.Context, id uint) (domain.Worker, error)
	createPaymentFn func(ctx context.Context, p domain.SalaryPayment) (domain.SalaryPayment, error)
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id uint) (domain.Worker, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeWorkerRepo) CreatePayment(ctx context.Context, p domain.SalaryPayment) (domain.SalaryPayment, error) {
	return f.createPaymentFn(ctx, p)
}

func monthlyWorker(active bool) domain.Worker {
	return domain.Worker{
		ID:          1,
		Name:        "Ana",
		PaymentType: domain.PaymentMonthly,
		IsActive:    active,
	}
}

func TestWorkerService_RecordPayment(t *testing.T) {
	t.Run("records a valid payment", func(t *testing.T) {
		repo := &fakeWorkerRepo{
			getByIDFn: func(ctx context.Context, id uint) (domain.Worker, error) {
				return monthlyWorker(true), nil
			},
			createPaymentFn: func(ctx context.Context, p domain.SalaryPayment) (domain.SalaryPayment, error) {
				p.ID = 7
				return p, nil
			},
		}
		svc := NewWorkerService(repo)

		payment, err := svc.RecordPayment(context.Background(), domain.SalaryPayment{
			WorkerID:    1,
			Amount:      decimal.NewFromInt(1200),
			PaymentType: domain.PaymentMonthly,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(7), payment.ID)
	})

	t.Run("rejects payments to inactive workers", func(t *testing.T) {
		repo := &fakeWorkerRepo{
			getByIDFn: func(ctx context.Context, id uint) (domain.Worker, error) {
				return monthlyWorker(false), nil
			},
		}
		svc := NewWorkerService(repo)

		_, err := svc.RecordPayment(context.Background(), domain.SalaryPayment{
			WorkerID:    1,
			Amount:      decimal.NewFromInt(1200),
			PaymentType: domain.PaymentMonthly,
		})

		assert.ErrorIs(t, err, ErrWorkerInactive)
	})

	t.Run("rejects a payment type the worker is not configured for", func(t *testing.T) {
		repo := &fakeWorkerRepo{
			getByIDFn: func(ctx context.Context, id uint) (domain.Worker, error) {
				return monthlyWorker(true), nil
			},
		}
		svc := NewWorkerService(repo)

		_, err := svc.RecordPayment(context.Background(), domain.SalaryPayment{
			WorkerID:    1,
			Amount:      decimal.NewFromInt(50),
			PaymentType: domain.PaymentDaily,
		})

		assert.ErrorIs(t, err, ErrPaymentTypeMismatch)
	})

	t.Run("per-task payments require a task description", func(t *testing.T) {
		repo := &fakeWorkerRepo{
			getByIDFn: func(ctx context.Context, id uint) (domain.Worker, error) {
				w := monthlyWorker(true)
				w.PaymentType = domain.PaymentPerTask
				return w, nil
			},
		}
		svc := NewWorkerService(repo)

		_, err := svc.RecordPayment(context.Background(), domain.SalaryPayment{
			WorkerID:    1,
			Amount:      decimal.NewFromInt(80),
			PaymentType: domain.PaymentPerTask,
		})

		assert.ErrorIs(t, err, ErrTaskDescriptionRequired)
	})

	t.Run("unknown worker surfaces not found", func(t *testing.T) {
		repo := &fakeWorkerRepo{
			getByIDFn: func(ctx context.Context, id uint) (domain.Worker, error) {
				return domain.Worker{}, ErrWorkerNotFound
			},
		}
		svc := NewWorkerService(repo)

		_, err := svc.RecordPayment(context.Background(), domain.SalaryPayment{
			WorkerID:    99,
			Amount:      decimal.NewFromInt(80),
			PaymentType: domain.PaymentMonthly,
		})

		assert.ErrorIs(t, err, ErrWorkerNotFound)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		svc := NewWorkerService(&fakeWorkerRepo{})

		_, err := svc.RecordPayment(context.Background(), domain.SalaryPayment{
			WorkerID:    1,
			Amount:      decimal.NewFromInt(-10),
			PaymentType: domain.PaymentMonthly,
		})

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}
