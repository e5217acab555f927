package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/repository"
)

var (
	ErrWorkerNotFound          = repository.ErrWorkerNotFound
	ErrRoleExists              = repository.ErrRoleExists
	ErrAreaExists              = repository.ErrAreaExists
	ErrWorkerInactive          = errors.New("worker is not active")
	ErrPaymentTypeMismatch     = errors.New("payment type does not match the worker's configured type")
	ErrTaskDescriptionRequired = errors.New("task description is required for per-task payments")
)

type WorkerRepository interface {
	GetAll(ctx context.Context) ([]domain.Worker, error)
	GetByID(ctx context.Context, id uint) (domain.Worker, error)
	Create(ctx context.Context, w domain.Worker) (domain.Worker, error)
	Update(ctx context.Context, w domain.Worker) (domain.Worker, error)
	CreatePayment(ctx context.Context, p domain.SalaryPayment) (domain.SalaryPayment, error)
	GetAllPayments(ctx context.Context) ([]domain.SalaryPayment, error)
	GetAllRoles(ctx context.Context) ([]domain.Role, error)
	CreateRole(ctx context.Context, r domain.Role) (domain.Role, error)
	GetAllAreas(ctx context.Context) ([]domain.ResponsibilityArea, error)
	CreateArea(ctx context.Context, a domain.ResponsibilityArea) (domain.ResponsibilityArea, error)
}

type WorkerService struct {
	repo WorkerRepository
}

func NewWorkerService(repo WorkerRepository) *WorkerService {
	return &WorkerService{
		repo: repo,
	}
}

func (s *WorkerService) GetAll(ctx context.Context) ([]domain.Worker, error) {
	workers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAll -> %w", err)
	}

	return workers, nil
}

func (s *WorkerService) Create(ctx context.Context, w domain.Worker) (domain.Worker, error) {
	created, err := s.repo.Create(ctx, w)
	if err != nil {
		return domain.Worker{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *WorkerService) Update(ctx context.Context, w domain.Worker) (domain.Worker, error) {
	updated, err := s.repo.Update(ctx, w)
	if err != nil {
		if errors.Is(err, ErrWorkerNotFound) {
			return domain.Worker{}, err
		}
		return domain.Worker{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// RecordPayment validates a payroll entry against the worker it pays before
// persisting it. The worker must be active and the payment type must match
// the worker's configured type.
func (s *WorkerService) RecordPayment(ctx context.Context, p domain.SalaryPayment) (domain.SalaryPayment, error) {
	if p.Amount.IsNegative() {
		return domain.SalaryPayment{}, ErrInvalidAmount
	}

	worker, err := s.repo.GetByID(ctx, p.WorkerID)
	if err != nil {
		if errors.Is(err, ErrWorkerNotFound) {
			return domain.SalaryPayment{}, err
		}
		return domain.SalaryPayment{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	if !worker.IsActive {
		return domain.SalaryPayment{}, ErrWorkerInactive
	}
	if p.PaymentType != worker.PaymentType {
		return domain.SalaryPayment{}, ErrPaymentTypeMismatch
	}
	if p.PaymentType == domain.PaymentPerTask && p.TaskDescription == "" {
		return domain.SalaryPayment{}, ErrTaskDescriptionRequired
	}

	created, err := s.repo.CreatePayment(ctx, p)
	if err != nil {
		return domain.SalaryPayment{}, fmt.Errorf("s.repo.CreatePayment -> %w", err)
	}

	return created, nil
}

func (s *WorkerService) GetAllPayments(ctx context.Context) ([]domain.SalaryPayment, error) {
	payments, err := s.repo.GetAllPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllPayments -> %w", err)
	}

	return payments, nil
}

func (s *WorkerService) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.repo.GetAllRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllRoles -> %w", err)
	}

	return roles, nil
}

func (s *WorkerService) CreateRole(ctx context.Context, r domain.Role) (domain.Role, error) {
	created, err := s.repo.CreateRole(ctx, r)
	if err != nil {
		if errors.Is(err, ErrRoleExists) {
			return domain.Role{}, err
		}
		return domain.Role{}, fmt.Errorf("s.repo.CreateRole -> %w", err)
	}

	return created, nil
}

func (s *WorkerService) GetAllAreas(ctx context.Context) ([]domain.ResponsibilityArea, error) {
	areas, err := s.repo.GetAllAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAllAreas -> %w", err)
	}

	return areas, nil
}

func (s *WorkerService) CreateArea(ctx context.Context, a domain.ResponsibilityArea) (domain.ResponsibilityArea, error) {
	created, err := s.repo.CreateArea(ctx, a)
	if err != nil {
		if errors.Is(err, ErrAreaExists) {
			return domain.ResponsibilityArea{}, err
		}
		return domain.ResponsibilityArea{}, fmt.Errorf("s.repo.CreateArea -> %w", err)
	}

	return created, nil
}
