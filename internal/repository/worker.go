package repository

import (
	"context"

	"github.com/farmstead/farmstead-api/internal/domain"
	"github.com/farmstead/farmstead-api/internal/repository/dao"
)

var (
	ErrWorkerNotFound = dao.ErrWorkerNotFound
	ErrRoleExists     = dao.ErrRoleExists
	ErrAreaExists     = dao.ErrAreaExists
)

type WorkerDAO interface {
	GetAll(ctx context.Context) ([]dao.Worker, error)
	GetByID(ctx context.Context, id uint) (dao.Worker, error)
	Create(ctx context.Context, w dao.Worker) (dao.Worker, error)
	Update(ctx context.Context, w dao.Worker) (dao.Worker, error)
	CreatePayment(ctx context.Context, p dao.SalaryPayment) (dao.SalaryPayment, error)
	GetAllPayments(ctx context.Context) ([]dao.SalaryPayment, error)
	GetAllRoles(ctx context.Context) ([]dao.Role, error)
	CreateRole(ctx context.Context, r dao.Role) (dao.Role, error)
	GetAllAreas(ctx context.Context) ([]dao.ResponsibilityArea, error)
	CreateArea(ctx context.Context, a dao.ResponsibilityArea) (dao.ResponsibilityArea, error)
}

type WorkerRepository struct {
	dao WorkerDAO
}

func NewWorkerRepository(dao WorkerDAO) *WorkerRepository {
	return &WorkerRepository{
		dao: dao,
	}
}

func (r *WorkerRepository) daoToDomain(w dao.Worker) domain.Worker {
	return domain.Worker{
		ID:          w.ID,
		Name:        w.Name,
		Role:        w.Role,
		PaymentType: domain.PaymentType(w.PaymentType),
		Wage:        w.Wage,
		HoursWorked: w.HoursWorked,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (r *WorkerRepository) paymentDaoToDomain(p dao.SalaryPayment) domain.SalaryPayment {
	return domain.SalaryPayment{
		ID:              p.ID,
		WorkerID:        p.WorkerID,
		Amount:          p.Amount,
		PaymentDate:     p.PaymentDate,
		PaymentType:     domain.PaymentType(p.PaymentType),
		TaskDescription: p.TaskDescription,
		Notes:           p.Notes,
	}
}

func (r *WorkerRepository) GetAll(ctx context.Context) ([]domain.Worker, error) {
	daoWorkers, err := r.dao.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	workers := make([]domain.Worker, len(daoWorkers))
	for i, w := range daoWorkers {
		workers[i] = r.daoToDomain(w)
	}
	return workers, nil
}

func (r *WorkerRepository) GetByID(ctx context.Context, id uint) (domain.Worker, error) {
	w, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Worker{}, err
	}
	return r.daoToDomain(w), nil
}

func (r *WorkerRepository) Create(ctx context.Context, w domain.Worker) (domain.Worker, error) {
	created, err := r.dao.Create(ctx, dao.Worker{
		Name:        w.Name,
		Role:        w.Role,
		PaymentType: string(w.PaymentType),
		Wage:        w.Wage,
		HoursWorked: w.HoursWorked,
		IsActive:    true,
	})
	if err != nil {
		return domain.Worker{}, err
	}
	return r.daoToDomain(created), nil
}

func (r *WorkerRepository) Update(ctx context.Context, w domain.Worker) (domain.Worker, error) {
	existing, err := r.dao.GetByID(ctx, w.ID)
	if err != nil {
		return domain.Worker{}, err
	}

	existing.Name = w.Name
	existing.Role = w.Role
	existing.PaymentType = string(w.PaymentType)
	existing.Wage = w.Wage
	existing.HoursWorked = w.HoursWorked
	existing.IsActive = w.IsActive

	updated, err := r.dao.Update(ctx, existing)
	if err != nil {
		return domain.Worker{}, err
	}
	return r.daoToDomain(updated), nil
}

func (r *WorkerRepository) CreatePayment(ctx context.Context, p domain.SalaryPayment) (domain.SalaryPayment, error) {
	created, err := r.dao.CreatePayment(ctx, dao.SalaryPayment{
		WorkerID:        p.WorkerID,
		Amount:          p.Amount,
		PaymentDate:     p.PaymentDate,
		PaymentType:     string(p.PaymentType),
		TaskDescription: p.TaskDescription,
		Notes:           p.Notes,
	})
	if err != nil {
		return domain.SalaryPayment{}, err
	}
	return r.paymentDaoToDomain(created), nil
}

func (r *WorkerRepository) GetAllPayments(ctx context.Context) ([]domain.SalaryPayment, error) {
	daoPayments, err := r.dao.GetAllPayments(ctx)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.SalaryPayment, len(daoPayments))
	for i, p := range daoPayments {
		payments[i] = r.paymentDaoToDomain(p)
	}
	return payments, nil
}

func (r *WorkerRepository) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	daoRoles, err := r.dao.GetAllRoles(ctx)
	if err != nil {
		return nil, err
	}

	roles := make([]domain.Role, len(daoRoles))
	for i, role := range daoRoles {
		roles[i] = domain.Role{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
			CreatedAt:   role.CreatedAt,
		}
	}
	return roles, nil
}

func (r *WorkerRepository) CreateRole(ctx context.Context, role domain.Role) (domain.Role, error) {
	created, err := r.dao.CreateRole(ctx, dao.Role{
		Name:        role.Name,
		Description: role.Description,
	})
	if err != nil {
		return domain.Role{}, err
	}
	return domain.Role{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
		CreatedAt:   created.CreatedAt,
	}, nil
}

func (r *WorkerRepository) GetAllAreas(ctx context.Context) ([]domain.ResponsibilityArea, error) {
	daoAreas, err := r.dao.GetAllAreas(ctx)
	if err != nil {
		return nil, err
	}

	areas := make([]domain.ResponsibilityArea, len(daoAreas))
	for i, a := range daoAreas {
		areas[i] = domain.ResponsibilityArea{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			CreatedAt:   a.CreatedAt,
		}
	}
	return areas, nil
}

func (r *WorkerRepository) CreateArea(ctx context.Context, area domain.ResponsibilityArea) (domain.ResponsibilityArea, error) {
	created, err := r.dao.CreateArea(ctx, dao.ResponsibilityArea{
		Name:        area.Name,
		Description: area.Description,
	})
	if err != nil {
		return domain.ResponsibilityArea{}, err
	}
	return domain.ResponsibilityArea{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
		CreatedAt:   created.CreatedAt,
	}, nil
}
