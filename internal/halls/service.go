package halls

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service interface defines the contract for hall business logic
type Service interface {
	CreateHall(ctx context.Context, ownerID uuid.UUID, req HallRequest) (*Hall, error)
	GetHall(ctx context.Context, id uuid.UUID) (*Hall, error)
	GetOwnerHalls(ctx context.Context, ownerID uuid.UUID) ([]Hall, error)
	ListApprovedHalls(ctx context.Context) ([]Hall, error)
	UpdateHall(ctx context.Context, hallID, actorID uuid.UUID, req HallRequest) (*Hall, error)
	UpdateHallStatus(ctx context.Context, hallID uuid.UUID, status Status) error

	AddStaff(ctx context.Context, hallID, actorID, userID uuid.UUID) (*HallStaff, error)
	RemoveStaff(ctx context.Context, hallID, actorID, userID uuid.UUID) error
	ListStaff(ctx context.Context, hallID, actorID uuid.UUID) ([]HallStaff, error)

	// IsManagement reports whether the user owns the hall or is on its
	// staff. Consumed by the reservation engine as its authorization
	// predicate.
	IsManagement(ctx context.Context, hallID, userID uuid.UUID) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateHall(ctx context.Context, ownerID uuid.UUID, req HallRequest) (*Hall, error) {
	hall := &Hall{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Status:      StatusPending,
	}

	if err := s.repo.CreateHall(ctx, hall); err != nil {
		return nil, fmt.Errorf("failed to create hall: %w", err)
	}

	return hall, nil
}

func (s *service) GetHall(ctx context.Context, id uuid.UUID) (*Hall, error) {
	return s.repo.GetHallByID(ctx, id)
}

func (s *service) GetOwnerHalls(ctx context.Context, ownerID uuid.UUID) ([]Hall, error) {
	return s.repo.GetHallsByOwner(ctx, ownerID)
}

func (s *service) ListApprovedHalls(ctx context.Context) ([]Hall, error) {
	return s.repo.GetApprovedHalls(ctx)
}

func (s *service) UpdateHall(ctx context.Context, hallID, actorID uuid.UUID, req HallRequest) (*Hall, error) {
	hall, err := s.repo.GetHallByID(ctx, hallID)
	if err != nil {
		return nil, err
	}

	if hall.OwnerID != actorID {
		return nil, ErrNotAuthorized
	}

	hall.Name = req.Name
	hall.Description = req.Description
	hall.Address = req.Address
	hall.City = req.City

	if err := s.repo.UpdateHall(ctx, hall); err != nil {
		return nil, fmt.Errorf("failed to update hall: %w", err)
	}

	return hall, nil
}

func (s *service) UpdateHallStatus(ctx context.Context, hallID uuid.UUID, status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	return s.repo.UpdateHallStatus(ctx, hallID, status)
}

func (s *service) AddStaff(ctx context.Context, hallID, actorID, userID uuid.UUID) (*HallStaff, error) {
	hall, err := s.repo.GetHallByID(ctx, hallID)
	if err != nil {
		return nil, err
	}

	// Only the owner may manage the staff roster
	if hall.OwnerID != actorID {
		return nil, ErrNotAuthorized
	}

	exists, err := s.repo.StaffExists(ctx, hallID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrStaffExists
	}

	staff := &HallStaff{
		HallID: hallID,
		UserID: userID,
	}

	if err := s.repo.AddStaff(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to add staff: %w", err)
	}

	return staff, nil
}

func (s *service) RemoveStaff(ctx context.Context, hallID, actorID, userID uuid.UUID) error {
	hall, err := s.repo.GetHallByID(ctx, hallID)
	if err != nil {
		return err
	}

	if hall.OwnerID != actorID {
		return ErrNotAuthorized
	}

	return s.repo.RemoveStaff(ctx, hallID, userID)
}

func (s *service) ListStaff(ctx context.Context, hallID, actorID uuid.UUID) ([]HallStaff, error) {
	ok, err := s.IsManagement(ctx, hallID, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAuthorized
	}

	return s.repo.ListStaff(ctx, hallID)
}

func (s *service) IsManagement(ctx context.Context, hallID, userID uuid.UUID) (bool, error) {
	hall, err := s.repo.GetHallByID(ctx, hallID)
	if err != nil {
		return false, err
	}

	if hall.OwnerID == userID {
		return true, nil
	}

	return s.repo.StaffExists(ctx, hallID, userID)
}
