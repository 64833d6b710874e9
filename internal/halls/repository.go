package halls

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateHall(ctx context.Context, hall *Hall) error
	GetHallByID(ctx context.Context, id uuid.UUID) (*Hall, error)
	GetHallsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Hall, error)
	GetApprovedHalls(ctx context.Context) ([]Hall, error)
	UpdateHall(ctx context.Context, hall *Hall) error
	UpdateHallStatus(ctx context.Context, id uuid.UUID, status Status) error

	AddStaff(ctx context.Context, staff *HallStaff) error
	RemoveStaff(ctx context.Context, hallID, userID uuid.UUID) error
	ListStaff(ctx context.Context, hallID uuid.UUID) ([]HallStaff, error)
	StaffExists(ctx context.Context, hallID, userID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateHall(ctx context.Context, hall *Hall) error {
	return r.db.WithContext(ctx).Create(hall).Error
}

func (r *repository) GetHallByID(ctx context.Context, id uuid.UUID) (*Hall, error) {
	var hall Hall
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&hall).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, err
	}
	return &hall, nil
}

func (r *repository) GetHallsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Hall, error) {
	var halls []Hall
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&halls).Error
	return halls, err
}

func (r *repository) GetApprovedHalls(ctx context.Context) ([]Hall, error) {
	var halls []Hall
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusApproved).
		Order("created_at DESC").
		Find(&halls).Error
	return halls, err
}

func (r *repository) UpdateHall(ctx context.Context, hall *Hall) error {
	return r.db.WithContext(ctx).Save(hall).Error
}

func (r *repository) UpdateHallStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.db.WithContext(ctx).Model(&Hall{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHallNotFound
	}
	return nil
}

func (r *repository) AddStaff(ctx context.Context, staff *HallStaff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *repository) RemoveStaff(ctx context.Context, hallID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("hall_id = ? AND user_id = ?", hallID, userID).
		Delete(&HallStaff{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaffNotFound
	}
	return nil
}

func (r *repository) ListStaff(ctx context.Context, hallID uuid.UUID) ([]HallStaff, error) {
	var staff []HallStaff
	err := r.db.WithContext(ctx).
		Where("hall_id = ?", hallID).
		Order("created_at ASC").
		Find(&staff).Error
	return staff, err
}

func (r *repository) StaffExists(ctx context.Context, hallID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&HallStaff{}).
		Where("hall_id = ? AND user_id = ?", hallID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
