package halls

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHallRepo struct {
	halls map[uuid.UUID]*Hall
	staff map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeHallRepo() *fakeHallRepo {
	return &fakeHallRepo{
		halls: make(map[uuid.UUID]*Hall),
		staff: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (r *fakeHallRepo) CreateHall(_ context.Context, hall *Hall) error {
	hall.ID = uuid.New()
	copied := *hall
	r.halls[hall.ID] = &copied
	return nil
}

func (r *fakeHallRepo) GetHallByID(_ context.Context, id uuid.UUID) (*Hall, error) {
	hall, ok := r.halls[id]
	if !ok {
		return nil, ErrHallNotFound
	}
	copied := *hall
	return &copied, nil
}

func (r *fakeHallRepo) GetHallsByOwner(_ context.Context, ownerID uuid.UUID) ([]Hall, error) {
	var list []Hall
	for _, h := range r.halls {
		if h.OwnerID == ownerID {
			list = append(list, *h)
		}
	}
	return list, nil
}

func (r *fakeHallRepo) GetApprovedHalls(_ context.Context) ([]Hall, error) {
	var list []Hall
	for _, h := range r.halls {
		if h.Status == StatusApproved {
			list = append(list, *h)
		}
	}
	return list, nil
}

func (r *fakeHallRepo) UpdateHall(_ context.Context, hall *Hall) error {
	if _, ok := r.halls[hall.ID]; !ok {
		return ErrHallNotFound
	}
	copied := *hall
	r.halls[hall.ID] = &copied
	return nil
}

func (r *fakeHallRepo) UpdateHallStatus(_ context.Context, id uuid.UUID, status Status) error {
	hall, ok := r.halls[id]
	if !ok {
		return ErrHallNotFound
	}
	hall.Status = status
	return nil
}

func (r *fakeHallRepo) AddStaff(_ context.Context, staff *HallStaff) error {
	staff.ID = uuid.New()
	if r.staff[staff.HallID] == nil {
		r.staff[staff.HallID] = make(map[uuid.UUID]bool)
	}
	r.staff[staff.HallID][staff.UserID] = true
	return nil
}

func (r *fakeHallRepo) RemoveStaff(_ context.Context, hallID, userID uuid.UUID) error {
	if !r.staff[hallID][userID] {
		return ErrStaffNotFound
	}
	delete(r.staff[hallID], userID)
	return nil
}

func (r *fakeHallRepo) ListStaff(_ context.Context, hallID uuid.UUID) ([]HallStaff, error) {
	var list []HallStaff
	for userID := range r.staff[hallID] {
		list = append(list, HallStaff{HallID: hallID, UserID: userID})
	}
	return list, nil
}

func (r *fakeHallRepo) StaffExists(_ context.Context, hallID, userID uuid.UUID) (bool, error) {
	return r.staff[hallID][userID], nil
}

func newHallFixture(t *testing.T) (Service, *fakeHallRepo, uuid.UUID, uuid.UUID) {
	t.Helper()
	repo := newFakeHallRepo()
	svc := NewService(repo)

	ownerID := uuid.New()
	hall, err := svc.CreateHall(context.Background(), ownerID, HallRequest{
		Name:    "Grand Jubilee Banquets",
		Address: "14 Riverside Avenue",
		City:    "Austin",
	})
	require.NoError(t, err)

	return svc, repo, hall.ID, ownerID
}

func TestCreateHall_StartsPending(t *testing.T) {
	svc, _, hallID, _ := newHallFixture(t)

	hall, err := svc.GetHall(context.Background(), hallID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, hall.Status)
	assert.False(t, hall.IsApproved())
}

func TestUpdateHallStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a hall", func(t *testing.T) {
		svc, _, hallID, _ := newHallFixture(t)

		require.NoError(t, svc.UpdateHallStatus(ctx, hallID, StatusApproved))

		hall, err := svc.GetHall(ctx, hallID)
		require.NoError(t, err)
		assert.True(t, hall.IsApproved())
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		svc, _, hallID, _ := newHallFixture(t)
		err := svc.UpdateHallStatus(ctx, hallID, Status("ARCHIVED"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestStaffManagement(t *testing.T) {
	ctx := context.Background()

	t.Run("owner adds and removes staff", func(t *testing.T) {
		svc, _, hallID, ownerID := newHallFixture(t)
		staffID := uuid.New()

		_, err := svc.AddStaff(ctx, hallID, ownerID, staffID)
		require.NoError(t, err)

		require.NoError(t, svc.RemoveStaff(ctx, hallID, ownerID, staffID))
	})

	t.Run("duplicate staff is rejected", func(t *testing.T) {
		svc, _, hallID, ownerID := newHallFixture(t)
		staffID := uuid.New()

		_, err := svc.AddStaff(ctx, hallID, ownerID, staffID)
		require.NoError(t, err)

		_, err = svc.AddStaff(ctx, hallID, ownerID, staffID)
		assert.ErrorIs(t, err, ErrStaffExists)
	})

	t.Run("non-owners cannot manage staff", func(t *testing.T) {
		svc, _, hallID, _ := newHallFixture(t)

		_, err := svc.AddStaff(ctx, hallID, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestIsManagement(t *testing.T) {
	ctx := context.Background()
	svc, _, hallID, ownerID := newHallFixture(t)
	staffID := uuid.New()

	_, err := svc.AddStaff(ctx, hallID, ownerID, staffID)
	require.NoError(t, err)

	owner, err := svc.IsManagement(ctx, hallID, ownerID)
	require.NoError(t, err)
	assert.True(t, owner)

	staff, err := svc.IsManagement(ctx, hallID, staffID)
	require.NoError(t, err)
	assert.True(t, staff)

	stranger, err := svc.IsManagement(ctx, hallID, uuid.New())
	require.NoError(t, err)
	assert.False(t, stranger)
}
