package partner

import (
	"context"
	"testing"

	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCustomerRepo struct {
	byID   map[uuid.UUID]*partner.Customer
	emails map[string]bool
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byID: map[uuid.UUID]*partner.Customer{}, emails: map[string]bool{}}
}

func (r *memCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}
func (r *memCustomerRepo) FindAll(ctx context.Context, f shared.Filter) ([]partner.Customer, error) {
	out := make([]partner.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}
func (r *memCustomerRepo) FindActive(ctx context.Context, f shared.Filter) ([]partner.Customer, error) {
	out := []partner.Customer{}
	for _, c := range r.byID {
		if c.IsActive() {
			out = append(out, *c)
		}
	}
	return out, nil
}
func (r *memCustomerRepo) Save(ctx context.Context, c *partner.Customer) error {
	r.byID[c.ID] = c
	if c.Email != "" {
		r.emails[c.Email] = true
	}
	return nil
}
func (r *memCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}
func (r *memCustomerRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return int64(len(r.byID)), nil
}
func (r *memCustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.emails[email], nil
}

func TestCustomerService_Create(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo)

	resp, err := svc.Create(context.Background(), CreateCustomerRequest{
		Name:        "Gupta Hardware",
		ContactName: "Ravi Gupta",
		Email:       "Ravi@Gupta.IN",
		City:        "Pune",
	})
	require.NoError(t, err)
	assert.Equal(t, "ravi@gupta.in", resp.Email)
	assert.Equal(t, "active", resp.Status)

	_, err = svc.Create(context.Background(), CreateCustomerRequest{
		Name:  "Another",
		Email: "ravi@gupta.in",
	})
	require.Error(t, err, "duplicate email rejected")

	_, err = svc.Create(context.Background(), CreateCustomerRequest{Name: ""})
	assert.Error(t, err)
}

func TestCustomerService_Update(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo)

	created, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "Gupta Hardware", Phone: "111"})
	require.NoError(t, err)

	newName := "Gupta Hardware & Sons"
	newCity := "Mumbai"
	updated, err := svc.Update(context.Background(), created.ID, UpdateCustomerRequest{
		Name: &newName,
		City: &newCity,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, "Mumbai", updated.City)
	assert.Equal(t, "111", updated.Phone, "untouched fields survive partial update")

	_, err = svc.Update(context.Background(), uuid.New(), UpdateCustomerRequest{Name: &newName})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCustomerService_ArchiveRestore(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo)

	created, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "Gupta Hardware"})
	require.NoError(t, err)

	require.NoError(t, svc.Archive(context.Background(), created.ID))
	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "archived", got.Status)

	require.NoError(t, svc.Restore(context.Background(), created.ID))
	assert.Error(t, svc.Restore(context.Background(), created.ID), "restoring an active customer fails")
}

func TestBillerService_CRUD(t *testing.T) {
	repo := &memBillerRepo{byID: map[uuid.UUID]*partner.Biller{}}
	svc := NewBillerService(repo)

	created, err := svc.Create(context.Background(), CreateBillerRequest{
		Name:      "Sharma Traders",
		UPIHandle: "sharma@upi",
	})
	require.NoError(t, err)
	assert.Equal(t, "sharma@upi", created.UPIHandle)

	bank := "SBI"
	updated, err := svc.Update(context.Background(), created.ID, UpdateBillerRequest{BankName: &bank})
	require.NoError(t, err)
	assert.Equal(t, "SBI", updated.BankName)
	assert.Equal(t, "sharma@upi", updated.UPIHandle)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

type memBillerRepo struct {
	byID map[uuid.UUID]*partner.Biller
}

func (r *memBillerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Biller, error) {
	if b, ok := r.byID[id]; ok {
		return b, nil
	}
	return nil, shared.ErrNotFound
}
func (r *memBillerRepo) FindAll(ctx context.Context, f shared.Filter) ([]partner.Biller, error) {
	out := make([]partner.Biller, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, *b)
	}
	return out, nil
}
func (r *memBillerRepo) Save(ctx context.Context, b *partner.Biller) error {
	r.byID[b.ID] = b
	return nil
}
func (r *memBillerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}
func (r *memBillerRepo) Count(ctx context.Context, f shared.Filter) (int64, error) {
	return int64(len(r.byID)), nil
}
