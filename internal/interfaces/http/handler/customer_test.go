package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	partnerapp "github.com/bizdash/backend/internal/application/partner"
	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/interfaces/http/dto"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
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

func customerTestRouter(t *testing.T) (*gin.Engine, *memCustomerRepo) {
	t.Helper()
	middleware.SetupValidator()

	repo := newMemCustomerRepo()
	h := NewCustomerHandler(partnerapp.NewCustomerService(repo))

	router := gin.New()
	router.POST("/customers", h.Create)
	router.GET("/customers", h.List)
	router.GET("/customers/:id", h.GetByID)
	router.PATCH("/customers/:id", h.Update)
	router.POST("/customers/:id/archive", h.Archive)
	router.POST("/customers/:id/restore", h.Restore)
	router.DELETE("/customers/:id", h.Delete)
	return router, repo
}

func seedCustomer(t *testing.T, repo *memCustomerRepo, name, email string) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer(name)
	require.NoError(t, err)
	require.NoError(t, customer.SetContact("", "", email))
	require.NoError(t, repo.Save(context.Background(), customer))
	return customer
}

func TestCustomerHandlerCreate(t *testing.T) {
	router, _ := customerTestRouter(t)

	body, _ := json.Marshal(gin.H{
		"name":         "Gupta Hardware",
		"contact_name": "Ravi Gupta",
		"email":        "ravi@gupta.in",
		"city":         "Pune",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool                        `json:"success"`
		Data    partnerapp.CustomerResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Gupta Hardware", resp.Data.Name)
	assert.Equal(t, "active", resp.Data.Status)
	assert.NotEqual(t, uuid.Nil, resp.Data.ID)
}

func TestCustomerHandlerCreateDuplicateEmail(t *testing.T) {
	router, repo := customerTestRouter(t)
	seedCustomer(t, repo, "Gupta Hardware", "ravi@gupta.in")

	body, _ := json.Marshal(gin.H{"name": "Another Shop", "email": "ravi@gupta.in"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
}

func TestCustomerHandlerGetByID(t *testing.T) {
	router, repo := customerTestRouter(t)
	customer := seedCustomer(t, repo, "Gupta Hardware", "ravi@gupta.in")

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/customers/"+customer.ID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/customers/"+uuid.NewString(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/customers/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCustomerHandlerList(t *testing.T) {
	router, repo := customerTestRouter(t)
	seedCustomer(t, repo, "Gupta Hardware", "ravi@gupta.in")
	seedCustomer(t, repo, "Mehta Traders", "anita@mehta.in")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/customers?page=1&page_size=10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.PageSize)
}

func TestCustomerHandlerArchiveRestore(t *testing.T) {
	router, repo := customerTestRouter(t)
	customer := seedCustomer(t, repo, "Gupta Hardware", "ravi@gupta.in")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/customers/"+customer.ID.String()+"/archive", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, repo.byID[customer.ID].IsActive())

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/customers/"+customer.ID.String()+"/restore", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, repo.byID[customer.ID].IsActive())
}

func TestCustomerHandlerDelete(t *testing.T) {
	router, repo := customerTestRouter(t)
	customer := seedCustomer(t, repo, "Gupta Hardware", "ravi@gupta.in")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/customers/"+customer.ID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, repo.byID)
}
