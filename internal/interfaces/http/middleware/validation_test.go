package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bizdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	assert.NotNil(t, v)
}

func TestHandleValidationError(t *testing.T) {
	type createCustomerRequest struct {
		Name  string `json:"name" binding:"required,min=1,max=200"`
		Email string `json:"email" binding:"omitempty,email"`
	}

	SetupValidator()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.POST("/api/v1/customers", func(c *gin.Context) {
		var req createCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
	})

	t.Run("reports each failed field by its json name", func(t *testing.T) {
		body := strings.NewReader(`{"name": "", "email": "not-an-address"}`)
		req := httptest.NewRequest("POST", "/api/v1/customers", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)
		assert.NotEmpty(t, resp.Error.RequestID)

		require.Len(t, resp.Error.Details, 2)
		fields := []string{resp.Error.Details[0].Field, resp.Error.Details[1].Field}
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
	})

	t.Run("valid payload passes through", func(t *testing.T) {
		body := strings.NewReader(`{"name": "Meera Gupta", "email": "meera@example.com"}`)
		req := httptest.NewRequest("POST", "/api/v1/customers", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestFormatValidationErrorsNonValidatorError(t *testing.T) {
	resp := FormatValidationErrors(assert.AnError, "req-1")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Empty(t, resp.Error.Details, "non-validator errors carry no field details")
}

func TestValidationMessage(t *testing.T) {
	type adjustmentRequest struct {
		Reason   string `json:"reason" binding:"required"`
		Kind     string `json:"kind" binding:"oneof=RESTOCK SALE DAMAGE CORRECTION"`
		StockID  string `json:"stock_id" binding:"uuid"`
		Note     string `json:"note" binding:"max=3"`
		Contact  string `json:"contact" binding:"email"`
		Website  string `json:"website" binding:"url"`
		Password string `json:"password" binding:"min=8"`
	}

	v := validator.New()
	v.SetTagName("binding")
	err := v.Struct(adjustmentRequest{
		Kind:     "REFUND",
		StockID:  "not-a-uuid",
		Note:     "long note",
		Contact:  "nope",
		Website:  "nope",
		Password: "short",
	})
	require.Error(t, err)

	expected := map[string]string{
		"Reason":   "This field is required",
		"Kind":     "Must be one of: RESTOCK SALE DAMAGE CORRECTION",
		"StockID":  "Invalid UUID format",
		"Note":     "Must be at most 3 characters",
		"Contact":  "Invalid email format",
		"Website":  "Invalid URL format",
		"Password": "Must be at least 8 characters",
	}

	for _, e := range err.(validator.ValidationErrors) {
		want, ok := expected[e.StructField()]
		require.True(t, ok, "unexpected field %s", e.StructField())
		assert.Equal(t, want, validationMessage(e), e.StructField())
	}
}

func TestRequestIDFromFallsBackToHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/invoices", nil)
	c.Request.Header.Set("X-Request-ID", "client-supplied")

	assert.Equal(t, "client-supplied", requestIDFrom(c))

	c.Set("request_id", "minted-by-middleware")
	assert.Equal(t, "minted-by-middleware", requestIDFrom(c))
}
