package responses

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeroster/pokeroster/internal/domain"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestSendDomainErrorNotFound(t *testing.T) {
	c, w := testContext(t)

	SendDomainError(c, domain.NewNotFound("Trainer", 7))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Trainer with id 7 not found", body.Message)
}

func TestSendDomainErrorRuleViolation(t *testing.T) {
	c, w := testContext(t)

	SendDomainError(c, domain.NewRuleViolation("Maximum %d Pokemon per team", 6))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Maximum 6 Pokemon per team", body.Message)
}

func TestSendDomainErrorUnknown(t *testing.T) {
	c, w := testContext(t)

	SendDomainError(c, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "fail", body.Status)
	// internal details never leak to the client
	assert.NotContains(t, body.Message, "connection reset")
}

func TestSendPaginated(t *testing.T) {
	c, w := testContext(t)

	SendPaginated(c, http.StatusOK, "", []int{1, 2, 3}, 25, 2, 10)

	assert.Equal(t, http.StatusOK, w.Code)
	var body PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(25), body.Pagination.TotalItems)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasNextPage)
	assert.True(t, body.Pagination.HasPrevPage)
}
