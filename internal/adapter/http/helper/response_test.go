package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashcardapp/internal/core/domain"
	"flashcardapp/internal/core/model/response"
)

func recorderContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	return c, rr
}

func TestSendRows(t *testing.T) {
	c, rr := recorderContext()

	SendRows(c, "collections", response.NewCollections(nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success","data":{"collections":[]}}`, rr.Body.String())
}

func TestSendDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: duplicate", domain.ErrConflict), http.StatusConflict, "CONFLICT"},
		{fmt.Errorf("%w: fk", domain.ErrValidation), http.StatusBadRequest, "VALIDATION_ERROR"},
		{fmt.Errorf("%w: conn refused", domain.ErrUnavailable), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{errors.New("syntax error at or near"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, rr := recorderContext()

			SendDomainError(c, tt.err)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotContains(t, rr.Body.String(), "syntax error")
		})
	}
}

func TestSendInternalError_Message(t *testing.T) {
	c, rr := recorderContext()

	SendInternalError(c)

	assert.Contains(t, rr.Body.String(), "An error occurred. Check server logs.")
}
