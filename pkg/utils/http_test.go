package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

func TestDecodeBody(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		want    payload
		wantErr bool
	}{
		{name: "ok", body: `{"product_id":"p1","quantity":2}`, want: payload{ProductID: "p1", Quantity: 2}},
		{name: "unknown field", body: `{"product_id":"p1","price":"1.00"}`, wantErr: true},
		{name: "trailing data", body: `{"product_id":"p1"}{"product_id":"p2"}`, wantErr: true},
		{name: "malformed", body: `{"product_id":`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
		{name: "too large", body: `{"product_id":"` + strings.Repeat("x", utils.MaxBodySize) + `"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			var got payload
			err := utils.DecodeBody(rr, req, &got)
			if tc.wantErr {
				assert.ErrorIs(t, err, utils.ErrInvalidBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWriteValidationError(t *testing.T) {
	err := validator.New().Struct(payload{Quantity: -1})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, utils.WriteValidationError(rr, err))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var res utils.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Equal(t, "invalid request", res.Message)
	assert.Equal(t, map[string]string{"product_id": "required", "quantity": "gte"}, res.Fields)
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, utils.WriteError(rr, "access denied", http.StatusForbidden))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"message":"access denied"}`, rr.Body.String())
}
