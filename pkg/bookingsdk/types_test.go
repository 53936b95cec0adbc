package bookingsdk_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/medbook/pkg/bookingsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestAliases(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantName  string
		wantPhone string
	}{
		{"english keys", `{"email":"a@x","password":"p","name":"Ann","phone":"1"}`, "Ann", "1"},
		{"legacy keys", `{"email":"a@x","password":"p","nombre":"Ana","telefono":"2"}`, "Ana", "2"},
		{"english wins", `{"email":"a@x","password":"p","name":"Ann","nombre":"Ana"}`, "Ann", ""},
		{"neither", `{"email":"a@x","password":"p"}`, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req bookingsdk.RegisterRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			require.Equal(t, "a@x", req.Email)
			require.Equal(t, tt.wantName, req.Name)
			require.Equal(t, tt.wantPhone, req.Phone)
		})
	}
}

func TestUpdateProfileRequestName(t *testing.T) {
	var req bookingsdk.UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	require.Nil(t, req.Name)

	require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Ana"}`), &req))
	require.NotNil(t, req.Name)
	require.Equal(t, "Ana", *req.Name)

	require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &req))
	require.NotNil(t, req.Name)
	require.Empty(t, *req.Name)
}

func TestAPIErrorHelpers(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &bookingsdk.APIError{StatusCode: http.StatusNotFound, Code: "not_found"})
	require.True(t, bookingsdk.IsNotFound(err))
	require.False(t, bookingsdk.IsForbidden(err))
	require.Equal(t, http.StatusNotFound, bookingsdk.StatusCode(err))
	require.Zero(t, bookingsdk.StatusCode(errors.New("plain")))
}
