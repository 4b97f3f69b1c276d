package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dkovalev/adboard/internal/services"
)

func TestUserDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockUserDeleter)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:   "success",
			target: "/user/1",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"user": "deleted"},
		},
		{
			name:   "not found",
			target: "/user/42",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(42)).Return(services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]any{"error": "user 42 not found"},
		},
		{
			name:         "non-numeric id",
			target:       "/user/abc",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid user id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Delete("/user/{user_id}", NewUserDeleteHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
