package jwtmw

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResolver is a mock implementation of the IdentityResolver interface.
type mockResolver struct {
	ResolveFunc func(ctx context.Context, userID string) (Identity, error)
}

func (m *mockResolver) ResolveGateIdentity(ctx context.Context, userID string) (Identity, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, userID)
	}
	return Identity{}, errors.New("user not found")
}

// gateRouter builds a router with one protected route that echoes the
// resolved identity.
func gateRouter(verifier TokenVerifier, resolver IdentityResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(verifier, resolver), func(c *gin.Context) {
		ident, ok := IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": ident.ID, "email": ident.Email})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	iss := NewIssuer("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	access, _, err := iss.IssuePair("user-1", "test@example.com")
	require.NoError(t, err)

	activeResolver := &mockResolver{
		ResolveFunc: func(ctx context.Context, userID string) (Identity, error) {
			if userID == "user-1" {
				return Identity{ID: "user-1", Email: "test@example.com"}, nil
			}
			return Identity{}, errors.New("user not found")
		},
	}

	tests := []struct {
		name            string
		authHeader      string
		resolver        IdentityResolver
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "missing header",
			authHeader:      "",
			resolver:        activeResolver,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "No token provided",
		},
		{
			name:            "wrong scheme",
			authHeader:      "Basic dXNlcjpwYXNz",
			resolver:        activeResolver,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "No token provided",
		},
		{
			name:            "garbage token",
			authHeader:      "Bearer not.a.jwt",
			resolver:        activeResolver,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid or expired token",
		},
		{
			name:            "deleted user",
			authHeader:      "Bearer " + access,
			resolver:        &mockResolver{},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "User not found or deleted",
		},
		{
			name:           "valid token, active user",
			authHeader:     "Bearer " + access,
			resolver:       activeResolver,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gateRouter(iss, tt.resolver)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "user-1", body["id"])
				assert.Equal(t, "test@example.com", body["email"])
			} else {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, tt.expectedMessage, body["message"])
			}
		})
	}
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	expired := NewIssuer("access-secret", "refresh-secret", -time.Minute, time.Hour)
	access, _, err := expired.IssuePair("user-1", "test@example.com")
	require.NoError(t, err)

	live := NewIssuer("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	r := gateRouter(live, &mockResolver{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestIdentityFrom_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := IdentityFrom(c)
	assert.False(t, ok)
}
