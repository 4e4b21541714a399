// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"gotest.tools/assert"
)

const testTokenSecret = "test-token-secret"

func newTestToken(t *testing.T, subject string, expiresAt time.Time, method jwt.SigningMethod, secret string) string {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject, ExpiresAt: jwt.NewNumericDate(expiresAt)},
		Email:            subject + "@example.com",
		Name:             "Akela " + subject,
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	assert.NilError(t, err)
	return token
}

func newTestAuth(t *testing.T) *Auth {
	auth, err := NewAuth(testTokenSecret, logs.NewLogger("test", nil))
	assert.NilError(t, err)
	return auth
}

func TestNewAuth_MissingSecret(t *testing.T) {
	_, err := NewAuth("", logs.NewLogger("test", nil))
	assert.Assert(t, err != nil)
}

func TestServicesAuthCheck(t *testing.T) {
	auth := newTestAuth(t)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID string
	}{
		{name: "valid", header: "Bearer " + newTestToken(t, "user-1", future, jwt.SigningMethodHS256, testTokenSecret),
			wantStatus: http.StatusOK, wantUserID: "user-1"},
		{name: "lowercase scheme", header: "bearer " + newTestToken(t, "user-1", future, jwt.SigningMethodHS256, testTokenSecret),
			wantStatus: http.StatusOK, wantUserID: "user-1"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + newTestToken(t, "user-1", time.Now().Add(-time.Hour), jwt.SigningMethodHS256, testTokenSecret),
			wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + newTestToken(t, "user-1", future, jwt.SigningMethodHS256, "other-secret"),
			wantStatus: http.StatusUnauthorized},
		{name: "wrong algorithm", header: "Bearer " + newTestToken(t, "user-1", future, jwt.SigningMethodHS512, testTokenSecret),
			wantStatus: http.StatusUnauthorized},
		{name: "missing subject", header: "Bearer " + newTestToken(t, "", future, jwt.SigningMethodHS256, testTokenSecret),
			wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/portal/services/organizations", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			status, user, err := auth.servicesAuth.check(req)
			assert.Equal(t, status, tt.wantStatus)
			if tt.wantUserID == "" {
				assert.Assert(t, err != nil)
				assert.Assert(t, user == nil)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, user.ID, tt.wantUserID)
			assert.Equal(t, user.Email, tt.wantUserID+"@example.com")
		})
	}
}
