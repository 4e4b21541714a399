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
	"pack-portal/core/model"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

const (
	typeCheckAdminAuthRequestToken    logutils.MessageActionType = "checking admin auth"
	typeCheckServicesAuthRequestToken logutils.MessageActionType = "checking services auth"

	typeAuthorizationHeader logutils.MessageDataType = "authorization header"
	typeTokenClaims         logutils.MessageDataType = "token claims"
)

// Auth handler
type Auth struct {
	servicesAuth *ServicesAuth
	adminAuth    *AdminAuth

	logger *logs.Logger
}

// Authorization is an interface for auth types
type Authorization interface {
	check(req *http.Request) (int, *model.User, error)
}

// Start starts the auth module
func (auth *Auth) Start() error {
	auth.logger.Info("Auth -> start")

	auth.servicesAuth.start()
	auth.adminAuth.start()

	return nil
}

// NewAuth creates new auth handler
func NewAuth(tokenSecret string, logger *logs.Logger) (*Auth, error) {
	if tokenSecret == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, logutils.TypeToken, logutils.StringArgs("secret"))
	}
	tokenAuth := newTokenAuth([]byte(tokenSecret))

	servicesAuth := &ServicesAuth{tokenAuth: tokenAuth, logger: logger}
	adminAuth := &AdminAuth{tokenAuth: tokenAuth, logger: logger}

	return &Auth{servicesAuth: servicesAuth, adminAuth: adminAuth, logger: logger}, nil
}

// tokenClaims are the claims of the portal access tokens
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenAuth verifies HS256 access tokens issued with the shared secret
type TokenAuth struct {
	secret []byte
	parser *jwt.Parser
}

// checkRequestToken gives the user the bearer token of the request belongs to
func (t *TokenAuth) checkRequestToken(req *http.Request) (*model.User, error) {
	header := req.Header.Get("Authorization")
	if header == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, typeAuthorizationHeader, nil)
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return nil, errors.ErrorData(logutils.StatusInvalid, typeAuthorizationHeader, nil)
	}

	claims := tokenClaims{}
	_, err := t.parser.ParseWithClaims(strings.TrimSpace(token), &claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionValidate, logutils.TypeToken, nil, err)
	}
	if claims.Subject == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, typeTokenClaims, logutils.StringArgs("sub"))
	}

	return &model.User{ID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}

func newTokenAuth(secret []byte) *TokenAuth {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	return &TokenAuth{secret: secret, parser: parser}
}

// ServicesAuth entity
type ServicesAuth struct {
	tokenAuth *TokenAuth
	logger    *logs.Logger
}

func (auth *ServicesAuth) start() {
	auth.logger.Info("ServicesAuth -> start")
}

func (auth *ServicesAuth) check(req *http.Request) (int, *model.User, error) {
	user, err := auth.tokenAuth.checkRequestToken(req)
	if err != nil {
		return http.StatusUnauthorized, nil, errors.WrapErrorAction(typeCheckServicesAuthRequestToken, logutils.TypeToken, nil, err)
	}
	return http.StatusOK, user, nil
}

// AdminAuth entity. The admin role itself is checked by core against the organization memberships.
type AdminAuth struct {
	tokenAuth *TokenAuth
	logger    *logs.Logger
}

func (auth *AdminAuth) start() {
	auth.logger.Info("AdminAuth -> start")
}

func (auth *AdminAuth) check(req *http.Request) (int, *model.User, error) {
	user, err := auth.tokenAuth.checkRequestToken(req)
	if err != nil {
		return http.StatusUnauthorized, nil, errors.WrapErrorAction(typeCheckAdminAuthRequestToken, logutils.TypeToken, nil, err)
	}
	return http.StatusOK, user, nil
}
