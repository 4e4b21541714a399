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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"pack-portal/core"
	"pack-portal/core/mocks"
	"pack-portal/core/model"
	"pack-portal/utils"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func newTestRouter(t *testing.T, storage *mocks.Storage) *mux.Router {
	logger := logs.NewLogger("test", nil)
	coreAPIs := core.NewCoreAPIs("test", "1.2.3", "", storage, nil, nil, logger)
	adapter := NewWebAdapter("test", "80", "http://localhost", newTestAuth(t), coreAPIs, logger)
	return adapter.routes()
}

func serve(t *testing.T, router *mux.Router, method string, path string, body string, userID string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != "" {
		token := newTestToken(t, userID, time.Now().Add(time.Hour), jwt.SigningMethodHS256, testTokenSecret)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestVersion(t *testing.T) {
	router := newTestRouter(t, mocks.NewStorage(t))

	resp := serve(t, router, http.MethodGet, "/portal/version", "", "")
	assert.Equal(t, resp.Code, http.StatusOK)
	assert.Equal(t, resp.Body.String(), "1.2.3")
}

func TestServicesRequireToken(t *testing.T) {
	router := newTestRouter(t, mocks.NewStorage(t))

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/portal/services/organizations"},
		{http.MethodGet, "/portal/services/calendar/events"},
		{http.MethodGet, "/portal/services/sync/preferences"},
		{http.MethodPut, "/portal/services/events/e1/rsvp"},
		{http.MethodGet, "/portal/admin/organizations/org1/account-requests"},
	}
	for _, p := range paths {
		resp := serve(t, router, p.method, p.path, "", "")
		assert.Equal(t, resp.Code, http.StatusUnauthorized, p.path)
	}
}

func TestGetSyncPreferences_Defaults(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindSyncPreferences", "user-1").Return(nil, nil)
	router := newTestRouter(t, storage)

	resp := serve(t, router, http.MethodGet, "/portal/services/sync/preferences", "", "user-1")
	assert.Equal(t, resp.Code, http.StatusOK)

	var preferences syncPreferencesDef
	assert.NilError(t, json.Unmarshal(resp.Body.Bytes(), &preferences))
	assert.Equal(t, preferences.UserID, "user-1")
	assert.Equal(t, preferences.Enabled, true)
	assert.Equal(t, preferences.SyncFrequency, model.SyncFrequencyHourly)
	assert.Equal(t, preferences.SyncSettings.Events.IncludePending, true)
	assert.Equal(t, preferences.SyncSettings.Events.AutoDeclineAfterDeadline, false)
	assert.Equal(t, preferences.SyncSettings.Documents.Enabled, false)
}

func TestUpdateSyncPreferences(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindSyncPreferences", "user-1").Return(nil, nil)
	storage.On("SaveSyncPreferences", mock.MatchedBy(func(preferences model.CrossOrgSyncPreferences) bool {
		return preferences.SyncFrequency == model.SyncFrequencyDaily && preferences.SyncSettings.Events.IncludePublic &&
			!preferences.OrganizationOverrides["org1"].Enabled
	})).Return(nil)
	router := newTestRouter(t, storage)

	body := `{"syncFrequency":"daily","syncSettings":{"events":{"includePublic":true}},"organizationOverrides":{"org1":{"enabled":false}}}`
	resp := serve(t, router, http.MethodPut, "/portal/services/sync/preferences", body, "user-1")
	assert.Equal(t, resp.Code, http.StatusOK)

	var preferences syncPreferencesDef
	assert.NilError(t, json.Unmarshal(resp.Body.Bytes(), &preferences))
	assert.Equal(t, preferences.SyncFrequency, model.SyncFrequencyDaily)
	assert.Equal(t, preferences.SyncSettings.Events.IncludePending, true)
}

func TestUpdateSyncPreferences_InvalidFrequency(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindSyncPreferences", "user-1").Return(nil, nil)
	router := newTestRouter(t, storage)

	resp := serve(t, router, http.MethodPut, "/portal/services/sync/preferences", `{"syncFrequency":"weekly"}`, "user-1")
	assert.Equal(t, resp.Code, http.StatusBadRequest)
	storage.AssertNumberOfCalls(t, "SaveSyncPreferences", 0)
}

func TestGetCalendarEvents(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindSyncPreferences", "user-1").Return(nil, nil)
	storage.On("FindUserMemberships", "user-1").Return([]model.Membership{}, nil)
	storage.On("SaveUserOrganizationsCache", mock.AnythingOfType("model.UserOrganizationsCache")).Return(nil).Maybe()
	storage.On("FindSyncStatus", "user-1").Return(nil, nil).Maybe()
	storage.On("SaveSyncStatus", mock.AnythingOfType("model.SyncStatus")).Return(nil).Maybe()
	router := newTestRouter(t, storage)

	resp := serve(t, router, http.MethodGet, "/portal/services/calendar/events?start=2024-03-01T00:00:00Z", "", "user-1")
	assert.Equal(t, resp.Code, http.StatusOK)
	assert.Equal(t, strings.TrimSpace(resp.Body.String()), "[]")
}

func TestGetCalendarEvents_InvalidDate(t *testing.T) {
	router := newTestRouter(t, mocks.NewStorage(t))

	resp := serve(t, router, http.MethodGet, "/portal/services/calendar/events?end=yesterday", "", "user-1")
	assert.Equal(t, resp.Code, http.StatusBadRequest)
}

func TestSubmitRSVP_InvalidBody(t *testing.T) {
	router := newTestRouter(t, mocks.NewStorage(t))

	resp := serve(t, router, http.MethodPut, "/portal/services/events/e1/rsvp", `{"attendees":2}`, "user-1")
	assert.Equal(t, resp.Code, http.StatusBadRequest)

	resp = serve(t, router, http.MethodPut, "/portal/services/events/e1/rsvp", `{not json`, "user-1")
	assert.Equal(t, resp.Code, http.StatusBadRequest)
}

func TestSubmitRSVP_EventNotFound(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindEvent", "e1").Return(nil, nil)
	router := newTestRouter(t, storage)

	resp := serve(t, router, http.MethodPut, "/portal/services/events/e1/rsvp", `{"status":"going"}`, "user-1")
	assert.Equal(t, resp.Code, http.StatusNotFound)
}

func TestRegisterPushSubscription_InvalidBody(t *testing.T) {
	router := newTestRouter(t, mocks.NewStorage(t))

	resp := serve(t, router, http.MethodPost, "/portal/services/push-subscriptions", `{"endpoint":"not a url","keys":{"p256dh":"k","auth":"a"}}`, "user-1")
	assert.Equal(t, resp.Code, http.StatusBadRequest)
}

func TestGetAccountRequests_NotAdmin(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindMembership", "org1", "user-1").Return(&model.Membership{ID: "m1", OrganizationID: "org1", UserID: "user-1",
		Role: model.MembershipRoleMember, IsActive: true}, nil)
	router := newTestRouter(t, storage)

	resp := serve(t, router, http.MethodGet, "/portal/admin/organizations/org1/account-requests", "", "user-1")
	assert.Equal(t, resp.Code, http.StatusForbidden)
}

func TestGetAccountRequests(t *testing.T) {
	pending := model.AccountRequestStatusPending
	storage := mocks.NewStorage(t)
	storage.On("FindMembership", "org1", "admin-1").Return(&model.Membership{ID: "m1", OrganizationID: "org1", UserID: "admin-1",
		Role: model.MembershipRoleAdmin, IsActive: true}, nil)
	storage.On("FindAccountRequests", "org1", (*string)(nil), &pending).Return([]model.AccountRequest{
		{ID: "r1", OrganizationID: "org1", UserID: "user-2", Email: "user-2@example.com", Name: "Parent", Status: pending},
	}, nil)
	router := newTestRouter(t, storage)

	resp := serve(t, router, http.MethodGet, "/portal/admin/organizations/org1/account-requests?status=pending", "", "admin-1")
	assert.Equal(t, resp.Code, http.StatusOK)

	var requests []accountRequestDef
	assert.NilError(t, json.Unmarshal(resp.Body.Bytes(), &requests))
	assert.Equal(t, len(requests), 1)
	assert.Equal(t, requests[0].ID, "r1")
	assert.Equal(t, requests[0].Status, pending)
}

func TestDeletePushSubscription(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("DeletePushSubscription", "user-1", "sub1").Return(nil)
	storage.On("DeletePushSubscription", "user-1", "missing").Return(
		errors.ErrorData(logutils.StatusMissing, model.TypePushSubscription, nil).SetStatus(utils.ErrorStatusNotFound))
	router := newTestRouter(t, storage)

	resp := serve(t, router, http.MethodDelete, "/portal/services/push-subscriptions/sub1", "", "user-1")
	assert.Equal(t, resp.Code, http.StatusOK)

	resp = serve(t, router, http.MethodDelete, "/portal/services/push-subscriptions/missing", "", "user-1")
	assert.Equal(t, resp.Code, http.StatusNotFound)
}
