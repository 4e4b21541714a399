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
	"pack-portal/core"
	"pack-portal/core/model"
	"pack-portal/utils"
	"time"

	"github.com/gorilla/mux"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"gopkg.in/go-playground/validator.v9"
)

// ServicesApisHandler handles the rest APIs implementation
type ServicesApisHandler struct {
	coreAPIs *core.APIs
}

// version gives the service version
func (h ServicesApisHandler) version(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	return l.HTTPResponseSuccessMessage(h.coreAPIs.Services.SerGetVersion())
}

func (h ServicesApisHandler) getOrganizations(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	organizations, err := h.coreAPIs.Services.SerDiscoverUserOrganizations(user.ID, l)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeUserOrganization, nil, err, utils.HTTPStatusForError(err), true)
	}

	data, err := json.Marshal(userOrganizationsToDef(organizations))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeUserOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

// getCalendarEvents gives the organization events of all the organizations of the user
func (h ServicesApisHandler) getCalendarEvents(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	startDate, endDate, response := getDateRange(l, r)
	if response != nil {
		return *response
	}

	events, err := h.coreAPIs.Services.SerGetAggregatedCalendarEvents(user.ID, startDate, endDate, l)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeAggregatedCalendarEvent, nil, err, utils.HTTPStatusForError(err), true)
	}

	data, err := json.Marshal(aggregatedCalendarEventsToDef(events))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeAggregatedCalendarEvent, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

// getCalendarFeed gives the aggregated events as an iCalendar document
func (h ServicesApisHandler) getCalendarFeed(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	startDate, endDate, response := getDateRange(l, r)
	if response != nil {
		return *response
	}

	data, err := h.coreAPIs.Services.SerGetCalendarFeed(user.ID, startDate, endDate, l)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeCalendarFeed, nil, err, utils.HTTPStatusForError(err), true)
	}

	headers := map[string][]string{
		"Content-Type":        {"text/calendar; charset=utf-8"},
		"Content-Disposition": {`attachment; filename="pack-calendar.ics"`},
	}
	return logs.HTTPResponse{ResponseCode: http.StatusOK, Headers: headers, Body: data}
}

func (h ServicesApisHandler) getSyncPreferences(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	preferences, err := h.coreAPIs.Services.SerGetSyncPreferences(user.ID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeSyncPreferences, nil, err, utils.HTTPStatusForError(err), true)
	}

	data, err := json.Marshal(syncPreferencesToDef(*preferences))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeSyncPreferences, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) updateSyncPreferences(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	var requestData syncPreferencesUpdateDef
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
	}

	preferences, err := h.coreAPIs.Services.SerUpdateSyncPreferences(user.ID, syncPreferencesUpdateFromDef(requestData))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeSyncPreferences, nil, err, utils.HTTPStatusForError(err), true)
	}

	data, err := json.Marshal(syncPreferencesToDef(*preferences))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeSyncPreferences, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) getSyncStatus(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	status, err := h.coreAPIs.Services.SerGetSyncStatus(user.ID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeSyncStatus, nil, err, utils.HTTPStatusForError(err), true)
	}

	data, err := json.Marshal(syncStatusToDef(*status))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeSyncStatus, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) submitRSVP(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	eventID := mux.Vars(r)["id"]
	if len(eventID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData rsvpRequestDef
	response := decodeRequestBody(l, r, &requestData)
	if response != nil {
		return *response
	}

	rsvp, err := h.coreAPIs.Services.SerSubmitRSVP(user.ID, eventID, requestData.Status, requestData.Attendees, requestData.Notes)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionSave, model.TypeRSVP, nil, err, utils.HTTPStatusForError(err), true)
	}

	data, err := json.Marshal(rsvpToDef(*rsvp))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeRSVP, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) submitAccountRequest(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	orgID := mux.Vars(r)["id"]
	if len(orgID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	var requestData accountRequestRequestDef
	response := decodeRequestBody(l, r, &requestData)
	if response != nil {
		return *response
	}

	request, err := h.coreAPIs.Services.SerSubmitAccountRequest(*user, orgID, requestData.Message, l)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionInsert, model.TypeAccountRequest, nil, err, utils.HTTPStatusForError(err), true)
	}

	data, err := json.Marshal(accountRequestToDef(*request))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeAccountRequest, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) registerPushSubscription(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	var requestData pushSubscriptionRequestDef
	response := decodeRequestBody(l, r, &requestData)
	if response != nil {
		return *response
	}

	subscription, err := h.coreAPIs.Services.SerRegisterPushSubscription(user.ID, requestData.Endpoint, requestData.Keys.P256dh,
		requestData.Keys.Auth, requestData.DeviceName)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionInsert, model.TypePushSubscription, nil, err, utils.HTTPStatusForError(err), true)
	}

	data, err := json.Marshal(pushSubscriptionToDef(*subscription))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypePushSubscription, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ServicesApisHandler) deletePushSubscription(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	id := mux.Vars(r)["id"]
	if len(id) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	err := h.coreAPIs.Services.SerDeletePushSubscription(user.ID, id)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypePushSubscription, nil, err, utils.HTTPStatusForError(err), true)
	}
	return l.HTTPResponseSuccess()
}

// getDateRange reads the optional start and end query params
func getDateRange(l *logs.Log, r *http.Request) (*time.Time, *time.Time, *logs.HTTPResponse) {
	startDate, err := utils.ParseTimeParam(r.URL.Query().Get("start"))
	if err != nil {
		response := l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("start"), err, http.StatusBadRequest, true)
		return nil, nil, &response
	}
	endDate, err := utils.ParseTimeParam(r.URL.Query().Get("end"))
	if err != nil {
		response := l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("end"), err, http.StatusBadRequest, true)
		return nil, nil, &response
	}
	return startDate, endDate, nil
}

// decodeRequestBody unmarshals and validates a JSON request body
func decodeRequestBody(l *logs.Log, r *http.Request, requestData interface{}) *logs.HTTPResponse {
	err := json.NewDecoder(r.Body).Decode(requestData)
	if err != nil {
		response := l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
		return &response
	}

	err = validator.New().Struct(requestData)
	if err != nil {
		response := l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, true)
		return &response
	}
	return nil
}

// NewServicesApisHandler creates new rest services Handler instance
func NewServicesApisHandler(coreAPIs *core.APIs) ServicesApisHandler {
	return ServicesApisHandler{coreAPIs: coreAPIs}
}
