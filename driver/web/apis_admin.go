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

	"github.com/gorilla/mux"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

const (
	actionReview logutils.MessageActionType = "reviewing"
)

// AdminApisHandler handles the admin rest APIs implementation
type AdminApisHandler struct {
	coreAPIs *core.APIs
}

// getAccountRequests gives the account requests of an organization, optionally filtered by status
func (h AdminApisHandler) getAccountRequests(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	orgID := mux.Vars(r)["id"]
	if len(orgID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}
	status := utils.StringOrNil(r.URL.Query().Get("status"))

	requests, err := h.coreAPIs.Administration.AdmGetAccountRequests(user.ID, orgID, status)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeAccountRequest, nil, err, utils.HTTPStatusForError(err), true)
	}

	data, err := json.Marshal(accountRequestsToDef(requests))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeAccountRequest, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h AdminApisHandler) approveAccountRequest(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	return h.reviewAccountRequest(l, r, user, h.coreAPIs.Administration.AdmApproveAccountRequest)
}

func (h AdminApisHandler) denyAccountRequest(l *logs.Log, r *http.Request, user *model.User) logs.HTTPResponse {
	return h.reviewAccountRequest(l, r, user, h.coreAPIs.Administration.AdmDenyAccountRequest)
}

type reviewFunc = func(adminID string, orgID string, requestID string, note *string, l *logs.Log) (*model.AccountRequest, error)

func (h AdminApisHandler) reviewAccountRequest(l *logs.Log, r *http.Request, user *model.User, review reviewFunc) logs.HTTPResponse {
	params := mux.Vars(r)
	orgID := params["id"]
	if len(orgID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}
	requestID := params["request_id"]
	if len(requestID) <= 0 {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("request_id"), nil, http.StatusBadRequest, false)
	}

	//the body is optional
	var requestData accountRequestReviewDef
	if r.ContentLength != 0 {
		response := decodeRequestBody(l, r, &requestData)
		if response != nil {
			return *response
		}
	}

	request, err := review(user.ID, orgID, requestID, requestData.Note, l)
	if err != nil {
		return l.HTTPResponseErrorAction(actionReview, model.TypeAccountRequest, &logutils.FieldArgs{"id": requestID}, err, utils.HTTPStatusForError(err), true)
	}

	data, err := json.Marshal(accountRequestToDef(*request))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeAccountRequest, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

// NewAdminApisHandler creates new rest admin Handler instance
func NewAdminApisHandler(coreAPIs *core.APIs) AdminApisHandler {
	return AdminApisHandler{coreAPIs: coreAPIs}
}
