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

package core

import (
	"fmt"
	"pack-portal/core/interfaces"
	"pack-portal/core/model"
	"pack-portal/utils"

	"github.com/google/uuid"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"gopkg.in/go-playground/validator.v9"
)

const (
	notificationTagAccountRequest         string = "account_request"
	notificationTagAccountRequestReviewed string = "account_request_reviewed"
)

func (app *application) serSubmitAccountRequest(user model.User, orgID string, message *string, l *logs.Log) (*model.AccountRequest, error) {
	err := checkUser(user.ID)
	if err != nil {
		return nil, err
	}

	organization, err := app.findOrganization(orgID)
	if err != nil {
		return nil, err
	}

	membership, err := app.storage.FindMembership(orgID, user.ID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, &logutils.FieldArgs{"org_id": orgID, "user_id": user.ID}, err)
	}
	if membership != nil && membership.IsActive {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeMembership, &logutils.FieldArgs{"org_id": orgID, "user_id": user.ID}).SetStatus(utils.ErrorStatusConflict)
	}

	pendingStatus := model.AccountRequestStatusPending
	pending, err := app.storage.FindAccountRequests(orgID, &user.ID, &pendingStatus)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccountRequest, &logutils.FieldArgs{"org_id": orgID, "user_id": user.ID}, err)
	}
	if len(pending) > 0 {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeAccountRequest, &logutils.FieldArgs{"org_id": orgID, "user_id": user.ID}).SetStatus(utils.ErrorStatusConflict)
	}

	request := model.AccountRequest{ID: uuid.NewString(), OrganizationID: orgID, UserID: user.ID, Email: user.Email,
		Name: user.Name, Message: message, Status: model.AccountRequestStatusPending, DateCreated: app.now()}
	validate := validator.New()
	err = validate.Struct(request)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionValidate, model.TypeAccountRequest, nil, err).SetStatus(utils.ErrorStatusInvalid)
	}

	err = app.storage.InsertAccountRequest(request)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeAccountRequest, nil, err)
	}

	notification := model.Notification{Title: fmt.Sprintf("New account request for %s", organization.Name),
		Body: fmt.Sprintf("%s (%s) asked to join %s.", request.Name, request.Email, organization.Name),
		URL:  fmt.Sprintf("/admin/organizations/%s/account-requests", orgID), Tag: notificationTagAccountRequest}
	app.notifyOrganizationAdmins(orgID, notification, l)

	return &request, nil
}

func (app *application) admGetAccountRequests(adminID string, orgID string, status *string) ([]model.AccountRequest, error) {
	err := app.checkOrganizationAdmin(adminID, orgID)
	if err != nil {
		return nil, err
	}
	if status != nil && !model.IsAccountRequestStatus(*status) {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeAccountRequestStatus, logutils.StringArgs(*status)).SetStatus(utils.ErrorStatusInvalid)
	}

	requests, err := app.storage.FindAccountRequests(orgID, nil, status)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccountRequest, &logutils.FieldArgs{"org_id": orgID}, err)
	}
	if requests == nil {
		requests = []model.AccountRequest{}
	}
	return requests, nil
}

func (app *application) admApproveAccountRequest(adminID string, orgID string, requestID string, note *string, l *logs.Log) (*model.AccountRequest, error) {
	return app.reviewAccountRequest(adminID, orgID, requestID, model.AccountRequestStatusApproved, note, l)
}

func (app *application) admDenyAccountRequest(adminID string, orgID string, requestID string, note *string, l *logs.Log) (*model.AccountRequest, error) {
	return app.reviewAccountRequest(adminID, orgID, requestID, model.AccountRequestStatusDenied, note, l)
}

// reviewAccountRequest approves or denies a pending request. Approving makes the requester a member.
func (app *application) reviewAccountRequest(adminID string, orgID string, requestID string, status string, note *string, l *logs.Log) (*model.AccountRequest, error) {
	err := app.checkOrganizationAdmin(adminID, orgID)
	if err != nil {
		return nil, err
	}

	organization, err := app.findOrganization(orgID)
	if err != nil {
		return nil, err
	}

	var reviewed *model.AccountRequest
	transaction := func(storage interfaces.Storage) error {
		//1. find the pending request
		request, err := storage.FindAccountRequest(requestID)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionFind, model.TypeAccountRequest, &logutils.FieldArgs{"id": requestID}, err)
		}
		if request == nil || request.OrganizationID != orgID {
			return errors.ErrorData(logutils.StatusMissing, model.TypeAccountRequest, &logutils.FieldArgs{"id": requestID}).SetStatus(utils.ErrorStatusNotFound)
		}
		if request.Status != model.AccountRequestStatusPending {
			return errors.ErrorData(logutils.StatusInvalid, model.TypeAccountRequestStatus, logutils.StringArgs(request.Status)).SetStatus(utils.ErrorStatusConflict)
		}

		//2. update the request
		now := app.now()
		request.Status = status
		request.ReviewedBy = &adminID
		request.ReviewNote = note
		request.DateUpdated = &now
		err = storage.UpdateAccountRequest(*request)
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeAccountRequest, &logutils.FieldArgs{"id": requestID}, err)
		}

		//3. add the membership or reactivate the one the user had
		if status == model.AccountRequestStatusApproved {
			existing, err := storage.FindMembership(orgID, request.UserID)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, &logutils.FieldArgs{"org_id": orgID, "user_id": request.UserID}, err)
			}

			membership := model.Membership{ID: uuid.NewString(), UserID: request.UserID, UserEmail: request.Email,
				UserName: request.Name, OrganizationID: orgID, Role: model.MembershipRoleMember, JoinedAt: now, IsActive: true}
			if existing != nil {
				membership.ID = existing.ID
				membership.Role = existing.Role
				membership.DateUpdated = &now
			}
			err = storage.SaveMembership(membership)
			if err != nil {
				return errors.WrapErrorAction(logutils.ActionSave, model.TypeMembership, &logutils.FieldArgs{"org_id": orgID, "user_id": request.UserID}, err)
			}
		}

		reviewed = request
		return nil
	}

	err = app.storage.PerformTransaction(transaction)
	if err != nil {
		return nil, err
	}

	notification := model.Notification{Title: fmt.Sprintf("Your request to join %s was %s", organization.Name, status),
		Body: fmt.Sprintf("Your request to join %s was %s.", organization.Name, status), Tag: notificationTagAccountRequestReviewed}
	if note != nil && *note != "" {
		notification.Body = fmt.Sprintf("%s\n\n%s", notification.Body, *note)
	}
	app.sendEmail(reviewed.Email, notification, l)
	app.sendPush([]string{reviewed.UserID}, notification, l)

	return reviewed, nil
}

// checkOrganizationAdmin fails when the user does not administer the organization
func (app *application) checkOrganizationAdmin(userID string, orgID string) error {
	err := checkUser(userID)
	if err != nil {
		return err
	}

	membership, err := app.storage.FindMembership(orgID, userID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, &logutils.FieldArgs{"org_id": orgID, "user_id": userID}, err)
	}
	if membership == nil || !membership.IsAdmin() {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeMembership, &logutils.FieldArgs{"org_id": orgID, "user_id": userID, "role": model.MembershipRoleAdmin}).SetStatus(utils.ErrorStatusForbidden)
	}
	return nil
}

func (app *application) findOrganization(orgID string) (*model.Organization, error) {
	organization, err := app.storage.FindOrganization(orgID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": orgID}, err)
	}
	if organization == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"id": orgID}).SetStatus(utils.ErrorStatusNotFound)
	}
	return organization, nil
}
