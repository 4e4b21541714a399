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
	"pack-portal/core/model"
	"pack-portal/utils"

	"github.com/google/uuid"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

func (app *application) serSubmitRSVP(userID string, eventID string, status string, attendees *int, notes *string) (*model.RSVP, error) {
	err := checkUser(userID)
	if err != nil {
		return nil, err
	}
	if !model.IsRSVPResponseStatus(status) {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeRSVPStatus, logutils.StringArgs(status)).SetStatus(utils.ErrorStatusInvalid)
	}
	if attendees != nil && *attendees < 0 {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeRSVP, logutils.StringArgs("attendees")).SetStatus(utils.ErrorStatusInvalid)
	}

	event, err := app.storage.FindEvent(eventID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeEvent, &logutils.FieldArgs{"id": eventID}, err)
	}
	if event == nil || !event.IsActive {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeEvent, &logutils.FieldArgs{"id": eventID}).SetStatus(utils.ErrorStatusNotFound)
	}
	if !event.RequiresRSVP {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeEvent, logutils.StringArgs("rsvp not required")).SetStatus(utils.ErrorStatusInvalid)
	}

	now := app.now()
	if event.RSVPDeadline != nil && event.RSVPDeadline.Before(now) {
		return nil, errors.ErrorData(logutils.StatusInvalid, model.TypeRSVPDeadline, &logutils.FieldArgs{"event_id": eventID}).SetStatus(utils.ErrorStatusConflict)
	}

	rsvp := model.RSVP{ID: uuid.NewString(), EventID: eventID, UserID: userID, OrganizationID: event.OrganizationID,
		Status: status, Attendees: attendees, Notes: notes, SubmittedAt: now}
	err = app.storage.SaveRSVP(rsvp)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionSave, model.TypeRSVP, &logutils.FieldArgs{"event_id": eventID}, err)
	}

	return &rsvp, nil
}
