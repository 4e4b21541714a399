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
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"gopkg.in/go-playground/validator.v9"
)

func (app *application) serRegisterPushSubscription(userID string, endpoint string, p256dh string, auth string, deviceName string) (*model.PushSubscription, error) {
	err := checkUser(userID)
	if err != nil {
		return nil, err
	}

	subscription := model.PushSubscription{ID: uuid.NewString(), UserID: userID, Endpoint: endpoint, P256dh: p256dh,
		Auth: auth, DeviceName: deviceName, DateCreated: app.now()}
	validate := validator.New()
	err = validate.Struct(subscription)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionValidate, model.TypePushSubscription, nil, err).SetStatus(utils.ErrorStatusInvalid)
	}

	err = app.storage.InsertPushSubscription(subscription)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypePushSubscription, nil, err)
	}
	return &subscription, nil
}

func (app *application) serDeletePushSubscription(userID string, id string) error {
	err := checkUser(userID)
	if err != nil {
		return err
	}

	err = app.storage.DeletePushSubscription(userID, id)
	if err != nil {
		return utils.KeepStatus(errors.WrapErrorAction(logutils.ActionDelete, model.TypePushSubscription, &logutils.FieldArgs{"id": id}, err), err)
	}
	return nil
}

// notifyOrganizationAdmins sends the notification to every active admin of the organization by email and push.
// It is best effort - failures are logged and never returned.
func (app *application) notifyOrganizationAdmins(orgID string, notification model.Notification, l *logs.Log) {
	admins, err := app.storage.FindOrganizationAdmins(orgID)
	if err != nil {
		l.Errorf("error finding admins of organization %s - %s", orgID, err)
		return
	}
	if len(admins) == 0 {
		l.Infof("organization %s has no admins to notify", orgID)
		return
	}

	adminIDs := make([]string, 0, len(admins))
	for _, admin := range admins {
		if !admin.IsAdmin() {
			continue
		}
		adminIDs = append(adminIDs, admin.UserID)
		app.sendEmail(admin.UserEmail, notification, l)
	}

	app.sendPush(adminIDs, notification, l)
}

// sendEmail emails the notification. Failures are logged.
func (app *application) sendEmail(email string, notification model.Notification, l *logs.Log) {
	if email == "" || app.emailer == nil {
		return
	}
	err := app.emailer.Send(email, notification.Title, notification.Body, nil)
	if err != nil {
		l.Warnf("error sending %s email to %s - %s", notification.Tag, email, err)
	}
}

// sendPush pushes the notification to all subscriptions of the users. Expired subscriptions are removed.
func (app *application) sendPush(userIDs []string, notification model.Notification, l *logs.Log) {
	if len(userIDs) == 0 || app.pushSender == nil {
		return
	}

	subscriptions, err := app.storage.FindPushSubscriptions(userIDs)
	if err != nil {
		l.Warnf("error finding push subscriptions - %s", err)
		return
	}

	for _, subscription := range subscriptions {
		err = app.pushSender.Send(subscription, notification)
		if err == nil {
			continue
		}
		if utils.ErrorStatus(err) == utils.ErrorStatusGone {
			l.Infof("removing expired push subscription %s", subscription.ID)
			err = app.storage.DeletePushSubscriptionByEndpoint(subscription.Endpoint)
			if err != nil {
				l.Warnf("error removing expired push subscription %s - %s", subscription.ID, err)
			}
			continue
		}
		l.Warnf("error sending push to subscription %s - %s", subscription.ID, err)
	}
}
