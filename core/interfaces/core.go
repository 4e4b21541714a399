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

package interfaces

import (
	"pack-portal/core/model"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

// Services exposes APIs for the driver adapters
type Services interface {
	SerGetVersion() string

	SerDiscoverUserOrganizations(userID string, l *logs.Log) ([]model.UserOrganization, error)

	SerGetAggregatedCalendarEvents(userID string, startDate *time.Time, endDate *time.Time, l *logs.Log) ([]model.AggregatedCalendarEvent, error)
	SerGetCalendarFeed(userID string, startDate *time.Time, endDate *time.Time, l *logs.Log) ([]byte, error)

	SerGetSyncPreferences(userID string) (*model.CrossOrgSyncPreferences, error)
	SerUpdateSyncPreferences(userID string, update model.SyncPreferencesUpdate) (*model.CrossOrgSyncPreferences, error)
	SerGetSyncStatus(userID string) (*model.SyncStatus, error)

	SerSubmitRSVP(userID string, eventID string, status string, attendees *int, notes *string) (*model.RSVP, error)

	SerSubmitAccountRequest(user model.User, orgID string, message *string, l *logs.Log) (*model.AccountRequest, error)

	SerRegisterPushSubscription(userID string, endpoint string, p256dh string, auth string, deviceName string) (*model.PushSubscription, error)
	SerDeletePushSubscription(userID string, id string) error
}

// Administration exposes administration APIs for the driver adapters
type Administration interface {
	AdmGetAccountRequests(adminID string, orgID string, status *string) ([]model.AccountRequest, error)
	AdmApproveAccountRequest(adminID string, orgID string, requestID string, note *string, l *logs.Log) (*model.AccountRequest, error)
	AdmDenyAccountRequest(adminID string, orgID string, requestID string, note *string, l *logs.Log) (*model.AccountRequest, error)
}
