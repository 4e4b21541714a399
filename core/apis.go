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
	"pack-portal/core/interfaces"
	"pack-portal/core/model"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

// APIs exposes to the drivers adapters access to the core functionality
type APIs struct {
	Services       interfaces.Services       //expose to the drivers adapters
	Administration interfaces.Administration //expose to the drivers adapters

	app *application
}

// Start starts the core part of the application
func (c *APIs) Start() {
	c.app.start()
}

// GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

// NewCoreAPIs creates new CoreAPIs
func NewCoreAPIs(env string, version string, build string, storage interfaces.Storage, emailer interfaces.Emailer,
	pushSender interfaces.PushSender, logger *logs.Logger) *APIs {
	//add application instance
	application := application{env: env, version: version, build: build, storage: storage, emailer: emailer,
		pushSender: pushSender, logger: logger, now: func() time.Time { return time.Now().UTC() }}

	//add coreAPIs instance
	servicesImpl := &servicesImpl{app: &application}
	administrationImpl := &administrationImpl{app: &application}

	coreAPIs := APIs{Services: servicesImpl, Administration: administrationImpl, app: &application}

	return &coreAPIs
}

///

// servicesImpl
type servicesImpl struct {
	app *application
}

func (s *servicesImpl) SerGetVersion() string {
	return s.app.version
}

func (s *servicesImpl) SerDiscoverUserOrganizations(userID string, l *logs.Log) ([]model.UserOrganization, error) {
	return s.app.serDiscoverUserOrganizations(userID, l)
}

func (s *servicesImpl) SerGetAggregatedCalendarEvents(userID string, startDate *time.Time, endDate *time.Time, l *logs.Log) ([]model.AggregatedCalendarEvent, error) {
	return s.app.serGetAggregatedCalendarEvents(userID, startDate, endDate, l)
}

func (s *servicesImpl) SerGetCalendarFeed(userID string, startDate *time.Time, endDate *time.Time, l *logs.Log) ([]byte, error) {
	return s.app.serGetCalendarFeed(userID, startDate, endDate, l)
}

func (s *servicesImpl) SerGetSyncPreferences(userID string) (*model.CrossOrgSyncPreferences, error) {
	return s.app.serGetSyncPreferences(userID)
}

func (s *servicesImpl) SerUpdateSyncPreferences(userID string, update model.SyncPreferencesUpdate) (*model.CrossOrgSyncPreferences, error) {
	return s.app.serUpdateSyncPreferences(userID, update)
}

func (s *servicesImpl) SerGetSyncStatus(userID string) (*model.SyncStatus, error) {
	return s.app.serGetSyncStatus(userID)
}

func (s *servicesImpl) SerSubmitRSVP(userID string, eventID string, status string, attendees *int, notes *string) (*model.RSVP, error) {
	return s.app.serSubmitRSVP(userID, eventID, status, attendees, notes)
}

func (s *servicesImpl) SerSubmitAccountRequest(user model.User, orgID string, message *string, l *logs.Log) (*model.AccountRequest, error) {
	return s.app.serSubmitAccountRequest(user, orgID, message, l)
}

func (s *servicesImpl) SerRegisterPushSubscription(userID string, endpoint string, p256dh string, auth string, deviceName string) (*model.PushSubscription, error) {
	return s.app.serRegisterPushSubscription(userID, endpoint, p256dh, auth, deviceName)
}

func (s *servicesImpl) SerDeletePushSubscription(userID string, id string) error {
	return s.app.serDeletePushSubscription(userID, id)
}

///

// administrationImpl
type administrationImpl struct {
	app *application
}

func (s *administrationImpl) AdmGetAccountRequests(adminID string, orgID string, status *string) ([]model.AccountRequest, error) {
	return s.app.admGetAccountRequests(adminID, orgID, status)
}

func (s *administrationImpl) AdmApproveAccountRequest(adminID string, orgID string, requestID string, note *string, l *logs.Log) (*model.AccountRequest, error) {
	return s.app.admApproveAccountRequest(adminID, orgID, requestID, note, l)
}

func (s *administrationImpl) AdmDenyAccountRequest(adminID string, orgID string, requestID string, note *string, l *logs.Log) (*model.AccountRequest, error) {
	return s.app.admDenyAccountRequest(adminID, orgID, requestID, note, l)
}

///
