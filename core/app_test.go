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
	"pack-portal/core/mocks"
	"pack-portal/core/model"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestApplication(storage interfaces.Storage, emailer interfaces.Emailer, pushSender interfaces.PushSender) *application {
	logger := logs.NewLogger("test", nil)
	return &application{env: "local", version: "1.1.1", build: "build", storage: storage, emailer: emailer,
		pushSender: pushSender, logger: logger, now: func() time.Time { return testNow }}
}

func newTestLog() *logs.Log {
	return logs.NewLogger("test", nil).NewLog("1", logs.RequestContext{})
}

func stringRef(value string) *string {
	return &value
}

func timeRef(value time.Time) *time.Time {
	return &value
}

func testOrganization(id string, name string) *model.Organization {
	return &model.Organization{ID: id, Name: name, Type: "pack", Components: []string{"event-management", "calendar"},
		DateCreated: testNow.Add(-365 * 24 * time.Hour)}
}

func testMembership(orgID string, userID string, role string) model.Membership {
	return model.Membership{ID: orgID + "_" + userID, UserID: userID, UserEmail: userID + "@example.com", UserName: userID,
		OrganizationID: orgID, Role: role, JoinedAt: testNow.Add(-30 * 24 * time.Hour), IsActive: true}
}

func testEvent(id string, orgID string, requiresRSVP bool, isPublic bool) model.Event {
	return model.Event{ID: id, OrganizationID: orgID, Title: stringRef("Event " + id),
		StartDate: timeRef(testNow.Add(10 * 24 * time.Hour)), EndDate: timeRef(testNow.Add(10*24*time.Hour + 2*time.Hour)),
		IsPublic: isPublic, IsActive: true, RequiresRSVP: requiresRSVP, CreatedBy: "leader", DateCreated: timeRef(testNow.Add(-24 * time.Hour))}
}

func testRSVP(eventID string, userID string, status string) model.RSVP {
	return model.RSVP{ID: "rsvp_" + eventID, EventID: eventID, UserID: userID, Status: status, SubmittedAt: testNow.Add(-time.Hour)}
}

// expectMemberships sets up a user belonging to the given organizations, in order
func expectMemberships(storage *mocks.Storage, userID string, organizations ...*model.Organization) {
	memberships := make([]model.Membership, len(organizations))
	for i, organization := range organizations {
		memberships[i] = testMembership(organization.ID, userID, model.MembershipRoleMember)
		storage.On("FindOrganization", organization.ID).Return(organization, nil).Maybe()
	}
	storage.On("FindUserMemberships", userID).Return(memberships, nil)
	storage.On("SaveUserOrganizationsCache", mock.AnythingOfType("model.UserOrganizationsCache")).Return(nil).Maybe()
}

// expectSyncStatus accepts the sync status bookkeeping done after every aggregation
func expectSyncStatus(storage *mocks.Storage, userID string) {
	storage.On("FindSyncStatus", userID).Return(nil, nil).Maybe()
	storage.On("SaveSyncStatus", mock.AnythingOfType("model.SyncStatus")).Return(nil).Maybe()
}
