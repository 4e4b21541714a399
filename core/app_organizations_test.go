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
	"errors"
	"pack-portal/core/mocks"
	"pack-portal/core/model"
	"testing"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func TestDiscoverUserOrganizations(t *testing.T) {
	organization := testOrganization("org1", "Pack 12")
	organization.Components = []string{"event-management", "store", "unknown", "calendar", "event-management"}
	leader := testMembership("org1", "user", model.MembershipRoleLeader)
	removed := testMembership("org_removed", "user", model.MembershipRoleMember)

	var cached model.UserOrganizationsCache
	storage := mocks.NewStorage(t)
	storage.On("FindUserMemberships", "user").Return([]model.Membership{leader, removed}, nil)
	storage.On("FindOrganization", "org1").Return(organization, nil)
	storage.On("FindOrganization", "org_removed").Return(nil, nil)
	storage.On("SaveUserOrganizationsCache", mock.AnythingOfType("model.UserOrganizationsCache")).
		Run(func(args mock.Arguments) { cached = args.Get(0).(model.UserOrganizationsCache) }).Return(errors.New("write conflict"))

	app := newTestApplication(storage, nil, nil)
	organizations, err := app.serDiscoverUserOrganizations("user", newTestLog())
	assert.NilError(t, err)
	assert.Equal(t, len(organizations), 1)

	userOrganization := organizations[0]
	assert.Equal(t, userOrganization.OrganizationID, "org1")
	assert.Equal(t, userOrganization.OrganizationName, "Pack 12")
	assert.Equal(t, userOrganization.UserRole, model.MembershipRoleLeader)
	assert.Equal(t, userOrganization.JoinedAt, leader.JoinedAt)
	assert.DeepEqual(t, userOrganization.EnabledServices, []string{"events", "store", "calendar"})

	assert.Equal(t, cached.UserID, "user")
	assert.Equal(t, cached.DateCached, testNow)
	assert.Equal(t, len(cached.Organizations), 1)
}

func TestDiscoverUserOrganizations_StorageErrors(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindUserMemberships", "broken").Return(nil, errors.New("timeout"))
	storage.On("FindUserMemberships", "user").Return([]model.Membership{testMembership("org1", "user", model.MembershipRoleMember)}, nil)
	storage.On("FindOrganization", "org1").Return(nil, errors.New("timeout"))

	app := newTestApplication(storage, nil, nil)

	organizations := app.discoverUserOrganizations("broken", newTestLog())
	assert.Assert(t, organizations != nil)
	assert.Equal(t, len(organizations), 0)

	organizations = app.discoverUserOrganizations("user", newTestLog())
	assert.Equal(t, len(organizations), 0)
	storage.AssertNumberOfCalls(t, "SaveUserOrganizationsCache", 0)
}

func TestDiscoverUserOrganizations_DuplicateMemberships(t *testing.T) {
	inactive := testMembership("org1", "user", model.MembershipRoleMember)
	inactive.ID = "m-old"
	inactive.IsActive = false
	active := testMembership("org1", "user", model.MembershipRoleLeader)
	active.ID = "m-new"
	other := testMembership("org2", "user", model.MembershipRoleMember)

	storage := mocks.NewStorage(t)
	storage.On("FindUserMemberships", "user").Return([]model.Membership{inactive, other, active}, nil)
	storage.On("FindOrganization", "org1").Return(testOrganization("org1", "Pack 12"), nil).Once()
	storage.On("FindOrganization", "org2").Return(testOrganization("org2", "Troop 7"), nil).Once()
	storage.On("SaveUserOrganizationsCache", mock.AnythingOfType("model.UserOrganizationsCache")).Return(nil)

	app := newTestApplication(storage, nil, nil)
	organizations := app.discoverUserOrganizations("user", newTestLog())
	assert.Equal(t, len(organizations), 2)
	assert.Equal(t, organizations[0].OrganizationID, "org1")
	assert.Equal(t, organizations[0].IsActive, true)
	assert.Equal(t, organizations[0].UserRole, model.MembershipRoleLeader)
	assert.Equal(t, organizations[1].OrganizationID, "org2")
}
