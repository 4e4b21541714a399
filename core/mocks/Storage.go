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

package mocks

import (
	interfaces "pack-portal/core/interfaces"
	model "pack-portal/core/model"
	time "time"

	mock "github.com/stretchr/testify/mock"
)

// Storage is a mock type for the Storage type
type Storage struct {
	mock.Mock
}

// RegisterStorageListener provides a mock function with given fields: listener
func (_m *Storage) RegisterStorageListener(listener interfaces.StorageListener) {
	_m.Called(listener)
}

// PerformTransaction provides a mock function with given fields: _a0
func (_m *Storage) PerformTransaction(_a0 func(interfaces.Storage) error) error {
	ret := _m.Called(_a0)

	var r0 error
	if rf, ok := ret.Get(0).(func(func(interfaces.Storage) error) error); ok {
		r0 = rf(_a0)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindOrganization provides a mock function with given fields: id
func (_m *Storage) FindOrganization(id string) (*model.Organization, error) {
	ret := _m.Called(id)

	var r0 *model.Organization
	if rf, ok := ret.Get(0).(func(string) *model.Organization); ok {
		r0 = rf(id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Organization)
	}

	return r0, ret.Error(1)
}

// FindUserMemberships provides a mock function with given fields: userID
func (_m *Storage) FindUserMemberships(userID string) ([]model.Membership, error) {
	ret := _m.Called(userID)

	var r0 []model.Membership
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Membership)
	}

	return r0, ret.Error(1)
}

// FindMembership provides a mock function with given fields: orgID, userID
func (_m *Storage) FindMembership(orgID string, userID string) (*model.Membership, error) {
	ret := _m.Called(orgID, userID)

	var r0 *model.Membership
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Membership)
	}

	return r0, ret.Error(1)
}

// FindOrganizationAdmins provides a mock function with given fields: orgID
func (_m *Storage) FindOrganizationAdmins(orgID string) ([]model.Membership, error) {
	ret := _m.Called(orgID)

	var r0 []model.Membership
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Membership)
	}

	return r0, ret.Error(1)
}

// SaveMembership provides a mock function with given fields: membership
func (_m *Storage) SaveMembership(membership model.Membership) error {
	ret := _m.Called(membership)
	return ret.Error(0)
}

// SaveUserOrganizationsCache provides a mock function with given fields: cache
func (_m *Storage) SaveUserOrganizationsCache(cache model.UserOrganizationsCache) error {
	ret := _m.Called(cache)
	return ret.Error(0)
}

// FindEvent provides a mock function with given fields: id
func (_m *Storage) FindEvent(id string) (*model.Event, error) {
	ret := _m.Called(id)

	var r0 *model.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Event)
	}

	return r0, ret.Error(1)
}

// FindOrganizationEvents provides a mock function with given fields: orgID, startDate, endDate, limit
func (_m *Storage) FindOrganizationEvents(orgID string, startDate *time.Time, endDate *time.Time, limit int64) ([]model.Event, error) {
	ret := _m.Called(orgID, startDate, endDate, limit)

	var r0 []model.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Event)
	}

	return r0, ret.Error(1)
}

// FindUserRSVPs provides a mock function with given fields: userID, eventIDs
func (_m *Storage) FindUserRSVPs(userID string, eventIDs []string) ([]model.RSVP, error) {
	ret := _m.Called(userID, eventIDs)

	var r0 []model.RSVP
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.RSVP)
	}

	return r0, ret.Error(1)
}

// SaveRSVP provides a mock function with given fields: rsvp
func (_m *Storage) SaveRSVP(rsvp model.RSVP) error {
	ret := _m.Called(rsvp)
	return ret.Error(0)
}

// FindSyncPreferences provides a mock function with given fields: userID
func (_m *Storage) FindSyncPreferences(userID string) (*model.CrossOrgSyncPreferences, error) {
	ret := _m.Called(userID)

	var r0 *model.CrossOrgSyncPreferences
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.CrossOrgSyncPreferences)
	}

	return r0, ret.Error(1)
}

// SaveSyncPreferences provides a mock function with given fields: preferences
func (_m *Storage) SaveSyncPreferences(preferences model.CrossOrgSyncPreferences) error {
	ret := _m.Called(preferences)
	return ret.Error(0)
}

// FindSyncStatus provides a mock function with given fields: userID
func (_m *Storage) FindSyncStatus(userID string) (*model.SyncStatus, error) {
	ret := _m.Called(userID)

	var r0 *model.SyncStatus
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.SyncStatus)
	}

	return r0, ret.Error(1)
}

// SaveSyncStatus provides a mock function with given fields: status
func (_m *Storage) SaveSyncStatus(status model.SyncStatus) error {
	ret := _m.Called(status)
	return ret.Error(0)
}

// InsertAccountRequest provides a mock function with given fields: request
func (_m *Storage) InsertAccountRequest(request model.AccountRequest) error {
	ret := _m.Called(request)
	return ret.Error(0)
}

// FindAccountRequest provides a mock function with given fields: id
func (_m *Storage) FindAccountRequest(id string) (*model.AccountRequest, error) {
	ret := _m.Called(id)

	var r0 *model.AccountRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.AccountRequest)
	}

	return r0, ret.Error(1)
}

// FindAccountRequests provides a mock function with given fields: orgID, userID, status
func (_m *Storage) FindAccountRequests(orgID string, userID *string, status *string) ([]model.AccountRequest, error) {
	ret := _m.Called(orgID, userID, status)

	var r0 []model.AccountRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.AccountRequest)
	}

	return r0, ret.Error(1)
}

// UpdateAccountRequest provides a mock function with given fields: request
func (_m *Storage) UpdateAccountRequest(request model.AccountRequest) error {
	ret := _m.Called(request)
	return ret.Error(0)
}

// InsertPushSubscription provides a mock function with given fields: subscription
func (_m *Storage) InsertPushSubscription(subscription model.PushSubscription) error {
	ret := _m.Called(subscription)
	return ret.Error(0)
}

// FindPushSubscriptions provides a mock function with given fields: userIDs
func (_m *Storage) FindPushSubscriptions(userIDs []string) ([]model.PushSubscription, error) {
	ret := _m.Called(userIDs)

	var r0 []model.PushSubscription
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.PushSubscription)
	}

	return r0, ret.Error(1)
}

// DeletePushSubscription provides a mock function with given fields: userID, id
func (_m *Storage) DeletePushSubscription(userID string, id string) error {
	ret := _m.Called(userID, id)
	return ret.Error(0)
}

// DeletePushSubscriptionByEndpoint provides a mock function with given fields: endpoint
func (_m *Storage) DeletePushSubscriptionByEndpoint(endpoint string) error {
	ret := _m.Called(endpoint)
	return ret.Error(0)
}

type mockConstructorTestingTNewStorage interface {
	mock.TestingT
	Cleanup(func())
}

// NewStorage creates a new instance of Storage. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStorage(t mockConstructorTestingTNewStorage) *Storage {
	mock := &Storage{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
