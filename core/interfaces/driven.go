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
)

// Storage interface to communicate with the storage
type Storage interface {
	RegisterStorageListener(listener StorageListener)

	PerformTransaction(func(adapter Storage) error) error

	//Organizations
	FindOrganization(id string) (*model.Organization, error)

	//Memberships
	FindUserMemberships(userID string) ([]model.Membership, error)
	FindMembership(orgID string, userID string) (*model.Membership, error)
	FindOrganizationAdmins(orgID string) ([]model.Membership, error)
	SaveMembership(membership model.Membership) error

	//UserOrganizationsCache
	SaveUserOrganizationsCache(cache model.UserOrganizationsCache) error

	//Events
	FindEvent(id string) (*model.Event, error)
	FindOrganizationEvents(orgID string, startDate *time.Time, endDate *time.Time, limit int64) ([]model.Event, error)

	//RSVPs
	FindUserRSVPs(userID string, eventIDs []string) ([]model.RSVP, error)
	SaveRSVP(rsvp model.RSVP) error

	//SyncPreferences
	FindSyncPreferences(userID string) (*model.CrossOrgSyncPreferences, error)
	SaveSyncPreferences(preferences model.CrossOrgSyncPreferences) error

	//SyncStatus
	FindSyncStatus(userID string) (*model.SyncStatus, error)
	SaveSyncStatus(status model.SyncStatus) error

	//AccountRequests
	InsertAccountRequest(request model.AccountRequest) error
	FindAccountRequest(id string) (*model.AccountRequest, error)
	FindAccountRequests(orgID string, userID *string, status *string) ([]model.AccountRequest, error)
	UpdateAccountRequest(request model.AccountRequest) error

	//PushSubscriptions
	InsertPushSubscription(subscription model.PushSubscription) error
	FindPushSubscriptions(userIDs []string) ([]model.PushSubscription, error)
	DeletePushSubscription(userID string, id string) error
	DeletePushSubscriptionByEndpoint(endpoint string) error
}

// StorageListener represents storage listener
type StorageListener interface {
	OnOrganizationsUpdated()
}

// Emailer is used by core to send emails
type Emailer interface {
	Send(toEmail string, subject string, body string, attachmentFilename *string) error
}

// PushSender is used by core to send web push notifications
type PushSender interface {
	Send(subscription model.PushSubscription, notification model.Notification) error
}
