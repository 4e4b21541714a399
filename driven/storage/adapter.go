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

package storage

import (
	"context"
	"pack-portal/core/interfaces"
	"pack-portal/core/model"
	"pack-portal/utils"
	"strconv"
	"sync"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/syncmap"
)

const (
	typeTransaction    logutils.MessageDataType   = "transaction"
	actionPerform      logutils.MessageActionType = "performing"
	typeStorageAdapter logutils.MessageDataType   = "storage adapter"
	typeMongoSession   logutils.MessageDataType   = "mongo session"
)

// Adapter implements the Storage interface
type Adapter struct {
	db *database

	context mongo.SessionContext

	logger *logs.Logger

	cachedOrganizations *syncmap.Map
	organizationsLock   *sync.RWMutex
}

// Start starts the storage
func (sa *Adapter) Start() error {
	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, typeStorageAdapter, nil, err)
	}

	//register storage listener
	sl := storageListener{adapter: sa}
	sa.RegisterStorageListener(&sl)

	//cache the organizations
	err = sa.cacheOrganizations()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCache, model.TypeOrganization, nil, err)
	}

	return err
}

// RegisterStorageListener registers a data change listener with the storage adapter
func (sa *Adapter) RegisterStorageListener(listener interfaces.StorageListener) {
	sa.db.listeners = append(sa.db.listeners, listener)
}

// PerformTransaction performs a transaction
func (sa *Adapter) PerformTransaction(transaction func(storage interfaces.Storage) error) error {
	// transaction
	callback := func(sessionContext mongo.SessionContext) (interface{}, error) {
		adapter := sa.withContext(sessionContext)

		err := transaction(adapter)
		if err != nil {
			return nil, err
		}

		return nil, nil
	}

	session, err := sa.db.dbClient.StartSession()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionStart, typeMongoSession, nil, err)
	}
	context := context.Background()
	defer session.EndSession(context)

	_, err = session.WithTransaction(context, callback)
	if err != nil {
		//keep the status set by the transaction
		if _, ok := err.(*errors.Error); ok {
			return err
		}
		return errors.WrapErrorAction(actionPerform, typeTransaction, nil, err)
	}
	return nil
}

// withContext gives an adapter sharing the state of this one which runs its operations in the session
func (sa *Adapter) withContext(context mongo.SessionContext) *Adapter {
	return &Adapter{db: sa.db, context: context, logger: sa.logger, cachedOrganizations: sa.cachedOrganizations,
		organizationsLock: sa.organizationsLock}
}

// FindOrganization finds an organization. It gives nil when it does not exist.
func (sa *Adapter) FindOrganization(id string) (*model.Organization, error) {
	cached, err := sa.getCachedOrganization(id)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionLoadCache, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}
	if cached != nil {
		return cached, nil
	}

	//not cached yet
	filter := bson.M{"_id": id}
	var result organization
	err = sa.db.organizations.FindOneWithContext(sa.context, filter, &result, nil)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, &logutils.FieldArgs{"id": id}, err)
	}

	org := organizationFromStorage(&result)
	sa.cacheOrganization(org)
	return &org, nil
}

// FindUserMemberships finds the memberships of a user in join order
func (sa *Adapter) FindUserMemberships(userID string) ([]model.Membership, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "joined_at", Value: 1}, {Key: "_id", Value: 1}})

	var result []membership
	err := sa.db.memberships.FindWithContext(sa.context, filter, &result, opts)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, &logutils.FieldArgs{"user_id": userID}, err)
	}
	return membershipsFromStorage(result), nil
}

// FindMembership finds the membership of a user in an organization
func (sa *Adapter) FindMembership(orgID string, userID string) (*model.Membership, error) {
	filter := bson.M{"organization_id": orgID, "user_id": userID}

	var result membership
	err := sa.db.memberships.FindOneWithContext(sa.context, filter, &result, nil)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, &logutils.FieldArgs{"organization_id": orgID, "user_id": userID}, err)
	}

	res := membershipFromStorage(&result)
	return &res, nil
}

// FindOrganizationAdmins finds the active admins of an organization
func (sa *Adapter) FindOrganizationAdmins(orgID string) ([]model.Membership, error) {
	filter := bson.M{"organization_id": orgID, "role": model.MembershipRoleAdmin, "is_active": true}

	var result []membership
	err := sa.db.memberships.FindWithContext(sa.context, filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeMembership, &logutils.FieldArgs{"organization_id": orgID, "role": model.MembershipRoleAdmin}, err)
	}
	return membershipsFromStorage(result), nil
}

// SaveMembership inserts the membership of a user in an organization, or updates it when the user already has one
func (sa *Adapter) SaveMembership(item model.Membership) error {
	filter, update := membershipUpsert(item)
	opts := options.Update().SetUpsert(true)

	_, err := sa.db.memberships.UpdateOneWithContext(sa.context, filter, update, opts)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeMembership, &logutils.FieldArgs{"organization_id": item.OrganizationID, "user_id": item.UserID}, err)
	}
	return nil
}

// membershipUpsert keys the membership on the organization and the user
func membershipUpsert(item model.Membership) (bson.M, bson.M) {
	filter := bson.M{"organization_id": item.OrganizationID, "user_id": item.UserID}
	update := bson.M{
		"$set": bson.M{
			"user_email":   item.UserEmail,
			"user_name":    item.UserName,
			"role":         item.Role,
			"joined_at":    item.JoinedAt,
			"is_active":    item.IsActive,
			"date_updated": item.DateUpdated,
		},
		"$setOnInsert": bson.M{"_id": item.ID},
	}
	return filter, update
}

// SaveUserOrganizationsCache saves the last resolved organizations of a user
func (sa *Adapter) SaveUserOrganizationsCache(item model.UserOrganizationsCache) error {
	filter := bson.M{"_id": item.UserID}
	opts := options.Replace().SetUpsert(true)

	err := sa.db.userOrganizationsCache.ReplaceOneWithContext(sa.context, filter, userOrganizationsCacheToStorage(item), opts)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeUserOrganizationsCache, &logutils.FieldArgs{"user_id": item.UserID}, err)
	}
	return nil
}

// FindEvent finds an event
func (sa *Adapter) FindEvent(id string) (*model.Event, error) {
	filter := bson.M{"_id": id}

	var result event
	err := sa.db.events.FindOneWithContext(sa.context, filter, &result, nil)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeEvent, &logutils.FieldArgs{"id": id}, err)
	}

	res := eventFromStorage(&result)
	return &res, nil
}

// FindOrganizationEvents finds the active events of an organization, most recent start date first, optionally in a date range
func (sa *Adapter) FindOrganizationEvents(orgID string, startDate *time.Time, endDate *time.Time, limit int64) ([]model.Event, error) {
	filter, opts := organizationEventsQuery(orgID, startDate, endDate, limit)

	var result []event
	err := sa.db.events.FindWithContext(sa.context, filter, &result, opts)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeEvent, &logutils.FieldArgs{"organization_id": orgID}, err)
	}
	return eventsFromStorage(result), nil
}

// organizationEventsQuery builds the filter and options for the events of an organization
func organizationEventsQuery(orgID string, startDate *time.Time, endDate *time.Time, limit int64) (bson.D, *options.FindOptions) {
	filter := bson.D{{Key: "organization_id", Value: orgID}, {Key: "is_active", Value: true}}
	if startDate != nil {
		filter = append(filter, bson.E{Key: "start_date", Value: bson.M{"$gte": *startDate}})
	}
	if endDate != nil {
		filter = append(filter, bson.E{Key: "end_date", Value: bson.M{"$lte": *endDate}})
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return filter, opts
}

// FindUserRSVPs finds the RSVPs of a user for the given events with one query
func (sa *Adapter) FindUserRSVPs(userID string, eventIDs []string) ([]model.RSVP, error) {
	if len(eventIDs) == 0 {
		return make([]model.RSVP, 0), nil
	}
	filter := bson.M{"user_id": userID, "event_id": bson.M{"$in": eventIDs}}

	var result []rsvp
	err := sa.db.rsvps.FindWithContext(sa.context, filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRSVP, &logutils.FieldArgs{"user_id": userID, "events": len(eventIDs)}, err)
	}
	return rsvpsFromStorage(result), nil
}

// SaveRSVP creates or replaces the RSVP of a user for an event
func (sa *Adapter) SaveRSVP(item model.RSVP) error {
	filter := bson.M{"event_id": item.EventID, "user_id": item.UserID}
	update := bson.M{
		"$set": bson.M{
			"organization_id": item.OrganizationID,
			"status":          item.Status,
			"attendees":       item.Attendees,
			"notes":           item.Notes,
			"submitted_at":    item.SubmittedAt,
			"date_updated":    item.SubmittedAt,
		},
		"$setOnInsert": bson.M{"_id": item.ID},
	}
	opts := options.Update().SetUpsert(true)

	_, err := sa.db.rsvps.UpdateOneWithContext(sa.context, filter, update, opts)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeRSVP, &logutils.FieldArgs{"event_id": item.EventID, "user_id": item.UserID}, err)
	}
	return nil
}

// FindSyncPreferences finds the sync preferences of a user. It gives nil when the user has none.
func (sa *Adapter) FindSyncPreferences(userID string) (*model.CrossOrgSyncPreferences, error) {
	filter := bson.M{"_id": userID}

	var result syncPreferences
	err := sa.db.syncPreferences.FindOneWithContext(sa.context, filter, &result, nil)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeSyncPreferences, &logutils.FieldArgs{"user_id": userID}, err)
	}

	res := syncPreferencesFromStorage(&result)
	return &res, nil
}

// SaveSyncPreferences saves the sync preferences of a user
func (sa *Adapter) SaveSyncPreferences(item model.CrossOrgSyncPreferences) error {
	filter := bson.M{"_id": item.UserID}
	opts := options.Replace().SetUpsert(true)

	err := sa.db.syncPreferences.ReplaceOneWithContext(sa.context, filter, syncPreferencesToStorage(item), opts)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeSyncPreferences, &logutils.FieldArgs{"user_id": item.UserID}, err)
	}
	return nil
}

// FindSyncStatus finds the sync status of a user. It gives nil when the user never synced.
func (sa *Adapter) FindSyncStatus(userID string) (*model.SyncStatus, error) {
	filter := bson.M{"_id": userID}

	var result syncStatus
	err := sa.db.syncStatus.FindOneWithContext(sa.context, filter, &result, nil)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeSyncStatus, &logutils.FieldArgs{"user_id": userID}, err)
	}

	res := syncStatusFromStorage(&result)
	return &res, nil
}

// SaveSyncStatus saves the sync status of a user
func (sa *Adapter) SaveSyncStatus(item model.SyncStatus) error {
	filter := bson.M{"_id": item.UserID}
	opts := options.Replace().SetUpsert(true)

	err := sa.db.syncStatus.ReplaceOneWithContext(sa.context, filter, syncStatusToStorage(item), opts)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeSyncStatus, &logutils.FieldArgs{"user_id": item.UserID}, err)
	}
	return nil
}

// InsertAccountRequest inserts an account request
func (sa *Adapter) InsertAccountRequest(item model.AccountRequest) error {
	_, err := sa.db.accountRequests.InsertOneWithContext(sa.context, accountRequestToStorage(item))
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeAccountRequest, &logutils.FieldArgs{"id": item.ID}, err)
	}
	return nil
}

// FindAccountRequest finds an account request
func (sa *Adapter) FindAccountRequest(id string) (*model.AccountRequest, error) {
	filter := bson.M{"_id": id}

	var result accountRequest
	err := sa.db.accountRequests.FindOneWithContext(sa.context, filter, &result, nil)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccountRequest, &logutils.FieldArgs{"id": id}, err)
	}

	res := accountRequestFromStorage(&result)
	return &res, nil
}

// FindAccountRequests finds the account requests of an organization, newest first
func (sa *Adapter) FindAccountRequests(orgID string, userID *string, status *string) ([]model.AccountRequest, error) {
	filter := bson.D{{Key: "organization_id", Value: orgID}}
	if userID != nil {
		filter = append(filter, bson.E{Key: "user_id", Value: *userID})
	}
	if status != nil {
		filter = append(filter, bson.E{Key: "status", Value: *status})
	}
	opts := options.Find().SetSort(bson.D{{Key: "date_created", Value: -1}})

	var result []accountRequest
	err := sa.db.accountRequests.FindWithContext(sa.context, filter, &result, opts)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeAccountRequest, &logutils.FieldArgs{"organization_id": orgID}, err)
	}
	return accountRequestsFromStorage(result), nil
}

// UpdateAccountRequest replaces an account request
func (sa *Adapter) UpdateAccountRequest(item model.AccountRequest) error {
	filter := bson.M{"_id": item.ID}

	err := sa.db.accountRequests.ReplaceOneWithContext(sa.context, filter, accountRequestToStorage(item), nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeAccountRequest, &logutils.FieldArgs{"id": item.ID}, err)
	}
	return nil
}

// InsertPushSubscription inserts a push subscription. A subscription for the same endpoint is replaced.
func (sa *Adapter) InsertPushSubscription(item model.PushSubscription) error {
	filter := bson.M{"endpoint": item.Endpoint}
	opts := options.Replace().SetUpsert(true)

	err := sa.db.pushSubscriptions.ReplaceOneWithContext(sa.context, filter, pushSubscriptionToStorage(item), opts)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypePushSubscription, &logutils.FieldArgs{"user_id": item.UserID}, err)
	}
	return nil
}

// FindPushSubscriptions finds the push subscriptions of the users
func (sa *Adapter) FindPushSubscriptions(userIDs []string) ([]model.PushSubscription, error) {
	filter := bson.M{"user_id": bson.M{"$in": userIDs}}

	var result []pushSubscription
	err := sa.db.pushSubscriptions.FindWithContext(sa.context, filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypePushSubscription, &logutils.FieldArgs{"users": len(userIDs)}, err)
	}
	return pushSubscriptionsFromStorage(result), nil
}

// DeletePushSubscription deletes a push subscription of a user
func (sa *Adapter) DeletePushSubscription(userID string, id string) error {
	filter := bson.M{"_id": id, "user_id": userID}

	result, err := sa.db.pushSubscriptions.DeleteOneWithContext(sa.context, filter, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypePushSubscription, &logutils.FieldArgs{"id": id}, err)
	}
	if result.DeletedCount == 0 {
		return errors.ErrorData(logutils.StatusMissing, model.TypePushSubscription, &logutils.FieldArgs{"id": id}).SetStatus(utils.ErrorStatusNotFound)
	}
	return nil
}

// DeletePushSubscriptionByEndpoint deletes the subscription of an endpoint
func (sa *Adapter) DeletePushSubscriptionByEndpoint(endpoint string) error {
	filter := bson.M{"endpoint": endpoint}

	_, err := sa.db.pushSubscriptions.DeleteOneWithContext(sa.context, filter, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypePushSubscription, &logutils.FieldArgs{"endpoint": endpoint}, err)
	}
	return nil
}

// NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, logger *logs.Logger) *Adapter {
	timeoutInt, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Warn("Setting default Mongo timeout - 500")
		timeoutInt = 500
	}
	timeout := time.Millisecond * time.Duration(timeoutInt)

	cachedOrganizations := &syncmap.Map{}
	organizationsLock := &sync.RWMutex{}

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeout, logger: logger}
	return &Adapter{db: db, logger: logger, cachedOrganizations: cachedOrganizations, organizationsLock: organizationsLock}
}

type storageListener struct {
	adapter *Adapter
}

// OnOrganizationsUpdated reloads the cached organizations
func (sl *storageListener) OnOrganizationsUpdated() {
	err := sl.adapter.cacheOrganizations()
	if err != nil {
		sl.adapter.logger.Errorf("error caching organizations - %s", err)
	}
}
