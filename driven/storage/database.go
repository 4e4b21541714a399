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
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type database struct {
	mongoDBAuth  string
	mongoDBName  string
	mongoTimeout time.Duration

	logger *logs.Logger

	db       *mongo.Database
	dbClient *mongo.Client

	organizations          *collectionWrapper
	memberships            *collectionWrapper
	events                 *collectionWrapper
	rsvps                  *collectionWrapper
	syncPreferences        *collectionWrapper
	syncStatus             *collectionWrapper
	userOrganizationsCache *collectionWrapper
	accountRequests        *collectionWrapper
	pushSubscriptions      *collectionWrapper

	listeners []interfaces.StorageListener
}

func (m *database) start() error {
	m.logger.Info("database -> start")

	//connect to the database
	clientOptions := options.Client().ApplyURI(m.mongoDBAuth)
	connectContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	client, err := mongo.Connect(connectContext, clientOptions)
	cancel()
	if err != nil {
		return err
	}

	//ping the database
	pingContext, cancel := context.WithTimeout(context.Background(), m.mongoTimeout)
	err = client.Ping(pingContext, nil)
	cancel()
	if err != nil {
		return err
	}

	//apply checks
	db := client.Database(m.mongoDBName)

	organizations := &collectionWrapper{database: m, coll: db.Collection("organizations")}
	err = m.applyOrganizationsChecks(organizations)
	if err != nil {
		return err
	}

	memberships := &collectionWrapper{database: m, coll: db.Collection("memberships")}
	err = m.applyMembershipsChecks(memberships)
	if err != nil {
		return err
	}

	events := &collectionWrapper{database: m, coll: db.Collection("events")}
	err = m.applyEventsChecks(events)
	if err != nil {
		return err
	}

	rsvps := &collectionWrapper{database: m, coll: db.Collection("rsvps")}
	err = m.applyRSVPsChecks(rsvps)
	if err != nil {
		return err
	}

	syncPreferences := &collectionWrapper{database: m, coll: db.Collection("sync_preferences")}
	syncStatus := &collectionWrapper{database: m, coll: db.Collection("sync_status")}
	userOrganizationsCache := &collectionWrapper{database: m, coll: db.Collection("user_organizations_cache")}

	accountRequests := &collectionWrapper{database: m, coll: db.Collection("account_requests")}
	err = m.applyAccountRequestsChecks(accountRequests)
	if err != nil {
		return err
	}

	pushSubscriptions := &collectionWrapper{database: m, coll: db.Collection("push_subscriptions")}
	err = m.applyPushSubscriptionsChecks(pushSubscriptions)
	if err != nil {
		return err
	}

	//assign the db, db client and the collections
	m.db = db
	m.dbClient = client

	m.organizations = organizations
	m.memberships = memberships
	m.events = events
	m.rsvps = rsvps
	m.syncPreferences = syncPreferences
	m.syncStatus = syncStatus
	m.userOrganizationsCache = userOrganizationsCache
	m.accountRequests = accountRequests
	m.pushSubscriptions = pushSubscriptions

	//watch for organizations changes
	go m.organizations.Watch(nil, m.logger)

	return nil
}

func (m *database) applyOrganizationsChecks(organizations *collectionWrapper) error {
	m.logger.Info("apply organizations checks.....")

	//add name index
	err := organizations.AddIndex(bson.D{primitive.E{Key: "name", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("organizations checks passed")
	return nil
}

func (m *database) applyMembershipsChecks(memberships *collectionWrapper) error {
	m.logger.Info("apply memberships checks.....")

	//add user index
	err := memberships.AddIndex(bson.D{primitive.E{Key: "user_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	//add organization and role compound index
	err = memberships.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "role", Value: 1}}, false)
	if err != nil {
		return err
	}

	//one membership per user and organization
	err = memberships.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "user_id", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("memberships checks passed")
	return nil
}

func (m *database) applyEventsChecks(events *collectionWrapper) error {
	m.logger.Info("apply events checks.....")

	//add organization, active and start date compound index
	err := events.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "is_active", Value: 1},
		primitive.E{Key: "start_date", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("events checks passed")
	return nil
}

func (m *database) applyRSVPsChecks(rsvps *collectionWrapper) error {
	m.logger.Info("apply rsvps checks.....")

	//add event and user compound index - unique
	err := rsvps.AddIndex(bson.D{primitive.E{Key: "event_id", Value: 1}, primitive.E{Key: "user_id", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("rsvps checks passed")
	return nil
}

func (m *database) applyAccountRequestsChecks(accountRequests *collectionWrapper) error {
	m.logger.Info("apply account requests checks.....")

	//add organization and status compound index
	err := accountRequests.AddIndex(bson.D{primitive.E{Key: "organization_id", Value: 1}, primitive.E{Key: "status", Value: 1}}, false)
	if err != nil {
		return err
	}

	m.logger.Info("account requests checks passed")
	return nil
}

func (m *database) applyPushSubscriptionsChecks(pushSubscriptions *collectionWrapper) error {
	m.logger.Info("apply push subscriptions checks.....")

	//add user index
	err := pushSubscriptions.AddIndex(bson.D{primitive.E{Key: "user_id", Value: 1}}, false)
	if err != nil {
		return err
	}

	//add endpoint index - unique
	err = pushSubscriptions.AddIndex(bson.D{primitive.E{Key: "endpoint", Value: 1}}, true)
	if err != nil {
		return err
	}

	m.logger.Info("push subscriptions checks passed")
	return nil
}

func (m *database) onDataChanged(changeDoc map[string]interface{}) {
	if changeDoc == nil {
		return
	}
	m.logger.Infof("onDataChanged: %+v\n", changeDoc)

	coll := changedCollection(changeDoc["ns"])
	switch coll {
	case "organizations":
		m.logger.Info("organizations collection changed")

		for _, listener := range m.listeners {
			go listener.OnOrganizationsUpdated()
		}
	}
}

// changedCollection gives the collection name from the namespace of a change event
func changedCollection(ns interface{}) string {
	var coll interface{}
	switch nsMap := ns.(type) {
	case map[string]interface{}:
		coll = nsMap["coll"]
	case primitive.M:
		coll = nsMap["coll"]
	case primitive.D:
		coll = nsMap.Map()["coll"]
	}

	name, _ := coll.(string)
	return name
}
