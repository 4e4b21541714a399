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
	"pack-portal/core/model"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gotest.tools/assert"
)

func TestSyncPreferencesFromStorage_MissingSections(t *testing.T) {
	createdAt := time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC)
	stored := syncPreferences{
		UserID:       "user",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
		SyncSettings: &syncSettings{Events: &eventSyncSettings{Enabled: true, IncludeRSVPd: true, IncludePublic: true}},
	}

	preferences := syncPreferencesFromStorage(&stored)
	assert.Equal(t, preferences.UserID, "user")
	assert.Equal(t, preferences.Enabled, true)
	assert.Equal(t, preferences.SyncSettings.Events.IncludePublic, true)
	assert.Equal(t, preferences.SyncSettings.Events.IncludePending, false)
	//completed from the defaults
	assert.Equal(t, preferences.SyncSettings.Documents.Enabled, false)
	assert.Equal(t, preferences.SyncSettings.Resources.Enabled, true)
	assert.Equal(t, preferences.SyncSettings.Announcements.Enabled, true)
	assert.Equal(t, preferences.SyncFrequency, model.SyncFrequencyHourly)
	assert.Assert(t, preferences.OrganizationOverrides != nil)
	assert.Equal(t, preferences.CreatedAt, createdAt)
}

func TestSyncPreferencesFromStorage_Stored(t *testing.T) {
	disabled := false
	stored := syncPreferences{
		UserID:                "user",
		Enabled:               &disabled,
		SyncFrequency:         model.SyncFrequencyDaily,
		SyncSettings:          &syncSettings{Documents: &documentSyncSettings{Enabled: true}, Resources: &resourceSyncSettings{Enabled: false}},
		OrganizationOverrides: map[string]organizationOverride{"org1": {Enabled: false, SyncServices: []string{"events"}}},
	}

	preferences := syncPreferencesFromStorage(&stored)
	assert.Equal(t, preferences.Enabled, false)
	assert.Equal(t, preferences.SyncFrequency, model.SyncFrequencyDaily)
	assert.Equal(t, preferences.SyncSettings.Documents.Enabled, true)
	assert.Equal(t, preferences.SyncSettings.Resources.Enabled, false)
	assert.Equal(t, preferences.OrganizationDisabled("org1"), true)
	assert.DeepEqual(t, preferences.OrganizationOverrides["org1"].SyncServices, []string{"events"})
}

func TestSyncPreferencesToStorage(t *testing.T) {
	preferences := model.DefaultSyncPreferences("user", time.Now())
	preferences.Enabled = false
	preferences.OrganizationOverrides["org1"] = model.OrganizationOverride{Enabled: true}

	stored := syncPreferencesToStorage(preferences)
	assert.Equal(t, stored.UserID, "user")
	assert.Equal(t, *stored.Enabled, false)
	assert.Assert(t, stored.SyncSettings.Events != nil)
	assert.Assert(t, stored.SyncSettings.Announcements != nil)
	assert.Assert(t, stored.SyncSettings.Documents != nil)
	assert.Assert(t, stored.SyncSettings.Resources != nil)
	assert.Equal(t, stored.OrganizationOverrides["org1"].Enabled, true)
}

func TestEventsFromStorage(t *testing.T) {
	assert.Equal(t, len(eventsFromStorage(nil)), 0)

	title := "Pinewood Derby"
	events := eventsFromStorage([]event{{ID: "e1", OrganizationID: "org1", Title: &title, RequiresRSVP: true},
		{ID: "e2", OrganizationID: "org1"}})
	assert.Equal(t, len(events), 2)
	assert.Equal(t, *events[0].Title, title)
	assert.Equal(t, events[0].RequiresRSVP, true)
	assert.Assert(t, events[1].Title == nil)
	assert.Assert(t, events[1].StartDate == nil)
}

func TestSyncStatusConversions(t *testing.T) {
	now := time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC)
	status := model.SyncStatus{
		UserID:       "user",
		LastSyncAt:   &now,
		Statistics:   model.SyncStatistics{TotalOrganizations: 3, Errors: 1},
		RecentErrors: []model.SyncError{{OrganizationID: "org1", Message: "timeout", OccurredAt: now}},
	}

	stored := syncStatusToStorage(status)
	assert.Equal(t, stored.Statistics.TotalOrganizations, 3)
	assert.Equal(t, stored.RecentErrors[0].Message, "timeout")

	loaded := syncStatusFromStorage(&stored)
	assert.Equal(t, loaded.Statistics.Errors, 1)
	assert.Equal(t, loaded.RecentErrors[0].OrganizationID, "org1")
}

func TestChangedCollection(t *testing.T) {
	assert.Equal(t, changedCollection(map[string]interface{}{"db": "portal", "coll": "organizations"}), "organizations")
	assert.Equal(t, changedCollection(primitive.M{"coll": "events"}), "events")
	assert.Equal(t, changedCollection(primitive.D{{Key: "coll", Value: "rsvps"}}), "rsvps")
	assert.Equal(t, changedCollection(nil), "")
}
