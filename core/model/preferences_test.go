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

package model

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestSyncPreferencesUpdate_Apply(t *testing.T) {
	preferences := DefaultSyncPreferences("user", testNow)
	preferences.OrganizationOverrides["org1"] = OrganizationOverride{Enabled: false}

	disabled := false
	importantOnly := true
	update := SyncPreferencesUpdate{
		Events:                &EventSyncSettingsUpdate{IncludePending: &disabled},
		Announcements:         &AnnouncementSyncSettingsUpdate{ImportantOnly: &importantOnly},
		Resources:             &ResourceSyncSettingsUpdate{Enabled: &disabled},
		OrganizationOverrides: map[string]OrganizationOverride{"org2": {Enabled: true}},
	}
	update.Apply(&preferences)

	assert.Equal(t, preferences.Enabled, true)
	assert.Equal(t, preferences.SyncSettings.Events.Enabled, true)
	assert.Equal(t, preferences.SyncSettings.Events.IncludeRSVPd, true)
	assert.Equal(t, preferences.SyncSettings.Events.IncludePending, false)
	assert.Equal(t, preferences.SyncSettings.Announcements.Enabled, true)
	assert.Equal(t, preferences.SyncSettings.Announcements.ImportantOnly, true)
	assert.Equal(t, preferences.SyncSettings.Resources.Enabled, false)
	assert.Equal(t, preferences.SyncFrequency, SyncFrequencyHourly)
	assert.Equal(t, preferences.OrganizationDisabled("org1"), true)
	assert.Equal(t, preferences.OrganizationDisabled("org2"), false)
	assert.Equal(t, preferences.OrganizationDisabled("org3"), false)
}

func TestCrossOrgSyncPreferences_EventsEnabled(t *testing.T) {
	preferences := DefaultSyncPreferences("user", testNow)
	assert.Equal(t, preferences.EventsEnabled(), true)

	preferences.SyncSettings.Events.Enabled = false
	assert.Equal(t, preferences.EventsEnabled(), false)

	preferences.SyncSettings.Events.Enabled = true
	preferences.Enabled = false
	assert.Equal(t, preferences.EventsEnabled(), false)
}

func TestOrganization_EnabledServices(t *testing.T) {
	organization := Organization{Components: []string{"rsvp-management", "document-library", "bogus", "rsvp-management"}}
	assert.DeepEqual(t, organization.EnabledServices(), []string{"rsvp", "documents"})

	assert.DeepEqual(t, Organization{}.EnabledServices(), []string{})
}

func TestNextSyncAt(t *testing.T) {
	assert.Equal(t, *NextSyncAt(SyncFrequencyRealtime, testNow), testNow.Add(5*time.Minute))
	assert.Equal(t, *NextSyncAt(SyncFrequencyHourly, testNow), testNow.Add(time.Hour))
	assert.Equal(t, *NextSyncAt(SyncFrequencyDaily, testNow), testNow.Add(24*time.Hour))
	assert.Assert(t, NextSyncAt(SyncFrequencyManual, testNow) == nil)
}

func TestSyncStatus_AddErrors(t *testing.T) {
	status := SyncStatus{}
	for i := 0; i < MaxRecentSyncErrors+3; i++ {
		status.AddErrors([]SyncError{{OrganizationID: string(rune('a' + i))}})
	}
	assert.Equal(t, len(status.RecentErrors), MaxRecentSyncErrors)
	assert.Equal(t, status.RecentErrors[0].OrganizationID, "d")
}

func TestRSVPStatusColor(t *testing.T) {
	assert.Equal(t, RSVPStatusColor(RSVPStatusGoing), "#10B981")
	assert.Equal(t, RSVPStatusColor("unknown"), "#6B7280")
}
