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
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

const (
	//TypeSyncPreferences ...
	TypeSyncPreferences logutils.MessageDataType = "cross organization sync preferences"
	//TypeSyncFrequency ...
	TypeSyncFrequency logutils.MessageDataType = "sync frequency"

	//SyncFrequencyRealtime syncs on every calendar load
	SyncFrequencyRealtime string = "realtime"
	//SyncFrequencyHourly syncs hourly
	SyncFrequencyHourly string = "hourly"
	//SyncFrequencyDaily syncs daily
	SyncFrequencyDaily string = "daily"
	//SyncFrequencyManual syncs only when the user asks for it
	SyncFrequencyManual string = "manual"

	//SyncPreferencesStored the preferences come from the stored document
	SyncPreferencesStored SyncPreferencesSource = "stored"
	//SyncPreferencesDefaulted the user has no stored preferences
	SyncPreferencesDefaulted SyncPreferencesSource = "defaulted"
)

// SyncPreferencesSource tells where resolved preferences come from
type SyncPreferencesSource string

// CrossOrgSyncPreferences represents which cross organization data a user wants in the personal view
type CrossOrgSyncPreferences struct {
	UserID  string
	Enabled bool

	SyncSettings          SyncSettings
	OrganizationOverrides map[string]OrganizationOverride

	SyncFrequency string `validate:"oneof=realtime hourly daily manual"`
	LastSyncAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventsEnabled says if organization events should be aggregated at all
func (p CrossOrgSyncPreferences) EventsEnabled() bool {
	return p.Enabled && p.SyncSettings.Events.Enabled
}

// OrganizationDisabled says if an override explicitly disables the organization
func (p CrossOrgSyncPreferences) OrganizationDisabled(orgID string) bool {
	override, ok := p.OrganizationOverrides[orgID]
	return ok && !override.Enabled
}

// SyncSettings groups the per channel settings
type SyncSettings struct {
	Events        EventSyncSettings
	Announcements AnnouncementSyncSettings
	Documents     DocumentSyncSettings
	Resources     ResourceSyncSettings
}

// EventSyncSettings controls which organization events are surfaced
type EventSyncSettings struct {
	Enabled                  bool
	IncludeRSVPd             bool
	IncludePending           bool
	IncludePublic            bool
	AutoDeclineAfterDeadline bool
}

// AnnouncementSyncSettings controls organization announcements
type AnnouncementSyncSettings struct {
	Enabled       bool
	ImportantOnly bool
}

// DocumentSyncSettings controls organization documents
type DocumentSyncSettings struct {
	Enabled bool
}

// ResourceSyncSettings controls organization resources
type ResourceSyncSettings struct {
	Enabled bool
}

// OrganizationOverride overrides the sync settings for one organization
type OrganizationOverride struct {
	Enabled      bool
	SyncServices []string
}

// ResolvedSyncPreferences are preferences tagged with their source
type ResolvedSyncPreferences struct {
	Preferences CrossOrgSyncPreferences
	Source      SyncPreferencesSource
}

// DefaultSyncPreferences gives the preferences of a user who never saved any
func DefaultSyncPreferences(userID string, now time.Time) CrossOrgSyncPreferences {
	return CrossOrgSyncPreferences{
		UserID:  userID,
		Enabled: true,
		SyncSettings: SyncSettings{
			Events: EventSyncSettings{Enabled: true, IncludeRSVPd: true, IncludePending: true,
				IncludePublic: false, AutoDeclineAfterDeadline: false},
			Announcements: AnnouncementSyncSettings{Enabled: true, ImportantOnly: false},
			Documents:     DocumentSyncSettings{Enabled: false},
			Resources:     ResourceSyncSettings{Enabled: true},
		},
		OrganizationOverrides: map[string]OrganizationOverride{},
		SyncFrequency:         SyncFrequencyHourly,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// SyncPreferencesUpdate is a partial update. Nil fields are left untouched.
type SyncPreferencesUpdate struct {
	Enabled *bool

	Events        *EventSyncSettingsUpdate
	Announcements *AnnouncementSyncSettingsUpdate
	Documents     *DocumentSyncSettingsUpdate
	Resources     *ResourceSyncSettingsUpdate

	OrganizationOverrides map[string]OrganizationOverride

	SyncFrequency *string
}

// EventSyncSettingsUpdate is a partial update of EventSyncSettings
type EventSyncSettingsUpdate struct {
	Enabled                  *bool
	IncludeRSVPd             *bool
	IncludePending           *bool
	IncludePublic            *bool
	AutoDeclineAfterDeadline *bool
}

// AnnouncementSyncSettingsUpdate is a partial update of AnnouncementSyncSettings
type AnnouncementSyncSettingsUpdate struct {
	Enabled       *bool
	ImportantOnly *bool
}

// DocumentSyncSettingsUpdate is a partial update of DocumentSyncSettings
type DocumentSyncSettingsUpdate struct {
	Enabled *bool
}

// ResourceSyncSettingsUpdate is a partial update of ResourceSyncSettings
type ResourceSyncSettingsUpdate struct {
	Enabled *bool
}

// Apply merges the update into the preferences
func (u SyncPreferencesUpdate) Apply(prefs *CrossOrgSyncPreferences) {
	if prefs == nil {
		return
	}

	setBool(&prefs.Enabled, u.Enabled)

	if u.Events != nil {
		events := &prefs.SyncSettings.Events
		setBool(&events.Enabled, u.Events.Enabled)
		setBool(&events.IncludeRSVPd, u.Events.IncludeRSVPd)
		setBool(&events.IncludePending, u.Events.IncludePending)
		setBool(&events.IncludePublic, u.Events.IncludePublic)
		setBool(&events.AutoDeclineAfterDeadline, u.Events.AutoDeclineAfterDeadline)
	}
	if u.Announcements != nil {
		setBool(&prefs.SyncSettings.Announcements.Enabled, u.Announcements.Enabled)
		setBool(&prefs.SyncSettings.Announcements.ImportantOnly, u.Announcements.ImportantOnly)
	}
	if u.Documents != nil {
		setBool(&prefs.SyncSettings.Documents.Enabled, u.Documents.Enabled)
	}
	if u.Resources != nil {
		setBool(&prefs.SyncSettings.Resources.Enabled, u.Resources.Enabled)
	}

	if len(u.OrganizationOverrides) > 0 {
		if prefs.OrganizationOverrides == nil {
			prefs.OrganizationOverrides = map[string]OrganizationOverride{}
		}
		for orgID, override := range u.OrganizationOverrides {
			prefs.OrganizationOverrides[orgID] = override
		}
	}

	if u.SyncFrequency != nil {
		prefs.SyncFrequency = *u.SyncFrequency
	}
}

func setBool(target *bool, value *bool) {
	if value != nil {
		*target = *value
	}
}
