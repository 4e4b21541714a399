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

package web

import (
	"pack-portal/core/model"
	"time"
)

// organizations

type userOrganizationDef struct {
	OrganizationID   string    `json:"organizationId"`
	OrganizationName string    `json:"organizationName"`
	OrganizationType string    `json:"organizationType"`
	UserRole         string    `json:"userRole"`
	JoinedAt         time.Time `json:"joinedAt"`
	IsActive         bool      `json:"isActive"`
	EnabledServices  []string  `json:"enabledServices"`
}

func userOrganizationsToDef(items []model.UserOrganization) []userOrganizationDef {
	result := make([]userOrganizationDef, len(items))
	for i, item := range items {
		result[i] = userOrganizationDef{OrganizationID: item.OrganizationID, OrganizationName: item.OrganizationName,
			OrganizationType: item.OrganizationType, UserRole: item.UserRole, JoinedAt: item.JoinedAt, IsActive: item.IsActive,
			EnabledServices: item.EnabledServices}
	}
	return result
}

// calendar

type eventActionsDef struct {
	CanEdit        bool `json:"canEdit"`
	CanDelete      bool `json:"canDelete"`
	CanRSVP        bool `json:"canRSVP"`
	CanViewDetails bool `json:"canViewDetails"`
}

type aggregatedCalendarEventDef struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  *string         `json:"description,omitempty"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Location     *string         `json:"location,omitempty"`
	Source       string          `json:"source"`
	SourceID     string          `json:"sourceId"`
	SourceName   string          `json:"sourceName"`
	EventType    string          `json:"eventType"`
	RequiresRSVP bool            `json:"requiresRSVP"`
	RSVPStatus   *string         `json:"rsvpStatus,omitempty"`
	RSVPDeadline *time.Time      `json:"rsvpDeadline,omitempty"`
	CanRSVP      bool            `json:"canRSVP"`
	Actions      eventActionsDef `json:"actions"`
	Color        *string         `json:"color,omitempty"`
	Icon         *string         `json:"icon,omitempty"`
	Priority     string          `json:"priority"`
}

func aggregatedCalendarEventsToDef(items []model.AggregatedCalendarEvent) []aggregatedCalendarEventDef {
	result := make([]aggregatedCalendarEventDef, len(items))
	for i, item := range items {
		result[i] = aggregatedCalendarEventDef{ID: item.ID, Title: item.Title, Description: item.Description,
			StartDate: item.StartDate, EndDate: item.EndDate, Location: item.Location, Source: item.Source,
			SourceID: item.SourceID, SourceName: item.SourceName, EventType: item.EventType, RequiresRSVP: item.RequiresRSVP,
			RSVPStatus: item.RSVPStatus, RSVPDeadline: item.RSVPDeadline, CanRSVP: item.CanRSVP,
			Actions: eventActionsDef(item.Actions), Color: item.Color, Icon: item.Icon, Priority: item.Priority}
	}
	return result
}

// sync preferences

type eventSyncSettingsDef struct {
	Enabled                  bool `json:"enabled"`
	IncludeRSVPd             bool `json:"includeRSVPd"`
	IncludePending           bool `json:"includePending"`
	IncludePublic            bool `json:"includePublic"`
	AutoDeclineAfterDeadline bool `json:"autoDeclineAfterDeadline"`
}

type announcementSyncSettingsDef struct {
	Enabled       bool `json:"enabled"`
	ImportantOnly bool `json:"importantOnly"`
}

type enabledSettingsDef struct {
	Enabled bool `json:"enabled"`
}

type syncSettingsDef struct {
	Events        eventSyncSettingsDef        `json:"events"`
	Announcements announcementSyncSettingsDef `json:"announcements"`
	Documents     enabledSettingsDef          `json:"documents"`
	Resources     enabledSettingsDef          `json:"resources"`
}

type organizationOverrideDef struct {
	Enabled      bool     `json:"enabled"`
	SyncServices []string `json:"syncServices"`
}

type syncPreferencesDef struct {
	UserID                string                             `json:"userId"`
	Enabled               bool                               `json:"enabled"`
	SyncSettings          syncSettingsDef                    `json:"syncSettings"`
	OrganizationOverrides map[string]organizationOverrideDef `json:"organizationOverrides"`
	SyncFrequency         string                             `json:"syncFrequency"`
	LastSyncAt            *time.Time                         `json:"lastSyncAt,omitempty"`
	CreatedAt             time.Time                          `json:"createdAt"`
	UpdatedAt             time.Time                          `json:"updatedAt"`
}

func syncPreferencesToDef(item model.CrossOrgSyncPreferences) syncPreferencesDef {
	overrides := make(map[string]organizationOverrideDef, len(item.OrganizationOverrides))
	for orgID, override := range item.OrganizationOverrides {
		services := override.SyncServices
		if services == nil {
			services = []string{}
		}
		overrides[orgID] = organizationOverrideDef{Enabled: override.Enabled, SyncServices: services}
	}

	settings := item.SyncSettings
	return syncPreferencesDef{UserID: item.UserID, Enabled: item.Enabled,
		SyncSettings: syncSettingsDef{
			Events:        eventSyncSettingsDef(settings.Events),
			Announcements: announcementSyncSettingsDef(settings.Announcements),
			Documents:     enabledSettingsDef{Enabled: settings.Documents.Enabled},
			Resources:     enabledSettingsDef{Enabled: settings.Resources.Enabled},
		},
		OrganizationOverrides: overrides, SyncFrequency: item.SyncFrequency, LastSyncAt: item.LastSyncAt,
		CreatedAt: item.CreatedAt, UpdatedAt: item.UpdatedAt}
}

type eventSyncSettingsUpdateDef struct {
	Enabled                  *bool `json:"enabled"`
	IncludeRSVPd             *bool `json:"includeRSVPd"`
	IncludePending           *bool `json:"includePending"`
	IncludePublic            *bool `json:"includePublic"`
	AutoDeclineAfterDeadline *bool `json:"autoDeclineAfterDeadline"`
}

type announcementSyncSettingsUpdateDef struct {
	Enabled       *bool `json:"enabled"`
	ImportantOnly *bool `json:"importantOnly"`
}

type enabledSettingsUpdateDef struct {
	Enabled *bool `json:"enabled"`
}

type syncSettingsUpdateDef struct {
	Events        *eventSyncSettingsUpdateDef        `json:"events"`
	Announcements *announcementSyncSettingsUpdateDef `json:"announcements"`
	Documents     *enabledSettingsUpdateDef          `json:"documents"`
	Resources     *enabledSettingsUpdateDef          `json:"resources"`
}

type syncPreferencesUpdateDef struct {
	Enabled               *bool                              `json:"enabled"`
	SyncSettings          *syncSettingsUpdateDef             `json:"syncSettings"`
	OrganizationOverrides map[string]organizationOverrideDef `json:"organizationOverrides"`
	SyncFrequency         *string                            `json:"syncFrequency"`
}

func syncPreferencesUpdateFromDef(item syncPreferencesUpdateDef) model.SyncPreferencesUpdate {
	update := model.SyncPreferencesUpdate{Enabled: item.Enabled, SyncFrequency: item.SyncFrequency}

	if settings := item.SyncSettings; settings != nil {
		if settings.Events != nil {
			events := model.EventSyncSettingsUpdate(*settings.Events)
			update.Events = &events
		}
		if settings.Announcements != nil {
			announcements := model.AnnouncementSyncSettingsUpdate(*settings.Announcements)
			update.Announcements = &announcements
		}
		if settings.Documents != nil {
			update.Documents = &model.DocumentSyncSettingsUpdate{Enabled: settings.Documents.Enabled}
		}
		if settings.Resources != nil {
			update.Resources = &model.ResourceSyncSettingsUpdate{Enabled: settings.Resources.Enabled}
		}
	}

	if len(item.OrganizationOverrides) > 0 {
		update.OrganizationOverrides = make(map[string]model.OrganizationOverride, len(item.OrganizationOverrides))
		for orgID, override := range item.OrganizationOverrides {
			update.OrganizationOverrides[orgID] = model.OrganizationOverride{Enabled: override.Enabled, SyncServices: override.SyncServices}
		}
	}
	return update
}

// sync status

type syncStatisticsDef struct {
	TotalOrganizations  int `json:"totalOrganizations"`
	ActiveOrganizations int `json:"activeOrganizations"`
	TotalEventsSynced   int `json:"totalEventsSynced"`
	PendingRSVPs        int `json:"pendingRSVPs"`
	UpcomingEvents      int `json:"upcomingEvents"`
	Errors              int `json:"errors"`
}

type syncErrorDef struct {
	OrganizationID string    `json:"organizationId"`
	Message        string    `json:"message"`
	OccurredAt     time.Time `json:"occurredAt"`
}

type syncStatusDef struct {
	UserID       string            `json:"userId"`
	IsRunning    bool              `json:"isRunning"`
	LastSyncAt   *time.Time        `json:"lastSyncAt,omitempty"`
	NextSyncAt   *time.Time        `json:"nextSyncAt,omitempty"`
	Statistics   syncStatisticsDef `json:"statistics"`
	RecentErrors []syncErrorDef    `json:"recentErrors"`
}

func syncStatusToDef(item model.SyncStatus) syncStatusDef {
	recentErrors := make([]syncErrorDef, len(item.RecentErrors))
	for i, syncError := range item.RecentErrors {
		recentErrors[i] = syncErrorDef(syncError)
	}
	return syncStatusDef{UserID: item.UserID, IsRunning: item.IsRunning, LastSyncAt: item.LastSyncAt, NextSyncAt: item.NextSyncAt,
		Statistics: syncStatisticsDef(item.Statistics), RecentErrors: recentErrors}
}

// rsvp

type rsvpRequestDef struct {
	Status    string  `json:"status" validate:"required"`
	Attendees *int    `json:"attendees"`
	Notes     *string `json:"notes"`
}

type rsvpDef struct {
	ID             string     `json:"id"`
	EventID        string     `json:"eventId"`
	UserID         string     `json:"userId"`
	OrganizationID string     `json:"organizationId"`
	Status         string     `json:"status"`
	Attendees      *int       `json:"attendees,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	SubmittedAt    time.Time  `json:"submittedAt"`
	DateUpdated    *time.Time `json:"dateUpdated,omitempty"`
}

func rsvpToDef(item model.RSVP) rsvpDef {
	return rsvpDef(item)
}

// account requests

type accountRequestRequestDef struct {
	Message *string `json:"message" validate:"omitempty,max=2000"`
}

type accountRequestReviewDef struct {
	Note *string `json:"note" validate:"omitempty,max=2000"`
}

type accountRequestDef struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organizationId"`
	UserID         string     `json:"userId"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	Message        *string    `json:"message,omitempty"`
	Status         string     `json:"status"`
	ReviewedBy     *string    `json:"reviewedBy,omitempty"`
	ReviewNote     *string    `json:"reviewNote,omitempty"`
	DateCreated    time.Time  `json:"dateCreated"`
	DateUpdated    *time.Time `json:"dateUpdated,omitempty"`
}

func accountRequestToDef(item model.AccountRequest) accountRequestDef {
	return accountRequestDef(item)
}

func accountRequestsToDef(items []model.AccountRequest) []accountRequestDef {
	result := make([]accountRequestDef, len(items))
	for i, item := range items {
		result[i] = accountRequestToDef(item)
	}
	return result
}

// push subscriptions

type pushSubscriptionKeysDef struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

type pushSubscriptionRequestDef struct {
	Endpoint   string                  `json:"endpoint" validate:"required,url"`
	Keys       pushSubscriptionKeysDef `json:"keys" validate:"required"`
	DeviceName string                  `json:"deviceName"`
}

type pushSubscriptionDef struct {
	ID          string    `json:"id"`
	Endpoint    string    `json:"endpoint"`
	DeviceName  string    `json:"deviceName"`
	DateCreated time.Time `json:"dateCreated"`
}

func pushSubscriptionToDef(item model.PushSubscription) pushSubscriptionDef {
	return pushSubscriptionDef{ID: item.ID, Endpoint: item.Endpoint, DeviceName: item.DeviceName, DateCreated: item.DateCreated}
}
