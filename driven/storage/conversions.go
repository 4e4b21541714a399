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

import "pack-portal/core/model"

// Organization
func organizationFromStorage(item *organization) model.Organization {
	if item == nil {
		return model.Organization{}
	}

	return model.Organization{ID: item.ID, Name: item.Name, Type: item.Type, Components: item.Components,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func organizationsFromStorage(items []organization) []model.Organization {
	if len(items) == 0 {
		return make([]model.Organization, 0)
	}

	res := make([]model.Organization, len(items))
	for i, item := range items {
		res[i] = organizationFromStorage(&item)
	}
	return res
}

// Membership
func membershipFromStorage(item *membership) model.Membership {
	if item == nil {
		return model.Membership{}
	}

	return model.Membership{ID: item.ID, UserID: item.UserID, UserEmail: item.UserEmail, UserName: item.UserName,
		OrganizationID: item.OrganizationID, Role: item.Role, JoinedAt: item.JoinedAt, IsActive: item.IsActive,
		DateUpdated: item.DateUpdated}
}

func membershipsFromStorage(items []membership) []model.Membership {
	if len(items) == 0 {
		return make([]model.Membership, 0)
	}

	res := make([]model.Membership, len(items))
	for i, item := range items {
		res[i] = membershipFromStorage(&item)
	}
	return res
}

func membershipToStorage(item model.Membership) membership {
	return membership{ID: item.ID, UserID: item.UserID, UserEmail: item.UserEmail, UserName: item.UserName,
		OrganizationID: item.OrganizationID, Role: item.Role, JoinedAt: item.JoinedAt, IsActive: item.IsActive,
		DateUpdated: item.DateUpdated}
}

// UserOrganizationsCache
func userOrganizationsCacheToStorage(item model.UserOrganizationsCache) userOrganizationsCache {
	organizations := make([]userOrganization, len(item.Organizations))
	for i, org := range item.Organizations {
		organizations[i] = userOrganization{OrganizationID: org.OrganizationID, OrganizationName: org.OrganizationName,
			OrganizationType: org.OrganizationType, UserRole: org.UserRole, JoinedAt: org.JoinedAt, IsActive: org.IsActive,
			EnabledServices: org.EnabledServices}
	}
	return userOrganizationsCache{UserID: item.UserID, Organizations: organizations, DateCached: item.DateCached}
}

// Event
func eventFromStorage(item *event) model.Event {
	if item == nil {
		return model.Event{}
	}

	return model.Event{ID: item.ID, OrganizationID: item.OrganizationID, Title: item.Title, Description: item.Description,
		StartDate: item.StartDate, EndDate: item.EndDate, Location: item.Location, IsPublic: item.IsPublic,
		IsActive: item.IsActive, RequiresRSVP: item.RequiresRSVP, RSVPDeadline: item.RSVPDeadline, Tags: item.Tags,
		IsRecurring: item.IsRecurring, RecurringPattern: item.RecurringPattern, CreatedBy: item.CreatedBy,
		DateCreated: item.DateCreated}
}

func eventsFromStorage(items []event) []model.Event {
	if len(items) == 0 {
		return make([]model.Event, 0)
	}

	res := make([]model.Event, len(items))
	for i, item := range items {
		res[i] = eventFromStorage(&item)
	}
	return res
}

// RSVP
func rsvpFromStorage(item *rsvp) model.RSVP {
	if item == nil {
		return model.RSVP{}
	}

	return model.RSVP{ID: item.ID, EventID: item.EventID, UserID: item.UserID, OrganizationID: item.OrganizationID,
		Status: item.Status, Attendees: item.Attendees, Notes: item.Notes, SubmittedAt: item.SubmittedAt,
		DateUpdated: item.DateUpdated}
}

func rsvpsFromStorage(items []rsvp) []model.RSVP {
	if len(items) == 0 {
		return make([]model.RSVP, 0)
	}

	res := make([]model.RSVP, len(items))
	for i, item := range items {
		res[i] = rsvpFromStorage(&item)
	}
	return res
}

// SyncPreferences

// syncPreferencesFromStorage completes the sections missing in the stored document with the defaults
func syncPreferencesFromStorage(item *syncPreferences) model.CrossOrgSyncPreferences {
	if item == nil {
		return model.CrossOrgSyncPreferences{}
	}

	res := model.DefaultSyncPreferences(item.UserID, item.CreatedAt)
	if item.Enabled != nil {
		res.Enabled = *item.Enabled
	}

	if settings := item.SyncSettings; settings != nil {
		if settings.Events != nil {
			res.SyncSettings.Events = model.EventSyncSettings{Enabled: settings.Events.Enabled,
				IncludeRSVPd: settings.Events.IncludeRSVPd, IncludePending: settings.Events.IncludePending,
				IncludePublic: settings.Events.IncludePublic, AutoDeclineAfterDeadline: settings.Events.AutoDeclineAfterDeadline}
		}
		if settings.Announcements != nil {
			res.SyncSettings.Announcements = model.AnnouncementSyncSettings{Enabled: settings.Announcements.Enabled,
				ImportantOnly: settings.Announcements.ImportantOnly}
		}
		if settings.Documents != nil {
			res.SyncSettings.Documents = model.DocumentSyncSettings{Enabled: settings.Documents.Enabled}
		}
		if settings.Resources != nil {
			res.SyncSettings.Resources = model.ResourceSyncSettings{Enabled: settings.Resources.Enabled}
		}
	}

	for orgID, override := range item.OrganizationOverrides {
		res.OrganizationOverrides[orgID] = model.OrganizationOverride{Enabled: override.Enabled, SyncServices: override.SyncServices}
	}

	if item.SyncFrequency != "" {
		res.SyncFrequency = item.SyncFrequency
	}
	res.LastSyncAt = item.LastSyncAt
	res.UpdatedAt = item.UpdatedAt
	return res
}

func syncPreferencesToStorage(item model.CrossOrgSyncPreferences) syncPreferences {
	enabled := item.Enabled
	events := item.SyncSettings.Events
	settings := syncSettings{
		Events: &eventSyncSettings{Enabled: events.Enabled, IncludeRSVPd: events.IncludeRSVPd, IncludePending: events.IncludePending,
			IncludePublic: events.IncludePublic, AutoDeclineAfterDeadline: events.AutoDeclineAfterDeadline},
		Announcements: &announcementSyncSettings{Enabled: item.SyncSettings.Announcements.Enabled,
			ImportantOnly: item.SyncSettings.Announcements.ImportantOnly},
		Documents: &documentSyncSettings{Enabled: item.SyncSettings.Documents.Enabled},
		Resources: &resourceSyncSettings{Enabled: item.SyncSettings.Resources.Enabled},
	}

	overrides := make(map[string]organizationOverride, len(item.OrganizationOverrides))
	for orgID, override := range item.OrganizationOverrides {
		overrides[orgID] = organizationOverride{Enabled: override.Enabled, SyncServices: override.SyncServices}
	}

	return syncPreferences{UserID: item.UserID, Enabled: &enabled, SyncSettings: &settings, OrganizationOverrides: overrides,
		SyncFrequency: item.SyncFrequency, LastSyncAt: item.LastSyncAt, CreatedAt: item.CreatedAt, UpdatedAt: item.UpdatedAt}
}

// SyncStatus
func syncStatusFromStorage(item *syncStatus) model.SyncStatus {
	if item == nil {
		return model.SyncStatus{}
	}

	recentErrors := make([]model.SyncError, len(item.RecentErrors))
	for i, syncErr := range item.RecentErrors {
		recentErrors[i] = model.SyncError{OrganizationID: syncErr.OrganizationID, Message: syncErr.Message, OccurredAt: syncErr.OccurredAt}
	}
	statistics := model.SyncStatistics(item.Statistics)

	return model.SyncStatus{UserID: item.UserID, IsRunning: item.IsRunning, LastSyncAt: item.LastSyncAt,
		NextSyncAt: item.NextSyncAt, Statistics: statistics, RecentErrors: recentErrors}
}

func syncStatusToStorage(item model.SyncStatus) syncStatus {
	recentErrors := make([]syncError, len(item.RecentErrors))
	for i, syncErr := range item.RecentErrors {
		recentErrors[i] = syncError{OrganizationID: syncErr.OrganizationID, Message: syncErr.Message, OccurredAt: syncErr.OccurredAt}
	}

	return syncStatus{UserID: item.UserID, IsRunning: item.IsRunning, LastSyncAt: item.LastSyncAt, NextSyncAt: item.NextSyncAt,
		Statistics: syncStatistics(item.Statistics), RecentErrors: recentErrors}
}

// AccountRequest
func accountRequestFromStorage(item *accountRequest) model.AccountRequest {
	if item == nil {
		return model.AccountRequest{}
	}

	return model.AccountRequest{ID: item.ID, OrganizationID: item.OrganizationID, UserID: item.UserID, Email: item.Email,
		Name: item.Name, Message: item.Message, Status: item.Status, ReviewedBy: item.ReviewedBy, ReviewNote: item.ReviewNote,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

func accountRequestsFromStorage(items []accountRequest) []model.AccountRequest {
	if len(items) == 0 {
		return make([]model.AccountRequest, 0)
	}

	res := make([]model.AccountRequest, len(items))
	for i, item := range items {
		res[i] = accountRequestFromStorage(&item)
	}
	return res
}

func accountRequestToStorage(item model.AccountRequest) accountRequest {
	return accountRequest{ID: item.ID, OrganizationID: item.OrganizationID, UserID: item.UserID, Email: item.Email,
		Name: item.Name, Message: item.Message, Status: item.Status, ReviewedBy: item.ReviewedBy, ReviewNote: item.ReviewNote,
		DateCreated: item.DateCreated, DateUpdated: item.DateUpdated}
}

// PushSubscription
func pushSubscriptionsFromStorage(items []pushSubscription) []model.PushSubscription {
	res := make([]model.PushSubscription, len(items))
	for i, item := range items {
		res[i] = model.PushSubscription{ID: item.ID, UserID: item.UserID, Endpoint: item.Endpoint, P256dh: item.P256dh,
			Auth: item.Auth, DeviceName: item.DeviceName, DateCreated: item.DateCreated}
	}
	return res
}

func pushSubscriptionToStorage(item model.PushSubscription) pushSubscription {
	return pushSubscription{ID: item.ID, UserID: item.UserID, Endpoint: item.Endpoint, P256dh: item.P256dh, Auth: item.Auth,
		DeviceName: item.DeviceName, DateCreated: item.DateCreated}
}
