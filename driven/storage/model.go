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

import "time"

type organization struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
	Type string `bson:"type"`

	Components []string `bson:"components"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated"`
}

type membership struct {
	ID string `bson:"_id"`

	UserID    string `bson:"user_id"`
	UserEmail string `bson:"user_email"`
	UserName  string `bson:"user_name"`

	OrganizationID string `bson:"organization_id"`
	Role           string `bson:"role"`

	JoinedAt time.Time `bson:"joined_at"`
	IsActive bool      `bson:"is_active"`

	DateUpdated *time.Time `bson:"date_updated"`
}

type userOrganization struct {
	OrganizationID   string `bson:"organization_id"`
	OrganizationName string `bson:"organization_name"`
	OrganizationType string `bson:"organization_type"`

	UserRole string    `bson:"user_role"`
	JoinedAt time.Time `bson:"joined_at"`
	IsActive bool      `bson:"is_active"`

	EnabledServices []string `bson:"enabled_services"`
}

type userOrganizationsCache struct {
	UserID        string             `bson:"_id"`
	Organizations []userOrganization `bson:"organizations"`
	DateCached    time.Time          `bson:"date_cached"`
}

type event struct {
	ID             string `bson:"_id"`
	OrganizationID string `bson:"organization_id"`

	Title       *string    `bson:"title"`
	Description *string    `bson:"description"`
	StartDate   *time.Time `bson:"start_date"`
	EndDate     *time.Time `bson:"end_date"`
	Location    *string    `bson:"location"`

	IsPublic     bool       `bson:"is_public"`
	IsActive     bool       `bson:"is_active"`
	RequiresRSVP bool       `bson:"requires_rsvp"`
	RSVPDeadline *time.Time `bson:"rsvp_deadline"`

	Tags             []string `bson:"tags"`
	IsRecurring      bool     `bson:"is_recurring"`
	RecurringPattern *string  `bson:"recurring_pattern"`

	CreatedBy   string     `bson:"created_by"`
	DateCreated *time.Time `bson:"date_created"`
}

type rsvp struct {
	ID             string `bson:"_id"`
	EventID        string `bson:"event_id"`
	UserID         string `bson:"user_id"`
	OrganizationID string `bson:"organization_id"`

	Status    string  `bson:"status"`
	Attendees *int    `bson:"attendees"`
	Notes     *string `bson:"notes"`

	SubmittedAt time.Time  `bson:"submitted_at"`
	DateUpdated *time.Time `bson:"date_updated"`
}

// syncPreferences is keyed by user. Settings documents written by older clients may miss sections.
type syncPreferences struct {
	UserID  string `bson:"_id"`
	Enabled *bool  `bson:"enabled"`

	SyncSettings          *syncSettings                   `bson:"sync_settings"`
	OrganizationOverrides map[string]organizationOverride `bson:"organization_overrides"`

	SyncFrequency string     `bson:"sync_frequency"`
	LastSyncAt    *time.Time `bson:"last_sync_at"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type syncSettings struct {
	Events        *eventSyncSettings        `bson:"events"`
	Announcements *announcementSyncSettings `bson:"announcements"`
	Documents     *documentSyncSettings     `bson:"documents"`
	Resources     *resourceSyncSettings     `bson:"resources"`
}

type eventSyncSettings struct {
	Enabled                  bool `bson:"enabled"`
	IncludeRSVPd             bool `bson:"include_rsvpd"`
	IncludePending           bool `bson:"include_pending"`
	IncludePublic            bool `bson:"include_public"`
	AutoDeclineAfterDeadline bool `bson:"auto_decline_after_deadline"`
}

type announcementSyncSettings struct {
	Enabled       bool `bson:"enabled"`
	ImportantOnly bool `bson:"important_only"`
}

type documentSyncSettings struct {
	Enabled bool `bson:"enabled"`
}

type resourceSyncSettings struct {
	Enabled bool `bson:"enabled"`
}

type organizationOverride struct {
	Enabled      bool     `bson:"enabled"`
	SyncServices []string `bson:"sync_services"`
}

type syncStatus struct {
	UserID     string     `bson:"_id"`
	IsRunning  bool       `bson:"is_running"`
	LastSyncAt *time.Time `bson:"last_sync_at"`
	NextSyncAt *time.Time `bson:"next_sync_at"`

	Statistics   syncStatistics `bson:"statistics"`
	RecentErrors []syncError    `bson:"recent_errors"`
}

type syncStatistics struct {
	TotalOrganizations  int `bson:"total_organizations"`
	ActiveOrganizations int `bson:"active_organizations"`
	TotalEventsSynced   int `bson:"total_events_synced"`
	PendingRSVPs        int `bson:"pending_rsvps"`
	UpcomingEvents      int `bson:"upcoming_events"`
	Errors              int `bson:"errors"`
}

type syncError struct {
	OrganizationID string    `bson:"organization_id"`
	Message        string    `bson:"message"`
	OccurredAt     time.Time `bson:"occurred_at"`
}

type accountRequest struct {
	ID             string `bson:"_id"`
	OrganizationID string `bson:"organization_id"`
	UserID         string `bson:"user_id"`

	Email   string  `bson:"email"`
	Name    string  `bson:"name"`
	Message *string `bson:"message"`

	Status     string  `bson:"status"`
	ReviewedBy *string `bson:"reviewed_by"`
	ReviewNote *string `bson:"review_note"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated"`
}

type pushSubscription struct {
	ID     string `bson:"_id"`
	UserID string `bson:"user_id"`

	Endpoint string `bson:"endpoint"`
	P256dh   string `bson:"p256dh"`
	Auth     string `bson:"auth"`

	DeviceName  string    `bson:"device_name"`
	DateCreated time.Time `bson:"date_created"`
}
