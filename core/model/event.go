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
	"fmt"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

const (
	//TypeEvent ...
	TypeEvent logutils.MessageDataType = "event"
	//TypeOrgEvent ...
	TypeOrgEvent logutils.MessageDataType = "organization event"
	//TypeRSVP ...
	TypeRSVP logutils.MessageDataType = "rsvp"
	//TypeRSVPStatus ...
	TypeRSVPStatus logutils.MessageDataType = "rsvp status"
	//TypeRSVPDeadline ...
	TypeRSVPDeadline logutils.MessageDataType = "rsvp deadline"

	//RSVPStatusGoing the user is going
	RSVPStatusGoing string = "going"
	//RSVPStatusNotGoing the user is not going
	RSVPStatusNotGoing string = "not_going"
	//RSVPStatusMaybe the user may go
	RSVPStatusMaybe string = "maybe"
	//RSVPStatusPending the deadline passed without a response
	RSVPStatusPending string = "pending"
	//RSVPStatusNotResponded the user has not responded yet
	RSVPStatusNotResponded string = "not_responded"

	//UntitledEventTitle is used for events stored without a title
	UntitledEventTitle string = "Untitled Event"
)

// Event is an organization event as it is stored. Optional fields may be missing.
type Event struct {
	ID             string
	OrganizationID string

	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Location    *string

	IsPublic     bool
	IsActive     bool
	RequiresRSVP bool
	RSVPDeadline *time.Time

	Tags             []string
	IsRecurring      bool
	RecurringPattern *string

	CreatedBy   string
	DateCreated *time.Time
}

// UserRSVP is the RSVP response of the current user attached to an event
type UserRSVP struct {
	Status      string
	Attendees   *int
	Notes       *string
	SubmittedAt time.Time
}

// OrgEvent is a normalized organization event enriched with the user RSVP state
type OrgEvent struct {
	EventID          string
	OrganizationID   string
	OrganizationName string

	Title       string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	Location    *string

	IsPublic       bool
	RequiresRSVP   bool
	UserRSVPStatus string
	RSVPDeadline   *time.Time
	UserRSVP       *UserRSVP

	Tags             []string
	IsRecurring      bool
	RecurringPattern *string

	CreatedBy string
	CreatedAt time.Time
}

// DeadlinePassed says if the event has an RSVP deadline before now
func (e OrgEvent) DeadlinePassed(now time.Time) bool {
	return e.RSVPDeadline != nil && e.RSVPDeadline.Before(now)
}

func (e OrgEvent) String() string {
	return fmt.Sprintf("[EventID:%s\tOrganizationID:%s\tTitle:%s\tStartDate:%s\tUserRSVPStatus:%s]",
		e.EventID, e.OrganizationID, e.Title, e.StartDate, e.UserRSVPStatus)
}

// RSVP represents the stored response of a user to an event invitation
type RSVP struct {
	ID             string
	EventID        string
	UserID         string
	OrganizationID string

	Status    string
	Attendees *int
	Notes     *string

	SubmittedAt time.Time
	DateUpdated *time.Time
}

// IsRSVPResponseStatus says if the status is one a user can submit
func IsRSVPResponseStatus(status string) bool {
	switch status {
	case RSVPStatusGoing, RSVPStatusNotGoing, RSVPStatusMaybe:
		return true
	}
	return false
}
