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
	//TypeAggregatedCalendarEvent ...
	TypeAggregatedCalendarEvent logutils.MessageDataType = "aggregated calendar event"
	//TypeCalendarFeed ...
	TypeCalendarFeed logutils.MessageDataType = "calendar feed"

	//EventSourceOrganization events coming from an organization the user belongs to
	EventSourceOrganization string = "organization"
	//EventSourcePersonal events owned by the user
	EventSourcePersonal string = "personal"

	//EventTypeOrganization ...
	EventTypeOrganization string = "organization_event"
	//EventIconOrganization ...
	EventIconOrganization string = "organization"

	//PriorityHigh ...
	PriorityHigh string = "high"
	//PriorityMedium ...
	PriorityMedium string = "medium"
	//PriorityLow ...
	PriorityLow string = "low"
)

// rsvpStatusColors gives the display color of every RSVP status
var rsvpStatusColors = map[string]string{
	RSVPStatusGoing:        "#10B981", //green
	RSVPStatusNotGoing:     "#EF4444", //red
	RSVPStatusMaybe:        "#F59E0B", //amber
	RSVPStatusPending:      "#8B5CF6", //purple
	RSVPStatusNotResponded: "#6B7280", //gray
}

// RSVPStatusColor gives the display color for an RSVP status
func RSVPStatusColor(status string) string {
	if color, ok := rsvpStatusColors[status]; ok {
		return color
	}
	return rsvpStatusColors[RSVPStatusNotResponded]
}

// AggregatedCalendarEvent is the read-only projection of an event shown in the personal calendar
type AggregatedCalendarEvent struct {
	ID          string
	Title       string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	Location    *string

	Source     string
	SourceID   string
	SourceName string
	EventType  string

	RequiresRSVP bool
	RSVPStatus   *string
	RSVPDeadline *time.Time
	CanRSVP      bool

	Actions EventActions

	Color    *string
	Icon     *string
	Priority string
}

// EventActions are the actions the user may perform on an aggregated event
type EventActions struct {
	CanEdit        bool
	CanDelete      bool
	CanRSVP        bool
	CanViewDetails bool
}
