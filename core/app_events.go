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

package core

import (
	"fmt"
	"pack-portal/core/model"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

// getOrganizationEvents gives the active events of an organization normalized for the sync pipeline
func (app *application) getOrganizationEvents(orgID string, orgName string, startDate *time.Time, endDate *time.Time) ([]model.OrgEvent, error) {
	events, err := app.storage.FindOrganizationEvents(orgID, startDate, endDate, maxOrganizationEvents)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeEvent, &logutils.FieldArgs{"organization_id": orgID}, err)
	}

	now := app.now()
	orgEvents := make([]model.OrgEvent, len(events))
	for i, event := range events {
		orgEvents[i] = orgEventFromEvent(event, orgName, now)
	}
	return orgEvents, nil
}

// orgEventFromEvent normalizes a stored event so that later stages never see missing titles or dates
func orgEventFromEvent(event model.Event, orgName string, now time.Time) model.OrgEvent {
	title := model.UntitledEventTitle
	if event.Title != nil && *event.Title != "" {
		title = *event.Title
	}
	startDate := now
	if event.StartDate != nil {
		startDate = *event.StartDate
	}
	endDate := now
	if event.EndDate != nil {
		endDate = *event.EndDate
	}
	createdAt := now
	if event.DateCreated != nil {
		createdAt = *event.DateCreated
	}
	tags := event.Tags
	if tags == nil {
		tags = []string{}
	}

	return model.OrgEvent{EventID: event.ID, OrganizationID: event.OrganizationID, OrganizationName: orgName,
		Title: title, Description: event.Description, StartDate: startDate, EndDate: endDate, Location: event.Location,
		IsPublic: event.IsPublic, RequiresRSVP: event.RequiresRSVP, UserRSVPStatus: model.RSVPStatusNotResponded,
		RSVPDeadline: event.RSVPDeadline, Tags: tags, IsRecurring: event.IsRecurring, RecurringPattern: event.RecurringPattern,
		CreatedBy: event.CreatedBy, CreatedAt: createdAt}
}

// enrichEventsWithRSVP attaches the user RSVP to every event.
// All RSVPs for the events are loaded with one query.
func (app *application) enrichEventsWithRSVP(events []model.OrgEvent, userID string) ([]model.OrgEvent, error) {
	enriched := make([]model.OrgEvent, len(events))
	copy(enriched, events)
	if len(enriched) == 0 {
		return enriched, nil
	}

	eventIDs := make([]string, len(enriched))
	for i, event := range enriched {
		eventIDs[i] = event.EventID
	}

	rsvps, err := app.storage.FindUserRSVPs(userID, eventIDs)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeRSVP, &logutils.FieldArgs{"user_id": userID}, err)
	}
	rsvpsByEvent := make(map[string]model.RSVP, len(rsvps))
	for _, rsvp := range rsvps {
		rsvpsByEvent[rsvp.EventID] = rsvp
	}

	now := app.now()
	for i := range enriched {
		event := &enriched[i]
		rsvp, found := rsvpsByEvent[event.EventID]
		if found {
			event.UserRSVP = &model.UserRSVP{Status: rsvp.Status, Attendees: rsvp.Attendees, Notes: rsvp.Notes, SubmittedAt: rsvp.SubmittedAt}
			event.UserRSVPStatus = rsvp.Status
			continue
		}

		if event.DeadlinePassed(now) {
			event.UserRSVPStatus = model.RSVPStatusPending
		} else {
			event.UserRSVPStatus = model.RSVPStatusNotResponded
		}
	}

	return enriched, nil
}

// applyAutoDecline treats events whose deadline passed without an answer as declined
func applyAutoDecline(events []model.OrgEvent, preferences model.CrossOrgSyncPreferences) {
	if !preferences.SyncSettings.Events.AutoDeclineAfterDeadline {
		return
	}
	for i := range events {
		if events[i].UserRSVPStatus == model.RSVPStatusPending {
			events[i].UserRSVPStatus = model.RSVPStatusNotGoing
		}
	}
}

// filterEventsByPreferences keeps the events the user wants to see
func filterEventsByPreferences(events []model.OrgEvent, preferences model.CrossOrgSyncPreferences) []model.OrgEvent {
	settings := preferences.SyncSettings.Events

	filtered := make([]model.OrgEvent, 0, len(events))
	for _, event := range events {
		rsvpd := event.UserRSVPStatus == model.RSVPStatusGoing && settings.IncludeRSVPd

		awaiting := event.UserRSVPStatus == model.RSVPStatusNotResponded || event.UserRSVPStatus == model.RSVPStatusPending
		pending := awaiting && settings.IncludePending && event.RequiresRSVP

		public := event.IsPublic && settings.IncludePublic

		if rsvpd || pending || public {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// convertToAggregatedEvent projects an organization event to the personal calendar
func convertToAggregatedEvent(event model.OrgEvent, org model.UserOrganization, now time.Time) model.AggregatedCalendarEvent {
	deadlineOpen := event.RSVPDeadline == nil || event.RSVPDeadline.After(now)
	canRSVP := event.RequiresRSVP && deadlineOpen && event.UserRSVPStatus == model.RSVPStatusNotResponded

	status := event.UserRSVPStatus
	color := model.RSVPStatusColor(status)
	icon := model.EventIconOrganization

	//the user does not own organization events
	actions := model.EventActions{CanEdit: false, CanDelete: false, CanRSVP: canRSVP, CanViewDetails: true}

	return model.AggregatedCalendarEvent{ID: fmt.Sprintf("org_%s_%s", org.OrganizationID, event.EventID),
		Title: event.Title, Description: event.Description, StartDate: event.StartDate, EndDate: event.EndDate,
		Location: event.Location, Source: model.EventSourceOrganization, SourceID: org.OrganizationID,
		SourceName: org.OrganizationName, EventType: model.EventTypeOrganization, RequiresRSVP: event.RequiresRSVP,
		RSVPStatus: &status, RSVPDeadline: event.RSVPDeadline, CanRSVP: canRSVP, Actions: actions,
		Color: &color, Icon: &icon, Priority: eventPriority(event, now)}
}

// eventPriority gives the display priority - first match wins
func eventPriority(event model.OrgEvent, now time.Time) string {
	if event.RSVPDeadline != nil {
		untilDeadline := event.RSVPDeadline.Sub(now)
		if untilDeadline > 0 && untilDeadline <= 24*time.Hour {
			return model.PriorityHigh
		}
	}

	untilStart := event.StartDate.Sub(now)
	if untilStart >= 0 && untilStart <= 3*24*time.Hour && event.UserRSVPStatus == model.RSVPStatusGoing {
		return model.PriorityHigh
	}
	if event.RequiresRSVP && event.UserRSVPStatus == model.RSVPStatusNotResponded {
		return model.PriorityMedium
	}
	if untilStart >= 0 && untilStart <= 7*24*time.Hour {
		return model.PriorityMedium
	}
	return model.PriorityLow
}
