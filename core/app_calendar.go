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
	"pack-portal/core/model"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"golang.org/x/sync/errgroup"
)

// organizationSyncResult is what the sync of one organization gives
type organizationSyncResult struct {
	skipped bool
	events  []model.AggregatedCalendarEvent
	err     error
}

func (app *application) serGetAggregatedCalendarEvents(userID string, startDate *time.Time, endDate *time.Time, l *logs.Log) ([]model.AggregatedCalendarEvent, error) {
	err := checkUser(userID)
	if err != nil {
		return nil, err
	}

	return app.getAggregatedCalendarEvents(userID, startDate, endDate, l)
}

// getAggregatedCalendarEvents gives the events of all organizations the user belongs to as personal calendar events.
// One organization failing does not fail the others - it is just missing from the result.
func (app *application) getAggregatedCalendarEvents(userID string, startDate *time.Time, endDate *time.Time, l *logs.Log) ([]model.AggregatedCalendarEvent, error) {
	preferences, err := app.getSyncPreferences(userID)
	if err != nil {
		return nil, err
	}
	if !preferences.EventsEnabled() {
		return []model.AggregatedCalendarEvent{}, nil
	}

	organizations := app.discoverUserOrganizations(userID, l)

	results := make([]organizationSyncResult, len(organizations))
	var group errgroup.Group
	group.SetLimit(maxConcurrentOrganizations)
	for i, organization := range organizations {
		if preferences.OrganizationDisabled(organization.OrganizationID) {
			results[i] = organizationSyncResult{skipped: true}
			continue
		}
		group.Go(func() error {
			events, err := app.syncOrganizationEvents(organization, userID, *preferences, startDate, endDate)
			if err != nil {
				l.Errorf("error syncing events of organization %s for user %s - %s", organization.OrganizationID, userID, err)
			}
			results[i] = organizationSyncResult{events: events, err: err}
			return nil
		})
	}
	group.Wait()

	aggregated := []model.AggregatedCalendarEvent{}
	for _, result := range results {
		aggregated = append(aggregated, result.events...)
	}

	app.updateSyncStatus(userID, *preferences, organizations, results, aggregated, l)

	return aggregated, nil
}

// syncOrganizationEvents runs the fetch, enrich, filter and project stages for one organization
func (app *application) syncOrganizationEvents(organization model.UserOrganization, userID string, preferences model.CrossOrgSyncPreferences,
	startDate *time.Time, endDate *time.Time) ([]model.AggregatedCalendarEvent, error) {
	events, err := app.getOrganizationEvents(organization.OrganizationID, organization.OrganizationName, startDate, endDate)
	if err != nil {
		return nil, err
	}

	events, err = app.enrichEventsWithRSVP(events, userID)
	if err != nil {
		return nil, err
	}
	applyAutoDecline(events, preferences)

	filtered := filterEventsByPreferences(events, preferences)

	now := app.now()
	aggregated := make([]model.AggregatedCalendarEvent, len(filtered))
	for i, event := range filtered {
		aggregated[i] = convertToAggregatedEvent(event, organization, now)
	}
	return aggregated, nil
}
