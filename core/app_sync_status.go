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

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

func (app *application) serGetSyncStatus(userID string) (*model.SyncStatus, error) {
	err := checkUser(userID)
	if err != nil {
		return nil, err
	}

	status, err := app.storage.FindSyncStatus(userID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeSyncStatus, &logutils.FieldArgs{"user_id": userID}, err)
	}
	if status == nil {
		return &model.SyncStatus{UserID: userID, RecentErrors: []model.SyncError{}}, nil
	}
	return status, nil
}

// updateSyncStatus stores the outcome of a sync. Failures are only logged.
func (app *application) updateSyncStatus(userID string, preferences model.CrossOrgSyncPreferences, organizations []model.UserOrganization,
	results []organizationSyncResult, events []model.AggregatedCalendarEvent, l *logs.Log) {
	status, err := app.storage.FindSyncStatus(userID)
	if err != nil {
		l.Warnf("error finding sync status for user %s - %s", userID, err)
		return
	}
	if status == nil {
		status = &model.SyncStatus{UserID: userID}
	}

	now := app.now()
	statistics := model.SyncStatistics{TotalOrganizations: len(organizations), TotalEventsSynced: len(events)}
	syncErrors := []model.SyncError{}
	for i, result := range results {
		if result.skipped {
			continue
		}
		statistics.ActiveOrganizations++
		if result.err != nil {
			syncErrors = append(syncErrors, model.SyncError{OrganizationID: organizations[i].OrganizationID,
				Message: result.err.Error(), OccurredAt: now})
		}
	}
	statistics.Errors = len(syncErrors)

	for _, event := range events {
		if event.CanRSVP || (event.RSVPStatus != nil && *event.RSVPStatus == model.RSVPStatusPending) {
			statistics.PendingRSVPs++
		}
		untilStart := event.StartDate.Sub(now)
		if untilStart >= 0 && untilStart <= upcomingEventsWindow {
			statistics.UpcomingEvents++
		}
	}

	status.IsRunning = false
	status.LastSyncAt = &now
	status.NextSyncAt = model.NextSyncAt(preferences.SyncFrequency, now)
	status.Statistics = statistics
	status.AddErrors(syncErrors)

	err = app.storage.SaveSyncStatus(*status)
	if err != nil {
		l.Warnf("error saving sync status for user %s - %s", userID, err)
	}
}
