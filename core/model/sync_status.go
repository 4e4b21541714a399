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
	//TypeSyncStatus ...
	TypeSyncStatus logutils.MessageDataType = "sync status"

	//MaxRecentSyncErrors is how many sync errors are kept in the status
	MaxRecentSyncErrors int = 10
)

// syncIntervals gives the time between two syncs for a frequency
var syncIntervals = map[string]time.Duration{
	SyncFrequencyRealtime: 5 * time.Minute,
	SyncFrequencyHourly:   time.Hour,
	SyncFrequencyDaily:    24 * time.Hour,
}

// NextSyncAt gives when the next sync is due for a frequency. Manual syncs are never due.
func NextSyncAt(frequency string, lastSync time.Time) *time.Time {
	interval, ok := syncIntervals[frequency]
	if !ok {
		return nil
	}
	next := lastSync.Add(interval)
	return &next
}

// SyncStatus is the cached outcome of the last cross organization sync of a user
type SyncStatus struct {
	UserID     string
	IsRunning  bool
	LastSyncAt *time.Time
	NextSyncAt *time.Time

	Statistics   SyncStatistics
	RecentErrors []SyncError
}

// SyncStatistics counts what the last sync found
type SyncStatistics struct {
	TotalOrganizations  int
	ActiveOrganizations int
	TotalEventsSynced   int
	PendingRSVPs        int
	UpcomingEvents      int
	Errors              int
}

// SyncError records one organization that failed to sync
type SyncError struct {
	OrganizationID string
	Message        string
	OccurredAt     time.Time
}

// AddErrors appends errors keeping only the most recent ones
func (s *SyncStatus) AddErrors(syncErrors []SyncError) {
	s.RecentErrors = append(s.RecentErrors, syncErrors...)
	if len(s.RecentErrors) > MaxRecentSyncErrors {
		s.RecentErrors = s.RecentErrors[len(s.RecentErrors)-MaxRecentSyncErrors:]
	}
}
