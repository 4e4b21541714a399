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
	"pack-portal/core/mocks"
	"pack-portal/core/model"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func TestEncodeCalendarFeed(t *testing.T) {
	going := model.RSVPStatusGoing
	notGoing := model.RSVPStatusNotGoing
	pending := model.RSVPStatusPending
	events := []model.AggregatedCalendarEvent{
		{ID: "org_org1_e1", Title: "Pinewood Derby", StartDate: testNow, EndDate: testNow.Add(time.Hour), SourceName: "Pack 12",
			Location: stringRef("Gym"), RSVPStatus: &going},
		{ID: "org_org1_e2", Title: "Campout", StartDate: testNow, EndDate: testNow.Add(time.Hour), SourceName: "Pack 12", RSVPStatus: &notGoing},
		{ID: "org_org2_e3", Title: "Hike", StartDate: testNow, EndDate: testNow.Add(time.Hour), SourceName: "Troop 7", RSVPStatus: &pending},
	}

	data, err := encodeCalendarFeed(events, testNow)
	assert.NilError(t, err)

	feed := string(data)
	assert.Equal(t, strings.Count(feed, "BEGIN:VEVENT"), 3)
	assert.Assert(t, strings.Contains(feed, "UID:org_org1_e1"))
	assert.Assert(t, strings.Contains(feed, "SUMMARY:Pinewood Derby"))
	assert.Assert(t, strings.Contains(feed, "LOCATION:Gym"))
	assert.Assert(t, strings.Contains(feed, "STATUS:CONFIRMED"))
	assert.Assert(t, strings.Contains(feed, "STATUS:CANCELLED"))
	assert.Assert(t, strings.Contains(feed, "STATUS:TENTATIVE"))
	assert.Assert(t, strings.Contains(feed, "PRODID:"+calendarProductID))
}

func TestSerGetCalendarFeed(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindSyncPreferences", "user").Return(nil, nil)
	expectMemberships(storage, "user", testOrganization("org1", "Pack 12"))
	expectSyncStatus(storage, "user")
	storage.On("FindOrganizationEvents", "org1", mock.Anything, mock.Anything, maxOrganizationEvents).
		Return([]model.Event{testEvent("e1", "org1", true, false), testEvent("e2", "org1", false, false)}, nil)
	storage.On("FindUserRSVPs", "user", []string{"e1", "e2"}).Return(nil, nil)

	app := newTestApplication(storage, nil, nil)
	data, err := app.serGetCalendarFeed("user", nil, nil, newTestLog())
	assert.NilError(t, err)
	assert.Equal(t, strings.Count(string(data), "BEGIN:VEVENT"), 1)
	assert.Assert(t, strings.Contains(string(data), "UID:org_org1_e1"))
}

func TestEncodeCalendarFeed_Empty(t *testing.T) {
	data, err := encodeCalendarFeed([]model.AggregatedCalendarEvent{}, testNow)
	assert.NilError(t, err)

	feed := string(data)
	assert.Assert(t, strings.HasPrefix(feed, "BEGIN:VCALENDAR\r\n"))
	assert.Assert(t, strings.HasSuffix(feed, "END:VCALENDAR\r\n"))
	assert.Assert(t, strings.Contains(feed, "PRODID:"+calendarProductID))
	assert.Equal(t, strings.Count(feed, "BEGIN:VEVENT"), 0)
}
