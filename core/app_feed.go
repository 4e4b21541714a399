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
	"bytes"
	"pack-portal/core/model"
	"time"

	"github.com/emersion/go-ical"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

const calendarProductID string = "-//Pack Portal//Calendar Sync//EN"

func (app *application) serGetCalendarFeed(userID string, startDate *time.Time, endDate *time.Time, l *logs.Log) ([]byte, error) {
	err := checkUser(userID)
	if err != nil {
		return nil, err
	}

	events, err := app.getAggregatedCalendarEvents(userID, startDate, endDate, l)
	if err != nil {
		return nil, err
	}

	return encodeCalendarFeed(events, app.now())
}

// encodeCalendarFeed encodes the aggregated events as an iCalendar document
func encodeCalendarFeed(events []model.AggregatedCalendarEvent, now time.Time) ([]byte, error) {
	if len(events) == 0 {
		//a VCALENDAR needs at least one component so the empty feed is written by hand
		return []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + calendarProductID + "\r\nEND:VCALENDAR\r\n"), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, calendarProductID)

	for _, item := range events {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, item.ID)
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetDateTime(ical.PropDateTimeStart, item.StartDate.UTC())
		event.Props.SetDateTime(ical.PropDateTimeEnd, item.EndDate.UTC())
		event.Props.SetText(ical.PropSummary, item.Title)
		if item.Description != nil {
			event.Props.SetText(ical.PropDescription, *item.Description)
		}
		if item.Location != nil {
			event.Props.SetText(ical.PropLocation, *item.Location)
		}
		event.Props.SetText(ical.PropCategories, item.SourceName)
		if item.RSVPStatus != nil {
			event.Props.SetText(ical.PropStatus, calendarEventStatus(*item.RSVPStatus))
		}
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	err := ical.NewEncoder(&buf).Encode(cal)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionEncode, model.TypeCalendarFeed, nil, err)
	}
	return buf.Bytes(), nil
}

func calendarEventStatus(rsvpStatus string) string {
	switch rsvpStatus {
	case model.RSVPStatusGoing:
		return "CONFIRMED"
	case model.RSVPStatusNotGoing:
		return "CANCELLED"
	}
	return "TENTATIVE"
}
