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
	//TypePushSubscription ...
	TypePushSubscription logutils.MessageDataType = "push subscription"
	//TypeNotification ...
	TypeNotification logutils.MessageDataType = "notification"
)

// PushSubscription is a browser push subscription registered by a user
type PushSubscription struct {
	ID     string `validate:"required"`
	UserID string `validate:"required"`

	Endpoint string `validate:"required,url"`
	P256dh   string `validate:"required"`
	Auth     string `validate:"required"`

	DeviceName  string
	DateCreated time.Time
}

// Notification is a message fanned out to users by email and push
type Notification struct {
	Title string
	Body  string
	URL   string
	Tag   string
}
