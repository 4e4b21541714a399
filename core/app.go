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
	"pack-portal/core/interfaces"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

const (
	//maxOrganizationEvents is the max number of events loaded per organization
	maxOrganizationEvents int64 = 50
	//maxConcurrentOrganizations bounds the organizations synced at the same time
	maxConcurrentOrganizations int = 4
	//upcomingEventsWindow is how far ahead an event counts as upcoming
	upcomingEventsWindow time.Duration = 7 * 24 * time.Hour
)

// application represents the core application code based on hexagonal architecture
type application struct {
	env     string
	version string
	build   string

	storage    interfaces.Storage
	emailer    interfaces.Emailer
	pushSender interfaces.PushSender

	logger *logs.Logger

	now func() time.Time
}

// start starts the core part of the application
func (app *application) start() {
	//set storage listener
	storageListener := StorageListener{app: app}
	app.storage.RegisterStorageListener(&storageListener)
}

// StorageListener listens for change data storage events
type StorageListener struct {
	app *application
}

// OnOrganizationsUpdated notifies that the organizations have been updated
func (al *StorageListener) OnOrganizationsUpdated() {
	al.app.logger.Info("organizations updated")
}
