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
	"errors"
	"pack-portal/core/mocks"
	"pack-portal/core/model"
	"pack-portal/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func TestGetSyncPreferences_Defaults(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindSyncPreferences", "user").Return(nil, nil)

	app := newTestApplication(storage, nil, nil)
	preferences, err := app.serGetSyncPreferences("user")
	assert.NilError(t, err)
	assert.Equal(t, preferences.UserID, "user")
	assert.Equal(t, preferences.Enabled, true)
	assert.Equal(t, preferences.SyncSettings.Events.IncludePublic, false)
	assert.Equal(t, preferences.SyncSettings.Events.IncludeRSVPd, true)
	assert.Equal(t, preferences.SyncSettings.Events.IncludePending, true)
	assert.Equal(t, preferences.SyncSettings.Documents.Enabled, false)
	assert.Equal(t, preferences.SyncFrequency, model.SyncFrequencyHourly)
	//defaults are not persisted
	storage.AssertNumberOfCalls(t, "SaveSyncPreferences", 0)
}

func TestResolveSyncPreferences(t *testing.T) {
	stored := model.DefaultSyncPreferences("user", testNow.Add(-time.Hour))
	stored.OrganizationOverrides = nil

	storage := mocks.NewStorage(t)
	storage.On("FindSyncPreferences", "user").Return(&stored, nil)
	storage.On("FindSyncPreferences", "new").Return(nil, nil)
	storage.On("FindSyncPreferences", "broken").Return(nil, errors.New("timeout"))

	app := newTestApplication(storage, nil, nil)

	resolved, err := app.resolveSyncPreferences("user")
	assert.NilError(t, err)
	assert.Equal(t, resolved.Source, model.SyncPreferencesStored)
	assert.Assert(t, resolved.Preferences.OrganizationOverrides != nil)

	resolved, err = app.resolveSyncPreferences("new")
	assert.NilError(t, err)
	assert.Equal(t, resolved.Source, model.SyncPreferencesDefaulted)

	_, err = app.resolveSyncPreferences("broken")
	assert.ErrorContains(t, err, "timeout")
}

func TestUpdateSyncPreferences_Merge(t *testing.T) {
	createdAt := testNow.Add(-48 * time.Hour)
	stored := model.DefaultSyncPreferences("user", createdAt)
	stored.OrganizationOverrides["org1"] = model.OrganizationOverride{Enabled: false}

	storage := mocks.NewStorage(t)
	storage.On("FindSyncPreferences", "user").Return(&stored, nil)
	storage.On("SaveSyncPreferences", mock.AnythingOfType("model.CrossOrgSyncPreferences")).Return(nil)

	includePublic := true
	frequency := model.SyncFrequencyDaily
	update := model.SyncPreferencesUpdate{
		Events:                &model.EventSyncSettingsUpdate{IncludePublic: &includePublic},
		OrganizationOverrides: map[string]model.OrganizationOverride{"org2": {Enabled: true, SyncServices: []string{"events"}}},
		SyncFrequency:         &frequency,
	}

	app := newTestApplication(storage, nil, nil)
	preferences, err := app.serUpdateSyncPreferences("user", update)
	assert.NilError(t, err)
	assert.Equal(t, preferences.SyncSettings.Events.IncludePublic, true)
	assert.Equal(t, preferences.SyncSettings.Events.IncludeRSVPd, true)
	assert.Equal(t, preferences.SyncFrequency, model.SyncFrequencyDaily)
	assert.Equal(t, len(preferences.OrganizationOverrides), 2)
	assert.Equal(t, preferences.OrganizationOverrides["org1"].Enabled, false)
	assert.Equal(t, preferences.OrganizationOverrides["org2"].Enabled, true)
	assert.Equal(t, preferences.CreatedAt, createdAt)
	assert.Equal(t, preferences.UpdatedAt, testNow)
}

func TestUpdateSyncPreferences_FirstSave(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindSyncPreferences", "user").Return(nil, nil)
	storage.On("SaveSyncPreferences", mock.AnythingOfType("model.CrossOrgSyncPreferences")).Return(nil)

	enabled := false
	app := newTestApplication(storage, nil, nil)
	preferences, err := app.serUpdateSyncPreferences("user", model.SyncPreferencesUpdate{Enabled: &enabled})
	assert.NilError(t, err)
	assert.Equal(t, preferences.Enabled, false)
	assert.Equal(t, preferences.CreatedAt, testNow)
	storage.AssertNumberOfCalls(t, "SaveSyncPreferences", 1)
}

func TestUpdateSyncPreferences_InvalidFrequency(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("FindSyncPreferences", "user").Return(nil, nil)

	frequency := "weekly"
	app := newTestApplication(storage, nil, nil)
	_, err := app.serUpdateSyncPreferences("user", model.SyncPreferencesUpdate{SyncFrequency: &frequency})
	assert.Assert(t, err != nil)
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusInvalid)
	storage.AssertNumberOfCalls(t, "SaveSyncPreferences", 0)
}

func TestSerGetSyncPreferences_MissingUser(t *testing.T) {
	app := newTestApplication(mocks.NewStorage(t), nil, nil)

	_, err := app.serGetSyncPreferences("")
	assert.Equal(t, utils.ErrorStatus(err), utils.ErrorStatusMissingUser)
}
