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
	"pack-portal/utils"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"gopkg.in/go-playground/validator.v9"
)

func (app *application) serGetSyncPreferences(userID string) (*model.CrossOrgSyncPreferences, error) {
	err := checkUser(userID)
	if err != nil {
		return nil, err
	}

	return app.getSyncPreferences(userID)
}

func (app *application) serUpdateSyncPreferences(userID string, update model.SyncPreferencesUpdate) (*model.CrossOrgSyncPreferences, error) {
	err := checkUser(userID)
	if err != nil {
		return nil, err
	}

	return app.updateSyncPreferences(userID, update)
}

// getSyncPreferences gives the stored preferences or the defaults when the user has none
func (app *application) getSyncPreferences(userID string) (*model.CrossOrgSyncPreferences, error) {
	resolved, err := app.resolveSyncPreferences(userID)
	if err != nil {
		return nil, err
	}
	return &resolved.Preferences, nil
}

// resolveSyncPreferences gives the user preferences tagged with where they come from.
// Defaults are not persisted.
func (app *application) resolveSyncPreferences(userID string) (*model.ResolvedSyncPreferences, error) {
	stored, err := app.storage.FindSyncPreferences(userID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeSyncPreferences, &logutils.FieldArgs{"user_id": userID}, err)
	}
	if stored == nil {
		defaults := model.DefaultSyncPreferences(userID, app.now())
		return &model.ResolvedSyncPreferences{Preferences: defaults, Source: model.SyncPreferencesDefaulted}, nil
	}

	if stored.OrganizationOverrides == nil {
		stored.OrganizationOverrides = map[string]model.OrganizationOverride{}
	}
	return &model.ResolvedSyncPreferences{Preferences: *stored, Source: model.SyncPreferencesStored}, nil
}

// updateSyncPreferences merges the partial update into the user preferences and saves them
func (app *application) updateSyncPreferences(userID string, update model.SyncPreferencesUpdate) (*model.CrossOrgSyncPreferences, error) {
	resolved, err := app.resolveSyncPreferences(userID)
	if err != nil {
		return nil, err
	}

	preferences := resolved.Preferences
	update.Apply(&preferences)

	validate := validator.New()
	err = validate.Struct(preferences)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionValidate, model.TypeSyncFrequency, logutils.StringArgs(preferences.SyncFrequency), err).SetStatus(utils.ErrorStatusInvalid)
	}

	now := app.now()
	if resolved.Source == model.SyncPreferencesDefaulted {
		preferences.CreatedAt = now
	}
	preferences.UpdatedAt = now

	err = app.storage.SaveSyncPreferences(preferences)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionSave, model.TypeSyncPreferences, &logutils.FieldArgs{"user_id": userID}, err)
	}

	return &preferences, nil
}
