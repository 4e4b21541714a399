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
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

// checkUser fails when there is no current user
func checkUser(userID string) error {
	if userID == "" {
		return errors.ErrorData(logutils.StatusMissing, model.TypeUser, nil).SetStatus(utils.ErrorStatusMissingUser)
	}
	return nil
}

func (app *application) serDiscoverUserOrganizations(userID string, l *logs.Log) ([]model.UserOrganization, error) {
	err := checkUser(userID)
	if err != nil {
		return nil, err
	}

	return app.discoverUserOrganizations(userID, l), nil
}

// discoverUserOrganizations gives the organizations the user belongs to.
// It never fails - on storage errors it logs and gives an empty list.
func (app *application) discoverUserOrganizations(userID string, l *logs.Log) []model.UserOrganization {
	memberships, err := app.storage.FindUserMemberships(userID)
	if err != nil {
		l.Errorf("error finding memberships for user %s - %s", userID, err)
		return []model.UserOrganization{}
	}

	memberships = uniqueOrganizationMemberships(memberships)

	organizations := make([]model.UserOrganization, 0, len(memberships))
	for _, membership := range memberships {
		organization, err := app.storage.FindOrganization(membership.OrganizationID)
		if err != nil {
			l.Errorf("error finding organization %s for user %s - %s", membership.OrganizationID, userID, err)
			return []model.UserOrganization{}
		}
		if organization == nil {
			//the organization does not exist anymore
			l.Infof("skipping missing organization %s for user %s", membership.OrganizationID, userID)
			continue
		}

		organizations = append(organizations, userOrganizationFromMembership(membership, *organization))
	}

	//best effort
	cache := model.UserOrganizationsCache{UserID: userID, Organizations: organizations, DateCached: app.now()}
	err = app.storage.SaveUserOrganizationsCache(cache)
	if err != nil {
		l.Warnf("error caching organizations for user %s - %s", userID, err)
	}

	return organizations
}

// uniqueOrganizationMemberships keeps one membership per organization at the position of the first one.
// An active membership wins over inactive ones.
func uniqueOrganizationMemberships(memberships []model.Membership) []model.Membership {
	result := make([]model.Membership, 0, len(memberships))
	positions := make(map[string]int, len(memberships))
	for _, membership := range memberships {
		i, ok := positions[membership.OrganizationID]
		if !ok {
			positions[membership.OrganizationID] = len(result)
			result = append(result, membership)
			continue
		}
		if !result[i].IsActive && membership.IsActive {
			result[i] = membership
		}
	}
	return result
}

func userOrganizationFromMembership(membership model.Membership, organization model.Organization) model.UserOrganization {
	return model.UserOrganization{OrganizationID: organization.ID, OrganizationName: organization.Name,
		OrganizationType: organization.Type, UserRole: membership.Role, JoinedAt: membership.JoinedAt,
		IsActive: membership.IsActive, EnabledServices: organization.EnabledServices()}
}
