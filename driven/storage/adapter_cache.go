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

package storage

import (
	"pack-portal/core/model"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/syncmap"
)

// ORGANIZATIONS

// loadOrganizations gets the organizations
func (sa *Adapter) loadOrganizations() ([]model.Organization, error) {
	//no transactions for get operations..
	filter := bson.D{}
	var result []organization
	err := sa.db.organizations.FindWithContext(sa.context, filter, &result, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionLoad, model.TypeOrganization, nil, err)
	}

	return organizationsFromStorage(result), nil
}

// cacheOrganizations caches the organizations from the DB
func (sa *Adapter) cacheOrganizations() error {
	sa.logger.Info("cacheOrganizations..")

	organizations, err := sa.loadOrganizations()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization, nil, err)
	}

	sa.setCachedOrganizations(organizations)

	return nil
}

func (sa *Adapter) setCachedOrganizations(organizations []model.Organization) {
	sa.organizationsLock.Lock()
	defer sa.organizationsLock.Unlock()

	sa.cachedOrganizations = &syncmap.Map{}
	for _, org := range organizations {
		sa.cachedOrganizations.Store(org.ID, org)
	}
}

// cacheOrganization adds an organization loaded after the last full caching
func (sa *Adapter) cacheOrganization(org model.Organization) {
	sa.organizationsLock.RLock()
	defer sa.organizationsLock.RUnlock()

	sa.cachedOrganizations.Store(org.ID, org)
}

func (sa *Adapter) getCachedOrganization(orgID string) (*model.Organization, error) {
	sa.organizationsLock.RLock()
	defer sa.organizationsLock.RUnlock()

	errArgs := &logutils.FieldArgs{"org_id": orgID}

	item, _ := sa.cachedOrganizations.Load(orgID)
	if item != nil {
		organization, ok := item.(model.Organization)
		if !ok {
			return nil, errors.ErrorAction(logutils.ActionCast, model.TypeOrganization, errArgs)
		}
		return &organization, nil
	}
	return nil, nil
}
