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
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"gotest.tools/assert"
)

func TestOrganizationEventsQuery(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start      *time.Time
		end        *time.Time
		wantFilter bson.D
	}{
		{name: "no range", wantFilter: bson.D{{Key: "organization_id", Value: "org1"}, {Key: "is_active", Value: true}}},
		{name: "range", start: &start, end: &end, wantFilter: bson.D{
			{Key: "organization_id", Value: "org1"}, {Key: "is_active", Value: true},
			{Key: "start_date", Value: bson.M{"$gte": start}}, {Key: "end_date", Value: bson.M{"$lte": end}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, opts := organizationEventsQuery("org1", tt.start, tt.end, 50)

			assert.DeepEqual(t, filter, tt.wantFilter)
			//most recent first
			assert.DeepEqual(t, opts.Sort, bson.D{{Key: "start_date", Value: -1}, {Key: "_id", Value: 1}})
			assert.Assert(t, opts.Limit != nil)
			assert.Equal(t, *opts.Limit, int64(50))
		})
	}
}

func TestOrganizationEventsQuery_NoLimit(t *testing.T) {
	_, opts := organizationEventsQuery("org1", nil, nil, 0)
	assert.Assert(t, opts.Limit == nil)
}

func TestMembershipUpsert(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	item := model.Membership{
		ID:             "m1",
		UserID:         "user",
		UserEmail:      "user@example.com",
		UserName:       "User",
		OrganizationID: "org1",
		Role:           model.MembershipRoleMember,
		JoinedAt:       now,
		IsActive:       true,
	}

	filter, update := membershipUpsert(item)
	assert.DeepEqual(t, filter, bson.M{"organization_id": "org1", "user_id": "user"})
	assert.DeepEqual(t, update["$setOnInsert"], bson.M{"_id": "m1"})

	set := update["$set"].(bson.M)
	assert.Equal(t, set["is_active"], true)
	assert.Equal(t, set["role"], model.MembershipRoleMember)
	_, hasID := set["_id"]
	assert.Assert(t, !hasID)
}
