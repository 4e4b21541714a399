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
	"fmt"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

const (
	//TypeOrganization ...
	TypeOrganization logutils.MessageDataType = "organization"
	//TypeMembership ...
	TypeMembership logutils.MessageDataType = "membership"
	//TypeUserOrganization ...
	TypeUserOrganization logutils.MessageDataType = "user organization"
	//TypeUserOrganizationsCache ...
	TypeUserOrganizationsCache logutils.MessageDataType = "user organizations cache"

	//MembershipRoleMember is a regular pack member
	MembershipRoleMember string = "member"
	//MembershipRoleLeader is a den or pack leader
	MembershipRoleLeader string = "leader"
	//MembershipRoleAdmin administers the organization
	MembershipRoleAdmin string = "admin"
)

// organizationServices maps organization component names to the services they enable
var organizationServices = map[string]string{
	"event-management": "events",
	"calendar":         "calendar",
	"announcements":    "announcements",
	"document-library": "documents",
	"resource-library": "resources",
	"rsvp-management":  "rsvp",
	"fundraising":      "fundraising",
	"store":            "store",
}

// Organization represents an organization (a pack, a troop, a council) entity
type Organization struct {
	ID   string
	Name string
	Type string

	Components []string //configured portal components, e.g. "event-management"

	DateCreated time.Time
	DateUpdated *time.Time
}

// EnabledServices gives the services enabled by the organization components.
// Unknown components are ignored.
func (o Organization) EnabledServices() []string {
	services := make([]string, 0, len(o.Components))
	seen := map[string]bool{}
	for _, component := range o.Components {
		service, ok := organizationServices[component]
		if !ok || seen[service] {
			continue
		}
		seen[service] = true
		services = append(services, service)
	}
	return services
}

func (o Organization) String() string {
	return fmt.Sprintf("[ID:%s\tName:%s\tType:%s\tComponents:%s]", o.ID, o.Name, o.Type, o.Components)
}

// Membership represents a membership index entry - one user in one organization
type Membership struct {
	ID string

	UserID    string
	UserEmail string
	UserName  string

	OrganizationID string
	Role           string

	JoinedAt time.Time
	IsActive bool

	DateUpdated *time.Time
}

// IsAdmin says if the membership gives admin rights in the organization
func (m Membership) IsAdmin() bool {
	return m.IsActive && m.Role == MembershipRoleAdmin
}

// UserOrganization represents an organization as seen by one of its members
type UserOrganization struct {
	OrganizationID   string
	OrganizationName string
	OrganizationType string

	UserRole string
	JoinedAt time.Time
	IsActive bool

	EnabledServices []string
}

// UserOrganizationsCache is the last resolved organizations list of a user
type UserOrganizationsCache struct {
	UserID        string
	Organizations []UserOrganization
	DateCached    time.Time
}
