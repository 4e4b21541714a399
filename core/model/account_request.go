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
	//TypeAccountRequest ...
	TypeAccountRequest logutils.MessageDataType = "account request"
	//TypeAccountRequestStatus ...
	TypeAccountRequestStatus logutils.MessageDataType = "account request status"

	//AccountRequestStatusPending waits for an admin
	AccountRequestStatusPending string = "pending"
	//AccountRequestStatusApproved the user became a member
	AccountRequestStatusApproved string = "approved"
	//AccountRequestStatusDenied the request was refused
	AccountRequestStatusDenied string = "denied"
)

// AccountRequest represents the request of a user to join an organization
type AccountRequest struct {
	ID             string `validate:"required"`
	OrganizationID string `validate:"required"`
	UserID         string `validate:"required"`

	Email   string `validate:"required,email"`
	Name    string `validate:"required"`
	Message *string

	Status     string `validate:"oneof=pending approved denied"`
	ReviewedBy *string
	ReviewNote *string

	DateCreated time.Time
	DateUpdated *time.Time
}

func (r AccountRequest) String() string {
	return fmt.Sprintf("[ID:%s\tOrganizationID:%s\tUserID:%s\tStatus:%s]", r.ID, r.OrganizationID, r.UserID, r.Status)
}

// IsAccountRequestStatus says if the value is a known account request status
func IsAccountRequestStatus(status string) bool {
	switch status {
	case AccountRequestStatusPending, AccountRequestStatusApproved, AccountRequestStatusDenied:
		return true
	}
	return false
}
