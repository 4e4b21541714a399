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

package utils

import (
	"net/http"
	"time"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
)

const (
	//ErrorStatusMissingUser the operation needs a current user
	ErrorStatusMissingUser string = "missing-user"
	//ErrorStatusNotFound the requested item does not exist
	ErrorStatusNotFound string = "not-found"
	//ErrorStatusInvalid the request is not valid
	ErrorStatusInvalid string = "invalid"
	//ErrorStatusForbidden the current user is not allowed to do this
	ErrorStatusForbidden string = "forbidden"
	//ErrorStatusConflict the request conflicts with the current state
	ErrorStatusConflict string = "conflict"
	//ErrorStatusGone the remote resource does not exist anymore
	ErrorStatusGone string = "gone"
)

// ErrorStatus gives the status attached to an error, or an empty string
func ErrorStatus(err error) string {
	if loggingErr, ok := err.(*errors.Error); ok {
		return loggingErr.Status()
	}
	return ""
}

// KeepStatus gives the wrapping error tagged with the status of the wrapped one
func KeepStatus(wrapping *errors.Error, wrapped error) *errors.Error {
	if status := ErrorStatus(wrapped); status != "" {
		return wrapping.SetStatus(status)
	}
	return wrapping
}

// HTTPStatusForError maps a tagged core error to the HTTP status code to respond with
func HTTPStatusForError(err error) int {
	switch ErrorStatus(err) {
	case ErrorStatusMissingUser:
		return http.StatusUnauthorized
	case ErrorStatusNotFound:
		return http.StatusNotFound
	case ErrorStatusInvalid:
		return http.StatusBadRequest
	case ErrorStatusForbidden:
		return http.StatusForbidden
	case ErrorStatusConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Contains checks if a string slice contains a value
func Contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// StringOrNil returns a pointer to the string, or nil for an empty one
func StringOrNil(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// GetString gives the value of a string pointer or an empty string
func GetString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// ParseTimeParam parses an optional RFC 3339 time value
func ParseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	parsed = parsed.UTC()
	return &parsed, nil
}
