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

package mocks

import mock "github.com/stretchr/testify/mock"

// Emailer is a mock type for the Emailer type
type Emailer struct {
	mock.Mock
}

// Send provides a mock function with given fields: toEmail, subject, body, attachmentFilename
func (_m *Emailer) Send(toEmail string, subject string, body string, attachmentFilename *string) error {
	ret := _m.Called(toEmail, subject, body, attachmentFilename)
	return ret.Error(0)
}

type mockConstructorTestingTNewEmailer interface {
	mock.TestingT
	Cleanup(func())
}

// NewEmailer creates a new instance of Emailer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewEmailer(t mockConstructorTestingTNewEmailer) *Emailer {
	mock := &Emailer{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
