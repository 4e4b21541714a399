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

import (
	model "pack-portal/core/model"

	mock "github.com/stretchr/testify/mock"
)

// PushSender is a mock type for the PushSender type
type PushSender struct {
	mock.Mock
}

// Send provides a mock function with given fields: subscription, notification
func (_m *PushSender) Send(subscription model.PushSubscription, notification model.Notification) error {
	ret := _m.Called(subscription, notification)
	return ret.Error(0)
}

type mockConstructorTestingTNewPushSender interface {
	mock.TestingT
	Cleanup(func())
}

// NewPushSender creates a new instance of PushSender. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPushSender(t mockConstructorTestingTNewPushSender) *PushSender {
	mock := &PushSender{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
