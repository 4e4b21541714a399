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

package emailer

import (
	"testing"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"gotest.tools/assert"
)

func TestNewMessage(t *testing.T) {
	adapter := NewEmailerAdapter("", 587, "", "", "portal@example.com", logs.NewLogger("test", nil))

	tests := []struct {
		name    string
		to      string
		wantTo  []string
		wantErr bool
	}{
		{name: "single", to: "admin@example.com", wantTo: []string{"admin@example.com"}},
		{name: "several", to: "a@example.com, b@example.com,", wantTo: []string{"a@example.com", "b@example.com"}},
		{name: "empty", to: " , ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := adapter.newMessage(tt.to, "New account request", "Line 1\nLine 2", nil)
			if tt.wantErr {
				assert.Assert(t, err != nil)
				return
			}
			assert.NilError(t, err)
			assert.DeepEqual(t, m.GetHeader("To"), tt.wantTo)
			assert.DeepEqual(t, m.GetHeader("From"), []string{"portal@example.com"})
			assert.DeepEqual(t, m.GetHeader("Subject"), []string{"New account request"})
		})
	}
}

func TestSend_NoDialer(t *testing.T) {
	adapter := NewEmailerAdapter("", 587, "", "", "portal@example.com", logs.NewLogger("test", nil))

	err := adapter.Send("admin@example.com", "subject", "body", nil)
	assert.ErrorContains(t, err, "email dialer")
}
