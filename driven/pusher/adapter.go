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

package pusher

import (
	"encoding/json"
	"net/http"
	"pack-portal/core/model"
	"pack-portal/utils"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
)

const (
	typeVAPIDKeys    logutils.MessageDataType = "vapid keys"
	typePushResponse logutils.MessageDataType = "push service response"

	defaultTTL int = 86400
)

// payload is the JSON document the service worker receives
type payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// Adapter implements the PushSender interface
type Adapter struct {
	publicKey  string
	privateKey string
	subscriber string

	httpClient webpush.HTTPClient

	logger *logs.Logger
}

// Send sends a web push notification to one subscription.
// Subscriptions the push service does not know anymore give an error with the gone status.
func (a *Adapter) Send(subscription model.PushSubscription, notification model.Notification) error {
	if a.publicKey == "" || a.privateKey == "" {
		return errors.ErrorData(logutils.StatusMissing, typeVAPIDKeys, nil)
	}

	data, err := json.Marshal(payload{Title: notification.Title, Body: notification.Body, URL: notification.URL, Tag: notification.Tag})
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionEncode, model.TypeNotification, nil, err)
	}

	resp, err := webpush.SendNotification(data, &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.P256dh,
			Auth:   subscription.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      a.httpClient,
		Subscriber:      a.subscriber,
		VAPIDPublicKey:  a.publicKey,
		VAPIDPrivateKey: a.privateKey,
		TTL:             defaultTTL,
	})
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSend, model.TypeNotification, &logutils.FieldArgs{"subscription": subscription.ID}, err)
	}
	defer resp.Body.Close()

	args := &logutils.FieldArgs{"subscription": subscription.ID, "status": resp.StatusCode}
	switch {
	case resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound:
		return errors.ErrorData(logutils.StatusInvalid, model.TypePushSubscription, args).SetStatus(utils.ErrorStatusGone)
	case resp.StatusCode >= 400:
		return errors.ErrorData(logutils.StatusInvalid, typePushResponse, args)
	}

	a.logger.Infof("sent push notification %s to subscription %s", notification.Tag, subscription.ID)
	return nil
}

// VAPIDPublicKey gives the application server key browsers subscribe with
func (a *Adapter) VAPIDPublicKey() string {
	return a.publicKey
}

// NewPushAdapter creates a new web push adapter instance
func NewPushAdapter(vapidPublicKey string, vapidPrivateKey string, subscriber string, logger *logs.Logger) *Adapter {
	if vapidPublicKey == "" || vapidPrivateKey == "" {
		logger.Warn("VAPID keys are not set - push notifications will not be sent")
	}
	if subscriber == "" {
		subscriber = "mailto:noreply@pack-portal.local"
	}
	return &Adapter{publicKey: vapidPublicKey, privateKey: vapidPrivateKey, subscriber: subscriber,
		httpClient: &http.Client{}, logger: logger}
}
