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
	"html"
	"strings"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/errors"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	"gopkg.in/gomail.v2"
)

const (
	typeMail        logutils.MessageDataType = "mail"
	typeEmailDialer logutils.MessageDataType = "email dialer"
	typeRecipients  logutils.MessageDataType = "email addresses"
)

// Adapter implements the Emailer interface
type Adapter struct {
	smtpFrom    string
	emailDialer *gomail.Dialer

	logger *logs.Logger
}

// Send sends a notification email over SMTP. toEmail may hold several comma separated addresses.
func (a *Adapter) Send(toEmail string, subject string, body string, attachmentFilename *string) error {
	if a.emailDialer == nil {
		return errors.ErrorData(logutils.StatusMissing, typeEmailDialer, nil)
	}

	m, err := a.newMessage(toEmail, subject, body, attachmentFilename)
	if err != nil {
		return err
	}

	if err := a.emailDialer.DialAndSend(m); err != nil {
		return errors.WrapErrorAction(logutils.ActionSend, typeMail, &logutils.FieldArgs{"to": toEmail}, err)
	}
	a.logger.Infof("sent %q email to %s", subject, toEmail)
	return nil
}

// newMessage builds a plain text message with an html alternative
func (a *Adapter) newMessage(toEmail string, subject string, body string, attachmentFilename *string) (*gomail.Message, error) {
	emails := make([]string, 0)
	for _, email := range strings.Split(toEmail, ",") {
		email = strings.TrimSpace(email)
		if email != "" {
			emails = append(emails, email)
		}
	}
	if len(emails) == 0 {
		return nil, errors.ErrorData(logutils.StatusMissing, typeRecipients, nil)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", a.smtpFrom)
	m.SetHeader("To", emails...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", strings.ReplaceAll(html.EscapeString(body), "\n", "<br>"))
	if attachmentFilename != nil {
		m.Attach(*attachmentFilename)
	}
	return m, nil
}

// NewEmailerAdapter creates a new emailer adapter instance. Sending fails when no SMTP host is configured.
func NewEmailerAdapter(smtpHost string, smtpPortNum int, smtpUser string, smtpPassword string, smtpFrom string, logger *logs.Logger) *Adapter {
	var emailDialer *gomail.Dialer
	if smtpHost != "" {
		emailDialer = gomail.NewDialer(smtpHost, smtpPortNum, smtpUser, smtpPassword)
	} else {
		logger.Warn("SMTP host is not set - emails will not be sent")
	}

	return &Adapter{smtpFrom: smtpFrom, emailDialer: emailDialer, logger: logger}
}
