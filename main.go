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

package main

import (
	"pack-portal/core"
	"pack-portal/driven/emailer"
	"pack-portal/driven/pusher"
	"pack-portal/driven/storage"
	"pack-portal/driver/web"
	"strconv"

	"github.com/rokwire/rokwire-building-block-sdk-go/utils/envloader"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
)

var (
	// Version : version of this executable
	Version string
	// Build : build date of this executable
	Build string
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "portal"

	loggerOpts := logs.LoggerOpts{SuppressRequests: logs.NewStandardHealthCheckHTTPRequestProperties(serviceID + "/version")}
	logger := logs.NewLogger(serviceID, &loggerOpts)
	envLoader := envloader.NewEnvLoader(Version, logger)

	level := envLoader.GetAndLogEnvVar("PACK_PORTAL_LOG_LEVEL", false, false)
	logLevel := logs.LogLevelFromString(level)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	env := envLoader.GetAndLogEnvVar("PACK_PORTAL_ENVIRONMENT", true, false) //local, dev, staging, prod
	port := envLoader.GetAndLogEnvVar("PACK_PORTAL_PORT", false, false)
	//Default port of 80
	if port == "" {
		port = "80"
	}

	host := envLoader.GetAndLogEnvVar("PACK_PORTAL_HOST", true, false)

	// mongoDB adapter
	mongoDBAuth := envLoader.GetAndLogEnvVar("PACK_PORTAL_MONGO_AUTH", true, true)
	mongoDBName := envLoader.GetAndLogEnvVar("PACK_PORTAL_MONGO_DATABASE", true, false)
	mongoTimeout := envLoader.GetAndLogEnvVar("PACK_PORTAL_MONGO_TIMEOUT", false, false)
	storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, logger)
	err := storageAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the mongoDB adapter: %v", err)
	}

	// emailer
	smtpHost := envLoader.GetAndLogEnvVar("PACK_PORTAL_SMTP_HOST", false, false)
	smtpPort := envLoader.GetAndLogEnvVar("PACK_PORTAL_SMTP_PORT", false, false)
	smtpUser := envLoader.GetAndLogEnvVar("PACK_PORTAL_SMTP_USER", false, true)
	smtpPassword := envLoader.GetAndLogEnvVar("PACK_PORTAL_SMTP_PASSWORD", false, true)
	smtpFrom := envLoader.GetAndLogEnvVar("PACK_PORTAL_SMTP_EMAIL_FROM", false, false)
	smtpPortNum, err := strconv.Atoi(smtpPort)
	if err != nil {
		logger.Infof("Error parsing smtp port, applying defaults: %v", err)
		smtpPortNum = 587
	}
	emailAdapter := emailer.NewEmailerAdapter(smtpHost, smtpPortNum, smtpUser, smtpPassword, smtpFrom, logger)

	// web push
	vapidPublicKey := envLoader.GetAndLogEnvVar("PACK_PORTAL_VAPID_PUBLIC_KEY", false, false)
	vapidPrivateKey := envLoader.GetAndLogEnvVar("PACK_PORTAL_VAPID_PRIVATE_KEY", false, true)
	vapidSubscriber := envLoader.GetAndLogEnvVar("PACK_PORTAL_VAPID_SUBSCRIBER", false, false)
	pushAdapter := pusher.NewPushAdapter(vapidPublicKey, vapidPrivateKey, vapidSubscriber, logger)

	//core
	coreAPIs := core.NewCoreAPIs(env, Version, Build, storageAdapter, emailAdapter, pushAdapter, logger)
	coreAPIs.Start()

	//web adapter
	tokenSecret := envLoader.GetAndLogEnvVar("PACK_PORTAL_AUTH_TOKEN_SECRET", true, true)
	auth, err := web.NewAuth(tokenSecret, logger)
	if err != nil {
		logger.Fatalf("Error initializing auth: %v", err)
	}

	webAdapter := web.NewWebAdapter(env, port, host, auth, coreAPIs, logger)
	webAdapter.Start()
}
