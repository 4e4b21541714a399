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

package web

import (
	"fmt"
	"net/http"
	"pack-portal/core"
	"pack-portal/core/model"

	"github.com/gorilla/mux"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logs"
	"github.com/rokwire/rokwire-building-block-sdk-go/utils/logging/logutils"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Adapter entity
type Adapter struct {
	env  string
	port string
	host string
	auth *Auth

	servicesApisHandler ServicesApisHandler
	adminApisHandler    AdminApisHandler

	coreAPIs *core.APIs
	logger   *logs.Logger
}

type handlerFunc = func(*logs.Log, *http.Request, *model.User) logs.HTTPResponse

// @title Pack Portal Building Block API
// @description Pack Portal Building Block API Documentation.
// @version 1.0.0
// @host localhost:80
// @BasePath /portal
// @schemes https http

// Start starts the module
func (we Adapter) Start() {
	err := we.auth.Start()
	if err != nil {
		we.logger.Fatalf("error starting auth: %v", err)
	}

	router := we.routes()

	we.logger.Infof("listening on port %s", we.port)
	err = http.ListenAndServe(":"+we.port, router)
	if err != nil {
		we.logger.Fatalf("error serving http: %v", err)
	}
}

func (we Adapter) routes() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)

	subRouter := router.PathPrefix("/portal").Subrouter()
	subRouter.PathPrefix("/doc/ui").Handler(we.serveDocUI())
	subRouter.HandleFunc("/doc", we.serveDoc)
	subRouter.HandleFunc("/version", we.wrapFunc(we.servicesApisHandler.version, nil)).Methods("GET")

	///services ///
	servicesSubRouter := subRouter.PathPrefix("/services").Subrouter()
	servicesAuth := we.auth.servicesAuth

	servicesSubRouter.HandleFunc("/organizations", we.wrapFunc(we.servicesApisHandler.getOrganizations, servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/organizations/{id}/account-requests", we.wrapFunc(we.servicesApisHandler.submitAccountRequest, servicesAuth)).Methods("POST")

	servicesSubRouter.HandleFunc("/calendar/events", we.wrapFunc(we.servicesApisHandler.getCalendarEvents, servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/calendar/feed.ics", we.wrapFunc(we.servicesApisHandler.getCalendarFeed, servicesAuth)).Methods("GET")

	servicesSubRouter.HandleFunc("/sync/preferences", we.wrapFunc(we.servicesApisHandler.getSyncPreferences, servicesAuth)).Methods("GET")
	servicesSubRouter.HandleFunc("/sync/preferences", we.wrapFunc(we.servicesApisHandler.updateSyncPreferences, servicesAuth)).Methods("PUT")
	servicesSubRouter.HandleFunc("/sync/status", we.wrapFunc(we.servicesApisHandler.getSyncStatus, servicesAuth)).Methods("GET")

	servicesSubRouter.HandleFunc("/events/{id}/rsvp", we.wrapFunc(we.servicesApisHandler.submitRSVP, servicesAuth)).Methods("PUT")

	servicesSubRouter.HandleFunc("/push-subscriptions", we.wrapFunc(we.servicesApisHandler.registerPushSubscription, servicesAuth)).Methods("POST")
	servicesSubRouter.HandleFunc("/push-subscriptions/{id}", we.wrapFunc(we.servicesApisHandler.deletePushSubscription, servicesAuth)).Methods("DELETE")
	///

	///admin ///
	adminSubrouter := subRouter.PathPrefix("/admin").Subrouter()
	adminAuth := we.auth.adminAuth

	adminSubrouter.HandleFunc("/organizations/{id}/account-requests", we.wrapFunc(we.adminApisHandler.getAccountRequests, adminAuth)).Methods("GET")
	adminSubrouter.HandleFunc("/organizations/{id}/account-requests/{request_id}/approve", we.wrapFunc(we.adminApisHandler.approveAccountRequest, adminAuth)).Methods("PUT")
	adminSubrouter.HandleFunc("/organizations/{id}/account-requests/{request_id}/deny", we.wrapFunc(we.adminApisHandler.denyAccountRequest, adminAuth)).Methods("PUT")
	///

	return router
}

func (we Adapter) serveDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("access-control-allow-origin", "*")
	http.ServeFile(w, r, "./docs/swagger.yaml")
}

func (we Adapter) serveDocUI() http.Handler {
	url := fmt.Sprintf("%s/portal/doc", we.host)
	return httpSwagger.Handler(httpSwagger.URL(url))
}

func (we Adapter) wrapFunc(handler handlerFunc, authorization Authorization) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logObj := we.logger.NewRequestLog(req)

		logObj.RequestReceived()

		var response logs.HTTPResponse
		if authorization != nil {
			responseStatus, user, err := authorization.check(req)
			if err != nil {
				logObj.SendHTTPResponse(w, logObj.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequest, nil, err, responseStatus, true))
				return
			}
			response = handler(logObj, req, user)
		} else {
			response = handler(logObj, req, nil)
		}

		logObj.SendHTTPResponse(w, response)
		logObj.RequestComplete()
	}
}

// NewWebAdapter creates new WebAdapter instance
func NewWebAdapter(env string, port string, host string, auth *Auth, coreAPIs *core.APIs, logger *logs.Logger) Adapter {
	servicesApisHandler := NewServicesApisHandler(coreAPIs)
	adminApisHandler := NewAdminApisHandler(coreAPIs)

	return Adapter{env: env, port: port, host: host, auth: auth, servicesApisHandler: servicesApisHandler,
		adminApisHandler: adminApisHandler, coreAPIs: coreAPIs, logger: logger}
}
