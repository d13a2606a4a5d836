// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. It answers
// 404 instead of 405 so unsupported methods do not reveal a route, and
// forwards requests whose method is registered for the exact path.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		notFound(w, r)
	}
}

// notFound answers unknown paths with the JSON error body used by every
// other route.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
