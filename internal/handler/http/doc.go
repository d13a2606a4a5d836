// Package http implements the REST API of the mini-app backend.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, response compression, and the optional bearer identity are
// handled in this package before requests are delegated to the service layer.
package http
