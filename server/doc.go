// Package server provides the HTTP server that hosts guarded routes,
// using Gin with HTTP/2 cleartext (h2c) support on a single port.
//
// The server wires the standard middleware stack (recovery, request-ID,
// CORS, body-size limit, request logging) and exposes health, readiness,
// liveness, version, and runtime-metrics endpoints. Authentication and
// authorization middleware from server/middleware are applied per route
// group by the caller, so public and guarded routes can coexist.
package server
