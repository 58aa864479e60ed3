// Package api handles incoming HTTP requests, routing, request decoding,
// and response formatting. It acts as an adapter between HTTP clients and
// the exercise and workout services, translating service errors into
// status codes and client-safe messages.
package api
