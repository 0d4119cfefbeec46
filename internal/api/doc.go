// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients and
// the record store and aggregation engine, translating HTTP concerns to
// business operations.
package api
