/*
Package logging wraps the Cloud Logging v2 RPC services.

Three API types forward to the externally owned gRPC stubs: EntriesAPI
(LoggingServiceV2), SinksAPI (ConfigServiceV2) and MetricsAPI
(MetricsServiceV2). Each method builds a request message, issues a single
call and translates the response into JSON-compatible mappings
(map[string]interface{}) matching the public REST JSON schema.

Listing methods share one pagination contract: an empty page token requests
the first page, each call returns the decoded page plus the token for the
next one, and an empty returned token means the listing is exhausted.

Two transport status codes are reclassified into typed errors at the call
sites that need them: NOT_FOUND becomes *gcloud.NotFoundError and
FAILED_PRECONDITION on create becomes *gcloud.ConflictError, both carrying
the full resource path. Every other transport error is returned unchanged.
*/
package logging
