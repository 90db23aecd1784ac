/*
Package gcloud holds the pieces shared by the service binding packages in
this repository.

The repository provides thin client bindings over two unrelated Google Cloud
services. Each binding is independent and lives in its own package:

	datastore - an Entity/Key wrapper persisting ordered field mappings
	            through an externally supplied Connection.
	logging   - a wrapper over the Cloud Logging v2 RPC services (entries,
	            sinks, metrics) translating between protobuf messages and
	            JSON-compatible mappings.

Create concrete clients with the FromContext / NewClient function of each
package, configured through the ClientOption values defined here.

Every wrapper method performs a single synchronous call: it validates its
input, builds or parses a message, issues one remote call and either returns
the translated result or surfaces the transport error. Errors carrying extra
meaning for callers are reclassified into the typed errors in this package
(NotFoundError, ConflictError); everything else passes through unchanged.
There are no retries and no caching.
*/
package gcloud
