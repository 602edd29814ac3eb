// Package httpserver provides the HTTP API for the vehicle registration
// service.
//
// Public endpoints:
//
//	POST /api/registrations                      - submit a registration application
//	GET  /api/registrations                      - list all records
//	GET  /api/registrations/{id}                 - fetch one record
//	GET  /api/plates/{plate}                     - check plate availability
//	GET  /api/attachments/{cid}                  - download an attachment
//	GET  /api/admin/info                         - admin address and fee
//
// Admin endpoints:
//
//	GET  /api/admin/pending                      - records awaiting review
//	POST /api/admin/registrations/{id}/review    - approve or reject a record
//
// Operational endpoints:
//
//	GET /livez    - liveness check
//	GET /readyz   - readiness check
//	GET /drain    - mark the server not ready
//	GET /undrain  - mark the server ready again
//
// Callers identify themselves with the X-Wallet-Address header. The header
// only picks the identity a request acts as; authorization is enforced by the
// registry, so a spoofed admin header still cannot review records on chain.
package httpserver
