// Package submission validates registration applications and orchestrates the
// submit flow: field validation, a fail-fast plate availability check,
// attachment upload, and finally the registry write with the fixed fee
// attached.
//
// Validation failures are reported as a ValidationErrors value listing every
// offending field at once, so a client can surface all problems in a single
// round trip. Attachment uploads happen only after validation and the plate
// check pass; a failed upload aborts the submission before the registry is
// touched, so no record ever points at missing attachments.
package submission
