// Package crypto computes content fingerprints of problems.
//
// A fingerprint is the BLAKE2b-256 digest of the problem's JSON encoding,
// truncated to 10 bytes (20 hex chars). Problems contain no maps, so the
// encoding is deterministic and equal problems share a fingerprint.
package crypto
