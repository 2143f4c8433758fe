// Package verify runs the arithmetic kernel's self-verification checks.
//
// Each Check is a named property (add/sub inverse, multiplication
// equivalence, division identity, Divider equivalence, shift inverse, Bézout
// identity and a few fixed scenarios) evaluated over a deterministic stream
// of random cases and cross-checked against math/big. Execute runs the
// checks concurrently, reports progress through a Reporter and records
// Prometheus counters and OpenTelemetry spans per check. Building with the
// gmp tag registers an additional oracle check backed by GNU MP.
package verify
