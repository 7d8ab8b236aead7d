// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/actor, domain/roster,
// domain/command). This root package holds the sentinel errors and the
// validation error type shared by all of them.
package domain
