// Package domain contains shared domain types used across aggregate sub-packages.
// Aggregate-specific types live in sub-packages (domain/lifecycle), and the
// building blocks every aggregate uses live in domain/identifier, domain/rules,
// and domain/aggregate. This root package holds the sentinel errors and typed
// error values that all layers map against.
package domain
