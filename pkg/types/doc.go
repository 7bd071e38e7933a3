// Package types defines the public, implementation-neutral types for
// decoding Paradox tables: the tagged Value union, field metadata, options
// structs, and a typed error hierarchy. It has no dependencies beyond the
// standard library so both the engine and its callers can share one vocabulary
// without import cycles.
//
// Design goals:
//   - Small, copyable value types; no shared base class for Value.
//   - Typed errors with stable categories (format/corrupt/io/state/...).
//   - Paranoid about malformed input; the engine never panics on it.
package types
