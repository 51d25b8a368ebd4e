// Package courts contains the court domain entities, query types and
// service/repository contracts. Courts are keyed by their slug identifier
// (e.g. "scotus") rather than a generated UUID.
package courts
