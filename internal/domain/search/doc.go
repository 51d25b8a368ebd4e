// Package search contains the search form, its cleaned query type, the
// result shape and the provider contract. The form mirrors the query
// parameters of the search endpoint: raw string values go in, and Clean
// returns either a typed query or field-level validation errors suitable
// for a 400 response body.
package search
