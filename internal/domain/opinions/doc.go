// Package opinions contains the opinion domain entities (opinion clusters,
// opinions, citation edges), their query types and the service/repository
// contracts. Clusters reference their docket by ID only; the dockets
// package owns the reverse relation.
package opinions
