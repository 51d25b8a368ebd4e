// Package dockets contains the docket domain entities (dockets, docket
// entries, case documents, tags), their query types and the
// service/repository contracts. Docket entries, case documents and tags are
// restricted resources: read access requires a scoped API key and writes
// through the API are rejected.
package dockets
