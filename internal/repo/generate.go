// Package repo holds the ent-generated database client.
//
// The generated code is not committed. Run `go generate ./...` (or
// `make generate`) after changing anything under internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema
