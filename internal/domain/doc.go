// Package domain contains the core model for prefixer.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// JSON documents, or the filesystem. Infra/adapters map into/from these types.
package domain
