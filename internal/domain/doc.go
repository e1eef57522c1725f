// Package domain contains the core model of the todoprobe diagnostic client.
//
// The domain is transport- and persistence-agnostic: it does not depend on net/http,
// HTML parsing, SQL drivers or the filesystem. Infra adapters map into/from these types.
package domain
