// Package domain holds the entities, queries and service contracts of the
// video sharing platform, one sub-package per aggregate, plus the sentinel
// errors shared across them.
package domain
