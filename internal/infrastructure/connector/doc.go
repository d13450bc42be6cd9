// Package connector provides VideoStorage implementations backed by the
// local filesystem and by Azure Blob Storage.
package connector
