// Package cache provides token revocation stores kept in process memory or in Redis.
package cache
