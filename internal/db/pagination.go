// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

const (
	DefaultPageSize uint64 = 100
	MaxPageSize     uint64 = 500
)

// Paginate turns 1-based page and size query values into LIMIT and OFFSET.
// Non positive values fall back to the first page and the default size.
func Paginate(page, size int64) (limit, offset uint64) {
	limit = DefaultPageSize
	if size > 0 {
		limit = min(uint64(size), MaxPageSize)
	}

	if page > 1 {
		offset = uint64(page-1) * limit
	}

	return limit, offset
}
