package db

import "gorm.io/gorm"

// Paginate applies LIMIT/OFFSET for a 1-based page.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			return tx
		}
		return tx.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
