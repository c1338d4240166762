package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpcenter/internal/domain/content"
	"helpcenter/internal/shared/constants"
	db "helpcenter/internal/shared/db"
)

// slugTaken counts rows of any status holding slug, ignoring excludeID.
func slugTaken(ctx context.Context, conn *gorm.DB, model interface{}, slug string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, conn).Model(model).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

// contentListScope applies the shared listing filter. A CUSTOMER or VENDOR
// audience also matches content addressed to ALL.
func contentListScope(filter content.ListFilter, searchColumns ...string) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			query = query.Where("status = ?", filter.Status.String())
		}
		if filter.Audience != nil {
			if *filter.Audience == content.AudienceAll {
				query = query.Where("audience = ?", content.AudienceAll.String())
			} else {
				query = query.Where("audience IN ?", []string{filter.Audience.String(), content.AudienceAll.String()})
			}
		}
		if q := strings.TrimSpace(filter.Query); q != "" && len(searchColumns) > 0 {
			pattern := "%" + strings.ToLower(q) + "%"
			clauses := make([]string, len(searchColumns))
			args := make([]interface{}, len(searchColumns))
			for i, col := range searchColumns {
				clauses[i] = "LOWER(" + col + ") LIKE ?"
				args[i] = pattern
			}
			query = query.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}
		return query
	}
}

func pageSizeOrDefault(pageSize int) int {
	if pageSize <= 0 {
		return constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return pageSize
}
