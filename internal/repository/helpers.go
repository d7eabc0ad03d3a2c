package repository

import (
	"context"

	"gorm.io/gorm"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func countByStatus(ctx context.Context, db *gorm.DB, table string) (map[string]int64, error) {
	rows, err := db.WithContext(ctx).Table(table).
		Select("status, COUNT(*) AS n").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
