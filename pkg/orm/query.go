// Package orm is a thin query helper over the shared GORM handle. It keeps
// the common read patterns short and exposes the transaction boundary used
// by order placement.
package orm

import (
	"time"

	"github.com/warungku/warung/pkg/cache"
	"github.com/warungku/warung/pkg/database"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

// Gorm exposes the raw handle for call sites that need GORM directly.
func Gorm() *gorm.DB {
	return database.DB
}

// Transaction runs fn inside one database transaction. fn returning nil
// commits; any error (or panic) rolls back everything written through the
// supplied handle. Every write of one order placement must go through that
// handle, never through the global one.
func Transaction(fn func(tx *gorm.DB) error) error {
	return database.DB.Transaction(fn)
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

func (q *Query) Create(value interface{}) error {
	return q.db.Create(value).Error
}

func (q *Query) Save(value interface{}) error {
	return q.db.Save(value).Error
}

// Pagination describes one page of results.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// GetWithPagination fills dest with one page and returns the page metadata.
func (q *Query) GetWithPagination(dest interface{}, page, limit int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := q.db.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	offset := (page - 1) * limit
	if err := q.db.Offset(offset).Limit(limit).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}, nil
}

// Cache serves dest from Redis when possible, falling back to the database
// and populating the cache on a miss.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	if err := q.db.Find(dest).Error; err != nil {
		return err
	}

	return cache.Set(key, dest, ttl)
}
