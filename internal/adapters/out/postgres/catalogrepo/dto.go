// Package catalogrepo provides read access to the article catalog.
package catalogrepo

import (
	"github.com/google/uuid"
)

// ArticleDTO represents the database structure for catalog articles.
type ArticleDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID uuid.UUID `gorm:"type:uuid;index"`
	Price    int64
}

// TableName specifies the database table name for article entities.
func (ArticleDTO) TableName() string {
	return "articles"
}
