package catalogrepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/stockrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogReader implements CatalogReader using GORM.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// GetArticle retrieves an article by ID.
func (r *GormCatalogReader) GetArticle(ctx context.Context, articleID kernel.UUID) (ports.Article, error) {
	if err := articleID.Validate(); err != nil {
		return ports.Article{}, err
	}

	var dto ArticleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", articleID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Article{}, errs.NewObjectNotFoundError("article", articleID.String())
		}
		return ports.Article{}, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Article{}, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return ports.Article{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return ports.Article{}, err
	}

	return ports.Article{
		ID:       id,
		SellerID: sellerID,
		Price:    price,
	}, nil
}

// ArticleHasVariation reports whether a variation belongs to an article.
func (r *GormCatalogReader) ArticleHasVariation(ctx context.Context, articleID, variationID kernel.UUID) (bool, error) {
	if err := errors.Join(articleID.Validate(), variationID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&stockrepo.VariationDTO{}).
		Where("id = ? AND article_id = ?", variationID.Bytes(), articleID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetSellerIDs retrieves the distinct sellers behind a set of articles.
func (r *GormCatalogReader) GetSellerIDs(ctx context.Context, articleIDs []kernel.UUID) ([]kernel.UUID, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(articleIDs))
	for _, articleID := range articleIDs {
		if err := articleID.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, articleID.Bytes())
	}

	var rawSellerIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&ArticleDTO{}).
		Distinct("seller_id").
		Where("id IN ?", ids).
		Pluck("seller_id", &rawSellerIDs).Error
	if err != nil {
		return nil, err
	}

	sellerIDs := make([]kernel.UUID, 0, len(rawSellerIDs))
	for _, raw := range rawSellerIDs {
		sellerID, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		sellerIDs = append(sellerIDs, sellerID)
	}

	return sellerIDs, nil
}
