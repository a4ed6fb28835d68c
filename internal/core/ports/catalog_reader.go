package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// Article is the read-side projection of a catalog article used during
// fulfillment: the price snapshot taken at order time and the seller who
// owns the listing.
type Article struct {
	ID       kernel.UUID
	SellerID kernel.UUID
	Price    kernel.Money
}

// CatalogReader exposes the read-only catalog lookups the fulfillment core
// needs. The catalog itself is owned elsewhere; this port only reads.
type CatalogReader interface {
	// GetArticle retrieves the article's pricing and ownership data.
	// Returns an ObjectNotFoundError when the article does not exist.
	GetArticle(ctx context.Context, articleID kernel.UUID) (Article, error)

	// ArticleHasVariation reports whether the variation belongs to the article.
	ArticleHasVariation(ctx context.Context, articleID kernel.UUID, variationID kernel.UUID) (bool, error)

	// GetSellerIDs resolves the owning seller of each article.
	// Used to decide whether a seller participates in an order.
	GetSellerIDs(ctx context.Context, articleIDs []kernel.UUID) ([]kernel.UUID, error)
}
