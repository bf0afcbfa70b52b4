package handler

import (
	"context"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/service/bookstore"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/wishlist"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ BookstoreService = (*bookstore.Service)(nil)
	_ wishlist.Syncer  = (BookstoreService)(nil)
)

type BookstoreService interface {
	GetBooks(ctx context.Context) ([]model.Book, int, error)
	GetBook(ctx context.Context, id string) (model.Book, int, error)
	GetWishlist(ctx context.Context, email string) (model.Wishlist, int, error)
	AddToWishlist(ctx context.Context, email string, bookIDs ...string) (int, error)
	RemoveFromWishlist(ctx context.Context, email, bookID string) (int, error)
	GetOrders(ctx context.Context, email string) ([]model.Order, int, error)
}
