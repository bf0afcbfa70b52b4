package model

import (
	"time"
)

type Category string

const (
	CategoryHistory  Category = "ইতিহাস ও ঐতিহ্য"
	CategoryNovel    Category = "উপন্যাস"
	CategoryScience  Category = "গণিত, বিজ্ঞান ও প্রযুক্তি"
	CategoryPoetry   Category = "ছড়া, কবিতা ও আবৃত্তি"
	CategoryThriller Category = "থ্রিলার"
	CategoryReligion Category = "ধর্মীয়"
	CategoryEssay    Category = "প্রবন্ধ"
)

var Categories = []Category{
	CategoryHistory,
	CategoryNovel,
	CategoryScience,
	CategoryPoetry,
	CategoryThriller,
	CategoryReligion,
	CategoryEssay,
}

func (c Category) Valid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Book is an immutable catalog snapshot owned by the remote bookstore API.
type Book struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	CoverImage  string    `json:"coverImage"`
	NewPrice    float64   `json:"newPrice"`
	OldPrice    float64   `json:"oldPrice"`
	Trending    bool      `json:"trending"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (b Book) Discounted() bool {
	return b.OldPrice > b.NewPrice
}

// CartItem is copied from a Book at add time and does not follow later catalog changes.
type CartItem struct {
	ID         string  `json:"_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	CoverImage string  `json:"coverImage"`
	Quantity   int     `json:"quantity"`
}

func NewCartItem(b Book, quantity int) CartItem {
	return CartItem{
		ID:         b.ID,
		Title:      b.Title,
		Price:      b.NewPrice,
		CoverImage: b.CoverImage,
		Quantity:   quantity,
	}
}

type Wishlist struct {
	ProductIDs []string `json:"productIds"`
}

type WishlistAddRequest struct {
	Email      string   `json:"email"`
	ProductIDs []string `json:"productIds"`
}

type WishlistRemoveRequest struct {
	Email     string `json:"email"`
	ProductID string `json:"productId"`
}

type Address struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zipcode string `json:"zipcode"`
}

type Order struct {
	ID         string   `json:"_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	TotalPrice float64  `json:"totalPrice"`
	Address    Address  `json:"address"`
	ProductIDs []string `json:"productIds"`
}

type Review struct {
	Name   string `json:"name" validate:"required"`
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
}

type Paging struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

type ListBooks struct {
	Paging  `json:",inline"`
	Items   []Book `json:"items"`
	Message string `json:"message,omitempty"`
}

type BookDetail struct {
	Book          Book     `json:"book"`
	Related       []Book   `json:"related"`
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
}

type ReviewList struct {
	Items         []Review `json:"items"`
	AverageRating float64  `json:"averageRating"`
	Message       string   `json:"message,omitempty"`
}

type Notification struct {
	Kind           string `json:"kind"`
	Title          string `json:"title"`
	BookID         string `json:"bookId"`
	DismissAfterMs int64  `json:"dismissAfterMs"`
}

type CartView struct {
	Items        []CartItem    `json:"items"`
	Count        int           `json:"count"`
	Subtotal     float64       `json:"subtotal"`
	Notification *Notification `json:"notification,omitempty"`
	Message      string        `json:"message,omitempty"`
}

type WishlistState struct {
	BookID string `json:"bookId"`
	Liked  bool   `json:"liked"`
	Error  string `json:"error,omitempty"`
}

type ListOrders struct {
	Items   []Order `json:"items"`
	Message string  `json:"message,omitempty"`
}
