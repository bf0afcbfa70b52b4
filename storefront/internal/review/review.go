package review

import (
	"math"
	"strings"
	"sync"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var ErrInvalidReview = errors.New("Please provide a name, a comment, and a star rating.")

// Board holds the reviews written for one book during a session. Reviews
// are not persisted.
type Board struct {
	validate *validator.Validate

	mu      sync.RWMutex
	reviews []model.Review
}

func NewBoard(v *validator.Validate) *Board {
	return &Board{validate: v, reviews: make([]model.Review, 0)}
}

func (b *Board) Add(r model.Review) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Text = strings.TrimSpace(r.Text)
	if err := b.validate.Struct(r); err != nil {
		return errors.Wrap(ErrInvalidReview, err.Error())
	}
	b.mu.Lock()
	b.reviews = append(b.reviews, r)
	b.mu.Unlock()
	return nil
}

func (b *Board) Reviews() []model.Review {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.Review, len(b.reviews))
	copy(out, b.reviews)
	return out
}

// Average is the mean rating rounded to one decimal, 0 without reviews.
func (b *Board) Average() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range b.reviews {
		total += r.Rating
	}
	return math.Round(float64(total)/float64(len(b.reviews))*10) / 10
}

func (b *Board) List() model.ReviewList {
	l := model.ReviewList{Items: b.Reviews(), AverageRating: b.Average()}
	if len(l.Items) == 0 {
		l.Message = "No reviews yet. Be the first to review!"
	}
	return l
}
