package review_test

import (
	"testing"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/review"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestBoard_Add(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		review  model.Review
		wantErr bool
	}{
		{name: "ok", review: model.Review{Name: "Rahim", Text: "Great", Rating: 5}},
		{name: "empty name", review: model.Review{Name: "  ", Text: "Great", Rating: 5}, wantErr: true},
		{name: "empty text", review: model.Review{Name: "Rahim", Text: "", Rating: 4}, wantErr: true},
		{name: "no stars", review: model.Review{Name: "Rahim", Text: "Great", Rating: 0}, wantErr: true},
		{name: "too many stars", review: model.Review{Name: "Rahim", Text: "Great", Rating: 6}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := review.NewBoard(validator.New())
			err := b.Add(tt.review)
			if tt.wantErr {
				require.True(t, errors.Is(err, review.ErrInvalidReview))
				require.Empty(t, b.Reviews())
				return
			}
			require.NoError(t, err)
			require.Len(t, b.Reviews(), 1)
		})
	}
}

func TestBoard_Average(t *testing.T) {
	t.Parallel()
	b := review.NewBoard(validator.New())
	require.Equal(t, float64(0), b.Average())
	require.Equal(t, "No reviews yet. Be the first to review!", b.List().Message)

	for _, stars := range []int{5, 4, 4} {
		require.NoError(t, b.Add(model.Review{Name: "n", Text: "t", Rating: stars}))
	}
	require.Equal(t, 4.3, b.Average())

	l := b.List()
	require.Len(t, l.Items, 3)
	require.Equal(t, 4.3, l.AverageRating)
	require.Empty(t, l.Message)
}
