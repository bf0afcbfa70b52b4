package wishlist_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/wishlist"
	mock_wishlist "github.com/Astemirdum/bookstore-storefront/storefront/internal/wishlist/mocks"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const email = "reader@example.com"

func TestHeart_Load(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *mock_wishlist.MockSyncer)
	tests := []struct {
		name         string
		email        string
		mockBehavior mockBehavior
		wantLiked    bool
	}{
		{
			name:  "in wishlist",
			email: email,
			mockBehavior: func(r *mock_wishlist.MockSyncer) {
				r.EXPECT().GetWishlist(gomock.Any(), email).
					Return(model.Wishlist{ProductIDs: []string{"b0", "b1"}}, http.StatusOK, nil)
			},
			wantLiked: true,
		},
		{
			name:  "not in wishlist",
			email: email,
			mockBehavior: func(r *mock_wishlist.MockSyncer) {
				r.EXPECT().GetWishlist(gomock.Any(), email).
					Return(model.Wishlist{ProductIDs: []string{"b0"}}, http.StatusOK, nil)
			},
		},
		{
			name:         "no user",
			mockBehavior: func(r *mock_wishlist.MockSyncer) {},
		},
		{
			name:  "fetch failed",
			email: email,
			mockBehavior: func(r *mock_wishlist.MockSyncer) {
				r.EXPECT().GetWishlist(gomock.Any(), email).
					Return(model.Wishlist{}, http.StatusInternalServerError, errors.New("boom"))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			syncer := mock_wishlist.NewMockSyncer(c)
			tt.mockBehavior(syncer)

			h := wishlist.NewHeart("b1", syncer, zap.NewNop())
			h.Load(context.Background(), tt.email)
			require.Equal(t, tt.wantLiked, h.Liked())
		})
	}
}

func TestHeart_LoadOnce(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	syncer := mock_wishlist.NewMockSyncer(c)
	syncer.EXPECT().GetWishlist(gomock.Any(), email).
		Return(model.Wishlist{ProductIDs: []string{"b1"}}, http.StatusOK, nil).Times(1)

	h := wishlist.NewHeart("b1", syncer, zap.NewNop())
	h.Load(context.Background(), email)
	h.Load(context.Background(), email)
	require.True(t, h.Liked())
}

func TestHeart_LoadFollowsUser(t *testing.T) {
	t.Parallel()
	const other = "other@example.com"
	c := gomock.NewController(t)
	defer c.Finish()
	syncer := mock_wishlist.NewMockSyncer(c)
	ctx := context.Background()
	gomock.InOrder(
		syncer.EXPECT().GetWishlist(gomock.Any(), email).
			Return(model.Wishlist{ProductIDs: []string{"b1"}}, http.StatusOK, nil),
		syncer.EXPECT().GetWishlist(gomock.Any(), other).
			Return(model.Wishlist{ProductIDs: []string{"b2"}}, http.StatusOK, nil),
		syncer.EXPECT().GetWishlist(gomock.Any(), email).
			Return(model.Wishlist{ProductIDs: []string{"b1"}}, http.StatusOK, nil),
	)

	h := wishlist.NewHeart("b1", syncer, zap.NewNop())
	h.Load(ctx, email)
	require.True(t, h.Liked())

	h.Load(ctx, "")
	require.False(t, h.Liked(), "logged out")

	h.Load(ctx, other)
	require.False(t, h.Liked())

	h.Load(ctx, email)
	require.True(t, h.Liked())
}

func TestHeart_LoadFailedForNewUser(t *testing.T) {
	t.Parallel()
	const other = "other@example.com"
	c := gomock.NewController(t)
	defer c.Finish()
	syncer := mock_wishlist.NewMockSyncer(c)
	ctx := context.Background()
	gomock.InOrder(
		syncer.EXPECT().GetWishlist(gomock.Any(), email).
			Return(model.Wishlist{ProductIDs: []string{"b1"}}, http.StatusOK, nil),
		syncer.EXPECT().GetWishlist(gomock.Any(), other).
			Return(model.Wishlist{}, http.StatusServiceUnavailable, errors.New("down")),
		syncer.EXPECT().GetWishlist(gomock.Any(), other).
			Return(model.Wishlist{ProductIDs: []string{"b1"}}, http.StatusOK, nil),
	)

	h := wishlist.NewHeart("b1", syncer, zap.NewNop())
	h.Load(ctx, email)
	h.Load(ctx, other)
	require.False(t, h.Liked())

	h.Load(ctx, other)
	require.True(t, h.Liked())
}

func TestHeart_ToggleByAnotherUser(t *testing.T) {
	t.Parallel()
	const other = "other@example.com"
	c := gomock.NewController(t)
	defer c.Finish()
	syncer := mock_wishlist.NewMockSyncer(c)
	ctx := context.Background()
	syncer.EXPECT().GetWishlist(gomock.Any(), email).
		Return(model.Wishlist{ProductIDs: []string{"b1"}}, http.StatusOK, nil)
	syncer.EXPECT().AddToWishlist(ctx, other, "b1").Return(http.StatusOK, nil)

	h := wishlist.NewHeart("b1", syncer, zap.NewNop())
	h.Load(ctx, email)
	require.True(t, h.Liked())

	res := h.Toggle(ctx, other)
	require.NoError(t, res.Err)
	require.True(t, res.Liked)
}

func TestHeart_Toggle(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	syncer := mock_wishlist.NewMockSyncer(c)
	ctx := context.Background()

	gomock.InOrder(
		syncer.EXPECT().AddToWishlist(ctx, email, "b1").Return(http.StatusOK, nil),
		syncer.EXPECT().RemoveFromWishlist(ctx, email, "b1").Return(http.StatusOK, nil),
	)

	h := wishlist.NewHeart("b1", syncer, zap.NewNop())
	res := h.Toggle(ctx, email)
	require.NoError(t, res.Err)
	require.True(t, res.Liked)
	require.True(t, h.Liked())

	res = h.Toggle(ctx, email)
	require.NoError(t, res.Err)
	require.False(t, res.Liked)
	require.False(t, h.Liked())
}

func TestHeart_ToggleRevertsOnFailure(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	syncer := mock_wishlist.NewMockSyncer(c)
	ctx := context.Background()
	errRemote := errors.New("Failed to add to wishlist")

	var seenDuringCall bool
	h := wishlist.NewHeart("b1", syncer, zap.NewNop())
	syncer.EXPECT().AddToWishlist(ctx, email, "b1").
		DoAndReturn(func(context.Context, string, ...string) (int, error) {
			seenDuringCall = h.Liked()
			return http.StatusInternalServerError, errRemote
		})

	res := h.Toggle(ctx, email)
	require.True(t, seenDuringCall, "optimistic state applied before the remote call")
	require.ErrorIs(t, res.Err, errRemote)
	require.False(t, res.Liked)
	require.False(t, h.Liked())

	st := res.State("b1")
	require.Equal(t, model.WishlistState{BookID: "b1", Liked: false, Error: "Failed to add to wishlist"}, st)
}

func TestHeart_ToggleWithoutUser(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	syncer := mock_wishlist.NewMockSyncer(c)

	h := wishlist.NewHeart("b1", syncer, zap.NewNop())
	res := h.Toggle(context.Background(), "")
	require.ErrorIs(t, res.Err, errs.ErrNoUser)
	require.False(t, res.Liked)
	require.False(t, h.Liked())
}

func TestBooks(t *testing.T) {
	t.Parallel()
	all := []model.Book{{ID: "b0"}, {ID: "b1"}, {ID: "b2"}, {ID: "b3"}}
	got := wishlist.Books(all, []string{"b3", "b1", "missing"})
	require.Equal(t, []model.Book{{ID: "b1"}, {ID: "b3"}}, got)

	require.Empty(t, wishlist.Books(all, nil))
}
