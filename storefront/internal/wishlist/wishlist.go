package wishlist

import (
	"context"
	"sync"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=wishlist.go -destination=mocks/mock.go

// Syncer is the remote wishlist store.
type Syncer interface {
	GetWishlist(ctx context.Context, email string) (model.Wishlist, int, error)
	AddToWishlist(ctx context.Context, email string, bookIDs ...string) (int, error)
	RemoveFromWishlist(ctx context.Context, email, bookID string) (int, error)
}

// Result reports the outcome of a toggle. Liked is the state after the
// toggle settled, i.e. the pre-toggle value when Err is set.
type Result struct {
	Liked bool
	Err   error
}

func (r Result) State(bookID string) model.WishlistState {
	st := model.WishlistState{BookID: bookID, Liked: r.Liked}
	if r.Err != nil {
		st.Error = r.Err.Error()
	}
	return st
}

// Heart is the "is this book liked" flag for one displayed book.
//
// The flag belongs to the user it was loaded for; a different user, or no
// user at all, starts from false. Toggles are applied optimistically and are
// not serialized against each other: two quick toggles fire two independent
// remote calls.
type Heart struct {
	bookID string
	syncer Syncer
	log    *zap.Logger

	mu    sync.Mutex
	liked bool
	owner string
}

func NewHeart(bookID string, syncer Syncer, log *zap.Logger) *Heart {
	return &Heart{
		bookID: bookID,
		syncer: syncer,
		log:    log.Named("wishlist").With(zap.String("bookId", bookID)),
	}
}

func (h *Heart) BookID() string { return h.bookID }

func (h *Heart) Liked() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.liked
}

// Load initializes the flag from the remote wishlist of email. It fetches
// once per user and again whenever the user changes. Without a user the
// flag is false. A failed lookup is logged, leaves the flag false and is
// retried on the next Load.
func (h *Heart) Load(ctx context.Context, email string) {
	h.mu.Lock()
	if email == "" {
		h.liked, h.owner = false, ""
		h.mu.Unlock()
		return
	}
	if h.owner == email {
		h.mu.Unlock()
		return
	}
	h.liked, h.owner = false, ""
	h.mu.Unlock()

	wl, _, err := h.syncer.GetWishlist(ctx, email)
	if err != nil {
		h.log.Error("fetch wishlist", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.owner == "" {
		h.liked = Contains(wl.ProductIDs, h.bookID)
		h.owner = email
	}
}

// Toggle flips the flag, then issues exactly one add or remove call.
// On failure the flag is reverted to its pre-toggle value.
func (h *Heart) Toggle(ctx context.Context, email string) Result {
	if email == "" {
		return Result{Err: errs.ErrNoUser}
	}

	h.mu.Lock()
	prev := h.liked
	if h.owner != email {
		prev = false
	}
	h.liked = !prev
	h.owner = email
	h.mu.Unlock()

	var err error
	if prev {
		_, err = h.syncer.RemoveFromWishlist(ctx, email, h.bookID)
	} else {
		_, err = h.syncer.AddToWishlist(ctx, email, h.bookID)
	}
	if err != nil {
		h.log.Error("update wishlist", zap.Bool("liked", !prev), zap.Error(err))
		h.mu.Lock()
		if h.owner == email {
			h.liked = prev
		}
		h.mu.Unlock()
		return Result{Liked: prev, Err: err}
	}

	h.log.Debug("wishlist updated", zap.Bool("liked", !prev))
	return Result{Liked: !prev}
}

// Books keeps the catalog books whose id is in ids, in catalog order.
func Books(all []model.Book, ids []string) []model.Book {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	out := make([]model.Book, 0, len(ids))
	for _, b := range all {
		if _, ok := set[b.ID]; ok {
			out = append(out, b)
		}
	}
	return out
}

func Contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
