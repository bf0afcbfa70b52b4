package handler

import (
	"net/http"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/catalog"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/metrics"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/wishlist"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// GetWishlist is the wishlist page: the liked books in catalog order, paginated like the catalog.
func (h *Handler) GetWishlist(c echo.Context) error {
	page := 1
	if err := echo.QueryParamsBinder(c).Int("page", &page).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrInvalidPage.Error())
	}

	email := userEmail(c)
	if email == "" {
		return c.JSON(http.StatusOK, model.ListBooks{
			Paging:  model.Paging{Page: page, PageSize: catalog.PageSize, TotalPages: 1},
			Items:   []model.Book{},
			Message: "Log in to see your wishlist.",
		})
	}

	var (
		books []model.Book
		wl    model.Wishlist
		code  int
	)
	gg, ctx := errgroup.WithContext(c.Request().Context())
	gg.Go(func() error {
		var (
			err error
			cd  int
		)
		books, cd, err = h.bookstoreSvc.GetBooks(ctx)
		if err != nil {
			code = cd
		}
		return err
	})
	gg.Go(func() error {
		var err error
		wl, _, err = h.bookstoreSvc.GetWishlist(ctx, email)
		return err
	})
	if err := gg.Wait(); err != nil {
		return upstreamError(code, errs.MsgLoadWishlist)
	}

	liked := wishlist.Books(books, wl.ProductIDs)
	resp := model.ListBooks{
		Paging: model.Paging{
			Page:       page,
			PageSize:   catalog.PageSize,
			TotalPages: catalog.TotalPages(len(liked)),
		},
		Items: catalog.Paginate(liked, page),
	}
	if len(resp.Items) == 0 {
		resp.Message = "Your wishlist is empty."
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetWishlistState(c echo.Context) error {
	heart := currentSession(c).Heart(c.Param("id"))
	heart.Load(c.Request().Context(), userEmail(c))
	return c.JSON(http.StatusOK, model.WishlistState{BookID: heart.BookID(), Liked: heart.Liked()})
}

// ToggleWishlist flips the heart optimistically. A failed remote update is
// reported in the body with the reverted state.
func (h *Handler) ToggleWishlist(c echo.Context) error {
	email, err := requireUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	heart := currentSession(c).Heart(c.Param("id"))
	heart.Load(ctx, email)

	res := heart.Toggle(ctx, email)
	metrics.WishlistToggle(res.Err)
	return c.JSON(http.StatusOK, res.State(heart.BookID()))
}
