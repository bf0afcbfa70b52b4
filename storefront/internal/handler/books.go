package handler

import (
	"net/http"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/catalog"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/review"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type listBooksQuery struct {
	Page     int     `validate:"gte=1"`
	Sort     string  `validate:"omitempty,oneof=priceAsc priceDesc nameAsc nameDesc dateAsc dateDesc"`
	Category string
	MinPrice float64 `validate:"gte=0,lte=1000"`
	MaxPrice float64 `validate:"gte=0,lte=1000,gtefield=MinPrice"`
	Trending bool
	Discount bool
}

func (q listBooksQuery) filters() catalog.FilterCriteria {
	return catalog.FilterCriteria{
		PriceRange: [2]float64{q.MinPrice, q.MaxPrice},
		Category:   model.Category(q.Category),
		Trending:   q.Trending,
		Discount:   q.Discount,
	}
}

func bindListBooks(c echo.Context) (listBooksQuery, error) {
	q := listBooksQuery{Page: 1, MinPrice: catalog.MinPrice, MaxPrice: catalog.MaxPrice}
	if err := echo.QueryParamsBinder(c).
		Int("page", &q.Page).
		String("sort", &q.Sort).
		String("category", &q.Category).
		Float64("minPrice", &q.MinPrice).
		Float64("maxPrice", &q.MaxPrice).
		Bool("trending", &q.Trending).
		Bool("discount", &q.Discount).
		BindError(); err != nil {
		return q, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(q); err != nil {
		return q, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if q.Category != "" && !model.Category(q.Category).Valid() {
		return q, echo.NewHTTPError(http.StatusBadRequest, "category is invalid")
	}
	return q, nil
}

func (h *Handler) GetBooks(c echo.Context) error {
	q, err := bindListBooks(c)
	if err != nil {
		return err
	}
	books, code, err := h.bookstoreSvc.GetBooks(c.Request().Context())
	if err != nil {
		return upstreamError(code, errs.MsgLoadBooks)
	}

	items, totalPages := h.pipeline.Apply(books, q.filters(), catalog.SortOption(q.Sort), q.Page)
	resp := model.ListBooks{
		Paging: model.Paging{
			Page:       q.Page,
			PageSize:   catalog.PageSize,
			TotalPages: totalPages,
		},
		Items: items,
	}
	if len(items) == 0 {
		resp.Message = "No books found."
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBook(c echo.Context) error {
	id := c.Param("id")
	sess := currentSession(c)

	var (
		book model.Book
		code int
		all  []model.Book
	)
	gg, ctx := errgroup.WithContext(c.Request().Context())
	gg.Go(func() error {
		var err error
		book, code, err = h.bookstoreSvc.GetBook(ctx, id)
		return err
	})
	gg.Go(func() error {
		books, _, err := h.bookstoreSvc.GetBooks(ctx)
		if err != nil {
			// related books are optional
			h.log.Warn("related books", zap.String("bookId", id), zap.Error(err))
			return nil
		}
		all = books
		return nil
	})
	if err := gg.Wait(); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "No book found!")
		}
		return upstreamError(code, errs.MsgLoadBook)
	}

	board := sess.Reviews(book.ID)
	return c.JSON(http.StatusOK, model.BookDetail{
		Book:          book,
		Related:       catalog.Related(all, book, catalog.RelatedLimit),
		Reviews:       board.Reviews(),
		AverageRating: board.Average(),
	})
}

func (h *Handler) GetReviews(c echo.Context) error {
	return c.JSON(http.StatusOK, currentSession(c).Reviews(c.Param("id")).List())
}

func (h *Handler) CreateReview(c echo.Context) error {
	var r model.Review
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	board := currentSession(c).Reviews(c.Param("id"))
	if err := board.Add(r); err != nil {
		if errors.Is(err, review.ErrInvalidReview) {
			return echo.NewHTTPError(http.StatusBadRequest, review.ErrInvalidReview.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, board.List())
}
