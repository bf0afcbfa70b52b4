package handler

import (
	"net/http"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/metrics"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type addToCartRequest struct {
	ID string `json:"_id" validate:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=1"`
}

func (h *Handler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, currentSession(c).Cart.View())
}

// AddToCart is the "Add to Cart" button: add the book or bump its quantity.
func (h *Handler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.fetchBook(c, req.ID)
	if err != nil {
		return err
	}

	sess := currentSession(c)
	n := sess.Cart.AddOrIncrement(book)
	metrics.CartAction("add")
	h.notifier.Notify(c.Request().Context(), sess.ID, n)

	view := sess.Cart.View()
	view.Notification = &n
	return c.JSON(http.StatusOK, view)
}

// SetCartQuantity puts the book in the cart with exactly the given quantity.
func (h *Handler) SetCartQuantity(c echo.Context) error {
	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.fetchBook(c, c.Param("id"))
	if err != nil {
		return err
	}
	sess := currentSession(c)
	sess.Cart.AddToCart(model.NewCartItem(book, req.Quantity))
	metrics.CartAction("set")
	return c.JSON(http.StatusOK, sess.Cart.View())
}

func (h *Handler) IncreaseQuantity(c echo.Context) error {
	sess := currentSession(c)
	sess.Cart.IncreaseQuantity(c.Param("id"))
	metrics.CartAction("increase")
	return c.JSON(http.StatusOK, sess.Cart.View())
}

func (h *Handler) DecreaseQuantity(c echo.Context) error {
	sess := currentSession(c)
	sess.Cart.DecreaseQuantity(c.Param("id"))
	metrics.CartAction("decrease")
	return c.JSON(http.StatusOK, sess.Cart.View())
}

func (h *Handler) RemoveFromCart(c echo.Context) error {
	sess := currentSession(c)
	sess.Cart.RemoveFromCart(c.Param("id"))
	metrics.CartAction("remove")
	return c.JSON(http.StatusOK, sess.Cart.View())
}

func (h *Handler) ClearCart(c echo.Context) error {
	sess := currentSession(c)
	sess.Cart.ClearCart()
	metrics.CartAction("clear")
	return c.JSON(http.StatusOK, sess.Cart.View())
}

func (h *Handler) fetchBook(c echo.Context, id string) (model.Book, error) {
	book, code, err := h.bookstoreSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Book{}, echo.NewHTTPError(http.StatusNotFound, "No book found!")
		}
		return model.Book{}, upstreamError(code, errs.MsgLoadBook)
	}
	return book, nil
}
