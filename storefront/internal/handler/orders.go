package handler

import (
	"net/http"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) GetOrders(c echo.Context) error {
	email, err := requireUser(c)
	if err != nil {
		return err
	}
	orders, code, err := h.bookstoreSvc.GetOrders(c.Request().Context(), email)
	if err != nil {
		return upstreamError(code, errs.MsgLoadOrders)
	}
	resp := model.ListOrders{Items: orders}
	if resp.Items == nil {
		resp.Items = []model.Order{}
	}
	if len(resp.Items) == 0 {
		resp.Message = "You have no orders yet. Start shopping now!"
	}
	return c.JSON(http.StatusOK, resp)
}
