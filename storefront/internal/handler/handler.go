package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Astemirdum/bookstore-storefront/pkg/validate"
	md "github.com/Astemirdum/bookstore-storefront/pkg/middleware"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/catalog"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/notify"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	bookstoreSvc BookstoreService
	sessions     *session.Store
	pipeline     *catalog.Pipeline
	notifier     notify.Notifier
	log          *zap.Logger
}

func New(log *zap.Logger, bookstoreSvc BookstoreService, pipeline *catalog.Pipeline, notifier notify.Notifier) *Handler {
	return &Handler{
		bookstoreSvc: bookstoreSvc,
		sessions:     session.NewStore(bookstoreSvc, log),
		pipeline:     pipeline,
		notifier:     notifier,
		log:          log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, session.HeaderSessionID, XUserEmail},
		ExposeHeaders:    []string{session.HeaderSessionID},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		h.sessionMW,
	)

	api.GET("/books", h.GetBooks)
	api.GET("/books/:id", h.GetBook)
	api.GET("/books/:id/reviews", h.GetReviews)
	api.POST("/books/:id/reviews", h.CreateReview)

	api.GET("/cart", h.GetCart)
	api.POST("/cart/items", h.AddToCart)
	api.PUT("/cart/items/:id", h.SetCartQuantity)
	api.POST("/cart/items/:id/increase", h.IncreaseQuantity)
	api.POST("/cart/items/:id/decrease", h.DecreaseQuantity)
	api.DELETE("/cart/items/:id", h.RemoveFromCart)
	api.DELETE("/cart", h.ClearCart)

	api.GET("/wishlist", h.GetWishlist)
	api.GET("/wishlist/:id", h.GetWishlistState)
	api.POST("/wishlist/:id/toggle", h.ToggleWishlist)

	api.GET("/orders", h.GetOrders)

	return e
}

// ExpireSessions drops sessions idle for longer than ttl until ctx is done.
func (h *Handler) ExpireSessions(ctx context.Context, ttl time.Duration) {
	h.sessions.Expire(ctx, ttl)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
