package bookstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/Astemirdum/bookstore-storefront/pkg/circuit_breaker"
	"github.com/Astemirdum/bookstore-storefront/storefront/config"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/metrics"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	endpointBooks          = "books"
	endpointBook           = "book"
	endpointWishlist       = "wishlist"
	endpointWishlistAdd    = "wishlist_add"
	endpointWishlistRemove = "wishlist_remove"
	endpointOrders         = "orders"
)

// Service is the client of the remote bookstore API. Calls are never
// retried; a circuit breaker fails them fast while the API is down.
type Service struct {
	log     *zap.Logger
	client  *http.Client
	cb      circuit_breaker.CircuitBreaker
	baseURL string
}

func NewService(log *zap.Logger, cfg config.BookstoreHTTPServer) *Service {
	return &Service{
		log:     log.Named("bookstore"),
		client:  &http.Client{Timeout: cfg.Timeout},
		cb:      circuit_breaker.New(100, 5*time.Second, 0.5, 2),
		baseURL: fmt.Sprintf("http://%s/api", net.JoinHostPort(cfg.Host, cfg.Port)),
	}
}

func (s *Service) CB() circuit_breaker.CircuitBreaker {
	return s.cb
}

func (s *Service) GetBooks(ctx context.Context) ([]model.Book, int, error) {
	books := make([]model.Book, 0)
	code, err := s.do(ctx, endpointBooks, http.MethodGet, s.baseURL+"/books", nil, &books)
	if err != nil {
		return nil, code, err
	}
	return books, code, nil
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, int, error) {
	var book model.Book
	code, err := s.do(ctx, endpointBook, http.MethodGet, s.baseURL+"/books/"+url.PathEscape(id), nil, &book)
	return book, code, err
}

func (s *Service) GetWishlist(ctx context.Context, email string) (model.Wishlist, int, error) {
	var wl model.Wishlist
	code, err := s.do(ctx, endpointWishlist, http.MethodGet, s.baseURL+"/wishlist/"+url.PathEscape(email), nil, &wl)
	return wl, code, err
}

func (s *Service) AddToWishlist(ctx context.Context, email string, bookIDs ...string) (int, error) {
	req := model.WishlistAddRequest{Email: email, ProductIDs: bookIDs}
	return s.do(ctx, endpointWishlistAdd, http.MethodPost, s.baseURL+"/wishlist/add", req, nil)
}

func (s *Service) RemoveFromWishlist(ctx context.Context, email, bookID string) (int, error) {
	req := model.WishlistRemoveRequest{Email: email, ProductID: bookID}
	return s.do(ctx, endpointWishlistRemove, http.MethodPost, s.baseURL+"/wishlist/remove", req, nil)
}

func (s *Service) GetOrders(ctx context.Context, email string) ([]model.Order, int, error) {
	orders := make([]model.Order, 0)
	code, err := s.do(ctx, endpointOrders, http.MethodGet, s.baseURL+"/orders/"+url.PathEscape(email), nil, &orders)
	if err != nil {
		return nil, code, err
	}
	return orders, code, nil
}

// do performs one request through the circuit breaker. Only transport
// errors and 5xx responses count as breaker failures.
func (s *Service) do(ctx context.Context, endpoint, method, u string, in, out any) (int, error) {
	var (
		code   int
		reqErr error
	)
	if err := s.cb.Call(func() error {
		code, reqErr = s.roundTrip(ctx, method, u, in, out)
		if code >= http.StatusInternalServerError {
			return reqErr
		}
		return nil
	}); errors.Is(err, circuit_breaker.ErrOpenCB) {
		code, reqErr = http.StatusServiceUnavailable, err
	}
	metrics.Upstream(endpoint, code)
	if reqErr != nil {
		s.log.Warn("bookstore request", zap.String("endpoint", endpoint), zap.Int("code", code), zap.Error(reqErr))
	}
	return code, reqErr
}

func (s *Service) roundTrip(ctx context.Context, method, u string, in, out any) (int, error) {
	body := io.Reader(http.NoBody)
	if in != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(in); err != nil {
			return http.StatusBadRequest, err
		}
		body = b
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return http.StatusBadRequest, err
	}
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if in != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return http.StatusServiceUnavailable, errors.Wrap(err, "bookstore unavailable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, errs.ErrNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, errors.Wrapf(errs.ErrDefault, "%s %s: status %d", method, req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return http.StatusBadGateway, errors.Wrap(err, "decode bookstore response")
	}
	return resp.StatusCode, nil
}
