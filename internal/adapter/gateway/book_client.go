package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"library-loan-service/internal/domain/book"

	"github.com/google/uuid"
)

// BookClient talks to the book service's REST API. Every call carries a
// bounded deadline; a timeout is a failure, never an implicit success.
type BookClient struct {
	baseURL string
	hc      *http.Client
	timeout time.Duration
}

var _ book.Gateway = (*BookClient)(nil)

func NewBookClient(baseURL string, timeout time.Duration) *BookClient {
	return &BookClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		timeout: timeout,
	}
}

type bookPayload struct {
	BookID uint64 `json:"book_id"`
	Title  string `json:"title"`
	Stock  int    `json:"stock"`
}

func (c *BookClient) GetStock(ctx context.Context, bookID uint64) (int, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/books/%d", c.baseURL, bookID))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, book.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return 0, fmt.Errorf("%w: GET /books/%d returned %d", book.ErrUnavailable, bookID, resp.StatusCode)
	}

	var p bookPayload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return 0, fmt.Errorf("%w: decode book %d: %v", book.ErrUnavailable, bookID, err)
	}
	return p.Stock, nil
}

// DecrementStock reserves one copy. The book service guards the decrement
// ("stock - 1 where stock > 0") and answers 400 when nothing is left, which
// makes this the atomic check-and-reserve for loan creation.
func (c *BookClient) DecrementStock(ctx context.Context, bookID uint64) error {
	return c.mutateStock(ctx, bookID, "decreaseStock", true)
}

func (c *BookClient) IncrementStock(ctx context.Context, bookID uint64) error {
	return c.mutateStock(ctx, bookID, "increaseStock", false)
}

func (c *BookClient) mutateStock(ctx context.Context, bookID uint64, action string, outOfStockPossible bool) error {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/books/%d/%s", c.baseURL, bookID, action))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return book.ErrNotFound
	case http.StatusConflict:
		if outOfStockPossible {
			return book.ErrOutOfStock
		}
	case http.StatusBadRequest:
		// the book service answers 400 both for an exhausted stock guard
		// ("No stock available") and for malformed requests; only the
		// former is out-of-stock
		if outOfStockPossible && isNoStockMessage(resp.Body) {
			return book.ErrOutOfStock
		}
	}
	return fmt.Errorf("%w: PUT /books/%d/%s returned %d", book.ErrUnavailable, bookID, action, resp.StatusCode)
}

func isNoStockMessage(body io.Reader) bool {
	var p struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&p); err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(p.Message), "stock")
}

func (c *BookClient) do(ctx context.Context, method, url string) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrUnavailable, err)
	}
	req.Header.Set("X-Correlation-Id", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrUnavailable, err)
	}
	return resp, nil
}
