package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"library-loan-service/internal/domain/member"

	"github.com/google/uuid"
)

type MemberClient struct {
	baseURL string
	hc      *http.Client
	timeout time.Duration
}

var _ member.Gateway = (*MemberClient)(nil)

func NewMemberClient(baseURL string, timeout time.Duration) *MemberClient {
	return &MemberClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		timeout: timeout,
	}
}

func (c *MemberClient) Exists(ctx context.Context, memberID uint64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/members/%d", c.baseURL, memberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", member.ErrUnavailable, err)
	}
	req.Header.Set("X-Correlation-Id", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", member.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: GET /members/%d returned %d", member.ErrUnavailable, memberID, resp.StatusCode)
	}
}
