package userservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client клиент для работы с UserService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetUser получает имя и квартиру пользователя
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	url := fmt.Sprintf("%s/internal/users/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("GetUser: UserService unavailable for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if resp.StatusCode >= http.StatusInternalServerError {
			c.log.Error("GetUser: UserService returned %d for user_id=%d", resp.StatusCode, userID)
			return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if user.ID == 0 {
		user.ID = userID
	}

	return &user, nil
}
