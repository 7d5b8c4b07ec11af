package schoolbook

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/bigredeye/schoolbook/api"
	"github.com/bigredeye/schoolbook/internal/models"
)

var ErrNotFound = errors.New("not found")

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	client *resty.Client
}

func NewClient(endpoint string) (*Client, error) {
	if len(endpoint) == 0 {
		return nil, errors.New("empty endpoint")
	}

	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(time.Second * 10).
		SetRetryCount(3)

	return &Client{client}, nil
}

func (c *Client) do(req *resty.Request, method, url string) error {
	res, err := req.SetError(&api.ErrorResponse{}).Execute(method, url)
	if err != nil {
		return err
	}
	if res.IsError() {
		apiErr := &APIError{StatusCode: res.StatusCode()}
		if detail, ok := res.Error().(*api.ErrorResponse); ok && detail != nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}
	return nil
}

// Get returns nil when the server has no record with the given id.
func Get[T models.Record[T]](c *Client, id int) (*T, error) {
	var record *T
	err := c.do(c.client.R().SetResult(&record), http.MethodGet, api.RecordPath(kindOf[T](), id))
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to get %s %d", kindOf[T](), id)
	}
	return record, nil
}

// Create sends record as is. The server ignores the id of kinds it numbers
// itself.
func Create[T models.Record[T]](c *Client, record T) (T, error) {
	var stored T
	err := c.do(c.client.R().SetBody(record).SetResult(&stored), http.MethodPost, api.CollectionPath(kindOf[T]()))
	if err != nil {
		return stored, errors.Wrapf(err, "Failed to create %s", kindOf[T]())
	}
	return stored, nil
}

func Update[T models.Record[T]](c *Client, id int, record T) (T, error) {
	var stored T
	err := c.do(c.client.R().SetBody(record).SetResult(&stored), http.MethodPut, api.RecordPath(kindOf[T](), id))
	if err != nil {
		return stored, errors.Wrapf(err, "Failed to update %s %d", kindOf[T](), id)
	}
	return stored, nil
}

func Delete[T models.Record[T]](c *Client, id int) (string, error) {
	res := &api.MessageResponse{}
	err := c.do(c.client.R().SetResult(res), http.MethodDelete, api.RecordPath(kindOf[T](), id))
	if err != nil {
		return "", errors.Wrapf(err, "Failed to delete %s %d", kindOf[T](), id)
	}
	return res.Message, nil
}

func kindOf[T models.Record[T]]() string {
	var zero T
	return zero.Kind()
}
