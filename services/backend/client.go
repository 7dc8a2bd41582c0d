// Package backend is the REST API client: one method per backend capability,
// exactly one network round trip per call, no retries, no caching. All
// failures normalize into the core error taxonomy so views can distinguish
// "server unreachable" from "server said no" from "server returned garbage".
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"reflect"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/lava/core"
)

// TokenSource supplies the current bearer token; an empty string means
// the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

type anonymousTokens struct{}

func (anonymousTokens) Token() string { return "" }

// AnonymousTokens is a TokenSource for clients without a session.
var AnonymousTokens TokenSource = anonymousTokens{}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     core.Logger
}

func NewClient(conf *core.Config, tokens TokenSource, log core.Logger) *Client {
	if tokens == nil {
		tokens = AnonymousTokens
	}
	return &Client{
		baseURL: conf.Backend.BaseURL,
		http:    &http.Client{Timeout: conf.Backend.RequestTimeout},
		tokens:  tokens,
		log:     log,
	}
}

// errorBody is the JSON shape of a non-2xx response; the backend uses
// "detail", older endpoints "message".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, op, path string, out interface{}) error {
	return c.do(ctx, op, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out interface{}) error {
	return c.do(ctx, op, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, op, path string, body, out interface{}) error {
	return c.do(ctx, op, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, op, path string, body, out interface{}) error {
	return c.do(ctx, op, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, op, path string) error {
	return c.do(ctx, op, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "%s: encoding request", op)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrapf(err, "%s: building request", op)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &core.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp)
	}

	if out == nil {
		_, _ = io.Copy(ioutil.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.contractError(op, errors.Wrap(err, "decoding response"))
	}
	if err := checkContract(out); err != nil {
		return c.contractError(op, err)
	}
	return nil
}

// apiError builds an APIError from a non-2xx response, using the
// server-supplied detail verbatim when present.
func (c *Client) apiError(resp *http.Response) error {
	msg := http.StatusText(resp.StatusCode)
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Detail != "" {
			msg = body.Detail
		} else if body.Message != "" {
			msg = body.Message
		}
	}
	return &core.APIError{StatusCode: resp.StatusCode, Message: msg}
}

// contractError wraps and logs a payload that decoded but violated the
// contract; always a client/server version skew bug.
func (c *Client) contractError(op string, err error) error {
	cErr := &core.DataContractError{Op: op, Err: err}
	if c.log != nil {
		c.log.Error("backend data contract violation", cErr)
	}
	return cErr
}

// checkContract validates a decoded value (or each element of a decoded
// slice) against its contract tags.
func checkContract(out interface{}) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := checkContract(v.Index(i).Addr().Interface()); err != nil {
				return errors.Wrap(err, fmt.Sprintf("item %d", i))
			}
		}
		return nil
	case reflect.Struct:
		return core.Validate.Struct(v.Addr().Interface())
	default:
		return nil
	}
}
