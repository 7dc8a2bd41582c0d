package testutil

import (
	"io/ioutil"
	"log"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"

	"github.com/trezcool/lava/core"
	"github.com/trezcool/lava/core/session"
	"github.com/trezcool/lava/core/user"
)

// tokenSecret signs the tokens minted here. Clients never verify it; the
// claims just have to decode.
const tokenSecret = "s3cr3t"

// NewConfig points a client at the given fake backend.
func NewConfig(baseURL string) *core.Config {
	return &core.Config{
		Debug:    true,
		TestMode: true,
		Env:      "TEST",
		AppName:  "LAVA",
		Backend: core.BackendConfig{
			BaseURL:        strings.TrimRight(baseURL, "/"),
			RequestTimeout: 5 * time.Second,
		},
	}
}

// Logger discards everything; contract violations still flow through it.
func Logger() core.Logger {
	return core.NewConsoleLogger(log.New(ioutil.Discard, "", 0))
}

// MintToken issues a signed access token carrying usr's identity, the way
// the backend does on login.
func MintToken(t *testing.T, usr user.User, expiresAt time.Time) string {
	t.Helper()
	claims := session.Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   usr.ID,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
		Username: usr.Username,
		Email:    usr.Email,
		UserType: usr.Type,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tokenSecret))
	if err != nil {
		t.Fatalf("MintToken() failed: %v", err)
	}
	return token
}

// CapturedRequest is one request the fake backend saw.
type CapturedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
	Token  string
}

// Server is a fake backend; tests register each route with the payload it
// should serve, and inspect what the client sent afterwards. A per-path
// delay makes fetch-ordering scenarios reproducible.
type Server struct {
	URL string

	e   *echo.Echo
	srv *httptest.Server

	mu       sync.Mutex
	requests []CapturedRequest
	delays   map[string]time.Duration
}

func NewServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		e:      echo.New(),
		delays: make(map[string]time.Duration),
	}
	s.e.Use(s.capture)
	s.srv = httptest.NewServer(s.e)
	s.URL = s.srv.URL
	t.Cleanup(s.srv.Close)
	return s
}

func (s *Server) Close() { s.srv.Close() }

// Handle serves a static JSON payload on method+path.
func (s *Server) Handle(method, path string, code int, body interface{}) {
	s.e.Add(method, path, func(c echo.Context) error {
		if body == nil {
			return c.NoContent(code)
		}
		return c.JSON(code, body)
	})
}

// HandleFunc registers a custom handler.
func (s *Server) HandleFunc(method, path string, h echo.HandlerFunc) {
	s.e.Add(method, path, h)
}

// HandleError serves the backend's error shape.
func (s *Server) HandleError(method, path string, code int, detail string) {
	s.Handle(method, path, code, map[string]string{"detail": detail})
}

// SetDelay delays every response on path.
func (s *Server) SetDelay(path string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[path] = d
}

// Requests returns everything the server saw, in arrival order.
func (s *Server) Requests() []CapturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CapturedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the newest request matching method+path, if any.
func (s *Server) LastRequest(method, path string) (CapturedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Method == method && s.requests[i].Path == path {
			return s.requests[i], true
		}
	}
	return CapturedRequest{}, false
}

func (s *Server) capture(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		body, _ := ioutil.ReadAll(req.Body)
		req.Body = ioutil.NopCloser(strings.NewReader(string(body)))

		token := strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		s.requests = append(s.requests, CapturedRequest{
			Method: req.Method,
			Path:   req.URL.Path,
			Query:  req.URL.RawQuery,
			Body:   body,
			Token:  token,
		})
		delay := s.delays[req.URL.Path]
		s.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}
		return next(c)
	}
}
