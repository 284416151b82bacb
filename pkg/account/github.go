package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/issuecheck/pkg/config"
)

const (
	defaultGitHubURL  = "https://api.github.com"
	githubAPIVersion  = "2022-11-28"
	maxErrorBodyBytes = 4 << 10
)

// GitHubConfig configures the GitHub REST lookup.
// Token is optional; anonymous requests are subject to lower rate limits.
type GitHubConfig struct {
	BaseURL   string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	Token     string        `env:"GITHUB_TOKEN"`
	Timeout   time.Duration `env:"GITHUB_API_TIMEOUT" envDefault:"10s"`
	UserAgent string        `env:"GITHUB_USER_AGENT" envDefault:"issuecheck"`
}

// GitHubClient implements Lookup with GET /users/{username}.
type GitHubClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// GitHubOption configures a GitHubClient.
type GitHubOption func(*GitHubClient)

// WithHTTPClient replaces the HTTP client. The configured token is not
// applied to a custom client.
func WithHTTPClient(c *http.Client) GitHubOption {
	return func(g *GitHubClient) {
		if c != nil {
			g.httpClient = c
		}
	}
}

// NewGitHubClient creates a GitHub lookup client.
// A zero Timeout disables the client-side timeout.
func NewGitHubClient(cfg GitHubConfig, opts ...GitHubOption) (*GitHubClient, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultGitHubURL
	}
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: BaseURL must be an absolute URL", ErrInvalidConfig)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%w: Timeout must not be negative", ErrInvalidConfig)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "issuecheck"
	}

	var transport http.RoundTripper = cleanhttp.DefaultPooledTransport()
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}),
			Base:   transport,
		}
	}

	c := &GitHubClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MustNewGitHubClient is NewGitHubClient that panics on invalid configuration.
func MustNewGitHubClient(cfg GitHubConfig, opts ...GitHubOption) *GitHubClient {
	c, err := NewGitHubClient(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewGitHubClientFromEnv loads GitHubConfig from the environment.
func NewGitHubClientFromEnv(opts ...GitHubOption) (*GitHubClient, error) {
	var cfg GitHubConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewGitHubClient(cfg, opts...)
}

// LookupAccount implements Lookup. Any 2xx response is decoded as an account.
func (c *GitHubClient) LookupAccount(ctx context.Context, username string) (Account, error) {
	if c == nil {
		return Account{}, fmt.Errorf("%w: nil GitHub client", ErrInvalidConfig)
	}

	endpoint := c.baseURL + "/users/" + url.PathEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Account{}, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", githubAPIVersion)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Account{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		return Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, username)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		return Account{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var acc Account
	if err := json.NewDecoder(resp.Body).Decode(&acc); err != nil {
		return Account{}, errors.Join(ErrUnexpectedResponse, err)
	}

	return acc, nil
}
