package githubprovider

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dshills/warden/internal/wverrors"
)

const defaultAPIURL = "https://api.github.com"

// Provider is a content.Provider backed by the GitHub REST API.
type Provider struct {
	Owner, Repo string

	token   string
	apiURL  string
	httpCli *http.Client
}

// New creates a GitHub-backed Provider for owner/repo. Requires the
// GITHUB_TOKEN environment variable.
func New(owner, repo string) (*Provider, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable is not set")
	}
	apiURL := os.Getenv("GITHUB_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Provider{
		Owner:   owner,
		Repo:    repo,
		token:   token,
		apiURL:  strings.TrimRight(apiURL, "/"),
		httpCli: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type contentsResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// Fetch implements content.Provider, retrieving path at revision via
// GET /repos/{owner}/{repo}/contents/{path}?ref={revision}.
func (p *Provider) Fetch(ctx context.Context, revision, path string) (*string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s", p.apiURL, p.Owner, p.Repo, path, revision)

	var body []byte
	var status int
	err := retryWithBackoff(ctx, 3, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+p.token)
		req.Header.Set("Accept", "application/vnd.github.v3+json")

		resp, err := p.httpCli.Do(req)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", path, err)
		}
		defer resp.Body.Close()

		status = resp.StatusCode
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}

		if status == http.StatusTooManyRequests {
			return &wverrors.RateLimitError{}
		}
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return &wverrors.AuthError{Message: string(body)}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("github contents API error (status %d): %s", status, string(body))
	}

	var cr contentsResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("parsing contents response: %w", err)
	}
	if cr.Encoding != "base64" {
		return nil, fmt.Errorf("unexpected content encoding %q", cr.Encoding)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(cr.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	s := string(decoded)
	return &s, nil
}

func retryWithBackoff(ctx context.Context, maxRetries int, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if _, ok := lastErr.(*wverrors.AuthError); ok {
			return lastErr
		}
		if _, ok := lastErr.(*wverrors.RateLimitError); !ok {
			return lastErr
		}
		if attempt < maxRetries {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}
