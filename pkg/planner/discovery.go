package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"
)

// RepoFile is one entry in a model repository's file listing.
type RepoFile struct {
	Path      string
	SizeBytes int64
}

// ModelDiscovery lists the artifacts available for a model reference.
// Implementations hit remote registries; tests substitute fakes.
type ModelDiscovery interface {
	// ListRepoFiles returns the file tree of a Hugging Face repository.
	ListRepoFiles(ctx context.Context, repo string) ([]RepoFile, error)
	// ListOllamaTags returns the tags published for an Ollama model.
	ListOllamaTags(ctx context.Context, model string) ([]string, error)
}

const (
	defaultHuggingFaceBaseURL = "https://huggingface.co"
	defaultOllamaRegistryURL  = "https://registry.ollama.ai"
)

// HTTPDiscovery implements ModelDiscovery against the public Hugging Face
// and Ollama registries.
type HTTPDiscovery struct {
	client    *http.Client
	hfBaseURL string
	ollamaURL string
	hfToken   string
}

// HTTPDiscoveryOption configures an HTTPDiscovery.
type HTTPDiscoveryOption func(*HTTPDiscovery)

// WithHuggingFaceBaseURL overrides the Hugging Face endpoint (for tests
// and mirrors).
func WithHuggingFaceBaseURL(u string) HTTPDiscoveryOption {
	return func(d *HTTPDiscovery) { d.hfBaseURL = u }
}

// WithOllamaRegistryURL overrides the Ollama registry endpoint.
func WithOllamaRegistryURL(u string) HTTPDiscoveryOption {
	return func(d *HTTPDiscovery) { d.ollamaURL = u }
}

// WithHuggingFaceToken sets a bearer token for gated repositories.
func WithHuggingFaceToken(token string) HTTPDiscoveryOption {
	return func(d *HTTPDiscovery) { d.hfToken = token }
}

// NewHTTPDiscovery creates a discovery client with sane timeouts.
func NewHTTPDiscovery(opts ...HTTPDiscoveryOption) *HTTPDiscovery {
	d := &HTTPDiscovery{
		client:    &http.Client{Timeout: 30 * time.Second},
		hfBaseURL: defaultHuggingFaceBaseURL,
		ollamaURL: defaultOllamaRegistryURL,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type hfTreeEntry struct {
	Type string `json:"type"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// ListRepoFiles lists a Hugging Face repository tree recursively.
func (d *HTTPDiscovery) ListRepoFiles(ctx context.Context, repo string) ([]RepoFile, error) {
	u := fmt.Sprintf("%s/api/models/%s/tree/main?recursive=true", d.hfBaseURL, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", repo, err)
	}
	if d.hfToken != "" {
		req.Header.Set("Authorization", "Bearer "+d.hfToken)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list repo %s: %w", repo, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("repo %s not found", repo)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("repo %s listing returned %d: %s", repo, resp.StatusCode, string(body))
	}

	var entries []hfTreeEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode repo %s listing: %w", repo, err)
	}

	files := make([]RepoFile, 0, len(entries))
	for _, e := range entries {
		if e.Type != "file" {
			continue
		}
		files = append(files, RepoFile{Path: e.Path, SizeBytes: e.Size})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

type ollamaTagsResponse struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// ListOllamaTags lists the published tags for an Ollama library model.
func (d *HTTPDiscovery) ListOllamaTags(ctx context.Context, model string) ([]string, error) {
	u := fmt.Sprintf("%s/v2/library/%s/tags/list", d.ollamaURL, url.PathEscape(model))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", model, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags for %s: %w", model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("ollama model %s not found", model)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tag listing for %s returned %d", model, resp.StatusCode)
	}

	var out ollamaTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode tags for %s: %w", model, err)
	}
	sort.Strings(out.Tags)
	return out.Tags, nil
}
