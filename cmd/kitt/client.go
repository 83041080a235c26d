package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/Kirizan/kitt-sub000/pkg/version"
)

// apiClient is a thin wrapper over the server's admin API.
type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func newAPIClient() *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(serverURL, "/"),
		token:   adminToken,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *apiClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("User-Agent", version.Full())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg := readError(resp.Body)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return userErrorf("%s %s: %s", method, path, msg)
		}
		return fmt.Errorf("%s %s: server returned %d: %s", method, path, resp.StatusCode, msg)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func readError(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(data))
}

func (c *apiClient) listAgents(ctx context.Context) (*models.AgentListResponse, error) {
	var resp models.AgentListResponse
	if err := c.do(ctx, http.MethodGet, "/agents", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *apiClient) getAgentID(ctx context.Context, name string) (string, error) {
	var agent struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodGet, "/agents/"+name, nil, &agent); err != nil {
		return "", err
	}
	return agent.ID, nil
}

func (c *apiClient) createCampaign(ctx context.Context, req models.CreateCampaignRequest) (*models.CampaignResponse, error) {
	var resp models.CampaignResponse
	if err := c.do(ctx, http.MethodPost, "/campaigns", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *apiClient) startCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/campaigns/"+id+"/start", nil, nil)
}

func (c *apiClient) cancelCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/campaigns/"+id+"/cancel", nil, nil)
}

func (c *apiClient) getCampaign(ctx context.Context, id string) (*models.CampaignSnapshot, error) {
	var snap models.CampaignSnapshot
	if err := c.do(ctx, http.MethodGet, "/campaigns/"+id, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *apiClient) listCampaigns(ctx context.Context) (*models.CampaignListResponse, error) {
	var resp models.CampaignListResponse
	if err := c.do(ctx, http.MethodGet, "/campaigns", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout+5*time.Second)
}
