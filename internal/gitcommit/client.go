// Package gitcommit writes files into a GitHub repository through the
// contents API: read the current blob sha (absence is normal for new
// files), then create-or-update with the sha attached only when one
// exists. Stale shas surface whatever conflict GitHub reports; there
// is no retry or merge logic here.
package gitcommit

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type Client struct {
	Token string
	Owner string
	Repo  string

	// BaseURL is overridable for tests.
	BaseURL string

	httpClient *http.Client
}

func NewClient() *Client {
	owner := os.Getenv("GITHUB_REPO_OWNER")
	if owner == "" {
		owner = "BlackVaultEnterprises"
	}
	repo := os.Getenv("GITHUB_REPO_NAME")
	if repo == "" {
		repo = "table1837-bar-app"
	}

	return &Client{
		Token:   os.Getenv("GITHUB_TOKEN"),
		Owner:   owner,
		Repo:    repo,
		BaseURL: "https://api.github.com",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Result is the commit that landed.
type Result struct {
	CommitSHA string
	CommitURL string
	FileURL   string
}

// CommitFile creates or updates one file on the given branch.
func (c *Client) CommitFile(ctx context.Context, path, content, message, branch string) (*Result, error) {
	sha, err := c.fileSHA(ctx, path, branch)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"message": message,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
		"branch":  branch,
	}
	if sha != "" {
		payload["sha"] = sha
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.BaseURL, c.Owner, c.Repo, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// 201 on create, 200 on update
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("github api error: %s", string(raw))
	}

	var result struct {
		Commit struct {
			SHA     string `json:"sha"`
			HTMLURL string `json:"html_url"`
		} `json:"commit"`
		Content struct {
			HTMLURL string `json:"html_url"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	return &Result{
		CommitSHA: result.Commit.SHA,
		CommitURL: result.Commit.HTMLURL,
		FileURL:   result.Content.HTMLURL,
	}, nil
}

// fileSHA returns the blob sha currently at path, or "" when the file
// does not exist yet. Only a clean 404 maps to ""; every other failure
// is surfaced.
func (c *Client) fileSHA(ctx context.Context, path, branch string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s", c.BaseURL, c.Owner, c.Repo, path, branch)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github api error: %s", string(raw))
	}

	var file struct {
		SHA string `json:"sha"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return "", err
	}
	return file.SHA, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
}
