package omdb

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var baseURL = "https://www.omdbapi.com/"

// Client handles HTTP requests to the OMDb API. The API key is fixed at
// construction; nothing reads the environment mid-request.
type Client struct {
	httpClient *http.Client
	apiKey     string
}

// NewClient creates a new API client with the given OMDb API key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey: apiKey,
	}
}

// FetchMovie looks up a movie by title.
func (c *Client) FetchMovie(title string) (*Movie, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("OMDb API key not set")
	}

	reqURL := fmt.Sprintf("%s?apikey=%s&t=%s", baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(title))

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var movie Movie
	if err := json.NewDecoder(resp.Body).Decode(&movie); err != nil {
		return nil, fmt.Errorf("failed to decode JSON response: %w", err)
	}

	if movie.Response == "False" {
		if movie.Error != "" {
			return nil, fmt.Errorf("movie not found: %s (%s)", title, movie.Error)
		}
		return nil, fmt.Errorf("movie not found: %s", title)
	}

	return &movie, nil
}

// DownloadPoster fetches the raw poster image bytes for the given URL.
func (c *Client) DownloadPoster(posterURL string) ([]byte, error) {
	resp, err := c.httpClient.Get(posterURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download poster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download poster: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read poster body: %w", err)
	}

	return data, nil
}
