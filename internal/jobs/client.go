package jobs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/MohanKrishnaTeja/jobAnalyzer/pkg/types"
)

const httpTimeout = 15 * time.Second

// Searcher issues one search against the external job boards.
type Searcher interface {
	Search(ctx context.Context, query string) ([]types.JobListing, error)
}

// Client talks to the job-board search API. One Search call covers the
// whole configured source set; the API fans out per site server-side.
type Client struct {
	baseURL  string
	apiKey   string
	location string
	sites    []string
	limit    int
	httpc    *http.Client
}

func NewClient(baseURL, apiKey, location string, sites []string, limit int) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		location: location,
		sites:    sites,
		limit:    limit,
		httpc:    &http.Client{Timeout: httpTimeout},
	}
}

func (c *Client) Search(ctx context.Context, query string) ([]types.JobListing, error) {
	params := url.Values{}
	params.Set("search_term", query)
	params.Set("location", c.location)
	params.Set("site_name", strings.Join(c.sites, ","))
	params.Set("results_wanted", strconv.Itoa(c.limit))
	params.Set("description_format", "markdown")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read job search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job search returned %d: %s", resp.StatusCode, body)
	}

	return parseListings(body), nil
}

// parseListings walks the response's jobs array without binding to a rigid
// schema; boards differ in which fields they populate.
func parseListings(body []byte) []types.JobListing {
	var listings []types.JobListing
	gjson.GetBytes(body, "jobs").ForEach(func(_, job gjson.Result) bool {
		listings = append(listings, types.JobListing{
			Title:          field(job, "title"),
			Company:        field(job, "company"),
			Location:       field(job, "location"),
			Description:    field(job, "description"),
			JobURL:         field(job, "job_url"),
			SourcePlatform: field(job, "site"),
			PostedDate:     field(job, "posted_date"),
			Salary:         field(job, "salary"),
		})
		return true
	})
	return listings
}

func field(job gjson.Result, key string) string {
	if v := job.Get(key); v.Exists() && v.String() != "" {
		return v.String()
	}
	return types.NotAvailable
}
