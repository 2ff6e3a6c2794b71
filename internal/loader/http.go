package loader

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/pkg/errs"
	"seller-catalog/internal/usecase/queries"
)

const maxErrorBody = 4 << 10

// HTTPFetcher reads pages from a running catalog API.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
	token   string
}

func NewHTTPFetcher(baseURL string, client *http.Client, token string) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		token:   token,
	}
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (f *HTTPFetcher) Fetch(ctx context.Context, query string, limit, offset int) (Page[*queries.ProductView], error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	resp, err := f.get(ctx, "/api/products?"+params.Encode(), "application/json")
	if err != nil {
		return Page[*queries.ProductView]{}, err
	}
	defer resp.Body.Close()

	var page queries.ProductPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return Page[*queries.ProductView]{}, errs.Wrap(err, "failed to decode product page")
	}
	return Page[*queries.ProductView]{Rows: page.Items, Total: page.Total}, nil
}

// Changes streams the server's change feed until ctx ends or the connection
// drops; the returned channel is closed either way.
func (f *HTTPFetcher) Changes(ctx context.Context) (<-chan changefeed.Change, error) {
	resp, err := f.get(ctx, "/api/changes", "text/event-stream")
	if err != nil {
		return nil, err
	}

	out := make(chan changefeed.Change)
	go func() {
		defer close(out)
		defer resp.Body.Close()

		err := readEvents(resp.Body, func(event, data string) bool {
			if event != "change" {
				return true
			}
			var change changefeed.Change
			if err := json.Unmarshal([]byte(data), &change); err != nil {
				slog.Warn("Ignoring malformed change event", slog.String("data", data), slog.Any("error", err))
				return true
			}
			select {
			case out <- change:
				return true
			case <-ctx.Done():
				return false
			}
		})
		if err != nil && ctx.Err() == nil {
			slog.Warn("Change stream ended", slog.Any("error", err))
		}
	}()
	return out, nil
}

func (f *HTTPFetcher) get(ctx context.Context, path, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", accept)
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "request failed")
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, statusError(resp)
	}
	return resp, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		return errs.Newf("catalog api: %s: %s", resp.Status, apiErr.Error.Message)
	}
	return errs.Newf("catalog api: %s", resp.Status)
}

// readEvents splits a text/event-stream body into (event, data) pairs and
// hands each to fn until fn returns false or the body ends.
func readEvents(r io.Reader, fn func(event, data string) bool) error {
	scanner := bufio.NewScanner(r)
	var (
		event string
		data  []string
	)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if len(data) > 0 {
				if event == "" {
					event = "message"
				}
				if !fn(event, strings.Join(data, "\n")) {
					return nil
				}
			}
			event, data = "", nil
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}
