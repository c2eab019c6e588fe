package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hqvuong/microshop/shared/logs"
)

type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductClient talks to the product service over its batch lookup endpoint.
type ProductClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logs.Logger
}

func NewProductClient(baseURL string, logger logs.Logger) *ProductClient {
	return &ProductClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// FetchProducts returns the products found for the given ids, keyed by id.
// Ids the product service does not know are absent from the map.
func (c *ProductClient) FetchProducts(ctx context.Context, ids []string) (map[string]Product, error) {
	if len(ids) == 0 {
		return map[string]Product{}, nil
	}

	reqURL := fmt.Sprintf("%s/products?ids=%s", c.baseURL, url.QueryEscape(strings.Join(ids, ",")))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build product request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach product service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product service returned status %d", resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode product response: %w", err)
	}

	result := make(map[string]Product, len(products))
	for _, p := range products {
		result[p.ID] = p
	}
	return result, nil
}
