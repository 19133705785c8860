package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"threadquote/internal/domain/entities"
	"threadquote/internal/usecase/interfaces"
)

var ErrMissingSupplierAPIURL = errors.New("missing SUPPLIER_API_URL")
var ErrSupplierNotConfigured = errors.New("supplier catalog not configured")

const brandCacheTTL = time.Hour

// SupplierClient resolves product costs and brand listings from the supplier
// catalog API. Brand listings change rarely, so they are cached in-process
// with a fixed TTL; cost lookups always hit the API.

type SupplierClient struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	mockMode bool

	mu              sync.Mutex
	brands          []entities.Brand
	brandsFetchedAt time.Time
}

var _ interfaces.ICatalogProvider = (*SupplierClient)(nil)

func NewSupplierClient(baseURL string, apiKey string) (*SupplierClient, error) {
	if isCatalogMockEnabled() {
		log.Printf("[catalog][supplier] mock mode enabled")
		return &SupplierClient{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[catalog][supplier] missing SUPPLIER_API_URL")
		return nil, ErrMissingSupplierAPIURL
	}

	log.Printf("[catalog][supplier] client initialized base_url=%s", baseURL)
	return &SupplierClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type unitCostPayload struct {
	ProductID string  `json:"product_id"`
	Size      string  `json:"size"`
	UnitCost  float64 `json:"unit_cost"`
}

type brandPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *SupplierClient) GetUnitCost(ctx context.Context, productID string, size string) (float64, error) {
	if c != nil && c.mockMode {
		return 0, nil
	}
	if c == nil || c.http == nil {
		return 0, ErrSupplierNotConfigured
	}

	endpoint := fmt.Sprintf("%s/products/%s/cost?size=%s", c.baseURL, url.PathEscape(productID), url.QueryEscape(size))
	var payload unitCostPayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		log.Printf("[catalog][supplier] cost lookup failed product_id=%s size=%s err=%v", productID, size, err)
		return 0, err
	}
	return payload.UnitCost, nil
}

func (c *SupplierClient) ListBrands(ctx context.Context) ([]entities.Brand, error) {
	if c != nil && c.mockMode {
		return []entities.Brand{}, nil
	}
	if c == nil || c.http == nil {
		return nil, ErrSupplierNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.brands != nil && time.Since(c.brandsFetchedAt) < brandCacheTTL {
		return append([]entities.Brand(nil), c.brands...), nil
	}

	var payload []brandPayload
	if err := c.getJSON(ctx, c.baseURL+"/brands", &payload); err != nil {
		log.Printf("[catalog][supplier] brand listing failed err=%v", err)
		// Serve stale data over an error when we have any.
		if c.brands != nil {
			return append([]entities.Brand(nil), c.brands...), nil
		}
		return nil, err
	}

	brands := make([]entities.Brand, 0, len(payload))
	for _, b := range payload {
		brands = append(brands, entities.Brand{ID: b.ID, Name: b.Name})
	}
	c.brands = brands
	c.brandsFetchedAt = time.Now()

	return append([]entities.Brand(nil), brands...), nil
}

func (c *SupplierClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("supplier api returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func isCatalogMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CATALOG_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
