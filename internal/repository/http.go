package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"locflow/internal/content"
)

const pageSize = 100

// HTTPClient talks to the content-management API. All calls run through the
// shared limiter so a run never exceeds the repository's call budget.
type HTTPClient struct {
	baseURL     string
	apiToken    string
	environment string
	httpClient  *http.Client
	limiter     *Limiter
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLimiter overrides the default call pacing.
func WithLimiter(limiter *Limiter) Option {
	return func(c *HTTPClient) {
		if limiter != nil {
			c.limiter = limiter
		}
	}
}

// New creates a repository client.
func New(baseURL, apiToken, environment string, opts ...Option) (*HTTPClient, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("repository base url required")
	}
	apiToken = strings.TrimSpace(apiToken)
	if apiToken == "" {
		return nil, errors.New("repository api token required")
	}
	client := &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiToken:    apiToken,
		environment: strings.TrimSpace(environment),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		limiter:     &Limiter{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type recordPage struct {
	Data []content.Record `json:"data"`
	Meta struct {
		TotalCount int `json:"totalCount"`
	} `json:"meta"`
}

// ListRecords fetches every content record, paging through the collection.
func (c *HTTPClient) ListRecords(ctx context.Context, onlyPublished bool) ([]content.Record, error) {
	version := "latest"
	if onlyPublished {
		version = "published"
	}
	return c.listPaged(ctx, "/items", url.Values{"version": []string{version}})
}

// ListAssets fetches every asset record.
func (c *HTTPClient) ListAssets(ctx context.Context) ([]content.Record, error) {
	return c.listPaged(ctx, "/uploads", url.Values{})
}

func (c *HTTPClient) listPaged(ctx context.Context, path string, params url.Values) ([]content.Record, error) {
	var all []content.Record
	for offset := 0; ; offset += pageSize {
		params.Set("page[limit]", strconv.Itoa(pageSize))
		params.Set("page[offset]", strconv.Itoa(offset))

		var page recordPage
		if err := c.get(ctx, path, params, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Data...)
		if len(page.Data) < pageSize {
			return all, nil
		}
	}
}

type modelWire struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	APIKey             string   `json:"apiKey"`
	Hint               string   `json:"hint"`
	AllLocalesRequired bool     `json:"allLocalesRequired"`
	ModularBlock       bool     `json:"modularBlock"`
	FieldOrder         []string `json:"fieldOrder"`
}

type fieldWire struct {
	ID         string `json:"id"`
	APIKey     string `json:"apiKey"`
	FieldType  string `json:"fieldType"`
	Localized  bool   `json:"localized"`
	Hint       string `json:"hint"`
	Validators struct {
		Enum struct {
			Values []string `json:"values"`
		} `json:"enum"`
		TitleLength struct {
			Max int `json:"max"`
		} `json:"titleLength"`
		DescriptionLength struct {
			Max int `json:"max"`
		} `json:"descriptionLength"`
	} `json:"validators"`
}

// ListModels fetches every model and, one call per model, its field
// definitions.
func (c *HTTPClient) ListModels(ctx context.Context) ([]content.Model, error) {
	var payload struct {
		Data []modelWire `json:"data"`
	}
	if err := c.get(ctx, "/item-types", url.Values{}, &payload); err != nil {
		return nil, err
	}

	models := make([]content.Model, 0, len(payload.Data))
	for _, wire := range payload.Data {
		var fieldsPayload struct {
			Data []fieldWire `json:"data"`
		}
		if err := c.get(ctx, "/item-types/"+wire.ID+"/fields", url.Values{}, &fieldsPayload); err != nil {
			return nil, fmt.Errorf("fetch fields for model %s: %w", wire.ID, err)
		}

		fields := make([]content.Field, 0, len(fieldsPayload.Data))
		for _, fw := range fieldsPayload.Data {
			fields = append(fields, content.Field{
				ID:        fw.ID,
				APIKey:    fw.APIKey,
				FieldType: content.FieldType(fw.FieldType),
				Localized: fw.Localized,
				Hint:      fw.Hint,
				Validators: content.Validators{
					Enum:              fw.Validators.Enum.Values,
					TitleLength:       fw.Validators.TitleLength.Max,
					DescriptionLength: fw.Validators.DescriptionLength.Max,
				},
			})
		}

		fieldOrder := wire.FieldOrder
		if len(fieldOrder) == 0 {
			fieldOrder = make([]string, 0, len(fields))
			for _, f := range fields {
				fieldOrder = append(fieldOrder, f.ID)
			}
		}

		models = append(models, content.Model{
			ID:                 wire.ID,
			Name:               wire.Name,
			APIKey:             wire.APIKey,
			Hint:               wire.Hint,
			AllLocalesRequired: wire.AllLocalesRequired,
			ModularBlock:       wire.ModularBlock,
			Fields:             fields,
			FieldsReference:    fieldOrder,
		})
	}
	return models, nil
}

// Locales fetches the locale codes configured on the repository.
func (c *HTTPClient) Locales(ctx context.Context) ([]string, error) {
	var payload struct {
		Data struct {
			Locales []string `json:"locales"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/site", url.Values{}, &payload); err != nil {
		return nil, err
	}
	return payload.Data.Locales, nil
}

// CreateRecord creates a record and returns its assigned id.
func (c *HTTPClient) CreateRecord(ctx context.Context, payload CreatePayload) (string, error) {
	body := map[string]any{
		"data": map[string]any{
			"itemType": payload.ItemType,
			"fields":   payload.Data,
		},
	}
	var response struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := c.send(ctx, http.MethodPost, "/items", body, &response); err != nil {
		return "", err
	}
	if response.Data.ID == "" {
		return "", errors.New("create record: response carried no id")
	}
	return response.Data.ID, nil
}

// UpdateRecord patches field data onto an existing record.
func (c *HTTPClient) UpdateRecord(ctx context.Context, id string, data map[string]any) error {
	return c.send(ctx, http.MethodPut, "/items/"+id, map[string]any{"data": data}, nil)
}

// UpdateAsset patches metadata onto an existing asset.
func (c *HTTPClient) UpdateAsset(ctx context.Context, id string, data map[string]any) error {
	return c.send(ctx, http.MethodPut, "/uploads/"+id, map[string]any{"data": data}, nil)
}

// BulkPublish publishes the given record ids.
func (c *HTTPClient) BulkPublish(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return c.send(ctx, http.MethodPost, "/items/bulk/publish", map[string]any{"ids": ids}, nil)
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse repository url: %w", err)
	}
	if len(params) > 0 {
		endpoint.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *HTTPClient) send(ctx context.Context, method, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")
	if c.environment != "" {
		req.Header.Set("X-Environment", c.environment)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("repository %s %s returned %d (latency=%v)", req.Method, req.URL.Path, resp.StatusCode, latency)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode repository response: %w", err)
	}
	return nil
}
