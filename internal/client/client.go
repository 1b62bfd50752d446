package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/pageza/recipe-ai/config"
	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/types"
)

const maxResponseBytes = 10 << 20

// Client talks to the kitchen backend over its REST contract.
// It never retries, batches or caches.
type Client struct {
	baseURL       string
	defaultClient *http.Client
	longClient    *http.Client // recipe generation and invoice extraction
	metrics       *Metrics
}

// Option customises a Client
type Option func(*Client)

// WithTimeouts sets the timeout for plain calls and for long-running ones
func WithTimeouts(standard, long time.Duration) Option {
	return func(c *Client) {
		c.defaultClient.Timeout = standard
		c.longClient.Timeout = long
	}
}

// WithTransport routes every request through rt
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.defaultClient.Transport = rt
		c.longClient.Transport = rt
	}
}

// New creates a client for baseURL, e.g. http://localhost:8000/api
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		defaultClient: &http.Client{Timeout: config.DefaultAPITimeout},
		longClient:    &http.Client{Timeout: config.DefaultGenerateTimeout},
		metrics:       &Metrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates a client from the loaded configuration
func NewFromConfig(cfg config.ClientConfig) *Client {
	return New(cfg.APIBaseURL, WithTimeouts(cfg.APITimeout, cfg.GenerateTimeout))
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string { return c.baseURL }

// Metrics returns a snapshot of the call counters
func (c *Client) Metrics() MetricsSnapshot { return c.metrics.Snapshot() }

// ListIngredients fetches the full inventory
func (c *Client) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	var out []model.Ingredient
	if err := c.doJSON(ctx, c.defaultClient, "get_ingredients", http.MethodGet, "/get-ingredients", nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// ListExpiringIngredients fetches produce that has been stored too long
func (c *Client) ListExpiringIngredients(ctx context.Context) ([]model.Ingredient, error) {
	var out []model.Ingredient
	if err := c.doJSON(ctx, c.defaultClient, "get_expiring_ingredients", http.MethodGet, "/get-expiring-ingredients", nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// AddIngredient creates or overwrites an ingredient by name. When the server
// only acknowledges the write, the returned ingredient echoes the request.
func (c *Client) AddIngredient(ctx context.Context, req types.AddIngredientRequest) (*model.Ingredient, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, c.defaultClient, "add_ingredient", http.MethodPost, "/add-ingredient", req, &raw); err != nil {
		return nil, err
	}

	echo := &model.Ingredient{Name: req.Name, Quantity: req.Quantity, IsVegetableOrFruit: req.IsVegetableOrFruit}
	if err := decodeEntityOrAck(raw, echo); err != nil {
		return nil, fmt.Errorf("add_ingredient: %w", err)
	}
	return echo, nil
}

// DeleteIngredient removes an ingredient. The bool is the server's success flag.
func (c *Client) DeleteIngredient(ctx context.Context, id string) (bool, error) {
	var out types.SuccessResponse
	path := "/delete-ingredient/" + url.PathEscape(id)
	if err := c.doJSON(ctx, c.defaultClient, "delete_ingredient", http.MethodDelete, path, nil, &out); err != nil {
		return false, err
	}
	return out.Success, nil
}

// ListRecipes fetches every stored recipe
func (c *Client) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	var out []model.Recipe
	if err := c.doJSON(ctx, c.defaultClient, "get_recipes", http.MethodGet, "/get-recipes", nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// GenerateRecipe asks the backend for a new recipe of the given type
func (c *Client) GenerateRecipe(ctx context.Context, recipeType model.RecipeType) (*model.Recipe, error) {
	var out model.Recipe
	body := types.GenerateRecipeRequest{Type: recipeType}
	if err := c.doJSON(ctx, c.longClient, "get_recipe", http.MethodPost, "/get-recipe", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveRecipe stores a full recipe. Resubmitting an existing id updates it.
func (c *Client) SaveRecipe(ctx context.Context, recipe model.Recipe) (*model.Recipe, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, c.defaultClient, "save_recipe", http.MethodPost, "/save-recipe", recipe, &raw); err != nil {
		return nil, err
	}

	saved := recipe
	if err := decodeEntityOrAck(raw, &saved); err != nil {
		return nil, fmt.Errorf("save_recipe: %w", err)
	}
	return &saved, nil
}

// DeleteRecipe removes a recipe. The bool is the server's success flag.
func (c *Client) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	var out types.SuccessResponse
	path := "/delete-recipe/" + url.PathEscape(id)
	if err := c.doJSON(ctx, c.defaultClient, "delete_recipe", http.MethodDelete, path, nil, &out); err != nil {
		return false, err
	}
	return out.Success, nil
}

// RecipeSuggestions fetches recipe ideas. A response that is not an array
// yields an empty list.
func (c *Client) RecipeSuggestions(ctx context.Context) ([]model.Suggestion, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, c.defaultClient, "get_recipe_suggestions", http.MethodGet, "/get-recipe-suggestions", nil, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []model.Suggestion{}, nil
	}
	var out []model.Suggestion
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("get_recipe_suggestions: decode response: %w", err)
	}
	return nonNil(out), nil
}

// UploadInvoice sends a PDF as multipart field "file" and returns the
// extracted line items
func (c *Client) UploadInvoice(ctx context.Context, filename string, pdf io.Reader) ([]model.ExtractedInvoiceItem, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filename)))
	header.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("upload_invoice: create form part: %w", err)
	}
	if _, err := io.Copy(part, pdf); err != nil {
		return nil, fmt.Errorf("upload_invoice: read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("upload_invoice: close form: %w", err)
	}

	var out types.UploadInvoiceResponse
	if err := c.do(ctx, c.longClient, "upload_invoice", http.MethodPost, "/upload-invoice", mw.FormDataContentType(), &body, &out); err != nil {
		return nil, err
	}
	return nonNil(out.Items), nil
}

func (c *Client) doJSON(ctx context.Context, hc *http.Client, op, method, path string, in, out interface{}) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, hc, op, method, path, contentType, body, out)
}

func (c *Client) do(ctx context.Context, hc *http.Client, op, method, path, contentType string, body io.Reader, out interface{}) (err error) {
	requestID := RequestID(ctx)
	logger := NewLogger(requestID)
	start := time.Now()
	defer func() {
		c.metrics.record(time.Since(start), err)
		if err != nil {
			logger.LogError(op, err)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody types.ErrorResponse
		_ = json.Unmarshal(data, &errBody)
		return &APIError{Op: op, StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	logger.LogInfof(op, "%s %s status=%d latency=%s", method, path, resp.StatusCode, time.Since(start))

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// decodeEntityOrAck handles writes that return either the stored entity or
// a bare {"success": ...} acknowledgement. On acknowledgement dst keeps its
// current contents.
func decodeEntityOrAck(raw json.RawMessage, dst interface{}) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil
	}
	if _, isEntity := fields["name"]; isEntity {
		return json.Unmarshal(raw, dst)
	}
	if ack, ok := fields["success"]; ok {
		var success bool
		if err := json.Unmarshal(ack, &success); err == nil && !success {
			return ErrNotAcknowledged
		}
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
