// Package client is a Go counterpart of the single-page client: a thin REST
// client for the shopping list API plus a local mirror cache for optimistic
// UI state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HeaderUserID carries the caller identity on every request.
const HeaderUserID = "X-User-Id"

// Item is the wire shape of a list item.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	Resolved    bool   `json:"resolved"`
}

// List is the wire shape of a shopping list.
type List struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	OwnerID   string     `json:"ownerId"`
	Members   []string   `json:"members"`
	Items     []Item     `json:"items"`
	Archived  bool       `json:"archived"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// APIError is a failure envelope returned by the server.
type APIError struct {
	Status   int               `json:"status"`
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	ParamMap map[string]string `json:"paramMap"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// API is the set of remote operations the mirror relies on. The HTTP client
// implements it against a running server; tests substitute a fake.
type API interface {
	ListLists(ctx context.Context, archived bool) ([]List, error)
	GetList(ctx context.Context, id string) (*List, error)
	CreateList(ctx context.Context, name string) (*List, error)
	UpdateList(ctx context.Context, id, name string) (*List, error)
	DeleteList(ctx context.Context, id string) error
	ArchiveList(ctx context.Context, id string, archived bool) (*List, error)
	AddMember(ctx context.Context, listID, userID string) error
	RemoveMember(ctx context.Context, listID, userID string) error
	Leave(ctx context.Context, listID string) error
	AddItem(ctx context.Context, listID, name string) (*Item, error)
	RemoveItem(ctx context.Context, listID, itemID string) error
	ResolveItem(ctx context.Context, listID, itemID string, resolved bool) (*Item, error)
}

// Client calls the shopping list REST API.
type Client struct {
	baseURL string
	userID  string
	http    *http.Client
}

var _ API = (*Client)(nil)

// New creates a Client for the given base URL acting as userID.
func New(baseURL, userID string) *Client {
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ListLists fetches the caller's lists filtered by the archived flag.
func (c *Client) ListLists(ctx context.Context, archived bool) ([]List, error) {
	var out struct {
		ItemList []List `json:"itemList"`
	}
	q := url.Values{"archived": {strconv.FormatBool(archived)}}
	if err := c.call(ctx, http.MethodGet, "/shoppingList/list", q, nil, &out); err != nil {
		return nil, err
	}
	return out.ItemList, nil
}

// GetList fetches one list by id.
func (c *Client) GetList(ctx context.Context, id string) (*List, error) {
	var out List
	q := url.Values{"id": {id}}
	if err := c.call(ctx, http.MethodGet, "/shoppingList/get", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateList creates a new list owned by the client identity.
func (c *Client) CreateList(ctx context.Context, name string) (*List, error) {
	var out List
	body := map[string]any{"name": name}
	if err := c.call(ctx, http.MethodPost, "/shoppingList/create", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateList renames a list.
func (c *Client) UpdateList(ctx context.Context, id, name string) (*List, error) {
	var out List
	body := map[string]any{"id": id, "name": name}
	if err := c.call(ctx, http.MethodPut, "/shoppingList/update", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteList deletes a list and all its items.
func (c *Client) DeleteList(ctx context.Context, id string) error {
	q := url.Values{"id": {id}}
	return c.call(ctx, http.MethodDelete, "/shoppingList/delete", q, nil, nil)
}

// ArchiveList flips the archived flag.
func (c *Client) ArchiveList(ctx context.Context, id string, archived bool) (*List, error) {
	var out List
	body := map[string]any{"id": id, "archived": archived}
	if err := c.call(ctx, http.MethodPatch, "/shoppingList/archive", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddMember grants a user access to a list.
func (c *Client) AddMember(ctx context.Context, listID, userID string) error {
	body := map[string]any{"shoppingListId": listID, "userId": userID}
	return c.call(ctx, http.MethodPost, "/shoppingList/addMember", nil, body, nil)
}

// RemoveMember revokes a user's membership.
func (c *Client) RemoveMember(ctx context.Context, listID, userID string) error {
	q := url.Values{"shoppingListId": {listID}, "userId": {userID}}
	return c.call(ctx, http.MethodDelete, "/shoppingList/removeMember", q, nil, nil)
}

// Leave removes the client identity from a list's members.
func (c *Client) Leave(ctx context.Context, listID string) error {
	body := map[string]any{"shoppingListId": listID}
	return c.call(ctx, http.MethodPost, "/shoppingList/leave", nil, body, nil)
}

// AddItem appends an item to a list.
func (c *Client) AddItem(ctx context.Context, listID, name string) (*Item, error) {
	var out Item
	body := map[string]any{"shoppingListId": listID, "name": name}
	if err := c.call(ctx, http.MethodPost, "/shoppingList/addItem", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveItem deletes an item from a list.
func (c *Client) RemoveItem(ctx context.Context, listID, itemID string) error {
	q := url.Values{"shoppingListId": {listID}, "itemId": {itemID}}
	return c.call(ctx, http.MethodDelete, "/shoppingList/removeItem", q, nil, nil)
}

// ResolveItem sets the resolved flag on an item.
func (c *Client) ResolveItem(ctx context.Context, listID, itemID string, resolved bool) (*Item, error) {
	var out Item
	body := map[string]any{"shoppingListId": listID, "itemId": itemID, "resolved": resolved}
	if err := c.call(ctx, http.MethodPatch, "/shoppingList/resolveItem", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// call performs one API request and unwraps the response envelope into out.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderUserID, c.userID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Status int `json:"status"`
			Error  struct {
				Code     string            `json:"code"`
				Message  string            `json:"message"`
				ParamMap map[string]string `json:"paramMap"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return &APIError{Status: resp.StatusCode, Code: "UNKNOWN", Message: resp.Status}
		}
		return &APIError{
			Status:   resp.StatusCode,
			Code:     envelope.Error.Code,
			Message:  envelope.Error.Message,
			ParamMap: envelope.Error.ParamMap,
		}
	}

	if out == nil {
		return nil
	}

	var envelope struct {
		Status int             `json:"status"`
		DtoOut json.RawMessage `json:"dtoOut"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if err := json.Unmarshal(envelope.DtoOut, out); err != nil {
		return fmt.Errorf("decode dtoOut: %w", err)
	}
	return nil
}
