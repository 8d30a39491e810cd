package fobini

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Endpoint is one operation of the FobiniYen API: its path, HTTP method,
// request parameters, and whether it must carry a bearer token. The set of
// endpoints is closed; values are created only by the constructors in this
// file, which are the single source of truth for auth requirements and
// parameter shapes. Ids interpolated into a path are escaped by the
// constructor.
type Endpoint struct {
	path         string
	method       string
	payload      any            // typed body payload for mutation endpoints
	query        map[string]any // query parameters for list endpoints
	requiresAuth bool
}

// Path returns the URL path relative to the API origin.
func (e Endpoint) Path() string { return e.path }

// Method returns the HTTP method.
func (e Endpoint) Method() string { return e.method }

// RequiresAuth reports whether the request must carry an Authorization
// header. Only register and login are exempt.
func (e Endpoint) RequiresAuth() bool { return e.requiresAuth }

// Parameters returns the request parameters as a flat map, or nil when the
// endpoint has none. Typed payloads are serialized through JSON; a
// serialization failure is reported as an error rather than a panic.
// An empty map is never returned: no parameters collapses to nil.
func (e Endpoint) Parameters() (map[string]any, error) {
	if e.payload != nil {
		return asParameters(e.payload)
	}
	if len(e.query) == 0 {
		return nil, nil
	}
	return e.query, nil
}

// asParameters round-trips a typed payload through JSON into a flat map.
func asParameters(payload any) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	var params map[string]any
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("payload is not an object: %w", err)
	}
	return params, nil
}

// PageOptions selects a page window for list endpoints. Zero values mean
// "not set" and are omitted from the request.
type PageOptions struct {
	Page  int
	Limit int
}

// PhobiaListOptions filters the phobia catalog. Zero values are omitted.
type PhobiaListOptions struct {
	Search     string
	CategoryID string
	Page       int
	Limit      int
}

func endpointRegister(req RegisterRequest) Endpoint {
	return Endpoint{path: "/api/auth/register", method: http.MethodPost, payload: req}
}

func endpointLogin(req LoginRequest) Endpoint {
	return Endpoint{path: "/api/auth/login", method: http.MethodPost, payload: req}
}

func endpointPhobiaList(opts PhobiaListOptions) Endpoint {
	params := map[string]any{}
	if opts.Search != "" {
		params["search"] = opts.Search
	}
	if opts.CategoryID != "" {
		params["categoryId"] = opts.CategoryID
	}
	if opts.Page > 0 {
		params["page"] = opts.Page
	}
	if opts.Limit > 0 {
		params["limit"] = opts.Limit
	}
	return Endpoint{path: "/api/phobia/list", method: http.MethodGet, query: params, requiresAuth: true}
}

func endpointPhobiaDetail(phobiaID string) Endpoint {
	return Endpoint{path: "/api/phobia/" + url.PathEscape(phobiaID), method: http.MethodGet, requiresAuth: true}
}

func endpointCreateUserPhobia(req CreateUserPhobiaRequest) Endpoint {
	return Endpoint{path: "/api/user-phobia/create", method: http.MethodPost, payload: req, requiresAuth: true}
}

func endpointUserPhobiaList(opts PageOptions) Endpoint {
	return Endpoint{path: "/api/user-phobia/list", method: http.MethodGet, query: pageParams(opts), requiresAuth: true}
}

func endpointSendMessage(req SendMessageRequest) Endpoint {
	return Endpoint{path: "/api/chat/send", method: http.MethodPost, payload: req, requiresAuth: true}
}

func endpointChatHistory(userPhobiaID string, opts PageOptions) Endpoint {
	return Endpoint{path: "/api/chat/history/" + url.PathEscape(userPhobiaID), method: http.MethodGet, query: pageParams(opts), requiresAuth: true}
}

func endpointCopingStrategyList(therapyID string) Endpoint {
	// The server expects therapyId inline on this path.
	return Endpoint{path: "/api/coping-strategy/list?therapyId=" + url.QueryEscape(therapyID), method: http.MethodGet, requiresAuth: true}
}

func endpointCopingStrategyDetail(strategyID string) Endpoint {
	return Endpoint{path: "/api/coping-strategy/" + url.PathEscape(strategyID), method: http.MethodGet, requiresAuth: true}
}

func endpointTherapyDetail(therapyID string) Endpoint {
	return Endpoint{path: "/api/therapy/" + url.PathEscape(therapyID), method: http.MethodGet, requiresAuth: true}
}

func endpointCompleteStrategy(req CompleteStrategyRequest) Endpoint {
	return Endpoint{path: "/api/coping-strategy/complete", method: http.MethodPost, payload: req, requiresAuth: true}
}

func endpointTherapyList(phobiaID string) Endpoint {
	params := map[string]any{}
	if phobiaID != "" {
		params["phobiaId"] = phobiaID
	}
	return Endpoint{path: "/api/therapy/list", method: http.MethodGet, query: params, requiresAuth: true}
}

func endpointCompletedStrategies(userPhobiaID string) Endpoint {
	return Endpoint{path: "/api/coping-strategy/completed/" + url.PathEscape(userPhobiaID), method: http.MethodGet, requiresAuth: true}
}

func endpointUserProfile() Endpoint {
	return Endpoint{path: "/api/user/profile", method: http.MethodGet, requiresAuth: true}
}

func endpointUpdateUserProfile(firstName, lastName string) Endpoint {
	return Endpoint{
		path:         "/api/user/profile",
		method:       http.MethodPost,
		payload:      map[string]any{"firstName": firstName, "lastName": lastName},
		requiresAuth: true,
	}
}

func pageParams(opts PageOptions) map[string]any {
	params := map[string]any{}
	if opts.Page > 0 {
		params["page"] = opts.Page
	}
	if opts.Limit > 0 {
		params["limit"] = opts.Limit
	}
	return params
}
