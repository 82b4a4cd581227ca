package shepherdsdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Session is an authenticated client. Access tokens are not refreshed;
// sign in again once the token expires.
type Session struct {
	client      *SDKClient
	accessToken string
}

func (s *Session) AccessToken() string { return s.accessToken }

func (s *Session) doAuthRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// call sends in as JSON (when non-nil) and decodes a response with status
// expected into out. A nil out expects 204 No Content.
func (s *Session) call(ctx context.Context, method, path string, in, out any, expected int) error {
	var (
		body    io.Reader
		headers map[string]string
	)
	if in != nil {
		b, err := encodeBody(in)
		if err != nil {
			return err
		}
		body, headers = b, jsonHeaders
	}

	resp, err := s.doAuthRequest(ctx, method, path, body, headers)
	if err != nil {
		return err
	}
	if out == nil {
		return checkStatusNoContent(resp)
	}
	return decodeJSON(resp, out, expected)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func setTime(q url.Values, key string, t *time.Time) {
	if t != nil {
		q.Set(key, t.UTC().Format(time.RFC3339))
	}
}

// ============================================================================
// Current user
// ============================================================================

func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	var me MeResponse
	if err := s.call(ctx, http.MethodGet, "/v1/auth/me", nil, &me, http.StatusOK); err != nil {
		return nil, err
	}
	return &me, nil
}

// ChangePassword invalidates this session's token on success.
func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	req := ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	return s.call(ctx, http.MethodPost, "/v1/auth/change-password", req, nil, http.StatusNoContent)
}

func (s *Session) AssignRoles(ctx context.Context, userID string, req AssignRolesRequest) (*UserResponse, error) {
	var user UserResponse
	path := "/v1/users/" + url.PathEscape(userID) + "/roles"
	if err := s.call(ctx, http.MethodPut, path, req, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// ============================================================================
// Roles
// ============================================================================

func (s *Session) InitializeRoles(ctx context.Context) (*InitializeRolesResponse, error) {
	var res InitializeRolesResponse
	if err := s.call(ctx, http.MethodPost, "/v1/roles/initialize", nil, &res, http.StatusOK); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Session) ListRoles(ctx context.Context) (*ListRolesResponse, error) {
	var res ListRolesResponse
	if err := s.call(ctx, http.MethodGet, "/v1/roles", nil, &res, http.StatusOK); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Session) GetRole(ctx context.Context, id string) (*RoleResponse, error) {
	var role RoleResponse
	if err := s.call(ctx, http.MethodGet, "/v1/roles/"+url.PathEscape(id), nil, &role, http.StatusOK); err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Session) CreateRole(ctx context.Context, req RoleRequest) (*RoleResponse, error) {
	var role RoleResponse
	if err := s.call(ctx, http.MethodPost, "/v1/roles", req, &role, http.StatusCreated); err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateRole sends patch as the body; any JSON object of RoleRequest
// fields is accepted.
func (s *Session) UpdateRole(ctx context.Context, id string, patch any) (*RoleResponse, error) {
	var role RoleResponse
	if err := s.call(ctx, http.MethodPut, "/v1/roles/"+url.PathEscape(id), patch, &role, http.StatusOK); err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Session) DeactivateRole(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/v1/roles/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}
