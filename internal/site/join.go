package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
)

// JoinRequest is a join-us form submission relayed to the API.
type JoinRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	Message string `json:"message,omitempty"`
}

// Validate normalizes the request and reports field errors keyed by field
// name. An empty map means the submission is acceptable.
func (j *JoinRequest) Validate() map[string]string {
	errs := map[string]string{}
	j.Name = strings.TrimSpace(j.Name)
	j.Email = strings.TrimSpace(j.Email)
	j.Phone = strings.TrimSpace(j.Phone)
	j.City = strings.TrimSpace(j.City)
	j.Message = strings.TrimSpace(j.Message)
	if j.Name == "" {
		errs["name"] = "required"
	}
	if j.Email == "" {
		errs["email"] = "required"
	} else if _, err := mail.ParseAddress(j.Email); err != nil {
		errs["email"] = "invalid"
	}
	if len(j.Message) > 2000 {
		errs["message"] = "too_long"
	}
	return errs
}

// SubmitJoinRequest relays a validated submission to the API. Without a
// configured base URL the submission is accepted locally so the form keeps
// working in degraded mode.
func (c *Client) SubmitJoinRequest(ctx context.Context, j JoinRequest) error {
	if c == nil || c.baseURL == "" {
		return nil
	}
	body, err := json.Marshal(j)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/join-requests", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("site: join request status %d", resp.StatusCode)
	}
	return nil
}
