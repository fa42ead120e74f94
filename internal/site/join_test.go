package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJoinRequestValidate(t *testing.T) {
	j := JoinRequest{Name: "  Amina  ", Email: "amina@example.com"}
	if errs := j.Validate(); len(errs) != 0 {
		t.Fatalf("valid request rejected: %v", errs)
	}
	if j.Name != "Amina" {
		t.Fatalf("name must be trimmed, got %q", j.Name)
	}

	j = JoinRequest{Email: "not-an-email"}
	errs := j.Validate()
	if errs["name"] != "required" || errs["email"] != "invalid" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestSubmitJoinRequestRelay(t *testing.T) {
	var got JoinRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/join-requests" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.SubmitJoinRequest(context.Background(), JoinRequest{Name: "A", Email: "a@b.ma"})
	if err != nil {
		t.Fatalf("SubmitJoinRequest: %v", err)
	}
	if got.Name != "A" {
		t.Fatalf("payload not relayed: %+v", got)
	}
}

func TestSubmitJoinRequestWithoutBaseURL(t *testing.T) {
	c := NewClient("")
	if err := c.SubmitJoinRequest(context.Background(), JoinRequest{}); err != nil {
		t.Fatalf("degraded mode must accept, got %v", err)
	}
}

func TestSubmitJoinRequestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := NewClient(srv.URL)
	if err := c.SubmitJoinRequest(context.Background(), JoinRequest{}); err == nil {
		t.Fatal("expected error on 500")
	}
}
