package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/items" {
			t.Errorf("got %s %s, want GET /items", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id":1,"name":"Test Item 1","createdAt":"2023-01-01T00:00:00.000Z"},
			{"id":2,"name":"Test Item 2","createdAt":"2023-01-02T00:00:00.000Z"}
		]`)
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	items, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].ID != 1 || items[0].Name != "Test Item 1" {
		t.Errorf("first item = %+v", items[0])
	}
	if items[1].Name != "Test Item 2" {
		t.Errorf("order not preserved: %+v", items[1])
	}
}

func TestListEmptyBodyYieldsEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `null`)
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	items, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("items = %#v, want empty non-nil slice", items)
	}
}

func TestCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/items" {
			t.Errorf("got %s %s, want POST /items", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		if body.Name != "New Test Item" {
			t.Errorf("name = %q", body.Name)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":3,"name":"New Test Item","createdAt":"2023-01-03T00:00:00Z"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	it, err := c.Create(context.Background(), "New Test Item")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if it.ID != 3 || it.Name != "New Test Item" {
		t.Errorf("item = %+v", it)
	}
}

func TestUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/items/7" {
			t.Errorf("got %s %s, want PUT /items/7", r.Method, r.URL.Path)
		}
		io.WriteString(w, `{"id":7,"name":"Renamed","createdAt":"2023-01-01T00:00:00Z"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	it, err := c.Update(context.Background(), 7, "Renamed")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if it.Name != "Renamed" {
		t.Errorf("item = %+v", it)
	}
}

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/items/7" {
			t.Errorf("got %s %s, want DELETE /items/7", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	if err := c.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestStatusErrorsCarryServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"no such item"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	err := c.Delete(context.Background(), 999)
	if err == nil {
		t.Fatal("expected an error for 404")
	}
	if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "no such item") {
		t.Errorf("err = %q, want status and server message", err)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, time.Second)
	if _, err := c.List(context.Background()); err == nil {
		t.Fatal("expected an error when the server is unreachable")
	}
}

func TestBearerTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer s3cret" {
			t.Errorf("authorization = %q", got)
		}
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	c.SetToken("s3cret")
	if _, err := c.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
}
