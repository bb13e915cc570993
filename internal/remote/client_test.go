package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestListAppendsTrailingSlashAndQuery(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]record{{ID: 1, Name: "Flour"}})
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", 5*time.Second)
	var out []record
	query := url.Values{"username": []string{"okello"}}
	require.NoError(t, client.List(context.Background(), "inventory", query, &out))

	assert.Equal(t, "/api/inventory/", gotPath)
	assert.Equal(t, "username=okello", gotQuery)
	require.Len(t, out, 1)
	assert.Equal(t, "Flour", out[0].Name)
}

func TestGetMapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	var out record
	err := client.Get(context.Background(), "inventory", 42, &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePostsJSONBody(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody record
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		gotBody.ID = 7
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(gotBody)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	var out record
	require.NoError(t, client.Create(context.Background(), "inventory", record{Name: "Sugar"}, &out))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, int64(7), out.ID)
}

func TestUnexpectedStatusCarriesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTeapot)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	err := client.Delete(context.Background(), "inventory", 1)
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestTransportFailureMapsToUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, time.Second)
	var out []record
	err := client.List(context.Background(), "inventory", nil, &out)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetPathHitsArbitraryEndpoint(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]record{})
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api", 5*time.Second)
	var out []record
	require.NoError(t, client.GetPath(context.Background(), "historical-data/", &out))
	assert.Equal(t, "/api/historical-data/", gotPath)
}
