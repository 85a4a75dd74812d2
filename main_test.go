package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `[
	{"id":1,"title":"Fjallraven Backpack","price":109.95,"description":"Your perfect pack","category":"men's clothing","image":"https://fakestoreapi.com/img/1.jpg"},
	{"id":2,"title":"Slim Fit T-Shirt","price":22.3,"description":"Slim-fitting style","category":"men's clothing","image":"https://fakestoreapi.com/img/2.jpg"},
	{"id":5,"title":"Naga Bracelet","price":695,"description":"From our Legends Collection","category":"jewelery","image":"https://fakestoreapi.com/img/5.jpg"}
]`

func quietConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nenabled = false\n"), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		urlFlag, configFlag, verbose = "", "", false
		listFilter, listCategory, listSort, listDesc = "", "", "", false
	})
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList_PrintsSortedTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fixture))
	}))
	defer srv.Close()

	out, err := runCLI(t, "list", "--url", srv.URL, "--config", quietConfig(t), "--sort", "price", "--desc")
	require.NoError(t, err)

	assert.Contains(t, out, "Price ▼")
	assert.Contains(t, out, "$695.00")
	assert.Contains(t, out, "3 products")
	assert.Less(t, bytes.Index([]byte(out), []byte("Bracelet")), bytes.Index([]byte(out), []byte("Backpack")))
}

func TestList_Filter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(fixture))
	}))
	defer srv.Close()

	out, err := runCLI(t, "list", "--url", srv.URL, "--config", quietConfig(t), "--filter", "LEGENDS")
	require.NoError(t, err)

	assert.Contains(t, out, "Naga Bracelet")
	assert.NotContains(t, out, "Backpack")
	assert.Contains(t, out, "1 of 3 products")
}

func TestList_CategoryIsExact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(fixture))
	}))
	defer srv.Close()

	out, err := runCLI(t, "list", "--url", srv.URL, "--config", quietConfig(t), "--category", "jewelery")
	require.NoError(t, err)

	assert.Contains(t, out, "Naga Bracelet")
	assert.NotContains(t, out, "Backpack")
	assert.Contains(t, out, "1 of 3 products")
}

func TestList_RejectsUnknownSortKey(t *testing.T) {
	_, err := runCLI(t, "list", "--config", quietConfig(t), "--sort", "rating")
	assert.Error(t, err)
}

func TestList_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := runCLI(t, "list", "--url", srv.URL, "--config", quietConfig(t))
	assert.Error(t, err)
}
