package router

import (
	"net/http"
	"testing"

	"storefront/internal/database"
	"storefront/internal/storage"
	"storefront/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &storage.FakeStorage{}, &worker.FakePool{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /ping",
		http.MethodGet + " /product",
		http.MethodGet + " /product/:id",
		http.MethodPost + " /product",
		http.MethodPut + " /product/:id",
		http.MethodDelete + " /product/:id",
		http.MethodGet + " /user",
		http.MethodGet + " /user/:id",
		http.MethodPost + " /user",
		http.MethodPut + " /user/:id",
		http.MethodPut + " /user/updateuserimage/:id",
		http.MethodDelete + " /user/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
