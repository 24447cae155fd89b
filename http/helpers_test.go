package http_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/topfive/backend/conf"
	tfhttp "github.com/topfive/backend/http"
	"github.com/topfive/backend/subm"
)

func setupServer(t *testing.T, capacity int, adminPwdBcrypt string) (http.Handler, *subm.Store) {
	t.Helper()
	store := subm.NewStore(capacity)
	cfg := conf.Config{
		SecretKey:      "test-secret",
		AdminPwdBcrypt: adminPwdBcrypt,
		MaxSubmissions: capacity,
	}
	server := tfhttp.NewHttpServer(store, cfg)
	return server.Handler(), store
}

func postForm(t *testing.T, handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path,
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func validForm(category string) url.Values {
	form := url.Values{}
	form.Set("category", category)
	form.Set("item1", "A")
	form.Set("item2", "B")
	form.Set("item3", "C")
	form.Set("item4", "D")
	form.Set("item5", "E")
	return form
}

// followRedirect replays the redirect target with the cookies the previous
// response set, the way a browser would, and returns the rendered page.
func followRedirect(t *testing.T, handler http.Handler, prev *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, prev.Code,
		"expected a redirect, body: %s", prev.Body.String())

	location := prev.Header().Get("Location")
	require.NotEmpty(t, location)

	req := httptest.NewRequest(http.MethodGet, location, nil)
	for _, cookie := range prev.Result().Cookies() {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}
