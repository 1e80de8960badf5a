//go:build unit
// +build unit

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDialer(t *testing.T) {
	ast := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ast.Equal(UserAgent, r.Header.Get("User-Agent"))
		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	ctx := WithDialTimeout(context.Background(), time.Second)
	ctx = WithKeepAliveInterval(ctx, 5*time.Second)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	ast.Nil(err)
	addDefaultHeader(req.Header, "JSON")
	ast.Equal("application/json", req.Header.Get("Accept"))

	resp, err := (&http.Client{Transport: DefaultTransport}).Do(req)
	if ast.Nil(err) {
		resp.Body.Close()
		ast.Equal(http.StatusOK, resp.StatusCode)
	}

	header := http.Header{}
	addDefaultHeader(header, "xml")
	ast.Equal("application/xml", header.Get("Accept"))
}
