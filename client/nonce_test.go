//go:build unit
// +build unit

package client

import (
	"math/rand"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

func TestNonceFormat(t *testing.T) {
	ast := assert.New(t)
	now := time.Date(2017, 3, 21, 8, 0, 0, 123456789, time.UTC)
	generator := NewNonceGenerator(fixedClock(now), rand.NewSource(1), func() string { return "192.168.1.10" })

	nonce := generator.Nonce()
	prefix := "14900832001234" + "192168110"
	ast.Regexp(regexp.MustCompile("^"+prefix+"[0-9a-zA-Z]{32}$"), nonce)
}

func TestNonceDeterministicWithSeed(t *testing.T) {
	ast := assert.New(t)
	now := time.Unix(1490083200, 0)
	first := NewNonceGenerator(fixedClock(now), rand.NewSource(42), nil)
	second := NewNonceGenerator(fixedClock(now), rand.NewSource(42), nil)
	ast.Equal(first.Nonce(), second.Nonce())
	ast.NotEqual(first.Nonce(), NewNonceGenerator(fixedClock(now), rand.NewSource(43), nil).Nonce())

	nonce := NewNonceGenerator(nil, nil, nil).Nonce()
	ast.Regexp(regexp.MustCompile("^[0-9]+[0-9a-zA-Z]{32}$"), nonce)
}

func TestIPFromRequest(t *testing.T) {
	ast := assert.New(t)
	ast.Equal("", IPFromRequest(nil))

	r, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	ast.Equal("", IPFromRequest(r))

	r.RemoteAddr = "10.0.0.1:52341"
	ast.Equal("10.0.0.1", IPFromRequest(r))

	r.RemoteAddr = "10.0.0.2"
	ast.Equal("10.0.0.2", IPFromRequest(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	ast.Equal("203.0.113.7", IPFromRequest(r))
}
