package client

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/wangjian/alivod/conf"
)

const (
	RequestHeaderKeyUserAgent = "User-Agent"
	RequestHeaderKeyAccept    = "Accept"
)

var UserAgent = getUserAgent()

func getUserAgent() string {
	return fmt.Sprintf("AliVodGo/%s (%s; %s; %s)", conf.Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func addDefaultHeader(headers http.Header, format string) {
	headers.Set(RequestHeaderKeyUserAgent, UserAgent)
	if strings.EqualFold(format, "XML") {
		headers.Set(RequestHeaderKeyAccept, "application/xml")
	} else {
		headers.Set(RequestHeaderKeyAccept, conf.CONTENT_TYPE_JSON)
	}
}
