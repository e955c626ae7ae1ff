package requestinfo

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEnrich_StoresInfo(t *testing.T) {
	var got *RequestInfo
	h := Enrich(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("Accept-Language", "pt-BR;q=0.9,en;q=0.8")
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("info not stored")
	}
	if got.IP.String() != "203.0.113.7" {
		t.Fatalf("ip = %s", got.IP)
	}
	if got.PrimaryLang != "pt-br" {
		t.Fatalf("lang = %q", got.PrimaryLang)
	}
	if !got.UA.IsBot {
		t.Fatal("bingbot not flagged")
	}
}

func TestOf_FallsBackToParsing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.2:4711"
	info := Of(req)
	if info == nil || info.IP.String() != "198.51.100.2" {
		t.Fatalf("unexpected info: %+v", info)
	}
}
