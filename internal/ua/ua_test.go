package ua

import "testing"

const (
	chromeMac = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.6422.60 Safari/537.36"
	googlebot = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestParse_Desktop(t *testing.T) {
	info := Parse(chromeMac)
	if info.IsBot || info.Device != "Desktop" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.Browser != "Chrome" {
		t.Fatalf("browser = %q", info.Browser)
	}
}

func TestParse_Crawler(t *testing.T) {
	info := Parse(googlebot)
	if !info.IsBot || info.Device != "Bot" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if !IsBot(googlebot) || IsBot(chromeMac) {
		t.Fatal("IsBot disagrees with Parse")
	}
}
