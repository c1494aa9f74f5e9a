package flash

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
)

func TestWriteAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	policy := requestmeta.SchemePolicy{}
	req := httptest.NewRequest(http.MethodPost, "/preferences/theme", nil)
	writeRR := httptest.NewRecorder()

	Write(writeRR, req, NoticeSuccess("web.preferences.notice_saved"), policy)
	cookie, err := http.ParseSetCookie(writeRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != CookieName || cookie.MaxAge != maxAgeSeconds {
		t.Fatalf("cookie = %s MaxAge=%d", cookie.Name, cookie.MaxAge)
	}

	next := httptest.NewRequest(http.MethodGet, "/dashboard/settings", nil)
	next.AddCookie(cookie)
	readRR := httptest.NewRecorder()
	notice, ok := ReadAndClear(readRR, next, policy)
	if !ok {
		t.Fatalf("ReadAndClear() ok = false, want true")
	}
	if notice.Kind != KindSuccess || notice.Key != "web.preferences.notice_saved" {
		t.Fatalf("notice = %+v", notice)
	}
	cleared, err := http.ParseSetCookie(readRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cleared.MaxAge >= 0 {
		t.Fatalf("cleared MaxAge = %d, want negative", cleared.MaxAge)
	}
}

func TestWriteIgnoresInvalidNotices(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	for _, notice := range []Notice{{Kind: KindInfo}, {Kind: "shout", Key: "k"}} {
		rr := httptest.NewRecorder()
		Write(rr, req, notice, requestmeta.SchemePolicy{})
		if got := rr.Header().Get("Set-Cookie"); got != "" {
			t.Fatalf("Write(%+v) set cookie %q", notice, got)
		}
	}
}

func TestReadAndClearRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"%%%", base64.RawURLEncoding.EncodeToString([]byte("not json"))} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: value})
		if _, ok := ReadAndClear(httptest.NewRecorder(), req, requestmeta.SchemePolicy{}); ok {
			t.Fatalf("ReadAndClear(%q) ok = true, want false", value)
		}
	}
	if _, ok := ReadAndClear(nil, nil, requestmeta.SchemePolicy{}); ok {
		t.Fatal("ReadAndClear(nil) ok = true")
	}
}

func TestNoticeError(t *testing.T) {
	t.Parallel()

	if got := NoticeError("web.auth.error.signin_failed"); got.Kind != KindError {
		t.Fatalf("kind = %q, want %q", got.Kind, KindError)
	}
}
