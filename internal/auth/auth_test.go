package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParseKakaoProfile(t *testing.T) {
	body := `{
		"id": 3141592653,
		"properties": {"nickname": "old", "profile_image": "http://k.kakaocdn.net/old.jpg"},
		"kakao_account": {"email": "user@example.com", "profile": {"nickname": "큐빗", "profile_image_url": ""}}
	}`
	u, err := parseKakaoProfile(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if u.KakaoID != "3141592653" || u.Email != "user@example.com" || u.Nickname != "큐빗" {
		t.Errorf("user = %+v", u)
	}
	if u.ProfileImage != "http://k.kakaocdn.net/old.jpg" {
		t.Errorf("profile image should fall back to properties, got %q", u.ProfileImage)
	}

	for _, bad := range []string{`{"properties": {}}`, `not json`} {
		if _, err := parseKakaoProfile(strings.NewReader(bad)); err == nil {
			t.Errorf("parseKakaoProfile(%q) should fail", bad)
		}
	}
}

func TestKakaoAuthCodeURL(t *testing.T) {
	k := NewKakao("client-id", "secret", "http://localhost:8080/api/v1/auth/kakao/callback")
	u, err := url.Parse(k.AuthCodeURL("state-123"))
	if err != nil {
		t.Fatal(err)
	}
	q := u.Query()
	if u.Host != "kauth.kakao.com" || q.Get("client_id") != "client-id" || q.Get("state") != "state-123" {
		t.Errorf("auth url = %s", u)
	}
	if q.Get("response_type") != "code" {
		t.Errorf("response_type = %q", q.Get("response_type"))
	}
}

type fakeSessions map[string]string

func (f fakeSessions) GetUserID(_ context.Context, id string) (string, bool) {
	u, ok := f[id]
	return u, ok
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", RequireSession(fakeSessions{"good": "user-1"}), func(c *gin.Context) {
		c.String(http.StatusOK, UserIDFromContext(c))
	})

	cases := []struct {
		name   string
		cookie string
		status int
		body   string
	}{
		{"valid session", "good", http.StatusOK, "user-1"},
		{"unknown session", "stale", http.StatusUnauthorized, ""},
		{"no cookie", "", http.StatusUnauthorized, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			if tc.body != "" && w.Body.String() != tc.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tc.body)
			}
		})
	}
}
