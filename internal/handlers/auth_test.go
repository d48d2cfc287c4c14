package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"qbit/internal/auth"
	dom "qbit/internal/domain"
	"qbit/internal/dto"
	"qbit/internal/service"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(sessions *fakeSessions, kakao fakeKakao, users *memUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewUserService(users)
	h := NewAuthHandler(sessions, kakao, svc, CookieConfig{TTL: time.Hour, ClientURL: "http://localhost:5173/"}, nil)
	uh := NewUserHandler(svc)

	router := gin.New()
	router.GET("/auth/kakao", h.KakaoLogin)
	router.GET("/auth/kakao/callback", h.KakaoCallback)
	router.POST("/auth/logout", h.Logout)
	router.GET("/auth/me", asUser("user-1"), h.Me)
	router.PATCH("/users/me", asUser("user-1"), uh.UpdateMe)
	return router
}

func sessionCookie(w interface{ Result() *http.Response }) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestKakaoLoginRedirectsWithState(t *testing.T) {
	sessions := newFakeSessions()
	router := newAuthRouter(sessions, fakeKakao{}, &memUserRepo{})

	w := do(router, http.MethodGet, "/auth/kakao", "")
	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "https://kauth.kakao.com/") || !strings.Contains(loc, "state=state-1") {
		t.Errorf("location = %q", loc)
	}
	if !sessions.states["state-1"] {
		t.Error("state was not stored")
	}
}

func TestKakaoCallback(t *testing.T) {
	profile := dom.User{KakaoID: "42", Nickname: "큐빗", Email: "q@example.com"}
	sessions := newFakeSessions()
	users := &memUserRepo{}
	router := newAuthRouter(sessions, fakeKakao{profile: profile}, users)

	sessions.states["s1"] = true
	w := do(router, http.MethodGet, "/auth/kakao/callback?code=abc&state=s1", "")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "http://localhost:5173/onboarding" {
		t.Fatalf("first login: %d %q", w.Code, w.Header().Get("Location"))
	}
	c := sessionCookie(w)
	if c == nil || sessions.sessions[c.Value] != "user-1" || !c.HttpOnly {
		t.Fatalf("session cookie = %+v", c)
	}

	sessions.states["s2"] = true
	w = do(router, http.MethodGet, "/auth/kakao/callback?code=abc&state=s2", "")
	if w.Header().Get("Location") != "http://localhost:5173/?isAuth=true" {
		t.Errorf("returning login location = %q", w.Header().Get("Location"))
	}
	if len(users.users) != 1 {
		t.Errorf("users = %d, want 1", len(users.users))
	}

	// states are single use
	if w := do(router, http.MethodGet, "/auth/kakao/callback?code=abc&state=s2", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("reused state: status %d", w.Code)
	}
}

func TestKakaoCallbackErrors(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		kakao  fakeKakao
		status int
	}{
		{"missing code", "?state=s1", fakeKakao{}, http.StatusBadRequest},
		{"unknown state", "?code=abc&state=nope", fakeKakao{}, http.StatusUnauthorized},
		{"exchange failure", "?code=abc&state=s1", fakeKakao{err: errBoom}, http.StatusUnauthorized},
		{"profile without id", "?code=abc&state=s1", fakeKakao{profile: dom.User{Nickname: "x"}}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions := newFakeSessions()
			sessions.states["s1"] = true
			router := newAuthRouter(sessions, tc.kakao, &memUserRepo{})
			w := do(router, http.MethodGet, "/auth/kakao/callback"+tc.query, "")
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			if len(sessions.sessions) != 0 {
				t.Error("no session should be created")
			}
		})
	}
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := newFakeSessions()
	sessions.sessions["sess-9"] = "user-1"
	router := newAuthRouter(sessions, fakeKakao{}, &memUserRepo{})

	req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "sess-9"})
	w := serve(router, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	if _, ok := sessions.sessions["sess-9"]; ok {
		t.Error("session still stored")
	}
	if c := sessionCookie(w); c == nil || c.MaxAge >= 0 {
		t.Errorf("cookie not expired: %+v", c)
	}
}

func TestMeAndOnboarding(t *testing.T) {
	users := &memUserRepo{users: []dom.User{{ID: "user-1", KakaoID: "42", Nickname: "kakao name"}}}
	router := newAuthRouter(newFakeSessions(), fakeKakao{}, users)

	me := decode[dto.UserResponse](t, do(router, http.MethodGet, "/auth/me", ""))
	if me.ID != "user-1" || me.Nickname != "kakao name" {
		t.Errorf("me = %+v", me)
	}

	w := do(router, http.MethodPatch, "/users/me", `{"nickname":"  합격러  "}`)
	if got := decode[dto.UserResponse](t, w); w.Code != http.StatusOK || got.Nickname != "합격러" {
		t.Errorf("update: %d %+v", w.Code, got)
	}
	if w := do(router, http.MethodPatch, "/users/me", `{"nickname":""}`); w.Code != http.StatusBadRequest {
		t.Errorf("empty nickname: status %d", w.Code)
	}
}
