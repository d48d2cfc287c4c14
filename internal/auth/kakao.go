package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	dom "qbit/internal/domain"

	"golang.org/x/oauth2"
)

const kakaoProfileURL = "https://kapi.kakao.com/v2/user/me"

// KakaoEndpoint is Kakao's OAuth 2.0 endpoint.
var KakaoEndpoint = oauth2.Endpoint{
	AuthURL:   "https://kauth.kakao.com/oauth/authorize",
	TokenURL:  "https://kauth.kakao.com/oauth/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

// Kakao runs the authorization code flow against Kakao login.
type Kakao struct {
	conf       *oauth2.Config
	profileURL string
}

// NewKakao returns a Kakao login provider.
func NewKakao(clientID, clientSecret, redirectURL string) *Kakao {
	return &Kakao{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     KakaoEndpoint,
			Scopes:       []string{"profile_nickname", "profile_image", "account_email"},
		},
		profileURL: kakaoProfileURL,
	}
}

// AuthCodeURL is where the browser is sent to log in.
func (k *Kakao) AuthCodeURL(state string) string {
	return k.conf.AuthCodeURL(state)
}

// Exchange trades the callback code for a token and fetches the user's Kakao profile.
func (k *Kakao) Exchange(ctx context.Context, code string) (dom.User, error) {
	tok, err := k.conf.Exchange(ctx, code)
	if err != nil {
		return dom.User{}, fmt.Errorf("kakao token exchange: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.profileURL, nil)
	if err != nil {
		return dom.User{}, err
	}
	resp, err := k.conf.Client(ctx, tok).Do(req)
	if err != nil {
		return dom.User{}, fmt.Errorf("kakao profile: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return dom.User{}, fmt.Errorf("kakao profile: status %d", resp.StatusCode)
	}
	return parseKakaoProfile(resp.Body)
}

type kakaoProfile struct {
	ID         int64 `json:"id"`
	Properties struct {
		Nickname     string `json:"nickname"`
		ProfileImage string `json:"profile_image"`
	} `json:"properties"`
	Account struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

func parseKakaoProfile(r io.Reader) (dom.User, error) {
	var p kakaoProfile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return dom.User{}, fmt.Errorf("kakao profile: decode: %w", err)
	}
	if p.ID == 0 {
		return dom.User{}, fmt.Errorf("kakao profile: missing id")
	}
	u := dom.User{
		KakaoID:      strconv.FormatInt(p.ID, 10),
		Email:        p.Account.Email,
		Nickname:     p.Account.Profile.Nickname,
		ProfileImage: p.Account.Profile.ProfileImageURL,
	}
	if u.Nickname == "" {
		u.Nickname = p.Properties.Nickname
	}
	if u.ProfileImage == "" {
		u.ProfileImage = p.Properties.ProfileImage
	}
	return u, nil
}
