package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	dom "qbit/internal/domain"
	"qbit/internal/repo"
)

const maxNicknameLen = 30

// UserService handles user accounts created through Kakao login.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// LoginKakao finds the user by Kakao id or creates it. isNew is true on first login.
func (s *UserService) LoginKakao(ctx context.Context, profile dom.User) (user dom.User, isNew bool, err error) {
	profile.KakaoID = strings.TrimSpace(profile.KakaoID)
	if profile.KakaoID == "" {
		return dom.User{}, false, fmt.Errorf("%w: kakao id is required", ErrInvalidInput)
	}
	profile.Nickname = truncateRunes(strings.TrimSpace(profile.Nickname), maxNicknameLen)
	return s.repo.UpsertKakao(ctx, profile)
}

func (s *UserService) GetByID(ctx context.Context, id string) (dom.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.User{}, notFound(err)
	}
	return u, nil
}

// UpdateNickname sets the name picked during onboarding.
func (s *UserService) UpdateNickname(ctx context.Context, id, nickname string) (dom.User, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" || utf8.RuneCountInString(nickname) > maxNicknameLen {
		return dom.User{}, fmt.Errorf("%w: nickname must be 1-%d characters", ErrInvalidInput, maxNicknameLen)
	}
	u, err := s.repo.UpdateNickname(ctx, id, nickname)
	if err != nil {
		return dom.User{}, notFound(err)
	}
	return u, nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
