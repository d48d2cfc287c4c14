package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"qbit/internal/calendar"
	dom "qbit/internal/domain"
	"qbit/internal/repo"
	"qbit/internal/utils"
)

const maxPassedMemoLen = 500

// PassedCertInput is the body of a create call.
type PassedCertInput struct {
	CertID     string
	PassedDate time.Time
	Score      *int
	Type       dom.PassedCertType
	Memo       string
}

// PassedCertPatch holds the fields of a partial update. Nil means unchanged.
type PassedCertPatch struct {
	CertID     *string
	PassedDate *time.Time
	Score      *int
	ClearScore bool
	Type       *dom.PassedCertType
	Memo       *string
}

// PassedCertService records the exams a user passed.
type PassedCertService struct {
	repo repo.PassedCertRepo
}

func NewPassedCertService(r repo.PassedCertRepo) *PassedCertService {
	return &PassedCertService{repo: r}
}

func (s *PassedCertService) Create(ctx context.Context, userID string, in PassedCertInput) (dom.PassedCert, error) {
	p := dom.PassedCert{
		UserID:     userID,
		CertID:     strings.TrimSpace(in.CertID),
		PassedDate: calendar.StartOfDay(in.PassedDate),
		Score:      in.Score,
		Type:       in.Type,
		Memo:       strings.TrimSpace(in.Memo),
	}
	if err := checkPassedCert(p); err != nil {
		return dom.PassedCert{}, err
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return dom.PassedCert{}, unknownCert(err)
	}
	return created, nil
}

func (s *PassedCertService) List(ctx context.Context, userID string, f repo.PassedCertFilter) ([]dom.PassedCert, error) {
	if f.Type != "" && !f.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidInput, f.Type)
	}
	return s.repo.List(ctx, userID, f)
}

func (s *PassedCertService) GetByID(ctx context.Context, userID, id string) (dom.PassedCert, error) {
	p, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return dom.PassedCert{}, notFound(err)
	}
	return p, nil
}

func (s *PassedCertService) Update(ctx context.Context, userID, id string, in PassedCertPatch) (dom.PassedCert, error) {
	p, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return dom.PassedCert{}, notFound(err)
	}
	if in.CertID != nil {
		p.CertID = strings.TrimSpace(*in.CertID)
	}
	if in.PassedDate != nil {
		p.PassedDate = calendar.StartOfDay(*in.PassedDate)
	}
	if in.ClearScore {
		p.Score = nil
	} else if in.Score != nil {
		p.Score = in.Score
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.Memo != nil {
		p.Memo = strings.TrimSpace(*in.Memo)
	}
	if err := checkPassedCert(p); err != nil {
		return dom.PassedCert{}, err
	}
	updated, err := s.repo.Update(ctx, userID, id, p)
	if err != nil {
		return dom.PassedCert{}, unknownCert(notFound(err))
	}
	return updated, nil
}

func (s *PassedCertService) Delete(ctx context.Context, userID, id string) error {
	return notFound(s.repo.Delete(ctx, userID, id))
}

func checkPassedCert(p dom.PassedCert) error {
	switch {
	case p.CertID == "":
		return fmt.Errorf("%w: cert_id is required", ErrInvalidInput)
	case !p.Type.Valid():
		return fmt.Errorf("%w: type must be written, practical or final", ErrInvalidInput)
	case p.Score != nil && (*p.Score < 0 || *p.Score > 100):
		return fmt.Errorf("%w: score must be 0-100", ErrInvalidInput)
	case utf8.RuneCountInString(p.Memo) > maxPassedMemoLen:
		return fmt.Errorf("%w: memo longer than %d characters", ErrInvalidInput, maxPassedMemoLen)
	}
	return nil
}

// unknownCert reports a dangling cert_id as ErrNotFound.
func unknownCert(err error) error {
	if utils.IsPGForeignKeyViolation(err) {
		return fmt.Errorf("%w: cert", ErrNotFound)
	}
	return err
}
