package domain

import "time"

// PassedCertType is the stage of a certification the user passed.
type PassedCertType string

const (
	PassedWritten   PassedCertType = "written"
	PassedPractical PassedCertType = "practical"
	PassedFinal     PassedCertType = "final"
)

// Valid reports whether t is a known stage.
func (t PassedCertType) Valid() bool {
	switch t {
	case PassedWritten, PassedPractical, PassedFinal:
		return true
	}
	return false
}

// PassedCert records a passed exam. CertName is filled on reads.
type PassedCert struct {
	ID         string
	UserID     string
	CertID     string
	CertName   string
	PassedDate time.Time
	Score      *int
	Type       PassedCertType
	Memo       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
