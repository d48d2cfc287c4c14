package dto

import "qbit/internal/domain"

type CertResponse struct {
	ID                string             `json:"id"`
	Code              string             `json:"code"`
	Name              string             `json:"name"`
	SeriesCode        string             `json:"series_code"`
	SeriesName        string             `json:"series_name"`
	QualTypeCode      string             `json:"qual_type_code"`
	QualTypeName      string             `json:"qual_type_name"`
	ObligFieldCode    string             `json:"oblig_field_code"`
	ObligFieldName    string             `json:"oblig_field_name"`
	MidObligFieldCode string             `json:"mid_oblig_field_code"`
	MidObligFieldName string             `json:"mid_oblig_field_name"`
	Agency            string             `json:"agency"`
	Outlook           string             `json:"outlook"`
	Schedule          []domain.ExamRound `json:"schedule"`
}

type ListCertsResponse struct {
	Items []CertResponse `json:"items"`
}

type UpcomingCertResponse struct {
	CertResponse
	ExamDate      string `json:"exam_date"`
	DaysUntilExam int    `json:"days_until_exam"`
}

type ListUpcomingResponse struct {
	Items []UpcomingCertResponse `json:"items"`
}

// CertImport is one catalog entry of the qbitctl import file.
type CertImport struct {
	Code              string             `json:"code"`
	Name              string             `json:"name"`
	SeriesCode        string             `json:"series_code"`
	SeriesName        string             `json:"series_name"`
	QualTypeCode      string             `json:"qual_type_code"`
	QualTypeName      string             `json:"qual_type_name"`
	ObligFieldCode    string             `json:"oblig_field_code"`
	ObligFieldName    string             `json:"oblig_field_name"`
	MidObligFieldCode string             `json:"mid_oblig_field_code"`
	MidObligFieldName string             `json:"mid_oblig_field_name"`
	Agency            string             `json:"agency"`
	Outlook           string             `json:"outlook"`
	Schedule          []domain.ExamRound `json:"schedule"`
}

// ToDomain converts an import entry to a catalog cert.
func (c CertImport) ToDomain() domain.Cert {
	return domain.Cert{
		Code:              c.Code,
		Name:              c.Name,
		SeriesCode:        c.SeriesCode,
		SeriesName:        c.SeriesName,
		QualTypeCode:      c.QualTypeCode,
		QualTypeName:      c.QualTypeName,
		ObligFieldCode:    c.ObligFieldCode,
		ObligFieldName:    c.ObligFieldName,
		MidObligFieldCode: c.MidObligFieldCode,
		MidObligFieldName: c.MidObligFieldName,
		Agency:            c.Agency,
		Outlook:           c.Outlook,
		Schedule:          c.Schedule,
	}
}
