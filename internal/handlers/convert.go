package handlers

import (
	"qbit/internal/calendar"
	dom "qbit/internal/domain"
	"qbit/internal/dto"
	"qbit/internal/service"
)

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:            t.ID,
		UserID:        t.UserID,
		ScheduledDate: calendar.DayKey(t.Date),
		Title:         t.Title,
		Description:   t.Description,
		IsCompleted:   t.IsCompleted,
		CertID:        t.CertID,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}

func dayToResponse(d service.DayView) dto.DayResponse {
	resp := dto.DayResponse{
		ScheduledDate:    d.Date,
		ScheduledDateStr: d.Key,
		Todos:            todosToResponses(d.Todos),
	}
	if d.Memo != nil {
		m := memoToResponse(*d.Memo)
		resp.Memo = &m
	}
	return resp
}

func daysToResponse(days []service.DayView) dto.DaysResponse {
	out := make([]dto.DayResponse, len(days))
	for i := range days {
		out[i] = dayToResponse(days[i])
	}
	return dto.DaysResponse{Days: out}
}

func streakToResponse(s calendar.Streak) dto.StreakResponse {
	resp := dto.StreakResponse{CurrentStreak: s.Current, LongestStreak: s.Longest}
	if s.LastActive != nil {
		k := calendar.DayKey(*s.LastActive)
		resp.LastActiveDate = &k
	}
	if s.StartedAt != nil {
		k := calendar.DayKey(*s.StartedAt)
		resp.StreakStart = &k
	}
	return resp
}

func memoToResponse(m dom.Memo) dto.MemoResponse {
	return dto.MemoResponse{
		ID:            m.ID,
		ScheduledDate: calendar.DayKey(m.Date),
		Content:       m.Content,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func certToResponse(c dom.Cert) dto.CertResponse {
	schedule := c.Schedule
	if schedule == nil {
		schedule = []dom.ExamRound{}
	}
	return dto.CertResponse{
		ID:                c.ID,
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
		Schedule:          schedule,
	}
}

func certsToResponse(list []dom.Cert) dto.ListCertsResponse {
	out := make([]dto.CertResponse, len(list))
	for i := range list {
		out[i] = certToResponse(list[i])
	}
	return dto.ListCertsResponse{Items: out}
}

func passedCertToResponse(p dom.PassedCert) dto.PassedCertResponse {
	return dto.PassedCertResponse{
		ID:         p.ID,
		CertID:     p.CertID,
		CertName:   p.CertName,
		PassedDate: calendar.DayKey(p.PassedDate),
		Score:      p.Score,
		Type:       string(p.Type),
		Memo:       p.Memo,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func reportToResponse(r dom.WeeklyReport) dto.WeeklyReportResponse {
	return dto.WeeklyReportResponse{
		ID:                   r.ID,
		WeekStart:            calendar.DayKey(r.WeekStart),
		WeekEnd:              calendar.DayKey(r.WeekEnd),
		TotalTodos:           r.TotalTodos,
		CompletedTodos:       r.CompletedTodos,
		WeeklyCompletionRate: r.WeeklyCompletionRate,
		DailyStats:           nonNilStats(r.DailyStats),
		Summary:              r.Summary,
		Achievements:         nonNil(r.Achievements),
		Improvements:         nonNil(r.Improvements),
		NextWeekSuggestions:  nonNil(r.NextWeekSuggestions),
		Encouragement:        r.Encouragement,
		UpdatedAt:            r.UpdatedAt,
	}
}

func userToResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Nickname:     u.Nickname,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilStats(s []calendar.DayStats) []calendar.DayStats {
	if s == nil {
		return []calendar.DayStats{}
	}
	return s
}
