package service

import (
	"time"

	"go_vms/internal/httpx"
	"go_vms/internal/model"

	"gorm.io/gorm"
)

// ReportService derives read-only aggregates from visitor entries.
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// DailyReport holds per-day entry counts.
type DailyReport struct {
	ReportDate string `json:"report_date" gorm:"-"`
	Total      int64  `json:"total"`
	Approved   int64  `json:"approved"`
	Pending    int64  `json:"pending"`
	Rejected   int64  `json:"rejected"`
	CheckedOut int64  `json:"checked_out"`
}

// SummaryReport holds rolling 30-day counts.
type SummaryReport struct {
	Total           int64 `json:"total"`
	Approved        int64 `json:"approved"`
	Pending         int64 `json:"pending"`
	Rejected        int64 `json:"rejected"`
	CurrentlyInside int64 `json:"currently_inside"`
	CheckedOut      int64 `json:"checked_out"`
}

// FrequentVisitor is one row of the frequent-visitor ranking.
type FrequentVisitor struct {
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	VisitCount int64  `json:"visit_count"`
}

// Daily counts entries created on the given date (YYYY-MM-DD, default today).
func (s *ReportService) Daily(dateStr string) (*DailyReport, error) {
	day := time.Now()
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return nil, httpx.ErrParamInvalid("invalid date, use YYYY-MM-DD")
		}
		day = parsed
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	end := start.Add(24 * time.Hour)

	var report DailyReport
	err := s.db.Model(&model.VisitorEntry{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN approve = 'A' THEN 1 ELSE 0 END), 0) AS approved,
			COALESCE(SUM(CASE WHEN approve = 'P' THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN approve = 'R' THEN 1 ELSE 0 END), 0) AS rejected,
			COALESCE(SUM(CASE WHEN out_time IS NOT NULL THEN 1 ELSE 0 END), 0) AS checked_out`).
		Where("entry_date >= ? AND entry_date < ?", start, end).
		Scan(&report).Error
	if err != nil {
		return nil, err
	}

	report.ReportDate = start.Format("2006-01-02")
	return &report, nil
}

// Summary aggregates the rolling last 30 days.
func (s *ReportService) Summary() (*SummaryReport, error) {
	since := time.Now().AddDate(0, 0, -30)

	var report SummaryReport
	err := s.db.Model(&model.VisitorEntry{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN approve = 'A' THEN 1 ELSE 0 END), 0) AS approved,
			COALESCE(SUM(CASE WHEN approve = 'P' THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN approve = 'R' THEN 1 ELSE 0 END), 0) AS rejected,
			COALESCE(SUM(CASE WHEN approve = 'A' AND out_time IS NULL THEN 1 ELSE 0 END), 0) AS currently_inside,
			COALESCE(SUM(CASE WHEN approve = 'A' AND out_time IS NOT NULL THEN 1 ELSE 0 END), 0) AS checked_out`).
		Where("entry_date >= ?", since).
		Scan(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Frequent ranks visitors (grouped by mobile and name) with more than one
// visit in the rolling last 90 days, top 10.
func (s *ReportService) Frequent() ([]FrequentVisitor, error) {
	since := time.Now().AddDate(0, 0, -90)

	var rows []FrequentVisitor
	err := s.db.Model(&model.VisitorEntry{}).
		Select("name, mobile, COUNT(*) AS visit_count").
		Where("entry_date >= ?", since).
		Group("mobile, name").
		Having("COUNT(*) > 1").
		Order("visit_count DESC").
		Limit(10).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []FrequentVisitor{}
	}
	return rows, nil
}
