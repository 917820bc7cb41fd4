package models

import (
	"time"
)

// NotificationType defines the notification category
type NotificationType string

const (
	NotificationInfo    NotificationType = "INFO"
	NotificationWarning NotificationType = "WARNING"
	NotificationSuccess NotificationType = "SUCCESS"
	NotificationError   NotificationType = "ERROR"
)

// ParseNotificationType validates a notification type string.
func ParseNotificationType(notificationType string) (NotificationType, bool) {
	switch NotificationType(notificationType) {
	case NotificationInfo, NotificationWarning, NotificationSuccess, NotificationError:
		return NotificationType(notificationType), true
	}
	return "", false
}

// Notification defines a user notification based on the 'notifications' table
type Notification struct {
	ID        int64            `json:"id" db:"id"`
	UserID    int64            `json:"userId" db:"user_id"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	Link      *string          `json:"link,omitempty" db:"link"` // Optional link to related content
	Read      bool             `json:"read" db:"read"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}

// Policy defines a department policy based on the 'policies' table
type Policy struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Content     string    `json:"content" db:"content"`
	Department  string    `json:"department" db:"department"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ReportType defines the report category
type ReportType string

const (
	ReportEnrollment  ReportType = "ENROLLMENT"
	ReportPerformance ReportType = "PERFORMANCE"
	ReportAcademic    ReportType = "ACADEMIC"
	ReportFinancial   ReportType = "FINANCIAL"
	ReportResources   ReportType = "RESOURCES"
	ReportCustom      ReportType = "CUSTOM"
)

// ParseReportType validates a report type string.
func ParseReportType(reportType string) (ReportType, bool) {
	switch ReportType(reportType) {
	case ReportEnrollment, ReportPerformance, ReportAcademic,
		ReportFinancial, ReportResources, ReportCustom:
		return ReportType(reportType), true
	}
	return "", false
}

// Report defines a department report based on the 'reports' table.
// Content holds a JSON document, validated on write.
type Report struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Type        ReportType `json:"type" db:"type"`
	Content     string     `json:"content" db:"content"`
	Summary     *string    `json:"summary,omitempty" db:"summary"`
	DateRange   *string    `json:"dateRange,omitempty" db:"date_range"`
	Department  string     `json:"department" db:"department"`
	CreatedBy   int64      `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
