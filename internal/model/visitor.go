package model

import (
	"time"

	"gorm.io/datatypes"
)

// ApprovalState represents the approval lifecycle of a visitor entry
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "P"
	ApprovalApproved ApprovalState = "A"
	ApprovalRejected ApprovalState = "R"
)

// FellowVisitor is one companion accompanying the primary visitor.
// The list is serialized into the fellow_visitors_details JSON column.
type FellowVisitor struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// VisitorEntry represents one visit. The card number is unique per
// calendar day and doubles as the public identifier of the entry.
type VisitorEntry struct {
	BaseModel
	CardNo               string         `gorm:"column:card_no;type:varchar(16);uniqueIndex;not null" json:"card_no"`
	Name                 string         `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Mobile               string         `gorm:"column:mobile;type:varchar(20);not null;index" json:"mobile"`
	Email                *string        `gorm:"column:email;type:varchar(128)" json:"email"`
	IDType               string         `gorm:"column:id_type;type:varchar(32)" json:"id_type"`
	IDNumber             string         `gorm:"column:id_number;type:varchar(64)" json:"id_number"`
	Representing         *string        `gorm:"column:representing;type:varchar(128)" json:"representing"`
	Purpose              string         `gorm:"column:purpose;type:varchar(64)" json:"purpose"`
	VisitorCategory      string         `gorm:"column:visitor_category;type:varchar(64)" json:"visitor_category"`
	EmpID                string         `gorm:"column:emp_id;type:varchar(32);index" json:"emp_id"`
	EmpName              string         `gorm:"column:emp_name;type:varchar(128)" json:"emp_name"`
	EmpMobileNo          string         `gorm:"column:emp_mobile_no;type:varchar(20)" json:"emp_mobile_no"`
	FellowVisitors       int            `gorm:"column:fellow_visitors;not null;default:0" json:"fellow_visitors"`
	FellowVisitorDetails datatypes.JSON `gorm:"column:fellow_visitors_details;type:json" json:"fellow_visitors_details"`
	Approve              ApprovalState  `gorm:"column:approve;type:varchar(1);not null;default:'P';index" json:"approve"`
	ApprovedBy           string         `gorm:"column:approved_by;type:varchar(32)" json:"approved_by"`
	ApproveDt            *time.Time     `gorm:"column:approve_dt" json:"approve_dt"`
	RejectionReason      *string        `gorm:"column:rejection_reason;type:varchar(255)" json:"rejection_reason"`
	EntryDate            time.Time      `gorm:"column:entry_date;not null;index" json:"entry_date"`
	OutTime              *time.Time     `gorm:"column:out_time" json:"out_time"`
	CreatedBy            string         `gorm:"column:created_by;type:varchar(32)" json:"created_by"`
	ModifyBy             string         `gorm:"column:modify_by;type:varchar(32)" json:"-"`
}

// TableName specifies the table name for VisitorEntry model
func (VisitorEntry) TableName() string {
	return "vms"
}
