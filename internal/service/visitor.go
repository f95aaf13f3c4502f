package service

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go_vms/internal/httpx"
	"go_vms/internal/model"
	"go_vms/internal/rbac"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// cardNoAttempts bounds the retry loop when concurrent creators collide
// on the same card number.
const cardNoAttempts = 5

// VisitorService runs the visitor entry lifecycle state machine.
type VisitorService struct {
	db *gorm.DB
}

// NewVisitorService creates a new visitor service
func NewVisitorService(db *gorm.DB) *VisitorService {
	return &VisitorService{db: db}
}

// CreateEntryParams holds the inputs for creating a visitor entry.
type CreateEntryParams struct {
	Name                 string
	Mobile               string
	Email                *string
	IDType               string
	IDNumber             string
	Representing         *string
	Purpose              string
	VisitorCategory      string
	EmpMobileNo          string
	FellowVisitors       int
	FellowVisitorDetails []model.FellowVisitor
}

// CreateEntry resolves the host employee, allocates a per-day card number
// and inserts the entry as Pending. The card number is guarded by a unique
// index: the sequence read and insert run in one transaction and retry on
// a duplicate-key conflict, so concurrent creators never share a number.
func (s *VisitorService) CreateEntry(createdBy string, p CreateEntryParams) (*model.VisitorEntry, error) {
	var host model.User
	if err := s.db.Where("emp_mobile_no = ? AND status = ?", p.EmpMobileNo, model.UserStatusActive).
		First(&host).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httpx.ErrNotFound("host employee not found")
		}
		return nil, err
	}

	var details datatypes.JSON
	if len(p.FellowVisitorDetails) > 0 {
		raw, err := json.Marshal(p.FellowVisitorDetails)
		if err != nil {
			return nil, httpx.ErrParamInvalid("invalid fellow visitor details")
		}
		details = datatypes.JSON(raw)
	}

	now := time.Now()
	prefix := now.Format("20060102")

	entry := &model.VisitorEntry{
		Name:                 p.Name,
		Mobile:               p.Mobile,
		Email:                p.Email,
		IDType:               p.IDType,
		IDNumber:             p.IDNumber,
		Representing:         p.Representing,
		Purpose:              p.Purpose,
		VisitorCategory:      p.VisitorCategory,
		EmpID:                host.EmpID,
		EmpName:              host.EmpName,
		EmpMobileNo:          p.EmpMobileNo,
		FellowVisitors:       p.FellowVisitors,
		FellowVisitorDetails: details,
		Approve:              model.ApprovalPending,
		EntryDate:            now,
		CreatedBy:            createdBy,
	}

	for attempt := 0; attempt < cardNoAttempts; attempt++ {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			seq, err := nextCardSequence(tx, prefix)
			if err != nil {
				return err
			}
			entry.CardNo = fmt.Sprintf("%s-%03d", prefix, seq)
			return tx.Create(entry).Error
		})
		if err == nil {
			return entry, nil
		}
		if !isDuplicateKey(err) {
			return nil, err
		}
		entry.ID = 0
	}

	return nil, httpx.ErrStateConflict("could not allocate a card number, please retry")
}

// nextCardSequence returns the next free sequence for the day. MAX over the
// zero-padded suffix keeps retries convergent even when rows carry gaps.
func nextCardSequence(tx *gorm.DB, prefix string) (int, error) {
	var maxCard sql.NullString
	err := tx.Model(&model.VisitorEntry{}).
		Where("card_no LIKE ?", prefix+"-%").
		Select("MAX(card_no)").
		Scan(&maxCard).Error
	if err != nil {
		return 0, err
	}
	if !maxCard.Valid || maxCard.String == "" {
		return 1, nil
	}

	suffix := maxCard.String[strings.LastIndex(maxCard.String, "-")+1:]
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, fmt.Errorf("malformed card number %q: %w", maxCard.String, err)
	}
	return n + 1, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// ListEntries returns the newest entries, capped at 50. Callers without
// VIEW_ALL_VISITORS only see entries they host.
func (s *VisitorService) ListEntries(caller *model.User) ([]model.VisitorEntry, error) {
	q := s.db.Model(&model.VisitorEntry{})
	if !rbac.Has(caller.Role, rbac.CapViewAllVisitors) {
		q = q.Where("emp_id = ?", caller.EmpID)
	}

	var entries []model.VisitorEntry
	if err := q.Order("entry_date DESC").Limit(50).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// PendingApprovals returns the newest pending entries, capped at 20.
// Callers with role USER only see entries they host.
func (s *VisitorService) PendingApprovals(caller *model.User) ([]model.VisitorEntry, error) {
	q := s.db.Model(&model.VisitorEntry{}).Where("approve = ?", model.ApprovalPending)
	if caller.Role == rbac.RoleUser {
		q = q.Where("emp_id = ?", caller.EmpID)
	}

	var entries []model.VisitorEntry
	if err := q.Order("entry_date DESC").Limit(20).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Approve transitions a pending entry to Approved ('A') or Rejected ('R').
// A processed entry never transitions again.
func (s *VisitorService) Approve(actorEmpID, cardNo, action string, rejectionReason *string) error {
	if action != string(model.ApprovalApproved) && action != string(model.ApprovalRejected) {
		return httpx.ErrParamIllegal("invalid action, use 'A' to approve or 'R' to reject")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		updates := map[string]interface{}{
			"approve":     action,
			"approve_dt":  now,
			"approved_by": actorEmpID,
			"modify_by":   actorEmpID,
		}
		if action == string(model.ApprovalRejected) && rejectionReason != nil {
			updates["rejection_reason"] = *rejectionReason
		}

		// Guarded update: only a Pending row transitions.
		res := tx.Model(&model.VisitorEntry{}).
			Where("card_no = ? AND approve = ?", cardNo, model.ApprovalPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.VisitorEntry{}).
				Where("card_no = ?", cardNo).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return httpx.ErrNotFound("visitor entry not found")
			}
			return httpx.ErrStateConflict("entry already processed")
		}
		return nil
	})
}

// Checkout stamps out_time on an approved, still-inside entry. The guarded
// update makes a second checkout fail without touching the first stamp.
func (s *VisitorService) Checkout(actorEmpID, cardNo string) (*model.VisitorEntry, error) {
	var entry model.VisitorEntry

	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&model.VisitorEntry{}).
			Where("card_no = ? AND approve = ? AND out_time IS NULL", cardNo, model.ApprovalApproved).
			Updates(map[string]interface{}{
				"out_time":  now,
				"modify_by": actorEmpID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httpx.ErrNotFound("no active visitor found with that card number")
		}
		return tx.Where("card_no = ?", cardNo).First(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ActiveVisitors returns approved, not-yet-checked-out entries, newest
// approval first, capped at 20.
func (s *VisitorService) ActiveVisitors() ([]model.VisitorEntry, error) {
	var entries []model.VisitorEntry
	err := s.db.Model(&model.VisitorEntry{}).
		Where("approve = ? AND out_time IS NULL", model.ApprovalApproved).
		Order("approve_dt DESC").
		Limit(20).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
