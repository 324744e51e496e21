package ledger

import (
	"encore.app/settlement/model"
	"encore.app/settlement/repository/approvals"
	"encore.app/settlement/repository/orders"
	"encore.app/settlement/repository/timeentries"
)

func convertDBEntryToModel(db timeentries.TimeEntry) *model.TimeEntry {
	entry := &model.TimeEntry{
		ID:                  db.ID,
		OrderID:             db.OrderID,
		Category:            model.EntryCategory(db.Category),
		Hours:               db.Hours,
		HourlyRateCents:     db.HourlyRateCents,
		BillableAmountCents: db.BillableAmountCents,
		EntryStatus:         model.EntryStatus(db.EntryStatus),
		BillingStatus:       model.BillingStatus(db.BillingStatus),
		CreatedAt:           db.CreatedAt.Time,
		UpdatedAt:           db.UpdatedAt.Time,
	}

	if db.PaymentIntentRef.Valid {
		entry.PaymentIntentRef = &db.PaymentIntentRef.String
	}
	if db.TransferRef.Valid {
		entry.TransferRef = &db.TransferRef.String
	}
	if db.EvidenceRef.Valid {
		entry.EvidenceRef = &db.EvidenceRef.String
	}
	if db.OverrideNote.Valid {
		entry.OverrideNote = &db.OverrideNote.String
	}
	if db.ApprovedBy.Valid {
		entry.ApprovedBy = &db.ApprovedBy.String
	}
	if db.ApprovedAt.Valid {
		entry.ApprovedAt = &db.ApprovedAt.Time
	}
	if db.HeldAt.Valid {
		entry.HeldAt = &db.HeldAt.Time
	}
	if db.TransferredAt.Valid {
		entry.TransferredAt = &db.TransferredAt.Time
	}

	return entry
}

func convertDBEntriesToModel(dbEntries []timeentries.TimeEntry) []model.TimeEntry {
	entries := make([]model.TimeEntry, len(dbEntries))
	for i, db := range dbEntries {
		entries[i] = *convertDBEntryToModel(db)
	}
	return entries
}

func convertDBTrackingToModel(db orders.OrderTracking) *model.OrderTracking {
	return &model.OrderTracking{
		OrderID:           db.OrderID,
		CustomerID:        db.CustomerID,
		ProviderID:        db.ProviderID,
		ProviderAccountID: db.ProviderAccountID,
		PlannedHours:      db.PlannedHours,
		HourlyRateCents:   db.HourlyRateCents,
		Status:            model.TrackingStatus(db.Status),
		Version:           db.Version,
		CreatedAt:         db.CreatedAt.Time,
		UpdatedAt:         db.UpdatedAt.Time,
	}
}

func convertDBApprovalToModel(db approvals.Approval) *model.ApprovalRequest {
	approval := &model.ApprovalRequest{
		ID:                 db.ID,
		OrderID:            db.OrderID,
		ApprovedBy:         db.ApprovedBy,
		TimeEntryIDs:       db.TimeEntryIds,
		TotalHoursApproved: db.TotalHoursApproved,
		TotalAmountCents:   db.TotalAmountCents,
		ResultStatus:       model.ApprovalResult(db.ResultStatus),
		CreatedAt:          db.CreatedAt.Time,
	}

	if db.PaymentIntentRef.Valid {
		approval.PaymentIntentRef = &db.PaymentIntentRef.String
	}
	if db.FailureReason.Valid {
		approval.FailureReason = &db.FailureReason.String
	}

	return approval
}
