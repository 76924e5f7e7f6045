package dto

type DashboardSummaryResponse struct {
	ChecklistCount        int64 `json:"checklist_count"`
	OpenItemCount         int64 `json:"open_item_count"`
	RequiredDocumentCount int64 `json:"required_document_count"`
	PendingAlertCount     int64 `json:"pending_alert_count"`
}
