package dto

type AbsorbGuidanceRequest struct {
	GuidanceMarkdown string `json:"guidance_markdown" validate:"required"`
}

// CreatedChecklist pairs a created checklist with its items, in source order.
type CreatedChecklist struct {
	Checklist ChecklistResponse       `json:"checklist"`
	Items     []ChecklistItemResponse `json:"items"`
}

type CreatedItems struct {
	Checklists          []CreatedChecklist `json:"checklists"`
	ComplianceChecklist *CreatedChecklist  `json:"compliance_checklist,omitempty"`
	Documents           []DocumentResponse `json:"documents"`
}

// AbsorbGuidanceResponse distinguishes the three UI outcomes: fresh creation,
// already existed, and failure. NavigateTo hints which new section the UI
// should show first.
type AbsorbGuidanceResponse struct {
	Success        bool         `json:"success"`
	AlreadyExisted bool         `json:"already_existed"`
	CreatedItems   CreatedItems `json:"created_items"`
	NavigateTo     string       `json:"navigate_to,omitempty"`
}
