package dto

// GenerateDemoDataRequest asks for extra display-only statement rows.
// Development environments only.
type GenerateDemoDataRequest struct {
	Count int `json:"count" validate:"required,min=1,max=100"`
	Days  int `json:"days" validate:"omitempty,min=1,max=365"`
}
