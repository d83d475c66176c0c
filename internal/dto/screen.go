package dto

// TabSelectRequest names the tabbed screen to navigate to
type TabSelectRequest struct {
	Screen string `json:"screen" validate:"required,screen_id"`
}
