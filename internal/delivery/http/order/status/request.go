package status

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}
