package contract

type CreateNotebookRequest struct {
	Name string `json:"notebook_name" validate:"required,min=1,max=255"`
}

type NotebookResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	UserID    int64  `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
