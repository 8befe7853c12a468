package contract

// Note keys and values are bounded strings; both cap at 255 characters.
type CreateNoteRequest struct {
	Key   string `json:"note_key" validate:"required,min=1,max=255"`
	Value string `json:"note_value" validate:"required,max=255"`
}

type NoteResponse struct {
	ID          int64  `json:"id"`
	NotebookID  int64  `json:"notebook_id"`
	Key         string `json:"key"`
	Value       string `json:"value"`
	CreatedOn   string `json:"created_on"`
	LastUpdated string `json:"last_updated"`
}
