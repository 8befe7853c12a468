package entity

type Note struct {
	ID          int64  `gorm:"primaryKey"`
	NotebookID  int64  `gorm:"not null;uniqueIndex:idx_notes_notebook_key"` // References: notebooks(id)
	Key         string `gorm:"not null;size:255;uniqueIndex:idx_notes_notebook_key"`
	Value       string `gorm:"not null;size:255"`
	CreatedOn   int64  `gorm:"not null"`
	LastUpdated int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Notebook Notebook `gorm:"foreignKey:NotebookID;references:ID"`
}
