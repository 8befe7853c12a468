package entity

type Notebook struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null;size:255;uniqueIndex:idx_notebooks_user_name"`
	UserID    int64  `gorm:"not null;uniqueIndex:idx_notebooks_user_name"` // References: users(id)
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:ID"`
}
