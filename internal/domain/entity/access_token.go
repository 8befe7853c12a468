package entity

// AccessToken is the opaque bearer credential handed out in exchange for a
// valid (username, api key) pair. The unique index on UserID keeps issuance
// at exactly one live token per user, even under concurrent first requests.
// Tokens do not expire; IssuedAt is recorded so expiry could be added later
// without a migration.
type AccessToken struct {
	ID       int64  `gorm:"primaryKey"`
	Token    string `gorm:"not null;size:32;uniqueIndex"`
	UserID   int64  `gorm:"not null;uniqueIndex"` // References: users(id)
	IssuedAt int64  `gorm:"not null"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:ID"`
}
