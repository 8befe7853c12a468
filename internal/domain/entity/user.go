package entity

// User is a registered account. The APIKey is minted server-side at signup
// and is the only credential accepted when exchanging for an access token.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"not null;uniqueIndex"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	EmailAddress string `gorm:"not null"`
	APIKey       string `gorm:"not null;size:32"`
	DateJoined   int64  `gorm:"not null"`
}
