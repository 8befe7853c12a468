package contract

// TokenLength is the width of both api keys and access tokens: a random
// UUIDv4 with the dashes stripped, uppercased.
const TokenLength = 32

type AccessRequest struct {
	Username string `query:"username"`
	APIKey   string `query:"api_key"`
}

type AccessTokenResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	IssuedAt string `json:"issued_at"`
}
