package contract

type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,max=80,nospaces"`
	FirstName string `json:"first_name" validate:"required,max=80"`
	LastName  string `json:"last_name" validate:"required,max=80"`
	Email     string `json:"email" validate:"required,email"`
}

// UserResponse is the public projection of a user. APIKey is populated only
// in the signup response, the single moment the caller has to learn it; it
// is omitted everywhere else.
type UserResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email_address"`
	APIKey     string `json:"api_key,omitempty"`
	DateJoined string `json:"date_joined"`
}
