package entities

// AccountType identifies which credential domain an account belongs to.
// Email uniqueness is enforced per type, so the same address may exist
// as a founder, an investor and an admin at once.
type AccountType string

const (
	AccountTypeFounder  AccountType = "founder"
	AccountTypeInvestor AccountType = "investor"
	AccountTypeAdmin    AccountType = "admin"
)

// Valid reports whether t is one of the known account types
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeFounder, AccountTypeInvestor, AccountTypeAdmin:
		return true
	}
	return false
}

// TokenInput is the form-encoded payload of POST /token. ClientID
// carries the declared account type.
type TokenInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	ClientID string `form:"client_id"`
}

// TokenResponse is the bearer token issued on successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignInInput is the JSON payload of POST /signin
type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInResponse carries the resolved account record and its type
type SignInResponse struct {
	AccountType AccountType `json:"accountType"`
	Account     interface{} `json:"account"`
	AccessToken string      `json:"accessToken"`
}
