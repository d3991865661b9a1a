package accounts

// Store manages data regarding accounts.
type Store interface {
	// List all accounts.
	Accounts() ([]Account, error)

	// Get account details. Returns errors.ErrAccountNotFound for an
	// unknown id.
	Account(id string) (Account, error)

	// List all account ids, ascending.
	AccountIDs() ([]string, error)

	// Replace both session tokens of an account in a single write.
	UpdateTokens(id, accessToken, refreshToken string) error

	// Insert a new account. Used by the provisioning path only.
	InsertAccount(a *Account) error
}
