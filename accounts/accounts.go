// Package accounts provides storage and masked presentation of
// stored PayPay account records.
package accounts

// Account struct represents a storable PayPay account.
// Credential fields are opaque secrets and are excluded from JSON.
type Account struct {
	ID           string `json:"id" gorm:"column:id;primaryKey"`
	Phone        string `json:"-" gorm:"column:phone;not null"`
	Pass         string `json:"-" gorm:"column:pass;not null"`
	DeviceUUID   string `json:"-" gorm:"column:duuid"`
	ClientUUID   string `json:"-" gorm:"column:cuuid"`
	AccessToken  string `json:"-" gorm:"column:actoken"`
	RefreshToken string `json:"-" gorm:"column:rftoken"`
	Proxy        string `json:"-" gorm:"column:proxy"`
}

func (Account) TableName() string {
	return "paypay_accounts"
}

// HasTokens reports whether the record carries a session token pair.
// Tokens are rotated together, a record never holds just one of them.
func (a Account) HasTokens() bool {
	return a.AccessToken != "" && a.RefreshToken != ""
}
