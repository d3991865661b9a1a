package m20260829

import (
	"gorm.io/gorm"
)

const ID = "20260829"

// Account is a snapshot of the account model at the time of this
// migration. Later model changes must not alter it.
type Account struct {
	ID           string `gorm:"column:id;primaryKey"`
	Phone        string `gorm:"column:phone;not null"`
	Pass         string `gorm:"column:pass;not null"`
	DeviceUUID   string `gorm:"column:duuid"`
	ClientUUID   string `gorm:"column:cuuid"`
	AccessToken  string `gorm:"column:actoken"`
	RefreshToken string `gorm:"column:rftoken"`
	Proxy        string `gorm:"column:proxy"`
}

func (Account) TableName() string {
	return "paypay_accounts"
}

func Migrate(tx *gorm.DB) error {
	return tx.AutoMigrate(&Account{})
}

func Rollback(tx *gorm.DB) error {
	return tx.Migrator().DropTable(&Account{})
}
