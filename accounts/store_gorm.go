package accounts

import (
	goerrors "errors"

	"gorm.io/gorm"

	"github.com/paypay-hub/paypay-admin-bot/errors"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &GormStore{db}
}

func (s *GormStore) Accounts() (aa []Account, err error) {
	err = s.db.Find(&aa).Error
	return
}

func (s *GormStore) Account(id string) (a Account, err error) {
	err = s.db.First(&a, "id = ?", id).Error
	if goerrors.Is(err, gorm.ErrRecordNotFound) {
		err = errors.ErrAccountNotFound
	}
	return
}

func (s *GormStore) AccountIDs() (ids []string, err error) {
	err = s.db.
		Model(&Account{}).
		Order("id asc").
		Pluck("id", &ids).Error
	return
}

// UpdateTokens writes both token columns in one statement so a
// concurrent read observes either the old pair or the new pair.
func (s *GormStore) UpdateTokens(id, accessToken, refreshToken string) error {
	res := s.db.
		Model(&Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"actoken": accessToken,
			"rftoken": refreshToken,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.ErrAccountNotFound
	}
	return nil
}

func (s *GormStore) InsertAccount(a *Account) error {
	return s.db.Create(a).Error
}
