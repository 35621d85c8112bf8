package service

import (
	"errors"

	"github.com/Jivang0/mlproject/database"
	"github.com/Jivang0/mlproject/database/model"
	"github.com/Jivang0/mlproject/logger"
	"github.com/Jivang0/mlproject/util/crypto"

	"gorm.io/gorm"
)

// ErrUserExists reports a registration conflict on the email key.
var ErrUserExists = errors.New("user already exists")

type UserService struct{}

func (s *UserService) GetUserByEmail(email string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Register hashes the password and creates the account. Uniqueness is
// enforced by the store's index at write time, so two concurrent
// registrations with the same email cannot both succeed.
func (s *UserService) Register(name string, email string, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password can not be empty")
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}

	db := database.GetDB()
	if err := db.Create(user).Error; err != nil {
		if database.IsDuplicate(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// CheckUser verifies credentials. An unknown email and a wrong password
// produce the same nil outcome.
func (s *UserService) CheckUser(email string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}

	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}

	return user
}
