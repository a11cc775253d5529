package userRepo

import (
	"smartpark/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	GetAll() ([]models.User, error)
	Count() (int64, error)
}
