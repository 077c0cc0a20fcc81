package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Plant is a listing. OwnerUsername is a snapshot of the owner at creation
// time and is not kept in sync with later changes. LikesCount always equals
// len(LikedBy); both are only ever changed together by the repository.
type Plant struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	Price         float64   `bson:"price" json:"price"`
	PhotoURL      string    `bson:"photo_url" json:"photo_url"`
	OwnerID       string    `bson:"owner_id" json:"owner_id"`
	OwnerUsername string    `bson:"owner_username" json:"owner_username"`
	LikesCount    int       `bson:"likes_count" json:"likes_count"`
	LikedBy       []string  `bson:"liked_by" json:"liked_by"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

func NewPlant(owner *User, name, description string, price float64, photoURL string) (*Plant, error) {
	if name == "" {
		return nil, errors.New("name must not be empty")
	}
	if photoURL == "" {
		return nil, errors.New("photo_url must not be empty")
	}
	if price < 0 {
		return nil, errors.New("price must not be negative")
	}

	return &Plant{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   description,
		Price:         price,
		PhotoURL:      photoURL,
		OwnerID:       owner.ID,
		OwnerUsername: owner.Username,
		LikesCount:    0,
		LikedBy:       []string{},
		CreatedAt:     time.Now().UTC(),
	}, nil
}

func (p Plant) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
