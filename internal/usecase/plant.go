package usecase

import (
	"context"

	"plant-exchange/internal/domain"
)

type PlantRepository interface {
	Create(ctx context.Context, plant *domain.Plant) error
	FindByID(ctx context.Context, id string) (*domain.Plant, error)
	FindAll(ctx context.Context) ([]domain.Plant, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Plant, error)
	AddLike(ctx context.Context, plantID, userID string) error
	RemoveLike(ctx context.Context, plantID, userID string) error
}

// PlantWithLike is a plant annotated with whether the requesting user has
// liked it. The flag is derived per request, never stored.
type PlantWithLike struct {
	domain.Plant
	IsLikedByUser bool
}

// Liker is one resolved entry of a plant's liker set.
type Liker struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type PlantLikes struct {
	PlantID    string
	LikesCount int
	LikedBy    []Liker
}

type PlantUsecase struct {
	plants PlantRepository
	users  UserRepository
}

func NewPlantUsecase(plants PlantRepository, users UserRepository) *PlantUsecase {
	return &PlantUsecase{plants: plants, users: users}
}

func (uc *PlantUsecase) Create(ctx context.Context, owner *domain.User, name, description string, price float64, photoURL string) (*domain.Plant, error) {
	plant, err := domain.NewPlant(owner, name, description, price, photoURL)
	if err != nil {
		return nil, err
	}
	if err := uc.plants.Create(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (uc *PlantUsecase) ListAll(ctx context.Context, requesterID string) ([]PlantWithLike, error) {
	plants, err := uc.plants.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PlantWithLike, 0, len(plants))
	for _, p := range plants {
		out = append(out, PlantWithLike{
			Plant:         p,
			IsLikedByUser: p.LikedByUser(requesterID),
		})
	}
	return out, nil
}

func (uc *PlantUsecase) ListOwned(ctx context.Context, requesterID string) ([]domain.Plant, error) {
	return uc.plants.FindByOwner(ctx, requesterID)
}

func (uc *PlantUsecase) Like(ctx context.Context, requesterID, plantID string) error {
	return uc.plants.AddLike(ctx, plantID, requesterID)
}

func (uc *PlantUsecase) Unlike(ctx context.Context, requesterID, plantID string) error {
	return uc.plants.RemoveLike(ctx, plantID, requesterID)
}

// Likes resolves the liker set to usernames. Only the plant's owner may see it.
func (uc *PlantUsecase) Likes(ctx context.Context, requesterID, plantID string) (*PlantLikes, error) {
	plant, err := uc.plants.FindByID(ctx, plantID)
	if err != nil {
		return nil, err
	}
	if plant.OwnerID != requesterID {
		return nil, domain.ErrNotOwner
	}

	likers := []Liker{}
	if len(plant.LikedBy) > 0 {
		users, err := uc.users.FindByIDs(ctx, plant.LikedBy)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			likers = append(likers, Liker{ID: u.ID, Username: u.Username})
		}
	}

	return &PlantLikes{
		PlantID:    plant.ID,
		LikesCount: plant.LikesCount,
		LikedBy:    likers,
	}, nil
}
