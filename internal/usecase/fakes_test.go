package usecase

import (
	"context"
	"errors"

	"plant-exchange/internal/domain"
)

// In-memory repositories mirroring the Mongo implementations' behavior,
// including the conditional like/unlike semantics.

type fakeUserRepo struct {
	users []*domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []string) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, *u)
				break
			}
		}
	}
	return out, nil
}

type fakePlantRepo struct {
	plants []*domain.Plant
}

func (r *fakePlantRepo) Create(_ context.Context, plant *domain.Plant) error {
	r.plants = append(r.plants, plant)
	return nil
}

func (r *fakePlantRepo) FindByID(_ context.Context, id string) (*domain.Plant, error) {
	for _, p := range r.plants {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPlantNotFound
}

func (r *fakePlantRepo) FindAll(_ context.Context) ([]domain.Plant, error) {
	out := []domain.Plant{}
	for _, p := range r.plants {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePlantRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Plant, error) {
	out := []domain.Plant{}
	for _, p := range r.plants {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlantRepo) AddLike(ctx context.Context, plantID, userID string) error {
	plant, err := r.FindByID(ctx, plantID)
	if err != nil {
		return err
	}
	if plant.LikedByUser(userID) {
		return domain.ErrAlreadyLiked
	}
	plant.LikedBy = append(plant.LikedBy, userID)
	plant.LikesCount++
	return nil
}

func (r *fakePlantRepo) RemoveLike(ctx context.Context, plantID, userID string) error {
	plant, err := r.FindByID(ctx, plantID)
	if err != nil {
		return err
	}
	for i, id := range plant.LikedBy {
		if id == userID {
			plant.LikedBy = append(plant.LikedBy[:i], plant.LikedBy[i+1:]...)
			plant.LikesCount--
			return nil
		}
	}
	return domain.ErrNotLiked
}

type fakeTokenService struct {
	valid map[string]string // token -> user id
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{valid: map[string]string{}}
}

func (s *fakeTokenService) GenerateToken(userID string) (string, error) {
	token := "token-" + userID
	s.valid[token] = userID
	return token, nil
}

func (s *fakeTokenService) VerifyToken(token string) (string, error) {
	userID, ok := s.valid[token]
	if !ok {
		return "", errors.New("invalid token")
	}
	return userID, nil
}
