package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plant-exchange/internal/domain"
)

func seedUser(t *testing.T, users *fakeUserRepo, username string) *domain.User {
	t.Helper()
	u, err := domain.NewUser(username, username+"@example.com", "Test123!")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func newPlantFixture(t *testing.T) (*PlantUsecase, *fakeUserRepo, *fakePlantRepo) {
	t.Helper()
	users := &fakeUserRepo{}
	plants := &fakePlantRepo{}
	return NewPlantUsecase(plants, users), users, plants
}

func TestCreatePlant(t *testing.T) {
	uc, users, _ := newPlantFixture(t)
	alice := seedUser(t, users, "alice")

	plant, err := uc.Create(context.Background(), alice, "Fern", "leafy", 9.99, "https://example.com/fern.jpg")
	require.NoError(t, err)

	assert.Equal(t, alice.ID, plant.OwnerID)
	assert.Equal(t, "alice", plant.OwnerUsername)
	assert.Equal(t, 0, plant.LikesCount)
	assert.Empty(t, plant.LikedBy)
}

func TestListAllAnnotatesLikes(t *testing.T) {
	uc, users, _ := newPlantFixture(t)
	ctx := context.Background()
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	plant, err := uc.Create(ctx, alice, "Fern", "", 5, "https://example.com/f.jpg")
	require.NoError(t, err)
	require.NoError(t, uc.Like(ctx, bob.ID, plant.ID))

	forBob, err := uc.ListAll(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, forBob, 1)
	assert.True(t, forBob[0].IsLikedByUser)

	forAlice, err := uc.ListAll(ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, forAlice[0].IsLikedByUser)
}

func TestListOwned(t *testing.T) {
	uc, users, _ := newPlantFixture(t)
	ctx := context.Background()
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	_, err := uc.Create(ctx, alice, "Fern", "", 5, "https://example.com/f.jpg")
	require.NoError(t, err)
	_, err = uc.Create(ctx, bob, "Cactus", "", 3, "https://example.com/c.jpg")
	require.NoError(t, err)

	owned, err := uc.ListOwned(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Fern", owned[0].Name)
}

func TestLikeUnlikeInverse(t *testing.T) {
	uc, users, plants := newPlantFixture(t)
	ctx := context.Background()
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	plant, err := uc.Create(ctx, alice, "Fern", "", 9.99, "https://example.com/f.jpg")
	require.NoError(t, err)

	require.NoError(t, uc.Like(ctx, bob.ID, plant.ID))
	stored, err := plants.FindByID(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.LikesCount)
	assert.Equal(t, []string{bob.ID}, stored.LikedBy)

	// Repeating the like leaves state unchanged.
	assert.ErrorIs(t, uc.Like(ctx, bob.ID, plant.ID), domain.ErrAlreadyLiked)
	assert.Equal(t, 1, stored.LikesCount)

	require.NoError(t, uc.Unlike(ctx, bob.ID, plant.ID))
	assert.Equal(t, 0, stored.LikesCount)
	assert.Empty(t, stored.LikedBy)

	assert.ErrorIs(t, uc.Unlike(ctx, bob.ID, plant.ID), domain.ErrNotLiked)
}

func TestLikeUnknownPlant(t *testing.T) {
	uc, users, _ := newPlantFixture(t)
	bob := seedUser(t, users, "bob")

	assert.ErrorIs(t, uc.Like(context.Background(), bob.ID, "missing"), domain.ErrPlantNotFound)
	assert.ErrorIs(t, uc.Unlike(context.Background(), bob.ID, "missing"), domain.ErrPlantNotFound)
}

func TestLikesOwnerOnly(t *testing.T) {
	uc, users, _ := newPlantFixture(t)
	ctx := context.Background()
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	plant, err := uc.Create(ctx, alice, "Fern", "", 9.99, "https://example.com/f.jpg")
	require.NoError(t, err)
	require.NoError(t, uc.Like(ctx, bob.ID, plant.ID))

	likes, err := uc.Likes(ctx, alice.ID, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, plant.ID, likes.PlantID)
	assert.Equal(t, 1, likes.LikesCount)
	require.Len(t, likes.LikedBy, 1)
	assert.Equal(t, "bob", likes.LikedBy[0].Username)

	_, err = uc.Likes(ctx, bob.ID, plant.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = uc.Likes(ctx, alice.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
}

func TestLikesEmptySet(t *testing.T) {
	uc, users, _ := newPlantFixture(t)
	ctx := context.Background()
	alice := seedUser(t, users, "alice")

	plant, err := uc.Create(ctx, alice, "Fern", "", 9.99, "https://example.com/f.jpg")
	require.NoError(t, err)

	likes, err := uc.Likes(ctx, alice.ID, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, likes.LikesCount)
	assert.Empty(t, likes.LikedBy)
}
