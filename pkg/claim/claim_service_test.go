package claim

import (
	"context"
	"sync"
	"testing"
	"time"

	"mealbridge-backend/domain"
	"mealbridge-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStore backs both fake repositories so the claim transaction can touch
// food state the way the real transactional repository does.
type fakeStore struct {
	mu     sync.Mutex
	foods  map[uuid.UUID]*entities.Food
	claims map[uuid.UUID]*entities.Claim
	users  map[uuid.UUID]*entities.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		foods:  make(map[uuid.UUID]*entities.Food),
		claims: make(map[uuid.UUID]*entities.Claim),
		users:  make(map[uuid.UUID]*entities.User),
	}
}

func (s *fakeStore) copyFood(food *entities.Food) *entities.Food {
	cp := *food
	if food.Creator != nil {
		creator := *food.Creator
		cp.Creator = &creator
	}
	return &cp
}

type fakeFoodRepository struct {
	store *fakeStore
}

func (r *fakeFoodRepository) AddFood(_ context.Context, food *entities.Food) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.foods[food.ID] = r.store.copyFood(food)
	return nil
}

func (r *fakeFoodRepository) GetFoodByID(_ context.Context, id string) (*entities.Food, error) {
	foodID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	food, ok := r.store.foods[foodID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	cp := r.store.copyFood(food)
	if creator, ok := r.store.users[food.CreatedBy]; ok {
		cr := *creator
		cp.Creator = &cr
	}
	return cp, nil
}

func (r *fakeFoodRepository) UpdateFood(_ context.Context, food *entities.Food) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.foods[food.ID] = r.store.copyFood(food)
	return nil
}

func (r *fakeFoodRepository) DeleteFood(_ context.Context, id string) error {
	foodID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.foods, foodID)
	return nil
}

func (r *fakeFoodRepository) GetAvailableFoods(_ context.Context) ([]*entities.Food, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var foods []*entities.Food
	now := time.Now()
	for _, food := range r.store.foods {
		if food.Status != "available" {
			continue
		}
		if food.ExpiryDate != nil && !food.ExpiryDate.After(now) {
			continue
		}
		foods = append(foods, r.store.copyFood(food))
	}
	return foods, nil
}

func (r *fakeFoodRepository) GetFoodsByCreator(_ context.Context, userID string) ([]*entities.Food, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var foods []*entities.Food
	for _, food := range r.store.foods {
		if food.CreatedBy.String() == userID {
			foods = append(foods, r.store.copyFood(food))
		}
	}
	return foods, nil
}

func (r *fakeFoodRepository) MarkClaimed(_ *gorm.DB, foodID, claimantID string) (int64, error) {
	id, err := uuid.Parse(foodID)
	if err != nil {
		return 0, err
	}
	claimant, err := uuid.Parse(claimantID)
	if err != nil {
		return 0, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	food, ok := r.store.foods[id]
	if !ok || food.Status != "available" {
		return 0, nil
	}
	food.Status = "claimed"
	food.ClaimedBy = &claimant
	return 1, nil
}

func (r *fakeFoodRepository) MarkAvailable(_ *gorm.DB, foodID, claimantID string) (int64, error) {
	id, err := uuid.Parse(foodID)
	if err != nil {
		return 0, err
	}
	claimant, err := uuid.Parse(claimantID)
	if err != nil {
		return 0, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	food, ok := r.store.foods[id]
	if !ok || food.ClaimedBy == nil || *food.ClaimedBy != claimant {
		return 0, nil
	}
	food.Status = "available"
	food.ClaimedBy = nil
	return 1, nil
}

type fakeClaimRepository struct {
	store *fakeStore
}

func (r *fakeClaimRepository) ClaimFood(_ context.Context, claim *entities.Claim) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	food, ok := r.store.foods[claim.FoodID]
	if !ok || food.Status != "available" {
		return false, nil
	}

	claimant := claim.ClaimedBy
	food.Status = "claimed"
	food.ClaimedBy = &claimant

	stored := *claim
	stored.CreatedAt = time.Now()
	r.store.claims[claim.ID] = &stored
	return true, nil
}

func (r *fakeClaimRepository) GetClaimByID(_ context.Context, id string) (*entities.Claim, error) {
	claimID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	claim, ok := r.store.claims[claimID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	cp := *claim
	if food, ok := r.store.foods[claim.FoodID]; ok {
		cp.Food = r.store.copyFood(food)
	}
	if claimant, ok := r.store.users[claim.ClaimedBy]; ok {
		user := *claimant
		cp.Claimant = &user
	}
	return &cp, nil
}

func (r *fakeClaimRepository) GetClaimsByUser(_ context.Context, userID string) ([]*entities.Claim, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var claims []*entities.Claim
	for _, claim := range r.store.claims {
		if claim.ClaimedBy.String() == userID {
			cp := *claim
			claims = append(claims, &cp)
		}
	}
	return claims, nil
}

func (r *fakeClaimRepository) GetAllClaims(_ context.Context) ([]*entities.Claim, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var claims []*entities.Claim
	for _, claim := range r.store.claims {
		cp := *claim
		claims = append(claims, &cp)
	}
	return claims, nil
}

func (r *fakeClaimRepository) ReleaseClaim(_ context.Context, claim *entities.Claim) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.claims[claim.ID]; !ok {
		return nil
	}
	delete(r.store.claims, claim.ID)

	food, ok := r.store.foods[claim.FoodID]
	if !ok || food.ClaimedBy == nil || *food.ClaimedBy != claim.ClaimedBy {
		return nil
	}
	food.Status = "available"
	food.ClaimedBy = nil
	return nil
}

func newTestService() (ClaimService, *fakeStore) {
	store := newFakeStore()
	return NewClaimService(&fakeClaimRepository{store: store}, &fakeFoodRepository{store: store}), store
}

func seedFood(store *fakeStore, owner uuid.UUID, status string) *entities.Food {
	tomorrow := time.Now().Add(24 * time.Hour)
	food := &entities.Food{
		ID:             uuid.New(),
		CreatedBy:      owner,
		Name:           "Rice Pack",
		Quantity:       10,
		Type:           "veg",
		ExpiryDate:     &tomorrow,
		PickupLocation: "Narela",
		Status:         status,
	}
	store.foods[food.ID] = food
	return food
}

func TestCreateClaim(t *testing.T) {
	owner := uuid.New()
	ngo := uuid.New()

	t.Run("claims available food", func(t *testing.T) {
		service, store := newTestService()
		food := seedFood(store, owner, "available")

		res, err := service.CreateClaim(context.Background(), domain.CreateClaimRequest{
			FoodID:  food.ID.String(),
			Message: "we can pick up tonight",
		}, ngo.String())
		require.NoError(t, err)

		assert.Equal(t, domain.ClaimStatusPending, res.Status)
		require.NotNil(t, res.Food)
		assert.Equal(t, "claimed", store.foods[food.ID].Status)
		require.NotNil(t, store.foods[food.ID].ClaimedBy)
		assert.Equal(t, ngo, *store.foods[food.ID].ClaimedBy)
		assert.Len(t, store.claims, 1)
	})

	t.Run("conflict when food already claimed", func(t *testing.T) {
		service, store := newTestService()
		food := seedFood(store, owner, "claimed")

		_, err := service.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: food.ID.String()}, ngo.String())
		assert.ErrorIs(t, err, domain.ErrFoodNotAvailable)
		assert.Empty(t, store.claims)
	})

	t.Run("not found for missing food", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: uuid.NewString()}, ngo.String())
		assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	})

	t.Run("cannot claim own food", func(t *testing.T) {
		service, store := newTestService()
		food := seedFood(store, owner, "available")

		_, err := service.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: food.ID.String()}, owner.String())
		assert.ErrorIs(t, err, domain.ErrOwnClaim)
		assert.Equal(t, "available", store.foods[food.ID].Status)
	})
}

func TestGiveUpRoundTrip(t *testing.T) {
	owner := uuid.New()
	ngo := uuid.New()
	secondNGO := uuid.New()

	service, store := newTestService()
	food := seedFood(store, owner, "available")

	created, err := service.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: food.ID.String()}, ngo.String())
	require.NoError(t, err)

	t.Run("only the claimant can give up", func(t *testing.T) {
		err := service.GiveUp(context.Background(), created.ID, secondNGO.String())
		assert.ErrorIs(t, err, domain.ErrNotClaimOwner)
	})

	t.Run("give up restores availability and removes the claim", func(t *testing.T) {
		require.NoError(t, service.GiveUp(context.Background(), created.ID, ngo.String()))

		assert.Equal(t, "available", store.foods[food.ID].Status)
		assert.Nil(t, store.foods[food.ID].ClaimedBy)
		assert.Empty(t, store.claims)
	})

	t.Run("another user can claim afterwards", func(t *testing.T) {
		res, err := service.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: food.ID.String()}, secondNGO.String())
		require.NoError(t, err)
		assert.Equal(t, domain.ClaimStatusPending, res.Status)
		require.NotNil(t, store.foods[food.ID].ClaimedBy)
		assert.Equal(t, secondNGO, *store.foods[food.ID].ClaimedBy)
	})

	t.Run("give up on missing claim", func(t *testing.T) {
		err := service.GiveUp(context.Background(), uuid.NewString(), ngo.String())
		assert.ErrorIs(t, err, domain.ErrClaimNotFound)
	})
}

func TestConcurrentClaimsExactlyOneWinner(t *testing.T) {
	owner := uuid.New()

	service, store := newTestService()
	food := seedFood(store, owner, "available")

	const claimants = 10

	var wg sync.WaitGroup
	errs := make([]error, claimants)

	for i := 0; i < claimants; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: food.ID.String()}, uuid.NewString())
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domain.ErrFoodNotAvailable)
		}
	}

	assert.Equal(t, 1, winners)
	assert.Len(t, store.claims, 1)
	assert.Equal(t, "claimed", store.foods[food.ID].Status)
}

func TestStaleReleaseLeavesNewClaimAlone(t *testing.T) {
	owner := uuid.New()
	first := uuid.New()
	second := uuid.New()

	service, store := newTestService()
	food := seedFood(store, owner, "available")

	created, err := service.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: food.ID.String()}, first.String())
	require.NoError(t, err)

	var stale entities.Claim
	for _, c := range store.claims {
		stale = *c
	}

	require.NoError(t, service.GiveUp(context.Background(), created.ID, first.String()))

	next, err := service.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: food.ID.String()}, second.String())
	require.NoError(t, err)

	// A release that raced with the give-up above arrives late. Its claim
	// row is gone, so the food held by the newer claimant must not move.
	repo := &fakeClaimRepository{store: store}
	require.NoError(t, repo.ReleaseClaim(context.Background(), &stale))

	assert.Equal(t, "claimed", store.foods[food.ID].Status)
	require.NotNil(t, store.foods[food.ID].ClaimedBy)
	assert.Equal(t, second, *store.foods[food.ID].ClaimedBy)

	nextID, err := uuid.Parse(next.ID)
	require.NoError(t, err)
	assert.Contains(t, store.claims, nextID)

	err = service.GiveUp(context.Background(), created.ID, first.String())
	assert.ErrorIs(t, err, domain.ErrClaimNotFound)
}

func TestGetClaims(t *testing.T) {
	owner := uuid.New()
	ngo := uuid.New()

	service, store := newTestService()
	first := seedFood(store, owner, "available")
	second := seedFood(store, owner, "available")

	_, err := service.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: first.ID.String()}, ngo.String())
	require.NoError(t, err)
	_, err = service.CreateClaim(context.Background(), domain.CreateClaimRequest{FoodID: second.ID.String()}, uuid.NewString())
	require.NoError(t, err)

	mine, err := service.GetMyClaims(context.Background(), ngo.String())
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := service.GetAllClaims(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	res, err := service.GetClaimByID(context.Background(), mine[0].ID)
	require.NoError(t, err)
	require.NotNil(t, res.Food)
	assert.Equal(t, first.ID.String(), res.Food.ID)

	_, err = service.GetClaimByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrClaimNotFound)
}
