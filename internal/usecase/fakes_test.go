package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"estateconnect/internal/domain/entity"
	"estateconnect/internal/domain/repository"
	"estateconnect/pkg/errors"
)

// In-memory repository fakes used across the usecase tests. They mirror
// the Firestore adapters' query semantics closely enough to exercise
// the business rules without a live emulator.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeUserRepo) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.User
	for _, user := range r.users {
		if user.Role == role {
			copied := *user
			result = append(result, &copied)
		}
	}
	return result, nil
}

type fakePropertyRepo struct {
	mu         sync.Mutex
	properties map[string]*entity.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[string]*entity.Property)}
}

func (r *fakePropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *property
	r.properties[property.ID] = &copied
	return nil
}

func (r *fakePropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	copied := *property
	return &copied, nil
}

func (r *fakePropertyRepo) List(ctx context.Context, filter repository.PropertyFilter) ([]*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Property, 0, len(r.properties))
	for _, property := range r.properties {
		if property.ID == "" || property.Title == "" {
			continue
		}
		if filter.Status != "" && property.Status != filter.Status {
			continue
		}
		if filter.Type != "" && property.Type != filter.Type {
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(property.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.MinPrice > 0 && property.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && property.Price > filter.MaxPrice {
			continue
		}
		copied := *property
		result = append(result, &copied)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakePropertyRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Property
	for _, property := range r.properties {
		if property.OwnerID == ownerID {
			copied := *property
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakePropertyRepo) Mutate(ctx context.Context, id string, fn func(*entity.Property) error) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	copied := *property
	if err := fn(&copied); err != nil {
		return nil, err
	}
	copied.UpdatedAt = time.Now()
	r.properties[id] = &copied
	result := copied
	return &result, nil
}

func (r *fakePropertyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[id]; !ok {
		return errors.NotFound("Property", nil)
	}
	delete(r.properties, id)
	return nil
}

func (r *fakePropertyRepo) Dump(ctx context.Context) ([]map[string]interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]map[string]interface{}, 0, len(r.properties))
	for _, property := range r.properties {
		result = append(result, map[string]interface{}{
			"id":     property.ID,
			"title":  property.Title,
			"status": property.Status,
		})
	}
	return result, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*entity.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, errors.NotFound("Booking", nil)
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Booking
	for _, booking := range r.bookings {
		if booking.CustomerID == customerID {
			copied := *booking
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeBookingRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Booking
	for _, booking := range r.bookings {
		if booking.OwnerID == ownerID {
			copied := *booking
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeBookingRepo) Mutate(ctx context.Context, id string, fn func(*entity.Booking) error) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, errors.NotFound("Booking", nil)
	}
	copied := *booking
	if err := fn(&copied); err != nil {
		return nil, err
	}
	copied.UpdatedAt = time.Now()
	r.bookings[id] = &copied
	result := copied
	return &result, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Notification
	for _, notification := range r.notifications {
		if notification.RecipientID == recipientID {
			copied := *notification
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, recipientID, notificationID string) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.notifications {
		if notification.ID == notificationID && notification.RecipientID == recipientID {
			notification.Read = true
			copied := *notification
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Notification", nil)
}

type fakeFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[string]*entity.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]*entity.Favorite)}
}

func favKey(userID, propertyID string) string {
	return userID + "_" + propertyID
}

func (r *fakeFavoriteRepo) Add(ctx context.Context, userID, propertyID string) (*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := favKey(userID, propertyID)
	favorite := &entity.Favorite{
		ID:         key,
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	}
	r.favorites[key] = favorite
	copied := *favorite
	return &copied, nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, userID, propertyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.favorites, favKey(userID, propertyID))
	return nil
}

func (r *fakeFavoriteRepo) IsFavorite(ctx context.Context, userID, propertyID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.favorites[favKey(userID, propertyID)]
	return ok, nil
}

func (r *fakeFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Favorite
	for _, favorite := range r.favorites {
		if favorite.UserID == userID {
			copied := *favorite
			result = append(result, &copied)
		}
	}
	return result, nil
}

// fakeAuthClient stands in for the identity provider. Created users get
// deterministic uids and can sign in with the password they registered
// with.
type fakeAuthClient struct {
	mu        sync.Mutex
	seq       int
	passwords map[string]string // email -> password
	uids      map[string]string // email -> uid
	tokens    map[string]string // token -> uid
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		passwords: make(map[string]string),
		uids:      make(map[string]string),
		tokens:    make(map[string]string),
	}
}

func (c *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.uids[email]; ok {
		return "", fmt.Errorf("EMAIL_EXISTS")
	}
	c.seq++
	uid := fmt.Sprintf("uid-%d", c.seq)
	c.uids[email] = uid
	c.passwords[email] = password
	return uid, nil
}

func (c *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	uid, ok := c.tokens[token]
	if !ok {
		return "", fmt.Errorf("invalid token")
	}
	return uid, nil
}

func (c *fakeAuthClient) GetUserByEmail(ctx context.Context, email string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	uid, ok := c.uids[email]
	if !ok {
		return "", fmt.Errorf("user not found")
	}
	return uid, nil
}

func (c *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored, ok := c.passwords[email]
	if !ok || stored != password {
		return "", fmt.Errorf("INVALID_LOGIN_CREDENTIALS")
	}
	token := fmt.Sprintf("token-%s", c.uids[email])
	c.tokens[token] = c.uids[email]
	return token, nil
}
