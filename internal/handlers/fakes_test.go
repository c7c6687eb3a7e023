package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"motoparts-api/internal/models"
	"motoparts-api/internal/repository"
)

// Dobles en memoria con la misma semántica de errores que internal/repository.

type memUsers struct {
	mu        sync.Mutex
	users     map[string]*models.User // por uid
	createErr error
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]*models.User{}}
}

func (m *memUsers) put(u models.User) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users[u.UID] = &u
	return &u
}

func (m *memUsers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *memUsers) FindByUIDOrEmail(_ context.Context, uid, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.UID == uid || u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUsers) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if u.UID == user.UID || u.Email == user.Email {
			return repository.ErrUserExists
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	cp := *user
	m.users[user.UID] = &cp
	return nil
}

func (m *memUsers) FindAll(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUsers) FindByUID(_ context.Context, uid string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Update(_ context.Context, uid string, fields map[string]interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return false, repository.ErrUserNotFound
	}
	if email, ok := fields["email"].(string); ok {
		for other, o := range m.users {
			if other != uid && o.Email == email {
				return false, repository.ErrUserExists
			}
		}
	}

	before := *u
	for key, value := range fields {
		s := value.(string)
		switch key {
		case "name":
			u.Name = s
		case "email":
			u.Email = s
		case "photoURL":
			u.PhotoURL = s
		case "phone":
			u.Phone = s
		case "socialAccount":
			u.SocialAccount = s
		case "facebookURL":
			u.FacebookURL = s
		case "role":
			u.Role = s
		}
	}
	return before != *u, nil
}

func (m *memUsers) ToggleRole(_ context.Context, uid string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return "", repository.ErrUserNotFound
	}
	if u.Role == models.RoleAdmin {
		u.Role = models.RoleUser
	} else {
		u.Role = models.RoleAdmin
	}
	return u.Role, nil
}

func (m *memUsers) SetRoleByID(_ context.Context, id, role string) error {
	objID, err := repository.ParseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == objID {
			u.Role = role
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (m *memUsers) DeleteByUID(_ context.Context, uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[uid]; !ok {
		return repository.ErrUserNotFound
	}
	delete(m.users, uid)
	return nil
}

type memProducts struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]*models.Product
	reads    int
	listErr  error
}

func newMemProducts() *memProducts {
	return &memProducts{products: map[primitive.ObjectID]*models.Product{}}
}

func (m *memProducts) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.products)
}

func (m *memProducts) stock(id string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	objID, _ := primitive.ObjectIDFromHex(id)
	return m.products[objID].AvailableQuantity
}

func (m *memProducts) Create(_ context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	product.ID = primitive.NewObjectID()
	cp := *product
	m.products[product.ID] = &cp
	return nil
}

func (m *memProducts) FindAll(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProducts) FindByID(_ context.Context, id string) (*models.Product, error) {
	objID, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	p, ok := m.products[objID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) AdjustStock(_ context.Context, id string, quantity int64, action string) (int64, error) {
	objID, err := repository.ParseID(id)
	if err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[objID]
	if !ok {
		return 0, repository.ErrProductNotFound
	}
	if action == models.StockDeduct {
		if p.AvailableQuantity < quantity {
			return 0, &repository.InsufficientStockError{Current: p.AvailableQuantity}
		}
		p.AvailableQuantity -= quantity
	} else {
		p.AvailableQuantity += quantity
	}
	return p.AvailableQuantity, nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	objID, err := repository.ParseID(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[objID]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, objID)
	return nil
}

type memOrders struct {
	mu     sync.Mutex
	orders []*models.Order
}

func (m *memOrders) Create(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = primitive.NewObjectID()
	cp := *order
	m.orders = append(m.orders, &cp)
	return nil
}

func (m *memOrders) FindAll(_ context.Context, customerEmail string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, 0)
	for _, o := range m.orders {
		if customerEmail == "" || o.CustomerEmail == customerEmail {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderTime > out[j].OrderTime })
	return out, nil
}

func (m *memOrders) find(id string) (*models.Order, error) {
	objID, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	for _, o := range m.orders {
		if o.ID == objID {
			return o, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (m *memOrders) UpdateStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, err := m.find(id)
	if err != nil {
		return err
	}
	o.Status = status
	return nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, err := m.find(id)
	if err != nil {
		return err
	}
	for i := range m.orders {
		if m.orders[i] == o {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			break
		}
	}
	return nil
}

type memReviews struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (m *memReviews) Create(_ context.Context, review *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now().UTC()
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *memReviews) FindAll(_ context.Context) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Review, len(m.reviews))
	for i := range m.reviews {
		out[i] = m.reviews[len(m.reviews)-1-i]
	}
	return out, nil
}
