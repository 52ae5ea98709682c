package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tazhibayda/tour-service/internal/domain"
	httpapi "github.com/tazhibayda/tour-service/internal/http"
	"github.com/tazhibayda/tour-service/internal/queue"
	"github.com/tazhibayda/tour-service/internal/repo"
)

const testSecret = "test_secret"

type testEnv struct {
	T      *testing.T
	Store  *fakeStore
	Router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fs := &fakeStore{}
	h := httpapi.NewHandler(fs, testSecret, queue.NewNoop())
	return &testEnv{T: t, Store: fs, Router: httpapi.NewRouter(h)}
}

// do runs a request through the real router and decodes nothing.
func (e *testEnv) do(method, path, body string, hdr map[string]string) *httptest.ResponseRecorder {
	e.T.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	e.Router.ServeHTTP(w, req)
	return w
}

// token obtains a bearer token from POST /jwt, the same way the frontend does.
func (e *testEnv) token(email string) string {
	e.T.Helper()
	w := e.do("POST", "/jwt", `{"email":"`+email+`"}`, nil)
	if w.Code != 200 {
		e.T.Fatalf("jwt: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		e.T.Fatalf("jwt resp: %v %s", err, w.Body.String())
	}
	return resp.Token
}

func bearer(tok string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + tok}
}

// fakeStore is an in-memory stand-in for *repo.Store with the same observable
// semantics, including the absence-not-zero pagination contract.
type fakeStore struct {
	mu        sync.Mutex
	users     []domain.User
	packages  []domain.Package
	tourTypes []domain.TourType
	bookings  []domain.Booking
	wishlist  []domain.WishlistItem
	stories   []domain.Story
}

func paginate[T any](in []T, p *repo.Page) []T {
	if p == nil {
		return in
	}
	if p.Skip >= int64(len(in)) {
		return []T{}
	}
	in = in[p.Skip:]
	// zero means no limit, same as the mongo driver
	if p.Limit <= 0 || p.Limit >= int64(len(in)) {
		return in
	}
	return in[:p.Limit]
}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func (f *fakeStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateUser(ctx context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Email == u.Email {
			return repo.ErrEmailExists
		}
	}
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeStore) ListUsers(ctx context.Context, role, search string, p *repo.Page) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.User{}
	for _, u := range f.users {
		if role != "" && u.Role != role {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Email), strings.ToLower(search)) {
			continue
		}
		out = append(out, u)
	}
	return paginate(out, p), nil
}

func (f *fakeStore) ListGuides(ctx context.Context) ([]domain.User, error) {
	return f.ListUsers(ctx, domain.RoleTourGuide, "", nil)
}

func (f *fakeStore) SetUserRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == id {
			modified := int64(0)
			if f.users[i].Role != role {
				f.users[i].Role = role
				modified = 1
			}
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeStore) UpdateUserProfile(ctx context.Context, email string, p domain.Profile) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Email == email {
			f.users[i].Profile = p
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeStore) DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) CountUsers(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeStore) CreatePackage(ctx context.Context, p *domain.Package) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.packages = append(f.packages, *p)
	return nil
}

func (f *fakeStore) ListPackages(ctx context.Context) ([]domain.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Package{}, f.packages...), nil
}

func (f *fakeStore) ListPackagesByType(ctx context.Context, tourType string) ([]domain.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Package{}
	for _, p := range f.packages {
		if p.TourType == tourType {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) FindPackageByID(ctx context.Context, id primitive.ObjectID) (*domain.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.packages {
		if f.packages[i].ID == id {
			p := f.packages[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListTourTypes(ctx context.Context) ([]domain.TourType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.TourType{}, f.tourTypes...), nil
}

func (f *fakeStore) CreateBooking(ctx context.Context, b *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = primitive.NewObjectID()
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeStore) ListBookingsByEmail(ctx context.Context, email string, p *repo.Page) ([]domain.Booking, error) {
	return f.filterBookings(func(b domain.Booking) bool { return b.Email == email }, p)
}

func (f *fakeStore) ListBookingsByGuide(ctx context.Context, name string, p *repo.Page) ([]domain.Booking, error) {
	return f.filterBookings(func(b domain.Booking) bool { return b.TourGuide == name }, p)
}

func (f *fakeStore) filterBookings(keep func(domain.Booking) bool, p *repo.Page) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Booking{}
	for _, b := range f.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return paginate(out, p), nil
}

func (f *fakeStore) SetBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			modified := int64(0)
			if f.bookings[i].Status != status {
				f.bookings[i].Status = status
				modified = 1
			}
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeStore) DeleteBooking(ctx context.Context, id primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) CountBookings(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookings)), nil
}

func (f *fakeStore) AddWishlist(ctx context.Context, w *domain.WishlistItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.ID = primitive.NewObjectID()
	f.wishlist = append(f.wishlist, *w)
	return nil
}

func (f *fakeStore) ListWishlistByEmail(ctx context.Context, email string, p *repo.Page) ([]domain.WishlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.WishlistItem{}
	for _, w := range f.wishlist {
		if w.UserEmail == email {
			out = append(out, w)
		}
	}
	return paginate(out, p), nil
}

func (f *fakeStore) DeleteWishlist(ctx context.Context, id primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.wishlist {
		if f.wishlist[i].ID == id {
			f.wishlist = append(f.wishlist[:i], f.wishlist[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) CountWishlist(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.wishlist)), nil
}

func (f *fakeStore) CreateStory(ctx context.Context, st *domain.Story) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st.ID = primitive.NewObjectID()
	f.stories = append(f.stories, *st)
	return nil
}

func (f *fakeStore) ListStories(ctx context.Context) ([]domain.Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Story{}, f.stories...), nil
}

func (f *fakeStore) FindStoryByID(ctx context.Context, id primitive.ObjectID) (*domain.Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.stories {
		if f.stories[i].ID == id {
			st := f.stories[i]
			return &st, nil
		}
	}
	return nil, nil
}

// seedUser puts a user straight into the store, bypassing the signup route.
func (f *fakeStore) seedUser(email, role string) domain.User {
	u := domain.User{ID: primitive.NewObjectID(), Email: email, Role: role}
	f.mu.Lock()
	f.users = append(f.users, u)
	f.mu.Unlock()
	return u
}
