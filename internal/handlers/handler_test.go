package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mhrakib/aircnc-api/internal/auth"
	"github.com/mhrakib/aircnc-api/internal/models"
)

// In-memory fakes behind the store interfaces, in place of mongo.

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (s *fakeUserStore) Upsert(_ context.Context, email string, user models.User) (*mongo.UpdateResult, error) {
	_, exists := s.users[email]
	if user.Email == "" {
		user.Email = email
	}
	if existing, ok := s.users[email]; ok && user.Role == "" {
		user.Role = existing.Role
	}
	s.users[email] = user
	if exists {
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: primitive.NewObjectID()}, nil
}

func (s *fakeUserStore) All(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &user, nil
}

func (s *fakeUserStore) SetRole(_ context.Context, email, role string) (*mongo.UpdateResult, error) {
	user, ok := s.users[email]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	user.Role = role
	s.users[email] = user
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeRoomStore struct {
	rooms   map[string]models.Room
	inserts int
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: make(map[string]models.Room)}
}

func (s *fakeRoomStore) All(_ context.Context) ([]models.Room, error) {
	rooms := make([]models.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		rooms = append(rooms, r)
	}
	return rooms, nil
}

func (s *fakeRoomStore) FindByID(_ context.Context, id string) (*models.Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &room, nil
}

func (s *fakeRoomStore) Insert(_ context.Context, room models.Room) (*mongo.InsertOneResult, error) {
	s.inserts++
	room.ID = primitive.NewObjectID()
	s.rooms[room.ID.Hex()] = room
	return &mongo.InsertOneResult{InsertedID: room.ID}, nil
}

func (s *fakeRoomStore) Upsert(_ context.Context, id string, room models.Room) (*mongo.UpdateResult, error) {
	_, exists := s.rooms[id]
	s.rooms[id] = room
	if exists {
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
}

func (s *fakeRoomStore) SetBooked(_ context.Context, id string, booked bool) (*mongo.UpdateResult, error) {
	room, ok := s.rooms[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	modified := int64(0)
	if room.Booked != booked {
		modified = 1
	}
	room.Booked = booked
	s.rooms[id] = room
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
}

func (s *fakeRoomStore) FindByHostEmail(_ context.Context, email string) ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	for _, r := range s.rooms {
		if r.Host.Email == email {
			rooms = append(rooms, r)
		}
	}
	return rooms, nil
}

func (s *fakeRoomStore) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	if _, ok := s.rooms[id]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(s.rooms, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type fakeBookingStore struct {
	bookings map[string]models.Booking
	inserts  int
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[string]models.Booking)}
}

func (s *fakeBookingStore) Insert(_ context.Context, booking models.Booking) (*mongo.InsertOneResult, error) {
	s.inserts++
	booking.ID = primitive.NewObjectID()
	s.bookings[booking.ID.Hex()] = booking
	return &mongo.InsertOneResult{InsertedID: booking.ID}, nil
}

func (s *fakeBookingStore) FindByGuestEmail(_ context.Context, email string) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if b.Guest.Email == email {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (s *fakeBookingStore) FindByHostEmail(_ context.Context, email string) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if b.Host == email {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (s *fakeBookingStore) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	if _, ok := s.bookings[id]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(s.bookings, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type sentMail struct {
	Subject string
	Message string
	To      string
}

// fakeMailer records sends synchronously.
type fakeMailer struct {
	sent []sentMail
}

func (m *fakeMailer) Send(subject, message, to string) {
	m.sent = append(m.sent, sentMail{Subject: subject, Message: message, To: to})
}

type fakeIntents struct {
	amounts []int64
	err     error
}

func (g *fakeIntents) CreateIntent(_ context.Context, amountCents int64) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.amounts = append(g.amounts, amountCents)
	return "pi_test_secret", nil
}

type fixture struct {
	handler  *Handler
	users    *fakeUserStore
	rooms    *fakeRoomStore
	bookings *fakeBookingStore
	mail     *fakeMailer
	intents  *fakeIntents
	tokens   *auth.TokenService
}

func newFixture() *fixture {
	f := &fixture{
		users:    newFakeUserStore(),
		rooms:    newFakeRoomStore(),
		bookings: newFakeBookingStore(),
		mail:     &fakeMailer{},
		intents:  &fakeIntents{},
		tokens:   auth.NewTokenService("test-secret"),
	}
	f.handler = NewHandler(f.users, f.rooms, f.bookings, f.tokens, f.mail, f.intents)
	return f
}

// router registers every route without the auth gate; gate behavior has
// its own tests.
func (f *fixture) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := f.handler

	r.POST("/jwt", h.IssueToken)
	r.PUT("/users/:email", h.SaveUser)
	r.GET("/users", h.GetUsers)
	r.GET("/users/role/:email", h.GetUserRole)
	r.PATCH("/users/:email", h.UpdateUserRole)
	r.GET("/rooms", h.GetRooms)
	r.GET("/rooms/:id", h.GetRoom)
	r.POST("/rooms", h.CreateRoom)
	r.PUT("/rooms/:id", h.UpdateRoom)
	r.PATCH("/rooms/status/:id", h.UpdateRoomStatus)
	r.GET("/rooms/host/:email", h.GetHostRooms)
	r.DELETE("/rooms/host/:id", h.DeleteRoom)
	r.GET("/rooms/guest/:email", h.GetGuestRooms)
	r.GET("/bookings/guest/:email", h.GetGuestBookings)
	r.GET("/bookings/host/:email", h.GetHostBookings)
	r.POST("/bookings", h.CreateBooking)
	r.DELETE("/bookings/:id", h.DeleteBooking)
	r.POST("/create-payment-intent", h.CreatePaymentIntent)

	return r
}

func perform(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func httptestRequest(method, path string, body []byte) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
