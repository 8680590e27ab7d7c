package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/api/internal/dto"
	"github.com/lightbnb/api/internal/entity"
)

type stubUsersRepo struct {
	user *entity.User
	err  error

	lastEmail string
}

func (s *stubUsersRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.lastEmail = email
	return s.user, s.err
}

func (s *stubUsersRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return s.user, s.err
}

func (s *stubUsersRepo) Create(ctx context.Context, name, email, passwordHash string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.User{ID: 1, Name: name, Email: email, Password: passwordHash}, nil
}

type stubReservationsRepo struct {
	details []entity.ReservationDetail
	err     error

	lastGuest int64
	lastLimit int
}

func (s *stubReservationsRepo) ListForGuest(ctx context.Context, guestID int64, limit int) ([]entity.ReservationDetail, error) {
	s.lastGuest, s.lastLimit = guestID, limit
	return s.details, s.err
}

func (s *stubReservationsRepo) Create(ctx context.Context, r *entity.Reservation) (*entity.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := *r
	created.ID = 1
	return &created, nil
}

type stubPropertiesRepo struct {
	listings []entity.PropertyListing
	err      error

	lastCriteria dto.PropertySearch
	lastLimit    int
}

func (s *stubPropertiesRepo) Search(ctx context.Context, criteria dto.PropertySearch, limit int) ([]entity.PropertyListing, error) {
	s.lastCriteria, s.lastLimit = criteria, limit
	return s.listings, s.err
}

func (s *stubPropertiesRepo) Create(ctx context.Context, p *entity.Property) (*entity.Property, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := *p
	created.ID = 99
	return &created, nil
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withIDParam(c echo.Context, path, id string) echo.Context {
	c.SetPath(path)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

