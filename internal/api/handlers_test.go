package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/grindlog/internal/api"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/internal/service"
	"github.com/limbo/grindlog/pkg/entity"
	jwtservice "github.com/limbo/grindlog/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type UserServiceMock struct {
	success bool
	err     error
}

func (usmock *UserServiceMock) ChangeState(success bool, err error) {
	usmock.success = success
	usmock.err = err
}

func (usmock *UserServiceMock) result() (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	if usmock.err != nil {
		return nil, usmock.err
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
	return usmock.result()
}

func (usmock *UserServiceMock) Login(ctx context.Context, name, password string) (*entity.User, error) {
	return usmock.result()
}

func (usmock *UserServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return usmock.result()
}

func (usmock *UserServiceMock) GetByName(ctx context.Context, name string) (*entity.User, error) {
	return usmock.result()
}

func (usmock *UserServiceMock) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	_, err := usmock.result()
	return err
}

var (
	username        = "test_name"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	uid             = uuid.New()
)

func withUID(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "User-ID", id))
}

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	require.NoError(t, err)
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	testCases := []struct {
		Name         string
		Success      bool
		Err          error
		Body         io.Reader
		ExpectedCode int
	}{
		{"registered", true, nil, bytes.NewReader(body), http.StatusCreated},
		{"existed user", false, errorvalues.ErrUserExists, bytes.NewReader(body), http.StatusConflict},
		{"invalid format", false, errorvalues.ErrValidation, bytes.NewReader(body), http.StatusBadRequest},
		{"service error", false, nil, bytes.NewReader(body), http.StatusInternalServerError},
		{"invalid body", true, nil, nil, http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			mock.ChangeState(tc.Success, tc.Err)
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", tc.Body)
			serv.Register(rr, req)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Name:     username,
		Password: password,
	})
	require.NoError(t, err)
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
		JwtService:  jwtservice.New("test_secret", time.Hour),
	})
	t.Run("logged in", func(t *testing.T) {
		mock.ChangeState(true, nil)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp map[string]string
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, uid.String(), resp["uid"])
		assert.NotEmpty(t, resp["token"])
	})
	t.Run("wrong credentials", func(t *testing.T) {
		mock.ChangeState(false, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		mock.ChangeState(false, nil)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}
