package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"artigos-api/internal/database"
	"artigos-api/internal/model"
	"artigos-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newFormCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	authenticateUser = service.AuthenticateUser
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	codec := service.NewTokenCodec("testsecret", time.Minute)

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newFormCtx(e, "%")
		require.NoError(t, LoginHandler(nil, codec)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid form data")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newFormCtx(e, "email=a@x.com&password=p")
		require.NoError(t, LoginHandler(nil, codec)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		authenticateUser = func(context.Context, database.DB, string, string) (*model.User, error) {
			return nil, service.ErrInvalidCredentials
		}
		ctx, rec := newFormCtx(e, "email=a@x.com&password=wrong")
		require.NoError(t, LoginHandler(nil, codec)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "incorrect credentials")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		authenticateUser = func(_ context.Context, _ database.DB, email, password string) (*model.User, error) {
			require.Equal(t, "a@x.com", email)
			require.Equal(t, "secret123", password)
			return &model.User{ID: 12}, nil
		}
		ctx, rec := newFormCtx(e, "email=a@x.com&password=secret123")
		require.NoError(t, LoginHandler(nil, codec)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "access_token")
		require.Contains(t, rec.Body.String(), `"token_type":"bearer"`)

		// The token must decode back to the authenticated user.
		body := rec.Body.String()
		start := strings.Index(body, `"access_token":"`) + len(`"access_token":"`)
		end := strings.Index(body[start:], `"`)
		userID, err := codec.Decode(body[start : start+end])
		require.NoError(t, err)
		require.Equal(t, 12, userID)
	})

	t.Run("token issue failure", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		authenticateUser = func(context.Context, database.DB, string, string) (*model.User, error) {
			return &model.User{ID: 12}, nil
		}
		emptyCodec := service.NewTokenCodec("", time.Minute)
		ctx, rec := newFormCtx(e, "email=a@x.com&password=p")
		require.NoError(t, LoginHandler(nil, emptyCodec)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
