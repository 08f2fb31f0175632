package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authProbe(t *testing.T, authorization string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var userID string
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w, userID
}

func TestAuth_ValidToken(t *testing.T) {
	w, userID := authProbe(t, "Bearer "+signToken(t, testSecret, "manager-1"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "manager-1", userID)
}

func TestAuth_MissingHeader(t *testing.T) {
	w, _ := authProbe(t, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	w, _ := authProbe(t, "Token abc")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	w, _ := authProbe(t, "Bearer "+signToken(t, "other-secret", "manager-1"))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTranscript(t *testing.T) {
	require.Error(t, ValidateTranscript(""))
	require.Error(t, ValidateTranscript(string([]byte{0xff, 0xfe})))
	require.NoError(t, ValidateTranscript("Customer: hello"))
}

func TestValidateRecordID(t *testing.T) {
	require.Error(t, ValidateRecordID(""))
	require.NoError(t, ValidateRecordID("1714527000000"))
}
