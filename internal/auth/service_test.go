package auth_test

import (
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/testutil"
	"github.com/sharath018/event-management-backend/utils"
)

func validInput() auth.RegisterInput {
	return auth.RegisterInput{
		Username:  "ada_l",
		Password:  "secret123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+15550100",
	}
}

func newService(t *testing.T) (auth.Service, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return testutil.AuthService(db, testutil.Config()), db
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, db := newService(t)

	u, err := svc.Register(t.Context(), validInput(), "127.0.0.1")
	require.NoError(t, err)

	var stored auth.User
	require.NoError(t, db.First(&stored, u.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NotEmpty(t, stored.Password)
	assert.False(t, stored.DateJoined.IsZero())

	_, err = svc.Verify(t.Context(), "ada_l", "secret123")
	assert.NoError(t, err)
}

func TestRegisterValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *auth.RegisterInput)
		message string
	}{
		{
			name: "bad username wins over everything",
			mutate: func(in *auth.RegisterInput) {
				in.Username = "ada lovelace"
				in.FirstName = "A"
				in.Email = "nope"
				in.Password = "x"
			},
			message: "username may only contain letters, digits and underscores",
		},
		{
			name: "short first name before email",
			mutate: func(in *auth.RegisterInput) {
				in.FirstName = "Al"
				in.Email = "nope"
			},
			message: "first_name must be at least 3 characters",
		},
		{
			name: "email before password",
			mutate: func(in *auth.RegisterInput) {
				in.Email = "ada@example"
				in.Password = "x"
			},
			message: "email is not correct",
		},
		{
			name:    "short password",
			mutate:  func(in *auth.RegisterInput) { in.Password = "12345" },
			message: "password length must be at least 6",
		},
		{
			name:    "missing username",
			mutate:  func(in *auth.RegisterInput) { in.Username = "" },
			message: "username may only contain letters, digits and underscores",
		},
		{
			name:    "password longer than bcrypt accepts",
			mutate:  func(in *auth.RegisterInput) { in.Password = strings.Repeat("p", 80) },
			message: "password must be at most 72 bytes",
		},
		{
			name:    "multibyte password over the byte limit",
			mutate:  func(in *auth.RegisterInput) { in.Password = strings.Repeat("é", 40) },
			message: "password must be at most 72 bytes",
		},
	}

	svc, _ := newService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := svc.Register(t.Context(), in, "")
			require.Error(t, err)
			assert.Equal(t, utils.KindValidation, utils.KindOf(err))
			assert.Equal(t, tt.message, utils.MessageOf(err))
		})
	}
}

func TestRegisterAcceptsPasswordAtByteLimit(t *testing.T) {
	svc, _ := newService(t)

	in := validInput()
	in.Password = strings.Repeat("p", 72)
	_, err := svc.Register(t.Context(), in, "")
	require.NoError(t, err)

	_, err = svc.Verify(t.Context(), in.Username, in.Password)
	assert.NoError(t, err)
}

func TestRegisterConflicts(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Register(t.Context(), validInput(), "")
	require.NoError(t, err)

	sameName := validInput()
	sameName.Email = "other@example.com"
	_, err = svc.Register(t.Context(), sameName, "")
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.Equal(t, "username already exists", utils.MessageOf(err))

	sameEmail := validInput()
	sameEmail.Username = "ada_two"
	_, err = svc.Register(t.Context(), sameEmail, "")
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.Equal(t, "email already registered", utils.MessageOf(err))
}

func TestFirstUserBecomesAdmin(t *testing.T) {
	svc, _ := newService(t)

	first := testutil.MustRegister(t, svc, "alice")
	second := testutil.MustRegister(t, svc, "bob")

	assert.True(t, first.IsAdmin)
	assert.False(t, second.IsAdmin)

	reloaded, err := svc.GetUserByID(t.Context(), first.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsAdmin)
}

func TestConcurrentRegistrationsElectOneAdmin(t *testing.T) {
	svc, db := newService(t)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := validInput()
			in.Username = "user" + strconv.Itoa(i)
			in.Email = "user" + strconv.Itoa(i) + "@example.com"
			_, errs[i] = svc.Register(t.Context(), in, "")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	var admins int64
	require.NoError(t, db.Model(&auth.User{}).Where("is_admin = ?", true).Count(&admins).Error)
	assert.EqualValues(t, 1, admins)
}

func TestVerifyRejectsBadCredentialsUniformly(t *testing.T) {
	svc, _ := newService(t)
	testutil.MustRegister(t, svc, "alice")

	_, wrongPassword := svc.Verify(t.Context(), "alice", "not-it")
	_, unknownUser := svc.Verify(t.Context(), "nobody", "secret123")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	assert.Equal(t, utils.KindUnauthenticated, utils.KindOf(wrongPassword))
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.GetUserByID(t.Context(), 999999)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestListUsersOrderedAndNeverNil(t *testing.T) {
	svc, _ := newService(t)

	users, err := svc.ListUsers(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	testutil.MustRegister(t, svc, "bob")
	testutil.MustRegister(t, svc, "alice")

	users, err = svc.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[0].Username)
	assert.Equal(t, "alice", users[1].Username)
}

func TestPromoteAdmin(t *testing.T) {
	svc, _ := newService(t)
	admin := testutil.MustRegister(t, svc, "alice")
	user := testutil.MustRegister(t, svc, "bob")

	_, err := svc.PromoteAdmin(t.Context(), *user, admin.ID, "")
	require.Error(t, err)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
	assert.Equal(t, "You are not an admin", utils.MessageOf(err))

	_, err = svc.PromoteAdmin(t.Context(), *admin, 424242, "")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	promoted, err := svc.PromoteAdmin(t.Context(), *admin, user.ID, "")
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	// promoting twice is harmless
	_, err = svc.PromoteAdmin(t.Context(), *admin, user.ID, "")
	assert.NoError(t, err)
}

func TestPromoteByUsername(t *testing.T) {
	svc, _ := newService(t)
	testutil.MustRegister(t, svc, "alice")
	testutil.MustRegister(t, svc, "bob")

	u, err := svc.PromoteByUsername(t.Context(), "bob")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)

	_, err = svc.PromoteByUsername(t.Context(), "carol")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _ := newService(t)
	u := testutil.MustRegister(t, svc, "alice")

	token, ttl, err := svc.IssueToken(*u)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	id, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestParseTokenRejects(t *testing.T) {
	svc, _ := newService(t)
	secret := []byte(testutil.Config().JWTAccessSecret)

	sign := func(claims jwt.Claims, key []byte) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}

	expired := sign(jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}, secret)
	wrongKey := sign(jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, []byte("someone-else"))
	noExpiry := sign(jwt.RegisteredClaims{Subject: "1"}, secret)
	badSubject := sign(jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, secret)

	for name, token := range map[string]string{
		"expired":     expired,
		"wrong key":   wrongKey,
		"no expiry":   noExpiry,
		"bad subject": badSubject,
		"garbage":     "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(token)
			require.Error(t, err)
			assert.Equal(t, utils.KindUnauthenticated, utils.KindOf(err))
		})
	}
}
