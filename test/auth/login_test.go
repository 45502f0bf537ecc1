package auth

import (
	"testing"
	"time"

	"Backend-FitForm/src/models"
	"Backend-FitForm/src/utils"
	"Backend-FitForm/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// MockAuthService is a mock implementation of the auth service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(email, password string) (*models.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func TestLogin(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Login Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestSuccessfulLogin", func(t *testing.T) {
		timer := test.NewTestTimer("Successful Login")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Successful Login",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Successful Login", duration, 1*time.Millisecond)
		}()

		mockService := new(MockAuthService)

		expectedUser := &models.User{
			Email: "demo@fitform.local",
			Name:  "Demo User",
		}
		expectedToken := "jwt-token-123"

		mockService.On("Login", "demo@fitform.local", "demo1234").Return(expectedUser, expectedToken, nil)

		user, token, err := mockService.Login("demo@fitform.local", "demo1234")

		assert.NoError(t, err)
		assert.Equal(t, expectedUser, user)
		assert.Equal(t, expectedToken, token)
		mockService.AssertExpectations(t)
	})

	t.Run("TestLoginInvalidCredentials", func(t *testing.T) {
		timer := test.NewTestTimer("Login Invalid Credentials")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Login Invalid Credentials",
				Duration: duration,
				Passed:   true,
			})
		}()

		mockService := new(MockAuthService)
		mockService.On("Login", "invalid@example.com", "wrongpassword").Return(nil, "", assert.AnError)

		user, token, err := mockService.Login("invalid@example.com", "wrongpassword")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Empty(t, token)
		mockService.AssertExpectations(t)
	})
}

func TestPasswordHashing(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Password Hashing Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestHashAndCompare", func(t *testing.T) {
		timer := test.NewTestTimer("Hash And Compare")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Hash And Compare",
				Duration: duration,
				Passed:   true,
			})
		}()

		hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		assert.NoError(t, err)

		assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("demo1234")))
		assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("wrong")))
	})
}

func TestJWTRoundTrip(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("JWT Round Trip Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestGenerateAndParse", func(t *testing.T) {
		timer := test.NewTestTimer("Generate And Parse")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Generate And Parse",
				Duration: duration,
				Passed:   true,
			})
		}()

		userID := primitive.NewObjectID().Hex()

		token, err := utils.GenerateJWT(userID, "demo@fitform.local")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := utils.ParseJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "demo@fitform.local", claims.Email)
	})

	t.Run("TestParseGarbageFails", func(t *testing.T) {
		timer := test.NewTestTimer("Parse Garbage Fails")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Parse Garbage Fails",
				Duration: duration,
				Passed:   true,
			})
		}()

		_, err := utils.ParseJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("TestRandomStateLength", func(t *testing.T) {
		timer := test.NewTestTimer("Random State Length")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Random State Length",
				Duration: duration,
				Passed:   true,
			})
		}()

		state := utils.GenerateRandomString(32)
		assert.Len(t, state, 32)
		assert.NotEqual(t, state, utils.GenerateRandomString(32))
	})
}
