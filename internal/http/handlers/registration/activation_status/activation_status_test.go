package activationstatus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"registration/internal/core/domain/activation"
	c "registration/internal/core/domain/common"
	"registration/internal/core/domain/user"
	getactivationstatus "registration/internal/core/services/get_activation_status"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
)

var EXPIRES_AT time.Time = time.Date(2020, 6, 13, 15, 30, 30, 0, time.UTC)

type stubService struct {
	input  getactivationstatus.Input
	result getactivationstatus.Result
	err    error
}

func (s *stubService) Run(ctx context.Context, input getactivationstatus.Input) (getactivationstatus.Result, error) {
	s.input = input
	return s.result, s.err
}

type testSuite struct {
	suite.Suite
	service *stubService
	router  *chi.Mux
}

func (suite *testSuite) SetupTest() {
	suite.service = &stubService{}
	suite.router = chi.NewRouter()
	suite.router.Method(http.MethodGet, "/users/{userID}/activation", New(suite.service))
}

func TestActivationStatusHandler(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) serve(path string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	suite.router.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, path, nil))
	return rw
}

func (suite *testSuite) TestPending() {
	suite.service.result = getactivationstatus.Result{ExpiresAt: c.NewOptional(EXPIRES_AT, true)}

	rw := suite.serve("/users/5/activation")

	assert := suite.Require()
	assert.Equal(http.StatusOK, rw.Code)
	assert.Equal(user.ID(5), suite.service.input.UserID)
	output := Output{}
	assert.Nil(json.Unmarshal(rw.Body.Bytes(), &output))
	assert.False(output.Activated)
	assert.NotNil(output.ExpiresAt)
	assert.True(EXPIRES_AT.Equal(*output.ExpiresAt))
}

func (suite *testSuite) TestActivated() {
	suite.service.result = getactivationstatus.Result{Activated: true, Expired: true}

	rw := suite.serve("/users/5/activation")

	assert := suite.Require()
	assert.Equal(http.StatusOK, rw.Code)
	assert.NotContains(rw.Body.String(), "expires_at")
}

func (suite *testSuite) TestInvalidUserID() {
	suite.Require().Equal(http.StatusBadRequest, suite.serve("/users/abc/activation").Code)
}

func (suite *testSuite) TestNotFound() {
	for _, err := range []error{user.ErrUserDoesNotExist, activation.ErrProfileDoesNotExist} {
		suite.service.err = err
		suite.Require().Equal(http.StatusNotFound, suite.serve("/users/5/activation").Code)
	}
}

func (suite *testSuite) TestInternalError() {
	suite.service.err = fmt.Errorf("db is down")

	suite.Require().Equal(http.StatusInternalServerError, suite.serve("/users/5/activation").Code)
}
