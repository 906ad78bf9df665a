package templates

import (
	"registration/internal/core/domain/activation"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

const ACTIVATION_KEY = activation.Key("0123456789abcdef0123456789abcdef01234567")

type testSuite struct {
	suite.Suite
	renderer *Pongo2Renderer
	data     activation.TemplateData
}

func (suite *testSuite) SetupSuite() {
	renderer, err := NewPongo2Renderer()
	suite.Require().Nil(err)
	suite.renderer = renderer
}

func (suite *testSuite) SetupTest() {
	suite.data = activation.TemplateData{
		Site:           activation.Site{Name: "Tom & Jerry", Domain: "example.com"},
		ActivationKey:  ACTIVATION_KEY,
		ExpirationDays: 7,
	}
}

func TestPongo2Renderer(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSubject() {
	subject, err := suite.renderer.Render(activation.SubjectTemplate, suite.data)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("Account activation on Tom & Jerry", strings.TrimSpace(subject))
}

func (suite *testSuite) TestBody() {
	body, err := suite.renderer.Render(activation.BodyTemplate, suite.data)

	assert := suite.Require()
	assert.Nil(err)
	assert.Contains(body, "https://example.com/accounts/activate/"+string(ACTIVATION_KEY)+"/")
	assert.Contains(body, "within 7 days")
	assert.Contains(body, "Tom & Jerry")
}

func (suite *testSuite) TestBodySingleDay() {
	suite.data.ExpirationDays = 1
	body, err := suite.renderer.Render(activation.BodyTemplate, suite.data)

	assert := suite.Require()
	assert.Nil(err)
	assert.Contains(body, "within 1 day:")
}

func (suite *testSuite) TestUnknownTemplate() {
	_, err := suite.renderer.Render(activation.TemplateName("registration/unknown.txt"), suite.data)

	suite.Require().NotNil(err)
}
