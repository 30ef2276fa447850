package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/core/services"
	"github.com/flowly-app/budgeting_backend/internal/dto"
	"github.com/flowly-app/budgeting_backend/internal/platform/config"
)

// --- Mock IntentClassifier ---
type MockIntentClassifier struct {
	mock.Mock
}

func (m *MockIntentClassifier) Classify(ctx context.Context, req dto.IntentRoutingRequest) (*dto.IntentClassificationPayload, error) {
	args := m.Called(ctx, req)
	var payload *dto.IntentClassificationPayload
	if args.Get(0) != nil {
		payload = args.Get(0).(*dto.IntentClassificationPayload)
	}
	return payload, args.Error(1)
}

type AssistantRouterServiceTestSuite struct {
	suite.Suite
	classifier *MockIntentClassifier
	ctx        context.Context
}

func (s *AssistantRouterServiceTestSuite) SetupTest() {
	s.classifier = new(MockIntentClassifier)
	s.ctx = context.Background()
}

func (s *AssistantRouterServiceTestSuite) newRouter() portssvc.AssistantRouterSvcFacade {
	cfg := &config.Config{IntentTimeout: time.Second}
	return services.NewAssistantRouterService(cfg, s.classifier)
}

func TestAssistantRouterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssistantRouterServiceTestSuite))
}

func strPtr(v string) *string { return &v }

func (s *AssistantRouterServiceTestSuite) TestConfidentIntentRoute() {
	s.classifier.On("Classify", mock.Anything, mock.Anything).Return(&dto.IntentClassificationPayload{
		ConfidenceByIntent: map[string]any{
			"onboarding":        0.02,
			"goal_management":   0.05,
			"allocation_create": 0.91,
			"analytics_query":   0.02,
		},
		Confidence:    0.91,
		PrimaryIntent: strPtr("allocation_create"),
	}, nil)

	result := s.newRouter().Route(s.ctx, "log $40 for groceries")

	s.Equal(dto.RouteTypeIntent, result.RouteType)
	s.False(result.RequiresClarification)
	s.Require().NotNil(result.PrimaryIntent)
	s.Equal("allocation_create", *result.PrimaryIntent)
	s.InDelta(0.91, result.Confidence, 0.0001)
	s.Nil(result.Clarification)
	s.InDelta(0.91, result.ConfidenceByIntent[domain.IntentAllocationCreate], 0.0001)
}

func (s *AssistantRouterServiceTestSuite) TestNormalizedRequestReachesClassifier() {
	s.classifier.On("Classify", mock.Anything, mock.MatchedBy(func(req dto.IntentRoutingRequest) bool {
		return req.NormalizedMessage == "log 40 for groceries"
	})).Return(&dto.IntentClassificationPayload{
		ConfidenceByIntent: map[string]any{"allocation_create": 0.95},
		PrimaryIntent:      strPtr("allocation_create"),
	}, nil)

	result := s.newRouter().Route(s.ctx, "  Log $40 for GROCERIES!  ")

	s.classifier.AssertExpectations(s.T())
	s.Equal(dto.RouteTypeIntent, result.RouteType)
}

func (s *AssistantRouterServiceTestSuite) TestPrimaryInferredFromConfidenceMap() {
	s.classifier.On("Classify", mock.Anything, mock.Anything).Return(&dto.IntentClassificationPayload{
		ConfidenceByIntent: map[string]any{
			"onboarding":      0.8,
			"analytics_query": 0.1,
		},
	}, nil)

	result := s.newRouter().Route(s.ctx, "help me get set up")

	s.Require().NotNil(result.PrimaryIntent)
	s.Equal("onboarding", *result.PrimaryIntent)
	s.InDelta(0.8, result.Confidence, 0.0001)
}

func (s *AssistantRouterServiceTestSuite) TestExplicitZeroConfidenceStands() {
	s.classifier.On("Classify", mock.Anything, mock.Anything).Return(&dto.IntentClassificationPayload{
		ConfidenceByIntent: map[string]any{"onboarding": 0.8},
		PrimaryIntent:      strPtr("onboarding"),
		Confidence:         0.0,
	}, nil)

	result := s.newRouter().Route(s.ctx, "help me get set up")

	s.Require().NotNil(result.PrimaryIntent)
	s.Equal("onboarding", *result.PrimaryIntent)
	s.Zero(result.Confidence)
}

func (s *AssistantRouterServiceTestSuite) TestConfidencesAreClampedAndRounded() {
	s.classifier.On("Classify", mock.Anything, mock.Anything).Return(&dto.IntentClassificationPayload{
		ConfidenceByIntent: map[string]any{
			"onboarding":        1.7,
			"goal_management":   -0.3,
			"allocation_create": 0.123456,
			"analytics_query":   "not a number",
		},
		PrimaryIntent: strPtr("onboarding"),
	}, nil)

	result := s.newRouter().Route(s.ctx, "hello")

	s.Equal(1.0, result.ConfidenceByIntent[domain.IntentOnboarding])
	s.Equal(0.0, result.ConfidenceByIntent[domain.IntentGoalManagement])
	s.Equal(0.1235, result.ConfidenceByIntent[domain.IntentAllocationCreate])
	s.Equal(0.0, result.ConfidenceByIntent[domain.IntentAnalyticsQuery])
}

func (s *AssistantRouterServiceTestSuite) TestClarificationForcesNilPrimary() {
	s.classifier.On("Classify", mock.Anything, mock.Anything).Return(&dto.IntentClassificationPayload{
		ConfidenceByIntent: map[string]any{
			"goal_management":   0.45,
			"allocation_create": 0.40,
		},
		RequiresClarification: true,
		PrimaryIntent:         strPtr("goal_management"),
		CandidateIntents: []dto.CandidateIntentPayload{
			{Intent: "goal_management", Confidence: 0.45},
			{Intent: "allocation_create", Confidence: 0.40},
		},
		ClarificationPrompt: strPtr("Did you want to edit the goal or record spending?"),
	}, nil)

	result := s.newRouter().Route(s.ctx, "change groceries to 40")

	s.Equal(dto.RouteTypeClarification, result.RouteType)
	s.True(result.RequiresClarification)
	s.Nil(result.PrimaryIntent)

	s.Require().NotNil(result.Clarification)
	s.Equal(dto.ClarificationReasonAmbiguousIntent, result.Clarification.Reason)
	s.Equal("Did you want to edit the goal or record spending?", result.Clarification.Prompt)
	s.Require().Len(result.Clarification.CandidateIntents, 2)
	s.Equal(domain.IntentGoalManagement, result.Clarification.CandidateIntents[0].Intent)
	s.Equal(domain.IntentAllocationCreate, result.Clarification.CandidateIntents[1].Intent)
}

func (s *AssistantRouterServiceTestSuite) TestClarificationSubstitutesTopTwoCandidates() {
	s.classifier.On("Classify", mock.Anything, mock.Anything).Return(&dto.IntentClassificationPayload{
		ConfidenceByIntent: map[string]any{
			"onboarding":        0.1,
			"goal_management":   0.5,
			"allocation_create": 0.4,
		},
		RequiresClarification: true,
	}, nil)

	result := s.newRouter().Route(s.ctx, "hmm")

	s.Require().NotNil(result.Clarification)
	s.Require().Len(result.Clarification.CandidateIntents, 2)
	s.Equal(domain.IntentGoalManagement, result.Clarification.CandidateIntents[0].Intent)
	s.Equal(domain.IntentAllocationCreate, result.Clarification.CandidateIntents[1].Intent)
}

func (s *AssistantRouterServiceTestSuite) TestClassifierErrorFallsBackToAmbiguousClarification() {
	s.classifier.On("Classify", mock.Anything, mock.Anything).Return(nil, errors.New("provider timeout"))

	result := s.newRouter().Route(s.ctx, "anything")

	s.Equal(dto.RouteTypeClarification, result.RouteType)
	s.True(result.RequiresClarification)
	s.Nil(result.PrimaryIntent)
	s.Zero(result.Confidence)
	for _, intent := range domain.AllIntents() {
		s.Zero(result.ConfidenceByIntent[intent])
	}

	s.Require().NotNil(result.Clarification)
	s.Equal("I could not confidently classify that request. What would you like to do?", result.Clarification.Prompt)
	s.Len(result.Clarification.CandidateIntents, 2)
}

func (s *AssistantRouterServiceTestSuite) TestNilClassifierFallsBackToAmbiguousClarification() {
	router := services.NewAssistantRouterService(&config.Config{}, nil)

	result := router.Route(s.ctx, "anything")

	s.Equal(dto.RouteTypeClarification, result.RouteType)
	s.True(result.RequiresClarification)
}

func (s *AssistantRouterServiceTestSuite) TestUnknownCandidateIntentsAreDropped() {
	s.classifier.On("Classify", mock.Anything, mock.Anything).Return(&dto.IntentClassificationPayload{
		ConfidenceByIntent:    map[string]any{"onboarding": 0.4, "goal_management": 0.3},
		RequiresClarification: true,
		CandidateIntents: []dto.CandidateIntentPayload{
			{Intent: "onboarding", Confidence: 0.4},
			{Intent: "delete_everything", Confidence: 0.9},
			{Intent: "goal_management", Confidence: 0.3},
		},
	}, nil)

	result := s.newRouter().Route(s.ctx, "hmm")

	s.Require().NotNil(result.Clarification)
	s.Require().Len(result.Clarification.CandidateIntents, 2)
	for _, candidate := range result.Clarification.CandidateIntents {
		s.NotEqual("delete_everything", string(candidate.Intent))
	}
}
