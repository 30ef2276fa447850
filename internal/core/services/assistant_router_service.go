package services

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/dto"
	"github.com/flowly-app/budgeting_backend/internal/platform/config"
)

const (
	ambiguousFallbackPrompt    = "I could not confidently classify that request. What would you like to do?"
	defaultClarificationPrompt = "Did you want onboarding, goal management, allocation entry, or analytics?"

	maxCandidateIntents        = 4
	minClarificationCandidates = 2
)

// assistantRouterService routes free-text chat input through the injected
// classifier. Nothing the classifier returns is trusted as-is: confidences,
// the primary intent, and the candidate list are all normalized before a
// route is produced, and any classifier failure degrades to an ambiguous
// clarification rather than an error.
type assistantRouterService struct {
	BaseService
	classifier portssvc.IntentClassifier
	cfg        *config.Config
}

// NewAssistantRouterService creates a new AssistantRouterService.
func NewAssistantRouterService(cfg *config.Config, classifier portssvc.IntentClassifier) portssvc.AssistantRouterSvcFacade {
	return &assistantRouterService{classifier: classifier, cfg: cfg}
}

var _ portssvc.AssistantRouterSvcFacade = (*assistantRouterService)(nil)

// Route classifies a chat message into the fixed intent set. It always
// returns a result.
func (s *assistantRouterService) Route(ctx context.Context, message string) dto.RouteResult {
	req := dto.NewIntentRoutingRequest(message)

	payload, err := s.classify(ctx, req)
	if err != nil || payload == nil {
		if err != nil {
			s.LogWarn(ctx, "Intent classification failed, falling back to clarification", "error", err)
		}
		payload = ambiguousFallbackPayload()
	}

	return s.normalize(ctx, payload)
}

func (s *assistantRouterService) classify(ctx context.Context, req dto.IntentRoutingRequest) (*dto.IntentClassificationPayload, error) {
	if s.classifier == nil {
		return nil, nil
	}
	if s.cfg != nil && s.cfg.IntentTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.IntentTimeout)
		defer cancel()
	}
	return s.classifier.Classify(ctx, req)
}

// ambiguousFallbackPayload is the zero-confidence clarification payload used
// whenever the classifier cannot produce a usable response.
func ambiguousFallbackPayload() *dto.IntentClassificationPayload {
	prompt := ambiguousFallbackPrompt
	return &dto.IntentClassificationPayload{
		RequiresClarification: true,
		ClarificationPrompt:   &prompt,
	}
}

// normalize turns a raw classification payload into a route result. Missing
// and malformed fields never fail the route; they normalize to zero values
// or are inferred from the confidence map.
func (s *assistantRouterService) normalize(ctx context.Context, payload *dto.IntentClassificationPayload) dto.RouteResult {
	confidences := make(map[domain.Intent]float64, len(domain.AllIntents()))
	for _, intent := range domain.AllIntents() {
		confidences[intent] = normalizeConfidence(payload.ConfidenceByIntent[string(intent)])
	}

	requiresClarification := payload.RequiresClarification

	topIntent, topConfidence := maxConfidence(confidences)
	if !requiresClarification && topConfidence == 0 && !providedPrimaryIsValid(payload.PrimaryIntent) {
		// An all-zero map with no usable primary cannot support a
		// confident route.
		requiresClarification = true
	}

	var primaryIntent *string
	primaryConfidence := topConfidence
	if !requiresClarification {
		resolved := topIntent
		if payload.PrimaryIntent != nil {
			if provided, ok := domain.ResolveIntent(*payload.PrimaryIntent); ok {
				resolved = provided
			}
		}
		value := string(resolved)
		primaryIntent = &value
		primaryConfidence = confidences[resolved]
	}

	// The primary's confidence fills in only when the overall field was not
	// supplied; an explicit zero stands.
	confidence := primaryConfidence
	if payload.Confidence != nil {
		confidence = normalizeConfidence(payload.Confidence)
	}

	candidates := normalizeCandidates(payload.CandidateIntents)
	if requiresClarification && len(candidates) < minClarificationCandidates {
		candidates = topCandidatesFromMap(confidences, minClarificationCandidates)
	}

	if !requiresClarification {
		s.LogDebug(ctx, "Intent routed", "intent", *primaryIntent, "confidence", confidence)
		return dto.RouteResult{
			RouteType:          dto.RouteTypeIntent,
			PrimaryIntent:      primaryIntent,
			Confidence:         confidence,
			ConfidenceByIntent: confidences,
		}
	}

	prompt := defaultClarificationPrompt
	if payload.ClarificationPrompt != nil && *payload.ClarificationPrompt != "" {
		prompt = *payload.ClarificationPrompt
	}

	return dto.RouteResult{
		RouteType:             dto.RouteTypeClarification,
		RequiresClarification: true,
		Confidence:            confidence,
		ConfidenceByIntent:    confidences,
		Clarification: &dto.Clarification{
			Reason:           dto.ClarificationReasonAmbiguousIntent,
			Prompt:           prompt,
			CandidateIntents: candidates,
		},
	}
}

func providedPrimaryIsValid(primary *string) bool {
	if primary == nil {
		return false
	}
	_, ok := domain.ResolveIntent(*primary)
	return ok
}

// maxConfidence returns the highest-confidence intent, ties resolved by
// canonical intent order.
func maxConfidence(confidences map[domain.Intent]float64) (domain.Intent, float64) {
	best := domain.AllIntents()[0]
	bestScore := confidences[best]
	for _, intent := range domain.AllIntents()[1:] {
		if confidences[intent] > bestScore {
			best = intent
			bestScore = confidences[intent]
		}
	}
	return best, bestScore
}

// normalizeCandidates drops unknown intents, dedupes keeping the highest
// confidence per intent, sorts by confidence descending with ties in
// canonical order, and caps the list.
func normalizeCandidates(raw []dto.CandidateIntentPayload) []dto.CandidateIntent {
	byIntent := make(map[domain.Intent]float64)
	for _, candidate := range raw {
		intent, ok := domain.ResolveIntent(candidate.Intent)
		if !ok {
			continue
		}
		score := normalizeConfidence(candidate.Confidence)
		if existing, seen := byIntent[intent]; !seen || score > existing {
			byIntent[intent] = score
		}
	}

	candidates := make([]dto.CandidateIntent, 0, len(byIntent))
	for _, intent := range domain.AllIntents() {
		if score, ok := byIntent[intent]; ok {
			candidates = append(candidates, dto.CandidateIntent{Intent: intent, Confidence: score})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	if len(candidates) > maxCandidateIntents {
		candidates = candidates[:maxCandidateIntents]
	}
	return candidates
}

// topCandidatesFromMap builds a substitute candidate list from the confidence
// map when the classifier supplied too few candidates for a clarification.
func topCandidatesFromMap(confidences map[domain.Intent]float64, n int) []dto.CandidateIntent {
	candidates := make([]dto.CandidateIntent, 0, len(confidences))
	for _, intent := range domain.AllIntents() {
		candidates = append(candidates, dto.CandidateIntent{Intent: intent, Confidence: confidences[intent]})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// normalizeConfidence coerces a loosely typed confidence into [0,1] rounded
// to four decimal places. Non-numeric values normalize to zero.
func normalizeConfidence(value any) float64 {
	var raw float64
	switch v := value.(type) {
	case float64:
		raw = v
	case float32:
		raw = float64(v)
	case int:
		raw = float64(v)
	case int32:
		raw = float64(v)
	case int64:
		raw = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		raw = parsed
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		raw = parsed
	default:
		return 0
	}

	if raw < 0 {
		return 0
	}
	if raw > 1 {
		return 1
	}
	return decimal.NewFromFloat(raw).Round(4).InexactFloat64()
}
