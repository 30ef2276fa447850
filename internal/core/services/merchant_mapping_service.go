package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portsrepo "github.com/flowly-app/budgeting_backend/internal/core/ports/repositories"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/dto"
	"github.com/flowly-app/budgeting_backend/internal/platform/config"
	"github.com/flowly-app/budgeting_backend/internal/utils/textmatch"
)

// merchantMappingService resolves merchant strings to goals through three
// tiers: exact match, alias fuzzy match, then an injected heuristic fallback.
// Only the exact and alias tiers resolve without confirmation.
type merchantMappingService struct {
	BaseService
	mappingRepo portsrepo.MerchantMappingRepositoryFacade
	cfg         *config.Config
}

// NewMerchantMappingService creates a new MerchantMappingService.
func NewMerchantMappingService(cfg *config.Config, mappingRepo portsrepo.MerchantMappingRepositoryFacade) portssvc.MerchantMappingSvcFacade {
	return &merchantMappingService{mappingRepo: mappingRepo, cfg: cfg}
}

var _ portssvc.MerchantMappingSvcFacade = (*merchantMappingService)(nil)

// Resolve maps a merchant string through the tiers in order. The alias tier
// scans aliases in sorted order so equal-score matches resolve
// deterministically.
func (s *merchantMappingService) Resolve(ctx context.Context, userID, merchant string, heuristicResolver portssvc.HeuristicMerchantResolver) (*dto.MerchantMappingResult, error) {
	normalized := textmatch.Normalize(merchant)

	exactGoalID, err := s.mappingRepo.ExactGoalID(ctx, userID, normalized)
	if err != nil {
		return nil, err
	}
	if exactGoalID != nil {
		return &dto.MerchantMappingResult{
			Status:    dto.MappingStatusResolved,
			GoalID:    exactGoalID,
			MatchType: dto.MatchTypeExact,
		}, nil
	}

	aliasGoalID, err := s.resolveAlias(ctx, userID, normalized)
	if err != nil {
		return nil, err
	}
	if aliasGoalID != nil {
		return &dto.MerchantMappingResult{
			Status:    dto.MappingStatusResolved,
			GoalID:    aliasGoalID,
			MatchType: dto.MatchTypeAliasFuzzy,
		}, nil
	}

	if heuristicResolver != nil {
		if goalID := heuristicResolver(ctx); goalID != nil {
			return &dto.MerchantMappingResult{
				Status:               dto.MappingStatusNeedsConfirmation,
				GoalID:               goalID,
				MatchType:            dto.MatchTypeHeuristic,
				RequiresConfirmation: true,
			}, nil
		}
	}

	return &dto.MerchantMappingResult{
		Status:               dto.MappingStatusNeedsConfirmation,
		MatchType:            dto.MatchTypeUnknown,
		RequiresConfirmation: true,
	}, nil
}

// resolveAlias scans the alias tier. Containment in either direction wins
// immediately; otherwise the highest similarity score at or above the
// configured threshold wins.
func (s *merchantMappingService) resolveAlias(ctx context.Context, userID, normalizedMerchant string) (*string, error) {
	aliases, err := s.mappingRepo.AliasMappings(ctx, userID)
	if err != nil {
		return nil, err
	}

	sorted := make([]string, 0, len(aliases))
	for alias := range aliases {
		sorted = append(sorted, alias)
	}
	sort.Strings(sorted)

	var bestGoalID *string
	bestScore := 0.0
	for _, alias := range sorted {
		goalID := aliases[alias]
		if alias == normalizedMerchant || strings.Contains(normalizedMerchant, alias) || strings.Contains(alias, normalizedMerchant) {
			return &goalID, nil
		}
		score := textmatch.SimilarityPercent(alias, normalizedMerchant)
		if score >= s.cfg.AliasSimilarityThreshold && score > bestScore {
			bestScore = score
			bestGoalID = &goalID
		}
	}

	if bestGoalID != nil {
		s.LogDebug(ctx, "Merchant resolved through alias fuzzy match",
			"merchant", normalizedMerchant, "score", bestScore)
	}
	return bestGoalID, nil
}

// ConfirmMapping records a user-confirmed merchant mapping on the exact tier.
// Re-confirming an identical mapping is a no-op; any change appends an audit
// entry distinguishing first mappings from overrides.
func (s *merchantMappingService) ConfirmMapping(ctx context.Context, userID, merchant, goalID string) error {
	normalized := textmatch.Normalize(merchant)

	existing, err := s.mappingRepo.ExactGoalID(ctx, userID, normalized)
	if err != nil {
		return err
	}
	if existing != nil && *existing == goalID {
		return nil
	}

	if err := s.mappingRepo.SetExactMapping(ctx, userID, normalized, goalID); err != nil {
		return err
	}

	action := domain.ActionCreateMapping
	if existing != nil {
		action = domain.ActionOverrideMapping
	}
	entry := domain.MerchantMappingAuditEntry{
		EntryID:      uuid.NewString(),
		Action:       action,
		Merchant:     normalized,
		BeforeGoalID: existing,
		AfterGoalID:  goalID,
	}
	if err := s.mappingRepo.AppendAuditEntry(ctx, userID, entry); err != nil {
		return err
	}

	s.LogInfo(ctx, "Merchant mapping confirmed",
		"merchant", normalized, "action", string(action))
	return nil
}

// SetAliasMapping records an alias on the fuzzy tier.
func (s *merchantMappingService) SetAliasMapping(ctx context.Context, userID, alias, goalID string) error {
	return s.mappingRepo.SetAliasMapping(ctx, userID, textmatch.Normalize(alias), goalID)
}

// MappingsForUser returns the user's full mapping state across both tiers.
func (s *merchantMappingService) MappingsForUser(ctx context.Context, userID string) (*dto.MerchantMappingSet, error) {
	exact, err := s.mappingRepo.ExactMappings(ctx, userID)
	if err != nil {
		return nil, err
	}
	alias, err := s.mappingRepo.AliasMappings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MerchantMappingSet{Exact: exact, Alias: alias}, nil
}

// AuditTrailForUser returns the user's mapping audit entries in append order.
func (s *merchantMappingService) AuditTrailForUser(ctx context.Context, userID string) ([]domain.MerchantMappingAuditEntry, error) {
	return s.mappingRepo.AuditTrail(ctx, userID)
}
