package services

import (
	"context"
	"fmt"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/dto"
)

// assistantWriteService orchestrates the confirmation workflow around a
// proposed mutation. Every path produces a terminal result with a uniform
// confirmation card; the executor runs at most once per call and its panics
// are contained here.
type assistantWriteService struct {
	BaseService
}

// NewAssistantWriteService creates a new AssistantWriteService.
func NewAssistantWriteService() portssvc.AssistantWriteSvcFacade {
	return &assistantWriteService{}
}

var _ portssvc.AssistantWriteSvcFacade = (*assistantWriteService)(nil)

// Run resolves a write proposal against the user's decision and the execution
// policy. Rejection wins over everything; otherwise the write executes on
// explicit approval or on policy auto-execution, and proposals that clear
// neither bar come back pending confirmation.
func (s *assistantWriteService) Run(ctx context.Context, proposal dto.WriteProposal, policy dto.WritePolicy, decision domain.WriteDecision, execute portssvc.WriteExecutor) dto.WriteResult {
	if decision == domain.DecisionReject {
		s.LogInfo(ctx, "Write proposal rejected by user", "proposalID", proposal.ProposalID)
		return dto.WriteResult{
			Status:           dto.WriteStatusRejected,
			ConfirmationCard: buildCard(proposal, dto.CardStatusRejected),
			Error: &dto.WriteError{
				Code:    dto.ErrCodeWriteRejectedByUser,
				Message: "The proposed change was rejected and nothing was written.",
			},
		}
	}

	approved := decision == domain.DecisionApprove
	if !approved && !policy.ShouldAutoExecute(proposal.Confidence) {
		return dto.WriteResult{
			Status:               dto.WriteStatusProposed,
			RequiresConfirmation: true,
			ConfirmationCard:     buildCard(proposal, dto.CardStatusPendingConfirmation),
		}
	}

	if ok, err := s.runExecutor(ctx, proposal, execute); !ok || err != nil {
		if err == nil {
			err = fmt.Errorf("write executor reported failure")
		}
		s.LogError(ctx, err, "Write execution failed", "proposalID", proposal.ProposalID)
		return dto.WriteResult{
			Status:           dto.WriteStatusFailed,
			ConfirmationCard: buildCard(proposal, dto.CardStatusFailed),
			Error: &dto.WriteError{
				Code:    dto.ErrCodeWriteExecutionFailed,
				Message: "The approved change could not be applied.",
			},
		}
	}

	s.LogInfo(ctx, "Write proposal executed", "proposalID", proposal.ProposalID, "approved", approved)
	return dto.WriteResult{
		Status:           dto.WriteStatusSucceeded,
		ConfirmationCard: buildCard(proposal, dto.CardStatusSucceeded),
	}
}

// runExecutor invokes the executor exactly once, converting a nil executor or
// a panic into an ordinary failure.
func (s *assistantWriteService) runExecutor(ctx context.Context, proposal dto.WriteProposal, execute portssvc.WriteExecutor) (ok bool, err error) {
	if execute == nil {
		return false, fmt.Errorf("no write executor provided for proposal [%s]", proposal.ProposalID)
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("write executor panicked: %v", r)
		}
	}()
	return execute(ctx, proposal)
}

func buildCard(proposal dto.WriteProposal, resultStatus string) dto.ConfirmationCard {
	return dto.ConfirmationCard{
		ProposalID:    proposal.ProposalID,
		ActionSummary: proposal.ActionSummary,
		Entities:      proposal.Entities,
		ResultStatus:  resultStatus,
	}
}
