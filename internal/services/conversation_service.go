package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"talentbridge/ent"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"
)

type conversationService struct {
	conversationRepo storage.ConversationRepository
}

// NewConversationService creates a new instance of ConversationService.
func NewConversationService(conversationRepo storage.ConversationRepository) ConversationService {
	return &conversationService{conversationRepo: conversationRepo}
}

// UpsertConversation creates or updates the conversation keyed by the
// third-party conversation id. The internal row id never decides which
// row is touched.
func (s *conversationService) UpsertConversation(ctx context.Context, req *dto.UpsertConversationRequest) (*ent.Conversation, error) {
	if req.ConversationID == "" {
		return nil, fmt.Errorf("%w: conversationId is required", ErrValidation)
	}
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}

	_, err := s.conversationRepo.GetByExternalID(ctx, req.ConversationID)
	if err == nil {
		updated, err := s.conversationRepo.UpdateByExternalID(ctx, req)
		if err != nil {
			return nil, mapRepoError(err, "updating conversation")
		}
		return updated, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "fetching conversation for upsert")
	}

	created, err := s.conversationRepo.Create(ctx, req)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, storage.ErrConflict) {
		return nil, mapRepoError(err, "creating conversation")
	}

	// Lost the create race; the row exists now, update it instead.
	log.Printf("UpsertConversation: create race for %q, retrying as update", req.ConversationID)
	updated, err := s.conversationRepo.UpdateByExternalID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating conversation after create race")
	}
	return updated, nil
}

func (s *conversationService) GetConversation(ctx context.Context, req *dto.GetConversationRequest) (*ent.Conversation, error) {
	if req.ConversationID == "" {
		return nil, fmt.Errorf("%w: conversationId is required", ErrValidation)
	}

	found, err := s.conversationRepo.GetByExternalID(ctx, req.ConversationID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching conversation %q", req.ConversationID))
	}
	return found, nil
}

func (s *conversationService) ListConversations(ctx context.Context, req *dto.ListConversationsRequest) ([]*ent.Conversation, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}

	conversations, err := s.conversationRepo.ListByExternalUser(ctx, req.UserID)
	if err != nil {
		return nil, mapRepoError(err, "listing conversations")
	}
	return conversations, nil
}
