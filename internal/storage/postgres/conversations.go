package postgres

import (
	"context"
	"fmt"
	"log"

	"talentbridge/ent"
	"talentbridge/ent/conversation"
	"talentbridge/internal/storage"
	"talentbridge/internal/transport/dto"
)

// ConversationRepo implements the storage.ConversationRepository interface using Ent.
type ConversationRepo struct {
	client *ent.Client
}

// NewConversationRepo creates a new ConversationRepo.
func NewConversationRepo(client *ent.Client) *ConversationRepo {
	return &ConversationRepo{client: client}
}

// Compile-time check to ensure ConversationRepo implements ConversationRepository
var _ storage.ConversationRepository = (*ConversationRepo)(nil)

func (r *ConversationRepo) GetByExternalID(ctx context.Context, externalID string) (*ent.Conversation, error) {
	found, err := r.client.Conversation.Query().
		Where(conversation.ExternalID(externalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving conversation by external ID %q: %v\n", externalID, err)
		return nil, fmt.Errorf("failed to get conversation by external ID: %w", err)
	}
	return found, nil
}

func (r *ConversationRepo) ListByExternalUser(ctx context.Context, externalUserID string) ([]*ent.Conversation, error) {
	conversations, err := r.client.Conversation.Query().
		Where(conversation.ExternalUserID(externalUserID)).
		Order(ent.Desc(conversation.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		log.Printf("Error querying conversations by external user %q: %v\n", externalUserID, err)
		return nil, fmt.Errorf("failed to list conversations by external user: %w", err)
	}
	return conversations, nil
}

func (r *ConversationRepo) Create(ctx context.Context, req *dto.UpsertConversationRequest) (*ent.Conversation, error) {
	create := r.client.Conversation.Create().
		SetExternalID(req.ConversationID).
		SetExternalUserID(req.UserID)
	if req.Title != nil {
		create = create.SetTitle(*req.Title)
	}
	if len(req.Messages) > 0 {
		create = create.SetMessages(req.Messages)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Another upsert won the create race for this conversation id.
			return nil, fmt.Errorf("failed to create conversation: %w", storage.ErrConflict)
		}
		log.Printf("Error creating conversation: %v\n", err)
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	log.Printf("Conversation created successfully with external ID: %s", created.ExternalID)
	return created, nil
}

func (r *ConversationRepo) UpdateByExternalID(ctx context.Context, req *dto.UpsertConversationRequest) (*ent.Conversation, error) {
	existing, err := r.GetByExternalID(ctx, req.ConversationID)
	if err != nil {
		return nil, err
	}

	update := r.client.Conversation.UpdateOneID(existing.ID)
	if req.Title != nil {
		update = update.SetTitle(*req.Title)
	}
	if req.Messages != nil {
		update = update.SetMessages(req.Messages)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating conversation %q: %v\n", req.ConversationID, err)
		return nil, fmt.Errorf("failed to update conversation: %w", err)
	}
	return updated, nil
}
