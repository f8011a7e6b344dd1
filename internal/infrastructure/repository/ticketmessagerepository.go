package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/infrastructure/persistence/mappers"
	"tlogi/internal/infrastructure/persistence/models"
	"tlogi/internal/shared/db"
)

type TicketMessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketMessageRepository(gdb *gorm.DB) *TicketMessageRepository {
	return &TicketMessageRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketMessageRepository) Save(ctx context.Context, m *ticket.Message) error {
	model := r.mapper.MessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *TicketMessageRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	var rows []models.TicketMessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket messages: %w", err)
	}

	messages := make([]*ticket.Message, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.MessageToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, nil
}

func (r *TicketMessageRepository) Delete(ctx context.Context, ticketID, messageID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	// Scoped by both IDs so a message cannot be deleted through another
	// ticket's route.
	if err := tx.
		Where("ticket_id = ? AND id = ?", ticketID, messageID).
		Delete(&models.TicketMessageModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket message: %w", err)
	}

	return nil
}

func (r *TicketMessageRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.TicketMessageModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket messages: %w", err)
	}

	return nil
}
