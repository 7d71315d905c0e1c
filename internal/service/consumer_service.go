package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/repository/contract"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/pkg/embedding"
	"legal-assistant-be/pkg/utils"
)

const (
	// ~375 tokens per chunk leaves generous headroom for embedding models
	chunkSize    = 1500
	chunkOverlap = 200
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedDecisionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed messages retry forever otherwise
		return
	}

	cs.logger.Info("Consumer", "Embedding decision", map[string]interface{}{"decisionId": payload.DecisionId.String()})

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	decision, err := uow.DecisionRepository().FindByID(ctx, payload.DecisionId)
	if err != nil {
		cs.logger.Error("Consumer", "Failed to load decision", map[string]interface{}{
			"decisionId": payload.DecisionId.String(),
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}
	if decision == nil {
		cs.logger.Warn("Consumer", "Decision not found, dropping message", map[string]interface{}{
			"decisionId": payload.DecisionId.String(),
		})
		msg.Ack() // deleted in the meantime
		return
	}

	chunks := utils.SplitText(decision.FullText, chunkSize, chunkOverlap)

	inputs := make([]contract.ChunkInput, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, embedding.TaskTypeRetrievalDocument)
		if err != nil {
			cs.logger.Error("Consumer", "Chunk embedding failed", map[string]interface{}{
				"decisionId": payload.DecisionId.String(),
				"chunkIndex": i,
				"error":      err.Error(),
			})
			msg.Nack()
			return
		}
		inputs = append(inputs, contract.ChunkInput{
			ChunkIndex: i,
			Section:    "tum_metin",
			ChunkText:  chunk,
			Embedding:  res.Embedding.Values,
		})
	}

	if err := uow.Begin(ctx); err != nil {
		cs.logger.Error("Consumer", "Failed to begin transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	defer uow.Rollback()

	// Replace, never append: re-ingesting a decision must not duplicate chunks
	if err := uow.DecisionChunkRepository().DeleteByDecision(ctx, decision.Id); err != nil {
		cs.logger.Error("Consumer", "Failed to delete old chunks", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	if err := uow.DecisionChunkRepository().CreateBatch(ctx, decision.Id, inputs); err != nil {
		cs.logger.Error("Consumer", "Failed to store chunks", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		cs.logger.Error("Consumer", "Failed to commit chunks", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	cs.logger.Info("Consumer", "Decision embedded", map[string]interface{}{
		"decisionId": payload.DecisionId.String(),
		"chunks":     len(inputs),
	})
	msg.Ack()
}
