package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"legal-assistant-be/internal/constant"
	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/pkg/llm"
	"legal-assistant-be/pkg/privacy"
	"legal-assistant-be/pkg/quota"
	"legal-assistant-be/pkg/rag/assembler"
	"legal-assistant-be/pkg/retrieval"
)

const (
	retrievalLimit        = 5
	completionTemperature = 0.7
	completionMaxTokens   = 2048
)

// IChatService handles the question-answer flow and conversation management.
type IChatService interface {
	SendChat(ctx context.Context, userId, clientIP string, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	CreateConversation(ctx context.Context, userId string, request *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	GetConversations(ctx context.Context, userId, clientIP string) (*dto.ConversationListResponse, error)
	GetConversation(ctx context.Context, userId string, conversationId uuid.UUID) (*dto.ConversationDetailResponse, error)
	DeleteConversation(ctx context.Context, userId string, conversationId uuid.UUID) error
}

type chatService struct {
	uowFactory        unitofwork.RepositoryFactory
	gate              *quota.Gate
	searcher          retrieval.Searcher
	assembler         *assembler.Assembler
	secondaryAssembly *assembler.SecondaryAssembler
	llmProvider       llm.LLMProvider
	logger            logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	gate *quota.Gate,
	searcher retrieval.Searcher,
	contextAssembler *assembler.Assembler,
	secondaryAssembly *assembler.SecondaryAssembler,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:        uowFactory,
		gate:              gate,
		searcher:          searcher,
		assembler:         contextAssembler,
		secondaryAssembly: secondaryAssembly,
		llmProvider:       llmProvider,
		logger:            log,
	}
}

// SendChat runs one question-answer turn. The incoming message is redacted
// before anything else touches it, so no unredacted personal data can reach
// the prompt, the store, or the response.
func (cs *chatService) SendChat(ctx context.Context, userId, clientIP string, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sanitizedMessage := privacy.Sanitize(request.Message)

	if err := cs.gate.Check(ctx, userId, clientIP); err != nil {
		return nil, err
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	// Resolve conversation and history before generating: ownership errors
	// should cost nothing.
	var conversation *entity.Conversation
	var history []llm.Message
	if request.ConversationId != nil {
		var err error
		conversation, err = cs.loadOwnedConversation(ctx, uow, userId, *request.ConversationId)
		if err != nil {
			return nil, err
		}
		history, err = cs.loadHistory(ctx, uow, conversation.Id)
		if err != nil {
			return nil, err
		}
	}

	answer, err := cs.generateAnswer(ctx, sanitizedMessage, history)
	if err != nil {
		return nil, &dto.ProviderUnavailableError{Err: err}
	}
	sanitizedAnswer := privacy.Sanitize(formatAnswer(answer))

	response, err := cs.persistExchange(ctx, uow, userId, conversation, sanitizedMessage, sanitizedAnswer)
	if err != nil {
		return nil, &dto.AnswerNotSavedError{Err: err}
	}

	// Counted after the commit, so the turn that was just stored is included.
	response.DailyUsage = cs.gate.Usage(ctx, userId)
	return response, nil
}

func (cs *chatService) loadOwnedConversation(ctx context.Context, uow unitofwork.UnitOfWork, userId string, conversationId uuid.UUID) (*entity.Conversation, error) {
	conversation, err := uow.ConversationRepository().FindByID(ctx, conversationId)
	if err != nil {
		return nil, err
	}
	// A foreign conversation is indistinguishable from a missing one
	if conversation == nil || conversation.UserId != userId {
		return nil, fiber.NewError(fiber.StatusNotFound, "Konuşma bulunamadı")
	}
	return conversation, nil
}

func (cs *chatService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, conversationId uuid.UUID) ([]llm.Message, error) {
	messages, err := uow.MessageRepository().Find(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "ordinal", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	history := make([]llm.Message, len(messages))
	for i, m := range messages {
		history[i] = llm.Message{Role: m.Role, Content: m.Content}
	}
	return history, nil
}

func (cs *chatService) generateAnswer(ctx context.Context, question string, history []llm.Message) (string, error) {
	ragContext := cs.assembler.Assemble(cs.searcher.Search(ctx, question, retrievalLimit))
	if !cs.assembler.IsUseful(ragContext) {
		cs.logger.Info("Chat", "Fragment context too thin, using secondary sources", nil)
		ragContext = cs.secondaryAssembly.Assemble(ctx, question)
	}

	prompt := fmt.Sprintf(constant.ChatSystemPromptV1, ragContext, question)

	turn := append(append([]llm.Message{}, history...), llm.Message{
		Role:    constant.MessageRoleUser,
		Content: prompt,
	})

	return cs.llmProvider.Chat(ctx, turn,
		llm.WithTemperature(completionTemperature),
		llm.WithMaxTokens(completionMaxTokens),
	)
}

// persistExchange stores both sides of the turn atomically. A fresh
// conversation is created inside the same transaction, titled from the
// redacted question.
func (cs *chatService) persistExchange(ctx context.Context, uow unitofwork.UnitOfWork, userId string, conversation *entity.Conversation, question, answer string) (*dto.SendChatResponse, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()

	if conversation == nil {
		conversation = &entity.Conversation{
			Id:        uuid.New(),
			UserId:    userId,
			Title:     titleFromMessage(question),
			CreatedAt: now,
		}
		if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
			return nil, err
		}
	}

	count, err := uow.MessageRepository().CountByConversation(ctx, conversation.Id)
	if err != nil {
		return nil, err
	}

	userMessage := entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleUser,
		Content:        question,
		Ordinal:        int(count) + 1,
		CreatedAt:      now,
	}
	assistantMessage := entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleAssistant,
		Content:        answer,
		Ordinal:        int(count) + 2,
		CreatedAt:      now,
	}

	if err := uow.MessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}
	if err := uow.MessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}

	conversation.MessageCount = int(count) + 2
	conversation.UpdatedAt = &now
	if err := uow.ConversationRepository().Update(ctx, conversation); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		ConversationId:    conversation.Id,
		ConversationTitle: conversation.Title,
		Sent:              messageToDTO(&userMessage),
		Reply:             messageToDTO(&assistantMessage),
	}, nil
}

func (cs *chatService) CreateConversation(ctx context.Context, userId string, request *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	title := constant.DefaultConversationTitle
	if request != nil && request.Title != "" {
		title = privacy.Sanitize(request.Title)
	}

	conversation := entity.Conversation{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		CreatedAt: time.Now(),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationRepository().Create(ctx, &conversation); err != nil {
		return nil, err
	}

	return conversationToDTO(&conversation), nil
}

func (cs *chatService) GetConversations(ctx context.Context, userId, clientIP string) (*dto.ConversationListResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ConversationRepository().Find(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ConversationResponse, len(conversations))
	for i, c := range conversations {
		responses[i] = conversationToDTO(c)
	}

	return &dto.ConversationListResponse{
		Conversations: responses,
		DailyUsage:    cs.gate.Usage(ctx, userId),
		DailyLimit:    cs.gate.Limit(),
		IsAdmin:       cs.gate.IsAdmin(clientIP),
	}, nil
}

func (cs *chatService) GetConversation(ctx context.Context, userId string, conversationId uuid.UUID) (*dto.ConversationDetailResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	conversation, err := cs.loadOwnedConversation(ctx, uow, userId, conversationId)
	if err != nil {
		return nil, err
	}

	messages, err := uow.MessageRepository().Find(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.OrderBy{Field: "ordinal", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	messageDTOs := make([]*dto.SentMessageDTO, len(messages))
	for i, m := range messages {
		messageDTOs[i] = messageToDTO(m)
	}

	return &dto.ConversationDetailResponse{
		Conversation: conversationToDTO(conversation),
		Messages:     messageDTOs,
	}, nil
}

func (cs *chatService) DeleteConversation(ctx context.Context, userId string, conversationId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	conversation, err := cs.loadOwnedConversation(ctx, uow, userId, conversationId)
	if err != nil {
		return err
	}

	// Soft delete: the conversation disappears from listings but its
	// messages keep counting against today's quota.
	return uow.ConversationRepository().SoftDelete(ctx, conversation.Id)
}

func titleFromMessage(message string) string {
	runes := []rune(message)
	if len(runes) > constant.ConversationTitleMaxLen {
		runes = runes[:constant.ConversationTitleMaxLen]
	}
	title := strings.TrimSpace(string(runes)) + "..."
	return privacy.Sanitize(title)
}

func messageToDTO(m *entity.Message) *dto.SentMessageDTO {
	return &dto.SentMessageDTO{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		Ordinal:   m.Ordinal,
		CreatedAt: m.CreatedAt,
	}
}

func conversationToDTO(c *entity.Conversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		Id:           c.Id,
		Title:        c.Title,
		MessageCount: c.MessageCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
