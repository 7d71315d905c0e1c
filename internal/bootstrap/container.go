package bootstrap

import (
	"log"
	"time"

	"legal-assistant-be/internal/config"
	"legal-assistant-be/internal/controller"
	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/repository/implementation"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/internal/service"
	"legal-assistant-be/pkg/embedding"
	"legal-assistant-be/pkg/llm/factory"
	"legal-assistant-be/pkg/quota"
	"legal-assistant-be/pkg/rag/assembler"
	"legal-assistant-be/pkg/retrieval"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	DocumentController controller.IDocumentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, "")
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Retrieval Pipeline
	// Standalone repositories run outside the unit of work: retrieval and
	// quota checks are read-only.
	decisionRepo := implementation.NewDecisionRepository(db)
	chunkRepo := implementation.NewDecisionChunkRepository(db)
	statuteRepo := implementation.NewStatuteRepository(db)
	messageRepo := implementation.NewMessageRepository(db)

	lexicalSearcher := retrieval.NewLexicalSearcher(decisionRepo, sysLogger)
	vectorSearcher := retrieval.NewVectorSearcher(
		chunkRepo,
		embeddingProvider,
		lexicalSearcher,
		sysLogger,
		time.Duration(cfg.Ai.EmbedTimeoutSeconds)*time.Second,
	)
	searcher := retrieval.NewHybridSearcher(vectorSearcher, lexicalSearcher)

	contextAssembler := assembler.NewAssembler()
	secondaryAssembler := assembler.NewSecondaryAssembler(decisionRepo, statuteRepo, sysLogger)

	gate := quota.NewGate(messageRepo, cfg.Chat.DailyMessageLimit, cfg.Chat.AdminIPs, sysLogger)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedDecisionTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedDecisionTopic,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	documentService := service.NewDocumentService(uowFactory, publisherService, sysLogger)
	chatService := service.NewChatService(
		uowFactory,
		gate,
		searcher,
		contextAssembler,
		secondaryAssembler,
		llmProvider,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		ChatController:     controller.NewChatController(chatService),
		DocumentController: controller.NewDocumentController(documentService),

		ConsumerService: consumerService,
	}
}
