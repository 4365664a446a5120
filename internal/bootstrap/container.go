package bootstrap

import (
	"context"
	"log"
	"time"

	"fit-buddy-be/internal/config"
	"fit-buddy-be/internal/controller"
	"fit-buddy-be/internal/pkg/logger"
	"fit-buddy-be/internal/repository/unitofwork"
	"fit-buddy-be/internal/service"
	"fit-buddy-be/pkg/embedding"
	"fit-buddy-be/pkg/iot"
	"fit-buddy-be/pkg/llm/factory"
	"fit-buddy-be/pkg/rag/architect"
	"fit-buddy-be/pkg/rag/knowledge"
	"fit-buddy-be/pkg/rag/librarian"
	"fit-buddy-be/pkg/rag/narrative"
	"fit-buddy-be/pkg/rag/retriever"
	"fit-buddy-be/pkg/sensor"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ProfileController    controller.IProfileController
	DictionaryController controller.IDictionaryController
	ProgramController    controller.IProgramController
	SessionController    controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// System logger, exposed for request middleware
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	stdLogger := log.Default()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	// Redis backs the IoT wait-prediction cache; the client degrades to
	// uncached predictions when it is unreachable.
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	iotClient := iot.NewClient(
		cfg.IoT.DataURL,
		rdb,
		time.Duration(cfg.IoT.WaitCacheTTL)*time.Second,
	)
	sensorClient := sensor.NewClient(cfg.IoT.DataURL)

	// 5. RAG Pipeline
	knowledgeLibrary := knowledge.NewLibrary(cfg.App.AssetsDir)
	uow := uowFactory.NewUnitOfWork(context.Background())
	knowledgeRetriever := retriever.NewRetriever(embeddingProvider, uow.KnowledgeItemRepository(), stdLogger)
	programArchitect := architect.NewArchitect(llmProvider, stdLogger)
	programLibrarian := librarian.NewLibrarian(knowledgeRetriever, stdLogger)
	programPersonalizer := narrative.NewPersonalizer(llmProvider, stdLogger)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedUpsertTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedUpsertTopic,
		uowFactory,
		embeddingProvider,
	)

	profileService := service.NewProfileService(uowFactory)
	dictionaryService := service.NewDictionaryService(uowFactory, publisherService)
	programService := service.NewProgramService(
		uowFactory,
		programArchitect,
		programLibrarian,
		programPersonalizer,
		knowledgeLibrary,
		stdLogger,
	)
	sessionService := service.NewSessionService(uowFactory, sensorClient)
	adaptationService := service.NewAdaptationService(
		uowFactory,
		iotClient,
		knowledgeRetriever,
		llmProvider,
		cfg.IoT.WaitThreshold,
		stdLogger,
	)

	// 7. Controllers
	return &Container{
		ProfileController:    controller.NewProfileController(profileService),
		DictionaryController: controller.NewDictionaryController(dictionaryService),
		ProgramController:    controller.NewProgramController(programService),
		SessionController:    controller.NewSessionController(sessionService, adaptationService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
