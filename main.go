package main

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ayursutra-server/internal/assessment"
	"ayursutra-server/internal/assistant"
	"ayursutra-server/internal/config"
	"ayursutra-server/internal/logging"
	"ayursutra-server/internal/nlu"
	"ayursutra-server/internal/prescriptions"
	"ayursutra-server/internal/routes"
	"ayursutra-server/internal/session"
	"ayursutra-server/internal/voice"
)

func main() {
	// Load environment variables; a missing .env just means the
	// process environment is used as-is.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic("Error loading config: " + err.Error())
	}

	log, err := logging.Init(cfg.Environment)
	if err != nil {
		panic("Error initializing logger: " + err.Error())
	}
	defer log.Sync()

	questionnaire, err := assessment.LoadQuestionnaire(cfg.Assessment.QuestionsPath)
	if err != nil {
		log.Fatal("Failed to load questionnaire", zap.Error(err))
	}

	// The NLU boundary degrades to a canned mock when no API key is
	// configured, so the rest of the prototype stays usable.
	var nluClient nlu.Client
	if cfg.Gemini.APIKey != "" {
		client, err := nlu.NewGeminiClient(context.Background(), cfg.Gemini)
		if err != nil {
			log.Fatal("Failed to create Gemini client", zap.Error(err))
		}
		nluClient = client
	} else {
		log.Warn("GEMINI_API_KEY not set, using mock NLU client")
		nluClient = nlu.NewMockClient(`{"patientName":"","patientAge":null,"therapies":[],"dosageAndTiming":[]}`)
	}

	sessions := session.NewStore(cfg)
	prescriptionSvc := prescriptions.NewService(nluClient, log, prescriptions.Seed())
	assistantSvc := assistant.NewService(nluClient, assistant.SimulatedTranslator{}, log)
	voiceGateway := voice.NewGateway(true)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, routes.Deps{
		Log:           log,
		Sessions:      sessions,
		Questionnaire: questionnaire,
		Prescriptions: prescriptionSvc,
		Assistant:     assistantSvc,
		Voice:         voiceGateway,
	})

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("Server running", zap.String("port", cfg.Port), zap.Bool("mock_auth", cfg.MockAuth))
	if err := router.Run(serverAddr); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
