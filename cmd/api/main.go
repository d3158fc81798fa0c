package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leadmapr/leadmapr/internal/entity"
	"github.com/leadmapr/leadmapr/internal/infra/database"
	"github.com/leadmapr/leadmapr/internal/infra/http/handlers"
	"github.com/leadmapr/leadmapr/internal/infra/http/middleware"
	"github.com/leadmapr/leadmapr/internal/infra/integration/dodo"
	"github.com/leadmapr/leadmapr/internal/infra/integration/openai"
	"github.com/leadmapr/leadmapr/internal/infra/integration/places"
	"github.com/leadmapr/leadmapr/internal/infra/mail"
	"github.com/leadmapr/leadmapr/internal/infra/queue"
	"github.com/leadmapr/leadmapr/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	userRepo := database.NewUserRepository(db)
	sessionRepo := database.NewLeadSessionRepository(db)

	// 2. Gateways and adapters
	placesClient := places.NewClient(os.Getenv("GOOGLE_PLACES_API_KEY"))
	dodoClient := dodo.NewClient(os.Getenv("DODO_API_KEY"), os.Getenv("DODO_BASE_URL"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	tokens := middleware.NewTokenManager(os.Getenv("SESSION_SECRET"), 7*24*time.Hour)

	var emailSender usecase.EmailService
	if os.Getenv("MAIL_HOST") != "" {
		emailSender = mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), 587,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
		)
	}

	var summaries usecase.SummaryProvider
	if os.Getenv("OPENAI_API_KEY") != "" {
		summaries = openai.NewClient(os.Getenv("OPENAI_API_KEY"))
	}

	// 3. Worker (drains the archival queue into Postgres)
	worker := queue.NewWorker(rabbitMQ.Ch, sessionRepo)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	checkUsageUC := usecase.NewCheckUsageUseCase(
		userRepo,
		splitEmails(os.Getenv("OVERRIDE_EMAILS")),
		envInt("OVERRIDE_LIMIT", usecase.DefaultOverrideLimit),
	)
	exportUC := usecase.NewExportLeadsUseCase(checkUsageUC, userRepo)
	searchUC := usecase.NewSearchLeadsUseCase(placesClient, producer)
	signupUC := usecase.NewSignupUseCase(userRepo, emailSender)
	loginUC := usecase.NewLoginUseCase(userRepo, tokens)
	enrichUC := usecase.NewEnrichLeadUseCase(summaries)
	checkoutUC := usecase.NewCreateCheckoutUseCase(userRepo, dodoClient, dodoProducts(), envOr("CHECKOUT_SUCCESS_URL", "http://localhost:3000/dashboard/billing?success=true"))
	webhookUC := usecase.NewProcessWebhookUseCase(userRepo, dodoTiers())

	// 5. Handlers
	authHandler := handlers.NewAuthHandler(signupUC, loginUC)
	usageHandler := handlers.NewUsageHandler(checkUsageUC)
	searchHandler := handlers.NewSearchHandler(searchUC)
	exportHandler := handlers.NewExportHandler(exportUC)
	enrichHandler := handlers.NewEnrichHandler(enrichUC)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUC)
	webhookHandler := handlers.NewWebhookHandler(webhookUC, os.Getenv("DODO_WEBHOOK_SECRET"))
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Post("/auth/signup", authHandler.HandleSignup)
	r.Post("/auth/login", authHandler.HandleLogin)
	r.Post("/webhook/dodo", webhookHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(tokens.RequireAuth)
		r.Get("/user/usage", usageHandler.HandleGetUsage)
		r.Post("/leads/search", searchHandler.HandleSearch)
		r.Post("/leads/export", exportHandler.HandleExport)
		r.Post("/leads/enrich", enrichHandler.HandleEnrich)
		r.Post("/billing/checkout", checkoutHandler.HandleCheckout)
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("LeadMapr API listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitEmails(raw string) []string {
	var emails []string
	for _, e := range strings.Split(raw, ",") {
		if e = strings.TrimSpace(e); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

// dodoProducts: paid tier -> Dodo product ID, from the dashboard.
func dodoProducts() map[entity.SubscriptionTier]string {
	return map[entity.SubscriptionTier]string{
		entity.TierStarter: os.Getenv("DODO_PRODUCT_STARTER"),
		entity.TierPro:     os.Getenv("DODO_PRODUCT_PRO"),
		entity.TierAgency:  os.Getenv("DODO_PRODUCT_AGENCY"),
	}
}

func dodoTiers() map[string]entity.SubscriptionTier {
	tiers := make(map[string]entity.SubscriptionTier)
	for tier, productID := range dodoProducts() {
		if productID != "" {
			tiers[productID] = tier
		}
	}
	return tiers
}
