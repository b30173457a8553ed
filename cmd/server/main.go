package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"dash-backend/internal/archive"
	"dash-backend/internal/cache"
	"dash-backend/internal/config"
	"dash-backend/internal/db"
	"dash-backend/internal/handlers"
	"dash-backend/internal/health"
	apphttp "dash-backend/internal/http"
	"dash-backend/internal/middleware"
	"dash-backend/internal/monitoring"
	"dash-backend/internal/pdfgen"
	"dash-backend/internal/repositories"
	"dash-backend/internal/services"
)

func main() {
	cfg := config.Load()

	client, database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer client.Disconnect(context.Background())

	// Redis cache is optional; on failure every lookup is a miss
	if err := cache.Init(); err != nil {
		log.Printf("[Cache] Redis unavailable, running without cache: %v", err)
	}

	// Repositories
	clientRepo := repositories.NewClientRepository(database)
	productRepo := repositories.NewProductRepository(database)
	orderRepo := repositories.NewOrderRepository(database)
	invoiceRepo := repositories.NewInvoiceRepository(database)

	// Services
	clientService := services.NewClientService(clientRepo, orderRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, clientRepo, productRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo)
	dashboardService := services.NewDashboardService(clientRepo, productRepo, invoiceRepo)

	renderer := pdfgen.NewRenderer()

	fulfillmentService := services.NewFulfillmentService(orderRepo, clientRepo, productRepo, invoiceRepo)
	fulfillmentService.Renderer = renderer
	if cfg.Archive.Enabled {
		archiveClient, err := archive.New(context.Background(), cfg)
		if err != nil {
			log.Printf("[Archive] Disabled, client setup failed: %v", err)
		} else {
			fulfillmentService.Archive = archiveClient
			log.Printf("[Archive] Uploading invoice PDFs to bucket %s", cfg.Archive.Bucket)
		}
	}

	// Handlers
	clientHandler := handlers.NewClientHandler(clientService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService, fulfillmentService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, renderer)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(client))

	router := apphttp.NewRouter(
		clientHandler,
		productHandler,
		orderHandler,
		invoiceHandler,
		dashboardHandler,
		healthHandler,
	)

	// System monitoring dashboard on a separate port
	go monitoring.NewMonitoringServer(client, cfg.Server.MonitoringPort).Start()

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(
		middleware.RequestLogging(
			middleware.MetricsMiddleware(corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
