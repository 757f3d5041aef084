package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/auth"
	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/ledger"
	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/member"
	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/payment"
	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/sales"
	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/staff"
	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/stock"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret"
		log.Println("JWT_SECRET not set, using development default")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Phase 1: Staff & Auth ───────────────────────────────
	staffRepo := staff.NewFileRepository(filepath.Join(dataDir, "staff.txt"))
	staffService := staff.NewService(staffRepo)
	staff.NewHandler(staffService).RegisterRoutes(router)

	authService := auth.NewService(staffRepo, []byte(jwtSecret))
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Phase 2: Membership ─────────────────────────────────
	memberRepo := member.NewFileRepository(filepath.Join(dataDir, "members.txt"))
	memberService := member.NewService(memberRepo)
	member.NewHandler(memberService).RegisterRoutes(router)

	// ── Phase 3: Catalog & Cart ─────────────────────────────
	stockRepo := stock.NewFileRepository(filepath.Join(dataDir, "stock.txt"))
	stockService := stock.NewService(stockRepo)
	stock.NewHandler(stockService).RegisterRoutes(router)

	cart := sales.NewCart()
	salesService := sales.NewService(stockRepo, cart)
	sales.NewHandler(salesService).RegisterRoutes(router)

	// ── Phase 4: Settlement & Ledger ────────────────────────
	txRepo := ledger.NewTransactionFileRepository(filepath.Join(dataDir, "Transaction.txt"))
	paidRepo := ledger.NewPaidItemFileRepository(filepath.Join(dataDir, "PaidItems.txt"))
	ledgerService := ledger.NewService(txRepo, paidRepo)
	ledger.NewHandler(ledgerService).RegisterRoutes(router)

	paymentService := payment.NewService(cart, memberService, paidRepo, txRepo)
	payment.NewHandler(paymentService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("POS register starting on :%s (data dir %s)\n", port, dataDir)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
