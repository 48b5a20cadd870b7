package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"library-loan-service/internal/adapter/gateway"
	httpadp "library-loan-service/internal/adapter/http"
	appmw "library-loan-service/internal/adapter/middleware"
	"library-loan-service/internal/adapter/repository/mysql"
	"library-loan-service/internal/config"
	loanDomain "library-loan-service/internal/domain/loan"
	"library-loan-service/internal/infrastructure/cache"
	"library-loan-service/internal/infrastructure/db"
	loanUC "library-loan-service/internal/usecase/loan"
	"library-loan-service/pkg/id"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&loanDomain.Loan{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	repo := mysql.NewLoanRepository(gdb)
	guow := mysql.NewGormUoW(gdb)
	books := gateway.NewBookClient(cfg.BookServiceURL, cfg.GatewayTimeout())
	members := gateway.NewMemberClient(cfg.MemberServiceURL, cfg.GatewayTimeout())
	uc := loanUC.NewUsecase(repo, guow, books, members)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}))
	e.Use(middleware.Logger(), middleware.Recover())

	idem := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.GET("/loans", lh.ListLoans)
	e.POST("/loans", lh.CreateLoan, idem)
	e.GET("/loans/status/pending", lh.ListPending)
	e.GET("/loans/status/overdue", lh.ListOverdue)
	e.GET("/loans/member/:member_id", lh.ListByMember)
	e.GET("/loans/book/:book_id", lh.ListByBook)
	e.GET("/loans/:id", lh.GetLoan)
	e.PUT("/loans/:id/approve", lh.DecideLoan, idem)
	e.PUT("/loans/:id/return", lh.ReturnLoan, idem)
	e.DELETE("/loans/:id", lh.DeleteLoan, idem)

	addr := ":" + cfg.AppPort
	log.Printf("loan service listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
