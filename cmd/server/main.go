// Command server runs the ambient HTTP transport over internal/facade,
// in the teacher's own cmd/server/main.go shape (gin.Default(), a
// graceful-shutdown goroutine on SIGINT/SIGTERM) with the puzzle-bank
// loader and JWT bootstrap dropped, since this module's facade needs
// neither (see DESIGN.md).
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httptransport "github.com/jrm-1535/sudoku-lib-sub000/internal/transport/http"
	"github.com/jrm-1535/sudoku-lib-sub000/pkg/config"
)

func main() {
	cfg := config.Load()

	r := gin.Default()
	httptransport.RegisterRoutes(r, cfg)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		}
	}()

	log.Printf("starting server on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("failed to start server: %v", err)
	}
}
