package wire

import (
	"io"

	"movie-reservation/internal/adaptor"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/usecase"
	"movie-reservation/pkg/utils"

	"go.uber.org/zap"
)

// App holds the wired application surface.
type App struct {
	Handler *adaptor.Handler
}

// Wiring initializes all dependencies on top of an already-seeded repository.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger, out io.Writer) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, out, logger)

	return &App{
		Handler: handler,
	}
}
