//регистрация, аутентификация и авторизация пользователей;
//хранение заметок и выдача их владельцу по запросу.

//POST   /user/register    # Регистрация (публичный)
//POST   /user/login       # Логин (публичный)
//POST   /user/logout      # Завершение сессии (auth)
//GET    /user/me          # Текущий пользователь (auth)
//GET    /api/notes        # Список заметок (auth)
//POST   /api/notes        # Создать заметку (auth)
//GET    /api/notes/{id}   # Получить заметку (auth)
//PUT    /api/notes/{id}   # Обновить заметку (auth)
//DELETE /api/notes/{id}   # Удалить заметку (auth)

package api

import (
	"time"

	healthAPI "gophnotes/internal/app/server/api/http/health"
	"gophnotes/internal/app/server/api/http/middleware"
	"gophnotes/internal/app/server/api/http/middleware/auth"
	"gophnotes/internal/app/server/api/http/middleware/logger"
	noteAPI "gophnotes/internal/app/server/api/http/note"
	userAPI "gophnotes/internal/app/server/api/http/user"
	"gophnotes/internal/app/server/config"
	"gophnotes/internal/domain/note"
	"gophnotes/internal/domain/session"
	"gophnotes/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// Repositories — хранилища всех доменов; конкретный драйвер выбирает main.
type Repositories struct {
	Users    user.Repository
	Sessions session.Repository
	Notes    note.Repository
}

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Note   *noteAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(repos Repositories, cache note.ListCache, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Gophnotes API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(repos, cache, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Note.SetupRoutes(API)

	return mux
}

func handlers(repos Repositories, cache note.ListCache, cfg *config.Config, log *slog.Logger) *Handlers {
	ttl := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	sessionService := session.NewService(repos.Sessions, cfg.Auth.Secret, ttl, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userService := user.NewService(repos.Users, user.NewCredentialsValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	publicMWs := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, publicMWs, middlewares.GetAllAndClear())

	noteService := note.NewService(repos.Notes, cache, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	noteHandler := noteAPI.NewHandler(noteService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Note:   noteHandler,
	}
}
