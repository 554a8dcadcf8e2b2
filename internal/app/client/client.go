package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"gophnotes/internal/app/client/config"
)

// App — сеанс работы с сервером: владеет токеном, профилем пользователя
// и рабочей областью заметок.
type App struct {
	config        *config.Config
	log           *slog.Logger
	httpClient    *httpClient
	workspace     *Workspace
	state         *AppState
	account       *Account
	authenticated bool
	mu            gosync.RWMutex
}

// AppState хранит состояние приложения между запусками
type AppState struct {
	UserEmail   string    `json:"user_email"`
	LastRefresh time.Time `json:"last_refresh"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	state, err := loadAppState(cfg)
	if err != nil {
		log.Warn("Не удалось загрузить состояние приложения", "error", err)
		state = &AppState{}
	}

	// Инициализируем HTTP клиент
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		state:      state,
	}

	app.workspace = NewWorkspace(httpCl, log)

	// Загружаем токен если он есть
	if token, err := app.GetToken(); err == nil && token != "" {
		httpCl.SetToken(token)
		app.mu.Lock()
		app.authenticated = true
		app.mu.Unlock()
		log.Debug("Токен загружен из файла")
	}

	return app, nil
}

func loadAppState(cfg *config.Config) (*AppState, error) {
	statePath := cfg.ConfigDir + "/state.json"

	if _, err := os.Stat(statePath); os.IsNotExist(err) {
		return &AppState{}, nil
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		return nil, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

func (a *App) saveAppState() error {
	statePath := a.config.ConfigDir + "/state.json"
	data, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(statePath, data, 0600)
}

// Workspace возвращает рабочую область заметок
func (a *App) Workspace() *Workspace {
	return a.workspace
}

// CheckConnection проверяет соединение с сервером
func (a *App) CheckConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return a.httpClient.HealthCheck(ctx)
}

// IsAuthenticated проверяет, аутентифицирован ли пользователь
func (a *App) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.authenticated {
		token, err := a.GetToken()
		if err == nil && token != "" {
			a.authenticated = true
		}
	}

	return a.authenticated
}

// CurrentUser возвращает профиль, полученный последним вызовом Resolve
func (a *App) CurrentUser() *Account {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.account
}

// UserEmail возвращает email из сохраненного состояния
func (a *App) UserEmail() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.UserEmail
}

// GetToken возвращает сохраненный токен
func (a *App) GetToken() (string, error) {
	tokenBytes, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("токен не найден. Выполните вход: gophnotes auth login")
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}
	return string(tokenBytes), nil
}

// SaveToken сохраняет токен аутентификации
func (a *App) SaveToken(token string) error {
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	a.httpClient.SetToken(token)

	return nil
}

// ClearToken удаляет токен и сбрасывает сеанс
func (a *App) ClearToken() error {
	a.mu.Lock()
	a.authenticated = false
	a.account = nil
	a.state.UserEmail = ""

	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		a.mu.Unlock()
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}

	if err := a.saveAppState(); err != nil {
		a.mu.Unlock()
		return fmt.Errorf("ошибка сохранения состояния: %w", err)
	}
	a.mu.Unlock()

	a.httpClient.SetToken("")
	a.workspace.Clear()

	return nil
}

// SignUp регистрирует пользователя и сразу открывает сеанс
func (a *App) SignUp(ctx context.Context, email, password string) error {
	token, err := a.httpClient.Register(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.openSession(token, email); err != nil {
		return err
	}

	a.log.Info("Пользователь успешно зарегистрирован", "email", email)
	return nil
}

// SignIn выполняет вход пользователя
func (a *App) SignIn(ctx context.Context, email, password string) error {
	token, err := a.httpClient.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.openSession(token, email); err != nil {
		return err
	}

	a.log.Info("Вход выполнен успешно", "email", email)
	return nil
}

func (a *App) openSession(token, email string) error {
	if err := a.SaveToken(token); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	a.mu.Lock()
	a.authenticated = true
	a.state.UserEmail = email

	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	// Сеанс сменился, кэш прежнего пользователя недействителен
	a.workspace.Clear()

	return nil
}

// SignOut завершает сеанс на сервере и локально.
// Локальный сеанс сбрасывается даже если сервер недоступен.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.httpClient.Logout(ctx); err != nil && !errors.Is(err, ErrUnauthorized) {
		a.log.Warn("Не удалось отозвать сессию на сервере", "error", err)
	}

	return a.ClearToken()
}

// Resolve проверяет токен на сервере и загружает профиль пользователя.
// Просроченный или отозванный токен удаляется.
func (a *App) Resolve(ctx context.Context) (*Account, error) {
	if !a.IsAuthenticated() {
		return nil, ErrUnauthorized
	}

	account, err := a.httpClient.Me(ctx)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			if clearErr := a.ClearToken(); clearErr != nil {
				a.log.Warn("Не удалось сбросить сеанс", "error", clearErr)
			}
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	a.mu.Lock()
	a.account = account
	a.state.UserEmail = account.Email
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", "error", err)
	}
	a.mu.Unlock()

	return account, nil
}
