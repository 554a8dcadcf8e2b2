package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"gophnotes/internal/app/client/config"
)

// ErrUnauthorized возвращается на любой ответ 401: токена нет, он истек
// или сессия отозвана. Верхний уровень по этой ошибке отправляет на вход.
var ErrUnauthorized = errors.New("требуется вход в систему")

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			DisableCompression:  false,
			DisableKeepAlives:   false,
			MaxIdleConnsPerHost: 10,
		},
	}

	// Определяем протокол
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   baseURL,
		userAgent: "Gophnotes-Client/1.0",
	}, nil
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	return nil
}

// ==================== Auth ====================

// Register создает аккаунт и сразу открывает сессию.
func (h *httpClient) Register(ctx context.Context, email, password string) (string, error) {
	req := credentialsRequest{Email: email, Password: password}

	resp, err := h.doRequest(ctx, "POST", "/user/register", req)
	if err != nil {
		return "", err
	}

	var registerResp struct {
		Token string `json:"token"`
	}

	if err := h.parseResponse(resp, &registerResp); err != nil {
		return "", err
	}

	h.SetToken(registerResp.Token)
	return registerResp.Token, nil
}

func (h *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	req := credentialsRequest{Email: email, Password: password}

	resp, err := h.doRequest(ctx, "POST", "/user/login", req)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}

	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	h.SetToken(loginResp.Token)
	return loginResp.Token, nil
}

// Logout отзывает сессию на сервере
func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, "POST", "/user/logout", nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// Me возвращает профиль владельца текущего токена
func (h *httpClient) Me(ctx context.Context) (*Account, error) {
	resp, err := h.doRequest(ctx, "GET", "/user/me", nil)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := h.parseResponse(resp, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// ==================== Notes ====================

func (h *httpClient) ListNotes(ctx context.Context) ([]Note, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/notes", nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Notes []Note `json:"notes"`
		Total int    `json:"total"`
	}

	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Notes, nil
}

func (h *httpClient) CreateNote(ctx context.Context, title, content string) (*Note, error) {
	req := noteRequest{Title: title, Content: content}

	resp, err := h.doRequest(ctx, "POST", "/api/notes", req)
	if err != nil {
		return nil, err
	}

	return h.parseNoteResponse(resp)
}

func (h *httpClient) UpdateNote(ctx context.Context, id, title, content string) (*Note, error) {
	req := noteRequest{Title: title, Content: content}

	resp, err := h.doRequest(ctx, "PUT", "/api/notes/"+id, req)
	if err != nil {
		return nil, err
	}

	return h.parseNoteResponse(resp)
}

func (h *httpClient) GetNote(ctx context.Context, id string) (*Note, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/notes/"+id, nil)
	if err != nil {
		return nil, err
	}

	return h.parseNoteResponse(resp)
}

func (h *httpClient) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, "DELETE", "/api/notes/"+id, nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// ==================== Wire helpers ====================

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *httpClient) parseNoteResponse(resp *http.Response) (*Note, error) {
	var noteResp struct {
		Status string `json:"status"`
		Note   *Note  `json:"note"`
	}

	if err := h.parseResponse(resp, &noteResp); err != nil {
		return nil, err
	}

	if noteResp.Note == nil {
		return nil, fmt.Errorf("сервер вернул пустую заметку")
	}

	return noteResp.Note, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		// Тело может быть как {"error": ...}, так и problem+json от Huma
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
			Title  string `json:"title"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			switch {
			case errResp.Error != "":
				return fmt.Errorf("ошибка сервера: %s", errResp.Error)
			case errResp.Detail != "":
				return fmt.Errorf("ошибка сервера: %s", errResp.Detail)
			case errResp.Title != "":
				return fmt.Errorf("ошибка сервера: %s", errResp.Title)
			}
		}
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
