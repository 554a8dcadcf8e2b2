package types

type contextKey string

// ClientAppKey — ключ, под которым собранное приложение лежит в контексте команд
const ClientAppKey contextKey = "app"
