package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr         string
	GinMode         string
	APIBaseURL      string
	CheckoutURL     string
	DBDSN           string
	UpstreamTimeout time.Duration
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	apiBase := strings.TrimSpace(os.Getenv("API_BASE_URL"))
	if apiBase == "" {
		apiBase = "http://localhost:8090"
	}
	apiBase = strings.TrimRight(apiBase, "/")

	// Hosted checkout page; %s is substituted with the session id.
	checkoutURL := strings.TrimSpace(os.Getenv("CHECKOUT_URL"))
	if checkoutURL == "" {
		checkoutURL = "https://checkout.stripe.com/c/pay/%s"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/busbook_gateway?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	timeout := 15 * time.Second
	if raw := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT_SECONDS")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	return Env{
		AppAddr:         appAddr,
		GinMode:         ginMode,
		APIBaseURL:      apiBase,
		CheckoutURL:     checkoutURL,
		DBDSN:           dsn,
		UpstreamTimeout: timeout,
	}
}
