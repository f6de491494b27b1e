package config

import (
	"os"
	"strings"
	"time"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	DBDriver string
	DBDSN    string

	BlobBasePath string // audio answers land here

	AuthSecret    string
	AdminUser     string
	AdminPassHash string // bcrypt

	// OracleProvider: "offline" (deterministic rubric scorer) or "genai".
	OracleProvider string
	GenAIAPIKey    string
	GenAIModel     string
	OracleTimeout  time.Duration

	// Transcriber: "none" or "whisper" (local whisper-cli).
	Transcriber string

	SiteID string // tag for the event log

	CORSOriginsOnline  []string
	CORSOriginsOffline []string
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Mode:         mode,
		HTTPAddr:     addr,
		DBDriver:     envOr("DB_DRIVER", "sqlite"),
		DBDSN:        envOr("DB_DSN", ""),
		BlobBasePath: envOr("BLOB_BASE_PATH", "./data"),

		AuthSecret:    envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:     envOr("ADMIN_USER", "admin"),
		AdminPassHash: envOr("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),

		OracleProvider: envOr("ORACLE_PROVIDER", "offline"),
		GenAIAPIKey:    os.Getenv("GENAI_API_KEY"),
		GenAIModel:     envOr("GENAI_MODEL", "gemini-1.5-flash"),
		OracleTimeout:  time.Duration(envInt("ORACLE_TIMEOUT_SEC", 30)) * time.Second,

		Transcriber: envOr("TRANSCRIBER", "none"),

		SiteID: envOr("SITE_ID", "local"),

		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://app.linguaprep.io"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
