package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler checks credentials against the users table, plus a single
// env-configured admin account, and hands back an HS256 JWT.
func LoginHandler(a *AuthService, db *sql.DB, adminUser, adminPassHash string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c credentials
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		c.Username = strings.TrimSpace(c.Username)
		if c.Username == "" || c.Password == "" {
			http.Error(w, "username and password required", http.StatusBadRequest)
			return
		}

		sub, role := "", ""
		if c.Username == adminUser {
			if bcrypt.CompareHashAndPassword([]byte(adminPassHash), []byte(c.Password)) != nil {
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			sub, role = adminUser, "admin"
		} else {
			var id, hash string
			err := db.QueryRowContext(r.Context(),
				`SELECT id, pass_hash, role FROM users WHERE username = $1`,
				c.Username).Scan(&id, &hash, &role)
			if err == sql.ErrNoRows {
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			if err != nil {
				http.Error(w, "login failed", http.StatusInternalServerError)
				return
			}
			if bcrypt.CompareHashAndPassword([]byte(hash), []byte(c.Password)) != nil {
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			sub = id
		}

		tok, err := a.IssueJWT(sub, role)
		if err != nil {
			http.Error(w, "token issue failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": tok,
			"token_type":   "Bearer",
			"role":         role,
		})
	}
}

// RegisterHandler creates a student account. Usernames are unique; the
// password is stored as a bcrypt hash only.
func RegisterHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c credentials
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		c.Username = strings.TrimSpace(c.Username)
		if len(c.Username) < 3 || len(c.Password) < 8 {
			http.Error(w, "username >= 3 chars and password >= 8 chars required", http.StatusBadRequest)
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "hash failed", http.StatusInternalServerError)
			return
		}
		id := uuid.NewString()
		_, err = db.ExecContext(r.Context(),
			`INSERT INTO users (id, username, pass_hash, role, created_at)
			 VALUES ($1,$2,$3,'student',$4)`,
			id, c.Username, string(hash), time.Now().Unix())
		if err != nil {
			http.Error(w, "username taken", http.StatusConflict)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": id, "username": c.Username})
	}
}
