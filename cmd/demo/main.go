// Command demo runs a small HTTP server exercising every validated
// segment: a signup route with a body schema, a notes route with query and
// path schemas, a profile route with a relaxed headers schema, and a
// greeting route validating cookies and signed cookies.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/gatekit"
	"github.com/dmitrymomot/gatekit/pkg/config"
	"github.com/dmitrymomot/gatekit/pkg/cookiesign"
	"github.com/dmitrymomot/gatekit/pkg/httpserver"
	"github.com/dmitrymomot/gatekit/pkg/logger"
	"github.com/dmitrymomot/gatekit/schema"
)

type appConfig struct {
	Addr         string `env:"ADDR" envDefault:":8080"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	CookieSecret string `env:"COOKIE_SECRET" envDefault:"demo-secret-demo-secret-demo-secret!"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(slog.LevelDebug),
		logger.WithAttr(slog.String("service", "gatekit-demo")),
	)

	signer, err := cookiesign.New(cfg.CookieSecret)
	if err != nil {
		log.Error("cookie signer setup failed", logger.Error(err))
		os.Exit(1)
	}

	responder := gatekit.NewResponder(gatekit.WithLogger(log))
	opts := []gatekit.Option{
		gatekit.WithResponder(responder),
		gatekit.WithSigner(signer),
	}

	r := chi.NewRouter()

	r.With(gatekit.Validate(gatekit.SchemaMap{
		gatekit.Body: schema.MustNew(
			schema.String("name").Min(3).Max(30).Required(),
			schema.String("email").Pattern(`^[^@\s]+@[^@\s]+\.[^@\s]+$`).Required(),
			schema.String("password").Pattern(`^[a-zA-Z0-9]{3,30}$`).Required(),
			schema.String("repeat_password").Ref("password").Required(),
			schema.Number("age").Min(18).Required(),
		),
	}, opts...)).Post("/signup", signupHandler(log))

	r.With(gatekit.Validate(gatekit.SchemaMap{
		gatekit.Query: schema.MustNew(
			schema.String("token").Required(),
		),
		gatekit.Params: schema.MustNew(
			schema.String("noteId").Pattern(`^[a-zA-Z0-9]+$`).Len(12).Required(),
		),
	}, opts...)).Get("/notes/{noteId}", noteHandler)

	r.With(gatekit.Validate(gatekit.SchemaMap{
		gatekit.Headers: schema.MustNew(
			schema.String("x-api-key").Min(16).Required(),
		).AllowUnknown(),
	}, opts...)).Get("/profile", profileHandler)

	r.Get("/welcome", welcomeHandler(signer))

	r.With(gatekit.Validate(gatekit.SchemaMap{
		gatekit.Cookies: schema.MustNew(
			schema.String("name").Min(2).Required(),
		).AllowUnknown(),
		gatekit.SignedCookies: schema.MustNew(
			schema.String("jwt").Len(36).Required(),
		),
	}, opts...)).Get("/greet", greetHandler)

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithLogger(log),
	)
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}

func signupHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := gatekit.SegmentData(r.Context(), gatekit.Body)

		password, _ := body["password"].(string)
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		id := uuid.New()
		log.Info("user registered",
			slog.String("user_id", id.String()),
			slog.Int("password_hash_len", len(hash)),
		)

		writeJSON(w, http.StatusCreated, map[string]any{
			"id":    id.String(),
			"name":  body["name"],
			"email": body["email"],
			"age":   body["age"],
		})
	}
}

func noteHandler(w http.ResponseWriter, r *http.Request) {
	noteID, _ := gatekit.SegmentValue(r.Context(), gatekit.Params, "noteId")
	token, _ := gatekit.SegmentValue(r.Context(), gatekit.Query, "token")

	writeJSON(w, http.StatusOK, map[string]any{
		"noteId": noteID,
		"token":  token,
	})
}

func profileHandler(w http.ResponseWriter, r *http.Request) {
	apiKey, _ := gatekit.SegmentValue(r.Context(), gatekit.Headers, "x-api-key")

	writeJSON(w, http.StatusOK, map[string]any{
		"apiKey": apiKey,
	})
}

// welcomeHandler issues the cookies that /greet validates: a plain "name"
// cookie and a signed "jwt" cookie.
func welcomeHandler(signer *cookiesign.Signer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "name", Value: "visitor", Path: "/"})
		signer.SetSigned(w, &http.Cookie{Name: "jwt", Value: uuid.NewString(), Path: "/"})

		writeJSON(w, http.StatusOK, map[string]any{"message": "cookies set"})
	}
}

func greetHandler(w http.ResponseWriter, r *http.Request) {
	name, _ := gatekit.SegmentValue(r.Context(), gatekit.Cookies, "name")
	jwt, _ := gatekit.SegmentValue(r.Context(), gatekit.SignedCookies, "jwt")

	writeJSON(w, http.StatusOK, map[string]any{
		"name": name,
		"jwt":  jwt,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
