// Package api contains all endpoints available
package api

import (
	"fmt"
	"notedapp/noted/config"
	"notedapp/noted/db"
	"notedapp/noted/middleware"
	"notedapp/noted/pkg/security"
	"notedapp/noted/service"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Hasher  *security.Hasher
	Mail    *service.MailQueue
	Trends  *service.Trends
	Sweeper *cron.Cron

	cacheStore persist.CacheStore
}

func NewRouter() (*API, error) {
	a := &API{
		Hasher: security.NewHasher(),
		Mail:   service.NewMailQueue(),
	}

	db, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = db
	a.Trends = service.NewTrends(db)

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware(db)
	ajax := middleware.AJAXOnly()
	rateLimit := viper.GetInt("security.rate_limit")
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
	})

	main := router.Group("/api", rateLimiter)
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// GET /api/validate		-> Validates a JWT token
		main.GET("/validate", jwt, a.Validate)

		// GET /api/actions		-> Returns the activity feed of the user
		main.GET("/actions", jwt, a.ActionFeed)
	}

	users := main.Group("/users", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/users/signup-request	-> Mails a signup link to an email address
		users.POST("/signup-request", ajax, a.UserSignupRequest)

		// GET /api/users/validate-email	-> Tells the signup form if an email is taken
		users.GET("/validate-email", ajax, a.UserValidateEmail)

		// GET /api/users/signup/:token		-> Resolves a signup token to its email
		users.GET("/signup/:token", a.UserSignupForm)

		// POST /api/users/signup/:token	-> Completes registration
		users.POST("/signup/:token", a.UserSignup)

		// POST /api/users/signin		-> Checks credentials and sets the auth cookie
		users.POST("/signin", ajax, a.UserSignin)

		// GET /api/users/signout		-> Clears the auth cookie
		users.GET("/signout", a.UserSignout)

		// GET /api/users/me			-> Returns the signed in user
		users.GET("/me", jwt, a.UserMe)

		// GET /api/users/:username		-> Public profile of a user
		users.GET("/:username", a.UserProfile)

		// GET /api/users/:username/notes	-> Public notes of a user
		users.GET("/:username/notes", a.UserNotes)

		// GET /api/users/:username/follow	-> Follow/unfollow toggle
		users.GET("/:username/follow", jwt, ajax, a.UserFollow)

		// GET /api/users/:username/followers	-> Who follows the user
		users.GET("/:username/followers", a.UserFollowers)

		// GET /api/users/:username/following	-> Who the user follows
		users.GET("/:username/following", a.UserFollowing)
	}

	notes := main.Group("/notes")
	{
		// GET /api/notes			-> Lists public notes (order, tag, source filters)
		notes.GET("", a.NoteList)

		// GET /api/notes/welcome		-> Landing page payload (trends, top tags)
		notes.GET("/welcome", a.cacheFor(3600), a.NoteWelcome)

		// GET /api/notes/personal		-> All notes of the signed in user
		notes.GET("/personal", jwt, a.NotePersonal)

		// POST /api/notes			-> Creates a note
		notes.POST("", jwt, middleware.BodySizeLimiter(1<<20), a.NoteCreate)

		// GET /api/notes/:slug			-> Note details, bumps the view counter
		notes.GET("/:slug", a.NoteFetch)

		// PUT /api/notes/:slug			-> Updates a note owned by the user
		notes.PUT("/:slug", jwt, middleware.BodySizeLimiter(1<<20), a.NoteUpdate)

		// DELETE /api/notes/:slug		-> Deletes a note owned by the user
		notes.DELETE("/:slug", jwt, a.NoteDelete)

		// GET /api/notes/:slug/fork		-> Prefill payload for the fork form
		notes.GET("/:slug/fork", jwt, a.NoteForkPrefill)

		// POST /api/notes/:slug/fork		-> Creates a fork of a note
		notes.POST("/:slug/fork", jwt, middleware.BodySizeLimiter(1<<20), a.NoteFork)

		// GET /api/notes/:slug/pin		-> Pin toggle (author only)
		notes.GET("/:slug/pin", jwt, ajax, a.NotePin)

		// GET /api/notes/:slug/like		-> Like toggle
		notes.GET("/:slug/like", jwt, ajax, a.NoteLike)

		// GET /api/notes/:slug/bookmark	-> Bookmark toggle
		notes.GET("/:slug/bookmark", jwt, ajax, a.NoteBookmark)

		// GET /api/notes/:slug/download/:filetype -> Downloads the note as a file
		notes.GET("/:slug/download/:filetype", jwt, a.NoteDownload)
	}

	tags := main.Group("/tags")
	{
		// GET /api/tags			-> Top tags by note count
		tags.GET("", a.TagTop)

		// GET /api/tags/:slug/notes		-> Public notes carrying a tag
		tags.GET("/:slug/notes", a.TagNotes)
	}

	sources := main.Group("/sources")
	{
		// GET /api/sources/types		-> Source type enum
		sources.GET("/types", a.SourceTypes)

		// GET /api/sources/:slug/notes		-> Public notes attributed to a source
		sources.GET("/:slug/notes", a.SourceNotes)
	}

	// Crawler surface lives outside /api
	router.GET("/sitemap.xml", a.cacheFor(3600), a.Sitemap)
	router.GET("/robots.txt", a.Robots)

	if config.SweepTokensOnStart() {
		service.SweepSignupTokens(db)
	}

	a.Sweeper = service.StartTokenSweeper(db)
	a.Mail.StartWorker()

	return a, nil
}

func (a *API) cacheFor(sec int) gin.HandlerFunc {
	if a.cacheStore == nil {
		if viper.GetBool("cache.redis.enabled") {
			a.cacheStore = persist.NewRedisStore(redis.NewClient(&redis.Options{
				Addr: viper.GetString("cache.redis.addr"),
			}))
		} else {
			a.cacheStore = persist.NewMemoryStore(time.Minute)
		}
	}

	return cache.CacheByRequestURI(a.cacheStore, time.Second*time.Duration(sec))
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level"))
	if err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
