package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"uobsurvey/cmd/fx/account_fx"
	"uobsurvey/cmd/fx/config_fx"
	"uobsurvey/cmd/fx/controllers_fx"
	"uobsurvey/cmd/fx/dashboard"
	"uobsurvey/cmd/fx/db_fx"
	"uobsurvey/cmd/fx/events_fx"
	"uobsurvey/cmd/fx/mail_fx"
	"uobsurvey/cmd/fx/memcache_fx"
	"uobsurvey/cmd/fx/submission_fx"
	"uobsurvey/cmd/fx/survey_fx"
	"uobsurvey/internal/api/controllers"
	"uobsurvey/internal/config"
	"uobsurvey/pkg/middleware"
	"uobsurvey/pkg/utils"
)

// @title Data Infrastructure Survey API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
		db_fx.Module,
		memcache_fx.Module,
		survey_fx.Module,
		events_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		submission_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	accountController *controllers.AccountController,
	surveyController *controllers.SurveyController,
	submissionController *controllers.SubmissionController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware(strings.Split(cfg.App.CorsAllowedOrigins, ",")))

	RegisterRoutes(r, []byte(cfg.Auth.JWTSecret), accountController, surveyController, submissionController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtSecret []byte,
	accountController *controllers.AccountController,
	surveyController *controllers.SurveyController,
	submissionController *controllers.SubmissionController,
	dashboardController *controllers.DashboardController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/login", accountController.Login)

	surveyGroup := r.Group("/surveys", middleware.JWTAuthMiddleware(jwtSecret))
	surveyGroup.GET("/questions/baseline", surveyController.BaselineQuestions)
	surveyGroup.GET("/questions/ai", surveyController.AIQuestions)

	sessions := surveyGroup.Group("/sessions")
	sessions.POST("", surveyController.StartSession)
	sessions.GET("/:id", surveyController.GetSession)
	sessions.DELETE("/:id", surveyController.ResetSession)
	sessions.PUT("/:id/baseline", surveyController.SaveBaseline)
	sessions.GET("/:id/dynamic", surveyController.GetFlow)
	sessions.POST("/:id/dynamic/answers", surveyController.SubmitAnswer)
	sessions.POST("/:id/dynamic/back", surveyController.GoBack)
	sessions.GET("/:id/dynamic/tooltip", surveyController.Tooltip)
	sessions.POST("/:id/dynamic/summary", surveyController.Summary)
	sessions.POST("/:id/dynamic/complete", surveyController.CompleteDynamic)
	sessions.PUT("/:id/ai", surveyController.SaveAI)
	sessions.POST("/:id/submit", surveyController.Submit)

	adminGroup := r.Group("/admin",
		middleware.JWTAuthMiddleware(jwtSecret),
		middleware.RoleMiddleware(utils.RoleAdmin))
	adminGroup.GET("/dashboard", dashboardController.GetDashboard)
	adminGroup.GET("/submissions", submissionController.ListSubmissions)
	adminGroup.GET("/submissions/:id", submissionController.GetSubmission)
	adminGroup.DELETE("/submissions/:id", submissionController.DeleteSubmission)
	adminGroup.POST("/submissions/:id/report", submissionController.GenerateReport)
	adminGroup.GET("/submissions/:id/report", submissionController.ExportReport)
}
