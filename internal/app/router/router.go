package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "trading_backend/internal/feature/analysis/transport/handler"
	cataloghandler "trading_backend/internal/feature/catalog/transport/handler"
	sessionhandler "trading_backend/internal/feature/session/transport/handler"
	symbolshandler "trading_backend/internal/feature/symbols/transport/handler"
	platformhttp "trading_backend/internal/platform/http"
	"trading_backend/internal/platform/http/handler"
	"trading_backend/internal/shared/ratelimiter"
)

// Deps bundles everything the router mounts.
type Deps struct {
	CORSOrigins []string
	Limiter     *ratelimiter.KeyedLimiter // nil disables rate limiting
	Ready       []handler.Check

	Analysis *analysishandler.AnalysisHandler
	Symbols  *symbolshandler.SymbolsHandler
	Catalog  *cataloghandler.CatalogHandler
	Session  *sessionhandler.SessionHandler
	Sessions sessionhandler.SessionValidator
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), platformhttp.RequestID(), platformhttp.AccessLog())
	r.Use(cors.New(corsConfig(d.CORSOrigins)))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(d.Ready...))

	// 銘柄一覧とチャート設定
	r.GET("/symbols", d.Symbols.List)
	r.GET("/symbols/resolve", d.Symbols.Resolve)

	// 戦略・AIモデルのカタログ
	r.GET("/catalog/strategies", d.Catalog.Strategies)
	r.GET("/catalog/models", d.Catalog.Models)

	// セッション保存
	r.POST("/session", d.Session.Login)

	// セッション必須のルート
	auth := r.Group("/")
	auth.Use(sessionhandler.RequireSession(d.Sessions))
	{
		auth.GET("/session", d.Session.Current)
		auth.DELETE("/session", d.Session.Logout)

		analysis := auth.Group("/analysis")
		if d.Limiter != nil {
			analysis.Use(platformhttp.RateLimit(d.Limiter))
		}
		analysis.POST("", d.Analysis.Analyze)
		analysis.POST("/batch", d.Analysis.AnalyzeBatch)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", platformhttp.HeaderRequestID},
		ExposeHeaders: []string{platformhttp.HeaderRequestID, analysishandler.HeaderGranularityRequested, analysishandler.HeaderGranularityEffective},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
