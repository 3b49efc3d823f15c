package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpadp "fintech-directory/internal/adapter/http"
	appmw "fintech-directory/internal/adapter/middleware"
	"fintech-directory/internal/adapter/repository/gormrepo"
	"fintech-directory/internal/infrastructure/cache"
	"fintech-directory/internal/infrastructure/storage"
	"fintech-directory/internal/usecase/blog"
	"fintech-directory/internal/usecase/contact"
	"fintech-directory/internal/usecase/institution"
	"fintech-directory/internal/usecase/newsletter"
	"fintech-directory/internal/usecase/notify"
	"fintech-directory/internal/usecase/onboarding"
	"fintech-directory/internal/usecase/stats"
	"fintech-directory/internal/usecase/upload"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bodyLimit leaves room for multipart framing around a 10 MiB upload.
const bodyLimit = "11M"

func serveCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run schema migration before serving")
	return cmd
}

func runServe(parent context.Context, migrate bool) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()
	cfg, log := a.cfg, a.log

	if migrate {
		if err := gormrepo.AutoMigrate(a.db); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := []httpadp.Check{{Name: "db", Ping: a.pingDB}}
	var idem echo.MiddlewareFunc
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(ctx, cache.RedisOptions{Addr: cfg.RedisAddr, DB: cfg.RedisDB, Password: cfg.RedisPassword})
		if err != nil {
			return err
		}
		defer rdb.Close()
		idem = appmw.Idempotency(rdb, cfg.IdempotencyTTL(), log)
		checks = append(checks, httpadp.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }})
	} else {
		log.Warn("REDIS_ADDR not set, Idempotency-Key replay disabled")
	}

	sender, closeSender, err := mailSender(cfg, log)
	if err != nil {
		return err
	}
	defer closeSender()
	dispatcher := notify.NewDispatcher(sender, log, notify.Config{
		From:       cfg.MailFrom,
		AdminEmail: cfg.AdminEmail,
		Site:       notify.Site{Name: cfg.SiteName, BaseURL: cfg.BaseURL},
		Timeout:    cfg.MailTimeout(),
	})
	// let in-flight notifications finish before the sender is closed
	defer dispatcher.Wait()

	if cfg.AdminJWTSecret == "" {
		log.Warn("ADMIN_JWT_SECRET not set, admin routes are unauthenticated")
	}

	// repositories
	instRepo := gormrepo.NewInstitutionRepository(a.db)
	reqRepo := gormrepo.NewOnboardingRepository(a.db)
	blogRepo := gormrepo.NewBlogRepository(a.db)
	subRepo := gormrepo.NewNewsletterRepository(a.db)
	tx := gormrepo.NewGormUoW(a.db)
	files := storage.NewLocal(cfg.UploadDir)

	routes := httpadp.Routes{
		Health:       httpadp.NewHandler(checks...),
		Institutions: httpadp.NewInstitutionHandler(institution.NewUsecase(instRepo), log),
		Onboarding:   httpadp.NewOnboardingHandler(onboarding.NewUsecase(tx, reqRepo, dispatcher), log),
		Blog:         httpadp.NewBlogHandler(blog.NewUsecase(blogRepo), log),
		Newsletter:   httpadp.NewNewsletterHandler(newsletter.NewUsecase(subRepo, dispatcher), log),
		Contact:      httpadp.NewContactHandler(contact.NewUsecase(dispatcher), log),
		Upload:       httpadp.NewUploadHandler(upload.NewUsecase(files), log),
		Stats:        httpadp.NewStatsHandler(stats.NewUsecase(gormrepo.NewStatsReader(a.db)), log),
		Admin:        appmw.RequireAdmin(cfg.AdminJWTSecret, cfg.AdminJWTIssuer),
		Idempotency:  idem,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))
	e.Use(middleware.BodyLimit(bodyLimit))
	mountUploads(e, files)
	httpadp.RegisterRoutes(e, routes)

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	return nil
}

// mountUploads serves stored files read-only. Browsers must not sniff or render them as active content.
func mountUploads(e *echo.Echo, files *storage.Local) {
	g := e.Group("/"+upload.PublicPrefix, middleware.SecureWithConfig(middleware.SecureConfig{
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ContentSecurityPolicy: "default-src 'none'; sandbox",
	}))
	g.Static("/", files.Root())
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				log.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}
