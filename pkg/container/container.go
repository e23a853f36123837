package container

import (
	"context"
	"fmt"
	"log"

	"membership-gateway/internal/config"
	adminHandler "membership-gateway/internal/domains/admin/handler"
	"membership-gateway/internal/domains/member/controller"
	memberHandler "membership-gateway/internal/domains/member/handler"
	"membership-gateway/internal/domains/member/render"
	"membership-gateway/internal/infrastructure/registry"
	"membership-gateway/internal/infrastructure/session"
	"membership-gateway/internal/shared/middleware"
	"membership-gateway/pkg/jwt"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của gateway.
// Mọi field là singleton, sống suốt app lifetime.
type Container struct {
	Config     *config.Config
	Sessions   *middleware.Sessions
	Store      session.Store
	Registry   *registry.Client
	Renderer   *render.Renderer
	JWTManager *jwt.Manager

	QueryController    *controller.QueryController
	RegisterController *controller.RegisterController
	AdminController    *controller.AdminController

	MemberHandler *memberHandler.MemberHandler
	AdminHandler  *adminHandler.AdminHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph.
// Thứ tự: config -> infrastructure (redis, registry client, renderer)
// -> controllers -> handlers. Sai thứ tự = nil dereference.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: SESSION STORE (REDIS)
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	store := session.NewRedisStore(cfg.Redis, cfg.Session.TTL)
	if err := store.Connect(context.Background()); err != nil {
		// Redis failure không critical cho local dev - fallback in-memory
		log.Printf("⚠️  Redis connection failed, falling back to in-memory sessions: %v", err)
		c.Store = session.NewMemoryStore()
	} else {
		c.Store = store
		log.Println("✅ Redis connected")
	}

	// ========================================
	// STEP 3: REGISTRY CLIENT + RENDERER
	// ========================================
	c.Registry = registry.NewClient(cfg.Registry)
	log.Printf("🌐 Registry backend: %s", cfg.Registry.BaseURL)

	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("failed to build renderer: %w", err)
	}
	c.Renderer = renderer

	c.JWTManager = jwt.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	c.Sessions = middleware.NewSessions(c.Store, c.JWTManager, cfg.Session, cfg.App.Environment)

	// ========================================
	// STEP 4: CONTROLLERS
	// ========================================
	c.QueryController = controller.NewQueryController(c.Registry)
	c.RegisterController = controller.NewRegisterController(c.Registry)
	c.AdminController = controller.NewAdminController(c.Registry)

	// ========================================
	// STEP 5: HANDLERS
	// ========================================
	c.MemberHandler = memberHandler.NewMemberHandler(c.QueryController, c.RegisterController, c.Renderer, c.Sessions)
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminController, c.Renderer, c.Sessions)

	log.Println("✅ Container initialized")
	return c, nil
}

// Cleanup giải phóng connections khi shutdown
func (c *Container) Cleanup() {
	if store, ok := c.Store.(*session.RedisStore); ok {
		if err := store.Close(); err != nil {
			log.Printf("⚠️  Redis close failed: %v", err)
		}
	}
}
