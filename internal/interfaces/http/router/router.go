package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pizzeria/backend/internal/infrastructure/logger"
	"github.com/pizzeria/backend/internal/interfaces/http/handler"
	"github.com/pizzeria/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router wires up
type Handlers struct {
	System    *handler.SystemHandler
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Combo     *handler.ComboHandler
	Option    *handler.OptionHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	Coupon    *handler.CouponHandler
	Review    *handler.ReviewHandler
	Content   *handler.ContentHandler
	Geography *handler.GeographyHandler
	Media     *handler.MediaHandler
	Report    *handler.ReportHandler
	Chat      *handler.ChatHandler

	// ChatWS is the websocket upgrade endpoint, nil disables it
	ChatWS gin.HandlerFunc
}

// Config holds router-level middleware settings
type Config struct {
	JWT               middleware.JWTMiddlewareConfig
	Logger            *zap.Logger
	CORSAllowOrigins  []string
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Setup registers every route on the engine. The API splits into four
// surfaces: public storefront reads, customer routes behind auth,
// back-office routes for staff and admin, and admin-only management.
func Setup(engine *gin.Engine, h Handlers, cfg Config) {
	engine.Use(middleware.RequestID())
	if cfg.Logger != nil {
		engine.Use(logger.GinMiddleware(cfg.Logger))
		engine.Use(logger.Recovery(cfg.Logger))
	}
	engine.Use(middleware.CORS(cfg.CORSAllowOrigins))
	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Ready)

	api := engine.Group("/api/v1")

	authRequired := middleware.JWTAuthMiddlewareWithConfig(cfg.JWT)
	authOptional := middleware.OptionalJWTAuthMiddleware(cfg.JWT.JWTService)

	if h.ChatWS != nil {
		engine.GET("/ws/chat/:room_id", authRequired, h.ChatWS)
	}

	// Public storefront surface
	public := api.Group("")
	{
		public.POST("/auth/register", h.Auth.Register)
		public.POST("/auth/login", h.Auth.Login)
		public.POST("/auth/refresh", h.Auth.Refresh)
		public.POST("/auth/forgot-password", h.Auth.ForgotPassword)
		public.POST("/auth/reset-password", h.Auth.ResetPassword)

		public.GET("/categories", h.Category.ListActive)
		public.GET("/sizes", h.Option.ListSizes)
		public.GET("/crusts", h.Option.ListCrusts)
		public.GET("/products", h.Product.Search)
		public.GET("/products/featured", h.Product.Featured)
		public.GET("/products/slug/:slug", h.Product.GetBySlug)
		public.GET("/products/:id/options", h.Product.Options)
		public.GET("/products/:id/reviews", h.Review.ListByProduct)
		public.GET("/products/:id/reviews/summary", h.Review.Summary)
		public.GET("/combos", h.Combo.ListActive)
		public.GET("/combos/slug/:slug", h.Combo.GetBySlug)

		public.GET("/banners", h.Content.ListActiveBanners)
		public.GET("/news", h.Content.ListPublishedNews)
		public.GET("/news/:slug", h.Content.GetNewsBySlug)
		public.GET("/faq", h.Content.ListPublishedFAQ)
		public.POST("/faq", authOptional, h.Content.SubmitQuestion)
		public.POST("/coupons/preview", h.Coupon.Preview)

		public.GET("/geo/provinces", h.Geography.Provinces)
		public.GET("/geo/provinces/:code/districts", h.Geography.Districts)
		public.GET("/geo/districts/:code/wards", h.Geography.Wards)
	}

	// Signed-in customer surface
	account := api.Group("", authRequired)
	{
		account.POST("/auth/logout", h.Auth.Logout)
		account.GET("/me", h.Auth.Me)
		account.PUT("/me", h.Auth.UpdateProfile)
		account.PUT("/me/password", h.Auth.ChangePassword)

		account.GET("/cart", h.Cart.Get)
		account.POST("/cart/items", h.Cart.AddVariant)
		account.POST("/cart/combos", h.Cart.AddCombo)
		account.PUT("/cart/items/:item_id", h.Cart.UpdateQuantity)
		account.DELETE("/cart/items/:item_id", h.Cart.RemoveItem)
		account.DELETE("/cart", h.Cart.Clear)

		account.POST("/checkout/quote", h.Order.Quote)
		account.POST("/checkout", h.Order.PlaceOrder)
		account.GET("/orders", h.Order.ListMine)
		account.GET("/orders/:id", h.Order.Get)
		account.POST("/orders/:id/cancel", h.Order.Cancel)

		account.POST("/reviews", h.Review.Submit)

		account.GET("/chat/:room_id/messages", h.Chat.History)
		account.POST("/chat/:room_id/messages", h.Chat.Post)
	}

	// Back-office surface shared by staff and admin
	office := api.Group("/admin", authRequired, middleware.RequireBackOffice())
	{
		office.GET("/dashboard", h.Report.Dashboard)
		office.GET("/dashboard/revenue", h.Report.RevenueByDay)
		office.GET("/dashboard/top-products", h.Report.TopProducts)
		office.GET("/dashboard/order-counts", h.Order.CountByStatus)

		office.GET("/orders", h.Order.List)
		office.GET("/orders/:id", h.Order.AdminGet)
		office.POST("/orders/:id/transition", h.Order.Transition)

		office.GET("/categories", h.Category.ListAll)
		office.POST("/categories", h.Category.Create)
		office.PUT("/categories/:id", h.Category.Update)
		office.DELETE("/categories/:id", h.Category.Delete)

		office.GET("/products/:id", h.Product.Get)
		office.POST("/products", h.Product.Create)
		office.PUT("/products/:id", h.Product.Update)
		office.DELETE("/products/:id", h.Product.Delete)
		office.POST("/products/:id/variants", h.Product.AddVariant)
		office.PUT("/products/:id/variants/:variant_id", h.Product.UpdateVariantPrice)
		office.DELETE("/products/:id/variants/:variant_id", h.Product.RemoveVariant)

		office.GET("/sizes", h.Option.ListSizes)
		office.POST("/sizes", h.Option.CreateSize)
		office.DELETE("/sizes/:id", h.Option.DeleteSize)
		office.GET("/crusts", h.Option.ListCrusts)
		office.POST("/crusts", h.Option.CreateCrust)
		office.DELETE("/crusts/:id", h.Option.DeleteCrust)

		office.GET("/combos", h.Combo.ListAll)
		office.POST("/combos", h.Combo.Create)
		office.POST("/combos/:id/deactivate", h.Combo.Deactivate)
		office.DELETE("/combos/:id", h.Combo.Delete)

		office.GET("/coupons", h.Coupon.List)
		office.GET("/coupons/:id", h.Coupon.Get)
		office.POST("/coupons", h.Coupon.Create)
		office.POST("/coupons/:id/deactivate", h.Coupon.Deactivate)
		office.DELETE("/coupons/:id", h.Coupon.Delete)

		office.PUT("/reviews/:id/visibility", h.Review.SetVisible)
		office.DELETE("/reviews/:id", h.Review.Delete)

		office.GET("/banners", h.Content.ListAllBanners)
		office.POST("/banners", h.Content.CreateBanner)
		office.POST("/banners/:id/deactivate", h.Content.DeactivateBanner)
		office.DELETE("/banners/:id", h.Content.DeleteBanner)

		office.GET("/news", h.Content.ListAllNews)
		office.POST("/news", h.Content.CreateNews)
		office.POST("/news/:id/publish", h.Content.PublishNews)
		office.POST("/news/:id/unpublish", h.Content.UnpublishNews)
		office.DELETE("/news/:id", h.Content.DeleteNews)

		office.GET("/faq", h.Content.ListAllFAQ)
		office.GET("/faq/unanswered", h.Content.ListUnansweredFAQ)
		office.POST("/faq/:id/answer", h.Content.AnswerQuestion)
		office.PUT("/faq/:id/published", h.Content.SetQuestionPublished)
		office.DELETE("/faq/:id", h.Content.DeleteQuestion)

		office.POST("/media", h.Media.Upload)
		office.DELETE("/media", h.Media.Delete)

		office.GET("/chat/rooms", h.Chat.ActiveRooms)
	}

	// Admin-only management
	admin := api.Group("/admin", authRequired, middleware.RequireAdmin())
	{
		admin.GET("/users", h.User.List)
		admin.POST("/users", h.User.CreateStaff)
		admin.PUT("/users/:id/role", h.User.ChangeRole)
		admin.PUT("/users/:id/active", h.User.SetActive)
	}
}
