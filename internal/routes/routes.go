package routes

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Eduardo-brito329/Menu-Web/internal/handlers/admin"
	"github.com/Eduardo-brito329/Menu-Web/internal/handlers/auth"
	"github.com/Eduardo-brito329/Menu-Web/internal/handlers/billing"
	"github.com/Eduardo-brito329/Menu-Web/internal/handlers/menu"
	"github.com/Eduardo-brito329/Menu-Web/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:5173"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontend},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Autenticação
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup", middleware.SignupRateLimit(), auth.Signup)
		authGroup.POST("/login", middleware.LoginRateLimit(), auth.Login)
		authGroup.GET("/me", middleware.AuthRequired(), auth.Me)
	}

	// Cardápio público: sem autenticação, identificado por sessão de carrinho
	public := r.Group("/api/public")
	{
		public.GET("/menu/:storeId", menu.GetMenu)
		public.GET("/stores/:storeId/status", menu.StoreStatus)

		public.GET("/menu/:storeId/cart", menu.GetCart)
		public.POST("/menu/:storeId/cart/items", menu.AddToCart)
		public.PUT("/menu/:storeId/cart/items/:productId", menu.UpdateCartItem)
		public.DELETE("/menu/:storeId/cart/items/:productId", menu.RemoveFromCart)
		public.DELETE("/menu/:storeId/cart", menu.ClearCart)

		public.POST("/menu/:storeId/checkout", middleware.CheckoutRateLimit(), menu.Checkout)
		public.GET("/dispatch/:dispatchId", menu.DispatchStatus)
	}

	// Assinatura fica fora do gate: o dono bloqueado ainda precisa ver o estado
	r.GET("/api/subscription", middleware.AuthRequired(), admin.SubscriptionStatus)

	// Painel do dono: autenticado e com assinatura ativa
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AuthRequired(), middleware.RequireActiveSubscription())
	{
		adminGroup.GET("/store", admin.GetMyStore)
		adminGroup.PUT("/store", admin.UpdateStore)
		adminGroup.PUT("/store/status", admin.UpdateStoreStatus)
		adminGroup.POST("/store/logo", admin.UploadStoreLogo)
		adminGroup.POST("/store/banner", admin.UploadStoreBanner)
		adminGroup.GET("/store/qrcode", admin.MenuQRCode)

		adminGroup.GET("/products", admin.ListProducts)
		adminGroup.POST("/products", admin.CreateProduct)
		adminGroup.PUT("/products/:productId", admin.UpdateProduct)
		adminGroup.DELETE("/products/:productId", admin.DeleteProduct)
		adminGroup.POST("/products/upload", admin.UploadProductImage)
		adminGroup.GET("/products/search", admin.SearchProducts)

		adminGroup.GET("/orders", admin.ListOrders)
		adminGroup.PUT("/orders/:orderId/status", admin.UpdateOrderStatus)
		adminGroup.GET("/orders/ws", admin.OrdersWebSocket)
		adminGroup.GET("/dashboard", admin.Dashboard)
	}

	// Webhooks de pagamento
	r.POST("/api/webhooks/cakto", billing.CaktoWebhook)
}
