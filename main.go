package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/afriblend/afriblend-backend/ai"
	"github.com/afriblend/afriblend-backend/cart"
	"github.com/afriblend/afriblend-backend/controllers"
	"github.com/afriblend/afriblend-backend/database"
	"github.com/afriblend/afriblend-backend/middleware"
	"github.com/afriblend/afriblend-backend/seed"
	"github.com/afriblend/afriblend-backend/store"
	"github.com/afriblend/afriblend-backend/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//seeding admin user
	usersCol := database.OpenCollection("users")
	if err := utils.SeedAdminUser(ctx, usersCol); err != nil {
		log.Fatal(err)
	}
	if seed.Enabled() {
		if err := seed.Demo(ctx, database.OpenCollection); err != nil {
			log.Fatal(err)
		}
	}

	stores := store.New(seed.Defaults())
	if err := stores.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer stores.Stop()

	sessions := cart.NewSessions(24 * time.Hour)
	go sessions.Run(ctx, time.Hour)

	aiClient, err := ai.NewClient(ctx)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Cart-Token"},
		ExposeHeaders:    []string{"Content-Length", "X-Cart-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.POST("/auth/login", controllers.Login())
	r.POST("/auth/refresh", controllers.Refresh())
	r.POST("/auth/logout", controllers.Logout())

	r.GET("/products", controllers.GetProducts(stores.Products))
	r.GET("/products/:slug", controllers.GetProductBySlug(stores.Products))
	r.GET("/categories", controllers.GetCategories(stores.Categories))

	r.GET("/cart", controllers.GetCart(sessions))
	r.POST("/cart/items", controllers.AddCartItem(sessions, stores.Products))
	r.PUT("/cart/items", controllers.UpdateCartItem(sessions))
	r.DELETE("/cart/items", controllers.RemoveCartItem(sessions))
	r.DELETE("/cart", controllers.ClearCart(sessions))

	r.POST("/checkout", controllers.Checkout(sessions, stores.Orders, stores.Settings))
	r.GET("/orders/track/:trackingId", controllers.TrackOrder(stores.Orders))
	r.GET("/orders/lookup", controllers.LookupOrdersByPhone(stores.Orders))

	r.POST("/style-recommendations", controllers.StyleRecommendations(aiClient, stores.Products, stores.Categories))

	r.GET("/settings", controllers.GetSettings(stores.Settings))
	r.GET("/faqs", controllers.GetFaqs(stores.Faqs))
	r.GET("/contact-info", controllers.GetContactInfo(stores.Contact))
	r.GET("/our-story", controllers.GetOurStory(stores.OurStory))
	r.GET("/notification", controllers.GetNotification(stores.Notification))

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/products", controllers.GetAllProducts(stores.Products))
		admin.POST("/products", controllers.AddProduct(stores.Products))
		admin.PUT("/products/:id", controllers.UpdateProduct(stores.Products))
		admin.DELETE("/products/:id", controllers.DeleteProduct(stores.Products))

		admin.POST("/categories", controllers.AddCategory(stores.Categories))
		admin.PUT("/categories/:id", controllers.UpdateCategory(stores.Categories))
		admin.DELETE("/categories/:id", controllers.DeleteCategory(stores.Categories))

		admin.GET("/orders", controllers.GetOrders(stores.Orders))
		admin.PATCH("/orders/:id/status", controllers.UpdateOrderStatus(stores.Orders))
		admin.PATCH("/orders/:id/payment", controllers.UpdatePaymentStatus(stores.Orders))
		admin.PUT("/orders/:id/client", controllers.UpdateOrderClientDetails(stores.Orders))
		admin.POST("/orders/:id/rider", controllers.AssignRider(stores.Orders, stores.Riders))
		admin.GET("/orders/:id/dispatch-link", controllers.GetDispatchLink(stores.Orders, stores.Riders))
		admin.GET("/orders/:id/summary-link", controllers.GetClientSummaryLink(stores.Orders))

		admin.GET("/reports", controllers.GetSalesReport(stores.Orders, stores.Products))
		admin.GET("/stats", controllers.GetDashboardStats(stores.Orders, stores.Products))

		admin.GET("/riders", controllers.GetRiders(stores.Riders))
		admin.POST("/riders", controllers.AddRider(stores.Riders))
		admin.PUT("/riders/:id", controllers.UpdateRider(stores.Riders))
		admin.DELETE("/riders/:id", controllers.DeleteRider(stores.Riders))

		admin.PUT("/notification", controllers.UpdateNotification(stores.Notification))

		admin.POST("/users", controllers.CreateUser())
		admin.POST("/users/me/password", controllers.ChangeMyPassword())

		// Site identity and content edits are reserved for developers;
		// store owners manage catalog and orders only.
		dev := admin.Group("")
		dev.Use(middleware.RequireDeveloper())
		{
			dev.PUT("/settings", controllers.UpdateSettings(stores.Settings))
			dev.PUT("/faqs", controllers.UpdateFaqs(stores.Faqs))
			dev.PUT("/contact-info", controllers.UpdateContactInfo(stores.Contact))
			dev.PUT("/our-story", controllers.UpdateOurStory(stores.OurStory))
			dev.POST("/images/generate", controllers.GenerateImages(aiClient))
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()
	log.Printf("listening on :%s", port)

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}
