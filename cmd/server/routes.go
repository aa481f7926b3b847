package main

import (
	"github.com/gin-gonic/gin"
	"localserve.backend/internal/interfaces/http/handlers"
	"localserve.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	serviceHandler  *handlers.ServiceHandler
	bookingHandler  *handlers.BookingHandler
	paymentHandler  *handlers.PaymentHandler
	cartHandler     *handlers.CartHandler
	addressHandler  *handlers.AddressHandler
	adminHandler    *handlers.AdminHandler
	lookupHandler   *handlers.LookupHandler
	locationHandler *handlers.LocationHandler
	authMiddleware  gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/verify-otp", d.authHandler.VerifyOTP)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/request-change-pin", d.authHandler.RequestChangePin)
			auth.POST("/change-pin", d.authHandler.ChangePin)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetProfile)
		}

		// Discovery routes (public)
		services := v1.Group("/services")
		{
			services.GET("", d.serviceHandler.List)
			services.GET("/:id", d.serviceHandler.Get)
		}
		v1.GET("/districts", d.lookupHandler.Districts)
		v1.GET("/categories", d.lookupHandler.Categories)

		// Location routes (public, mock geocoding)
		locations := v1.Group("/locations")
		{
			locations.POST("/geocode", d.locationHandler.Geocode)
			locations.POST("/reverse-geocode", d.locationHandler.ReverseGeocode)
		}

		// Provider routes (protected, provider role)
		providers := v1.Group("/providers")
		providers.Use(d.authMiddleware, middleware.RequireProvider())
		{
			providers.POST("/services", d.serviceHandler.Create)
			providers.GET("/services", d.serviceHandler.ListOwn)
			providers.PUT("/services/:id", d.serviceHandler.Update)
			providers.DELETE("/services/:id", d.serviceHandler.Delete)
			providers.PUT("/payment-details", d.authHandler.UpdatePaymentDetails)
		}

		// Booking routes (create and list need auth; reads are public,
		// matching the deployed surface)
		bookings := v1.Group("/bookings")
		{
			bookings.POST("", d.authMiddleware, middleware.RequireUser(), d.bookingHandler.Create)
			bookings.GET("", d.authMiddleware, d.bookingHandler.List)
			bookings.GET("/:id", d.bookingHandler.Get)
			bookings.PUT("/:id/status", d.authMiddleware, middleware.RequireRole("provider", "admin"), d.bookingHandler.UpdateStatus)
		}

		// Payment routes (order creation needs auth, the mock gateway
		// callback is public)
		payments := v1.Group("/payments")
		{
			payments.POST("/create-order", d.authMiddleware, d.paymentHandler.CreateOrder)
			payments.POST("/verify", d.paymentHandler.Verify)
		}

		// Cart routes (user role only)
		cart := v1.Group("/cart")
		cart.Use(d.authMiddleware, middleware.RequireUser())
		{
			cart.POST("", d.cartHandler.Add)
			cart.GET("", d.cartHandler.List)
			cart.DELETE("/:id", d.cartHandler.Remove)
		}

		// Address routes (protected)
		addresses := v1.Group("/addresses")
		addresses.Use(d.authMiddleware)
		{
			addresses.POST("", d.addressHandler.Create)
			addresses.GET("", d.addressHandler.List)
			addresses.DELETE("/:id", d.addressHandler.Delete)
		}

		// Admin routes (social media links; reads are public)
		v1.GET("/admin/social-media", d.adminHandler.GetSocialMedia)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.POST("/request-otp", d.adminHandler.RequestOTP)
			admin.POST("/social-media", d.adminHandler.UpdateSocialMedia)
		}
	}
}
