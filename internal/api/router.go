package api

import (
	"net/http"

	"dukaan-be/internal/logger"
	"dukaan-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Handlers bundles everything the router mounts. Roles backs the live
// admin re-check on the admin subrouter.
type Handlers struct {
	Roles    middleware.RoleChecker
	Auth     *AuthHandler
	Product  *ProductHandler
	Category *CategoryHandler
	Hero     *HeroHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Order    *OrderHandler
	Review   *ReviewHandler
	Profile  *ProfileHandler
	Upload   *UploadHandler
}

// NewRouter builds the /api/v1 surface. Authentication claims land in the
// request context before any route handler runs; the guards only read them.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.CORS)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.AuthMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/logout", h.Auth.Logout)

		r.Get("/products", h.Product.List)
		r.Get("/products/{productID}", h.Product.Get)
		r.Get("/products/{productID}/reviews", h.Product.ListReviews)

		r.Get("/categories", h.Category.List)
		r.Get("/categories/{categoryID}", h.Category.Get)

		r.Get("/hero-sections", h.Hero.ListActive)

		// Authenticated storefront surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/products/{productID}/review-eligibility", h.Product.ReviewEligibility)
			r.Post("/reviews", h.Review.Submit)

			r.Get("/cart", h.Cart.Get)
			r.Post("/cart/items", h.Cart.AddItem)
			r.Put("/cart/items/{productID}", h.Cart.UpdateQuantity)
			r.Delete("/cart/items/{productID}", h.Cart.RemoveItem)
			r.Delete("/cart", h.Cart.Clear)

			r.Post("/checkout", h.Checkout.Checkout)

			r.Get("/orders", h.Order.ListMine)
			r.Get("/orders/{orderID}", h.Order.Get)
			r.Post("/orders/{orderID}/cancel", h.Order.Cancel)

			r.Get("/profile", h.Profile.Get)
			r.Put("/profile", h.Profile.Update)
		})

		// Admin surface.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(h.Roles))

			r.Get("/products", h.Product.ListAll)
			r.Post("/products", h.Product.Create)
			r.Put("/products/{productID}", h.Product.Update)
			r.Delete("/products/{productID}", h.Product.Delete)

			r.Post("/categories", h.Category.Create)
			r.Put("/categories/{categoryID}", h.Category.Update)
			r.Delete("/categories/{categoryID}", h.Category.Delete)

			r.Get("/hero-sections", h.Hero.ListAll)
			r.Post("/hero-sections", h.Hero.Create)
			r.Put("/hero-sections/{sectionID}", h.Hero.Update)
			r.Patch("/hero-sections/{sectionID}/active", h.Hero.ToggleActive)
			r.Delete("/hero-sections/{sectionID}", h.Hero.Delete)

			r.Get("/orders", h.Order.ListAll)
			r.Put("/orders/{orderID}/status", h.Order.UpdateStatus)

			r.Post("/uploads", h.Upload.UploadImage)
		})
	})

	return r
}
