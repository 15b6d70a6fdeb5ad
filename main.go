package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"quotationcreation/cart"
	"quotationcreation/collections"
	"quotationcreation/config"
	"quotationcreation/handlers"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := pocketbase.New()
	sessions := cart.NewSessions(cfg.Export.DefaultTitle)

	// Create collections and seed the product catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Every page works against the cookie-scoped cart session
		se.Router.BindFunc(handlers.SessionMiddleware(sessions))

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/", handlers.HandleHome())
		se.Router.GET("/catalog/{category}", handlers.HandleCategoryProducts(app))

		// ── Cart ─────────────────────────────────────────────────
		se.Router.GET("/cart", handlers.HandleCartView())
		se.Router.POST("/cart/options", handlers.HandleCartOptions())
		se.Router.POST("/cart/{category}/{productId}", handlers.HandleCartAdd(app))
		se.Router.POST("/cart/{category}/{productId}/increment", handlers.HandleCartIncrement(app))
		se.Router.POST("/cart/{category}/{productId}/decrement", handlers.HandleCartDecrement(app))

		// ── Quotation export ─────────────────────────────────────
		se.Router.GET("/quotation/export/pdf", handlers.HandleQuotationExportPDF(cfg))
		se.Router.GET("/quotation/export/excel", handlers.HandleQuotationExportExcel(cfg))

		// ── Acoustics ────────────────────────────────────────────
		se.Router.GET("/acoustics", handlers.HandleAcousticsPage())
		se.Router.POST("/acoustics/export", handlers.HandleAcousticsExport(cfg))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
