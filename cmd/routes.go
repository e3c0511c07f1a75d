package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"maxdata/internal/models"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	agentMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAgent))
	adminMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))
	wsMiddleware := alice.New(app.recoverPanic, app.logRequest, app.JWTMiddlewareWithRole(models.RoleAgent))

	mux := pat.New()

	mux.Get("/health", standardMiddleware.ThenFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))

	// Listings
	mux.Get("/listings", agentMiddleware.ThenFunc(app.listingHandler.List))
	mux.Post("/listings", agentMiddleware.ThenFunc(app.listingHandler.SaveDraft))
	mux.Del("/listings", adminMiddleware.ThenFunc(app.listingHandler.Clear))
	mux.Get("/listings/defaults", agentMiddleware.ThenFunc(app.listingHandler.Defaults))
	mux.Get("/listings/cart", agentMiddleware.ThenFunc(app.listingHandler.Cart))
	mux.Post("/listings/publish", agentMiddleware.ThenFunc(app.listingHandler.Publish))
	mux.Get("/listings/:id/orders", agentMiddleware.ThenFunc(app.checkoutHandler.ListingOrders))
	mux.Get("/listings/:id/card", agentMiddleware.ThenFunc(app.listingHandler.Card))
	mux.Get("/listings/:id", agentMiddleware.ThenFunc(app.listingHandler.Get))
	mux.Post("/preview", agentMiddleware.ThenFunc(app.listingHandler.Preview))
	mux.Get("/addresses", agentMiddleware.ThenFunc(app.addressHandler.Suggest))

	// Ask MAX
	mux.Get("/ask-max/ws", wsMiddleware.ThenFunc(app.AskMaxWebSocketHandler))
	mux.Post("/ask-max", agentMiddleware.ThenFunc(app.askMaxHandler.Start))
	mux.Get("/ask-max/:id", agentMiddleware.ThenFunc(app.askMaxHandler.Get))
	mux.Post("/ask-max/:id/reply", agentMiddleware.ThenFunc(app.askMaxHandler.Reply))
	mux.Post("/ask-max/:id/continue", agentMiddleware.ThenFunc(app.askMaxHandler.Continue))

	// Checkout
	mux.Get("/checkout/addons", agentMiddleware.ThenFunc(app.checkoutHandler.Addons))
	mux.Post("/checkout/quote", agentMiddleware.ThenFunc(app.checkoutHandler.Quote))
	mux.Post("/checkout", agentMiddleware.ThenFunc(app.checkoutHandler.Checkout))
	mux.Get("/checkout/orders/:id", agentMiddleware.ThenFunc(app.checkoutHandler.Order))

	// Photos
	mux.Post("/photos", agentMiddleware.ThenFunc(app.photoHandler.Upload))
	mux.Post("/photos/replace", agentMiddleware.ThenFunc(app.photoHandler.Replace))
	if app.uploads != nil {
		mux.Get(app.uploadsPrefix, alice.New(app.recoverPanic, secureHeaders).Then(app.uploads))
	}

	return mux
}
