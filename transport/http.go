package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	productapp "github.com/muhammadheryan/inventory-service/application/product"
	userapp "github.com/muhammadheryan/inventory-service/application/user"
	"github.com/muhammadheryan/inventory-service/cmd/config"
	_ "github.com/muhammadheryan/inventory-service/docs"
	redisrepo "github.com/muhammadheryan/inventory-service/repository/redis"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ProductApp productapp.ProductApp
	UserApp    userapp.UserApp

	errors errorWriter
}

func NewTransport(cfg *config.Config, ProductApp productapp.ProductApp, UserApp userapp.UserApp, attemptRepo redisrepo.Repository) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ProductApp: ProductApp,
		UserApp:    UserApp,
		errors:     errorWriter{development: cfg.IsDevelopment()},
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// products; the field routes go first so "price" is never read as an ean13
	mux.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/price/{ean13}", rh.UpdatePrice).Methods(http.MethodPut)
	mux.HandleFunc("/products/amount/{ean13}", rh.UpdateAmount).Methods(http.MethodPut)
	mux.HandleFunc("/products/{ean13}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/products/{ean13}", rh.DeleteProduct).Methods(http.MethodDelete)

	// users; /users/validate is registered before /users/{userid}
	mux.Handle("/users/validate", RateLimitMiddleware(attemptRepo, rh.errors)(http.HandlerFunc(rh.ValidateUser))).Methods(http.MethodPost)
	mux.HandleFunc("/users", rh.CreateUser).Methods(http.MethodPost)
	mux.HandleFunc("/users", rh.ListUsers).Methods(http.MethodGet)
	mux.HandleFunc("/users/{userid}", rh.GetUser).Methods(http.MethodGet)
	mux.HandleFunc("/users/{userid}", rh.DeleteUser).Methods(http.MethodDelete)

	if cfg.IsDevelopment() {
		mux.HandleFunc("/debug", rh.Debug).Methods(http.MethodGet)
	}

	// browser page
	mux.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir))).Methods(http.MethodGet, http.MethodHead)

	// recovery sits directly around the router so nothing runs after it
	return LoggingMiddleware()(RecoveryMiddleware(rh.errors)(mux))
}
