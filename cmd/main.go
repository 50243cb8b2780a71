package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/app"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/config"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/controllers"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/middleware"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/routes"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (DB pool, repositories, services)
	application, err := app.NewApp(context.Background(), cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize app: ", err)
	}
	defer application.Close()

	// 3) Controllers
	healthCtrl := controllers.NewHealthController(application)
	listingCtrl := controllers.NewListingController(application.ListingService)
	leadCtrl := controllers.NewLeadController(application.LeadService)
	contactCtrl := controllers.NewContactController(application.InquiryService)
	uploadCtrl := controllers.NewUploadController(application.StorageService)
	areaCtrl := controllers.NewAreaController()
	adminCtrl := controllers.NewAdminController(
		application.ListingService,
		application.LeadService,
		application.InquiryService,
	)

	auth := middleware.AuthMiddleware(cfg.RSAPublicKey)
	adminAuth := middleware.AdminAuthMiddleware(cfg.RSAPublicKey)

	// 4) Router
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	// Public browse
	router.HandleFunc(routes.Listings, listingCtrl.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ListingByID, listingCtrl.GetHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.AreasSuggest, areaCtrl.SuggestHandler).Methods(http.MethodGet)

	// Signed-in visitors
	router.Handle(routes.Contact, auth(http.HandlerFunc(contactCtrl.SubmitHandler))).Methods(http.MethodPost)
	router.Handle(routes.Listings, auth(http.HandlerFunc(listingCtrl.CreateHandler))).Methods(http.MethodPost)
	router.Handle(routes.ListingByID, auth(http.HandlerFunc(listingCtrl.UpdateHandler))).Methods(http.MethodPut)
	router.Handle(routes.MyListings, auth(http.HandlerFunc(listingCtrl.MyListingsHandler))).Methods(http.MethodGet)
	router.Handle(routes.ListingContact, auth(http.HandlerFunc(leadCtrl.SubmitContactRequestHandler))).Methods(http.MethodPost)
	router.Handle(routes.ListingAppointments, auth(http.HandlerFunc(leadCtrl.SubmitAppointmentHandler))).Methods(http.MethodPost)
	router.Handle(routes.Uploads, auth(http.HandlerFunc(uploadCtrl.UploadHandler))).Methods(http.MethodPost)

	// Moderation dashboard
	router.Handle(routes.AdminListings, adminAuth(http.HandlerFunc(adminCtrl.ListListingsHandler))).Methods(http.MethodGet)
	router.Handle(routes.AdminListingStatus, adminAuth(http.HandlerFunc(adminCtrl.UpdateListingStatusHandler))).Methods(http.MethodPatch)
	router.Handle(routes.AdminContactRequests, adminAuth(http.HandlerFunc(adminCtrl.ListContactRequestsHandler))).Methods(http.MethodGet)
	router.Handle(routes.AdminContactRequestStatus, adminAuth(http.HandlerFunc(adminCtrl.UpdateContactRequestStatusHandler))).Methods(http.MethodPatch)
	router.Handle(routes.AdminAppointments, adminAuth(http.HandlerFunc(adminCtrl.ListAppointmentsHandler))).Methods(http.MethodGet)
	router.Handle(routes.AdminAppointmentStatus, adminAuth(http.HandlerFunc(adminCtrl.UpdateAppointmentStatusHandler))).Methods(http.MethodPatch)
	router.Handle(routes.AdminSubmissions, adminAuth(http.HandlerFunc(adminCtrl.ListSubmissionsHandler))).Methods(http.MethodGet)
	router.Handle(routes.AdminSubmissionStatus, adminAuth(http.HandlerFunc(adminCtrl.UpdateSubmissionStatusHandler))).Methods(http.MethodPatch)

	// 5) Daily sweep of expired sold-out listings
	if err := application.SweepService.Start(); err != nil {
		utils.Logger.Fatal("Failed to start sweep: ", err)
	}

	// 6) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
