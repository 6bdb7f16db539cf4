package http

import (
	"net/http"

	"clinic-scheduler/internal/delivery/http/handler"
	"clinic-scheduler/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	appointmentHandler  *handler.AppointmentHandler
	scheduleViewHandler *handler.ScheduleViewHandler
	doctorHandler       *handler.DoctorHandler
	actorMiddleware     *middleware.ActorMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	scheduleViewHandler *handler.ScheduleViewHandler,
	doctorHandler *handler.DoctorHandler,
	actorMiddleware *middleware.ActorMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		appointmentHandler:  appointmentHandler,
		scheduleViewHandler: scheduleViewHandler,
		doctorHandler:       doctorHandler,
		actorMiddleware:     actorMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Appointments
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.actorMiddleware.Attach)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("/move", r.appointmentHandler.Move).Methods(http.MethodPost)
	appointments.HandleFunc("/timeline", r.appointmentHandler.Timeline).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)

	// Schedule views
	schedule := api.PathPrefix("/schedule").Subrouter()
	schedule.HandleFunc("/multi-doctor", r.scheduleViewHandler.MultiDoctorSchedule).Methods(http.MethodGet)
	schedule.HandleFunc("/date-cards", r.scheduleViewHandler.DateCards).Methods(http.MethodGet)
	schedule.HandleFunc("/slots", r.scheduleViewHandler.ConsecutiveSlots).Methods(http.MethodGet)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/color", r.doctorHandler.SetColor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}/color", r.doctorHandler.DeleteColor).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
