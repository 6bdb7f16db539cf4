package handler

import (
	"net/http"
	"time"

	"clinic-scheduler/internal/domain/scheduling"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/response"
)

type ScheduleViewHandler struct {
	scheduleViewUsecase usecase.ScheduleViewUsecase
}

func NewScheduleViewHandler(scheduleViewUsecase usecase.ScheduleViewUsecase) *ScheduleViewHandler {
	return &ScheduleViewHandler{scheduleViewUsecase: scheduleViewUsecase}
}

func (h *ScheduleViewHandler) MultiDoctorSchedule(w http.ResponseWriter, r *http.Request) {
	q := listQueryFromRequest(r)
	if q.Day == "" {
		q.Day = time.Now().Format(scheduling.DayFormat)
	}

	schedule, err := h.scheduleViewUsecase.MultiDoctorSchedule(r.Context(), q)
	if err != nil {
		writeSchedulingError(w, err, "Failed to load multi-doctor schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *ScheduleViewHandler) DateCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	day := q.Get("day")
	if day == "" {
		day = time.Now().Format(scheduling.DayFormat)
	}

	cards, err := h.scheduleViewUsecase.DateCards(r.Context(), day, q.Get("end_day"), q.Get("doctor_id"))
	if err != nil {
		writeSchedulingError(w, err, "Failed to load date cards")
		return
	}

	response.Success(w, http.StatusOK, "Date cards retrieved successfully", cards)
}

func (h *ScheduleViewHandler) ConsecutiveSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	doctorID := q.Get("doctor_id")
	if doctorID == "" {
		response.Error(w, http.StatusBadRequest, "doctor_id is required", nil)
		return
	}
	day := q.Get("day")
	if day == "" {
		day = time.Now().Format(scheduling.DayFormat)
	}
	startTime := q.Get("start_time")
	if startTime == "" {
		startTime = "09:00"
	}
	count := parseCount(q.Get("count"), 0)

	slots, err := h.scheduleViewUsecase.ConsecutiveSlots(r.Context(), doctorID, day, startTime, count)
	if err != nil {
		writeSchedulingError(w, err, "Failed to preview slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}
