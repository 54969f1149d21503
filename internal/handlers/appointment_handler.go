package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booksmart-api/internal/dto"
	"github.com/BruksfildServices01/booksmart-api/internal/httperr"
	"github.com/BruksfildServices01/booksmart-api/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/booksmart-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	cancelUC *ucAppointment.CancelAppointment
	purgeUC  *ucAppointment.PurgeAppointment
	listUC   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	purgeUC *ucAppointment.PurgeAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
		purgeUC:  purgeUC,
		listUC:   listUC,
	}
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:          req.UserID,
		ServiceID:       req.ServiceID,
		EmployeeID:      req.EmployeeID,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, dto.FromAppointment(ap))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromBinding(c, err)
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ID:              id,
		UserID:          req.UserID,
		ServiceID:       req.ServiceID,
		EmployeeID:      req.EmployeeID,
		AppointmentTime: req.AppointmentTime,
		Version:         req.Version,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// CANCEL / PURGE
// ======================================================

// Cancel is the soft delete: the row stays with status CANCELED.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(ap))
}

func (h *AppointmentHandler) Purge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.purgeUC.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.All(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.listUC.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(ap))
}

func (h *AppointmentHandler) ListByUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	aps, err := h.listUC.ForUser(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) ListByBusiness(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	aps, err := h.listUC.ForBusiness(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.FromAppointments(aps))
}
