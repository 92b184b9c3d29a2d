package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/console"
	"github.com/BruksfildServices01/petshop-console/internal/httperr"
	"github.com/BruksfildServices01/petshop-console/internal/httpresp"
	"github.com/BruksfildServices01/petshop-console/internal/infra/petshopapi"
	"github.com/BruksfildServices01/petshop-console/internal/middleware"
	"github.com/BruksfildServices01/petshop-console/internal/presenter"
	ucAppointment "github.com/BruksfildServices01/petshop-console/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	load      *ucAppointment.LoadScreen
	openForm  *ucAppointment.OpenForm
	editForm  *ucAppointment.EditForm
	closeForm *ucAppointment.CloseForm
	submit    *ucAppointment.SubmitAppointment
	delete    *ucAppointment.DeleteAppointment
	export    *ucAppointment.ExportAgenda

	loc *time.Location
	log *zap.Logger
}

func NewAppointmentHandler(
	load *ucAppointment.LoadScreen,
	openForm *ucAppointment.OpenForm,
	editForm *ucAppointment.EditForm,
	closeForm *ucAppointment.CloseForm,
	submit *ucAppointment.SubmitAppointment,
	deleteAppointment *ucAppointment.DeleteAppointment,
	exportAgenda *ucAppointment.ExportAgenda,
	loc *time.Location,
	log *zap.Logger,
) *AppointmentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AppointmentHandler{
		load:      load,
		openForm:  openForm,
		editForm:  editForm,
		closeForm: closeForm,
		submit:    submit,
		delete:    deleteAppointment,
		export:    exportAgenda,
		loc:       loc,
		log:       log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OpenFormRequest struct {
	AppointmentID *int64 `json:"agendamento_id"`
}

type AddServiceRequest struct {
	ServiceID int64 `json:"servico_id" binding:"required"`
}

// UpdateFormRequest usa ponteiros: campo ausente não altera o formulário.
// "funcionario_id": 0 remove o funcionário.
type UpdateFormRequest struct {
	AnimalID    *int64  `json:"animal_id"`
	EmployeeID  *int64  `json:"funcionario_id"`
	ScheduledAt *string `json:"data_hora_agendamento"`
	Status      *string `json:"status"`
	Notes       *string `json:"observacoes"`
}

type ScreenErrorResponse struct {
	Code    string                `json:"error_code"`
	Message string                `json:"message"`
	Screen  *presenter.ScreenView `json:"screen,omitempty"`
}

// ======================================================
// SCREEN
// ======================================================

func (h *AppointmentHandler) Screen(c *gin.Context) {
	h.respond(c, middleware.ScreenFrom(c), nil)
}

func (h *AppointmentHandler) Load(c *gin.Context) {
	screen := middleware.ScreenFrom(c)
	err := h.load.Execute(c.Request.Context(), screen)
	h.respond(c, screen, err)
}

func (h *AppointmentHandler) Catalog(c *gin.Context) {
	st, err := middleware.ScreenFrom(c).Snapshot()
	if err != nil {
		h.sessionGone(c)
		return
	}
	httpresp.OK(c, presenter.Catalog(st))
}

// ======================================================
// FORM
// ======================================================

func (h *AppointmentHandler) OpenForm(c *gin.Context) {
	var req OpenFormRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Requisição inválida.")
			return
		}
	}

	screen := middleware.ScreenFrom(c)
	err := h.openForm.Execute(c.Request.Context(), screen, req.AppointmentID)

	// falha na busca do registro ainda abre o formulário
	var apiErr *petshopapi.Error
	if errors.As(err, &apiErr) {
		h.respondStatus(c, screen, http.StatusOK)
		return
	}
	h.respond(c, screen, err)
}

func (h *AppointmentHandler) Form(c *gin.Context) {
	st, err := middleware.ScreenFrom(c).Snapshot()
	if err != nil {
		h.sessionGone(c)
		return
	}
	httpresp.OK(c, presenter.Form(st))
}

func (h *AppointmentHandler) UpdateForm(c *gin.Context) {
	var req UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Requisição inválida.")
		return
	}

	patch := ucAppointment.FieldsPatch{
		AnimalID:    req.AnimalID,
		ScheduledAt: req.ScheduledAt,
		Status:      req.Status,
		Notes:       req.Notes,
	}
	if req.EmployeeID != nil {
		if *req.EmployeeID == 0 {
			patch.ClearEmployee = true
		} else {
			patch.EmployeeID = req.EmployeeID
		}
	}

	screen := middleware.ScreenFrom(c)
	h.respond(c, screen, h.editForm.UpdateFields(screen, patch))
}

func (h *AppointmentHandler) AddService(c *gin.Context) {
	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o serviço.")
		return
	}

	screen := middleware.ScreenFrom(c)
	h.respond(c, screen, h.editForm.AddService(screen, req.ServiceID))
}

func (h *AppointmentHandler) RemoveService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	screen := middleware.ScreenFrom(c)
	h.respond(c, screen, h.editForm.RemoveService(screen, id))
}

func (h *AppointmentHandler) CloseForm(c *gin.Context) {
	screen := middleware.ScreenFrom(c)
	h.respond(c, screen, h.closeForm.Execute(screen))
}

func (h *AppointmentHandler) Submit(c *gin.Context) {
	screen := middleware.ScreenFrom(c)
	_, err := h.submit.Execute(c.Request.Context(), screen)
	h.respond(c, screen, err)
}

// ======================================================
// DELETE / EXPORT
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	screen := middleware.ScreenFrom(c)
	h.respond(c, screen, h.delete.Execute(c.Request.Context(), screen, id, confirmed))
}

func (h *AppointmentHandler) Export(c *gin.Context) {
	screen := middleware.ScreenFrom(c)
	res, err := h.export.Execute(c.Request.Context(), screen, c.Query("q"))
	if err != nil {
		h.respond(c, screen, err)
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return id, true
}

// respond devolve a tela atualizada; em caso de erro o status segue a
// origem da falha e a tela vai junto no corpo.
func (h *AppointmentHandler) respond(c *gin.Context, screen *console.Screen, err error) {
	if err == nil {
		h.respondStatus(c, screen, http.StatusOK)
		return
	}

	if errors.Is(err, console.ErrScreenClosed) {
		h.sessionGone(c)
		return
	}

	status, code := classify(err)
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		h.log.Error("console operation failed", zap.String("session_id", screen.ID), zap.Error(err))
	}

	body := ScreenErrorResponse{Code: code, Message: err.Error()}
	_, business := httperr.AsBusiness(err)
	if st, snapErr := screen.Snapshot(); snapErr == nil {
		// falhas remotas já foram traduzidas para a mensagem do banner
		if !business && st.Error != "" {
			body.Message = st.Error
		}
		view := presenter.Screen(screen.ID, st, c.Query("q"), h.loc)
		body.Screen = &view
	}
	c.JSON(status, body)
}

func (h *AppointmentHandler) respondStatus(c *gin.Context, screen *console.Screen, status int) {
	st, err := screen.Snapshot()
	if err != nil {
		h.sessionGone(c)
		return
	}
	c.JSON(status, presenter.Screen(screen.ID, st, c.Query("q"), h.loc))
}

func (h *AppointmentHandler) sessionGone(c *gin.Context) {
	httperr.NotFound(c, middleware.CodeSessionNotFound,
		"Sessão do console não encontrada. Abra uma nova sessão.")
}

func classify(err error) (int, string) {
	if be, ok := httperr.AsBusiness(err); ok {
		if ucAppointment.IsValidation(err) {
			return http.StatusUnprocessableEntity, be.Code
		}
		switch be.Code {
		case ucAppointment.CodeConfirmationRequired,
			ucAppointment.CodeFormNotOpen:
			return http.StatusConflict, be.Code
		case ucAppointment.CodeExportDisabled:
			return http.StatusServiceUnavailable, be.Code
		}
		return http.StatusBadRequest, be.Code
	}

	var apiErr *petshopapi.Error
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway, "backend_error"
	}

	return http.StatusInternalServerError, "internal_error"
}
