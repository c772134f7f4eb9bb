package handlers

import (
	"errors"
	"net/http"

	"ac_learner/internal/acconfig"
	"ac_learner/internal/matrix"
	"ac_learner/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK   = "ok"
	statusSent = "sent"

	errGetState        = "failed to load state"
	errSendCode        = "failed to send code"
	errInvalidBodyPref = "invalid body: "
)

// logAndJSONError logs err under logKey and answers with userMsg.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// sendRequest selects the learned cell of the config named in the path.
type sendRequest struct {
	OperationMode string `json:"operation_mode" binding:"required"`
	FanMode       string `json:"fan_mode" binding:"required"`
	SwingMode     string `json:"swing_mode" binding:"required"`
	Temperature   string `json:"temperature" binding:"required"`
}

// SendRequest is an exported model for Swagger docs of the send payload.
type SendRequest struct {
	OperationMode string `json:"operation_mode" example:"cool"`
	FanMode       string `json:"fan_mode" example:"auto"`
	SwingMode     string `json:"swing_mode" example:"stop"`
	// Temperature label as stored in the config, e.g. "24"
	Temperature string `json:"temperature" example:"24"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List configs
// @Description  Loaded configs in file order with learned/total cell counts, limited to the token scope.
// @Tags         configs
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, configs"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/configs [get]
// @Security     BearerAuth
func (h *Handler) listConfigs(c *gin.Context) {
	op := operatorFrom(c)
	configs := make([]acconfig.Summary, 0)
	for _, s := range h.services.Catalog.List() {
		if op.MaySend(s.Record.Name) {
			configs = append(configs, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(configs),
		"configs": configs,
	})
}

// @Summary      Get config
// @Description  Full record including the learned command matrix. Duplicate names resolve to the first match.
// @Tags         configs
// @Produce      json
// @Param        name  path      string  true  "Config name"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/configs/{name} [get]
// @Security     BearerAuth
func (h *Handler) getConfig(c *gin.Context) {
	name := c.Param("name")
	if !h.allowConfig(c, name) {
		return
	}
	rec, err := h.services.Catalog.Get(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Send a learned code
// @Description  Transmits the code learned for the given cell and records it as the current AC state.
// @Tags         configs
// @Accept       json
// @Produce      json
// @Param        name  path      string       true  "Config name"
// @Param        body  body      SendRequest  true  "Cell to replay"
// @Success      200   {object}  map[string]interface{}  "status, state"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/v1/configs/{name}/send [post]
// @Security     BearerAuth
func (h *Handler) sendCommand(c *gin.Context) {
	if !h.allowConfig(c, c.Param("name")) {
		return
	}
	var req sendRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	params := service.SendParams{
		Config:        c.Param("name"),
		OperationMode: req.OperationMode,
		FanMode:       req.FanMode,
		SwingMode:     req.SwingMode,
		Temperature:   req.Temperature,
	}
	st, err := h.services.Replay.Send(c.Request.Context(), params)
	if err != nil {
		switch {
		case service.IsInvalidSend(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrConfigNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, matrix.ErrNotLearned):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNoDevice):
			h.logAndJSONError(c, http.StatusServiceUnavailable, err.Error(), "send_no_device", err, "config", params.Config)
		default:
			h.logAndJSONError(c, http.StatusBadGateway, errSendCode, "send_failed", err, "config", params.Config)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSent, "state": st})
}

// @Summary      Get last replayed state
// @Tags         state
// @Produce      json
// @Success      200  {object}  models.ACState
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "get_state_failed", err)
		return
	}
	if st.Config != "" && !operatorFrom(c).MaySend(st.Config) {
		c.JSON(http.StatusForbidden, gin.H{"error": errStateOutOfScope})
		return
	}
	c.JSON(http.StatusOK, st)
}
