package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asadas-tsadiglo/tank-telemetry/src/control"
	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
)

const (
	pumpOnRoute         = "/api/control/pump/on"
	pumpOffRoute        = "/api/control/pump/off"
	chlorinatorOnRoute  = "/api/control/chlorinator/on"
	chlorinatorOffRoute = "/api/control/chlorinator/off"
	autoRoute           = "/api/control/auto"
	controlStatusRoute  = "/api/control/status"

	nextTickNote = "the command is applied on the next refresh cycle"

	equipmentPump        = "pump"
	equipmentChlorinator = "chlorinator"
	equipmentAll         = "all"

	stateOn        = "on"
	stateOff       = "off"
	stateAutomatic = "automatic"
)

func RegisterControlRoutes(router *Router) {
	router.routes.POST(pumpOnRoute, router.PumpOn)
	router.routes.POST(pumpOffRoute, router.PumpOff)
	router.routes.POST(chlorinatorOnRoute, router.ChlorinatorOn)
	router.routes.POST(chlorinatorOffRoute, router.ChlorinatorOff)
	router.routes.POST(autoRoute, router.SetAutomatic)
	router.routes.GET(controlStatusRoute, router.ControlStatus)
}

// @Summary Switch the transfer pump on
// @Description Put the pump in manual mode with the pump forced on
// @Produce json
// @Success 200 {object} ControlActionResponse
// @Router /api/control/pump/on [post]
func (r *Router) PumpOn(context *gin.Context) {
	r.controls.SetPumpManual(true)
	context.JSON(http.StatusOK, actionResponse(equipmentPump, stateOn, control.ModeManual,
		"pump switched on manually"))
}

// @Summary Switch the transfer pump off
// @Description Put the pump in manual mode with the pump forced off
// @Produce json
// @Success 200 {object} ControlActionResponse
// @Router /api/control/pump/off [post]
func (r *Router) PumpOff(context *gin.Context) {
	r.controls.SetPumpManual(false)
	context.JSON(http.StatusOK, actionResponse(equipmentPump, stateOff, control.ModeManual,
		"pump switched off manually"))
}

// @Summary Switch the chlorinator on
// @Description Put the chlorinator in manual mode with dosing forced on
// @Produce json
// @Success 200 {object} ControlActionResponse
// @Router /api/control/chlorinator/on [post]
func (r *Router) ChlorinatorOn(context *gin.Context) {
	r.controls.SetChlorinatorManual(true)
	context.JSON(http.StatusOK, actionResponse(equipmentChlorinator, stateOn, control.ModeManual,
		"chlorinator switched on manually"))
}

// @Summary Switch the chlorinator off
// @Description Put the chlorinator in manual mode with dosing forced off
// @Produce json
// @Success 200 {object} ControlActionResponse
// @Router /api/control/chlorinator/off [post]
func (r *Router) ChlorinatorOff(context *gin.Context) {
	r.controls.SetChlorinatorManual(false)
	context.JSON(http.StatusOK, actionResponse(equipmentChlorinator, stateOff, control.ModeManual,
		"chlorinator switched off manually"))
}

// @Summary Return all equipment to automatic control
// @Description Drop every manual override and hand control back to the hysteresis loops
// @Produce json
// @Success 200 {object} ControlActionResponse
// @Router /api/control/auto [post]
func (r *Router) SetAutomatic(context *gin.Context) {
	r.controls.SetAutomatic()
	context.JSON(http.StatusOK, actionResponse(equipmentAll, stateAutomatic, control.ModeAutomatic,
		"automatic control restored"))
}

// @Summary Get the control state of the equipment
// @Description Get the mode and last operator action per equipment plus the running flags from the simulation
// @Produce json
// @Success 200 {object} ControlStatusResponse
// @Failure 500 {object} ErrorResponse "error message"
// @Router /api/control/status [get]
func (r *Router) ControlStatus(context *gin.Context) {
	cistern, err := r.engine.Snapshot(model.TankA)
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	distribution, err := r.engine.Snapshot(model.TankB)
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	pump := r.controls.Pump()
	chlorinator := r.controls.Chlorinator()

	context.JSON(http.StatusOK, ControlStatusResponse{
		Success:     true,
		Timestamp:   time.Now(),
		Pump:        pump,
		Chlorinator: chlorinator,
		CurrentStates: CurrentStates{
			PumpRunning:        cistern.PumpRunning,
			ChlorinatorRunning: distribution.ChlorinatorRunning,
		},
		Modes: ControlModes{
			PumpMode:        pump.Mode,
			ChlorinatorMode: chlorinator.Mode,
		},
	})
}

func actionResponse(equipment, state string, mode control.Mode, message string) ControlActionResponse {
	return ControlActionResponse{
		Success:   true,
		Timestamp: time.Now(),
		Message:   message,
		Equipment: equipment,
		State:     state,
		Mode:      string(mode),
		Note:      nextTickNote,
	}
}
