package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lovematch/backend/internal/domain"
	"github.com/lovematch/backend/internal/service"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")

	users.GET("/user-data", h.sessionMiddleware, h.userData)
	users.POST("/calculate", h.calculate)
	users.GET("/inbox", h.sessionMiddleware, h.inbox)
	users.DELETE("/inbox/:id", h.sessionMiddleware, h.deleteInbox)
}

// @Summary Current account
// @Tags Users
// @Description Returns the caller's account without the password
// @Produce json
// @Success 200 {object} UserEnvelope
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Security SessionCookie
// @Router /users/user-data [get]
func (h *Handler) userData(c *gin.Context) {
	claims, err := h.sessionClaims(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "Not authorized. Please login again")
		return
	}

	account, err := h.services.Accounts.GetByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, userEnvelope{
		response: response{Success: true, Message: "User data fetched"},
		User:     newUserResponse(account),
	})
}

type calculateInput struct {
	YourName           string `json:"yourName" binding:"required,max=64"`
	YourAge            int    `json:"yourAge" binding:"required,gte=1,lte=120"`
	YourEducation      string `json:"yourEducation" binding:"required,max=64"`
	CrushName          string `json:"crushName" binding:"required,max=64"`
	CrushAge           int    `json:"crushAge" binding:"required,gte=1,lte=120"`
	CrushEducation     string `json:"crushEducation" binding:"required,max=64"`
	RelationshipMonths int    `json:"relationshipMonths" binding:"gte=0"`
	RelationshipDays   int    `json:"relationshipDays" binding:"gte=0"`
	IDPin              string `json:"idPin" binding:"required,pin"`
}

type calculationEnvelope struct {
	response
	Calculation domain.Calculation `json:"calculation"`
} // @name CalculationEnvelope

// @Summary Save compatibility calculation
// @Tags Users
// @Description Scores the submission server-side and stores it for the pin
// @Accept json
// @Produce json
// @Param input body calculateInput true "calculation form"
// @Success 201 {object} CalculationEnvelope
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /users/calculate [post]
func (h *Handler) calculate(c *gin.Context) {
	var input calculateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	calculation, err := h.services.Calculations.Save(c.Request.Context(), service.CalculationInput{
		Pin:                input.IDPin,
		YourName:           input.YourName,
		YourAge:            input.YourAge,
		YourEducation:      input.YourEducation,
		CrushName:          input.CrushName,
		CrushAge:           input.CrushAge,
		CrushEducation:     input.CrushEducation,
		RelationshipMonths: input.RelationshipMonths,
		RelationshipDays:   input.RelationshipDays,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, calculationEnvelope{
		response:    response{Success: true, Message: "Love calculation saved successfully"},
		Calculation: *calculation,
	})
}

type inboxEnvelope struct {
	response
	Calculations []domain.Calculation `json:"calculations"`
} // @name InboxEnvelope

// @Summary Calculation history
// @Tags Users
// @Description Returns up to 10 most recent records for the caller's pin
// @Produce json
// @Success 200 {object} InboxEnvelope
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Security SessionCookie
// @Router /users/inbox [get]
func (h *Handler) inbox(c *gin.Context) {
	claims, err := h.sessionClaims(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "Not authorized. Please login again")
		return
	}

	account, err := h.services.Accounts.GetByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	// Accounts that never finished verification have no pin and no history.
	if !account.Pin.Valid {
		c.JSON(http.StatusOK, inboxEnvelope{
			response:     response{Success: true, Message: "History fetched"},
			Calculations: []domain.Calculation{},
		})
		return
	}

	calculations, err := h.services.Calculations.History(c.Request.Context(), account.Pin.String)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, inboxEnvelope{
		response:     response{Success: true, Message: "History fetched"},
		Calculations: calculations,
	})
}

// @Summary Delete calculation
// @Tags Users
// @Description Deletes one record owned by the caller's pin
// @Produce json
// @Param id path string true "calculation id"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Security SessionCookie
// @Router /users/inbox/{id} [delete]
func (h *Handler) deleteInbox(c *gin.Context) {
	claims, err := h.sessionClaims(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "Not authorized. Please login again")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid calculation id")
		return
	}

	account, err := h.services.Accounts.GetByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	if !account.Pin.Valid {
		serviceErrorResponse(c, service.ErrCalculationNotFound)
		return
	}

	if err := h.services.Calculations.Delete(c.Request.Context(), account.Pin.String, id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okResponse(c, http.StatusOK, "Calculation deleted successfully")
}
