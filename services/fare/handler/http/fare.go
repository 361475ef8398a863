package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mrstm/fare-service/internal/pkg/logger"
	"github.com/mrstm/fare-service/internal/pkg/models"
	nrpkg "github.com/mrstm/fare-service/internal/pkg/newrelic"
	"github.com/mrstm/fare-service/internal/utils"
	"github.com/mrstm/fare-service/services/fare"
)

const dateLayout = "2006-01-02"

// FareHandler handles HTTP requests for fare operations
type FareHandler struct {
	fareUC fare.FareUC
	cfg    *models.Config
}

// NewFareHandler creates a new fare HTTP handler
func NewFareHandler(fareUC fare.FareUC, cfg *models.Config) *FareHandler {
	return &FareHandler{
		fareUC: fareUC,
		cfg:    cfg,
	}
}

// EstimateFare handles fare estimate requests
func (h *FareHandler) EstimateFare(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fare.EstimateFare")

	var req models.EstimateFareRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	discount := h.cfg.Pricing.SaveDiscountPercent
	if req.Discount != nil {
		discount = *req.Discount
	}

	quote, err := h.fareUC.EstimateFare(c.Request().Context(), req, discount)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fare estimated successfully", quote)
}

// CalculateFare handles the calculate-and-save request for a completed booking
func (h *FareHandler) CalculateFare(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fare.CalculateFare")

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	nrpkg.AddTransactionAttribute(txn, "booking.id", bookingID.String())

	calculated, err := h.fareUC.CalculateAndSaveFare(c.Request().Context(), bookingID)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to calculate fare",
			logger.String("booking_id", bookingID.String()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fare calculated successfully", calculated)
}

// AddFareRate handles the admin request to register a new fare rate
func (h *FareHandler) AddFareRate(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fare.AddFareRate")

	var req models.AddFareRateRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	rate, err := h.fareUC.AddFareRate(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Fare rate added successfully", rate)
}

// GetDriverEarnings returns a driver's earnings summary over a date range
func (h *FareHandler) GetDriverEarnings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fare.GetDriverEarnings")

	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	fromDate, toDate, err := parseDateRange(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	summary, err := h.fareUC.GetDriverEarnings(c.Request().Context(), driverID, fromDate, toDate)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Earnings retrieved successfully", summary)
}

// GetDailyEarnings returns a driver's per-day earnings breakdown
func (h *FareHandler) GetDailyEarnings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fare.GetDailyEarnings")

	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	fromDate, toDate, err := parseDateRange(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	earnings, err := h.fareUC.GetDailyEarnings(c.Request().Context(), driverID, fromDate, toDate)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Daily earnings retrieved successfully", earnings)
}

// parseDateRange reads the from/to query parameters, defaulting to the
// trailing 30 days when omitted.
func parseDateRange(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	fromDate := now.AddDate(0, 0, -30)
	toDate := now

	if from := c.QueryParam("from"); from != "" {
		parsed, err := time.Parse(dateLayout, from)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid from date, expected YYYY-MM-DD")
		}
		fromDate = parsed
	}
	if to := c.QueryParam("to"); to != "" {
		parsed, err := time.Parse(dateLayout, to)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid to date, expected YYYY-MM-DD")
		}
		toDate = parsed
	}

	return fromDate, toDate, nil
}
