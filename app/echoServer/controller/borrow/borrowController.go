package borrow

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	ls "lendify/service/ledger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

type Controller struct {
	Svc ls.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/borrow
func (h *Controller) Borrow(c echo.Context) error {
	var req BorrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	uid, _ := c.Get("user_id").(int64)

	if err := h.Svc.Borrow(c.Request().Context(), uid, req.ItemID); err != nil {
		switch ls.Code(err) {
		case ls.ErrItemNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found", "item_id": req.ItemID})
		case ls.ErrOutOfStock:
			return c.JSON(http.StatusConflict, echo.Map{"message": "item out of stock", "item_id": req.ItemID})
		default:
			h.Log.Error("borrow", "err", err, "item_id", req.ItemID)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "borrowed"})
}

// PUT /v1/return/:recordId
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("recordId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid record id"})
	}

	if err := h.Svc.Return(c.Request().Context(), id); err != nil {
		switch ls.Code(err) {
		case ls.ErrRecordNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "borrow record not found or already returned", "record_id": id})
		default:
			h.Log.Error("return", "err", err, "record_id", id)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "returned"})
}

// POST /v1/borrow/batch
func (h *Controller) BorrowBatch(c echo.Context) error {
	var req BatchBorrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	uid, _ := c.Get("user_id").(int64)

	created, err := h.Svc.BorrowBatch(c.Request().Context(), uid, req.Items, req.UsageLocation, req.Occasion)
	if err != nil {
		var infe *ls.ItemNotFoundError
		var isse *ls.InsufficientStockError
		switch {
		case errors.As(err, &infe):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found", "item_id": infe.ItemID})
		case errors.As(err, &isse):
			return c.JSON(http.StatusConflict, echo.Map{
				"message":   "insufficient stock",
				"item_id":   isse.ItemID,
				"available": isse.Available,
				"requested": isse.Requested,
			})
		case ls.Code(err) == ls.ErrInvalidQuantity:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "quantities must be positive"})
		default:
			h.Log.Error("borrow batch", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"created_count": created})
}

// POST /v1/return/batch
func (h *Controller) ReturnBatch(c echo.Context) error {
	var req BatchReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	// Duplicate ids collapse to one return of that record.
	ids := lo.Uniq(req.RecordIDs)

	returned, err := h.Svc.ReturnBatch(c.Request().Context(), ids)
	if err != nil {
		var ire *ls.InvalidRecordsError
		if errors.As(err, &ire) {
			return c.JSON(http.StatusConflict, echo.Map{
				"message":    "some records are missing or already returned",
				"record_ids": ire.Missing,
			})
		}
		h.Log.Error("return batch", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"returned_count": returned})
}

// GET /v1/borrow-records
func (h *Controller) Records(c echo.Context) error {
	rows, err := h.Svc.History(c.Request().Context())
	if err != nil {
		h.Log.Error("list records", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
