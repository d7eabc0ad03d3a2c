package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brightway/internal/domain"
)

// Submissions are immutable, so the admin surface is read-only: page through
// each intake and count by status. Status changes happen in external tooling.

type BookingReader interface {
	List(ctx context.Context, limit, offset int) ([]domain.BookingSubmission, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type ContactReader interface {
	List(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type CareerReader interface {
	List(ctx context.Context, limit, offset int) ([]domain.CareerApplication, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type Handler struct {
	bookings BookingReader
	contacts ContactReader
	careers  CareerReader
}

func NewHandler(bookings BookingReader, contacts ContactReader, careers CareerReader) *Handler {
	return &Handler{
		bookings: bookings,
		contacts: contacts,
		careers:  careers,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/contacts", h.ListContacts)
	rg.GET("/applications", h.ListApplications)
	rg.GET("/stats", h.Stats)
}

func (h *Handler) ListBookings(c *gin.Context) {
	limit, offset := pagination(c)
	items, total, err := h.bookings.List(c.Request.Context(), limit, offset)
	if err != nil {
		_ = c.Error(err)
		internalError(c)
		return
	}
	listOK(c, items, total)
}

func (h *Handler) ListContacts(c *gin.Context) {
	limit, offset := pagination(c)
	items, total, err := h.contacts.List(c.Request.Context(), limit, offset)
	if err != nil {
		_ = c.Error(err)
		internalError(c)
		return
	}
	listOK(c, items, total)
}

func (h *Handler) ListApplications(c *gin.Context) {
	limit, offset := pagination(c)
	items, total, err := h.careers.List(c.Request.Context(), limit, offset)
	if err != nil {
		_ = c.Error(err)
		internalError(c)
		return
	}
	listOK(c, items, total)
}

func (h *Handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	bookings, err := h.bookings.CountByStatus(ctx)
	if err != nil {
		_ = c.Error(err)
		internalError(c)
		return
	}
	contacts, err := h.contacts.CountByStatus(ctx)
	if err != nil {
		_ = c.Error(err)
		internalError(c)
		return
	}
	applications, err := h.careers.CountByStatus(ctx)
	if err != nil {
		_ = c.Error(err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"bookings":     bookings,
			"contacts":     contacts,
			"applications": applications,
		},
	})
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = 50
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	offset = 0
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}

func listOK(c *gin.Context, items interface{}, total int64) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": items,
			"total": total,
		},
	})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Something went wrong. Please try again later.",
	})
}
