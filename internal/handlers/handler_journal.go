package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
	"github.com/SscSPs/sacco_ledger/internal/dto"
	"github.com/SscSPs/sacco_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers routes related to journal entries and member statements.
func registerJournalRoutes(rg *gin.RouterGroup, js portssvc.JournalSvcFacade) {
	h := newJournalHandler(js)

	journals := rg.Group("/journals")
	{
		journals.POST("", middleware.RequireRole(middleware.RoleSystemAdmin), h.postEntry)
		journals.GET("", h.listEntries)
		journals.GET("/:reference", h.getEntry)
	}

	rg.GET("/members/:memberID/lines", h.listMemberLines)
}

// postEntry godoc
// @Summary Post a journal entry
// @Description Validates a balanced set of lines and commits it as a POSTED entry
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   entry body dto.PostJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} errorResponse "Rule violation (unbalanced, too few lines, bad amounts, inactive account)"
// @Failure 404 {object} errorResponse "Account not found"
// @Failure 409 {object} errorResponse "Reference number already used"
// @Failure 500 {object} errorResponse "Failed to post journal entry"
// @Security BearerAuth
// @Router /accounting/journals [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	draft, err := req.ToDraft()
	if err != nil {
		badRequest(c, logger, "Invalid transaction date", err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("reference", req.ReferenceNumber))
	logger.Info("Received request to post journal entry", slog.Int("line_count", len(req.Lines)))

	entry, err := h.journalService.PostEntry(c.Request.Context(), draft, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "post journal entry")
		return
	}

	logger.Info("Journal entry posted", slog.String("journal_entry_id", entry.JournalEntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry by reference
// @Tags journals
// @Produce  json
// @Param   reference path string true "Reference number"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} errorResponse "Journal entry not found"
// @Security BearerAuth
// @Router /accounting/journals/{reference} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("reference", c.Param("reference")))

	entry, err := h.journalService.GetEntry(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, logger, err, "retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entries by status (default POSTED) or, when from and to are given, by inclusive transaction date range
// @Tags journals
// @Produce  json
// @Param   status query string false "Entry status" Enums(DRAFT, POSTED, REVERSED)
// @Param   from query string false "Range start (YYYY-MM-DD)"
// @Param   to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} errorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /accounting/journals [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	ctx := c.Request.Context()
	var (
		entries []domain.JournalEntry
		err     error
	)
	switch {
	case params.From != "" || params.To != "":
		if params.From == "" || params.To == "" {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "both from and to are required for a date range"})
			return
		}
		// Formats were checked by binding.
		from, _ := time.Parse(dto.DateLayout, params.From)
		to, _ := time.Parse(dto.DateLayout, params.To)
		entries, err = h.journalService.ListEntriesByDateRange(ctx, from, to)
	default:
		status := domain.Posted
		if params.Status != "" {
			status = domain.JournalEntryStatus(params.Status)
		}
		entries, err = h.journalService.ListEntriesByStatus(ctx, status)
	}
	if err != nil {
		respondError(c, logger, err, "list journal entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(entries))
}

// listMemberLines godoc
// @Summary Member statement
// @Description Lists posted lines annotated with the member, oldest first
// @Tags journals
// @Produce  json
// @Param   memberID path string true "Member ID"
// @Success 200 {array} dto.LedgerLineResponse
// @Security BearerAuth
// @Router /accounting/members/{memberID}/lines [get]
func (h *journalHandler) listMemberLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("member_id", c.Param("memberID")))

	lines, err := h.journalService.ListLinesByMember(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		respondError(c, logger, err, "list member lines")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerLineResponses(lines))
}
