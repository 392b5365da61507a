package handlers

import (
	"net/http"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/http/middleware"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

// GetQuote returns the plain-text quotation, or JSON with ?format=json.
func (h *Handler) GetQuote(c *gin.Context) {
	in, err := h.Sessions.QuoteInput(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	text := services.QuoteService{RequestID: middleware.GetRequestID(c)}.Text(in)
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, gin.H{"text": text, "pricing": in.Pricing})
		return
	}
	c.String(http.StatusOK, text)
}

func (h *Handler) ExportPDF(c *gin.Context) {
	h.writePDF(c, c.Param("id"))
}

// SharedExportPDF serves the export behind a signed share link.
func (h *Handler) SharedExportPDF(c *gin.Context) {
	id, err := h.Tokens.Verify(c.Param("token"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.writePDF(c, id)
}

func (h *Handler) writePDF(c *gin.Context, sessionID string) {
	in, err := h.Sessions.QuoteInput(sessionID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	pdfBytes, filename, err := services.DocsService{RequestID: middleware.GetRequestID(c)}.GenerateItineraryPDF(in)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to render itinerary", err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// ShareSession issues a share link for the session export together with the quotation
// text so the caller can paste it.
func (h *Handler) ShareSession(c *gin.Context) {
	id := c.Param("id")
	in, err := h.Sessions.QuoteInput(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	token, exp, err := h.Tokens.Issue(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"url":       "/api/shared/" + token + "/export.pdf",
		"expiresAt": exp,
		"text":      services.QuoteService{RequestID: middleware.GetRequestID(c)}.Text(in),
	})
}
