package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"drjackson/internal/models"
	"drjackson/internal/persona"
	"drjackson/internal/service/chat"
	"drjackson/internal/service/intake"
	"drjackson/internal/session"
)

// Handler wires HTTP routes to the intake and chat services.
type Handler struct {
	persona  *persona.Persona
	intake   *intake.Service
	chat     *chat.Service
	sessions *session.Store
}

// NewHandler constructs a Handler instance.
func NewHandler(p *persona.Persona, intakeSvc *intake.Service, chatSvc *chat.Service, store *session.Store) *Handler {
	return &Handler{
		persona:  p,
		intake:   intakeSvc,
		chat:     chatSvc,
		sessions: store,
	}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.Use(h.sessions.Middleware())

	api.GET("/persona", h.getPersona)
	api.GET("/navigation", h.getNavigation)
	api.PUT("/navigation", h.setNavigation)
	api.GET("/pages/:name", h.getPage)

	api.GET("/intake", h.getContactInfo)
	api.POST("/intake", h.submitContactInfo)
	api.GET("/medical-history", h.getMedicalHistory)
	api.POST("/medical-history", h.submitMedicalHistory)
	api.GET("/consultation", h.getConsultation)
	api.POST("/consultation", h.submitConsultation)

	api.POST("/chat/message", h.sendChatMessage)
	api.GET("/chat/history", h.getChatHistory)
	api.DELETE("/chat/history", h.clearChatHistory)

	api.GET("/settings/llm", h.getLLMSettings)
	api.PUT("/settings/llm", h.saveLLMSettings)
}

func (h *Handler) currentSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := session.FromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
		return nil, false
	}
	return sess, true
}

func (h *Handler) getPersona(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"introduction": h.persona.FormalIntroduction(),
		"persona":      h.persona,
	})
}

func (h *Handler) getNavigation(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"current": sess.Route(),
		"pages":   models.Routes,
	})
}

func (h *Handler) setNavigation(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var req struct {
		Page string `json:"page"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	route, err := models.ParseRoute(strings.TrimSpace(req.Page))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess.SetRoute(route)
	c.JSON(http.StatusOK, gin.H{"current": route})
}

func (h *Handler) getPage(c *gin.Context) {
	route, err := models.ParseRoute(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page":    route,
		"content": h.pageContent(route),
	})
}

func (h *Handler) getContactInfo(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact_info": sess.ContactInfo()})
}

func (h *Handler) submitContactInfo(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var form intake.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	info, err := h.intake.SubmitContactInfo(sess, form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Patient information saved successfully.",
		"next_step":    "Please proceed to Medical History to complete your intake.",
		"contact_info": info,
	})
}

func (h *Handler) getMedicalHistory(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"medical_info": sess.MedicalInfo()})
}

func (h *Handler) submitMedicalHistory(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var form intake.MedicalForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	info := h.intake.SubmitMedicalHistory(sess, form)
	c.JSON(http.StatusOK, gin.H{
		"message":      "Medical history saved successfully.",
		"next_step":    "Your intake forms are complete. You may now proceed to consultation.",
		"medical_info": info,
	})
}

func (h *Handler) getConsultation(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	req := sess.Consultation()
	if req == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no consultation request on file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultation": req})
}

func (h *Handler) submitConsultation(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var form intake.ConsultationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	res, err := h.intake.SubmitConsultation(sess, form)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, intake.ErrIntakeIncomplete) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"consultation":    res.Request,
		"priority":        res.Priority,
		"acknowledgement": res.Acknowledgement,
	})
}

type chatRequest struct {
	Content string `json:"content"`
}

func (h *Handler) sendChatMessage(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content cannot be empty"})
		return
	}

	// SSE response construction
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	sendEvent := func(event string, payload interface{}) error {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		if event != "" {
			if _, err := fmt.Fprintf(c.Writer, "event: %s\n", event); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	if err := sendEvent("ack", gin.H{
		"message": gin.H{
			"role":       models.RoleUser,
			"content":    strings.TrimSpace(req.Content),
			"session_id": sess.ID,
		},
	}); err != nil {
		return
	}

	turn, err := h.chat.Respond(sess, req.Content, func(chunk string) error {
		return sendEvent("stream", gin.H{"content": chunk})
	})
	if err != nil {
		_ = sendEvent("error", gin.H{"message": err.Error()})
		return
	}
	_ = sendEvent("done", gin.H{
		"user_message": turn.UserMessage,
		"ai_message":   turn.Reply,
		"priority":     turn.Priority,
	})
}

func (h *Handler) getChatHistory(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	history := sess.History()
	if history == nil {
		history = make([]models.ChatMessage, 0)
	}
	c.JSON(http.StatusOK, gin.H{"messages": history})
}

func (h *Handler) clearChatHistory(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	h.chat.ClearHistory(sess)
	c.Status(http.StatusNoContent)
}

func (h *Handler) getLLMSettings(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	settings := sess.Settings()
	// Keys are never echoed back; reads report which providers are set up.
	c.JSON(http.StatusOK, gin.H{
		"configured": gin.H{
			"anthropic": settings.AnthropicAPIKey != "",
			"openai":    settings.OpenAIAPIKey != "",
			"meta":      settings.MetaAPIKey != "",
			"xai":       settings.XAIAPIKey != "",
		},
		"active_providers": settings.ActiveProviders(),
	})
}

func (h *Handler) saveLLMSettings(c *gin.Context) {
	sess, ok := h.currentSession(c)
	if !ok {
		return
	}
	var settings models.LLMSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	settings.AnthropicAPIKey = strings.TrimSpace(settings.AnthropicAPIKey)
	settings.OpenAIAPIKey = strings.TrimSpace(settings.OpenAIAPIKey)
	settings.MetaAPIKey = strings.TrimSpace(settings.MetaAPIKey)
	settings.XAIAPIKey = strings.TrimSpace(settings.XAIAPIKey)
	sess.ReplaceSettings(settings)

	resp := gin.H{
		"message":          "API settings saved successfully",
		"active_providers": settings.ActiveProviders(),
	}
	if len(settings.ActiveProviders()) == 0 {
		resp["warning"] = "No AI services configured. Some features may be limited."
	}
	c.JSON(http.StatusOK, resp)
}
