package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"parshjain/portfolio-assistant/internal/models"
	"parshjain/portfolio-assistant/internal/services"
)

const (
	rateLimitMessage = "I'm receiving too many requests right now. Please wait a moment before asking another question."
	promptForInput   = "Please provide a message to get started!"
	fallbackNote     = "💡 Fast response from knowledge base!"
	parsingIssueNote = "Request parsing issue - showing general info"
)

type ChatHandler struct {
	profile    services.ProfileService
	limiter    services.RateLimiterService
	gemini     services.GeminiService
	fallback   services.FallbackService
	prompts    *services.PromptBuilder
	resumeText string
}

func NewChatHandler(
	profile services.ProfileService,
	limiter services.RateLimiterService,
	gemini services.GeminiService,
	fallback services.FallbackService,
	resumeText string,
) *ChatHandler {
	return &ChatHandler{
		profile:    profile,
		limiter:    limiter,
		gemini:     gemini,
		fallback:   fallback,
		prompts:    services.NewPromptBuilder(),
		resumeText: resumeText,
	}
}

// HandleChat handles POST /api/chat. Per request the steps run strictly in
// order: identify, throttle, validate, model attempt, fallback. No error from
// the model path ever reaches the client; the worst accepted outcome is a
// knowledge-base answer.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) (err error) {
	reqID := uuid.New().String()[:8]

	// Whatever panics inside the pipeline, the client still gets an answer.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ [%s] Recovered from panic in chat pipeline: %v\n", reqID, r)
			err = c.Status(fiber.StatusInternalServerError).JSON(models.ChatResponse{
				Response:  services.MinimalProfileSummary,
				Timestamp: timestamp(),
				Source:    models.SourceError,
			})
		}
	}()

	identity := clientIdentity(c)

	if !h.limiter.Allow(identity) {
		return c.Status(fiber.StatusTooManyRequests).JSON(models.ChatResponse{
			Error:     "Rate limit exceeded",
			Response:  rateLimitMessage,
			Timestamp: timestamp(),
		})
	}

	var payload map[string]any
	if jsonErr := json.Unmarshal(c.Body(), &payload); jsonErr != nil {
		log.Printf("⚠️  [%s] JSON parsing error: %v\n", reqID, jsonErr)
		// Deliberately non-fatal so the chat widget stays usable.
		return c.JSON(models.ChatResponse{
			Response:  h.fallback.Respond("", h.profile.Record()),
			Timestamp: timestamp(),
			Source:    models.SourceFallback,
			Note:      parsingIssueNote,
		})
	}

	message, ok := payload["message"].(string)
	if !ok || strings.TrimSpace(message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ChatResponse{
			Error:     "No message provided",
			Response:  promptForInput,
			Timestamp: timestamp(),
		})
	}

	if h.gemini.Enabled() {
		prompt := h.prompts.BuildAssistantPrompt(h.profile.JSON(), h.profile.Record(), h.resumeText, message)

		text, genErr := h.gemini.GenerateAnswer(c.UserContext(), prompt)
		if genErr == nil {
			return c.JSON(models.ChatResponse{
				Response:  text,
				Timestamp: timestamp(),
				Source:    models.SourceGemini,
			})
		}

		logGatewayError(reqID, genErr)
	}

	return c.JSON(models.ChatResponse{
		Response:  h.fallback.Respond(message, h.profile.Record()),
		Timestamp: timestamp(),
		Source:    models.SourceFallback,
		Note:      fallbackNote,
	})
}

// HandleHealth handles GET /api/chat, the probe used by the chat widget.
func (h *ChatHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"gemini":  h.gemini.Enabled(),
		"time":    time.Now(),
		"profile": h.profile.Record().PersonalInfo.Name,
	})
}

// clientIdentity derives the throttling key from proxy headers. Requests with
// neither header all share the "unknown" bucket; that coarseness is accepted.
func clientIdentity(c *fiber.Ctx) string {
	if v := c.Get("X-Forwarded-For"); v != "" {
		return v
	}
	if v := c.Get("X-Real-IP"); v != "" {
		return v
	}
	return "unknown"
}

// logGatewayError records the coarse failure category for operators. Every
// category resolves the same way for the caller: through the fallback.
func logGatewayError(reqID string, err error) {
	var gatewayErr *services.GatewayError
	if !errors.As(err, &gatewayErr) {
		log.Printf("⚠️  [%s] Gemini API unavailable - using fallback: %v\n", reqID, err)
		return
	}

	switch gatewayErr.Reason {
	case services.ReasonQuota:
		log.Printf("⚠️  [%s] Gemini API quota exceeded - using intelligent fallback\n", reqID)
	case services.ReasonTimeout:
		log.Printf("⚠️  [%s] Gemini API timeout - using fast fallback\n", reqID)
	case services.ReasonAuth:
		log.Printf("⚠️  [%s] Gemini API key issue - using fallback\n", reqID)
	case services.ReasonEmpty:
		log.Printf("⚠️  [%s] Gemini returned empty response - using fallback\n", reqID)
	default:
		log.Printf("⚠️  [%s] Gemini API unavailable - using fallback: %v\n", reqID, gatewayErr)
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
