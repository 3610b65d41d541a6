package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/pharmatrust/custody/internal/api/middleware"
	"github.com/pharmatrust/custody/internal/api/rest/dto"
	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/handoff"
	"github.com/pharmatrust/custody/internal/ledger"
	"github.com/pharmatrust/custody/internal/onboarding"
	"github.com/pharmatrust/custody/internal/store"
	"github.com/pharmatrust/custody/internal/store/schema"
)

// Handler handles REST API requests
type Handler struct {
	store      store.Store
	mirror     *ledger.Mirror
	handoff    *handoff.Service
	onboarding *onboarding.Service
}

// NewHandler creates a new REST handler
func NewHandler(s store.Store, mirror *ledger.Mirror, handoffSvc *handoff.Service, onboardingSvc *onboarding.Service) Handler {
	return Handler{
		store:      s,
		mirror:     mirror,
		handoff:    handoffSvc,
		onboarding: onboardingSvc,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// currentUser resolves the authenticated subject to a user row
func (h *Handler) currentUser(c *gin.Context) (*schema.User, bool) {
	ref := c.GetString(middleware.AuthSubjectKey)
	if ref == "" {
		respondBadRequest(c, "Missing authenticated subject")
		return nil, false
	}

	user, err := h.store.GetUserByRef(c.Request.Context(), ref)
	if err != nil {
		respondInternalError(c, err, "Failed to resolve user")
		return nil, false
	}
	if user == nil {
		respondNotFound(c, "User not found")
		return nil, false
	}

	return user, true
}

// parsePagination reads page/limit query params with defaults
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return page, limit
}

// MintBatch creates the mirror rows for a minted production batch
func (h *Handler) MintBatch(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.MintBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	tokens, err := h.mirror.MintBatch(c.Request.Context(), ledger.MintBatchInput{
		ManufacturerID: user.ID,
		BatchNumber:    req.BatchNumber,
		DrugRef:        req.DrugRef,
		ProductionRef:  req.ProductionRef,
		TokenIDs:       req.TokenIDs,
		ChainTxHash:    req.ChainTxHash,
		MfgDate:        req.MfgDate,
		ExpDate:        req.ExpDate,
		QuantityPer:    req.QuantityPer,
		Unit:           req.Unit,
		IPFSUrl:        req.IPFSUrl,
		Metadata:       datatypes.JSON(req.Metadata),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]dto.TokenResponse, 0, len(tokens))
	for _, token := range tokens {
		items = append(items, dto.FromToken(token))
	}
	c.JSON(http.StatusCreated, gin.H{"tokens": items})
}

// ListTokens returns tokens matching the query filters
func (h *Handler) ListTokens(c *gin.Context) {
	page, limit := parsePagination(c)
	ownerID, _ := strconv.ParseUint(c.Query("owner_id"), 10, 64)

	tokens, total, err := h.store.ListTokens(c.Request.Context(), store.TokenFilter{
		OwnerID:     ownerID,
		Status:      domain.TokenStatus(c.Query("status")),
		BatchNumber: c.Query("batch_number"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list tokens")
		return
	}

	items := make([]dto.TokenResponse, 0, len(tokens))
	for _, token := range tokens {
		items = append(items, dto.FromToken(token))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.TokenResponse]{Items: items, Total: total, Page: page, Limit: limit})
}

// ExpireToken moves a token into the absorbing expired state
func (h *Handler) ExpireToken(c *gin.Context) {
	if err := h.mirror.MarkExpired(c.Request.Context(), c.Param("token_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecallToken moves a token into the absorbing recalled state
func (h *Handler) RecallToken(c *gin.Context) {
	if err := h.mirror.MarkRecalled(c.Request.Context(), c.Param("token_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateIntent starts a custody handoff (phase 1)
func (h *Handler) CreateIntent(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	intent, err := h.handoff.CreateIntent(c.Request.Context(), handoff.CreateIntentInput{
		ActorID:     user.ID,
		Hop:         domain.Hop(req.Hop),
		ToUserRef:   req.ToUserRef,
		TokenIDs:    req.TokenIDs,
		BatchNumber: req.BatchNumber,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromIntent(intent))
}

// GetIntent returns one transfer intent by ref
func (h *Handler) GetIntent(c *gin.Context) {
	intent, err := h.store.GetIntentByRef(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondInternalError(c, err, "Failed to get intent")
		return
	}
	if intent == nil {
		respondNotFound(c, "Transfer intent not found")
		return
	}
	c.JSON(http.StatusOK, dto.FromIntent(intent))
}

// ListIntents returns transfer intents matching the query filters
func (h *Handler) ListIntents(c *gin.Context) {
	page, limit := parsePagination(c)
	fromID, _ := strconv.ParseUint(c.Query("from_user_id"), 10, 64)
	toID, _ := strconv.ParseUint(c.Query("to_user_id"), 10, 64)

	intents, total, err := h.store.ListIntents(c.Request.Context(), store.IntentFilter{
		FromUserID: fromID,
		ToUserID:   toID,
		Hop:        domain.Hop(c.Query("hop")),
		Status:     domain.IntentStatus(c.Query("status")),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list intents")
		return
	}

	items := make([]dto.IntentResponse, 0, len(intents))
	for _, intent := range intents {
		items = append(items, dto.FromIntent(intent))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.IntentResponse]{Items: items, Total: total, Page: page, Limit: limit})
}

// RecordSubmission reports the on-chain transfer hash (phase 2)
func (h *Handler) RecordSubmission(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.handoff.RecordSubmission(c.Request.Context(), c.Param("ref"), user.ID, req.TxHash); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ConfirmReceipt confirms physical receipt (phase 3)
func (h *Handler) ConfirmReceipt(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	proof, err := h.handoff.ConfirmReceipt(c.Request.Context(), c.Param("ref"), user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProof(proof))
}

// ApproveHandoff counter-approves a confirmed receipt (phase 4)
func (h *Handler) ApproveHandoff(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.handoff.ApproveHandoff(c.Request.Context(), handoff.ApproveInput{
		IntentRef:     c.Param("ref"),
		ActorID:       user.ID,
		ProductionRef: req.ProductionRef,
	}); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListProofs returns receipt proofs matching the query filters
func (h *Handler) ListProofs(c *gin.Context) {
	page, limit := parsePagination(c)

	proofs, total, err := h.store.ListProofs(c.Request.Context(), store.ProofFilter{
		Hop:    domain.Hop(c.Query("hop")),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list proofs")
		return
	}

	items := make([]dto.ProofResponse, 0, len(proofs))
	for _, proof := range proofs {
		items = append(items, dto.FromProof(proof))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.ProofResponse]{Items: items, Total: total, Page: page, Limit: limit})
}

// SubmitRegistration accepts a prospective participant's self-registration
func (h *Handler) SubmitRegistration(c *gin.Context) {
	var req dto.RegistrationSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	registration, err := h.onboarding.Submit(c.Request.Context(), onboarding.SubmitInput{
		Email: req.Email,
		Role:  domain.Role(req.Role),
		Info:  req.CompanyInfo,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromRegistration(registration))
}

// GetRegistration returns one registration request by ref
func (h *Handler) GetRegistration(c *gin.Context) {
	registration, err := h.store.GetRegistrationByRef(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondInternalError(c, err, "Failed to get registration")
		return
	}
	if registration == nil {
		respondNotFound(c, "Registration request not found")
		return
	}
	c.JSON(http.StatusOK, dto.FromRegistration(registration))
}

// ListRegistrations returns registration requests matching the query filters
func (h *Handler) ListRegistrations(c *gin.Context) {
	page, limit := parsePagination(c)

	registrations, total, err := h.store.ListRegistrations(c.Request.Context(), store.RegistrationFilter{
		Status: domain.RegistrationStatus(c.Query("status")),
		Role:   domain.Role(c.Query("role")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list registrations")
		return
	}

	items := make([]dto.RegistrationResponse, 0, len(registrations))
	for _, registration := range registrations {
		items = append(items, dto.FromRegistration(registration))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.RegistrationResponse]{Items: items, Total: total, Page: page, Limit: limit})
}

// ApproveRegistration approves a pending registration and attempts the
// on-chain participant call
func (h *Handler) ApproveRegistration(c *gin.Context) {
	registration, err := h.onboarding.Approve(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRegistration(registration))
}

// RetryRegistration re-attempts the on-chain call for a failed registration
func (h *Handler) RetryRegistration(c *gin.Context) {
	registration, err := h.onboarding.Retry(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRegistration(registration))
}

// RejectRegistration declines a pending registration
func (h *Handler) RejectRegistration(c *gin.Context) {
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.onboarding.Reject(c.Request.Context(), c.Param("ref"), req.Reason); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
