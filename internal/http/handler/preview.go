package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tendersim/internal/core"
	"tendersim/internal/credentials"
	"tendersim/internal/http/handler/middleware"
	"tendersim/internal/http/payload"
	"tendersim/internal/prompt"
	"tendersim/internal/render"

	"go.uber.org/zap"
)

var (
	Authenticate       = "POST /snap/authenticate"
	Invoke             = "POST /snap/invoke"
	TransactionInsight = "POST /snap/transaction"
)

var ErrUnsupportedMethod error = errors.New("method not supported")

type PreviewHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	previewer        SimulationService
}

func NewPreviewHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, simulationService SimulationService) *PreviewHandler {
	return &PreviewHandler{
		logs:             logger,
		requestValidator: requestValidator,
		previewer:        simulationService,
	}
}

func (h *PreviewHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	var authRequest payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &authRequest)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.previewer.Authenticate(r.Context(), authRequest.ToCoreAuthMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *PreviewHandler) HandleInvoke(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	var invokeRequest payload.InvokeRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &invokeRequest)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not invoke method",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Invoke,
			"request_id", requestId)
		return
	}

	h.logs.Infow("invoke request received",
		"method", invokeRequest.Method,
		"origin", invokeRequest.Origin,
		"handler", Invoke,
		"request_id", requestId)

	ctx := prompt.WithReply(r.Context(), invokeRequest.Input)

	switch invokeRequest.Method {
	case payload.MethodUpdateCredentials:
		err = h.previewer.UpdateCredentials(ctx, invokeRequest.Origin)
		if err != nil {
			resp := Response{
				Message: "Could not update credentials",
			}
			httpCode := http.StatusInternalServerError
			if errors.Is(err, credentials.ErrMissingInput) || errors.Is(err, credentials.ErrMalformedInput) {
				httpCode = http.StatusBadRequest
				resp.Error = err.Error()
			} else {
				resp.Error = "unexpected error occurred"
			}

			h.respond(w, resp, httpCode, requestId)
			h.logs.Errorw("failed to update credentials",
				"error", err,
				"handler", Invoke,
				"request_id", requestId)
			return
		}

		h.respond(w, Response{Message: "Credentials updated"}, http.StatusOK, requestId)
	case payload.MethodSendTransaction:
		reply, err := h.previewer.SendTransactionPrompt(ctx, invokeRequest.Origin)
		if err != nil {
			h.respond(w, Response{
				Message: "Could not request transaction payload",
				Error:   "unexpected error occurred",
			}, http.StatusInternalServerError,
				requestId)
			h.logs.Errorw("failed to request transaction payload",
				"error", err,
				"handler", Invoke,
				"request_id", requestId)
			return
		}

		resp := map[string]string{
			"result": reply,
		}
		h.respond(w, resp, http.StatusOK, requestId)
	default:
		h.respond(w, Response{
			Message: "Could not invoke method",
			Error:   fmt.Errorf("%w: %s", ErrUnsupportedMethod, invokeRequest.Method).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("unsupported invoke method",
			"method", invokeRequest.Method,
			"handler", Invoke,
			"request_id", requestId)
	}
}

func (h *PreviewHandler) HandleTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	var txRequest payload.TransactionRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &txRequest)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not simulate transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", TransactionInsight,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transaction insight request received",
		"origin", txRequest.Origin,
		"to", txRequest.Transaction.To,
		"handler", TransactionInsight,
		"request_id", requestId)

	ctx := prompt.WithReply(r.Context(), txRequest.Input)

	content, err := h.previewer.TransactionInsight(ctx, txRequest.ToCorePayload(), txRequest.Origin)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not simulate transaction",
			Error:   fmt.Errorf("transaction insight: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to simulate transaction",
			"error", err,
			"handler", TransactionInsight,
			"request_id", requestId)
		return
	}

	resp := map[string]render.Node{
		"content": content,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *PreviewHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
