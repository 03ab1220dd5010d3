package handlers

import (
	"errors"
	"io"
	"net/http"

	"mpesa-reconciler/internal/domain/payment"
	"mpesa-reconciler/internal/mpesa"
	"mpesa-reconciler/pkg/logger"
	"mpesa-reconciler/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Ack is the body the provider expects back. It reads the ResultCode field,
// not the HTTP status, as the real success signal.
type Ack struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

const (
	ackProcessed    = "Callback processed successfully"
	ackUnresolvable = "No matching payment found and insufficient data to create new record"
	ackError        = "Error processing callback"
)

type CallbackHandler struct {
	service *payment.ReconcileService
	l       *logger.Logger
}

func NewCallbackHandler(s *payment.ReconcileService, l *logger.Logger) *CallbackHandler {
	return &CallbackHandler{service: s, l: l}
}

// Receive handles one provider notification: parse, match, apply, acknowledge.
func (h *CallbackHandler) Receive(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		metrics.CallbacksTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, Ack{ResultCode: 1, ResultDesc: ackError})
		return
	}

	cb, err := mpesa.ParseCallback(raw)
	if err != nil {
		if errors.Is(err, mpesa.ErrMalformedCallback) {
			metrics.CallbacksTotal.WithLabelValues("malformed").Inc()
			h.l.InfoCtx(c.Request.Context(), "Rejected malformed callback: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback structure"})
			return
		}
		metrics.CallbacksTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, Ack{ResultCode: 1, ResultDesc: ackError})
		return
	}

	res, err := h.service.ProcessCallback(c.Request.Context(), cb)
	if err != nil {
		// Store failures are unexpected; log the identifying fields before
		// acknowledging with a generic failure.
		h.l.ErrorCtx(c.Request.Context(),
			"Callback processing error: merchant_request_id=%s checkout_request_id=%s result_code=%d receipt=%s error=%v",
			cb.MerchantRequestID, cb.CheckoutRequestID, cb.ResultCode, cb.ReceiptNumber, err)
		metrics.CallbacksTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, Ack{ResultCode: 1, ResultDesc: ackError})
		return
	}

	switch res.Outcome {
	case payment.OutcomeUnresolvable:
		metrics.CallbacksTotal.WithLabelValues("unresolvable").Inc()
		c.JSON(http.StatusOK, Ack{ResultCode: 1, ResultDesc: ackUnresolvable})
	default:
		metrics.CallbacksTotal.WithLabelValues(string(res.Outcome)).Inc()
		metrics.MatchesTotal.WithLabelValues(string(res.Method)).Inc()
		h.l.InfoCtx(c.Request.Context(), "Payment %s updated via %s: status=%s",
			res.PaymentID, res.Method, cb.Status())
		c.JSON(http.StatusOK, Ack{ResultCode: 0, ResultDesc: ackProcessed})
	}
}
