// Package statementdelivery manages delivery layer of statements.
package statementdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-fin/fin-ledger/internal/domain"
	"github.com/go-fin/fin-ledger/internal/middleware"
	"github.com/go-fin/fin-ledger/pkg/errorspkg"
	"github.com/go-fin/fin-ledger/pkg/tokenpkg"
	"github.com/go-fin/fin-ledger/pkg/web"
)

// Service provides service layer interface needed by statement delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package statementdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateStatementParams) (domain.Statement, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (domain.Balance, error)
	GetStatement(ctx context.Context, userID, statementID uuid.UUID) (domain.Statement, error)
}

// Handler facilitates statement delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns statement handler.
func NewHandler(ss Service) Handler {
	return Handler{service: ss}
}

type data struct {
	Statement domain.Statement `json:"statement"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required,amount"`
}

// Deposit handles http request to append a deposit statement.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.create(gctx, domain.OperationDeposit)
}

// Withdraw handles http request to append a withdrawal statement.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.create(gctx, domain.OperationWithdraw)
}

func (h *Handler) create(gctx *gin.Context, operation domain.OperationType) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	arg := domain.CreateStatementParams{
		UserID:      authPayload.UserID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        operation,
	}

	statement, err := h.service.Create(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInsufficientFunds,
			domain.ErrInvalidAmount,
			domain.ErrNonPositiveAmount,
			domain.ErrInvalidOperationType:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{statement},
	}

	gctx.JSON(http.StatusCreated, res)
}

type dataBalance struct {
	Balance domain.Balance `json:"balance"`
}
type responseBalance struct {
	Data dataBalance `json:"data,omitempty"`
}

// Balance handles http request to get the user's balance with its statement sequence.
func (h *Handler) Balance(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	balance, err := h.service.GetBalance(ctx, authPayload.UserID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseBalance{
		Data: dataBalance{balance},
	}

	gctx.JSON(http.StatusOK, res)
}

type getRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Get handles http request to get a single owned statement.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	statementID, err := uuid.Parse(req.ID)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	statement, err := h.service.GetStatement(ctx, authPayload.UserID, statementID)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound, domain.ErrStatementNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{statement},
	}

	gctx.JSON(http.StatusOK, res)
}
