package handler

import (
	"log/slog"
	"net/http"

	"truefans/internal/delivery/api/middleware"
	"truefans/internal/delivery/api/response"
	"truefans/internal/domain/entity"
	domainerrors "truefans/internal/domain/errors"
	"truefans/internal/errors"
	"truefans/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderPassID carries the identifier of a freshly issued pass.
const HeaderPassID = "X-Pass-Id"

// PassHandlerParams holds dependencies for PassHandler, injected by Fx.
type PassHandlerParams struct {
	fx.In

	PassUC usecase.PassUsecase
	Logger *slog.Logger
}

// PassHandler holds dependencies for pass-related handlers
type PassHandler struct {
	passUC usecase.PassUsecase
	logger *slog.Logger
}

// NewPassHandler is the constructor for PassHandler
func NewPassHandler(params PassHandlerParams) *PassHandler {
	return &PassHandler{
		passUC: params.PassUC,
		logger: params.Logger,
	}
}

// PassPathRequest binds the pass identifier path parameter
type PassPathRequest struct {
	PassID string `json:"-" param:"passId" validate:"required,max=128"`
}

// UpdateCountersRequest represents the request body for overriding counters
type UpdateCountersRequest struct {
	PassPathRequest
	Points *int64 `json:"points" validate:"omitempty,gte=0"`
	Visits *int64 `json:"visits" validate:"omitempty,gte=0"`
}

// UpdateStatusRequest represents the request body for a status transition
type UpdateStatusRequest struct {
	PassPathRequest
	Status string `json:"status" validate:"required,oneof=active suspended revoked"`
}

// RedeemRequest identifies the pass to redeem, either directly or by scanned QR data
type RedeemRequest struct {
	PassID string `json:"pass_id" validate:"required_without=QRData,max=128"`
	QRData string `json:"qr_data" validate:"required_without=PassID,max=2048"`
}

// WalletRequest selects the wallet platform of the artifact
type WalletRequest struct {
	PassPathRequest
	Platform string `query:"platform" validate:"omitempty,max=16"`
}

// IssuePass handles diner registration and streams the wallet artifact
func (h *PassHandler) IssuePass(c echo.Context) error {
	var req usecase.IssuePassInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	issued, err := h.passUC.Issue(c.Request().Context(), middleware.GetPrincipal(c), &req)
	if err != nil {
		return err
	}

	c.Response().Header().Set(HeaderPassID, issued.Pass.PassID)

	return response.Blob(c, issued.Artifact.ContentType, issued.Artifact.Filename, issued.Artifact.Data)
}

// ListMyPasses returns the caller's passes
func (h *PassHandler) ListMyPasses(c echo.Context) error {
	passes, err := h.passUC.ListMine(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, passes)
}

// GetPass returns a single pass
func (h *PassHandler) GetPass(c echo.Context) error {
	var req PassPathRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pass, err := h.passUC.Get(c.Request().Context(), middleware.GetPrincipal(c), req.PassID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pass)
}

// UpdateCounters overrides points and/or visits
func (h *PassHandler) UpdateCounters(c echo.Context) error {
	var req UpdateCountersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pass, err := h.passUC.UpdateCounters(c.Request().Context(), middleware.GetPrincipal(c), req.PassID, entity.CounterUpdate{
		Points: req.Points,
		Visits: req.Visits,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pass)
}

// UpdateStatus suspends, reinstates or revokes a pass
func (h *PassHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pass, err := h.passUC.ChangeStatus(c.Request().Context(), middleware.GetPrincipal(c), req.PassID, entity.PassStatus(req.Status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pass)
}

// RedeemPass validates a presented pass and records the visit
func (h *PassHandler) RedeemPass(c echo.Context) error {
	var req RedeemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	principal := middleware.GetPrincipal(c)

	var (
		result *usecase.RedemptionResult
		err    error
	)
	if req.PassID != "" {
		result, err = h.passUC.Redeem(ctx, principal, req.PassID)
	} else {
		result, err = h.passUC.RedeemScan(ctx, principal, req.QRData)
	}
	if err != nil {
		// Unknown passes are indistinguishable from invalid ones at this boundary.
		if errors.Is(err, domainerrors.ErrPassNotFound) {
			return domainerrors.ErrPassInvalid
		}

		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// GetWallet re-packages the wallet artifact of a pass
func (h *PassHandler) GetWallet(c echo.Context) error {
	var req WalletRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	artifact, err := h.passUC.Wallet(c.Request().Context(), req.PassID, req.Platform)
	if err != nil {
		return err
	}

	return response.Blob(c, artifact.ContentType, artifact.Filename, artifact.Data)
}

// GetQRCode renders the QR code PNG of a pass
func (h *PassHandler) GetQRCode(c echo.Context) error {
	var req PassPathRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	png, err := h.passUC.QRCode(c.Request().Context(), middleware.GetPrincipal(c), req.PassID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	return c.Validate(req)
}
