// Package usecase defines the application services exposed to the delivery layer.
package usecase

import (
	"context"
	"time"

	"truefans/internal/domain/entity"
	"truefans/internal/domain/service"
)

// Wallet platforms accepted by PassUsecase.Wallet.
const (
	WalletPlatformIOS = "ios"
)

// IssuePassInput is a diner registration for a pass.
// Phone and Birthday are accepted for compatibility but never persisted.
type IssuePassInput struct {
	RestaurantID string `json:"restaurant_id" validate:"required,max=128"`
	LocationID   string `json:"location_id" validate:"required,max=128"`
	Name         string `json:"name" validate:"omitempty,max=120"`
	Phone        string `json:"phone" validate:"omitempty,max=32"`
	Birthday     string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

// IssuedPass is a freshly persisted pass with its wallet artifact.
type IssuedPass struct {
	Pass     *entity.Pass
	Artifact *service.PassArtifact
}

// RedemptionResult is the outcome of a successful redemption.
type RedemptionResult struct {
	IsValid  bool       `json:"is_valid"`
	PassID   string     `json:"pass_id"`
	UserID   *string    `json:"user_id"`
	Points   int64      `json:"points"`
	Visits   int64      `json:"visits"`
	LastUsed *time.Time `json:"last_used"`
}

// PassUsecase covers the pass lifecycle: issuance, reads, administration and redemption.
type PassUsecase interface {
	// Issue mints, persists and packages a pass. principal may be nil for anonymous issuance.
	Issue(ctx context.Context, principal *entity.Principal, input *IssuePassInput) (*IssuedPass, error)

	// ListMine returns the passes owned by the caller in issuance order.
	ListMine(ctx context.Context, principal *entity.Principal) ([]*entity.Pass, error)

	// Get returns a pass visible to the caller (its owner or staff of its restaurant).
	Get(ctx context.Context, principal *entity.Principal, passID string) (*entity.Pass, error)

	// UpdateCounters overrides points and/or visits of a visible pass.
	UpdateCounters(ctx context.Context, principal *entity.Principal, passID string, update entity.CounterUpdate) (*entity.Pass, error)

	// ChangeStatus moves a pass through its state machine. Staff of the bound restaurant only.
	ChangeStatus(ctx context.Context, principal *entity.Principal, passID string, status entity.PassStatus) (*entity.Pass, error)

	// Redeem validates the pass against the caller's restaurant and accrues one visit.
	Redeem(ctx context.Context, principal *entity.Principal, passID string) (*RedemptionResult, error)

	// RedeemScan redeems the pass encoded in scanned QR data.
	RedeemScan(ctx context.Context, principal *entity.Principal, qrData string) (*RedemptionResult, error)

	// Wallet re-packages the artifact of an existing pass with its current counters.
	Wallet(ctx context.Context, passID, platform string) (*service.PassArtifact, error)

	// QRCode renders the QR code PNG of a visible pass.
	QRCode(ctx context.Context, principal *entity.Principal, passID string) ([]byte, error)
}
