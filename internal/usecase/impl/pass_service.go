package impl

import (
	"context"
	"log/slog"
	"time"

	"truefans/config"
	deliverycontext "truefans/internal/delivery/context"
	"truefans/internal/domain/entity"
	domainerrors "truefans/internal/domain/errors"
	"truefans/internal/domain/repository"
	"truefans/internal/domain/service"
	"truefans/internal/errors"
	"truefans/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// PassServiceParams holds the collaborators of the pass use case.
type PassServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	PassRepo  repository.PassRepository
	Directory repository.RestaurantDirectory
	IDs       service.PassIDGenerator
	Packager  service.PassPackager
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
}

type passService struct {
	logger         *slog.Logger
	passRepo       repository.PassRepository
	directory      repository.RestaurantDirectory
	ids            service.PassIDGenerator
	packager       service.PassPackager
	qrCode         service.QRCodeService
	publisher      service.EventPublisher
	storeTimeout   time.Duration
	pointsPerVisit int64
	now            func() time.Time
}

// NewPassService creates a new pass service instance
func NewPassService(params PassServiceParams) usecase.PassUsecase {
	return &passService{
		logger:         params.Logger,
		passRepo:       params.PassRepo,
		directory:      params.Directory,
		ids:            params.IDs,
		packager:       params.Packager,
		qrCode:         params.QRCode,
		publisher:      params.Publisher,
		storeTimeout:   params.Config.Store.OperationTimeout,
		pointsPerVisit: params.Config.Redemption.PointsPerVisit,
		now:            time.Now,
	}
}

// Issue mints an identifier, renders the artifact and persists the pass once packaging succeeded.
func (s *passService) Issue(ctx context.Context, principal *entity.Principal, input *usecase.IssuePassInput) (*usecase.IssuedPass, error) {
	if input == nil || input.RestaurantID == "" || input.LocationID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("restaurant_id and location_id are required")
	}

	restaurant, location, err := s.lookupBinding(ctx, input.RestaurantID, input.LocationID)
	if err != nil {
		return nil, err
	}

	passID, err := s.ids.Generate()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	var owner *string
	if principal != nil && principal.UserID != "" {
		userID := principal.UserID
		owner = &userID
	}

	pass := entity.NewPass(passID, owner, restaurant.ID, location.ID, s.now().UTC())

	// Packaging only needs the id and zeroed counters, so a failed artifact never leaves a stored pass behind.
	artifact, err := s.render(ctx, pass, restaurant, location, input.Name)
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := s.withStoreTimeout(ctx)
	err = s.passRepo.Create(storeCtx, pass)
	cancel()
	if err != nil {
		if errors.Is(err, repository.ErrPassAlreadyExists) {
			s.logger.ErrorContext(ctx, "Pass identifier collision", slog.String("pass_id", passID))

			return nil, errors.Wrap(domainerrors.ErrPassIDConflict, passID)
		}

		return nil, storeError(err, "failed to create pass")
	}

	s.publish(ctx, service.PassEventIssued, pass)

	return &usecase.IssuedPass{
		Pass:     pass,
		Artifact: artifact,
	}, nil
}

// ListMine returns the caller's passes.
func (s *passService) ListMine(ctx context.Context, principal *entity.Principal) ([]*entity.Pass, error) {
	if principal == nil || principal.UserID == "" {
		return nil, domainerrors.ErrForbidden
	}

	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	passes, err := s.passRepo.FindByOwner(storeCtx, principal.UserID)
	if err != nil {
		return nil, storeError(err, "failed to list passes")
	}

	return passes, nil
}

// Get returns a pass the caller may see.
func (s *passService) Get(ctx context.Context, principal *entity.Principal, passID string) (*entity.Pass, error) {
	pass, err := s.findPass(ctx, passID)
	if err != nil {
		return nil, err
	}

	// Invisible passes look exactly like missing ones.
	if !principal.CanView(pass) {
		return nil, domainerrors.ErrPassNotFound
	}

	return pass, nil
}

// UpdateCounters overwrites counters of a visible pass.
func (s *passService) UpdateCounters(ctx context.Context, principal *entity.Principal, passID string, update entity.CounterUpdate) (*entity.Pass, error) {
	if update.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("points or visits is required")
	}
	if err := update.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidCounters
	}

	if _, err := s.Get(ctx, principal, passID); err != nil {
		return nil, err
	}

	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	pass, err := s.passRepo.UpdateCounters(storeCtx, passID, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPassNotFound):
			return nil, domainerrors.ErrPassNotFound
		case errors.Is(err, entity.ErrNegativeCounter):
			return nil, domainerrors.ErrInvalidCounters
		}

		return nil, storeError(err, "failed to update pass counters")
	}

	return pass, nil
}

// ChangeStatus applies an administrative status transition.
func (s *passService) ChangeStatus(ctx context.Context, principal *entity.Principal, passID string, status entity.PassStatus) (*entity.Pass, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status: " + status.String())
	}

	current, err := s.findPass(ctx, passID)
	if err != nil {
		return nil, err
	}
	if !principal.IsStaffOf(current.RestaurantID) {
		return nil, domainerrors.ErrPassNotFound
	}

	storeCtx, cancel := s.withStoreTimeout(context.WithoutCancel(ctx))
	defer cancel()

	pass, err := s.passRepo.UpdateStatus(storeCtx, passID, status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPassNotFound):
			return nil, domainerrors.ErrPassNotFound
		case errors.Is(err, entity.ErrInvalidStatusTransition):
			return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(current.Status.String() + " -> " + status.String())
		}

		return nil, storeError(err, "failed to update pass status")
	}

	s.logger.InfoContext(ctx, "Pass status changed",
		slog.String("pass_id", passID),
		slog.String("status", pass.Status.String()),
		slog.String("changed_by", principal.UserID),
	)
	s.publish(ctx, service.PassEventStatusChanged, pass)

	return pass, nil
}

// Redeem applies one visit to an active pass bound to the caller's restaurant.
// Every failure rejects the redemption; which condition failed is not disclosed.
func (s *passService) Redeem(ctx context.Context, principal *entity.Principal, passID string) (*usecase.RedemptionResult, error) {
	if principal == nil || !principal.IsStaffOf(principal.RestaurantID) {
		return nil, domainerrors.ErrForbidden
	}
	if passID == "" {
		return nil, domainerrors.ErrPassInvalid
	}

	// A client abort must not interrupt the store call; it stays bounded by the store timeout.
	storeCtx, cancel := s.withStoreTimeout(context.WithoutCancel(ctx))
	defer cancel()

	delta := entity.RedemptionDelta{
		Visits: 1,
		Points: s.pointsPerVisit,
		At:     s.now().UTC(),
	}

	pass, err := s.passRepo.ApplyRedemption(storeCtx, passID, entity.RedeemableAt(principal.RestaurantID), delta)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPassNotFound):
			return nil, domainerrors.ErrPassNotFound
		case errors.IsAny(err, repository.ErrPredicateFailed, entity.ErrNegativeCounter):
			s.logger.InfoContext(ctx, "Redemption rejected",
				slog.String("pass_id", passID),
				slog.String("restaurant_id", principal.RestaurantID),
			)

			return nil, domainerrors.ErrPassInvalid
		}

		return nil, storeError(err, "failed to redeem pass")
	}

	s.logger.InfoContext(ctx, "Pass redeemed",
		slog.String("pass_id", passID),
		slog.String("restaurant_id", principal.RestaurantID),
		slog.Int64("visits", pass.Visits),
	)
	s.publish(ctx, service.PassEventRedeemed, pass)

	return &usecase.RedemptionResult{
		IsValid:  true,
		PassID:   pass.PassID,
		UserID:   pass.UserID,
		Points:   pass.Points,
		Visits:   pass.Visits,
		LastUsed: pass.LastUsed,
	}, nil
}

// RedeemScan resolves scanned QR data to a pass identifier and redeems it.
func (s *passService) RedeemScan(ctx context.Context, principal *entity.Principal, qrData string) (*usecase.RedemptionResult, error) {
	if principal == nil || !principal.IsStaffOf(principal.RestaurantID) {
		return nil, domainerrors.ErrForbidden
	}

	passID, err := s.qrCode.ParsePassQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrPassInvalid
	}

	return s.Redeem(ctx, principal, passID)
}

// Wallet renders the current state of a pass as a wallet artifact.
func (s *passService) Wallet(ctx context.Context, passID, platform string) (*service.PassArtifact, error) {
	if platform != "" && platform != usecase.WalletPlatformIOS {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported wallet platform: " + platform)
	}

	pass, err := s.findPass(ctx, passID)
	if err != nil {
		return nil, err
	}

	restaurant, location, err := s.lookupBinding(ctx, pass.RestaurantID, pass.LocationID)
	if err != nil {
		return nil, err
	}

	return s.render(ctx, pass, restaurant, location, "")
}

// QRCode renders the QR code of a visible pass.
func (s *passService) QRCode(ctx context.Context, principal *entity.Principal, passID string) ([]byte, error) {
	pass, err := s.Get(ctx, principal, passID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCode.GeneratePassQR(pass.PassID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func (s *passService) findPass(ctx context.Context, passID string) (*entity.Pass, error) {
	if passID == "" {
		return nil, domainerrors.ErrPassNotFound
	}

	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	pass, err := s.passRepo.FindByID(storeCtx, passID)
	if err != nil {
		if errors.Is(err, repository.ErrPassNotFound) {
			return nil, domainerrors.ErrPassNotFound
		}

		return nil, storeError(err, "failed to find pass")
	}

	return pass, nil
}

// lookupBinding loads the restaurant and location a pass is, or will be, bound to.
func (s *passService) lookupBinding(ctx context.Context, restaurantID, locationID string) (*entity.Restaurant, *entity.RestaurantLocation, error) {
	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	restaurant, err := s.directory.GetRestaurant(storeCtx, restaurantID)
	if err != nil {
		return nil, nil, directoryError(err)
	}

	location, err := s.directory.GetLocation(storeCtx, restaurantID, locationID)
	if err != nil {
		return nil, nil, directoryError(err)
	}

	return restaurant, location, nil
}

func (s *passService) render(ctx context.Context, pass *entity.Pass, restaurant *entity.Restaurant, location *entity.RestaurantLocation, holderName string) (*service.PassArtifact, error) {
	barcode, err := s.qrCode.PassQRPayload(pass.PassID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPassPackagingFailed, err.Error())
	}

	logoRef := location.LogoRef
	if logoRef == "" {
		logoRef = restaurant.LogoRef
	}

	artifact, err := s.packager.Package(ctx, service.PassFields{
		SerialNumber:   pass.PassID,
		RestaurantName: restaurant.Name,
		HolderName:     holderName,
		LogoRef:        logoRef,
		BarcodeMessage: barcode,
		Points:         pass.Points,
		Visits:         pass.Visits,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to package pass",
			slog.String("pass_id", pass.PassID),
			slog.Any("error", err),
		)
		if errors.Is(err, service.ErrLogoUnavailable) {
			return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrPassPackagingFailed, err.Error())
	}

	return artifact, nil
}

// publish emits a pass event. Failures are logged and never fail the request.
func (s *passService) publish(ctx context.Context, eventType string, pass *entity.Pass) {
	if s.publisher == nil {
		return
	}

	event := &service.PassEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		Type:         eventType,
		PassID:       pass.PassID,
		RestaurantID: pass.RestaurantID,
		LocationID:   pass.LocationID,
		Status:       pass.Status.String(),
		Points:       pass.Points,
		Visits:       pass.Visits,
		OccurredAt:   s.now().UTC(),
	}
	if pass.UserID != nil {
		event.UserID = *pass.UserID
	}

	if err := s.publisher.PublishPassEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish pass event",
			slog.String("event_type", eventType),
			slog.String("pass_id", pass.PassID),
			slog.Any("error", err),
		)
	}
}

func (s *passService) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.storeTimeout)
}

// storeError classifies an unexpected store failure. Timeouts are retryable.
func storeError(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(domainerrors.ErrStoreTimeout, message)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, message)
	}

	return errors.Wrap(domainerrors.NewDatabaseExecuteError(err, message), message)
}

func directoryError(err error) error {
	switch {
	case errors.IsAny(err, repository.ErrRestaurantNotFound, repository.ErrLocationNotFound):
		return domainerrors.ErrLocationNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(domainerrors.ErrStoreTimeout, "restaurant directory timed out")
	}

	return errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
}
