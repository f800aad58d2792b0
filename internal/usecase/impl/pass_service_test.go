package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"truefans/config"
	"truefans/internal/domain/entity"
	domainerrors "truefans/internal/domain/errors"
	"truefans/internal/domain/repository"
	"truefans/internal/domain/service"
	"truefans/internal/errors"
	"truefans/internal/infra/passid"
	"truefans/internal/infra/persistence/memory"
	"truefans/internal/infra/qrcode"
	mockRepo "truefans/internal/mocks/repository"
	mockSvc "truefans/internal/mocks/service"
	"truefans/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testPassID   = "6f1d2c3b-4a59-4e8f-9d7c-1b2a3c4d5e6f"
	testRestID   = "r1"
	testLocID    = "l1"
	otherRestID  = "r2"
	otherLocID   = "l2"
	testDinerID  = "diner-1"
	testStaffID  = "staff-1"
	pointsPerHit = 10
)

var (
	diner      = &entity.Principal{UserID: testDinerID, Roles: entity.Roles{entity.RoleDiner}}
	otherDiner = &entity.Principal{UserID: "diner-2", Roles: entity.Roles{entity.RoleDiner}}
	staff      = &entity.Principal{UserID: testStaffID, RestaurantID: testRestID, Roles: entity.Roles{entity.RoleStaff}}
	otherStaff = &entity.Principal{UserID: "staff-2", RestaurantID: otherRestID, Roles: entity.Roles{entity.RoleStaff}}
)

func testConfig() *config.Config {
	return &config.Config{
		Store:      &config.StoreConfig{Driver: "memory", OperationTimeout: time.Second},
		Redemption: &config.RedemptionConfig{PointsPerVisit: pointsPerHit},
		Nearby:     &config.NearbyConfig{DefaultRadiusMeters: 500, MaxRadiusMeters: 5000},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type passServiceMocks struct {
	passRepo  *mockRepo.MockPassRepository
	directory *mockRepo.MockRestaurantDirectory
	ids       *mockSvc.MockPassIDGenerator
	packager  *mockSvc.MockPassPackager
	qrCode    *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func createTestPassService(t *testing.T) (usecase.PassUsecase, *passServiceMocks) {
	m := &passServiceMocks{
		passRepo:  mockRepo.NewMockPassRepository(t),
		directory: mockRepo.NewMockRestaurantDirectory(t),
		ids:       mockSvc.NewMockPassIDGenerator(t),
		packager:  mockSvc.NewMockPassPackager(t),
		qrCode:    mockSvc.NewMockQRCodeService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	svc := NewPassService(PassServiceParams{
		Config:    testConfig(),
		Logger:    testLogger(),
		PassRepo:  m.passRepo,
		Directory: m.directory,
		IDs:       m.ids,
		Packager:  m.packager,
		QRCode:    m.qrCode,
		Publisher: m.publisher,
	})

	return svc, m
}

// stubPackager returns a fixed artifact without touching the filesystem.
type stubPackager struct{}

func (stubPackager) Package(_ context.Context, fields service.PassFields) (*service.PassArtifact, error) {
	return &service.PassArtifact{Data: []byte(fields.SerialNumber), Filename: "pass.pkpass"}, nil
}

// failingPackager rejects every bundle the way a missing logo does under the fail policy.
type failingPackager struct{}

func (failingPackager) Package(context.Context, service.PassFields) (*service.PassArtifact, error) {
	return nil, errors.Wrap(service.ErrLogoUnavailable, "logos/brand.png")
}

// createMemoryPassService wires the use case to the in-memory store and real identifiers.
func createMemoryPassService(t *testing.T) (usecase.PassUsecase, repository.PassRepository) {
	t.Helper()

	return createMemoryPassServiceWith(t, stubPackager{})
}

func createMemoryPassServiceWith(t *testing.T, packager service.PassPackager) (usecase.PassUsecase, repository.PassRepository) {
	t.Helper()

	directory := memory.NewRestaurantDirectory()
	directory.PutRestaurant(&entity.Restaurant{ID: testRestID, Name: "Noodle Bar"})
	directory.PutLocation(&entity.RestaurantLocation{ID: testLocID, RestaurantID: testRestID, Name: "Downtown"})
	directory.PutRestaurant(&entity.Restaurant{ID: otherRestID, Name: "Taco Shop"})
	directory.PutLocation(&entity.RestaurantLocation{ID: otherLocID, RestaurantID: otherRestID, Name: "Harbor"})

	passRepo := memory.NewPassRepository()

	svc := NewPassService(PassServiceParams{
		Config:    testConfig(),
		Logger:    testLogger(),
		PassRepo:  passRepo,
		Directory: directory,
		IDs:       passid.NewGenerator(),
		Packager:  packager,
		QRCode:    qrcode.NewQRCodeService(128, "M"),
	})

	return svc, passRepo
}

func issueForDiner(t *testing.T, svc usecase.PassUsecase) *entity.Pass {
	t.Helper()

	issued, err := svc.Issue(context.Background(), diner, &usecase.IssuePassInput{RestaurantID: testRestID, LocationID: testLocID})
	require.NoError(t, err)

	return issued.Pass
}

func expectBinding(m *passServiceMocks, restaurant *entity.Restaurant, location *entity.RestaurantLocation) {
	m.directory.EXPECT().GetRestaurant(mock.Anything, restaurant.ID).Return(restaurant, nil)
	m.directory.EXPECT().GetLocation(mock.Anything, restaurant.ID, location.ID).Return(location, nil)
}

func TestPassService_Issue_Success(t *testing.T) {
	svc, m := createTestPassService(t)
	ctx := context.Background()

	restaurant := &entity.Restaurant{ID: testRestID, Name: "Noodle Bar", LogoRef: "brand.png"}
	location := &entity.RestaurantLocation{ID: testLocID, RestaurantID: testRestID, Name: "Downtown", LogoRef: "downtown.png"}
	expectBinding(m, restaurant, location)
	m.ids.EXPECT().Generate().Return(testPassID, nil)
	m.passRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Pass) bool {
		return p.PassID == testPassID &&
			p.UserID != nil && *p.UserID == testDinerID &&
			p.RestaurantID == testRestID && p.LocationID == testLocID &&
			p.Status == entity.PassStatusActive && p.IsActive &&
			p.Points == 0 && p.Visits == 0 && p.LastUsed == nil
	})).Return(nil)
	m.qrCode.EXPECT().PassQRPayload(testPassID).Return(`{"pass_id":"`+testPassID+`"}`, nil)
	m.packager.EXPECT().Package(mock.Anything, mock.MatchedBy(func(f service.PassFields) bool {
		return f.SerialNumber == testPassID &&
			f.RestaurantName == "Noodle Bar" &&
			f.HolderName == "Ada" &&
			f.LogoRef == "downtown.png" &&
			f.BarcodeMessage != ""
	})).Return(&service.PassArtifact{Data: []byte("zip"), Filename: "pass.pkpass"}, nil)
	m.publisher.EXPECT().PublishPassEvent(mock.Anything, mock.MatchedBy(func(e *service.PassEvent) bool {
		return e.Type == service.PassEventIssued && e.PassID == testPassID && e.UserID == testDinerID && e.EventID != ""
	})).Return(nil)

	issued, err := svc.Issue(ctx, diner, &usecase.IssuePassInput{
		RestaurantID: testRestID,
		LocationID:   testLocID,
		Name:         "Ada",
		Phone:        "+15550100",
	})

	require.NoError(t, err)
	assert.Equal(t, testPassID, issued.Pass.PassID)
	assert.Equal(t, []byte("zip"), issued.Artifact.Data)
}

func TestPassService_Issue_AnonymousUsesRestaurantLogo(t *testing.T) {
	svc, m := createTestPassService(t)

	restaurant := &entity.Restaurant{ID: testRestID, Name: "Noodle Bar", LogoRef: "brand.png"}
	location := &entity.RestaurantLocation{ID: testLocID, RestaurantID: testRestID}
	expectBinding(m, restaurant, location)
	m.ids.EXPECT().Generate().Return(testPassID, nil)
	m.passRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Pass) bool {
		return p.UserID == nil
	})).Return(nil)
	m.qrCode.EXPECT().PassQRPayload(testPassID).Return("payload", nil)
	m.packager.EXPECT().Package(mock.Anything, mock.MatchedBy(func(f service.PassFields) bool {
		return f.LogoRef == "brand.png"
	})).Return(&service.PassArtifact{}, nil)
	m.publisher.EXPECT().PublishPassEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	issued, err := svc.Issue(context.Background(), nil, &usecase.IssuePassInput{RestaurantID: testRestID, LocationID: testLocID})

	require.NoError(t, err, "publish failures must not fail issuance")
	assert.Nil(t, issued.Pass.UserID)
}

func TestPassService_Issue_Failures(t *testing.T) {
	restaurant := &entity.Restaurant{ID: testRestID, Name: "Noodle Bar"}
	location := &entity.RestaurantLocation{ID: testLocID, RestaurantID: testRestID}
	input := &usecase.IssuePassInput{RestaurantID: testRestID, LocationID: testLocID}

	tests := []struct {
		name    string
		input   *usecase.IssuePassInput
		setup   func(m *passServiceMocks)
		wantErr error
	}{
		{
			name:    "missing binding",
			input:   &usecase.IssuePassInput{RestaurantID: testRestID},
			setup:   func(*passServiceMocks) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "unknown restaurant",
			input: input,
			setup: func(m *passServiceMocks) {
				m.directory.EXPECT().GetRestaurant(mock.Anything, testRestID).Return(nil, repository.ErrRestaurantNotFound)
			},
			wantErr: domainerrors.ErrLocationNotFound,
		},
		{
			name:  "unknown location",
			input: input,
			setup: func(m *passServiceMocks) {
				m.directory.EXPECT().GetRestaurant(mock.Anything, testRestID).Return(restaurant, nil)
				m.directory.EXPECT().GetLocation(mock.Anything, testRestID, testLocID).Return(nil, repository.ErrLocationNotFound)
			},
			wantErr: domainerrors.ErrLocationNotFound,
		},
		{
			name:  "directory unavailable",
			input: input,
			setup: func(m *passServiceMocks) {
				m.directory.EXPECT().GetRestaurant(mock.Anything, testRestID).Return(nil, errors.New("connection refused"))
			},
			wantErr: domainerrors.ErrUpstreamUnavailable,
		},
		{
			name:  "entropy failure aborts issuance",
			input: input,
			setup: func(m *passServiceMocks) {
				expectBinding(m, restaurant, location)
				m.ids.EXPECT().Generate().Return("", errors.New("entropy source failed"))
			},
			wantErr: domainerrors.ErrInternalError,
		},
		{
			name:  "identifier collision",
			input: input,
			setup: func(m *passServiceMocks) {
				expectBinding(m, restaurant, location)
				m.ids.EXPECT().Generate().Return(testPassID, nil)
				m.qrCode.EXPECT().PassQRPayload(testPassID).Return("payload", nil)
				m.packager.EXPECT().Package(mock.Anything, mock.Anything).Return(&service.PassArtifact{}, nil)
				m.passRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrPassAlreadyExists)
			},
			wantErr: domainerrors.ErrPassIDConflict,
		},
		{
			name:  "store timeout",
			input: input,
			setup: func(m *passServiceMocks) {
				expectBinding(m, restaurant, location)
				m.ids.EXPECT().Generate().Return(testPassID, nil)
				m.qrCode.EXPECT().PassQRPayload(testPassID).Return("payload", nil)
				m.packager.EXPECT().Package(mock.Anything, mock.Anything).Return(&service.PassArtifact{}, nil)
				m.passRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(context.DeadlineExceeded)
			},
			wantErr: domainerrors.ErrStoreTimeout,
		},
		{
			name:  "logo unavailable under fail policy",
			input: input,
			setup: func(m *passServiceMocks) {
				expectBinding(m, restaurant, location)
				m.ids.EXPECT().Generate().Return(testPassID, nil)
				m.qrCode.EXPECT().PassQRPayload(testPassID).Return("payload", nil)
				m.packager.EXPECT().Package(mock.Anything, mock.Anything).Return(nil, errors.Wrap(service.ErrLogoUnavailable, "logo.png"))
			},
			wantErr: domainerrors.ErrUpstreamUnavailable,
		},
		{
			name:  "packaging failure",
			input: input,
			setup: func(m *passServiceMocks) {
				expectBinding(m, restaurant, location)
				m.ids.EXPECT().Generate().Return(testPassID, nil)
				m.qrCode.EXPECT().PassQRPayload(testPassID).Return("payload", nil)
				m.packager.EXPECT().Package(mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))
			},
			wantErr: domainerrors.ErrPassPackagingFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createTestPassService(t)
			tt.setup(m)

			issued, err := svc.Issue(context.Background(), diner, tt.input)

			require.Error(t, err)
			assert.Nil(t, issued)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestPassService_Issue_PackagingFailureStoresNothing(t *testing.T) {
	svc, passRepo := createMemoryPassServiceWith(t, failingPackager{})
	ctx := context.Background()

	for range 3 {
		issued, err := svc.Issue(ctx, diner, &usecase.IssuePassInput{RestaurantID: testRestID, LocationID: testLocID})
		require.Error(t, err)
		assert.Nil(t, issued)
		assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable), "got %v", err)
	}

	stored, err := passRepo.FindByOwner(ctx, testDinerID)
	require.NoError(t, err)
	assert.Empty(t, stored)

	mine, err := svc.ListMine(ctx, diner)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestPassService_Issue_DistinctIdentifiers(t *testing.T) {
	svc, _ := createMemoryPassService(t)
	ctx := context.Background()

	const issuances = 2000
	seen := make(map[string]struct{}, issuances)
	for range issuances {
		issued, err := svc.Issue(ctx, nil, &usecase.IssuePassInput{RestaurantID: testRestID, LocationID: testLocID})
		require.NoError(t, err)
		seen[issued.Pass.PassID] = struct{}{}
	}

	assert.Len(t, seen, issuances)
}

func TestPassService_Redeem_IncrementsVisit(t *testing.T) {
	svc, passRepo := createMemoryPassService(t)
	pass := issueForDiner(t, svc)

	before := time.Now().UTC().Add(-time.Second)
	result, err := svc.Redeem(context.Background(), staff, pass.PassID)

	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Equal(t, int64(1), result.Visits)
	assert.Equal(t, int64(pointsPerHit), result.Points)
	require.NotNil(t, result.LastUsed)
	assert.True(t, result.LastUsed.After(before))
	require.NotNil(t, result.UserID)
	assert.Equal(t, testDinerID, *result.UserID)

	stored, err := passRepo.FindByID(context.Background(), pass.PassID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Visits)
}

func TestPassService_Redeem_ConcurrentNoLostUpdates(t *testing.T) {
	svc, passRepo := createMemoryPassService(t)
	pass := issueForDiner(t, svc)

	const scans = 100
	var wg sync.WaitGroup
	errs := make(chan error, scans)
	for range scans {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Redeem(context.Background(), staff, pass.PassID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected redemption error: %v", err)
	}

	stored, err := passRepo.FindByID(context.Background(), pass.PassID)
	require.NoError(t, err)
	assert.Equal(t, int64(scans), stored.Visits)
	assert.Equal(t, int64(scans*pointsPerHit), stored.Points)
}

func TestPassService_Redeem_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		principal *entity.Principal
		status    []entity.PassStatus
		wantErr   error
	}{
		{name: "wrong restaurant", principal: otherStaff, wantErr: domainerrors.ErrPassInvalid},
		{name: "suspended", principal: staff, status: []entity.PassStatus{entity.PassStatusSuspended}, wantErr: domainerrors.ErrPassInvalid},
		{name: "revoked", principal: staff, status: []entity.PassStatus{entity.PassStatusRevoked}, wantErr: domainerrors.ErrPassInvalid},
		{name: "suspended then revoked", principal: staff, status: []entity.PassStatus{entity.PassStatusSuspended, entity.PassStatusRevoked}, wantErr: domainerrors.ErrPassInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, passRepo := createMemoryPassService(t)
			pass := issueForDiner(t, svc)
			for _, status := range tt.status {
				_, err := svc.ChangeStatus(context.Background(), staff, pass.PassID, status)
				require.NoError(t, err)
			}

			result, err := svc.Redeem(context.Background(), tt.principal, pass.PassID)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			stored, err := passRepo.FindByID(context.Background(), pass.PassID)
			require.NoError(t, err)
			assert.Zero(t, stored.Visits)
			assert.Zero(t, stored.Points)
			assert.Nil(t, stored.LastUsed)
		})
	}
}

func TestPassService_Redeem_UnknownPass(t *testing.T) {
	svc, _ := createMemoryPassService(t)

	_, err := svc.Redeem(context.Background(), staff, testPassID)

	assert.True(t, errors.Is(err, domainerrors.ErrPassNotFound))
}

func TestPassService_Redeem_RequiresStaff(t *testing.T) {
	svc, _ := createTestPassService(t)

	for _, principal := range []*entity.Principal{nil, diner, {UserID: "x", RestaurantID: testRestID, Roles: entity.Roles{entity.RoleDiner}}} {
		_, err := svc.Redeem(context.Background(), principal, testPassID)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	}
}

func TestPassService_Redeem_StoreFailuresRejectClosed(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{name: "timeout", storeErr: errors.Wrap(context.DeadlineExceeded, "lock wait"), wantErr: domainerrors.ErrStoreTimeout},
		{name: "unknown failure", storeErr: errors.New("connection reset"), wantErr: domainerrors.ErrInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createTestPassService(t)
			m.passRepo.EXPECT().ApplyRedemption(mock.Anything, testPassID, mock.Anything, mock.Anything).Return(nil, tt.storeErr)

			result, err := svc.Redeem(context.Background(), staff, testPassID)

			require.Error(t, err)
			assert.Nil(t, result)
			if tt.wantErr == domainerrors.ErrInternalError {
				var appErr domainerrors.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, 500, appErr.HTTPCode())
				assert.False(t, appErr.Retryable())

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestPassService_Redeem_PredicateAndDelta(t *testing.T) {
	svc, m := createTestPassService(t)
	redeemed := &entity.Pass{PassID: testPassID, RestaurantID: testRestID, Status: entity.PassStatusActive, IsActive: true, Visits: 3, Points: 30}

	m.passRepo.EXPECT().
		ApplyRedemption(mock.Anything, testPassID, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, predicate entity.PassPredicate, delta entity.RedemptionDelta) (*entity.Pass, error) {
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "store calls must be bounded")
			assert.Equal(t, int64(1), delta.Visits)
			assert.Equal(t, int64(pointsPerHit), delta.Points)
			assert.True(t, predicate(&entity.Pass{RestaurantID: testRestID, Status: entity.PassStatusActive, IsActive: true}))
			assert.False(t, predicate(&entity.Pass{RestaurantID: otherRestID, Status: entity.PassStatusActive, IsActive: true}))

			return redeemed, nil
		})
	m.publisher.EXPECT().PublishPassEvent(mock.Anything, mock.MatchedBy(func(e *service.PassEvent) bool {
		return e.Type == service.PassEventRedeemed && e.Visits == 3
	})).Return(nil)

	// The caller has already gone away; the redemption still completes as a unit.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.Redeem(ctx, staff, testPassID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Visits)
}

func TestPassService_RedeemScan(t *testing.T) {
	svc, _ := createMemoryPassService(t)
	pass := issueForDiner(t, svc)
	payload, err := qrcode.NewQRCodeService(128, "M").PassQRPayload(pass.PassID)
	require.NoError(t, err)

	result, err := svc.RedeemScan(context.Background(), staff, payload)
	require.NoError(t, err)
	assert.Equal(t, pass.PassID, result.PassID)

	_, err = svc.RedeemScan(context.Background(), staff, "not a pass")
	assert.True(t, errors.Is(err, domainerrors.ErrPassInvalid))
}

func TestPassService_ChangeStatus_RevokedIsTerminal(t *testing.T) {
	svc, _ := createMemoryPassService(t)
	pass := issueForDiner(t, svc)
	ctx := context.Background()

	revoked, err := svc.ChangeStatus(ctx, staff, pass.PassID, entity.PassStatusRevoked)
	require.NoError(t, err)
	assert.Equal(t, entity.PassStatusRevoked, revoked.Status)
	assert.False(t, revoked.IsActive)

	for _, next := range []entity.PassStatus{entity.PassStatusActive, entity.PassStatusSuspended} {
		_, err = svc.ChangeStatus(ctx, staff, pass.PassID, next)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition), "revoked -> %s", next)
	}
}

func TestPassService_ChangeStatus_Reinstate(t *testing.T) {
	svc, _ := createMemoryPassService(t)
	pass := issueForDiner(t, svc)
	ctx := context.Background()

	_, err := svc.ChangeStatus(ctx, staff, pass.PassID, entity.PassStatusSuspended)
	require.NoError(t, err)
	reinstated, err := svc.ChangeStatus(ctx, staff, pass.PassID, entity.PassStatusActive)
	require.NoError(t, err)
	assert.True(t, reinstated.IsActive)

	_, err = svc.Redeem(ctx, staff, pass.PassID)
	assert.NoError(t, err)
}

func TestPassService_ChangeStatus_Authorization(t *testing.T) {
	svc, _ := createMemoryPassService(t)
	pass := issueForDiner(t, svc)
	ctx := context.Background()

	for _, principal := range []*entity.Principal{nil, diner, otherStaff} {
		_, err := svc.ChangeStatus(ctx, principal, pass.PassID, entity.PassStatusRevoked)
		assert.True(t, errors.Is(err, domainerrors.ErrPassNotFound))
	}

	_, err := svc.ChangeStatus(ctx, staff, pass.PassID, entity.PassStatus("archived"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPassService_Get_Visibility(t *testing.T) {
	svc, _ := createMemoryPassService(t)
	pass := issueForDiner(t, svc)
	ctx := context.Background()

	got, err := svc.Get(ctx, diner, pass.PassID)
	require.NoError(t, err)
	assert.Equal(t, pass.PassID, got.PassID)

	got, err = svc.Get(ctx, staff, pass.PassID)
	require.NoError(t, err)
	assert.Equal(t, pass.PassID, got.PassID)

	for _, principal := range []*entity.Principal{nil, otherDiner, otherStaff} {
		_, err = svc.Get(ctx, principal, pass.PassID)
		assert.True(t, errors.Is(err, domainerrors.ErrPassNotFound))
	}

	_, err = svc.Get(ctx, diner, testPassID)
	assert.True(t, errors.Is(err, domainerrors.ErrPassNotFound))
}

func TestPassService_ListMine(t *testing.T) {
	svc, _ := createMemoryPassService(t)
	first := issueForDiner(t, svc)
	second := issueForDiner(t, svc)
	ctx := context.Background()

	passes, err := svc.ListMine(ctx, diner)
	require.NoError(t, err)
	require.Len(t, passes, 2)
	assert.Equal(t, first.PassID, passes[0].PassID)
	assert.Equal(t, second.PassID, passes[1].PassID)

	passes, err = svc.ListMine(ctx, otherDiner)
	require.NoError(t, err)
	assert.Empty(t, passes)

	_, err = svc.ListMine(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPassService_UpdateCounters_ReadAfterWrite(t *testing.T) {
	svc, _ := createMemoryPassService(t)
	pass := issueForDiner(t, svc)
	ctx := context.Background()

	points, visits := int64(120), int64(7)
	updated, err := svc.UpdateCounters(ctx, staff, pass.PassID, entity.CounterUpdate{Points: &points, Visits: &visits})
	require.NoError(t, err)
	assert.Equal(t, points, updated.Points)

	got, err := svc.Get(ctx, diner, pass.PassID)
	require.NoError(t, err)
	assert.Equal(t, points, got.Points)
	assert.Equal(t, visits, got.Visits)

	onlyPoints := int64(5)
	_, err = svc.UpdateCounters(ctx, diner, pass.PassID, entity.CounterUpdate{Points: &onlyPoints})
	require.NoError(t, err)

	got, err = svc.Get(ctx, diner, pass.PassID)
	require.NoError(t, err)
	assert.Equal(t, onlyPoints, got.Points)
	assert.Equal(t, visits, got.Visits, "absent counters are left unchanged")
}

func TestPassService_UpdateCounters_Rejections(t *testing.T) {
	svc, _ := createMemoryPassService(t)
	pass := issueForDiner(t, svc)
	ctx := context.Background()
	negative := int64(-1)
	valid := int64(1)

	_, err := svc.UpdateCounters(ctx, staff, pass.PassID, entity.CounterUpdate{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = svc.UpdateCounters(ctx, staff, pass.PassID, entity.CounterUpdate{Visits: &negative})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCounters))

	_, err = svc.UpdateCounters(ctx, otherStaff, pass.PassID, entity.CounterUpdate{Visits: &valid})
	assert.True(t, errors.Is(err, domainerrors.ErrPassNotFound))
}

func TestPassService_Wallet(t *testing.T) {
	svc, _ := createMemoryPassService(t)
	pass := issueForDiner(t, svc)
	ctx := context.Background()

	artifact, err := svc.Wallet(ctx, pass.PassID, usecase.WalletPlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, []byte(pass.PassID), artifact.Data)

	_, err = svc.Wallet(ctx, pass.PassID, "android")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = svc.Wallet(ctx, testPassID, "")
	assert.True(t, errors.Is(err, domainerrors.ErrPassNotFound))
}

func TestPassService_QRCode(t *testing.T) {
	svc, _ := createMemoryPassService(t)
	pass := issueForDiner(t, svc)

	png, err := svc.QRCode(context.Background(), diner, pass.PassID)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	_, err = svc.QRCode(context.Background(), otherDiner, pass.PassID)
	assert.True(t, errors.Is(err, domainerrors.ErrPassNotFound))
}
