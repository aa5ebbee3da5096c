package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"gamehub/internal/domain/entity"
	mockRepo "gamehub/internal/mocks/repository"
	mockSvc "gamehub/internal/mocks/service"
	mockUC "gamehub/internal/mocks/usecase"
	"gamehub/internal/usecase"

	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// purchaseMocks bundles the purchase orchestrator's dependencies so each test
// only wires the expectations it cares about.
type purchaseMocks struct {
	userRepo   *mockRepo.MockUserRepository
	gameRepo   *mockRepo.MockGameRepository
	txnRepo    *mockRepo.MockTransactionRepository
	discountUC *mockUC.MockDiscountUsecase
	txManager  *mockRepo.MockTransactionManager
	codeGen    *mockSvc.MockActivationCodeGenerator
	clock      *mockSvc.MockClock
	publisher  *mockSvc.MockEventPublisher
}

func newPurchaseService(t *testing.T) (usecase.PurchaseUsecase, *purchaseMocks) {
	t.Helper()

	mocks := &purchaseMocks{
		userRepo:   mockRepo.NewMockUserRepository(t),
		gameRepo:   mockRepo.NewMockGameRepository(t),
		txnRepo:    mockRepo.NewMockTransactionRepository(t),
		discountUC: mockUC.NewMockDiscountUsecase(t),
		txManager:  mockRepo.NewMockTransactionManager(t),
		codeGen:    mockSvc.NewMockActivationCodeGenerator(t),
		clock:      mockSvc.NewMockClock(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}

	svc := NewPurchaseService(PurchaseServiceParams{
		UserRepo:   mocks.userRepo,
		GameRepo:   mocks.gameRepo,
		TxnRepo:    mocks.txnRepo,
		DiscountUC: mocks.discountUC,
		TxManager:  mocks.txManager,
		CodeGen:    mocks.codeGen,
		Clock:      mocks.clock,
		Publisher:  mocks.publisher,
		Logger:     newDiscardLogger(),
	})

	return svc, mocks
}

func testUser(id int64) *entity.User {
	return &entity.User{ID: id, FullName: "Ada Lovelace", Email: "ada@example.com", IsActive: true}
}

func testGame(id int64, price string) *entity.Game {
	return &entity.Game{ID: id, Title: "Hollow Knight", Price: decimal.RequireFromString(price), IsAvailable: true}
}

func testDiscount(id int64, code string, percent string, gameIDs ...int64) *entity.Discount {
	return &entity.Discount{
		ID:      id,
		Name:    code,
		Percent: decimal.RequireFromString(percent),
		GameIDs: gameIDs,
	}
}

func fixedTime() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}
