package service_test

import (
	"context"
	"net/http"
	"time"

	"chatdeck.app/backend/internal/model"
	"chatdeck.app/backend/internal/payment"
	"chatdeck.app/backend/internal/queue"
	"chatdeck.app/backend/internal/service"
	"chatdeck.app/backend/internal/store"
)

type mockUserStore struct {
	getByIDFn             func(ctx context.Context, id int64) (*model.User, error)
	getByMobileNumberFn   func(ctx context.Context, mobileNumber string) (*model.User, error)
	getByStripeCustomerFn func(ctx context.Context, customerID string) (*model.User, error)
	createFn              func(ctx context.Context, user *model.User) error
	confirmFn             func(ctx context.Context, id int64) (*model.User, error)
	setStripeCustomerFn   func(ctx context.Context, id int64, customerID string) error
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*model.User, error) {
	if m.getByMobileNumberFn != nil {
		return m.getByMobileNumberFn(ctx, mobileNumber)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) GetByStripeCustomerID(ctx context.Context, customerID string) (*model.User, error) {
	if m.getByStripeCustomerFn != nil {
		return m.getByStripeCustomerFn(ctx, customerID)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) Confirm(ctx context.Context, id int64) (*model.User, error) {
	if m.confirmFn != nil {
		return m.confirmFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) SetStripeCustomerID(ctx context.Context, id int64, customerID string) error {
	if m.setStripeCustomerFn != nil {
		return m.setStripeCustomerFn(ctx, id, customerID)
	}
	return nil
}

type mockPasswordStore struct {
	getFn func(ctx context.Context, userID int64) (string, error)
	setFn func(ctx context.Context, userID int64, passwordHash string) error
}

func (m *mockPasswordStore) Get(ctx context.Context, userID int64) (string, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return "", store.ErrNotFound
}

func (m *mockPasswordStore) Set(ctx context.Context, userID int64, passwordHash string) error {
	if m.setFn != nil {
		return m.setFn(ctx, userID, passwordHash)
	}
	return nil
}

type mockOTPStore struct {
	setFn    func(ctx context.Context, mobileNumber, otp string, ttl time.Duration) error
	getDelFn func(ctx context.Context, mobileNumber string) (string, error)
}

func (m *mockOTPStore) Set(ctx context.Context, mobileNumber, otp string, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, mobileNumber, otp, ttl)
	}
	return nil
}

func (m *mockOTPStore) GetDel(ctx context.Context, mobileNumber string) (string, error) {
	if m.getDelFn != nil {
		return m.getDelFn(ctx, mobileNumber)
	}
	return "", store.ErrNotFound
}

type mockChatroomStore struct {
	getByIDFn     func(ctx context.Context, id int64) (*model.Chatroom, error)
	createFn      func(ctx context.Context, chatroom *model.Chatroom) error
	listByOwnerFn func(ctx context.Context, ownerID int64) ([]model.Chatroom, error)
}

func (m *mockChatroomStore) GetByID(ctx context.Context, id int64) (*model.Chatroom, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockChatroomStore) Create(ctx context.Context, chatroom *model.Chatroom) error {
	if m.createFn != nil {
		return m.createFn(ctx, chatroom)
	}
	return nil
}

func (m *mockChatroomStore) ListByOwner(ctx context.Context, ownerID int64) ([]model.Chatroom, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

type mockMessageStore struct {
	getByIDFn        func(ctx context.Context, id int64) (*model.Message, error)
	createFn         func(ctx context.Context, message *model.Message) error
	listByChatroomFn func(ctx context.Context, chatroomID int64) ([]model.Message, error)
	applyResponseFn  func(ctx context.Context, id int64, response string) (bool, error)
	createCalls      int
}

func (m *mockMessageStore) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockMessageStore) Create(ctx context.Context, message *model.Message) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, message)
	}
	return nil
}

func (m *mockMessageStore) ListByChatroom(ctx context.Context, chatroomID int64) ([]model.Message, error) {
	if m.listByChatroomFn != nil {
		return m.listByChatroomFn(ctx, chatroomID)
	}
	return nil, nil
}

func (m *mockMessageStore) ApplyResponse(ctx context.Context, id int64, response string) (bool, error) {
	if m.applyResponseFn != nil {
		return m.applyResponseFn(ctx, id, response)
	}
	return false, nil
}

type mockPlanStore struct {
	getActiveFn     func(ctx context.Context, userID int64) (*model.UserPlan, error)
	createFn        func(ctx context.Context, plan *model.UserPlan) error
	deactivateAllFn func(ctx context.Context, userID int64) error
	createCalls     int
}

func (m *mockPlanStore) GetActive(ctx context.Context, userID int64) (*model.UserPlan, error) {
	if m.getActiveFn != nil {
		return m.getActiveFn(ctx, userID)
	}
	return nil, store.ErrNotFound
}

func (m *mockPlanStore) Create(ctx context.Context, plan *model.UserPlan) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, plan)
	}
	return nil
}

func (m *mockPlanStore) DeactivateAll(ctx context.Context, userID int64) error {
	if m.deactivateAllFn != nil {
		return m.deactivateAllFn(ctx, userID)
	}
	return nil
}

type mockTransactionStore struct {
	getByIDFn  func(ctx context.Context, id string) (*model.Transaction, error)
	createFn   func(ctx context.Context, txn *model.Transaction) error
	completeFn func(ctx context.Context, id string) (bool, error)
}

func (m *mockTransactionStore) GetByID(ctx context.Context, id string) (*model.Transaction, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockTransactionStore) Create(ctx context.Context, txn *model.Transaction) error {
	if m.createFn != nil {
		return m.createFn(ctx, txn)
	}
	return nil
}

func (m *mockTransactionStore) Complete(ctx context.Context, id string) (bool, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, id)
	}
	return false, nil
}

// mockTxRunner runs the function immediately against the provided mock
// stores. No transaction semantics, but the call shape matches.
type mockTxRunner struct {
	users        *mockUserStore
	passwords    *mockPasswordStore
	chatrooms    *mockChatroomStore
	messages     *mockMessageStore
	plans        *mockPlanStore
	transactions *mockTransactionStore
	err          error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(m)
}

func (m *mockTxRunner) Users() store.UserStore               { return m.users }
func (m *mockTxRunner) Passwords() store.PasswordStore       { return m.passwords }
func (m *mockTxRunner) Chatrooms() store.ChatroomStore       { return m.chatrooms }
func (m *mockTxRunner) Messages() store.MessageStore         { return m.messages }
func (m *mockTxRunner) Plans() store.PlanStore               { return m.plans }
func (m *mockTxRunner) Transactions() store.TransactionStore { return m.transactions }

type mockProducer struct {
	enqueueFn    func(ctx context.Context, msg queue.ReplyMessage) error
	enqueued     []queue.ReplyMessage
	enqueueCalls int
}

func (m *mockProducer) Enqueue(ctx context.Context, msg queue.ReplyMessage) error {
	m.enqueueCalls++
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, msg)
	}
	m.enqueued = append(m.enqueued, msg)
	return nil
}

func (m *mockProducer) Close() error { return nil }

type mockPaymentProvider struct {
	ensureCustomerFn func(ctx context.Context, userID int64, mobileNumber string, existingID *string) (string, error)
	createSessionFn  func(ctx context.Context, customerID string) (*payment.CheckoutSession, error)
	verifyWebhookFn  func(payload []byte, header http.Header) (*payment.WebhookEvent, error)
}

func (m *mockPaymentProvider) EnsureCustomer(ctx context.Context, userID int64, mobileNumber string, existingID *string) (string, error) {
	if m.ensureCustomerFn != nil {
		return m.ensureCustomerFn(ctx, userID, mobileNumber, existingID)
	}
	return "cus_test", nil
}

func (m *mockPaymentProvider) CreateCheckoutSession(ctx context.Context, customerID string) (*payment.CheckoutSession, error) {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, customerID)
	}
	return &payment.CheckoutSession{ID: "cs_test", URL: "https://checkout.test/cs_test", Amount: 999, Mode: "subscription"}, nil
}

func (m *mockPaymentProvider) VerifyWebhook(payload []byte, header http.Header) (*payment.WebhookEvent, error) {
	if m.verifyWebhookFn != nil {
		return m.verifyWebhookFn(payload, header)
	}
	return &payment.WebhookEvent{}, nil
}
