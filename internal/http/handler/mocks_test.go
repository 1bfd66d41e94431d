package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"chatdeck.app/backend/internal/model"
	"chatdeck.app/backend/internal/payment"
	"chatdeck.app/backend/internal/service"
)

// setUser installs the authenticated user the way the auth middleware
// does, so handlers behind it can be exercised without minting tokens.
func setUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("currentUser", user)
		c.Next()
	}
}

type mockAuthService struct {
	signupFn         func(ctx context.Context, params service.SignupParams) (*model.User, error)
	sendOTPFn        func(ctx context.Context, mobileNumber string) (string, error)
	verifyOTPFn      func(ctx context.Context, mobileNumber, otp string) (string, *model.User, error)
	resetPasswordFn  func(ctx context.Context, mobileNumber, otp, newPassword string) error
	changePasswordFn func(ctx context.Context, userID int64, oldPassword, newPassword string) error
}

func (m *mockAuthService) Signup(ctx context.Context, params service.SignupParams) (*model.User, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, params)
	}
	return nil, nil
}

func (m *mockAuthService) SendOTP(ctx context.Context, mobileNumber string) (string, error) {
	if m.sendOTPFn != nil {
		return m.sendOTPFn(ctx, mobileNumber)
	}
	return "", nil
}

func (m *mockAuthService) VerifyOTP(ctx context.Context, mobileNumber, otp string) (string, *model.User, error) {
	if m.verifyOTPFn != nil {
		return m.verifyOTPFn(ctx, mobileNumber, otp)
	}
	return "", nil, nil
}

func (m *mockAuthService) ResetPassword(ctx context.Context, mobileNumber, otp, newPassword string) error {
	if m.resetPasswordFn != nil {
		return m.resetPasswordFn(ctx, mobileNumber, otp, newPassword)
	}
	return nil
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, userID, oldPassword, newPassword)
	}
	return nil
}

type mockUserService struct {
	getByIDFn func(ctx context.Context, id int64) (*model.User, error)
}

func (m *mockUserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

type mockChatroomService struct {
	createFn          func(ctx context.Context, ownerID int64, name *string) (*model.Chatroom, error)
	listFn            func(ctx context.Context, ownerID int64) ([]model.Chatroom, error)
	getFn             func(ctx context.Context, userID, chatroomID int64) (*model.Chatroom, error)
	getWithMessagesFn func(ctx context.Context, userID, chatroomID int64) (*model.Chatroom, []model.Message, error)
}

func (m *mockChatroomService) Create(ctx context.Context, ownerID int64, name *string) (*model.Chatroom, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, name)
	}
	return nil, nil
}

func (m *mockChatroomService) List(ctx context.Context, ownerID int64) ([]model.Chatroom, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockChatroomService) Get(ctx context.Context, userID, chatroomID int64) (*model.Chatroom, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, chatroomID)
	}
	return nil, nil
}

func (m *mockChatroomService) GetWithMessages(ctx context.Context, userID, chatroomID int64) (*model.Chatroom, []model.Message, error) {
	if m.getWithMessagesFn != nil {
		return m.getWithMessagesFn(ctx, userID, chatroomID)
	}
	return nil, nil, nil
}

type mockMessageService struct {
	sendFn          func(ctx context.Context, params service.SendMessageParams) (*model.Message, error)
	applyResponseFn func(ctx context.Context, messageID int64, response string) error
	getFn           func(ctx context.Context, userID, messageID int64) (*model.Message, error)
}

func (m *mockMessageService) Send(ctx context.Context, params service.SendMessageParams) (*model.Message, error) {
	if m.sendFn != nil {
		return m.sendFn(ctx, params)
	}
	return nil, nil
}

func (m *mockMessageService) ApplyResponse(ctx context.Context, messageID int64, response string) error {
	if m.applyResponseFn != nil {
		return m.applyResponseFn(ctx, messageID, response)
	}
	return nil
}

func (m *mockMessageService) Get(ctx context.Context, userID, messageID int64) (*model.Message, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, messageID)
	}
	return nil, nil
}

type mockSubscriptionService struct {
	subscribeProFn            func(ctx context.Context, userID int64) (*service.SubscribeResult, error)
	statusFn                  func(ctx context.Context, userID int64) (*model.UserPlan, error)
	handleCheckoutCompletedFn func(ctx context.Context, sessionID string) error
}

func (m *mockSubscriptionService) SubscribePro(ctx context.Context, userID int64) (*service.SubscribeResult, error) {
	if m.subscribeProFn != nil {
		return m.subscribeProFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionService) Status(ctx context.Context, userID int64) (*model.UserPlan, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionService) HandleCheckoutCompleted(ctx context.Context, sessionID string) error {
	if m.handleCheckoutCompletedFn != nil {
		return m.handleCheckoutCompletedFn(ctx, sessionID)
	}
	return nil
}

type mockProvider struct {
	ensureCustomerFn        func(ctx context.Context, userID int64, mobileNumber string, existingID *string) (string, error)
	createCheckoutSessionFn func(ctx context.Context, customerID string) (*payment.CheckoutSession, error)
	verifyWebhookFn         func(payload []byte, header http.Header) (*payment.WebhookEvent, error)
}

func (m *mockProvider) EnsureCustomer(ctx context.Context, userID int64, mobileNumber string, existingID *string) (string, error) {
	if m.ensureCustomerFn != nil {
		return m.ensureCustomerFn(ctx, userID, mobileNumber, existingID)
	}
	return "cus_test", nil
}

func (m *mockProvider) CreateCheckoutSession(ctx context.Context, customerID string) (*payment.CheckoutSession, error) {
	if m.createCheckoutSessionFn != nil {
		return m.createCheckoutSessionFn(ctx, customerID)
	}
	return &payment.CheckoutSession{ID: "cs_test", URL: "https://checkout.test/cs_test"}, nil
}

func (m *mockProvider) VerifyWebhook(payload []byte, header http.Header) (*payment.WebhookEvent, error) {
	if m.verifyWebhookFn != nil {
		return m.verifyWebhookFn(payload, header)
	}
	return nil, nil
}
