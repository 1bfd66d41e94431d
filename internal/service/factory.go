package service

import (
	"log/slog"

	"chatdeck.app/backend/core/config"
	"chatdeck.app/backend/internal/payment"
	"chatdeck.app/backend/internal/queue"
	"chatdeck.app/backend/internal/store"
	"github.com/redis/go-redis/v9"
)

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	producer queue.Producer
	redis    *redis.Client
	provider payment.Provider
	authCfg  config.AuthConfig
	logger   *slog.Logger
}

func NewServices(stores *store.Stores, txRunner TxRunner, producer queue.Producer, redisClient *redis.Client, provider payment.Provider, authCfg config.AuthConfig, logger *slog.Logger) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		producer: producer,
		redis:    redisClient,
		provider: provider,
		authCfg:  authCfg,
		logger:   logger,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Passwords(), store.NewOTPStore(s.redis), s.txRunner, s.authCfg, s.logger)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users())
}

func (s *Services) Chatrooms() ChatroomService {
	return NewChatroomService(s.stores.Chatrooms(), s.stores.Messages())
}

func (s *Services) Messages() MessageService {
	return NewMessageService(s.stores.Chatrooms(), s.stores.Messages(), s.txRunner, s.producer, s.logger)
}

func (s *Services) Subscriptions() SubscriptionService {
	return NewSubscriptionService(s.stores.Users(), s.stores.Plans(), s.stores.Transactions(), s.txRunner, s.provider, s.logger)
}
