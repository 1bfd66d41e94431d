package store

import (
	"chatdeck.app/backend/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Passwords() PasswordStore {
	return newPasswordStore(s.queries)
}

func (s *Stores) Chatrooms() ChatroomStore {
	return newChatroomStore(s.queries)
}

func (s *Stores) Messages() MessageStore {
	return newMessageStore(s.queries)
}

func (s *Stores) Plans() PlanStore {
	return newPlanStore(s.queries)
}

func (s *Stores) Transactions() TransactionStore {
	return newTransactionStore(s.queries)
}
