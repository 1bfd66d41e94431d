package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"chatdeck.app/backend/common/id"
	"chatdeck.app/backend/internal/model"
	"chatdeck.app/backend/internal/queue"
	"chatdeck.app/backend/internal/service"
	"chatdeck.app/backend/internal/store"
)

var _ = Describe("MessageService", func() {
	var (
		svc       service.MessageService
		chatrooms *mockChatroomStore
		messages  *mockMessageStore
		txRunner  *mockTxRunner
		producer  *mockProducer
		ctx       context.Context
	)

	const (
		ownerID    = int64(100)
		chatroomID = int64(200)
	)

	BeforeEach(func() {
		ctx = context.Background()
		chatrooms = &mockChatroomStore{}
		messages = &mockMessageStore{}
		producer = &mockProducer{}
		txRunner = &mockTxRunner{chatrooms: chatrooms, messages: messages}

		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())

		chatrooms.getByIDFn = func(_ context.Context, cid int64) (*model.Chatroom, error) {
			if cid == chatroomID {
				return &model.Chatroom{ID: chatroomID, OwnerID: ownerID}, nil
			}
			return nil, store.ErrNotFound
		}

		svc = service.NewMessageService(chatrooms, messages, txRunner, producer, nil)
	})

	Describe("Send", func() {
		Context("when the chatroom exists and the sender owns it", func() {
			It("should store a pending message and enqueue exactly one task", func() {
				var created *model.Message
				messages.createFn = func(_ context.Context, m *model.Message) error {
					created = m
					m.Status = model.MessageStatusPending
					return nil
				}

				msg, err := svc.Send(ctx, service.SendMessageParams{
					ChatroomID: chatroomID,
					SenderID:   ownerID,
					Text:       "hello there",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(msg).NotTo(BeNil())
				Expect(msg.ID).NotTo(BeZero())
				Expect(msg.Status).To(Equal(model.MessageStatusPending))

				Expect(created).NotTo(BeNil())
				Expect(producer.enqueueCalls).To(Equal(1))
				Expect(producer.enqueued).To(HaveLen(1))
				Expect(producer.enqueued[0].MessageID).To(Equal(msg.ID))
				Expect(producer.enqueued[0].Text).To(Equal("hello there"))
				Expect(producer.enqueued[0].Attempt).To(Equal(1))
			})
		})

		Context("when the chatroom does not exist", func() {
			It("should return ErrChatroomNotFound and enqueue nothing", func() {
				_, err := svc.Send(ctx, service.SendMessageParams{
					ChatroomID: 999,
					SenderID:   ownerID,
					Text:       "hello",
				})

				Expect(err).To(MatchError(service.ErrChatroomNotFound))
				Expect(producer.enqueueCalls).To(BeZero())
				Expect(messages.createCalls).To(BeZero())
			})
		})

		Context("when the sender does not own the chatroom", func() {
			It("should return ErrForbidden and enqueue nothing", func() {
				_, err := svc.Send(ctx, service.SendMessageParams{
					ChatroomID: chatroomID,
					SenderID:   ownerID + 1,
					Text:       "hello",
				})

				Expect(err).To(MatchError(service.ErrForbidden))
				Expect(producer.enqueueCalls).To(BeZero())
			})
		})

		Context("when the text is empty", func() {
			It("should reject the message", func() {
				_, err := svc.Send(ctx, service.SendMessageParams{
					ChatroomID: chatroomID,
					SenderID:   ownerID,
				})

				Expect(err).To(HaveOccurred())
				Expect(producer.enqueueCalls).To(BeZero())
			})
		})

		Context("when the insert fails", func() {
			It("should not enqueue a task", func() {
				messages.createFn = func(_ context.Context, _ *model.Message) error {
					return errors.New("insert failed")
				}

				_, err := svc.Send(ctx, service.SendMessageParams{
					ChatroomID: chatroomID,
					SenderID:   ownerID,
					Text:       "hello",
				})

				Expect(err).To(HaveOccurred())
				Expect(producer.enqueueCalls).To(BeZero())
			})
		})

		Context("when the enqueue fails after commit", func() {
			It("should surface the error", func() {
				producer.enqueueFn = func(_ context.Context, _ queue.ReplyMessage) error {
					return errors.New("redis down")
				}

				_, err := svc.Send(ctx, service.SendMessageParams{
					ChatroomID: chatroomID,
					SenderID:   ownerID,
					Text:       "hello",
				})

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("redis down"))
				Expect(messages.createCalls).To(Equal(1))
			})
		})
	})

	Describe("ApplyResponse", func() {
		Context("when the message is pending", func() {
			It("should apply the response", func() {
				var gotResponse string
				messages.applyResponseFn = func(_ context.Context, mid int64, response string) (bool, error) {
					gotResponse = response
					return true, nil
				}

				err := svc.ApplyResponse(ctx, 42, "generated reply")

				Expect(err).NotTo(HaveOccurred())
				Expect(gotResponse).To(Equal("generated reply"))
			})
		})

		Context("when the message was already processed", func() {
			It("should return ErrAlreadyProcessed", func() {
				messages.applyResponseFn = func(_ context.Context, _ int64, _ string) (bool, error) {
					return false, nil
				}
				messages.getByIDFn = func(_ context.Context, mid int64) (*model.Message, error) {
					resp := "first reply"
					return &model.Message{ID: mid, Status: model.MessageStatusProcessed, Response: &resp}, nil
				}

				err := svc.ApplyResponse(ctx, 42, "second reply")

				Expect(err).To(MatchError(service.ErrAlreadyProcessed))
			})
		})

		Context("when the message does not exist", func() {
			It("should return ErrMessageNotFound", func() {
				messages.applyResponseFn = func(_ context.Context, _ int64, _ string) (bool, error) {
					return false, nil
				}

				err := svc.ApplyResponse(ctx, 42, "reply")

				Expect(err).To(MatchError(service.ErrMessageNotFound))
			})
		})
	})

	Describe("Get", func() {
		BeforeEach(func() {
			messages.getByIDFn = func(_ context.Context, mid int64) (*model.Message, error) {
				if mid != 42 {
					return nil, store.ErrNotFound
				}
				return &model.Message{ID: 42, ChatroomID: chatroomID, SenderID: ownerID, Text: "hi"}, nil
			}
		})

		It("should return the message to the chatroom owner", func() {
			message, err := svc.Get(ctx, ownerID, 42)

			Expect(err).NotTo(HaveOccurred())
			Expect(message.ID).To(Equal(int64(42)))
		})

		It("should refuse users who do not own the chatroom", func() {
			_, err := svc.Get(ctx, ownerID+1, 42)

			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("should return ErrMessageNotFound for a missing message", func() {
			_, err := svc.Get(ctx, ownerID, 43)

			Expect(err).To(MatchError(service.ErrMessageNotFound))
		})
	})

	Describe("concurrent response writes", func() {
		Context("when two applies race", func() {
			It("should let exactly one win", func() {
				applied := false
				response := ""
				messages.applyResponseFn = func(_ context.Context, _ int64, r string) (bool, error) {
					if applied {
						return false, nil
					}
					applied = true
					response = r
					return true, nil
				}
				messages.getByIDFn = func(_ context.Context, mid int64) (*model.Message, error) {
					return &model.Message{ID: mid, Status: model.MessageStatusProcessed, Response: &response}, nil
				}

				first := svc.ApplyResponse(ctx, 42, "winner")
				second := svc.ApplyResponse(ctx, 42, "loser")

				Expect(first).NotTo(HaveOccurred())
				Expect(second).To(MatchError(service.ErrAlreadyProcessed))
				Expect(response).To(Equal("winner"))
			})
		})
	})
})
