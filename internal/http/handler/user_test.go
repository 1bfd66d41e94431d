package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"chatdeck.app/backend/internal/http/handler"
	"chatdeck.app/backend/internal/model"
	"chatdeck.app/backend/internal/service"
)

var _ = Describe("UserHandler", func() {
	var (
		router *gin.Engine
		svc    *mockUserService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockUserService{}
		h := handler.NewUserHandler(svc)

		authed := router.Group("/user")
		authed.Use(setUser(&model.User{ID: 7, MobileNumber: "1234567890"}))
		authed.GET("/me", h.Me)
	})

	It("returns the current user's profile", func() {
		svc.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, MobileNumber: "1234567890", Confirmed: true}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["id"]).To(Equal("7"))
		Expect(resp["confirmed"]).To(BeTrue())
	})

	It("returns 404 when the user row is gone", func() {
		svc.getByIDFn = func(_ context.Context, _ int64) (*model.User, error) {
			return nil, service.ErrUserNotFound
		}

		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
