package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"chatdeck.app/backend/internal/http/handler"
	"chatdeck.app/backend/internal/model"
	"chatdeck.app/backend/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockAuthService{}
		h := handler.NewAuthHandler(svc)

		router.POST("/auth/signup", h.Signup)
		router.POST("/auth/send-otp", h.SendOTP)
		router.POST("/auth/verify-otp", h.VerifyOTP)

		authed := router.Group("/auth")
		authed.Use(setUser(&model.User{ID: 7, MobileNumber: "1234567890"}))
		authed.POST("/change-password", h.ChangePassword)
	})

	Describe("Signup", func() {
		It("returns 201 with the created user", func() {
			svc.signupFn = func(_ context.Context, params service.SignupParams) (*model.User, error) {
				return &model.User{ID: 7, MobileNumber: params.MobileNumber}, nil
			}

			body, _ := json.Marshal(map[string]string{
				"mobile_number": "1234567890",
				"password":      "hunter2hunter2",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["mobile_number"]).To(Equal("1234567890"))
		})

		It("returns 409 when the mobile number is taken", func() {
			svc.signupFn = func(_ context.Context, _ service.SignupParams) (*model.User, error) {
				return nil, &pgconn.PgError{Code: "23505"}
			}

			body, _ := json.Marshal(map[string]string{
				"mobile_number": "1234567890",
				"password":      "hunter2hunter2",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 400 when the password is too short", func() {
			body, _ := json.Marshal(map[string]string{
				"mobile_number": "1234567890",
				"password":      "short",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("SendOTP", func() {
		It("returns the code in the response body", func() {
			svc.sendOTPFn = func(_ context.Context, mobileNumber string) (string, error) {
				Expect(mobileNumber).To(Equal("1234567890"))
				return "123456", nil
			}

			body, _ := json.Marshal(map[string]string{"mobile_number": "1234567890"})
			req := httptest.NewRequest(http.MethodPost, "/auth/send-otp", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["otp"]).To(Equal("123456"))
		})

		It("returns 404 for an unknown mobile number", func() {
			svc.sendOTPFn = func(_ context.Context, _ string) (string, error) {
				return "", service.ErrUserNotFound
			}

			body, _ := json.Marshal(map[string]string{"mobile_number": "1234567890"})
			req := httptest.NewRequest(http.MethodPost, "/auth/send-otp", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("VerifyOTP", func() {
		It("returns the token and user", func() {
			svc.verifyOTPFn = func(_ context.Context, _, otp string) (string, *model.User, error) {
				Expect(otp).To(Equal("123456"))
				return "signed-token", &model.User{ID: 7, MobileNumber: "1234567890", Confirmed: true}, nil
			}

			body, _ := json.Marshal(map[string]string{
				"mobile_number": "1234567890",
				"otp":           "123456",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/verify-otp", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp struct {
				Token string         `json:"token"`
				User  map[string]any `json:"user"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Token).To(Equal("signed-token"))
			Expect(resp.User["confirmed"]).To(BeTrue())
		})

		It("returns 400 for a wrong code", func() {
			svc.verifyOTPFn = func(_ context.Context, _, _ string) (string, *model.User, error) {
				return "", nil, service.ErrInvalidOTP
			}

			body, _ := json.Marshal(map[string]string{
				"mobile_number": "1234567890",
				"otp":           "000000",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/verify-otp", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ChangePassword", func() {
		It("returns 400 when the old password does not match", func() {
			svc.changePasswordFn = func(_ context.Context, userID int64, _, _ string) error {
				Expect(userID).To(Equal(int64(7)))
				return service.ErrInvalidCredentials
			}

			body, _ := json.Marshal(map[string]string{
				"old_password": "wrong",
				"new_password": "hunter2hunter2",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 200 on success", func() {
			changed := false
			svc.changePasswordFn = func(_ context.Context, _ int64, oldPassword, newPassword string) error {
				Expect(oldPassword).To(Equal("hunter2hunter2"))
				Expect(newPassword).To(Equal("correcthorsebattery"))
				changed = true
				return nil
			}

			body, _ := json.Marshal(map[string]string{
				"old_password": "hunter2hunter2",
				"new_password": "correcthorsebattery",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/change-password", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(changed).To(BeTrue())
		})
	})

	It("returns 500 when signup fails for other reasons", func() {
		svc.signupFn = func(_ context.Context, _ service.SignupParams) (*model.User, error) {
			return nil, errors.New("db down")
		}

		body, _ := json.Marshal(map[string]string{
			"mobile_number": "1234567890",
			"password":      "hunter2hunter2",
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
