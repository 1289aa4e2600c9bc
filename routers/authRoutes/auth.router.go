package authRoutes

import (
	authControllers "coursehub/controllers/auth"
	"coursehub/middleware"
	authValidators "coursehub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/send/otp", authValidators.SendOTP(), authControllers.SendOTP)
	authGroup.Patch("/verify/otp", authValidators.VerifyOTP(), authControllers.VerifyOTP)
	authGroup.Post("/forgot/password/send/otp", authValidators.SendOTP(), authControllers.ForgotPasswordSendOTP)
	authGroup.Patch("/forgot/password/verify/otp", authValidators.VerifyOTP(), authControllers.ForgotPasswordVerifyOTP)
	authGroup.Patch("/reset/password", authValidators.ResetPassword(), middleware.PasswordResetMiddleware, authControllers.ResetPassword)
}
