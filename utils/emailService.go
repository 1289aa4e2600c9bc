package utils

import (
	"coursehub/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email. When a SendGrid API key is configured the
// message goes through the SendGrid API; otherwise it falls back to SMTP.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridAPIKey != "" {
		return sendViaSendGrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendGrid(to []string, subject string, htmlBody string) error {
	from := mail.NewEmail("CourseHub", config.AppConfig.EmailSender)

	for _, recipient := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", recipient), "", htmlBody)
		client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)

		resp, err := client.Send(message)
		if err != nil {
			log.Printf("Error sending email via SendGrid: %v", err)
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("SendGrid rejected email to %s: %d %s", recipient, resp.StatusCode, resp.Body)
			return fmt.Errorf("sendgrid rejected email, code: %d", resp.StatusCode)
		}
	}
	return nil
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CourseHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all triggers
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #43A047; margin: 20px 0; }
			.otp-code { text-align: center; color: #43A047; font-size: 40px; margin: 20px 0; letter-spacing: 6px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>COURSEHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 CourseHub. All rights reserved.<br>
				Reviews reflect community opinions, not investment advice.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendOTPEmail delivers the signup verification code. Sent synchronously: the
// whole point of the signup response is that this email arrives.
func SendOTPEmail(email, otp string) error {
	subject := "Your CourseHub Verification Code"
	body := fmt.Sprintf(`
		<p>Your one time verification code is:</p>
		<h1 class="otp-code">%s</h1>
		<p>The code is valid for 10 minutes. Do not share it with anyone.</p>
	`, otp)

	return SendEmail([]string{email}, subject, getEmailTemplate("Verify Your Email", body))
}

// SendPasswordResetEmail delivers the password reset code
func SendPasswordResetEmail(email, otp string) error {
	subject := "CourseHub Password Reset Code"
	body := fmt.Sprintf(`
		<p>We received a request to reset your password. Your reset code is:</p>
		<h1 class="otp-code">%s</h1>
		<p>The code is valid for 10 minutes. If you did not request this, you can safely ignore this email.</p>
	`, otp)

	return SendEmail([]string{email}, subject, getEmailTemplate("Reset Your Password", body))
}

// SendWelcomeEmail is fired once the account is verified
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to CourseHub"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>CourseHub</strong>! Your account is verified.</p>
		<p>You can now browse community-reviewed courses, rate the ones you took and help other students invest wisely.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendCourseApprovedEmail notifies the submitter their course went live
func SendCourseApprovedEmail(email, name, courseName string) {
	subject := "Course Approved: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Great news! Your course submission <strong>%s</strong> has been APPROVED.</p>
		<p>It is now listed publicly and open for community reviews.</p>
	`, name, courseName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Course Approved", body))
}

// SendCourseRejectedEmail notifies the submitter with the moderator's note
func SendCourseRejectedEmail(email, name, courseName, reason string) {
	if reason == "" {
		reason = "Not specified"
	}
	subject := "Course Rejected: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately, your course submission <strong>%s</strong> was rejected.</p>
		<div style="color: #dc3545; font-weight: bold;">Reason: %s</div>
		<p>Please make the necessary changes and submit again.</p>
	`, name, courseName, reason)

	go SendEmail([]string{email}, subject, getEmailTemplate("Course Rejected", body))
}

// SendReviewApprovedEmail notifies a reviewer their review is public
func SendReviewApprovedEmail(email, name, courseName string) {
	subject := "Your Review is Live: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your review of <strong>%s</strong> has been approved and now counts toward the course's public rating.</p>
		<p>Thank you for helping the community!</p>
	`, name, courseName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Review Approved", body))
}

// SendReviewRejectedEmail notifies a reviewer with the moderator's note
func SendReviewRejectedEmail(email, name, courseName, reason string) {
	if reason == "" {
		reason = "Not specified"
	}
	subject := "Review Not Published: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your review of <strong>%s</strong> was not published.</p>
		<div style="color: #dc3545; font-weight: bold;">Reason: %s</div>
		<p>You are welcome to edit and resubmit a review that follows the community guidelines.</p>
	`, name, courseName, reason)

	go SendEmail([]string{email}, subject, getEmailTemplate("Review Rejected", body))
}

// SendAccountStatusEmail notifies a user their account status changed
func SendAccountStatusEmail(email, name, status, note string) {
	subject := "Your CourseHub Account Status Changed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account status is now: <strong>%s</strong>.</p>
	`, name, status)
	if note != "" {
		body += fmt.Sprintf(`<div class="info-box">%s</div>`, note)
	}
	body += `<p>If you believe this is a mistake, please contact support.</p>`

	go SendEmail([]string{email}, subject, getEmailTemplate("Account Status Update", body))
}

// SendAdminDigestEmail delivers the daily pending-queue summary to an admin
func SendAdminDigestEmail(email, name string, pendingCourses, pendingReviews int64) {
	subject := "CourseHub Moderation Digest"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Here is today's moderation queue:</p>
		<div class="info-box">
			<strong>%d</strong> course submissions pending<br>
			<strong>%d</strong> reviews pending
		</div>
		<p>Login to the admin panel to process them.</p>
	`, name, pendingCourses, pendingReviews)

	go SendEmail([]string{email}, subject, getEmailTemplate("Pending Moderation Queue", body))
}
