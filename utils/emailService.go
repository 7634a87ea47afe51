package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"learnhub/config"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LearnHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML shell
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">%s</h2>
					%s
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Thank you for learning with LearnHub.</p>
				</div>
			</body>
		</html>
	`, title, bodyContent)
}

// SendOTPEmail sends a verification OTP
func SendOTPEmail(otp, email string) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555; text-align: center;">Your One Time Password (OTP) is:</p>
		<h1 style="text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0;">%s</h1>
		<p style="font-size: 14px; color: #999999; text-align: center;">Do not share this OTP with anyone.</p>
	`, otp)
	return SendEmail([]string{email}, "OTP Verification Code for LearnHub", getEmailTemplate("LearnHub OTP Verification", body))
}

// SendWelcomeEmail greets a new user
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Hi %s,</p>
		<p style="font-size: 14px; color: #555555;">Welcome to LearnHub! Browse the catalog and start your first course today.</p>
	`, name)
	SendEmail([]string{email}, "Welcome to LearnHub", getEmailTemplate("Welcome to LearnHub", body))
}

// SendEnrollmentEmail confirms a course enrollment
func SendEnrollmentEmail(email, name, courseName string) {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Hi %s,</p>
		<p style="font-size: 14px; color: #555555;">You are now enrolled in <b>%s</b>. Happy learning!</p>
	`, name, courseName)
	SendEmail([]string{email}, "Course Enrollment Confirmation - LearnHub", getEmailTemplate("Enrollment Confirmed", body))
}

// SendPaymentReceiptEmail confirms a completed payment
func SendPaymentReceiptEmail(email, name string, amount float64, transactionID string) {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Hi %s,</p>
		<p style="font-size: 14px; color: #555555;">We received your payment of <b>₹%.2f</b>.</p>
		<p style="font-size: 13px; color: #999999;">Transaction reference: %s</p>
	`, name, amount, transactionID)
	SendEmail([]string{email}, "Payment Receipt - LearnHub", getEmailTemplate("Payment Received", body))
}

// SendSubscriptionEmail confirms subscription activation
func SendSubscriptionEmail(email, name, planType string, endDate time.Time) {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Hi %s,</p>
		<p style="font-size: 14px; color: #555555;">Your <b>%s</b> subscription is active until <b>%s</b>.</p>
	`, name, planType, endDate.Format("02 Jan 2006"))
	SendEmail([]string{email}, "Subscription Activated - LearnHub", getEmailTemplate("Subscription Activated", body))
}

// SendSubscriptionExpiryReminder warns about an upcoming expiry
func SendSubscriptionExpiryReminder(email, name, planType string, endDate time.Time) {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Hi %s,</p>
		<p style="font-size: 14px; color: #555555;">Your <b>%s</b> subscription expires on <b>%s</b>. Renew to keep learning without interruption.</p>
	`, name, planType, endDate.Format("02 Jan 2006"))
	SendEmail([]string{email}, "Subscription Expiring Soon - LearnHub", getEmailTemplate("Subscription Expiring Soon", body))
}

// SendCertificateEmail delivers the certificate verification link
func SendCertificateEmail(email, name, courseName, verificationURL string) {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Hi %s,</p>
		<p style="font-size: 14px; color: #555555;">Congratulations on completing <b>%s</b>!</p>
		<p style="font-size: 14px; color: #555555;">Your certificate can be verified at: <a href="%s">%s</a></p>
	`, name, courseName, verificationURL, verificationURL)
	SendEmail([]string{email}, "Your Course Certificate - LearnHub", getEmailTemplate("Certificate Issued", body))
}
