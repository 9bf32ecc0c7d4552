package email

import (
	"fmt"
	"os"
)

// resetPasswordHTML builds the reset mail body. The link points at the
// frontend route which in turn calls GET/POST /users/reset-password/:token.
func resetPasswordHTML(name, token string) string {
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	link := fmt.Sprintf("%s/reset-password/%s", frontendURL, token)

	return fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>We received a request to reset your ClassPulse password.</p>
		<p><a href="%s">Set a new password</a></p>
		<p>The link is valid for 15 minutes. If you did not request this, you can ignore this email.</p>
	`, name, link)
}

// SendResetPassword delivers the reset mail immediately. The Asynq handler
// and the no-Redis fallback both end up here.
func SendResetPassword(to, name, token string) error {
	sender, err := NewSMTPSenderFromEnv()
	if err != nil {
		return err
	}
	return sender.Send(to, "Reset your ClassPulse password", resetPasswordHTML(name, token))
}
