package service

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SignupLink builds the link a new user has to open to finish registration
func SignupLink(token string) string {
	scheme := "http"
	if viper.GetBool("host.ssl.enabled") {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/signup/%s", scheme, viper.GetString("host.domain"), token)
}

// SendSignupMail delivers the signup link over SMTP. Without a configured
// sender the link is only logged, which keeps local development free of a
// mail server.
func SendSignupMail(token, sendTo string) error {
	from := viper.GetString("mail.sender")
	link := SignupLink(token)

	if from == "" {
		zap.L().Info("Mail sender not configured, signup link logged instead",
			zap.String("email", sendTo),
			zap.String("link", link))
		return nil
	}

	if sendTo == from {
		return fmt.Errorf("refusing to mail the sender address itself")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", sendTo)
	m.SetHeader("Subject", "Finish creating your noted account")
	m.SetBody("text/html", fmt.Sprintf(
		"Click <a href='%s'>here</a> to finish signing up.<br><br>If you didn't request this you can ignore this mail.", link))

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send signup mail, %w", err)
	}

	return nil
}
