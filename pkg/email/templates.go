package email

import (
	"fmt"
)

// StaffEmailData contains the data needed for staff account email templates.
type StaffEmailData struct {
	FirstName    string
	Email        string
	Role         string
	TempPassword string
	LoginURL     string
	AppName      string
}

// BuildStaffWelcomeEmail creates the onboarding email sent when an
// administrator provisions a new staff account.
func BuildStaffWelcomeEmail(data StaffEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "CareTide"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("Your %s account is ready", appName)

	textBody := fmt.Sprintf(`Hi %s,

An account has been created for you on %s with the role: %s.

Sign in with the credentials below:

Email: %s
Temporary password: %s

Sign in here: %s

Please change your password after your first sign-in.

Thanks,
The %s Team`,
		firstName, appName, data.Role, data.Email, data.TempPassword, data.LoginURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>An account has been created for you on %s with the role: <strong>%s</strong>.</p>
    <p>Sign in with the credentials below:</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px; font-family: monospace;">
        Email: %s<br>
        Temporary password: %s
    </p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Sign In</a>
    </p>
    <p style="color: #ef4444; font-size: 14px;">Please change your password after your first sign-in.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, appName, data.Role, data.Email, data.TempPassword, data.LoginURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPasswordResetEmail creates the email sent when an administrator
// resets a staff member's password.
func BuildPasswordResetEmail(data StaffEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "CareTide"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("Your %s password was reset", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your %s password has been reset by an administrator.

Your new temporary password: %s

Sign in here: %s

If you did not expect this change, contact your administrator immediately.

Thanks,
The %s Team`,
		firstName, appName, data.TempPassword, data.LoginURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your %s password has been reset by an administrator.</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 12px; color: #6b7280;">New temporary password</span><br>
        <span style="font-size: 24px; font-weight: bold; font-family: monospace; color: #000; letter-spacing: 2px;">%s</span>
    </p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Sign In</a>
    </p>
    <p style="color: #ef4444; font-size: 14px;">If you did not expect this change, contact your administrator immediately.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, appName, data.TempPassword, data.LoginURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
