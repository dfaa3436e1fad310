package mailer

import "html/template"

const emailStyle = `
    body {
        font-family: Arial, sans-serif;
        line-height: 1.6;
        color: #333;
        max-width: 600px;
        margin: 0 auto;
        padding: 20px;
    }
    h1 {
        color: #4a4a4a;
    }
    .button {
        display: inline-block;
        padding: 10px 20px;
        background-color: #007bff;
        color: #ffffff;
        text-decoration: none;
        border-radius: 5px;
        margin-top: 20px;
    }
`

var invitationTemplate = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Team Invitation</title>
    <style>` + emailStyle + `</style>
</head>
<body>
    <h1>Welcome to TeamQuest!</h1>
    <p>Hi there!</p>
    <p>You've been invited by {{.InviterName}} to join {{.TeamName}}.</p>
    <p>Click the button below to accept the invitation and get started:</p>
    <a href="{{.Link}}" class="button">Accept Invitation</a>
    <p>This link will expire in 48 hours.</p>
    <p>If you have any questions, please don't hesitate to contact {{.InviterName}}.</p>
    <p>Best regards,<br>The TeamQuest Team</p>
</body>
</html>`))

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Password Reset</title>
    <style>` + emailStyle + `</style>
</head>
<body>
    <h1>Password Reset Request</h1>
    <p>Hi there!</p>
    <p>We received a request to reset the password for your TeamQuest account.</p>
    <p>Click the button below to reset your password:</p>
    <a href="{{.Link}}" class="button">Reset Password</a>
    <p>This link will expire in 24 hours.</p>
    <p>If you didn't request a password reset, please ignore this email.</p>
    <p>Best regards,<br>The TeamQuest Team</p>
</body>
</html>`))

var verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Email Verification</title>
    <style>` + emailStyle + `</style>
</head>
<body>
    <h1>Verify Your Email Address</h1>
    <p>Hi there!</p>
    <p>Thank you for registering with TeamQuest. Please verify your email address by clicking the button below:</p>
    <a href="{{.Link}}" class="button">Verify Email</a>
    <p>This link will expire in 24 hours.</p>
    <p>If you didn't create an account, please ignore this email.</p>
    <p>Best regards,<br>The TeamQuest Team</p>
</body>
</html>`))
