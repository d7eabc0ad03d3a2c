package email

import "fmt"

const appName = "Brightway Cleaning"

// notProvided is the fallback shown for optional fields left empty, on both
// the text and HTML variants of every template.
const notProvided = "Not provided"

func orFallback(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}

func htmlRow(label, value string) string {
	return fmt.Sprintf(
		`<tr><td style="padding: 6px 12px; font-weight: 600; color: #374151;">%s</td><td style="padding: 6px 12px; color: #111827;">%s</td></tr>`,
		label, orFallback(value),
	)
}

func htmlDocument(body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
%s
</body>
</html>`, body)
}

// ctaBanner renders the action-required strip at the top of business emails.
func ctaBanner(text string) string {
	return fmt.Sprintf(
		`<div style="background-color: #16a34a; color: white; padding: 14px 20px; border-radius: 6px; font-size: 16px; font-weight: 700; text-align: center; margin-bottom: 20px;">%s</div>`,
		text,
	)
}

func detailTable(rows string) string {
	return fmt.Sprintf(
		`<table style="border-collapse: collapse; width: 100%%; background-color: #f9fafb; border-radius: 6px;">%s</table>`,
		rows,
	)
}
